package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "lesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir moves to an empty dir so that a DefaultPath file is never found.
func chdir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

const validYAML = `
lexicon:
  path: "/data/lexicon.json"
  lemmatize: true

lesk:
  stem: true
  pos: true

server:
  addr: ":9090"
  read_timeout: "5s"
  allowed_origins: "http://a.example, http://b.example"

database:
  max_conns: 4
  min_conns: 2

log:
  level: "debug"
  format: "json"
`

func TestLoadValidYAML(t *testing.T) {
	chdir(t)
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/lexicon.json", cfg.Lexicon.Path)
	assert.True(t, cfg.Lexicon.Lemmatize)
	assert.False(t, cfg.Lesk.NoStopwords)
	assert.True(t, cfg.Lesk.Stem)
	assert.True(t, cfg.Lesk.POS)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.Origins())
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	t.Setenv("LESK_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Lexicon.Path)
	assert.False(t, cfg.Lexicon.Lemmatize)
	assert.False(t, cfg.Lesk.NoStopwords)
	assert.False(t, cfg.Lesk.Stem)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.Origins())
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	chdir(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("LESK_LEXICON", "/other/lexicon.db")
	t.Setenv("LESK_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/other/lexicon.db", cfg.Lexicon.Path)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfigEnvPath(t *testing.T) {
	chdir(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("LESK_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoadDefaultPath(t *testing.T) {
	chdir(t)
	t.Setenv("LESK_CONFIG", "")
	require.NoError(t, os.WriteFile(DefaultPath, []byte(validYAML), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	chdir(t)
	path := writeYAML(t, t.TempDir(), "log:\n  level: \"verbose\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Addr: ":8080"},
			Database: DatabaseConfig{MaxConns: 10, MinConns: 1},
			Log:      LogConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"bad format", func(c *Config) { c.Log.Format = "text" }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }},
		{"zero max conns", func(c *Config) { c.Database.MaxConns = 0 }},
		{"min above max", func(c *Config) { c.Database.MinConns = 11 }},
	}

	c := valid()
	require.NoError(t, c.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
