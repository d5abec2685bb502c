// Package config loads the lesk configuration from a YAML file and the
// environment.
package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Lesk     LeskConfig     `yaml:"lesk"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// LexiconConfig locates the knowledge base.
type LexiconConfig struct {
	// Path is a JSON file, a directory of JSON files, a SQLite file or a
	// postgres:// DSN
	Path string `yaml:"path" env:"LESK_LEXICON"`

	// Lemmatize looks up the lemma of words without senses
	Lemmatize bool `yaml:"lemmatize" env:"LESK_LEMMATIZE"`
}

// LeskConfig holds the disambiguation settings. Booleans default to false,
// cleanenv applies env-default to any zero value.
type LeskConfig struct {
	NoStopwords bool `yaml:"no_stopwords" env:"LESK_NO_STOPWORDS"`
	Stem        bool `yaml:"stem"         env:"LESK_STEM"`
	POS         bool `yaml:"pos"          env:"LESK_POS"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"LESK_SERVER_ADDR"             env-default:"127.0.0.1:8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"LESK_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"LESK_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"LESK_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"LESK_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  string        `yaml:"allowed_origins"  env:"LESK_CORS_ALLOWED_ORIGINS"    env-default:"*"`
}

// Origins returns the comma separated AllowedOrigins as a list.
func (s ServerConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// DatabaseConfig holds PostgreSQL connection settings. DSN is taken from
// the lexicon path when it is a postgres:// URL.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"LESK_DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"LESK_DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"LESK_DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"LESK_DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"LESK_DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LESK_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LESK_LOG_FORMAT" env-default:"console"`
}
