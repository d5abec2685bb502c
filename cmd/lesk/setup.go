package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"go.uber.org/zap"

	"github.com/revelaction/lesk/config"
	"github.com/revelaction/lesk/morph"
	"github.com/revelaction/lesk/sense"
	"github.com/revelaction/lesk/storage"
	"github.com/revelaction/lesk/storage/filesystem"
	"github.com/revelaction/lesk/storage/postgres"
	"github.com/revelaction/lesk/storage/sqlite/zombiezen"
	"github.com/revelaction/lesk/tokenize"
	"github.com/revelaction/lesk/wsd"
)

var errNoLexicon = errors.New("no lexicon given (use --lexicon or LESK_LEXICON)")

// env is the state shared by all commands, built before the command runs.
type env struct {
	cfg  *config.Config
	log  *zap.Logger
	pool *Pool
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// NewLexiconRepository opens the knowledge base at path: a PostgreSQL DSN,
// a JSON file or directory, or a SQLite file.
func NewLexiconRepository(ctx context.Context, p *Pool, path string, db config.DatabaseConfig) (storage.SenseRepository, error) {
	if path == "" {
		return nil, errNoLexicon
	}

	if postgres.IsDSN(path) {
		db.DSN = path
		pool, err := p.OpenPostgres(ctx, db)
		if err != nil {
			return nil, err
		}
		return postgres.NewLexiconStore(pool), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon not found: %s", path)
	}

	if info.IsDir() || isJSON(path) {
		return filesystem.NewLexiconStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewLexiconStore(pool), nil
}

// NewLexiconWriter opens a destination for imported entries. Database
// schemas are created when missing.
func NewLexiconWriter(ctx context.Context, p *Pool, path string, db config.DatabaseConfig) (storage.SenseWriter, error) {
	if postgres.IsDSN(path) {
		if _, err := postgres.Migrate(ctx, path); err != nil {
			return nil, err
		}

		db.DSN = path
		pool, err := p.OpenPostgres(ctx, db)
		if err != nil {
			return nil, err
		}
		return postgres.NewLexiconStore(pool), nil
	}

	if isJSON(path) {
		return filesystem.NewLexiconWriter(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateSchemas(ctx, pool, zombiezen.LexiconSchema); err != nil {
		return nil, fmt.Errorf("failed to create lexicon tables: %w", err)
	}
	return zombiezen.NewLexiconStore(pool), nil
}

// repository opens the configured knowledge base and preloads it when the
// store needs it.
func (e *env) repository(ctx context.Context, progress bool) (storage.SenseRepository, error) {
	repo, err := NewLexiconRepository(ctx, e.pool, e.cfg.Lexicon.Path, e.cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := preload(repo, progress); err != nil {
		return nil, err
	}

	e.log.Debug("lexicon opened", zap.String("path", e.cfg.Lexicon.Path))
	return repo, nil
}

// reader wraps repo with the lemma fallback when configured.
func (e *env) reader(repo storage.SenseRepository) (storage.SenseReader, error) {
	if !e.cfg.Lexicon.Lemmatize {
		return repo, nil
	}

	lem, err := morph.English()
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer: %w", err)
	}
	return morph.New(repo, lem), nil
}

func (e *env) tokenizer() *tokenize.Tokenizer {
	opts := []tokenize.Option{tokenize.WithStemming(e.cfg.Lesk.Stem)}
	if e.cfg.Lesk.NoStopwords {
		opts = append(opts, tokenize.WithoutStopwords())
	}
	return tokenize.New(opts...)
}

func (e *env) pipeline(kb storage.SenseReader) *wsd.Pipeline {
	return wsd.New(kb,
		wsd.WithTokenizer(e.tokenizer()),
		wsd.WithPOS(e.cfg.Lesk.POS),
		wsd.WithLogger(e.log),
	)
}

func (e *env) close() error {
	_ = e.log.Sync()
	return e.pool.Close()
}

// preload eagerly loads stores that need it, with a progress bar per file.
func preload(repo any, progress bool) error {
	pl, ok := repo.(storage.Preloader)
	if !ok {
		return nil
	}

	if !progress {
		return pl.Preload(nil)
	}

	p := uiprogress.New()
	p.Start()
	bar := p.AddBar(1) // Placeholder, updated in callback
	bar.AppendCompleted()
	bar.PrependElapsed()

	var currentName string
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return currentName
	})

	err := pl.Preload(func(current, total int, name string) {
		if bar.Total <= 1 {
			bar.Total = total
		}
		currentName = name
		_ = bar.Set(current)
	})
	p.Stop()

	return err
}

// entries reads the whole knowledge base, sorted by word.
func entries(ctx context.Context, kb interface {
	storage.SenseReader
	storage.SenseLister
}) ([]sense.Entry, error) {
	words, err := kb.Words(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]sense.Entry, 0, len(words))
	for _, w := range words {
		senses, err := kb.Senses(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("senses of %q: %w", w, err)
		}
		out = append(out, sense.Entry{Word: w, Senses: senses})
	}

	return out, nil
}
