package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
	"github.com/revelaction/lesk/storage/memory"
)

// ErrNotLoaded is returned by lookups on a LexiconStore before Preload.
var ErrNotLoaded = errors.New("lexicon not loaded")

// LexiconStore is a read-only knowledge base backed by JSON lexicon files.
// The path is either a single file or a directory of *.json files, loaded
// in name order.
type LexiconStore struct {
	path  string
	files []string

	// In-memory cache
	mem *memory.Store
}

var _ storage.SenseRepository = (*LexiconStore)(nil)
var _ storage.Preloader = (*LexiconStore)(nil)

// NewLexiconStore creates a filesystem lexicon store. Files are listed but
// not read until Preload.
func NewLexiconStore(path string) (*LexiconStore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return &LexiconStore{path: path, files: []string{path}}, nil
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, file := range dirEntries {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(path, file.Name()))
	}
	slices.Sort(files)

	return &LexiconStore{path: path, files: files}, nil
}

// Preload reads all lexicon files into memory. The callback is called
// before each file is read. Calling Preload again is a no-op.
func (s *LexiconStore) Preload(cb func(current, total int, name string)) error {
	if s.mem != nil {
		return nil
	}

	mem := memory.NewStore()
	total := len(s.files)
	for i, file := range s.files {
		if cb != nil {
			cb(i+1, total, filepath.Base(file))
		}

		entries, err := ReadLexicon(file)
		if err != nil {
			return err
		}

		if err := mem.Add(entries...); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}

	s.mem = mem
	return nil
}

func (s *LexiconStore) Senses(ctx context.Context, word string) ([]sense.Sense, error) {
	if s.mem == nil {
		return nil, ErrNotLoaded
	}
	return s.mem.Senses(ctx, word)
}

func (s *LexiconStore) SensesPOS(ctx context.Context, word string, pos sent.Category) ([]sense.Sense, error) {
	if s.mem == nil {
		return nil, ErrNotLoaded
	}
	return s.mem.SensesPOS(ctx, word, pos)
}

func (s *LexiconStore) Words(ctx context.Context) ([]string, error) {
	if s.mem == nil {
		return nil, ErrNotLoaded
	}
	return s.mem.Words(ctx)
}

// Entries returns all loaded entries sorted by word.
func (s *LexiconStore) Entries() ([]sense.Entry, error) {
	if s.mem == nil {
		return nil, ErrNotLoaded
	}
	return s.mem.Entries(), nil
}

func (s *LexiconStore) Write(_ context.Context, _ []sense.Entry) error {
	return storage.ErrReadOnly
}

// ReadLexicon reads a lexicon JSON file: an array of entries.
func ReadLexicon(path string) ([]sense.Entry, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var entries []sense.Entry
	if err := json.Unmarshal(f, &entries); err != nil {
		return nil, fmt.Errorf("JSON decoding error in %s: %w", path, err)
	}

	return entries, nil
}
