// Package memory implements an in-memory knowledge base. Senses are kept in
// insertion order per word.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
)

type Store struct {
	mu     sync.RWMutex
	senses map[string][]sense.Sense
}

var _ storage.SenseRepository = (*Store)(nil)

func NewStore() *Store {
	return &Store{senses: make(map[string][]sense.Sense)}
}

// Add appends entries. Entries for an already known word append to its
// senses and generated ids continue its numbering. Nothing is added if any
// entry is invalid.
func (s *Store) Add(entries ...sense.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make(map[string]int)
	normalized := make([]sense.Entry, 0, len(entries))
	for _, e := range entries {
		word := sense.Key(e.Word)
		n, err := e.NormalizeFrom(len(s.senses[word]) + pending[word])
		if err != nil {
			return err
		}
		pending[word] += len(n.Senses)
		normalized = append(normalized, n)
	}

	for _, e := range normalized {
		s.senses[e.Word] = append(s.senses[e.Word], e.Senses...)
	}

	return nil
}

func (s *Store) Write(_ context.Context, entries []sense.Entry) error {
	return s.Add(entries...)
}

func (s *Store) Senses(ctx context.Context, word string) ([]sense.Sense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	found := s.senses[sense.Key(word)]
	return append([]sense.Sense{}, found...), nil
}

func (s *Store) SensesPOS(ctx context.Context, word string, pos sent.Category) ([]sense.Sense, error) {
	senses, err := s.Senses(ctx, word)
	if err != nil {
		return nil, err
	}

	return storage.FilterPOS(senses, pos), nil
}

func (s *Store) Words(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]string, 0, len(s.senses))
	for w := range s.senses {
		words = append(words, w)
	}
	slices.Sort(words)

	return words, nil
}

// Entries returns all entries sorted by word.
func (s *Store) Entries() []sense.Entry {
	words, _ := s.Words(context.Background())

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]sense.Entry, 0, len(words))
	for _, w := range words {
		entries = append(entries, sense.Entry{Word: w, Senses: append([]sense.Sense{}, s.senses[w]...)})
	}

	return entries
}
