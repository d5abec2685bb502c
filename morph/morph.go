// Package morph folds inflected word forms to their dictionary lemma before
// knowledge base lookup.
package morph

import (
	"context"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
)

// Lemmatizer returns the dictionary form of a word.
type Lemmatizer interface {
	Lemma(word string) string
}

var english = sync.OnceValues(func() (*golem.Lemmatizer, error) {
	return golem.New(en.New())
})

// English returns the shared golem English lemmatizer. The dictionary is
// loaded once.
func English() (*golem.Lemmatizer, error) {
	return english()
}

// Reader is a knowledge base decorator: words without senses are looked up
// again by their lemma ("caught" finds the senses of "catch").
type Reader struct {
	next storage.SenseReader
	lem  Lemmatizer
}

var _ storage.SenseReader = (*Reader)(nil)
var _ storage.POSReader = (*Reader)(nil)

func New(next storage.SenseReader, lem Lemmatizer) *Reader {
	return &Reader{next: next, lem: lem}
}

func (r *Reader) Senses(ctx context.Context, word string) ([]sense.Sense, error) {
	return r.lookup(word, func(w string) ([]sense.Sense, error) {
		return r.next.Senses(ctx, w)
	})
}

func (r *Reader) SensesPOS(ctx context.Context, word string, pos sent.Category) ([]sense.Sense, error) {
	return r.lookup(word, func(w string) ([]sense.Sense, error) {
		if pr, ok := r.next.(storage.POSReader); ok {
			return pr.SensesPOS(ctx, w, pos)
		}

		senses, err := r.next.Senses(ctx, w)
		if err != nil {
			return nil, err
		}
		return storage.FilterPOS(senses, pos), nil
	})
}

func (r *Reader) lookup(word string, find func(string) ([]sense.Sense, error)) ([]sense.Sense, error) {
	senses, err := find(word)
	if err != nil || len(senses) > 0 {
		return senses, err
	}

	key := sense.Key(word)
	lemma := sense.Key(r.lem.Lemma(key))
	if lemma == "" || lemma == key {
		return senses, nil
	}

	return find(lemma)
}
