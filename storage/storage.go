package storage

import (
	"context"
	"errors"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
)

// ErrReadOnly is returned by stores that do not support writes.
var ErrReadOnly = errors.New("read-only storage")

// SenseReader defines the lookup operation of a lexical knowledge base
type SenseReader interface {
	// Senses returns the senses of word, in knowledge base order. Unknown
	// words return an empty slice and a nil error; errors are reserved for
	// infrastructure failures.
	Senses(ctx context.Context, word string) ([]sense.Sense, error)
}

// POSReader is an optional capability of knowledge bases that can restrict
// senses to a grammatical category.
type POSReader interface {
	// SensesPOS returns the senses of word with the given category. An
	// empty category means any.
	SensesPOS(ctx context.Context, word string, pos sent.Category) ([]sense.Sense, error)
}

// SenseLister lists the contents of a knowledge base
type SenseLister interface {
	// Words returns all known words, sorted.
	Words(ctx context.Context) ([]string, error)
}

// SenseWriter defines write operations for knowledge base storage
type SenseWriter interface {
	// Write appends entries to storage. Sense order is preserved per word.
	Write(ctx context.Context, entries []sense.Entry) error
}

// SenseRepository combines read and write operations
type SenseRepository interface {
	SenseReader
	POSReader
	SenseLister
	SenseWriter
}

// Preloader defines an optional capability for repositories that require
// or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}

// FilterPOS returns the senses of the given category, in order. An empty
// category returns senses unchanged.
func FilterPOS(senses []sense.Sense, pos sent.Category) []sense.Sense {
	if pos == "" {
		return senses
	}

	out := []sense.Sense{}
	for _, s := range senses {
		if s.Pos == pos {
			out = append(out, s)
		}
	}

	return out
}
