// Package sense defines the entities of a lexical knowledge base: the
// discrete meanings (senses) of a word and the entries grouping them.
package sense

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/lesk/sentence"
)

// Sense is one discrete meaning of a word. A Sense is owned by the
// knowledge base and must not be modified after retrieval.
type Sense struct {
	// ID is opaque and unique in the knowledge base, f.ex. "bass.n.01"
	ID string `json:"id"`

	// Word is the normalized lemma the sense belongs to
	Word string `json:"word,omitempty"`

	Pos sent.Category `json:"pos,omitempty"`

	// Gloss is the dictionary definition, never empty for a stored sense
	Gloss string `json:"gloss"`

	Examples []string `json:"examples"`
}

// Entry is a word with its senses, in knowledge base order.
type Entry struct {
	Word   string  `json:"word"`
	Senses []Sense `json:"senses"`
}

// Key normalizes a word for knowledge base lookup: trims surrounding space,
// lower-cases and squeezes inner whitespace into single spaces.
func Key(word string) string {
	return strings.Join(strings.Fields(strings.ToLower(word)), " ")
}

// GenerateID builds a WordNet style identifier "word.p.NN" where NN is the
// 1-based position of the sense among the senses of the word.
func GenerateID(word string, pos sent.Category, n int) string {
	return fmt.Sprintf("%s.%s.%02d", strings.ReplaceAll(Key(word), " ", "_"), pos.Letter(), n)
}

// Normalize returns a copy of the entry with a normalized word, the word set
// on every sense and missing sense ids generated. Senses with an empty gloss
// are an error.
func (e Entry) Normalize() (Entry, error) {
	return e.NormalizeFrom(0)
}

// NormalizeFrom is Normalize for an entry whose senses follow offset senses
// of the same word already stored; generated ids continue that numbering.
func (e Entry) NormalizeFrom(offset int) (Entry, error) {
	word := Key(e.Word)
	if word == "" {
		return Entry{}, fmt.Errorf("entry without word")
	}

	out := Entry{Word: word, Senses: make([]Sense, 0, len(e.Senses))}
	for i, s := range e.Senses {
		if strings.TrimSpace(s.Gloss) == "" {
			return Entry{}, fmt.Errorf("sense %d of %q has an empty gloss", i, word)
		}
		s.Word = word
		if s.ID == "" {
			s.ID = GenerateID(word, s.Pos, offset+i+1)
		}
		if s.Examples == nil {
			s.Examples = []string{}
		}
		out.Senses = append(out.Senses, s)
	}

	return out, nil
}
