// Package tokenize turns raw text into normalized tokens and lesk overlap
// terms. The same normalization is used for sentences and for the glosses
// and examples of senses, so that overlap counts are not biased.
package tokenize

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
	"unicode"

	"github.com/kljensen/snowball"

	sent "github.com/revelaction/lesk/sentence"
)

//go:embed stopwords.txt
var stopwordsFile string

var defaultStopwords = sync.OnceValue(func() []string {
	var words []string
	scan := bufio.NewScanner(strings.NewReader(stopwordsFile))
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	return words
})

// DefaultStopwords returns the embedded English stopword list.
func DefaultStopwords() []string {
	return append([]string(nil), defaultStopwords()...)
}

// Tokenizer splits text into lower-cased word tokens. It is immutable after
// New and safe for concurrent use.
type Tokenizer struct {
	stopwords map[string]struct{}

	// stem reduces overlap terms to their Snowball stem
	stem bool
}

type Option func(*Tokenizer)

// WithStopwords replaces the default stopword list.
func WithStopwords(words []string) Option {
	return func(t *Tokenizer) {
		t.stopwords = make(map[string]struct{}, len(words))
		for _, w := range words {
			t.stopwords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithoutStopwords keeps every word as an overlap term.
func WithoutStopwords() Option {
	return WithStopwords(nil)
}

// WithStemming reduces overlap terms to their English Snowball stem, so that
// "rivers" in a gloss overlaps "river" in a sentence.
func WithStemming(stem bool) Option {
	return func(t *Tokenizer) {
		t.stem = stem
	}
}

// New creates a Tokenizer with the default English stopwords and without
// stemming.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{}
	WithStopwords(defaultStopwords())(t)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text into tokens. A token is a maximal run of letters and
// digits; apostrophes and hyphens are kept when they join two word
// characters ("don't", "low-frequency"). Every other character separates
// tokens and is dropped. Empty or blank text returns nil.
func (t *Tokenizer) Tokenize(text string) sent.Sentence {
	runes := []rune(text)

	var tokens sent.Sentence
	start := -1
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && isWordRune(runes, i, start >= 0) {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 {
			tokens = append(tokens, sent.Token{
				Text:  normalize(runes[start:i]),
				Index: len(tokens),
				Idx:   start,
			})
			start = -1
		}
	}

	return tokens
}

// Term returns the overlap term of an already tokenized word. It returns
// false for stopwords.
func (t *Tokenizer) Term(word string) (string, bool) {
	if word == "" {
		return "", false
	}

	if _, ok := t.stopwords[word]; ok {
		return "", false
	}

	if !t.stem {
		return word, true
	}

	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil || stemmed == "" {
		return word, true
	}

	return stemmed, true
}

// Terms returns the overlap terms of text, in order, with duplicates.
func (t *Tokenizer) Terms(text string) []string {
	var terms []string
	for _, tok := range t.Tokenize(text) {
		if term, ok := t.Term(tok.Text); ok {
			terms = append(terms, term)
		}
	}

	return terms
}

// WordEnd returns the rune offset just past the token that starts at start in
// runes. It gives the extent of a token in the original text, which can
// differ from the length of its normalized Text.
func WordEnd(runes []rune, start int) int {
	end := start
	for end < len(runes) && isWordRune(runes, end, end > start) {
		end++
	}
	return end
}

func isWordRune(runes []rune, i int, inWord bool) bool {
	r := runes[i]
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return true
	}

	// joiners only inside a word and followed by a word character
	if !isJoiner(r) || !inWord || i+1 >= len(runes) {
		return false
	}

	next := runes[i+1]
	return unicode.IsLetter(next) || unicode.IsDigit(next)
}

func isJoiner(r rune) bool {
	return r == '-' || r == '\'' || r == '’'
}

func normalize(word []rune) string {
	s := strings.ToLower(string(word))
	return strings.ReplaceAll(s, "’", "'")
}
