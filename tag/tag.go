// Package tag assigns a coarse grammatical category to the tokens of a
// sentence. It uses two passes: a baseline from a closed class lexicon and
// suffix heuristics, then contextual correction rules.
package tag

import (
	"strings"

	sent "github.com/revelaction/lesk/sentence"
)

// word classes that only drive the context rules
type class int

const (
	open class = iota
	determiner
	modal
	infinitive
	preposition
	pronoun
)

// Tagger is immutable after New and safe for concurrent use.
type Tagger struct {
	lexicon map[string]sent.Category
	classes map[string]class
}

// New creates a Tagger with the default English lexicon.
func New() *Tagger {
	t := &Tagger{
		lexicon: make(map[string]sent.Category),
		classes: make(map[string]class),
	}
	t.loadDefaultLexicon()
	return t
}

// Tag returns a copy of tokens with Pos set. Tokens are expected to be
// normalized (lower-cased).
func (t *Tagger) Tag(tokens []sent.Token) []sent.Token {
	if len(tokens) == 0 {
		return nil
	}

	out := make([]sent.Token, len(tokens))
	copy(out, tokens)

	// Pass 1: baseline
	for i := range out {
		out[i].Pos = t.baseline(out[i].Text)
	}

	// Pass 2: context
	for i := 1; i < len(out); i++ {
		word := out[i].Text
		if _, fixed := t.lexicon[word]; fixed {
			continue
		}

		prev := t.classes[out[i-1].Text]
		prevPos := out[i-1].Pos

		switch {
		// "the [run]", "a fast [attack]"
		case (prev == determiner || prevPos == sent.Adjective) && out[i].Pos == sent.Verb:
			out[i].Pos = sent.Noun
		// "can [run]", "to [fish]"
		case (prev == modal || prev == infinitive) && out[i].Pos == sent.Noun:
			out[i].Pos = sent.Verb
		// "I [fish]", "they [bank]"
		case prev == pronoun && out[i].Pos == sent.Noun && !isPlural(word):
			out[i].Pos = sent.Verb
		// "of [running]"
		case prev == preposition && out[i].Pos == sent.Verb && strings.HasSuffix(word, "ing"):
			out[i].Pos = sent.Noun
		}
	}

	return out
}

func (t *Tagger) baseline(word string) sent.Category {
	if pos, ok := t.lexicon[word]; ok {
		return pos
	}

	if isNumber(word) {
		return sent.Other
	}

	return inferPOS(word)
}

func inferPOS(word string) sent.Category {
	switch {
	case strings.HasSuffix(word, "ly") && len(word) > 4:
		return sent.Adverb
	case hasAnySuffix(word, "ing", "ed", "ize", "ise", "ify", "ate") && len(word) > 4:
		return sent.Verb
	case hasAnySuffix(word, "ous", "ful", "ive", "able", "ible", "al", "ic", "less", "ish", "est") && len(word) > 4:
		return sent.Adjective
	}

	return sent.Noun
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func isPlural(word string) bool {
	return strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss")
}

func isNumber(word string) bool {
	for _, r := range word {
		if (r < '0' || r > '9') && r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return true
}

func (t *Tagger) add(pos sent.Category, c class, words ...string) {
	for _, w := range words {
		t.lexicon[w] = pos
		if c != open {
			t.classes[w] = c
		}
	}
}

func (t *Tagger) loadDefaultLexicon() {
	t.add(sent.Other, determiner, "a", "an", "the", "this", "that", "these", "those",
		"my", "your", "his", "her", "its", "our", "their", "some", "any", "every", "each", "no")
	t.add(sent.Other, pronoun, "i", "you", "he", "she", "it", "we", "they", "who")
	t.add(sent.Other, open, "me", "him", "us", "them", "and", "or", "but", "nor", "if", "because",
		"while", "than", "not", "there", "what", "which", "whom")
	t.add(sent.Other, preposition, "of", "in", "on", "at", "by", "for", "from", "with", "about",
		"into", "onto", "over", "under", "through", "between", "after", "before", "during", "without")
	t.add(sent.Other, infinitive, "to")
	t.add(sent.Verb, modal, "can", "could", "will", "would", "shall", "should", "may", "might", "must")
	t.add(sent.Verb, open, "is", "are", "was", "were", "be", "been", "being", "am",
		"has", "have", "had", "do", "does", "did",
		"caught", "heard", "saw", "went", "took", "made", "got", "found", "said", "came", "gave", "knew")
	t.add(sent.Adverb, open, "very", "too", "also", "often", "never", "always", "here", "now", "then", "soon")
	t.add(sent.Adjective, open, "deep", "good", "bad", "big", "small", "low", "high", "new", "old", "long", "short")
}
