package sentence

// Category is a coarse grammatical class of a token or a sense.
type Category string

const (
	Noun      Category = "noun"
	Verb      Category = "verb"
	Adjective Category = "adjective"
	Adverb    Category = "adverb"
	Other     Category = "other"
)

// Categories returns the categories that a knowledge base may index senses by.
func Categories() []Category {
	return []Category{Noun, Verb, Adjective, Adverb}
}

// ParseCategory maps a free form part of speech (full name, WordNet letter or
// Penn/Universal tag) to a Category. Unknown values map to Other.
func ParseCategory(s string) Category {
	switch s {
	case "noun", "n", "NOUN", "PROPN", "NN", "NNS", "NNP", "NNPS":
		return Noun
	case "verb", "v", "VERB", "AUX", "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		return Verb
	case "adjective", "adj", "a", "s", "ADJ", "JJ", "JJR", "JJS":
		return Adjective
	case "adverb", "adv", "r", "ADV", "RB", "RBR", "RBS":
		return Adverb
	}

	return Other
}

// Letter returns the WordNet single letter code of the category, or "x" for
// Other.
func (c Category) Letter() string {
	switch c {
	case Noun:
		return "n"
	case Verb:
		return "v"
	case Adjective:
		return "a"
	case Adverb:
		return "r"
	}

	return "x"
}

// Token represents a word of the sentence.
type Token struct {
	// The normalized (lower-cased) word
	Text string `json:"text"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// the index of the start character (rune based) of the token in the
	// original sentence
	Idx int `json:"idx"`

	// Coarse grammatical class, empty until tagged
	Pos Category `json:"pos,omitempty"`
}

// Sentence is an ordered sequence of tokens, in surface order.
type Sentence []Token

// Distinct returns the texts of the tokens in first occurrence order, each
// text once.
func (s Sentence) Distinct() []string {
	seen := make(map[string]bool, len(s))
	var words []string
	for _, t := range s {
		if seen[t.Text] {
			continue
		}
		seen[t.Text] = true
		words = append(words, t.Text)
	}

	return words
}

// Find returns the first token with the given text.
func (s Sentence) Find(text string) (Token, bool) {
	for _, t := range s {
		if t.Text == text {
			return t, true
		}
	}

	return Token{}, false
}
