package lesk

import "github.com/revelaction/lesk/sense"

// Ambiguity classifies a word by the number of its candidate senses.
type Ambiguity int

const (
	// Unknown words have no senses in the knowledge base
	Unknown Ambiguity = iota
	// Unambiguous words have exactly one sense
	Unambiguous
	// Ambiguous words have more than one sense and are disambiguated
	Ambiguous
)

func (a Ambiguity) String() string {
	switch a {
	case Unknown:
		return "unknown"
	case Unambiguous:
		return "unambiguous"
	case Ambiguous:
		return "ambiguous"
	}
	return "invalid"
}

// Classify returns the ambiguity of a word given its candidate senses.
func Classify(senses []sense.Sense) Ambiguity {
	switch len(senses) {
	case 0:
		return Unknown
	case 1:
		return Unambiguous
	}
	return Ambiguous
}

// IsAmbiguous reports whether there is more than one candidate sense.
func IsAmbiguous(senses []sense.Sense) bool {
	return Classify(senses) == Ambiguous
}
