// Package lesk implements the simplified Lesk algorithm: every candidate
// sense of a word is scored by the number of distinct terms its gloss and
// examples share with the sentence, and the best scoring sense wins.
package lesk

import (
	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
)

// Termer turns words and free text into overlap terms. The same Termer must
// be used for the sentence and for the senses.
type Termer interface {
	Term(word string) (string, bool)
	Terms(text string) []string
}

// Set is a set of overlap terms.
type Set map[string]struct{}

// Candidate is a sense with its overlap score.
type Candidate struct {
	Sense sense.Sense
	Score int
}

// Scorer computes overlap scores. It holds no state besides its Termer and
// is safe for concurrent use when the Termer is.
type Scorer struct {
	terms Termer
}

func NewScorer(t Termer) *Scorer {
	return &Scorer{terms: t}
}

// Context returns the overlap terms of the sentence tokens, without the term
// of the target word.
func (s *Scorer) Context(tokens []sent.Token, target string) Set {
	excluded, _ := s.terms.Term(target)

	ctx := Set{}
	for _, tok := range tokens {
		term, ok := s.terms.Term(tok.Text)
		if !ok || term == excluded {
			continue
		}
		ctx[term] = struct{}{}
	}

	return ctx
}

// Signature returns the overlap terms of the gloss and all examples of sn.
func (s *Scorer) Signature(sn sense.Sense) Set {
	sig := Set{}
	for _, term := range s.terms.Terms(sn.Gloss) {
		sig[term] = struct{}{}
	}
	for _, ex := range sn.Examples {
		for _, term := range s.terms.Terms(ex) {
			sig[term] = struct{}{}
		}
	}

	return sig
}

// Score returns the size of the intersection of the signature of sn and ctx.
func (s *Scorer) Score(ctx Set, sn sense.Sense) int {
	return Overlap(ctx, s.Signature(sn))
}

// Candidates scores every sense against ctx, keeping the knowledge base
// order.
func (s *Scorer) Candidates(ctx Set, senses []sense.Sense) []Candidate {
	cands := make([]Candidate, 0, len(senses))
	for _, sn := range senses {
		cands = append(cands, Candidate{Sense: sn, Score: s.Score(ctx, sn)})
	}

	return cands
}

// Overlap returns the number of terms present in both sets.
func Overlap(a, b Set) int {
	if len(b) < len(a) {
		a, b = b, a
	}

	n := 0
	for term := range a {
		if _, ok := b[term]; ok {
			n++
		}
	}

	return n
}

// Select returns the candidate with the strictly maximum score. Ties,
// including all zero scores, go to the first candidate. An empty list
// returns false.
func Select(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.Score > best.Score {
			best = c
		}
	}

	return best, true
}
