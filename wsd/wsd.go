// Package wsd disambiguates the words of a sentence against a lexical
// knowledge base with the simplified Lesk algorithm.
package wsd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/revelaction/lesk/lesk"
	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
	"github.com/revelaction/lesk/tag"
	"github.com/revelaction/lesk/tokenize"
)

// Tokenizer splits sentences into tokens and turns words and glosses into
// overlap terms.
type Tokenizer interface {
	Tokenize(text string) sent.Sentence
	lesk.Termer
}

// Tagger sets the grammatical category of tokens.
type Tagger interface {
	Tag(tokens []sent.Token) []sent.Token
}

// Result is the chosen sense of one word of the sentence.
type Result struct {
	Word       string        `json:"word"`
	SenseID    string        `json:"sense"`
	Definition string        `json:"definition"`
	Examples   []string      `json:"examples"`
	Score      int           `json:"score"`
	Pos        sent.Category `json:"pos,omitempty"`
}

// Pipeline holds no per call state and is safe for concurrent use when its
// knowledge base is.
type Pipeline struct {
	kb        storage.SenseReader
	tokenizer Tokenizer
	tagger    Tagger
	pos       bool
	log       *zap.Logger
}

type Option func(*Pipeline)

// WithTokenizer replaces the default tokenizer (English stopwords, no
// stemming).
func WithTokenizer(t Tokenizer) Option {
	return func(p *Pipeline) {
		p.tokenizer = t
	}
}

// WithTagger replaces the default rule based tagger.
func WithTagger(t Tagger) Option {
	return func(p *Pipeline) {
		p.tagger = t
	}
}

// WithPOS restricts the candidate senses of a word to its tagged category
// when the knowledge base is a storage.POSReader. If no sense has the
// category, all senses are candidates. The ambiguity check counts the
// restricted senses, so a word with a single sense in its category is not
// disambiguated even if it has more senses overall.
func WithPOS(pos bool) Option {
	return func(p *Pipeline) {
		p.pos = pos
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

func New(kb storage.SenseReader, opts ...Option) *Pipeline {
	p := &Pipeline{kb: kb}
	for _, opt := range opts {
		opt(p)
	}

	if p.tokenizer == nil {
		p.tokenizer = tokenize.New()
	}
	if p.pos && p.tagger == nil {
		p.tagger = tag.New()
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}

	return p
}

// Disambiguate returns the chosen sense of the target word, or of every
// ambiguous word of the sentence when target is empty, in first occurrence
// order. A target that is not a single word of the sentence, unknown words
// and words with one sense produce no result. Knowledge base errors abort
// the call.
func (p *Pipeline) Disambiguate(ctx context.Context, sentence, target string) ([]Result, error) {
	results := []Result{}

	tokens := p.tokenizer.Tokenize(sentence)
	if len(tokens) == 0 {
		return results, nil
	}

	if p.pos {
		tokens = p.tagger.Tag(tokens)
	}

	scorer := lesk.NewScorer(p.tokenizer)
	for _, tok := range p.targets(tokens, target) {
		senses, err := p.senses(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("senses of %q: %w", tok.Text, err)
		}

		if amb := lesk.Classify(senses); amb != lesk.Ambiguous {
			p.log.Debug("skip word", zap.String("word", tok.Text), zap.Stringer("ambiguity", amb))
			continue
		}

		cands := scorer.Candidates(scorer.Context(tokens, tok.Text), senses)
		best, ok := lesk.Select(cands)
		if !ok {
			continue
		}

		p.log.Debug("disambiguated",
			zap.String("word", tok.Text),
			zap.String("sense", best.Sense.ID),
			zap.Int("score", best.Score),
			zap.Int("candidates", len(cands)),
		)

		results = append(results, Result{
			Word:       tok.Text,
			SenseID:    best.Sense.ID,
			Definition: best.Sense.Gloss,
			Examples:   best.Sense.Examples,
			Score:      best.Score,
			Pos:        best.Sense.Pos,
		})
	}

	return results, nil
}

// targets returns the tokens to disambiguate: the first occurrence of each
// distinct word, or of the target only.
func (p *Pipeline) targets(tokens sent.Sentence, target string) []sent.Token {
	if target != "" {
		norm := p.tokenizer.Tokenize(target)
		if len(norm) != 1 {
			p.log.Debug("skip target", zap.String("target", target), zap.Int("words", len(norm)))
			return nil
		}

		tok, ok := tokens.Find(norm[0].Text)
		if !ok {
			p.log.Debug("target not in sentence", zap.String("target", target))
			return nil
		}

		return []sent.Token{tok}
	}

	var out []sent.Token
	for _, word := range tokens.Distinct() {
		tok, _ := tokens.Find(word)
		out = append(out, tok)
	}

	return out
}

// senses fetches the candidate senses of a token once.
func (p *Pipeline) senses(ctx context.Context, tok sent.Token) ([]sense.Sense, error) {
	if p.pos && tok.Pos != "" && tok.Pos != sent.Other {
		if pr, ok := p.kb.(storage.POSReader); ok {
			senses, err := pr.SensesPOS(ctx, tok.Text, tok.Pos)
			if err != nil || len(senses) > 0 {
				return senses, err
			}
		}
	}

	return p.kb.Senses(ctx, tok.Text)
}

// Tokenize splits the sentence with the pipeline tokenizer, as Disambiguate
// sees it.
func (p *Pipeline) Tokenize(sentence string) sent.Sentence {
	return p.tokenizer.Tokenize(sentence)
}
