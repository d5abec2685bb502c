package stat

import (
	"context"

	"github.com/revelaction/lesk/lesk"
	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
)

// Lexicon is a knowledge base that can list its words
type Lexicon interface {
	storage.SenseReader
	storage.SenseLister
}

type Handler struct {
	stats Stats
}

type Stats struct {
	NumWords  int `json:"num_words"`
	NumSenses int `json:"num_senses"`

	// words with more than one sense
	NumAmbiguous int `json:"num_ambiguous"`

	// senses with at least one example
	NumWithExamples int `json:"num_with_examples"`

	MaxSenses     int    `json:"max_senses"`
	MaxSensesWord string `json:"max_senses_word"`

	SensesPerWordMean float64 `json:"senses_per_word_mean"`

	// number of words per number of senses
	SensesPerWordDis map[int]int `json:"senses_per_word_dis"`

	// number of senses per category
	PosDis map[sent.Category]int `json:"pos_dis"`
}

func (h *Handler) Get() Stats {
	if h.stats.NumWords > 0 {
		h.stats.SensesPerWordMean = float64(h.stats.NumSenses) / float64(h.stats.NumWords)
	}
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		SensesPerWordDis: map[int]int{},
		PosDis:           map[sent.Category]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the senses of one word.
func (h *Handler) Aggregate(word string, senses []sense.Sense) {
	if len(senses) == 0 {
		return
	}

	h.stats.NumWords++
	h.stats.NumSenses += len(senses)
	h.stats.SensesPerWordDis[len(senses)]++

	if lesk.IsAmbiguous(senses) {
		h.stats.NumAmbiguous++
	}

	if len(senses) > h.stats.MaxSenses {
		h.stats.MaxSenses = len(senses)
		h.stats.MaxSensesWord = word
	}

	for _, s := range senses {
		if len(s.Examples) > 0 {
			h.stats.NumWithExamples++
		}

		pos := s.Pos
		if pos == "" {
			pos = sent.Other
		}
		h.stats.PosDis[pos]++
	}
}

// Collect aggregates every word of the knowledge base. The callback is
// called after each word.
func Collect(ctx context.Context, lex Lexicon, cb func(current, total int)) (Stats, error) {
	words, err := lex.Words(ctx)
	if err != nil {
		return Stats{}, err
	}

	hdl := NewHandler()
	for i, w := range words {
		senses, err := lex.Senses(ctx, w)
		if err != nil {
			return Stats{}, err
		}

		hdl.Aggregate(w, senses)
		if cb != nil {
			cb(i+1, len(words))
		}
	}

	return hdl.Get(), nil
}
