package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/stat"
	"github.com/revelaction/lesk/wsd"
)

// ResultsDoc is the JSON document of a disambiguated sentence.
type ResultsDoc struct {
	Sentence string       `json:"sentence"`
	Results  []wsd.Result `json:"results"`
}

// SensesDoc is the JSON document of the senses of a word.
type SensesDoc struct {
	Word   string        `json:"word"`
	Senses []sense.Sense `json:"senses"`
}

// JSONRenderer writes results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Results serializes the results as a ResultsDoc. An empty result is an
// empty array.
func (r *JSONRenderer) Results(text string, _ sent.Sentence, results []wsd.Result) error {
	if results == nil {
		results = []wsd.Result{}
	}
	return json.NewEncoder(r.W).Encode(ResultsDoc{Sentence: text, Results: results})
}

func (r *JSONRenderer) Senses(word string, senses []sense.Sense) error {
	if senses == nil {
		senses = []sense.Sense{}
	}
	return json.NewEncoder(r.W).Encode(SensesDoc{Word: word, Senses: senses})
}

func (r *JSONRenderer) Stats(stats stat.Stats) error {
	return json.NewEncoder(r.W).Encode(stats)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
