package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/wsd"
)

func TestJSONRendererResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Results("nothing here", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if string(raw["results"]) != "[]" {
		t.Fatalf("expected empty results array, got %s", raw["results"])
	}
}

func TestJSONRendererResultsOneResult(t *testing.T) {
	res := wsd.Result{
		Word:       "bass",
		SenseID:    "bass.n.01",
		Definition: "the lowest part of the musical range",
		Examples:   []string{"he played bass"},
		Score:      1,
		Pos:        sent.Noun,
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Results("I heard a deep bass sound", nil, []wsd.Result{res}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc ResultsDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if doc.Sentence != "I heard a deep bass sound" {
		t.Errorf("expected sentence to be kept, got %q", doc.Sentence)
	}

	if len(doc.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(doc.Results))
	}

	if doc.Results[0].SenseID != "bass.n.01" {
		t.Errorf("expected sense 'bass.n.01', got %q", doc.Results[0].SenseID)
	}

	if !bytes.Contains(buf.Bytes(), []byte(`"sense":"bass.n.01"`)) {
		t.Errorf("expected sense key in output, got %s", buf.String())
	}
}

func TestJSONRendererSenses(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	senses := []sense.Sense{{ID: "bank.n.01", Gloss: "sloping land"}}
	if err := r.Senses("bank", senses); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc SensesDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if doc.Word != "bank" || len(doc.Senses) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
}
