package query

import (
	"bytes"
	"context"
	"testing"

	"github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/lesk/render"
	"github.com/revelaction/lesk/sense"
	"github.com/revelaction/lesk/storage/memory"
	"github.com/revelaction/lesk/wsd"
)

func newTestHandler(t *testing.T) (*Handler, *bytes.Buffer) {
	t.Helper()

	st := memory.NewStore()
	require.NoError(t, st.Add(
		sense.Entry{Word: "bass", Senses: []sense.Sense{
			{ID: "bass.n.01", Gloss: "low-frequency sound"},
			{ID: "bass.n.02", Gloss: "a type of fish found in rivers", Examples: []string{"he caught a bass"}},
		}},
		sense.Entry{Word: "bank", Senses: []sense.Sense{{ID: "bank.n.01", Gloss: "sloping land"}}},
		sense.Entry{Word: "river", Senses: []sense.Sense{{ID: "river.n.01", Gloss: "a large stream"}}},
	))

	words, err := st.Words(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	r := render.NewTextRenderer(&buf)
	r.Format = "short"

	h := NewHandler(wsd.New(st), st, words, r)
	h.Out = &buf
	return h, &buf
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    command
		wantErr bool
	}{
		{"sentence", "I heard a deep bass sound", command{sentence: "I heard a deep bass sound"}, false},
		{"target", "/bass I heard a deep bass sound", command{target: "bass", sentence: "I heard a deep bass sound"}, false},
		{"target extra spaces", "  /bass   deep bass ", command{target: "bass", sentence: "deep bass"}, false},
		{"senses", "?Bass", command{target: "bass", senses: true}, false},
		{"empty", "   ", command{}, true},
		{"target only", "/bass", command{}, true},
		{"empty target", "/ deep bass", command{}, true},
		{"senses two words", "?bass sound", command{}, true},
		{"senses empty", "?", command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalTarget(t *testing.T) {
	h, buf := newTestHandler(t)

	require.NoError(t, h.Eval(context.Background(), "/bass I caught a bass in the river"))
	assert.Equal(t, "bass bass.n.02 a type of fish found in rivers\n", buf.String())
}

func TestEvalNoResults(t *testing.T) {
	h, buf := newTestHandler(t)

	require.NoError(t, h.Eval(context.Background(), "nothing to see"))
	assert.Equal(t, render.NoResults+"\n", buf.String())
}

func TestEvalSenses(t *testing.T) {
	h, buf := newTestHandler(t)

	require.NoError(t, h.Eval(context.Background(), "?bank"))
	assert.Contains(t, buf.String(), "bank.n.01")
	assert.Contains(t, buf.String(), "sloping land")
}

func TestEvalParseError(t *testing.T) {
	h, _ := newTestHandler(t)
	assert.Error(t, h.Eval(context.Background(), "/bass"))
}

func TestCompleteWord(t *testing.T) {
	h, _ := newTestHandler(t)

	got := h.completeWord("", "ba")
	require.Len(t, got, 2)
	assert.Equal(t, "bank", got[0].Text)
	assert.Equal(t, "bass", got[1].Text)

	got = h.completeWord("/", "ri")
	require.Len(t, got, 1)
	assert.Equal(t, "/river", got[0].Text)

	assert.Empty(t, h.completeWord("", "zz"))
	assert.Empty(t, h.completeWord("", ""))
}

func TestCompleter(t *testing.T) {
	h, _ := newTestHandler(t)

	complete := func(text string) []prompt.Suggest {
		buf := prompt.NewBuffer()
		buf.InsertText(text, false, true)
		return h.completer(*buf.Document())
	}

	got := complete("/bas")
	require.Len(t, got, 1)
	assert.Equal(t, "/bass", got[0].Text)

	got = complete("?ban")
	require.Len(t, got, 1)
	assert.Equal(t, "?bank", got[0].Text)

	got = complete("the riv")
	require.Len(t, got, 1)
	assert.Equal(t, "river", got[0].Text)

	// below the completion threshold
	assert.Empty(t, complete("the r"))
}
