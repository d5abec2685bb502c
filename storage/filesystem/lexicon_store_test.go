package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const bassJSON = `[
  {"word": "bass", "senses": [
    {"id": "bass.n.01", "pos": "noun", "gloss": "the lowest part of the musical range", "examples": ["a deep bass sound"]},
    {"pos": "noun", "gloss": "the lean flesh of a saltwater fish"}
  ]}
]`

func TestLexiconStoreFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lexicon.json", bassJSON)

	st, err := NewLexiconStore(path)
	require.NoError(t, err)

	_, err = st.Senses(context.Background(), "bass")
	require.ErrorIs(t, err, ErrNotLoaded)

	var calls []string
	require.NoError(t, st.Preload(func(current, total int, name string) {
		calls = append(calls, name)
		assert.Equal(t, 1, total)
	}))
	assert.Equal(t, []string{"lexicon.json"}, calls)

	// idempotent
	require.NoError(t, st.Preload(func(current, total int, name string) {
		t.Fatal("preload called twice")
	}))

	got, err := st.Senses(context.Background(), "Bass")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bass.n.01", got[0].ID)
	assert.Equal(t, "bass.n.02", got[1].ID)
	assert.Equal(t, []string{}, got[1].Examples)
}

func TestLexiconStoreDirNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `[{"word":"bank","senses":[{"id":"bank.2","gloss":"a financial institution"}]}]`)
	writeFile(t, dir, "a.json", `[{"word":"bank","senses":[{"id":"bank.1","gloss":"sloping land beside water"}]}]`)
	writeFile(t, dir, "notes.txt", `not a lexicon`)

	st, err := NewLexiconStore(dir)
	require.NoError(t, err)
	require.NoError(t, st.Preload(nil))

	got, err := st.Senses(context.Background(), "bank")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bank.1", got[0].ID)
	assert.Equal(t, "bank.2", got[1].ID)

	words, err := st.Words(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bank"}, words)
}

func TestLexiconStoreDirSameWordIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `[{"word":"bank","senses":[{"pos":"noun","gloss":"sloping land beside water"}]}]`)
	writeFile(t, dir, "b.json", `[{"word":"bank","senses":[{"pos":"noun","gloss":"a financial institution"}]}]`)

	st, err := NewLexiconStore(dir)
	require.NoError(t, err)
	require.NoError(t, st.Preload(nil))

	got, err := st.Senses(context.Background(), "bank")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bank.n.01", got[0].ID)
	assert.Equal(t, "sloping land beside water", got[0].Gloss)
	assert.Equal(t, "bank.n.02", got[1].ID)
	assert.Equal(t, "a financial institution", got[1].Gloss)
}

func TestLexiconStoreInvalidJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.json", `[{"word":`)

	st, err := NewLexiconStore(path)
	require.NoError(t, err)
	assert.Error(t, st.Preload(nil))
}

func TestLexiconStoreEmptyGloss(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.json", `[{"word":"bass","senses":[{"gloss":""}]}]`)

	st, err := NewLexiconStore(path)
	require.NoError(t, err)
	assert.Error(t, st.Preload(nil))
}

func TestLexiconStoreReadOnly(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lexicon.json", bassJSON)

	st, err := NewLexiconStore(path)
	require.NoError(t, err)
	assert.ErrorIs(t, st.Write(context.Background(), nil), storage.ErrReadOnly)
}

func TestLexiconStoreNotFound(t *testing.T) {
	_, err := NewLexiconStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLexiconWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewLexiconWriter(path)

	require.NoError(t, w.Write(context.Background(), []sense.Entry{
		{Word: "bass", Senses: []sense.Sense{{Pos: sent.Noun, Gloss: "a low voice"}}},
	}))
	require.NoError(t, w.Write(context.Background(), []sense.Entry{
		{Word: "river", Senses: []sense.Sense{{Pos: sent.Noun, Gloss: "a large natural stream"}}},
	}))

	st, err := NewLexiconStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Preload(nil))

	entries, err := st.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bass", entries[0].Word)
	assert.Equal(t, "bass.n.01", entries[0].Senses[0].ID)
	assert.Equal(t, "river", entries[1].Word)
}

func TestLexiconWriterAppendSameWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewLexiconWriter(path)
	ctx := context.Background()

	require.NoError(t, w.Write(ctx, []sense.Entry{{Word: "bank", Senses: []sense.Sense{{Gloss: "sloping land"}}}}))
	require.NoError(t, w.Write(ctx, []sense.Entry{
		{Word: "bank", Senses: []sense.Sense{{Gloss: "a financial institution"}}},
		{Word: "bank", Senses: []sense.Sense{{Gloss: "a long pile or heap"}}},
	}))

	st, err := NewLexiconStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Preload(nil))

	got, err := st.Senses(ctx, "bank")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "bank.x.01", got[0].ID)
	assert.Equal(t, "sloping land", got[0].Gloss)
	assert.Equal(t, "bank.x.02", got[1].ID)
	assert.Equal(t, "a financial institution", got[1].Gloss)
	assert.Equal(t, "bank.x.03", got[2].ID)
}
