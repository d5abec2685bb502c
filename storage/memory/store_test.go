package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
)

func bassEntry() sense.Entry {
	return sense.Entry{
		Word: "Bass",
		Senses: []sense.Sense{
			{Pos: sent.Noun, Gloss: "the lowest part of the musical range", Examples: []string{"he played bass"}},
			{Pos: sent.Noun, Gloss: "the lean flesh of a saltwater fish"},
			{Pos: sent.Adjective, Gloss: "having or denoting a low vocal or instrumental range"},
		},
	}
}

func TestStoreSensesOrder(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.Add(bassEntry()))

	got, err := st.Senses(context.Background(), "  BASS ")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "bass.n.01", got[0].ID)
	assert.Equal(t, "bass.n.02", got[1].ID)
	assert.Equal(t, "bass.a.03", got[2].ID)
	assert.Equal(t, "bass", got[1].Word)
	assert.Equal(t, []string{}, got[1].Examples)
}

func TestStoreUnknownWord(t *testing.T) {
	st := NewStore()

	got, err := st.Senses(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestStoreAppend(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.Add(sense.Entry{Word: "bank", Senses: []sense.Sense{{ID: "bank.1", Gloss: "sloping land"}}}))
	require.NoError(t, st.Write(context.Background(), []sense.Entry{{Word: "bank", Senses: []sense.Sense{{ID: "bank.2", Gloss: "financial institution"}}}}))

	got, err := st.Senses(context.Background(), "bank")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bank.1", got[0].ID)
	assert.Equal(t, "bank.2", got[1].ID)
}

func TestStoreAppendGeneratedIDs(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	require.NoError(t, st.Add(sense.Entry{Word: "bank", Senses: []sense.Sense{{Pos: sent.Noun, Gloss: "sloping land"}}}))
	require.NoError(t, st.Add(sense.Entry{Word: "Bank", Senses: []sense.Sense{{Pos: sent.Noun, Gloss: "a financial institution"}}}))
	require.NoError(t, st.Add(
		sense.Entry{Word: "bank", Senses: []sense.Sense{{Pos: sent.Verb, Gloss: "tip laterally"}}},
		sense.Entry{Word: "bank", Senses: []sense.Sense{{Pos: sent.Verb, Gloss: "do business with a bank"}}},
	))

	got, err := st.Senses(ctx, "bank")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "bank.n.01", got[0].ID)
	assert.Equal(t, "sloping land", got[0].Gloss)
	assert.Equal(t, "bank.n.02", got[1].ID)
	assert.Equal(t, "a financial institution", got[1].Gloss)
	assert.Equal(t, "bank.v.03", got[2].ID)
	assert.Equal(t, "bank.v.04", got[3].ID)
	assert.Equal(t, "do business with a bank", got[3].Gloss)
}

func TestStoreAddInvalidKeepsNothing(t *testing.T) {
	st := NewStore()
	err := st.Add(
		sense.Entry{Word: "bank", Senses: []sense.Sense{{Gloss: "sloping land"}}},
		sense.Entry{Word: "river", Senses: []sense.Sense{{Gloss: ""}}},
	)
	require.Error(t, err)

	got, err := st.Senses(context.Background(), "bank")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreAddInvalid(t *testing.T) {
	st := NewStore()
	err := st.Add(sense.Entry{Word: "bank", Senses: []sense.Sense{{Gloss: " "}}})
	require.Error(t, err)

	words, err := st.Words(context.Background())
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestStoreSensesPOS(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.Add(bassEntry()))

	got, err := st.SensesPOS(context.Background(), "bass", sent.Adjective)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bass.a.03", got[0].ID)

	got, err = st.SensesPOS(context.Background(), "bass", sent.Verb)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = st.SensesPOS(context.Background(), "bass", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStoreWordsAndEntries(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.Add(
		sense.Entry{Word: "river", Senses: []sense.Sense{{Gloss: "a large natural stream"}}},
		bassEntry(),
	))

	words, err := st.Words(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bass", "river"}, words)

	entries := st.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "bass", entries[0].Word)
	assert.Len(t, entries[0].Senses, 3)
}

func TestStoreCanceledContext(t *testing.T) {
	st := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.Senses(ctx, "bass")
	assert.ErrorIs(t, err, context.Canceled)
}
