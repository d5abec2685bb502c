package sense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/lesk/sentence"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "bass", Key("  Bass "))
	assert.Equal(t, "sea bass", Key("Sea   Bass"))
	assert.Equal(t, "", Key("   "))
}

func TestGenerateID(t *testing.T) {
	assert.Equal(t, "bass.n.01", GenerateID("Bass", sent.Noun, 1))
	assert.Equal(t, "sea_bass.x.12", GenerateID("sea bass", "", 12))
}

func TestEntryNormalize(t *testing.T) {
	e := Entry{
		Word: " BASS ",
		Senses: []Sense{
			{Gloss: "low-frequency sound", Pos: sent.Noun},
			{ID: "fish", Gloss: "a type of fish", Examples: []string{"he caught a bass"}},
		},
	}

	got, err := e.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "bass", got.Word)
	require.Len(t, got.Senses, 2)
	assert.Equal(t, "bass.n.01", got.Senses[0].ID)
	assert.Equal(t, "bass", got.Senses[0].Word)
	assert.NotNil(t, got.Senses[0].Examples)
	assert.Equal(t, "fish", got.Senses[1].ID)

	// the original entry is not modified
	assert.Equal(t, "", e.Senses[0].ID)
}

func TestEntryNormalizeErrors(t *testing.T) {
	_, err := Entry{Word: " "}.Normalize()
	assert.Error(t, err)

	_, err = Entry{Word: "bass", Senses: []Sense{{Gloss: " "}}}.Normalize()
	assert.Error(t, err)
}

func TestEntryNormalizeFrom(t *testing.T) {
	e := Entry{Word: "bank", Senses: []Sense{{Gloss: "a financial institution", Pos: sent.Noun}}}

	got, err := e.NormalizeFrom(2)
	require.NoError(t, err)
	assert.Equal(t, "bank.n.03", got.Senses[0].ID)
}
