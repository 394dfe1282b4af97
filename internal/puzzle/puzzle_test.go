package puzzle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPuzzle(t *testing.T) {
	p := New(4, 5, Options{Language: "es", VowelProbability: 0.3, SpecialLetterProbability: 0.1})
	require.NotNil(t, p)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "es", p.Language)
	assert.Equal(t, 4, p.Board.NumRows())
	assert.Equal(t, 5, p.Board.NumCols())
	assert.Empty(t, p.DateKey)
}

func TestNewPuzzleResolvesUnknownLanguage(t *testing.T) {
	p := New(2, 2, Options{Language: "de"})
	assert.Equal(t, "en", p.Language)
}

func TestNewDailyAt(t *testing.T) {
	d := time.Date(2024, time.March, 7, 15, 0, 0, 0, time.UTC)
	a := NewDailyAt(d)
	b := NewDailyAt(d)

	assert.Equal(t, "2024-03-07", a.DateKey)
	assert.Equal(t, "en", a.Language)
	assert.True(t, a.Board.Equal(b.Board), "same date produced different daily boards")
	assert.NotEqual(t, a.ID, b.ID, "puzzle IDs must be unique per generation")
}

func TestLetterPointsDelegation(t *testing.T) {
	assert.Equal(t, 10, LetterPoints("Q", "en"))
	assert.Equal(t, 8, LetterPoints("Ñ", "es"))
	assert.Equal(t, 8, LetterPoints("@", "en"))
}
