package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardString(t *testing.T) {
	b := Board{
		{"A", "B"},
		{"LL", "Ñ"},
	}
	assert.Equal(t, "A B\nLL Ñ", b.String())
}

func TestBoardEqual(t *testing.T) {
	a := Board{{"A", "B"}, {"C", "D"}}
	assert.True(t, a.Equal(Board{{"A", "B"}, {"C", "D"}}))
	assert.False(t, a.Equal(Board{{"A", "B"}, {"C", "E"}}))
	assert.False(t, a.Equal(Board{{"A", "B"}}))
	assert.False(t, a.Equal(Board{{"A"}, {"C"}}))
}

func TestEmptyBoardDims(t *testing.T) {
	var b Board
	assert.Equal(t, 0, b.NumRows())
	assert.Equal(t, 0, b.NumCols())
}
