// internal/lang/scoring.go
//
// Letter point values. A single table is shared by every language; the
// language parameter exists for interface symmetry with the rest of the
// module and is currently ignored.

package lang

import (
	"strings"
	"unicode/utf8"
)

const (
	// specialPoints is the value of multi-rune glyphs and any character
	// missing from the scoring table (borrowed letters, accents, digraphs).
	specialPoints = 8

	// fallbackPoints guards a present-but-zero table entry.
	fallbackPoints = 2
)

// letterPoints holds point values for the base Latin letters.
var letterPoints = map[string]int{
	"A": 1, "B": 3, "C": 3, "D": 2, "E": 1,
	"F": 4, "G": 2, "H": 4, "I": 1, "J": 8,
	"K": 5, "L": 1, "M": 3, "N": 1, "O": 1,
	"P": 3, "Q": 10, "R": 1, "S": 1, "T": 1,
	"U": 1, "V": 4, "W": 4, "X": 8, "Y": 4,
	"Z": 10,
}

// LetterPoints returns the point value of a letter.
// Multi-rune glyphs and characters outside the table score specialPoints.
// The language parameter does not currently alter scoring.
func LetterPoints(letter, language string) int {
	_ = language // single shared table for all languages

	if utf8.RuneCountInString(letter) != 1 {
		return specialPoints
	}
	v, ok := letterPoints[strings.ToUpper(letter)]
	if !ok {
		return specialPoints
	}
	if v == 0 {
		return fallbackPoints
	}
	return v
}
