// internal/puzzle/board.go
//
// Board type returned by the generators. A board is a plain 2D value —
// callers own it outright once generated.

package puzzle

import "strings"

// Board is a rows×cols letter grid. Each cell holds exactly one glyph,
// which may span more than one rune for borrowed digraphs.
type Board [][]string

// NumRows returns the number of rows.
func (b Board) NumRows() int { return len(b) }

// NumCols returns the number of columns (0 for an empty board).
func (b Board) NumCols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Equal reports whether two boards have identical dimensions and cells.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(o[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the board as one line per row, cells space-separated.
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(row, " "))
	}
	return sb.String()
}
