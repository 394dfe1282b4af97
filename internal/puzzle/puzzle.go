// internal/puzzle/puzzle.go
//
// Puzzle couples a generated board with identifying metadata, the shape
// consumers (renderers, scoring engines) pass around. The raw Generate/Daily
// functions stay available for callers that only want the grid.

package puzzle

import (
	"time"

	"github.com/google/uuid"

	"github.com/sopagames/lettersoup/internal/lang"
	"github.com/sopagames/lettersoup/internal/rng"
)

// Puzzle is a generated board plus its metadata.
type Puzzle struct {
	ID       uuid.UUID `json:"id"`
	Language string    `json:"language"`
	Board    Board     `json:"board"`
	DateKey  string    `json:"dateKey,omitempty"` // set for daily puzzles
}

// New generates a fresh puzzle with the crypto-backed random source.
func New(rows, cols int, opts Options) *Puzzle {
	opts = opts.clamped()
	return &Puzzle{
		ID:       uuid.New(),
		Language: lang.Lookup(opts.Language).Code,
		Board:    Generate(rng.Default(), rows, cols, opts),
	}
}

// NewDaily generates today's daily puzzle.
func NewDaily() *Puzzle {
	return NewDailyAt(time.Now())
}

// NewDailyAt generates the daily puzzle for an arbitrary date.
func NewDailyAt(t time.Time) *Puzzle {
	return &Puzzle{
		ID:       uuid.New(),
		Language: dailyLanguage,
		Board:    DailyAt(t),
		DateKey:  DateKey(t),
	}
}

// LetterPoints returns the point value of a letter. The language parameter
// is accepted for symmetry with generation but does not alter scoring.
func LetterPoints(letter, language string) int {
	return lang.LetterPoints(letter, language)
}
