// internal/puzzle/daily.go
//
// Daily puzzle: the same calendar date yields the same board for every
// caller. The date is folded into an integer seed, and the seed constructs a
// deterministic random source that is threaded through every sampling call
// of that invocation. Nothing global is mutated.

package puzzle

import (
	"time"

	"github.com/sopagames/lettersoup/internal/rng"
)

// Daily puzzle configuration, fixed by product.
const (
	dailyRows        = 6
	dailyCols        = 6
	dailyLanguage    = "en"
	dailyVowelProb   = 0.4
	dailySpecialProb = 0.2
)

// DateSeed folds a calendar date into an integer seed: year*10000 +
// month*100 + day, with months numbered 1–12.
func DateSeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily returns today's board. All callers on the same UTC date receive an
// identical board.
func Daily() Board {
	return DailyAt(time.Now())
}

// DailyAt returns the daily board for an arbitrary date.
func DailyAt(t time.Time) Board {
	src := rng.NewSeeded(DateSeed(t))
	return Generate(src, dailyRows, dailyCols, Options{
		Language:                 dailyLanguage,
		VowelProbability:         dailyVowelProb,
		SpecialLetterProbability: dailySpecialProb,
	})
}
