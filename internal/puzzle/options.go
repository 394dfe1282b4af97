// internal/puzzle/options.go
//
// Generation options and their defaults.

package puzzle

import "github.com/sopagames/lettersoup/internal/lang"

// Default board dimensions.
const (
	DefaultRows = 6
	DefaultCols = 6
)

const (
	defaultVowelProbability   = 0.35
	defaultSpecialProbability = 0.15
)

// Options configures board generation behavior.
type Options struct {
	// Language selects the frequency table; unknown codes fall back to
	// English.
	Language string
	// VowelProbability is the chance a cell is forced to a vowel-only draw.
	VowelProbability float64
	// SpecialLetterProbability is the chance a cell's base letter is
	// overwritten by a glyph borrowed from another configured language.
	SpecialLetterProbability float64
}

// DefaultOptions returns the standard generation options.
func DefaultOptions() Options {
	return Options{
		Language:                 lang.DefaultCode,
		VowelProbability:         defaultVowelProbability,
		SpecialLetterProbability: defaultSpecialProbability,
	}
}

// clamped bounds probabilities into [0, 1] and fills an empty language code.
func (o Options) clamped() Options {
	if o.Language == "" {
		o.Language = lang.DefaultCode
	}
	o.VowelProbability = clamp01(o.VowelProbability)
	o.SpecialLetterProbability = clamp01(o.SpecialLetterProbability)
	return o
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
