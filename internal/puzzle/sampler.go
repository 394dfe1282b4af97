// internal/puzzle/sampler.go
//
// Weighted letter sampling.
//
// Selection is roulette-wheel: sum the weights, draw uniformly in [0, sum),
// then walk the table in its glyph order accumulating weight until the draw
// is covered. Cost is linear in alphabet size, which is fine for the fixed
// ~30-glyph tables.
//
// Vowel-only draws restrict the walk to vowels with nonzero weight and
// renormalize their weights to sum to 1.
//
// If floating-point rounding exhausts the walk without covering the draw,
// the fallback is deterministic: the table's first vowel on the vowel path,
// the literal "E" on the general path. Frequency tests rely on this staying
// stable.

package puzzle

import (
	"github.com/sopagames/lettersoup/internal/lang"
	"github.com/sopagames/lettersoup/internal/rng"
)

// generalFallback is returned when the cumulative walk over a full table
// exhausts every entry.
const generalFallback = "E"

// RandomLetter draws one glyph for the language, weighted by letter
// frequency. Unknown language codes fall back to English. With vowelOnly set
// the draw is restricted to the language's vowel set.
func RandomLetter(src rng.Source, language string, vowelOnly bool) string {
	t := lang.TableFor(language)
	if vowelOnly {
		return randomVowel(src, t)
	}

	draw := src.Float64() * t.TotalWeight()
	acc := 0.0
	for _, g := range t.Glyphs {
		acc += t.Weight(g)
		if draw <= acc {
			return g
		}
	}
	return generalFallback
}

// randomVowel draws from the table's vowels with nonzero weight,
// renormalized to a unit total.
func randomVowel(src rng.Source, t *lang.Table) string {
	vowels := make([]string, 0, len(t.Vowels))
	total := 0.0
	for _, v := range t.Vowels {
		if w := t.Weight(v); w > 0 {
			vowels = append(vowels, v)
			total += w
		}
	}
	if len(vowels) == 0 {
		return t.FirstVowel()
	}

	draw := src.Float64()
	acc := 0.0
	for _, v := range vowels {
		acc += t.Weight(v) / total
		if draw <= acc {
			return v
		}
	}
	return t.FirstVowel()
}
