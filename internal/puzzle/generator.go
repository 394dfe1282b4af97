// internal/puzzle/generator.go
//
// Board generation.
//
// Every cell is an independent trial:
//   1. a vowel-probability draw decides whether the base letter comes from
//      the vowel-only sampling path;
//   2. a special-probability draw decides whether the base letter is
//      overwritten by a glyph borrowed from another configured language
//      (uniform pick over that language's special glyphs, not
//      frequency-weighted).
//
// There is no uniqueness or adjacency constraint across cells, and
// generation never fails: an empty special set keeps the base letter, and
// unknown languages sample from the English table.

package puzzle

import (
	"github.com/sopagames/lettersoup/internal/lang"
	"github.com/sopagames/lettersoup/internal/rng"
)

// Generator produces boards from a random source and a fixed set of
// configured language codes.
type Generator struct {
	src   rng.Source
	codes []string // languages available for special-glyph borrowing
}

// NewGenerator wires a generator over all configured languages.
// A nil source selects the crypto-backed default.
func NewGenerator(src rng.Source) *Generator {
	if src == nil {
		src = rng.Default()
	}
	return &Generator{src: src, codes: lang.Codes()}
}

// Generate builds a rows×cols board. Non-positive dimensions take the 6×6
// defaults. The returned board is fully populated.
func (g *Generator) Generate(rows, cols int, opts Options) Board {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	opts = opts.clamped()

	b := make(Board, rows)
	for r := range b {
		row := make([]string, cols)
		for c := range row {
			vowelOnly := g.src.Float64() < opts.VowelProbability
			letter := RandomLetter(g.src, opts.Language, vowelOnly)
			if g.src.Float64() < opts.SpecialLetterProbability {
				if glyph, ok := g.borrowGlyph(opts.Language); ok {
					letter = glyph
				}
			}
			row[c] = letter
		}
		b[r] = row
	}
	return b
}

// borrowGlyph picks a language other than the board's own, uniformly among
// the remaining configured languages, and draws one of its special glyphs
// uniformly. Reports false when no donor language or no distinguishing glyph
// exists, in which case the base letter stands.
func (g *Generator) borrowGlyph(language string) (string, bool) {
	current := lang.Lookup(language).Code

	donors := make([]string, 0, len(g.codes))
	for _, c := range g.codes {
		if c != current {
			donors = append(donors, c)
		}
	}
	if len(donors) == 0 {
		return "", false
	}

	donor := donors[g.src.IntN(len(donors))]
	specials := lang.SpecialGlyphs(current, donor)
	if len(specials) == 0 {
		return "", false
	}
	return specials[g.src.IntN(len(specials))], true
}

// Generate builds a board with a one-off generator.
// A nil source selects the crypto-backed default.
func Generate(src rng.Source, rows, cols int, opts Options) Board {
	return NewGenerator(src).Generate(rows, cols, opts)
}
