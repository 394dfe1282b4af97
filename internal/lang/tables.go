// internal/lang/tables.go
//
// Letter-frequency tables for board generation.
//
// Each language carries:
//   - an ordered glyph list (the iteration order for weighted sampling),
//   - relative weights approximating real-world letter frequency
//     (percentages; not required to sum to 100),
//   - an ordered vowel set.
//
// Glyphs are uppercase and may span more than one rune (Spanish digraphs,
// accented French letters). Tables are built once at package init and are
// read-only afterwards.

package lang

import "unicode/utf8"

// Table holds the frequency data for one language.
type Table struct {
	Glyphs  []string           // sampling iteration order
	Weights map[string]float64 // relative weight per glyph
	Vowels  []string           // ordered vowel set

	total float64 // sum of all weights, precomputed
}

type entry struct {
	glyph  string
	weight float64
}

func newTable(vowels []string, entries []entry) *Table {
	t := &Table{
		Glyphs:  make([]string, 0, len(entries)),
		Weights: make(map[string]float64, len(entries)),
		Vowels:  vowels,
	}
	for _, e := range entries {
		t.Glyphs = append(t.Glyphs, e.glyph)
		t.Weights[e.glyph] = e.weight
		t.total += e.weight
	}
	return t
}

// TotalWeight returns the sum of all glyph weights.
func (t *Table) TotalWeight() float64 { return t.total }

// Weight returns the relative weight of a glyph, 0 if absent.
func (t *Table) Weight(glyph string) float64 { return t.Weights[glyph] }

// Contains reports whether the table carries the glyph.
func (t *Table) Contains(glyph string) bool {
	_, ok := t.Weights[glyph]
	return ok
}

// FirstVowel returns the first entry of the vowel set.
// Used as the deterministic fallback for vowel-only draws.
func (t *Table) FirstVowel() string { return t.Vowels[0] }

// tables maps language codes to their frequency tables.
var tables = map[string]*Table{
	"en": newTable(
		[]string{"A", "E", "I", "O", "U", "Y"},
		[]entry{
			{"E", 12.70}, {"T", 9.06}, {"A", 8.17}, {"O", 7.51}, {"I", 6.97},
			{"N", 6.75}, {"S", 6.33}, {"H", 6.09}, {"R", 5.99}, {"D", 4.25},
			{"L", 4.03}, {"C", 2.78}, {"U", 2.76}, {"M", 2.41}, {"W", 2.36},
			{"F", 2.23}, {"G", 2.02}, {"Y", 1.97}, {"P", 1.93}, {"B", 1.49},
			{"V", 0.98}, {"K", 0.77}, {"J", 0.15}, {"X", 0.15}, {"Q", 0.10},
			{"Z", 0.07},
		},
	),
	"es": newTable(
		[]string{"A", "E", "I", "O", "U"},
		[]entry{
			{"E", 13.68}, {"A", 12.53}, {"O", 8.68}, {"S", 7.98}, {"R", 6.87},
			{"N", 6.71}, {"I", 6.25}, {"D", 5.86}, {"L", 4.97}, {"C", 4.68},
			{"T", 4.63}, {"U", 3.93}, {"M", 3.15}, {"P", 2.51}, {"B", 1.42},
			{"G", 1.01}, {"V", 0.90}, {"Y", 0.90}, {"Q", 0.88}, {"H", 0.70},
			{"F", 0.69}, {"Z", 0.52}, {"LL", 0.43}, {"J", 0.44}, {"Ñ", 0.31},
			{"CH", 0.30}, {"X", 0.22}, {"RR", 0.21}, {"W", 0.02}, {"K", 0.01},
		},
	),
	"fr": newTable(
		[]string{"A", "E", "I", "O", "U", "Y"},
		[]entry{
			{"E", 14.72}, {"S", 7.95}, {"A", 7.64}, {"I", 7.53}, {"T", 7.24},
			{"N", 7.10}, {"R", 6.55}, {"U", 6.31}, {"O", 5.80}, {"L", 5.46},
			{"D", 3.67}, {"C", 3.26}, {"M", 2.97}, {"P", 2.52}, {"É", 1.90},
			{"V", 1.84}, {"Q", 1.36}, {"F", 1.07}, {"B", 0.90}, {"G", 0.87},
			{"H", 0.74}, {"J", 0.61}, {"À", 0.49}, {"X", 0.43}, {"Z", 0.33},
			{"È", 0.27}, {"Ê", 0.22}, {"Y", 0.13}, {"Ç", 0.09}, {"Ù", 0.06},
			{"W", 0.05}, {"Â", 0.05}, {"Î", 0.05}, {"Ô", 0.02}, {"K", 0.01},
		},
	),
}

// TableFor returns the frequency table for a language code,
// falling back to English for unknown codes.
func TableFor(code string) *Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return tables[DefaultCode]
}

// SpecialGlyphs lists the glyphs of the donor language that are "special"
// relative to the target language: multi-rune glyphs, and glyphs absent from
// the target's table. Order follows the donor table's glyph order.
func SpecialGlyphs(target, donor string) []string {
	tt := TableFor(target)
	dt := TableFor(donor)
	var out []string
	for _, g := range dt.Glyphs {
		if utf8.RuneCountInString(g) > 1 || !tt.Contains(g) {
			out = append(out, g)
		}
	}
	return out
}
