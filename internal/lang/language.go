// internal/lang/language.go
//
// Language registry for the board generator.
// Defines:
//   - Language: code + English name of a supported board language.
//   - Lookup/Codes/Known: dispatch over the fixed set of configured languages.
//
// Unknown codes always resolve to English — generation never fails on a bad
// language code.

package lang

// Language identifies a supported board language.
type Language struct {
	Code string `json:"code"` // e.g. "es"
	Name string `json:"name"` // e.g. "Spanish"
}

// DefaultCode is the fallback language for unknown or empty codes.
const DefaultCode = "en"

// languages lists every configured language, in stable order.
var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
}

// Lookup resolves a language code to its Language entry.
// Unknown or empty codes resolve to English.
func Lookup(code string) Language {
	for _, l := range languages {
		if l.Code == code {
			return l
		}
	}
	return languages[0]
}

// Known reports whether code names a configured language.
func Known(code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Codes returns the configured language codes in stable order.
func Codes() []string {
	out := make([]string, len(languages))
	for i, l := range languages {
		out[i] = l.Code
	}
	return out
}
