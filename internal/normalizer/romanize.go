package normalizer

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks so "Ŭlsan" and "Ulsan" fold to the
// same form.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// isMn reports whether the rune is a combining diacritic mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// FoldExternal collapses a romanized region name to a loose comparison form:
// ASCII, lowercase, separators dropped ("Jeollabuk-do" -> "jeollabukdo",
// "Seogwipo si" -> "seogwiposi"). Only the suggestion ranking uses this; the
// match policy itself works on exact and suffix-normalized forms.
func FoldExternal(s string) string {
	folded := strings.ToLower(unidecode.Unidecode(StripDiacritics(s)))
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
