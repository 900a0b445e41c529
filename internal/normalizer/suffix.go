package normalizer

import "strings"

// adminSuffixes are the Korean administrative-unit suffix tokens, longest
// first so compound suffixes are consumed before their shorter tails
// (특별자치시 must go before 시, 특별자치도 before 도).
var adminSuffixes = []string{
	"특별자치시", // special self-governing city (세종)
	"특별자치도", // special self-governing province (제주)
	"광역시",   // metropolitan city
	"특별시",   // special city (서울)
	"시",     // city
	"도",     // province
	"군",     // county
	"구",     // district
}

// Normalize strips administrative suffix tokens anywhere in the name and
// trims surrounding whitespace, producing a loose comparison key
// ("충청북도" -> "충청북", "수원시" -> "수원"). Idempotent: once the tokens
// are gone a second pass is a no-op.
func Normalize(name string) string {
	s := name
	for _, suffix := range adminSuffixes {
		s = strings.ReplaceAll(s, suffix, "")
	}
	return strings.TrimSpace(s)
}
