package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unitAliases maps common shorthand to the canonical unit vocabulary.
var unitAliases = map[string]string{
	"l":   "lt",
	"gr":  "g",
	"pz.": "pz",
	"pcs": "pz",
	"pc":  "pz",
}

// Unit canonicalizes a free-text unit token. Unknown tokens pass through
// unchanged, so the function is total.
func Unit(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if canon, ok := unitAliases[u]; ok {
		return canon
	}
	return u
}

// factors is the closed conversion table for the MVP domain: weight,
// volume and count. No transitive chains are derived from it; bottles
// count as pieces.
var factors = map[[2]string]float64{
	{"kg", "g"}:  1000,
	{"g", "kg"}:  1.0 / 1000,
	{"lt", "ml"}: 1000,
	{"ml", "lt"}: 1.0 / 1000,
	{"pz", "bt"}: 1,
	{"bt", "pz"}: 1,
}

// Factor returns the multiplier that converts a quantity expressed in from
// into the same quantity expressed in to. The second result is false when
// the pair is not convertible; callers must branch on it before using the
// factor.
func Factor(from, to string) (float64, bool) {
	from, to = Unit(from), Unit(to)
	if from == to {
		return 1, true
	}
	f, ok := factors[[2]string{from, to}]
	return f, ok
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name canonicalizes an item name for equality comparison: lowercase,
// diacritics stripped, anything outside [a-z0-9] collapsed to single
// spaces. Never use the result for display.
func Name(raw string) string {
	s := strings.ToLower(raw)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
