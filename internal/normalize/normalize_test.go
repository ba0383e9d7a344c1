package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnit(t *testing.T) {
	cases := map[string]string{
		"l":        "lt",
		" L ":      "lt",
		"gr":       "g",
		"pz.":      "pz",
		"pcs":      "pz",
		"pc":       "pz",
		"kg":       "kg",
		"KG":       "kg",
		"handfuls": "handfuls", // unknown tokens pass through
	}
	for raw, want := range cases {
		assert.Equal(t, want, Unit(raw), "Unit(%q)", raw)
	}
}

func TestFactorIdentity(t *testing.T) {
	for _, u := range []string{"kg", "g", "lt", "ml", "pz", "bt", "cup"} {
		f, ok := Factor(u, u)
		assert.True(t, ok)
		assert.Equal(t, 1.0, f, "Factor(%q, %q)", u, u)
	}
}

func TestFactorTable(t *testing.T) {
	tests := []struct {
		from, to string
		want     float64
		ok       bool
	}{
		{"kg", "g", 1000, true},
		{"g", "kg", 1.0 / 1000, true},
		{"lt", "ml", 1000, true},
		{"ml", "lt", 1.0 / 1000, true},
		{"pz", "bt", 1, true},
		{"bt", "pz", 1, true},
		// aliases normalize before lookup
		{"l", "ml", 1000, true},
		{"gr", "kg", 1.0 / 1000, true},
		{"pcs", "bt", 1, true},
		// incompatible pairs, no transitive chains
		{"kg", "lt", 0, false},
		{"g", "lt", 0, false},
		{"kg", "pz", 0, false},
		{"ml", "g", 0, false},
	}
	for _, tt := range tests {
		f, ok := Factor(tt.from, tt.to)
		assert.Equal(t, tt.ok, ok, "Factor(%q, %q) compatibility", tt.from, tt.to)
		if tt.ok {
			assert.Equal(t, tt.want, f, "Factor(%q, %q)", tt.from, tt.to)
		}
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, Name("pomodori e"), Name("Pomodori È"))
	assert.Equal(t, "creme brulee", Name("Crème  Brûlée!"))
	assert.Equal(t, "farina 00", Name("  Farina '00' "))
	assert.Equal(t, "", Name("  ***  "))
}
