package mathsolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"implicit mult digit-var", "2x - 4", "2*x-4"},
		{"implicit mult digit-paren", "3(x+1) = 6", "(3*(x+1))-(6)"},
		{"implicit mult paren-paren", "(x+1)(x-1)", "(x+1)*(x-1)"},
		{"implicit mult across space", "2 x + 1", "2*x+1"},
		{"uppercase folded", "X^2 - 9", "x^2-9"},
		{"double star power", "2**3 + 1", "2^3+1"},
		{"equality folded", "2*x=4", "(2*x)-(4)"},
		{"already canonical", "2*x-4", "2*x-4"},
		{"function call", "sin(x) - 1", "sin(x)-1"},
		// relaxed retry for OCR operator glyphs
		{"unicode times", "2×3 − 1", "2*3-1"},
		{"superscript square", "x² − 4", "x^2-4"},
		{"fullwidth equals", "x＝5", "(x)-(5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A canonical form must survive a second pass unchanged.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"2x - 4",
		"3(x+1) = 6",
		"X^2 - 9",
		"2×3 − 1",
		"sin(x) - 1/2",
		"(x+1)(x-1)",
	}
	for _, in := range inputs {
		once, err := Normalize(in)
		require.NoError(t, err, "input %q", in)
		twice, err := Normalize(once)
		require.NoError(t, err, "renormalize %q", once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"gibberish word", "gibberish"},
		{"double equals", "a = b = c"},
		{"dangling operator", "2 +"},
		{"empty", ""},
		{"unbalanced paren", "(2x - 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.in)
			require.Error(t, err)
			var nerr *NormalizationError
			require.ErrorAs(t, err, &nerr)
			assert.Equal(t, tt.in, nerr.Raw)
			assert.Error(t, nerr.Primary)
		})
	}
}
