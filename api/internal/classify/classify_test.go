package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ProblemType
	}{
		// empty input goes visual
		{"empty", "", Visual},
		{"whitespace only", "   \n\t", Visual},

		// CJK dominance beats everything else
		{"cjk sentence", "圖片中有一個問題", Text},
		{"cjk with digits", "計算 12 加 34 的總和", Text},

		// forbidden symbols gate the math rules
		{"price tag", "$100", Visual},
		{"time notation", "3:45", Visual},
		{"degrees", "90° + 45°", Visual},
		{"forbidden but question shaped", "What time is it @ noon?", Text},

		// question shape
		{"capital question", "What is the capital of France?", Text},
		{"question starter no mark", "Who painted the Mona Lisa", Text},
		{"parenthesized question", "(What is this?)", Text},
		{"arithmetic question", "What is 15% of 200?", Text},
		{"solve with equals is not a question", "Solve 2x + 4 = 10", Math},

		// explicit math phrases
		{"solve for", "solve for x 2x + 4 = 10", Math},
		{"derivative", "derivative of x^2", Math},

		// structural math
		{"linear equation", "2x - 4 = 0", Math},
		{"spaced equation", "2 * x = 4", Math},
		{"solve prefix", "solve 2x+4", Math},

		// pure arithmetic
		{"simple sum", "2 + 2", Math},
		{"nested arithmetic", "(1+2)*3^2", Math},

		// alpha dominance
		{"english sentence", "The quick brown fox jumps", Text},

		// short leftovers go visual
		{"short gibberish", "asdf ghjk", Visual},

		// residual content with digits
		{"digit heavy no operator", "12345 67890 ab!!", Text},

		// nothing recognizable
		{"punctuation only", "!!! ...", Visual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

// A text with a forbidden symbol can only come out Text or Visual,
// whatever else it contains.
func TestForbiddenSymbolNeverMath(t *testing.T) {
	inputs := []string{
		"$2 + 2",
		"2x - 4 = 0 @ noon",
		"solve for x: 2x + 4 = 10",
		"90° angle",
	}
	for _, in := range inputs {
		got := Classify(in)
		assert.NotEqual(t, Math, got, "input %q", in)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	in := "Solve 2x + 4 = 10"
	first := Classify(in)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Classify(in))
	}
}

func TestExtract(t *testing.T) {
	f := Extract("Solve 2x + 4 = 10?")

	assert.True(t, f.HasDigit)
	assert.True(t, f.HasOperator)
	assert.True(t, f.HasEquals)
	assert.False(t, f.HasForbiddenSymbol)
	assert.True(t, f.EndsWithQuestion)
	assert.Equal(t, "solve", f.FirstWord)
	assert.Equal(t, 6, f.WordCount)
	assert.Equal(t, 18, f.Length)
	assert.Equal(t, 13, f.NonSpaceCount)
	assert.Equal(t, 6, f.AlphaCount)
	assert.Equal(t, 6, f.MathSymbolCount)
}

func TestExtractCountsCJKAsAlpha(t *testing.T) {
	f := Extract("圖片ab")
	assert.Equal(t, 4, f.AlphaCount)
	assert.InDelta(t, 0.5, f.CJKRatio, 1e-9)
}
