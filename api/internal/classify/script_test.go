package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCJK(t *testing.T) {
	for _, r := range "圖片中有一個問題あカ한" {
		assert.True(t, isCJK(r), "rune %q", r)
	}
	for _, r := range "abc123 ?=+" {
		assert.False(t, isCJK(r), "rune %q", r)
	}
}

func TestCJKRatio(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t\n", 0},
		{"pure cjk", "圖片中有", 1},
		{"mixed half", "圖片ab", 0.5},
		{"latin only", "hello", 0},
		{"whitespace ignored", "圖 片", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CJKRatio(tt.in), 1e-9)
		})
	}
}
