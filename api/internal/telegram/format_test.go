package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snapsolve/api/internal/classify"
	"snapsolve/api/internal/solve"
)

func TestFormatAnswerMath(t *testing.T) {
	out := FormatAnswer(solve.Answer{
		Type:       classify.Math,
		Source:     "symbolic",
		Recognized: "2x - 4 = 0",
		Equation:   "(2*x-4)-(0)",
		Solutions:  []string{"2"},
	})
	assert.Contains(t, out, "Math problem (symbolic)")
	assert.Contains(t, out, "Recognized:\n2x - 4 = 0")
	assert.Contains(t, out, "Equation: (2*x-4)-(0) = 0")
	assert.Contains(t, out, "Solutions: 2")
}

func TestFormatAnswerText(t *testing.T) {
	out := FormatAnswer(solve.Answer{
		Type:   classify.Text,
		Source: "nlp",
		Text:   "The capital of France is Paris.",
	})
	assert.Contains(t, out, "Text question (nlp)")
	assert.Contains(t, out, "The capital of France is Paris.")
}

func TestFormatAnswerVisual(t *testing.T) {
	out := FormatAnswer(solve.Answer{
		Type:   classify.Visual,
		Source: "visual",
		Text:   "image: 40x40 png",
		Note:   "low confidence",
	})
	assert.Contains(t, out, "Visual puzzle (visual)")
	assert.Contains(t, out, "Note: low confidence")
	assert.Contains(t, out, "image: 40x40 png")
}
