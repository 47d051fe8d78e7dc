package telegram

import (
	"strings"

	"snapsolve/api/internal/classify"
	"snapsolve/api/internal/solve"
)

// FormatAnswer renders a routed answer as a Telegram reply.
func FormatAnswer(ans solve.Answer) string {
	var b strings.Builder

	switch ans.Type {
	case classify.Math:
		b.WriteString("Math problem")
	case classify.Text:
		b.WriteString("Text question")
	default:
		b.WriteString("Visual puzzle")
	}
	if ans.Source != "" {
		b.WriteString(" (" + ans.Source + ")")
	}
	b.WriteString("\n")

	if ans.Recognized != "" {
		b.WriteString("\nRecognized:\n" + strings.TrimSpace(ans.Recognized) + "\n")
	}
	if ans.Equation != "" {
		b.WriteString("\nEquation: " + ans.Equation + " = 0\n")
	}
	if len(ans.Solutions) > 0 {
		b.WriteString("Solutions: " + strings.Join(ans.Solutions, ", ") + "\n")
	}
	if ans.Note != "" {
		b.WriteString("Note: " + ans.Note + "\n")
	}
	if ans.Text != "" {
		b.WriteString("\n" + strings.TrimSpace(ans.Text) + "\n")
	}
	return strings.TrimSpace(b.String())
}
