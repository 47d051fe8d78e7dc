package classify

import (
	"strings"
	"unicode"
)

// forbiddenSymbols almost never appear in legitimate arithmetic or algebra
// but show up in corrupt OCR output.
var forbiddenSymbols = map[rune]struct{}{
	'°': {},
	'@': {},
	':': {},
	'$': {},
}

const operators = "+-*/^"

// mathSymbols counts toward the math-vs-alpha ratio check.
const mathSymbols = "+-*/=^()."

// Features are cheap lexical signals derived from one OCR result.
// They are recomputed per classification call and never stored.
type Features struct {
	HasDigit           bool    `json:"has_digit"`
	HasOperator        bool    `json:"has_operator"`
	HasEquals          bool    `json:"has_equals"`
	HasForbiddenSymbol bool    `json:"has_forbidden_symbol"`
	EndsWithQuestion   bool    `json:"ends_with_question"` // trailing "?" or "?)"
	FirstWord          string  `json:"first_word"`
	WordCount          int     `json:"word_count"`
	CJKRatio           float64 `json:"cjk_ratio"`
	AlphaRatio         float64 `json:"alpha_ratio"`

	// Raw counts consumed by the ratio rules of the cascade.
	Length          int `json:"length"` // total characters (runes), whitespace included
	TrimmedLength   int `json:"trimmed_length"`
	NonSpaceCount   int `json:"non_space_count"`
	AlphaCount      int `json:"alpha_count"`
	MathSymbolCount int `json:"math_symbol_count"`

	// Lower-cased working copy for keyword and phrase matching.
	// Character-class counts above come from the original text.
	Lower string `json:"-"`
}

// Extract computes Features for text. Pure and deterministic.
func Extract(text string) Features {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	f := Features{
		Lower:         lower,
		WordCount:     len(words),
		Length:        len([]rune(text)),
		TrimmedLength: len([]rune(strings.TrimSpace(text))),
		HasEquals:     strings.ContainsRune(text, '='),
		CJKRatio:      CJKRatio(text),
	}
	if len(words) > 0 {
		f.FirstWord = words[0]
	}
	f.EndsWithQuestion = strings.HasSuffix(lower, "?") || strings.HasSuffix(lower, "?)")

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		f.NonSpaceCount++
		if unicode.IsDigit(r) {
			f.HasDigit = true
		}
		if unicode.IsLetter(r) {
			f.AlphaCount++
		}
		if strings.ContainsRune(operators, r) {
			f.HasOperator = true
		}
		if _, bad := forbiddenSymbols[r]; bad {
			f.HasForbiddenSymbol = true
		}
		if unicode.IsDigit(r) || strings.ContainsRune(mathSymbols, r) {
			f.MathSymbolCount++
		}
	}
	if f.NonSpaceCount > 0 {
		f.AlphaRatio = float64(f.AlphaCount) / float64(f.NonSpaceCount)
	}
	return f
}
