// Package classify decides which solver a block of recognized text belongs
// to: the symbolic math pipeline, natural-language question answering, or
// visual-puzzle analysis.
//
// The decision is a deterministic rule cascade evaluated top to bottom,
// first match wins. The ordering is load-bearing: later rules assume
// earlier ones already excluded their cases, so rules must not be
// reordered or merged.
package classify

import "strings"

// ProblemType is the routing verdict for one OCR result.
type ProblemType string

const (
	Math   ProblemType = "math"
	Text   ProblemType = "text"
	Visual ProblemType = "visual"
)

// questionStarters are first words that mark a natural-language question
// even without a trailing question mark.
var questionStarters = map[string]struct{}{
	"what": {}, "who": {}, "where": {}, "when": {}, "why": {}, "how": {},
	"is": {}, "are": {}, "do": {}, "does": {}, "did": {},
	"was": {}, "were": {}, "can": {}, "could": {}, "will": {}, "would": {},
	"should": {}, "may": {}, "might": {}, "which": {}, "list": {},
	"define": {}, "explain": {}, "describe": {}, "calculate": {},
	"name": {}, "tell": {},
}

// mathPhrases signal explicit math intent regardless of structure.
var mathPhrases = []string{
	"solve for",
	"find x",
	"find the value of x",
	"derivative of",
	"integral of",
	"factorize",
	"simplify:",
}

// A rule inspects Features and either claims the text for a problem type
// or passes it down the cascade.
type rule struct {
	name  string
	apply func(f Features) (ProblemType, bool)
}

// cascade is evaluated strictly in order. Forbidden OCR symbols gate all
// math rules: a text containing one can only end up Text or Visual.
var cascade = []rule{
	{"empty-input", func(f Features) (ProblemType, bool) {
		if f.NonSpaceCount == 0 {
			return Visual, true
		}
		return "", false
	}},
	{"cjk-dominant", func(f Features) (ProblemType, bool) {
		if f.NonSpaceCount > 5 && f.CJKRatio > 0.5 {
			return Text, true
		}
		return "", false
	}},
	{"forbidden-symbol-gate", func(f Features) (ProblemType, bool) {
		if !f.HasForbiddenSymbol {
			return "", false
		}
		if f.EndsWithQuestion || isQuestionStarter(f.FirstWord) {
			return Text, true
		}
		return Visual, true
	}},
	{"question-shape", func(f Features) (ProblemType, bool) {
		starter := isQuestionStarter(f.FirstWord) &&
			!(f.FirstWord == "solve" && f.HasEquals)
		if f.EndsWithQuestion || starter {
			return Text, true
		}
		return "", false
	}},
	{"explicit-math-phrase", func(f Features) (ProblemType, bool) {
		for _, p := range mathPhrases {
			if strings.Contains(f.Lower, p) {
				return Math, true
			}
		}
		return "", false
	}},
	{"structural-math", func(f Features) (ProblemType, bool) {
		structural := (f.HasEquals && f.HasOperator) ||
			(f.FirstWord == "solve" && f.HasOperator && (f.HasDigit || f.AlphaCount > 0))
		if !structural {
			return "", false
		}
		if float64(f.MathSymbolCount) > float64(f.AlphaCount)*0.3 ||
			f.AlphaCount < 10 ||
			f.FirstWord == "solve" {
			return Math, true
		}
		return "", false
	}},
	{"pure-arithmetic", func(f Features) (ProblemType, bool) {
		if f.HasDigit && f.HasOperator && isPureArithmetic(f.Lower) {
			return Math, true
		}
		return "", false
	}},
	{"alpha-dominant", func(f Features) (ProblemType, bool) {
		if float64(f.AlphaCount) > float64(f.Length)*0.5 && f.Length > 10 {
			return Text, true
		}
		return "", false
	}},
	{"short-text", func(f Features) (ProblemType, bool) {
		if f.TrimmedLength >= 15 {
			return "", false
		}
		if f.HasOperator && f.HasDigit {
			return Math, true
		}
		return Visual, true
	}},
	{"residual-content", func(f Features) (ProblemType, bool) {
		if !f.HasDigit && f.AlphaCount == 0 {
			return "", false
		}
		if f.HasOperator && f.HasDigit {
			return Math, true
		}
		return Text, true
	}},
	{"default", func(f Features) (ProblemType, bool) {
		return Visual, true
	}},
}

// Classify routes one OCR result to a problem type.
func Classify(text string) ProblemType {
	f := Extract(text)
	for _, r := range cascade {
		if t, ok := r.apply(f); ok {
			return t
		}
	}
	return Visual // unreachable: the cascade ends in a catch-all
}

func isQuestionStarter(word string) bool {
	_, ok := questionStarters[word]
	return ok
}

// isPureArithmetic reports whether every character belongs to the
// restricted arithmetic alphabet: digits, + - * / ^ ( ) . and whitespace.
func isPureArithmetic(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune("+-*/^().", r):
		case r == ' ', r == '\t', r == '\n', r == '\r':
		default:
			return false
		}
	}
	return true
}
