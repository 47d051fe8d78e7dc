// Package mathsolve rewrites raw math-like OCR text into a canonical
// symbolic expression and solves it with the gosymbol engine.
package mathsolve

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// digit immediately (or across spaces) followed by a variable or an
	// opening paren is implied multiplication: 2x, 3(x+1)
	implicitAfterDigit = regexp.MustCompile(`([0-9])\s*([a-z(])`)
	// closing paren running into a digit, variable or another group:
	// (x+1)(x-1), (x+2)3
	implicitAfterParen = regexp.MustCompile(`(\))\s*([0-9a-z(])`)
)

// relaxedOperators maps operator glyphs OCR likes to emit onto the
// canonical ASCII set. Tried only when the strict rewrite fails to parse.
var relaxedOperators = strings.NewReplacer(
	"×", "*",
	"·", "*",
	"⋅", "*",
	"÷", "/",
	"−", "-",
	"–", "-",
	"＝", "=",
	"（", "(",
	"）", ")",
	"²", "^2",
	"³", "^3",
)

// Normalize rewrites raw into the canonical form the symbolic engine
// accepts: explicit multiplication, a single `^` power operator, any
// equality `A = B` folded into `(A)-(B)`, and no whitespace.
//
// It fails only when the rewritten string still cannot be parsed. On the
// strict failure a relaxed-operator variant is tried once; if that fails
// too, the returned *NormalizationError carries both diagnostics.
func Normalize(raw string) (string, error) {
	s := rewrite(raw)
	if _, err := Parse(s); err == nil {
		return s, nil
	} else {
		relaxed := rewrite(relaxedOperators.Replace(raw))
		if _, err2 := Parse(relaxed); err2 == nil {
			return relaxed, nil
		} else {
			return "", &NormalizationError{Raw: raw, Primary: err, Fallback: err2}
		}
	}
}

// rewrite applies the canonicalization steps in their fixed order. It
// never fails; garbage passes through and is rejected by the parse step.
func rewrite(raw string) string {
	// Variable case is insignificant to the engine; folding it first lets
	// the implied-multiplication patterns stay lower-case only.
	s := strings.ToLower(strings.TrimSpace(raw))

	// 1. Explicit multiplication.
	s = implicitAfterDigit.ReplaceAllString(s, `$1*$2`)
	s = implicitAfterParen.ReplaceAllString(s, `$1*$2`)

	// 2. Equality to zero. Only the first '=' splits; a second one
	// survives into the operand and fails the parse.
	if i := strings.IndexByte(s, '='); i >= 0 {
		s = "(" + s[:i] + ")-(" + s[i+1:] + ")"
	}

	// 3. Canonical exponent operator.
	s = strings.ReplaceAll(s, "**", "^")

	// 4. Strip whitespace.
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
