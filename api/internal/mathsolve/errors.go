package mathsolve

import (
	"fmt"
	"strings"
)

// NormalizationError means a raw math-like string could not be rewritten
// into a form the symbolic engine parses, even after the relaxed-operator
// retry. Both parser failures are carried so the caller can report a
// combined diagnostic instead of retrying.
type NormalizationError struct {
	Raw      string
	Primary  error
	Fallback error
}

func (e *NormalizationError) Error() string {
	if e.Fallback != nil {
		return fmt.Sprintf("cannot normalize %q: %v; relaxed retry: %v", e.Raw, e.Primary, e.Fallback)
	}
	return fmt.Sprintf("cannot normalize %q: %v", e.Raw, e.Primary)
}

func (e *NormalizationError) Unwrap() error { return e.Primary }

// UndefinedSymbolError reports free variables the engine cannot resolve.
// It is returned verbatim to the caller, never retried.
type UndefinedSymbolError struct {
	Symbols []string
}

func (e *UndefinedSymbolError) Error() string {
	return "equation has unresolved symbols: " + strings.Join(e.Symbols, ", ")
}
