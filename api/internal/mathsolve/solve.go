package mathsolve

import (
	"sort"

	"github.com/njchilds90/gosymbol"
)

// Result is the outcome of one math-path invocation. An empty Solutions
// list is a valid "no closed-form solution found" outcome, not an error;
// Note then carries the engine's remark.
type Result struct {
	Equation  string   `json:"equation"` // canonical form handed to the engine
	Variable  string   `json:"variable,omitempty"`
	Solutions []string `json:"solutions"`
	Note      string   `json:"note,omitempty"`
}

// Solve normalizes raw and solves the resulting expression for its single
// free variable. Errors are *NormalizationError or *UndefinedSymbolError.
func Solve(raw string) (Result, error) {
	eq, err := Normalize(raw)
	if err != nil {
		return Result{}, err
	}
	expr, err := Parse(eq)
	if err != nil {
		// Normalize validated the string already; reaching this means the
		// grammar and the validator disagree.
		return Result{}, &NormalizationError{Raw: raw, Primary: err}
	}

	res := Result{Equation: eq, Solutions: []string{}}

	free := gosymbol.FreeSymbols(expr)
	if len(free) > 1 {
		names := make([]string, 0, len(free))
		for n := range free {
			names = append(names, n)
		}
		sort.Strings(names)
		return Result{}, &UndefinedSymbolError{Symbols: names}
	}
	if len(free) == 0 {
		if n, ok := gosymbol.Simplify(expr).Eval(); ok {
			if n.IsZero() {
				res.Note = "identity: holds for all values"
			} else {
				res.Note = "constant expression, value " + n.String()
			}
		} else {
			res.Note = "constant expression"
		}
		return res, nil
	}

	var v string
	for n := range free {
		v = n
	}
	res.Variable = v

	expanded := gosymbol.Expand(expr)
	coeffs := gosymbol.PolyCoeffs(expanded, v)
	c := func(i int) gosymbol.Expr {
		if e, ok := coeffs[i]; ok {
			return e
		}
		return gosymbol.N(0)
	}

	var sr gosymbol.SolveResult
	switch deg := gosymbol.Degree(expanded, v); deg {
	case 1:
		sr = gosymbol.SolveLinear(c(1), c(0))
	case 2:
		sr = gosymbol.SolveQuadraticExact(c(2), c(1), c(0))
	case 3:
		sr = gosymbol.SolveCubic(c(3), c(2), c(1), c(0))
	default:
		// Degree 0 with a free variable (e.g. sin(x)-1/2) or degree > 3:
		// fall back to a numeric root search.
		sr = gosymbol.SolvePolynomialNewton(expanded, v, 100, 1e-9, 100)
	}

	for _, s := range sr.Solutions {
		res.Solutions = append(res.Solutions, s.String())
	}
	res.Note = sr.Error
	return res, nil
}
