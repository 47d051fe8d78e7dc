package mathsolve

import (
	"fmt"
	"strings"

	"github.com/njchilds90/gosymbol"
)

// functions the canonical grammar admits by name.
var knownFuncs = map[string]func(gosymbol.Expr) gosymbol.Expr{
	"sin":  gosymbol.SinOf,
	"cos":  gosymbol.CosOf,
	"tan":  gosymbol.TanOf,
	"asin": gosymbol.AsinOf,
	"acos": gosymbol.AcosOf,
	"atan": gosymbol.AtanOf,
	"exp":  gosymbol.ExpOf,
	"ln":   gosymbol.LnOf,
	"log":  gosymbol.LnOf,
	"sqrt": gosymbol.SqrtOf,
	"abs":  gosymbol.AbsOf,
}

// Parse reads a canonical (normalized) expression into the symbolic
// engine. The grammar is deliberately narrow — it accepts exactly what
// Normalize emits:
//
//	expr   = term { ("+"|"-") term }
//	term   = factor { ("*"|"/") factor }
//	factor = { "+" | "-" } power
//	power  = atom [ "^" factor ]
//	atom   = number | letter | name "(" expr ")" | "(" expr ")"
//
// Variables are single letters; longer runs of letters must name a known
// function and be applied to a parenthesized argument.
func Parse(src string) (gosymbol.Expr, error) {
	p := &parser{src: src}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return e, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expr() (gosymbol.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = gosymbol.AddOf(left, right)
		case '-':
			p.pos++
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = gosymbol.AddOf(left, gosymbol.MulOf(gosymbol.N(-1), right))
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (gosymbol.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = gosymbol.MulOf(left, right)
		case '/':
			p.pos++
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = gosymbol.MulOf(left, gosymbol.PowOf(right, gosymbol.N(-1)))
		default:
			return left, nil
		}
	}
}

func (p *parser) factor() (gosymbol.Expr, error) {
	neg := false
	for {
		if c := p.peek(); c == '-' {
			neg = !neg
			p.pos++
		} else if c == '+' {
			p.pos++
		} else {
			break
		}
	}
	e, err := p.power()
	if err != nil {
		return nil, err
	}
	if neg {
		e = gosymbol.MulOf(gosymbol.N(-1), e)
	}
	return e, nil
}

func (p *parser) power() (gosymbol.Expr, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	// right-associative, and the exponent may carry its own sign
	exp, err := p.factor()
	if err != nil {
		return nil, err
	}
	return gosymbol.PowOf(base, exp), nil
}

func (p *parser) atom() (gosymbol.Expr, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("missing ')' at offset %d", p.pos)
		}
		p.pos++
		return e, nil
	case c >= '0' && c <= '9', c == '.':
		return p.number()
	case c >= 'a' && c <= 'z':
		return p.symbolOrCall()
	case c == 0:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", c, p.pos)
	}
}

// number reads an integer or decimal literal into an exact rational.
func (p *parser) number() (gosymbol.Expr, error) {
	start := p.pos
	dots := 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' {
			dots++
		} else if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	lit := p.src[start:p.pos]
	if dots > 1 || lit == "." {
		return nil, fmt.Errorf("bad number %q at offset %d", lit, start)
	}
	whole, frac, _ := strings.Cut(lit, ".")
	var val int64
	for _, d := range whole + frac {
		if val > (1<<62)/10 {
			// out of exact range; nobody writes OCR numbers this long,
			// reject rather than silently lose precision
			return nil, fmt.Errorf("number %q too large", lit)
		}
		val = val*10 + int64(d-'0')
	}
	den := int64(1)
	for range frac {
		den *= 10
	}
	if den == 1 {
		return gosymbol.N(val), nil
	}
	return gosymbol.F(val, den), nil
}

func (p *parser) symbolOrCall() (gosymbol.Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
		p.pos++
	}
	name := p.src[start:p.pos]
	if len(name) == 1 {
		return gosymbol.S(name), nil
	}
	fn, ok := knownFuncs[name]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %q at offset %d", name, start)
	}
	if p.peek() != '(' {
		return nil, fmt.Errorf("function %q needs an argument at offset %d", name, p.pos)
	}
	p.pos++
	arg, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.peek() != ')' {
		return nil, fmt.Errorf("missing ')' at offset %d", p.pos)
	}
	p.pos++
	return fn(arg), nil
}
