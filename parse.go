package eval

import (
	"strconv"

	"github.com/advcalc/eval/calc"
)

// Grammar, precedence low to high:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/' | '%') factor)*
//	factor     := ('-' | '+') factor
//	            | '(' expression ')' ('^' factor)?
//	            | identifier '(' expression ')' ('^' factor)?
//	            | identifier ('^' factor)?
//	            | number ('^' factor)?
//	number     := digit+ ('.' digit+)? (('e'|'E') ('+'|'-')? digit+)?
//
// The exponent recurses into factor rather than term, making '^'
// right-associative, and the unary branch recurses into factor, so unary
// sign binds tighter than '^': -2^2 is -(2^2).

// maxDepth bounds the number of nested factors so that hostile inputs fail
// with a DepthError instead of exhausting the goroutine stack.
const maxDepth = 10000

// parser is the cursor for one evaluation: the input text and a byte offset
// into it. It is owned by a single Evaluate call and advances only forward.
type parser struct {
	src   string
	pos   int
	depth int
	ev    *Evaluator
}

// skipSpace advances past spaces and tabs. Newlines are not expression
// whitespace.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// expression parses a chain of terms joined by addition and subtraction,
// left to right.
func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return v, nil
		}
		switch p.src[p.pos] {
		case '+':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v = calc.Add(v, r)
		case '-':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v = calc.Sub(v, r)
		default:
			return v, nil
		}
	}
}

// term parses a chain of factors joined by multiplication, division, and
// modulo, left to right.
func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return v, nil
		}
		switch p.src[p.pos] {
		case '*':
			p.pos++
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v = calc.Mul(v, r)
		case '/':
			p.pos++
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v, err = calc.Div(v, r)
			if err != nil {
				return 0, err
			}
		case '%':
			p.pos++
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v, err = calc.Mod(v, r)
			if err != nil {
				return 0, err
			}
		default:
			return v, nil
		}
	}
}

// factor parses the tightest-binding production: unary sign, parenthesized
// group, function call, constant, or number, each of the last four optionally
// followed by a power.
func (p *parser) factor() (float64, error) {
	if p.depth++; p.depth > maxDepth {
		return 0, &DepthError{Col: p.pos + 1}
	}
	defer func() { p.depth-- }()
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, &EOFError{Col: p.pos + 1}
	}
	switch c := p.src[p.pos]; {
	case c == '-' || c == '+':
		p.pos++
		v, err := p.factor()
		if err != nil {
			return 0, err
		}
		if c == '-' {
			v = -v
		}
		return v, nil
	case c == '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if err := p.closeParen(""); err != nil {
			return 0, err
		}
		return p.power(v)
	case isNameStart(c):
		return p.name()
	default:
		v, err := p.number()
		if err != nil {
			return 0, err
		}
		return p.power(v)
	}
}

// power consumes an optional exponent after a primary. The right operand is
// a factor, so '^' chains right-associatively. NaN results, e.g. a negative
// base with a fractional exponent, pass through as values.
func (p *parser) power(base float64) (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '^' {
		return base, nil
	}
	p.pos++
	exp, err := p.factor()
	if err != nil {
		return 0, err
	}
	return calc.Pow(base, exp), nil
}

// closeParen requires a ')' at the cursor. fn names the called function when
// the parenthesis opened an argument list.
func (p *parser) closeParen(fn string) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ')' {
		return &BracketError{Col: p.pos + 1, Func: fn}
	}
	p.pos++
	return nil
}

// name resolves an identifier as a function call when followed by '(', and
// as a constant otherwise. The argument is parsed before the name is looked
// up, so a call to an unknown function still requires well-formed input.
func (p *parser) name() (float64, error) {
	col := p.pos + 1
	name := p.scanName()
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		p.pos++
		arg, err := p.expression()
		if err != nil {
			return 0, err
		}
		if err := p.closeParen(name); err != nil {
			return 0, err
		}
		fn := p.ev.funcs[name]
		if fn == nil {
			return 0, &FuncError{Col: col, Name: name}
		}
		v, err := fn(arg)
		if err != nil {
			return 0, err
		}
		return p.power(v)
	}
	v, ok := p.ev.consts[name]
	if !ok {
		return 0, &NameError{Col: col, Name: name}
	}
	return p.power(v)
}

// scanName consumes a maximal run of ASCII letters, digits, and underscores.
// The caller has checked that the byte at the cursor starts a name.
func (p *parser) scanName() string {
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// number scans a numeric literal at the cursor: digits with at most one
// decimal point, then an optional e/E exponent with an optional sign.
func (p *parser) number() (float64, error) {
	p.skipSpace()
	col := p.pos + 1
	start := p.pos
	dot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' {
			if dot {
				p.pos++
				return 0, &NumberError{Col: col, Text: p.src[start:p.pos]}
			}
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	// Take the exponent only when at least one digit follows the marker and
	// its optional sign; a bare trailing 'e' belongs to the next token.
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		q := p.pos + 1
		if q < len(p.src) && (p.src[q] == '+' || p.src[q] == '-') {
			q++
		}
		if q < len(p.src) && '0' <= p.src[q] && p.src[q] <= '9' {
			p.pos = q
			for p.pos < len(p.src) && '0' <= p.src[p.pos] && p.src[p.pos] <= '9' {
				p.pos++
			}
		}
	}
	if p.pos == start {
		return 0, &NumberError{Col: col}
	}
	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &NumberError{Col: col, Text: text}
	}
	return v, nil
}

func isNameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isNameByte(c byte) bool {
	return isNameStart(c) || '0' <= c && c <= '9' || c == '_'
}
