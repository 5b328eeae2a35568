package eval

import (
	"sort"
	"strconv"
	"strings"

	"github.com/advcalc/eval/calc"
)

// Expr is a compiled expression. Compiling is the alternative to Evaluate
// for hosts that evaluate the same expression many times with different
// variable bindings: the descent runs once and builds a small tree instead
// of computing inline.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of free variable names in the expression.
	names []string
}

// node is a node in the compiled form of an expression.
type node struct {
	kind nodeKind

	num  float64 // nodeNum
	name string  // nodeName, nodeCall
	fn   Func    // nodeCall
	op   byte    // nodeUnary: - or +; nodeBin: + - * / % ^

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota
	nodeNum           // literal
	nodeName          // variable or constant reference
	nodeCall          // apply fn to left
	nodeUnary         // apply sign op to left
	nodeBin           // apply binary op to left and right
)

// Compile parses src against ev's function table and builds a reusable
// expression. The grammar and error taxonomy are exactly those of Evaluate.
// Identifiers that are not function calls and have no constant binding in ev
// at compile time become free variables, bound at evaluation time.
func Compile(src string, ev *Evaluator) (*Expr, error) {
	c := compiler{parser: parser{src: src, ev: ev}, seen: make(map[string]bool)}
	n, err := c.expression()
	if err != nil {
		return nil, err
	}
	c.skipSpace()
	if c.pos < len(c.src) {
		return nil, &TrailingError{Col: c.pos + 1, Text: c.src[c.pos:]}
	}
	e := Expr{n: n, names: make([]string, 0, len(c.seen))}
	for name := range c.seen {
		e.names = append(e.names, name)
	}
	sort.Strings(e.names)
	return &e, nil
}

// Eval evaluates the compiled expression. Names resolve first in vars, then
// in ev's constant table; a name bound in neither is a NameError. The same
// Expr may be evaluated any number of times.
func (e *Expr) Eval(ev *Evaluator, vars map[string]float64) (float64, error) {
	return e.n.eval(ev, vars)
}

// Vars returns the names that had no constant binding when the expression
// was compiled and so must come from the vars map at evaluation time.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// compiler runs the same descent as the inline evaluator but builds nodes.
type compiler struct {
	parser
	// seen is the set of free variable names encountered this compile.
	seen map[string]bool
}

func (c *compiler) expression() (*node, error) {
	n, err := c.term()
	if err != nil {
		return nil, err
	}
	for {
		c.skipSpace()
		if c.pos >= len(c.src) {
			return n, nil
		}
		op := c.src[c.pos]
		if op != '+' && op != '-' {
			return n, nil
		}
		c.pos++
		r, err := c.term()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBin, op: op, left: n, right: r}
	}
}

func (c *compiler) term() (*node, error) {
	n, err := c.factor()
	if err != nil {
		return nil, err
	}
	for {
		c.skipSpace()
		if c.pos >= len(c.src) {
			return n, nil
		}
		op := c.src[c.pos]
		if op != '*' && op != '/' && op != '%' {
			return n, nil
		}
		c.pos++
		r, err := c.factor()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBin, op: op, left: n, right: r}
	}
}

func (c *compiler) factor() (*node, error) {
	if c.depth++; c.depth > maxDepth {
		return nil, &DepthError{Col: c.pos + 1}
	}
	defer func() { c.depth-- }()
	c.skipSpace()
	if c.pos >= len(c.src) {
		return nil, &EOFError{Col: c.pos + 1}
	}
	switch b := c.src[c.pos]; {
	case b == '-' || b == '+':
		c.pos++
		n, err := c.factor()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeUnary, op: b, left: n}, nil
	case b == '(':
		c.pos++
		n, err := c.expression()
		if err != nil {
			return nil, err
		}
		if err := c.closeParen(""); err != nil {
			return nil, err
		}
		return c.power(n)
	case isNameStart(b):
		return c.name()
	default:
		v, err := c.number()
		if err != nil {
			return nil, err
		}
		return c.power(&node{kind: nodeNum, num: v})
	}
}

func (c *compiler) power(base *node) (*node, error) {
	c.skipSpace()
	if c.pos >= len(c.src) || c.src[c.pos] != '^' {
		return base, nil
	}
	c.pos++
	exp, err := c.factor()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeBin, op: '^', left: base, right: exp}, nil
}

func (c *compiler) name() (*node, error) {
	col := c.pos + 1
	name := c.scanName()
	c.skipSpace()
	if c.pos < len(c.src) && c.src[c.pos] == '(' {
		c.pos++
		arg, err := c.expression()
		if err != nil {
			return nil, err
		}
		if err := c.closeParen(name); err != nil {
			return nil, err
		}
		fn := c.ev.funcs[name]
		if fn == nil {
			return nil, &FuncError{Col: col, Name: name}
		}
		return c.power(&node{kind: nodeCall, name: name, fn: fn, left: arg})
	}
	if _, ok := c.ev.consts[name]; !ok {
		c.seen[name] = true
	}
	return c.power(&node{kind: nodeName, name: name})
}

// eval computes the node's value.
func (n *node) eval(ev *Evaluator, vars map[string]float64) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeName:
		if v, ok := vars[n.name]; ok {
			return v, nil
		}
		if v, ok := ev.consts[n.name]; ok {
			return v, nil
		}
		return 0, &NameError{Name: n.name}
	case nodeCall:
		arg, err := n.left.eval(ev, vars)
		if err != nil {
			return 0, err
		}
		return n.fn(arg)
	case nodeUnary:
		v, err := n.left.eval(ev, vars)
		if err != nil {
			return 0, err
		}
		if n.op == '-' {
			v = -v
		}
		return v, nil
	case nodeBin:
		l, err := n.left.eval(ev, vars)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(ev, vars)
		if err != nil {
			return 0, err
		}
		switch n.op {
		case '+':
			return calc.Add(l, r), nil
		case '-':
			return calc.Sub(l, r), nil
		case '*':
			return calc.Mul(l, r), nil
		case '/':
			return calc.Div(l, r)
		case '%':
			return calc.Mod(l, r)
		case '^':
			return calc.Pow(l, r), nil
		}
	}
	panic("eval: invalid node " + strconv.Itoa(int(n.kind)))
}

// String creates a fully parenthesized rendering of the compiled expression.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeUnary:
		b.WriteByte('(')
		b.WriteByte(n.op)
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeBin:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteByte(n.op)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		b.WriteByte('?')
	}
}
