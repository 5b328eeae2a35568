package eval

import (
	"github.com/advcalc/eval/calc"
)

// Func is a unary function registrable with an Evaluator. A Func validates
// its own domain; any error it returns aborts the evaluation and surfaces
// unchanged.
type Func func(x float64) (float64, error)

// Evaluator computes infix arithmetic expressions over mutable tables of
// named constants and unary functions. Each Evaluator owns independent
// tables; there is no global registry. An Evaluator is not safe for
// concurrent use: registrations must not overlap an in-flight Evaluate.
type Evaluator struct {
	funcs  map[string]Func
	consts map[string]float64
}

// New creates an Evaluator with the default functions and constants
// registered.
func New() *Evaluator {
	ev := &Evaluator{
		funcs:  make(map[string]Func, len(defaultFuncs)),
		consts: make(map[string]float64, len(defaultConsts)),
	}
	for name, fn := range defaultFuncs {
		ev.funcs[name] = fn
	}
	for name, v := range defaultConsts {
		ev.consts[name] = v
	}
	return ev
}

// RegisterFunc inserts or replaces a function binding. The last registration
// for a name wins. Function-call syntax always resolves against the function
// table, even when the same name is also registered as a constant.
func (ev *Evaluator) RegisterFunc(name string, fn Func) {
	ev.funcs[name] = fn
}

// RegisterConst inserts or replaces a constant binding. The last
// registration for a name wins.
func (ev *Evaluator) RegisterConst(name string, value float64) {
	ev.consts[name] = value
}

// Evaluate parses and computes the value of a complete expression in a
// single pass over src. The entire input must be consumed: anything left
// after the top-level expression other than trailing blanks is a
// TrailingError. The tables are read-only during the call, and they survive
// failed evaluations unchanged.
//
// Every failure is reported as an error and aborts the evaluation
// immediately; parse failures implement InputError, and domain failures are
// the registered function's own error.
func (ev *Evaluator) Evaluate(src string) (float64, error) {
	p := parser{src: src, ev: ev}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, &TrailingError{Col: p.pos + 1, Text: p.src[p.pos:]}
	}
	return v, nil
}

// pure adapts a total function to the Func signature.
func pure(f func(float64) float64) Func {
	return func(x float64) (float64, error) { return f(x), nil }
}

var defaultFuncs = map[string]Func{
	"sin":  pure(calc.Sin),
	"cos":  pure(calc.Cos),
	"tan":  pure(calc.Tan),
	"asin": calc.Asin,
	"acos": calc.Acos,
	"atan": pure(calc.Atan),

	"sinh": pure(calc.Sinh),
	"cosh": pure(calc.Cosh),
	"tanh": pure(calc.Tanh),

	"sqrt": calc.Sqrt,
	"cbrt": pure(calc.Cbrt),
	"abs":  pure(calc.Abs),

	"exp":  pure(calc.Exp),
	"ln":   calc.Ln,
	"log":  calc.Log10,
	"log2": calc.Log2,

	"floor": pure(calc.Floor),
	"ceil":  pure(calc.Ceil),
	"round": pure(calc.Round),
}

var defaultConsts = map[string]float64{
	"pi":  calc.Pi,
	"e":   calc.E,
	"phi": calc.Phi,
}
