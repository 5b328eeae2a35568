package eval_test

import (
	"math"
	"testing"

	"github.com/advcalc/eval"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("sin(pi/2)^2")
	f.Add("1..2")
	f.Add("((((((1))))))")
	f.Add("-2^-2")
	ev := eval.New()
	f.Fuzz(func(t *testing.T, src string) {
		ev.Evaluate(src)
	})
}

func FuzzCompileMatchesEvaluate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("sqrt(144)%5")
	f.Add("pi^e")
	ev := eval.New()
	f.Fuzz(func(t *testing.T, src string) {
		inline, ierr := ev.Evaluate(src)
		e, cerr := eval.Compile(src, ev)
		if cerr != nil {
			return
		}
		compiled, eerr := e.Eval(ev, nil)
		if ierr != nil || eerr != nil {
			return
		}
		if inline != compiled && !(math.IsNaN(inline) && math.IsNaN(compiled)) {
			t.Errorf("%q: inline %g, compiled %g", src, inline, compiled)
		}
	})
}
