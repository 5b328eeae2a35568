package eval_test

import (
	"fmt"

	"github.com/advcalc/eval"
)

func ExampleEvaluator_Evaluate() {
	ev := eval.New()
	v, _ := ev.Evaluate("2 + 2 * 3")
	fmt.Println(v)

	ev.RegisterConst("answer", 42)
	v, _ = ev.Evaluate("answer / 2")
	fmt.Println(v)
	// Output:
	// 8
	// 21
}

func ExampleCompile() {
	ev := eval.New()
	e, _ := eval.Compile("x^2 - 1", ev)
	fmt.Println(e.Vars())
	for i := 0; i <= 3; i++ {
		y, _ := e.Eval(ev, map[string]float64{"x": float64(i)})
		fmt.Println(y)
	}
	// Output:
	// [x]
	// -1
	// 0
	// 3
	// 8
}
