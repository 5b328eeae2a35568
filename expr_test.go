package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advcalc/eval"
)

func TestCompileEval(t *testing.T) {
	type binding struct {
		vars map[string]float64
		want float64
	}
	cases := []struct {
		name string
		src  string
		runs []binding
	}{
		{"num", "1", []binding{{nil, 1}}},
		{"var", "x", []binding{
			{map[string]float64{"x": 4}, 4},
			{map[string]float64{"x": 5}, 5},
		}},
		{"poly", "x^2 + y", []binding{
			{map[string]float64{"x": 3, "y": 4}, 13},
			{map[string]float64{"x": 0, "y": 1}, 1},
		}},
		{"const", "pi", []binding{{nil, math.Pi}}},
		{"call", "sqrt(x)", []binding{
			{map[string]float64{"x": 144}, 12},
		}},
		{"mod", "x%3", []binding{
			{map[string]float64{"x": 7}, 1},
		}},
		{"var-shadows-const", "pi", []binding{
			{map[string]float64{"pi": 3}, 3},
		}},
	}
	ev := eval.New()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := eval.Compile(c.src, ev)
			require.NoError(t, err, "%q failed to compile", c.src)
			for _, r := range c.runs {
				got, err := e.Eval(ev, r.vars)
				require.NoError(t, err)
				assert.Equal(t, r.want, got, "%q with %v", c.src, r.vars)
			}
		})
	}
}

func TestCompileVars(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars []string
	}{
		{"none", "1+2+3", nil},
		{"one", "1+2+x", []string{"x"}},
		{"sorted", "z+a+m", []string{"a", "m", "z"}},
		{"dedup", "a+b+a", []string{"a", "b"}},
		{"const-excluded", "x+pi", []string{"x"}},
		{"call-not-var", "sin(x)", []string{"x"}},
	}
	ev := eval.New()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := eval.Compile(c.src, ev)
			require.NoError(t, err)
			if c.vars == nil {
				assert.Empty(t, e.Vars())
			} else {
				assert.Equal(t, c.vars, e.Vars())
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	ev := eval.New()

	_, err := eval.Compile("foo(1)", ev)
	var fe *eval.FuncError
	assert.ErrorAs(t, err, &fe, "unknown functions are compile-time errors")

	_, err = eval.Compile("(1+2", ev)
	var be *eval.BracketError
	assert.ErrorAs(t, err, &be)

	_, err = eval.Compile("2+2)", ev)
	var te *eval.TrailingError
	assert.ErrorAs(t, err, &te)

	// Unbound names fail at evaluation time, not compile time.
	e, err := eval.Compile("x+1", ev)
	require.NoError(t, err)
	_, err = e.Eval(ev, nil)
	var ne *eval.NameError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "x", ne.Name)
}

func TestCompileMatchesEvaluate(t *testing.T) {
	srcs := []string{
		"2+3*4",
		"2^3^2",
		"-2^2",
		"sin(pi/6)^2",
		"sqrt(144) % 5",
		"10-2-3",
	}
	ev := eval.New()
	for _, src := range srcs {
		inline, err := ev.Evaluate(src)
		require.NoError(t, err)
		e, err := eval.Compile(src, ev)
		require.NoError(t, err)
		compiled, err := e.Eval(ev, nil)
		require.NoError(t, err)
		assert.Equal(t, inline, compiled, "inline and compiled disagree on %q", src)
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1+2*3", "(1 + (2 * 3))"},
		{"-x^2", "(-(x ^ 2))"},
		{"sin(x)^2", "(sin(x) ^ 2)"},
		{"(a+b)/c", "((a + b) / c)"},
	}
	ev := eval.New()
	for _, c := range cases {
		e, err := eval.Compile(c.src, ev)
		require.NoError(t, err)
		assert.Equal(t, c.want, e.String(), "source %q", c.src)
	}
}
