// Package calc provides the real-valued operations behind the expression
// evaluator: basic arithmetic, powers and roots, exponentials and
// logarithms, trigonometry, and hyperbolics. Each operation validates its
// own domain and reports violations as a DomainError; callers are not
// expected to pre-check arguments.
package calc

import (
	"math"
	"strconv"
)

// Mathematical constants to the precision representable in a float64.
const (
	Pi  = 3.14159265358979323846
	E   = 2.71828182845904523536
	Phi = 1.61803398874989484820
)

// DomainError is an error returned when an operation is applied to an
// argument outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// Basic arithmetic.

func Add(a, b float64) float64 { return a + b }
func Sub(a, b float64) float64 { return a - b }
func Mul(a, b float64) float64 { return a * b }

// Div divides a by b. Division by exact zero is a domain error.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DomainError{X: b, Func: "/"}
	}
	return a / b, nil
}

// Mod computes the floating-point remainder of a/b with the sign of a.
// Modulo by exact zero is a domain error.
func Mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DomainError{X: b, Func: "%"}
	}
	return math.Mod(a, b), nil
}

// Pow raises base to exponent. There is no domain restriction beyond what
// real exponentiation implies; a negative base with a fractional exponent
// yields NaN, which is returned as a value rather than an error.
func Pow(base, exponent float64) float64 { return math.Pow(base, exponent) }

// Sqrt returns the square root of x. Negative x is a domain error.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, &DomainError{X: x, Func: "sqrt"}
	}
	return math.Sqrt(x), nil
}

func Cbrt(x float64) float64 { return math.Cbrt(x) }
func Abs(x float64) float64  { return math.Abs(x) }

// Exponentials and logarithms. The logarithms reject non-positive arguments.

func Exp(x float64) float64  { return math.Exp(x) }
func Exp2(x float64) float64 { return math.Exp2(x) }

func Ln(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{X: x, Func: "ln"}
	}
	return math.Log(x), nil
}

func Log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{X: x, Func: "log"}
	}
	return math.Log10(x), nil
}

func Log2(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{X: x, Func: "log2"}
	}
	return math.Log2(x), nil
}

// Trigonometry, angles in radians.

func Sin(x float64) float64 { return math.Sin(x) }
func Cos(x float64) float64 { return math.Cos(x) }
func Tan(x float64) float64 { return math.Tan(x) }

// Asin returns the arcsine of x. x must be in [-1, 1].
func Asin(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &DomainError{X: x, Func: "asin"}
	}
	return math.Asin(x), nil
}

// Acos returns the arccosine of x. x must be in [-1, 1].
func Acos(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &DomainError{X: x, Func: "acos"}
	}
	return math.Acos(x), nil
}

func Atan(x float64) float64     { return math.Atan(x) }
func Atan2(y, x float64) float64 { return math.Atan2(y, x) }

// Hyperbolics.

func Sinh(x float64) float64  { return math.Sinh(x) }
func Cosh(x float64) float64  { return math.Cosh(x) }
func Tanh(x float64) float64  { return math.Tanh(x) }
func Asinh(x float64) float64 { return math.Asinh(x) }

// Acosh returns the inverse hyperbolic cosine of x. x must be at least 1.
func Acosh(x float64) (float64, error) {
	if x < 1 {
		return 0, &DomainError{X: x, Func: "acosh"}
	}
	return math.Acosh(x), nil
}

// Atanh returns the inverse hyperbolic tangent of x. x must be strictly
// inside (-1, 1).
func Atanh(x float64) (float64, error) {
	if x <= -1 || x >= 1 {
		return 0, &DomainError{X: x, Func: "atanh"}
	}
	return math.Atanh(x), nil
}

// Rounding.

func Floor(x float64) float64 { return math.Floor(x) }
func Ceil(x float64) float64  { return math.Ceil(x) }
func Round(x float64) float64 { return math.Round(x) }

// Factorial computes n! through the gamma function. Negative n is a domain
// error, and n above 170 overflows a float64 and is rejected rather than
// returned as +Inf.
func Factorial(n int) (float64, error) {
	if n < 0 || n > 170 {
		return 0, &DomainError{X: float64(n), Func: "factorial"}
	}
	return math.Gamma(float64(n) + 1), nil
}
