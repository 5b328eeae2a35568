// Package eval implements an infix arithmetic calculator over named
// constants and unary functions.
//
// An Evaluator owns two tables, one mapping names to unary functions and one
// mapping names to constant values, and computes expressions like
// "sin(pi/2) + 2^-3" in a single recursive-descent pass over the text.
// Precedence has the four standard tiers: addition and subtraction;
// multiplication, division, and modulo; exponentiation; unary sign.
// Exponentiation is right-associative, and unary sign binds tighter than it,
// so "-2^2" is -(2^2).
//
// Evaluate computes inline during the descent and retains nothing between
// calls. Hosts that evaluate one expression many times with varying variable
// bindings can use Compile instead, which builds a small reusable tree.
package eval
