package eval

import "strconv"

// InputError is an error with position information. Every error the
// evaluator itself produces for invalid input implements InputError. Domain
// errors propagated from registered functions do not; they surface exactly
// as the function returned them.
type InputError interface {
	error
	// Pos returns the 1-based column of the byte that caused the error, or 0
	// when no position is known.
	Pos() int
}

// EOFError indicates that the input ended where a value was expected.
type EOFError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EOFError) Error() string {
	return errpos(err.Col, "unexpected end of expression")
}

func (err *EOFError) Pos() int {
	return err.Col
}

// BracketError indicates an opening parenthesis with no matching close, at a
// grouping site or around a function call argument.
type BracketError struct {
	// Col is the position where the closing parenthesis was expected.
	Col int
	// Func is the name of the called function when the parenthesis opened an
	// argument list, or the empty string for a grouping parenthesis.
	Func string
}

func (err *BracketError) Error() string {
	if err.Func != "" {
		return errpos(err.Col, "mismatched parentheses in call to "+err.Func)
	}
	return errpos(err.Col, "mismatched parentheses")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NumberError indicates an invalid numeric literal. An empty Text means a
// number was expected but not a single character scanned as one.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the malformed literal as scanned, including the offending
	// character.
	Text string
}

func (err *NumberError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "expected number")
	}
	return errpos(err.Col, "invalid number format: "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// FuncError indicates a call to a name with no function-table entry.
type FuncError struct {
	// Col is the position of the name.
	Col int
	// Name is the unknown function name.
	Name string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "unknown function: "+err.Name)
}

func (err *FuncError) Pos() int {
	return err.Col
}

// NameError indicates a bare identifier with no constant-table entry, or a
// compiled expression evaluated without a binding for one of its variables.
type NameError struct {
	// Col is the position of the identifier, or 0 when the lookup failed
	// while evaluating a compiled expression.
	Col int
	// Name is the unknown identifier.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown identifier: "+err.Name)
}

func (err *NameError) Pos() int {
	return err.Col
}

// TrailingError indicates input remaining after a complete expression, e.g.
// "2+2)" or "2 2".
type TrailingError struct {
	// Col is the position of the first unconsumed byte.
	Col int
	// Text is the unconsumed remainder of the input.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected input after expression: "+strconv.Quote(err.Text))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// DepthError indicates an expression nested beyond the evaluator's depth
// cap.
type DepthError struct {
	// Col is the position at which the cap was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression too deeply nested")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*EOFError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DepthError)(nil)
)
