package calq

import "strconv"

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the mismatch.
	Col int
	// Left is the opening parenthesis, if one was open.
	Left string
	// Right is the closing parenthesis, if one was found.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ExpectedOperatorError is an error indicating two adjacent terms with no
// operator between them, e.g. "2 x". It implements InputError.
type ExpectedOperatorError struct {
	// Col is the position of the second term.
	Col int
	// Token is the token that began the second term.
	Token string
}

func (err *ExpectedOperatorError) Error() string {
	return errpos(err.Col, "expected operator, found "+strconv.Quote(err.Token))
}

func (err *ExpectedOperatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name without a parenthesized
// argument following it. It implements InputError.
type CallError struct {
	// Col is the position of the token following the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "function "+err.Func+" must be called with a parenthesized argument")
}

func (err *CallError) Pos() int {
	return err.Col
}

// AssignError is an error indicating an = in an illegal position. An
// assignment is legal only as the entire line, with a variable name on its
// left. It implements InputError.
type AssignError struct {
	// Col is the position of the = token.
	Col int
}

func (err *AssignError) Error() string {
	return errpos(err.Col, "= must follow a variable name at the start of the line")
}

func (err *AssignError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ExpectedOperatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*AssignError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*BadTokenError)(nil)
)
