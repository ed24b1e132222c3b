package calc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the ways an expression can fail to parse or evaluate.
type ErrorKind int8

const (
	_ ErrorKind = iota
	// InvalidCharacter is a rune that cannot start any token.
	InvalidCharacter
	// MalformedNumber is a number with more than one decimal point, no
	// digits, or a value too large for a float64.
	MalformedNumber
	// UnknownIdentifier is a name that is neither a constant nor a function.
	UnknownIdentifier
	// MissingFunctionArgument is a function name not followed by an open
	// parenthesis.
	MissingFunctionArgument
	// UnmatchedParenthesis is an open parenthesis with no close or the
	// reverse.
	UnmatchedParenthesis
	// UnexpectedToken is a token that cannot appear where it does, e.g. two
	// numbers with no operator between them.
	UnexpectedToken
	// UnexpectedEndOfInput is input that ends where an operand is required.
	UnexpectedEndOfInput
	// EmptyExpression is input containing nothing but whitespace.
	EmptyExpression
	// DivisionByZero is division or remainder by zero, or zero raised to a
	// negative power.
	DivisionByZero
	// DomainError is an argument outside the domain of a function or
	// operator, or a result too large to represent.
	DomainError
)

var kindnames = [...]string{
	InvalidCharacter:        "InvalidCharacter",
	MalformedNumber:         "MalformedNumber",
	UnknownIdentifier:       "UnknownIdentifier",
	MissingFunctionArgument: "MissingFunctionArgument",
	UnmatchedParenthesis:    "UnmatchedParenthesis",
	UnexpectedToken:         "UnexpectedToken",
	UnexpectedEndOfInput:    "UnexpectedEndOfInput",
	EmptyExpression:         "EmptyExpression",
	DivisionByZero:          "DivisionByZero",
	DomainError:             "DomainError",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindnames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Error is an error resulting from invalid input or an undefined calculation.
// It implements InputError.
type Error struct {
	// Kind is the class of error.
	Kind ErrorKind
	// Col is the position of the token that caused the error. For evaluation
	// errors, it is the position of the operator or function name.
	Col int
	// Text is the offending token, operator, or function name.
	Text string
	// X is the out-of-domain argument for DomainError.
	X float64
	// Range indicates a DomainError caused by a result too large to
	// represent rather than by an invalid argument.
	Range bool
}

func (err *Error) Error() string {
	var msg string
	switch err.Kind {
	case InvalidCharacter:
		msg = "invalid character " + strconv.Quote(err.Text)
	case MalformedNumber:
		msg = "malformed number " + strconv.Quote(err.Text)
	case UnknownIdentifier:
		msg = "unknown identifier " + strconv.Quote(err.Text)
	case MissingFunctionArgument:
		msg = "function " + err.Text + " requires a parenthesized argument"
	case UnmatchedParenthesis:
		if err.Text == ")" {
			msg = "close bracket ) with no open bracket"
		} else {
			msg = "open bracket ( with no close bracket"
		}
	case UnexpectedToken:
		msg = "unexpected " + strconv.Quote(err.Text)
	case UnexpectedEndOfInput:
		msg = "unexpected end of input"
	case EmptyExpression:
		msg = "no expression"
	case DivisionByZero:
		msg = "division by zero"
		if err.Text == "^" {
			msg = "zero to a negative power"
		}
	case DomainError:
		if err.Range {
			msg = "result of " + err.Text + " out of range"
		} else {
			msg = strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Text
		}
	default:
		msg = "unknown error kind " + err.Kind.String()
	}
	return errpos(err.Col, msg)
}

func (err *Error) Pos() int {
	return err.Col
}

// KindOf returns the kind of the first *Error in err's chain. If there is no
// such error, the result is zero.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
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

var _ InputError = (*Error)(nil)
