package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is an error that signifies an empty numeric literal.
	ErrEmptyInput = errors.New("empty string")

	// ErrMissingDigits is an error that signifies a sign with nothing after it.
	ErrMissingDigits = errors.New("missing digits after sign")

	// ErrMissingPointDigits is an error that signifies a decimal point with no digits around it.
	ErrMissingPointDigits = errors.New("missing digits around decimal point")

	// ErrMultiplePoints is an error that signifies more than one decimal point in a literal.
	ErrMultiplePoints = errors.New("multiple decimal points")

	// ErrDivisionByZero is an error that signifies a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonIntegerExponent is an error that signifies a fractional exponent.
	ErrNonIntegerExponent = errors.New("non-integer exponents not supported")

	// ErrExponentTooLarge is an error that signifies an exponent beyond machine-integer range.
	ErrExponentTooLarge = errors.New("exponent too large")

	// ErrNegativeExponent is an error that signifies a negative exponent.
	ErrNegativeExponent = errors.New("negative exponents not supported")

	// ErrNotEnoughOperands is an error that signifies an operator with fewer than two operands.
	ErrNotEnoughOperands = errors.New("not enough operands")

	// ErrInvalidExpression is an error that signifies leftover operands after evaluation.
	ErrInvalidExpression = errors.New("invalid expression")
)

// InvalidNumberError is an error that signifies a malformed digit string.
type InvalidNumberError struct {
	Kind string // "integer" or "decimal"
	Text string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid %s format: %s", e.Kind, e.Text)
}

// InvalidExponentError is an error that signifies an unparsable exponent.
type InvalidExponentError struct {
	Text string
}

func (e *InvalidExponentError) Error() string {
	return fmt.Sprintf("invalid exponent: %s", e.Text)
}

// InvalidNotationError is an error that signifies malformed scientific notation.
type InvalidNotationError struct {
	Text string
}

func (e *InvalidNotationError) Error() string {
	return fmt.Sprintf("invalid scientific notation: %s", e.Text)
}

// InvalidOperatorError is an error that signifies a token which is neither a number nor an operator.
type InvalidOperatorError struct {
	Token string
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator: %s", e.Token)
}
