// Package bigcalc evaluates infix arithmetic expressions over exact,
// arbitrary-precision decimal numbers. Operands may be plain decimals or
// scientific-notation literals; the operators are + - * / ^ with the usual
// precedence. Results render in plain form, falling back to scientific
// notation when the plain form would be too wide.
//
// The package is stateless: every call is an independent, purely synchronous
// computation, so a Calculator is safe for concurrent use.
package bigcalc

import "github.com/hiroq/bigcalc/engine"

const (
	// DefaultPrecision is the number of extra decimal digits a quotient
	// carries beyond scale alignment.
	DefaultPrecision = 15

	// DefaultMaxWidth is the widest plain-form result before a Calculator
	// switches to scientific notation.
	DefaultMaxWidth = engine.DefaultMaxWidth
)

// Calculator evaluates infix expressions. The zero value evaluates with
// zero division precision and unconditional scientific formatting; use New
// for the usual defaults.
type Calculator struct {
	// Precision is the division precision in decimal digits.
	Precision int

	// MaxWidth is the plain-form width limit in characters.
	MaxWidth int
}

// New creates a Calculator with the default precision and width.
func New() *Calculator {
	return &Calculator{Precision: DefaultPrecision, MaxWidth: DefaultMaxWidth}
}

// Evaluate computes expr, a sequence of whitespace-separated tokens, and
// returns the formatted result. Errors are descriptive, user-displayable
// strings and leave no state behind.
func (c *Calculator) Evaluate(expr string) (string, error) {
	return engine.Evaluate(expr, c.Precision, c.MaxWidth)
}

// Evaluate computes expr with the default settings.
func Evaluate(expr string) (string, error) {
	return New().Evaluate(expr)
}

// Parse interprets s as a decimal or scientific-notation literal.
func Parse(s string) (engine.Decimal, error) {
	return engine.Parse(s)
}
