package engine

import "strings"

const operatorChars = "+-*/^"

// Evaluate computes an infix expression of whitespace-separated tokens,
// each a decimal literal or one of + - * / ^. Division carries precision
// extra digits and the result is formatted within maxChars characters.
//
// An empty expression evaluates to "0". A single token is parsed and
// formatted as a bare number; its parse error, if any, is returned verbatim.
func Evaluate(expr string, precision, maxChars int) (string, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return "0", nil
	}
	if len(tokens) == 1 {
		d, err := Parse(tokens[0])
		if err != nil {
			return "", err
		}
		return d.Format(maxChars), nil
	}

	var (
		operands  []Decimal
		operators []byte
	)
	for _, token := range tokens {
		if d, err := Parse(token); err == nil {
			operands = append(operands, d)
			continue
		}

		if len(token) != 1 || !strings.ContainsAny(token, operatorChars) {
			return "", &InvalidOperatorError{Token: token}
		}
		op := token[0]

		// Pop while the stacked operator binds at least as tightly.
		// The >= makes every operator, ^ included, left-associative.
		for len(operators) > 0 && precedence(operators[len(operators)-1]) >= precedence(op) {
			var err error
			if operands, err = apply(operands, operators[len(operators)-1], precision); err != nil {
				return "", err
			}
			operators = operators[:len(operators)-1]
		}
		operators = append(operators, op)
	}

	for len(operators) > 0 {
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]

		var err error
		if operands, err = apply(operands, op, precision); err != nil {
			return "", err
		}
	}

	if len(operands) != 1 {
		return "", ErrInvalidExpression
	}
	return operands[0].Format(maxChars), nil
}

func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	default:
		return 0
	}
}

// apply pops two operands, combines them with op and pushes the result.
func apply(operands []Decimal, op byte, precision int) ([]Decimal, error) {
	if len(operands) < 2 {
		return nil, ErrNotEnoughOperands
	}
	y := operands[len(operands)-1]
	x := operands[len(operands)-2]
	operands = operands[:len(operands)-2]

	var (
		result Decimal
		err    error
	)
	switch op {
	case '+':
		result = x.Add(y)
	case '-':
		result = x.Sub(y)
	case '*':
		result = x.Mul(y)
	case '/':
		result, err = x.Div(y, precision)
	case '^':
		result, err = x.Pow(y)
	}
	if err != nil {
		return nil, err
	}
	return append(operands, result), nil
}
