package engine

import "math/big"

// Add returns x + y, normalized.
func (x Decimal) Add(y Decimal) Decimal {
	a, b := x.align(y)
	m := new(big.Int).Add(a.unscaled(), b.unscaled())
	return Decimal{mantissa: m, scale: a.scale}.Normalize()
}

// Sub returns x - y, normalized.
func (x Decimal) Sub(y Decimal) Decimal {
	a, b := x.align(y)
	m := new(big.Int).Sub(a.unscaled(), b.unscaled())
	return Decimal{mantissa: m, scale: a.scale}.Normalize()
}

// Mul returns x * y, normalized. No alignment is needed: mantissas multiply
// and scales add exactly.
func (x Decimal) Mul(y Decimal) Decimal {
	m := new(big.Int).Mul(x.unscaled(), y.unscaled())
	return Decimal{mantissa: m, scale: x.scale + y.scale}.Normalize()
}

// Div returns x / y carrying precision decimal digits beyond scale
// alignment. The quotient truncates toward zero; there is no rounding.
func (x Decimal) Div(y Decimal, precision int) (Decimal, error) {
	if y.unscaled().Sign() == 0 {
		return Decimal{}, ErrDivisionByZero
	}

	dividend := x.unscaled()
	scale := x.scale - y.scale
	if up := precision + y.scale - x.scale; up > 0 {
		dividend = new(big.Int).Mul(dividend, exp10(up))
		scale = up
	}

	q := new(big.Int).Quo(dividend, y.unscaled())
	return Decimal{mantissa: q, scale: scale}.Normalize(), nil
}

// Pow returns x raised to a non-negative whole-number exponent by repeated
// multiplication. The exponent's mantissa must fit a machine integer.
// An exponent of 0 yields 1 for any base, including 0.
func (x Decimal) Pow(y Decimal) (Decimal, error) {
	if y.scale > 0 {
		return Decimal{}, ErrNonIntegerExponent
	}
	if !y.unscaled().IsInt64() {
		return Decimal{}, ErrExponentTooLarge
	}

	exp := y.unscaled().Int64()
	if exp < 0 {
		return Decimal{}, ErrNegativeExponent
	}
	if exp == 0 {
		return One, nil
	}

	result := x
	for i := int64(1); i < exp; i++ {
		result = result.Mul(x)
	}
	return result.Normalize(), nil
}
