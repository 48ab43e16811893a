package engine

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Decimal is an exact decimal number stored as mantissa × 10^-scale.
// The mantissa is an arbitrary-precision integer and the scale may be
// negative, in which case the value carries implicit trailing zeros before
// the units place (mantissa 5, scale -2 is 500).
//
// A Decimal is immutable: every operation returns a new value and the
// mantissa of an existing value is never written to. The zero value of
// Decimal is the number 0.
type Decimal struct {
	mantissa *big.Int
	scale    int
}

var (
	// Zero is the canonical zero value, mantissa 0 and scale 0.
	Zero = Decimal{mantissa: big.NewInt(0)}

	// One is the value 1.
	One = Decimal{mantissa: big.NewInt(1)}
)

// New returns a Decimal with the given mantissa and scale.
// The mantissa is copied, so the caller may keep mutating it.
func New(mantissa *big.Int, scale int) Decimal {
	return Decimal{mantissa: new(big.Int).Set(mantissa), scale: scale}
}

// Mantissa returns a copy of the mantissa of d.
func (d Decimal) Mantissa() *big.Int {
	return new(big.Int).Set(d.unscaled())
}

// Scale returns the scale of d.
func (d Decimal) Scale() int {
	return d.scale
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d.unscaled().Sign() == 0
}

// Equal reports whether x and y represent the same numeric value,
// regardless of representation.
func (x Decimal) Equal(y Decimal) bool {
	a, b := x.Normalize(), y.Normalize()
	return a.scale == b.scale && a.unscaled().Cmp(b.unscaled()) == 0
}

// unscaled tolerates the zero value of Decimal.
func (d Decimal) unscaled() *big.Int {
	if d.mantissa == nil {
		return bigZero
	}
	return d.mantissa
}

var (
	bigZero = big.NewInt(0)
	bigTen  = big.NewInt(10)
)

var exp10cache = func() [32]*big.Int {
	var c [32]*big.Int
	e := big.NewInt(1)
	for i := range c {
		c[i] = new(big.Int).Set(e)
		e.Mul(e, bigTen)
	}
	return c
}()

// exp10 returns 10^n for n >= 0. The result must not be mutated.
func exp10(n int) *big.Int {
	if n < len(exp10cache) {
		return exp10cache[n]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

var scientificPattern = regexp.MustCompile(`(?i)^\s*([+-]?\s*\d*\.?\d+)\s*e\s*([+-]?\s*\d+)\s*$`)

// Parse interprets s as a plain decimal or scientific-notation literal.
// Surrounding whitespace is ignored. The result is not normalized.
func Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, ErrEmptyInput
	}
	if strings.ContainsAny(s, "eE") {
		return parseScientific(s)
	}
	return parseDecimal(s)
}

func parseDecimal(s string) (Decimal, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	if s == "" {
		return Decimal{}, ErrMissingDigits
	}

	scale, kind := 0, "integer"
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if strings.IndexByte(s[i+1:], '.') >= 0 {
			return Decimal{}, ErrMultiplePoints
		}
		scale, kind = len(s)-i-1, "decimal"
		s = s[:i] + s[i+1:]
		if s == "" {
			return Decimal{}, ErrMissingPointDigits
		}
	}

	m, err := parseMantissa(s, kind)
	if err != nil {
		return Decimal{}, err
	}
	if neg {
		m.Neg(m)
	}
	return Decimal{mantissa: m, scale: scale}, nil
}

// parseMantissa accepts digits only: the sign has already been consumed, so
// a stray sign inside the digit string is a malformed literal.
func parseMantissa(digits, kind string) (*big.Int, error) {
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, &InvalidNumberError{Kind: kind, Text: digits}
		}
	}
	m, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, &InvalidNumberError{Kind: kind, Text: digits}
	}
	return m, nil
}

func parseScientific(s string) (Decimal, error) {
	groups := scientificPattern.FindStringSubmatch(s)
	if groups == nil {
		return Decimal{}, &InvalidNotationError{Text: s}
	}

	expText := stripSpace(groups[2])
	exp, err := strconv.Atoi(expText)
	if err != nil {
		return Decimal{}, &InvalidExponentError{Text: expText}
	}

	base, err := parseDecimal(stripSpace(groups[1]))
	if err != nil {
		return Decimal{}, err
	}
	return base.shift(exp), nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// shift multiplies d by 10^exp by moving the decimal point.
func (d Decimal) shift(exp int) Decimal {
	return Decimal{mantissa: d.unscaled(), scale: d.scale - exp}
}

// Normalize returns the canonical representation of d: trailing factors of
// ten are moved out of the mantissa while the scale is positive, and zero
// collapses to mantissa 0, scale 0.
func (d Decimal) Normalize() Decimal {
	m := d.unscaled()
	if m.Sign() == 0 {
		return Decimal{mantissa: bigZero}
	}

	scale := d.scale
	if scale > 0 {
		m = new(big.Int).Set(m)
		q, r := new(big.Int), new(big.Int)
		for scale > 0 {
			q.QuoRem(m, bigTen, r)
			if r.Sign() != 0 {
				break
			}
			m.Set(q)
			scale--
		}
	}
	return Decimal{mantissa: m, scale: scale}
}

// scaleTo rewrites d with the target scale. Scaling up is exact; scaling
// down truncates, but add/sub alignment only ever scales up.
func (d Decimal) scaleTo(target int) Decimal {
	if d.scale == target {
		return d
	}

	m := new(big.Int)
	if diff := target - d.scale; diff > 0 {
		m.Mul(d.unscaled(), exp10(diff))
	} else {
		m.Quo(d.unscaled(), exp10(-diff))
	}
	return Decimal{mantissa: m, scale: target}
}

// align brings x and y to their common (maximum) scale.
func (x Decimal) align(y Decimal) (Decimal, Decimal) {
	max := x.scale
	if y.scale > max {
		max = y.scale
	}
	return x.scaleTo(max), y.scaleTo(max)
}
