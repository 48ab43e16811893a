package engine

import (
	"strconv"
	"strings"
)

const (
	// DefaultMaxWidth is the widest plain rendering String produces before
	// falling back to scientific notation.
	DefaultMaxWidth = 25

	// sciFracDigits caps the fractional digits of a scientific mantissa.
	// The cut is display-only; the value itself stays exact.
	sciFracDigits = 10
)

// String formats d with the default width.
func (d Decimal) String() string {
	return d.Format(DefaultMaxWidth)
}

// Format renders d in plain decimal form, or in scientific notation if the
// plain form would exceed maxChars characters. It always succeeds.
func (d Decimal) Format(maxChars int) string {
	s := d.standard()
	if len(s) <= maxChars {
		return s
	}
	return d.scientific()
}

func (d Decimal) standard() string {
	if d.scale <= 0 {
		return d.unscaled().String() + strings.Repeat("0", -d.scale)
	}

	digits := d.unscaled().String()
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if d.scale >= len(digits) {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", d.scale-len(digits)))
		b.WriteString(digits)
	} else {
		split := len(digits) - d.scale
		b.WriteString(digits[:split])
		b.WriteByte('.')
		b.WriteString(digits[split:])
	}
	return b.String()
}

func (d Decimal) scientific() string {
	if d.unscaled().Sign() == 0 {
		return "0"
	}

	digits := d.unscaled().String()
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	exp := len(digits) - 1 - d.scale

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		frac := digits[1:]
		if len(frac) > sciFracDigits {
			frac = frac[:sciFracDigits]
		}
		if frac = strings.TrimRight(frac, "0"); frac != "" {
			b.WriteByte('.')
			b.WriteString(frac)
		}
	}
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
