package engine

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_Format(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		t.Run("integer", func(t *testing.T) {
			assert.Equal(t, "42", New(big.NewInt(42), 0).String())
			assert.Equal(t, "-42", New(big.NewInt(-42), 0).String())
			assert.Equal(t, "0", Zero.String())
		})

		t.Run("negative scale appends zeros", func(t *testing.T) {
			assert.Equal(t, "500", New(big.NewInt(5), -2).String())
			assert.Equal(t, "-500", New(big.NewInt(-5), -2).String())
		})

		t.Run("fraction", func(t *testing.T) {
			assert.Equal(t, "123.45", New(big.NewInt(12345), 2).String())
			assert.Equal(t, "-123.45", New(big.NewInt(-12345), 2).String())
		})

		t.Run("fraction padded with zeros", func(t *testing.T) {
			assert.Equal(t, "0.5", New(big.NewInt(5), 1).String())
			assert.Equal(t, "0.005", New(big.NewInt(5), 3).String())
			assert.Equal(t, "-0.005", New(big.NewInt(-5), 3).String())
		})
	})

	t.Run("scientific fallback", func(t *testing.T) {
		t.Run("at the limit stays plain", func(t *testing.T) {
			d, err := Parse("1000000000000000000000000") // 25 chars
			require.NoError(t, err)
			assert.Equal(t, "1000000000000000000000000", d.String())
		})

		t.Run("over the limit", func(t *testing.T) {
			d, err := Parse("10000000000000000000000000") // 26 chars
			require.NoError(t, err)
			assert.Equal(t, "1e25", d.String())
		})

		t.Run("fractional digits capped at ten", func(t *testing.T) {
			d, err := Parse("-1234567890123456789012345678")
			require.NoError(t, err)
			assert.Equal(t, "-1.2345678901e27", d.String())
		})

		t.Run("trailing zeros stripped", func(t *testing.T) {
			d, err := Parse("12000000000000000000000000000")
			require.NoError(t, err)
			assert.Equal(t, "1.2e28", d.String())
		})

		t.Run("small magnitude", func(t *testing.T) {
			d := New(bigThrees(30), 30) // 0.333... with 30 digits
			assert.Equal(t, "3.3333333333e-1", d.String())
		})

		t.Run("zero renders bare", func(t *testing.T) {
			assert.Equal(t, "0", Zero.Format(0))
		})
	})

	t.Run("custom width", func(t *testing.T) {
		d := New(big.NewInt(123456), 0)
		assert.Equal(t, "123456", d.Format(6))
		assert.Equal(t, "1.23456e5", d.Format(5))
	})

	t.Run("fallback trigger", func(t *testing.T) {
		// A plain form longer than the limit always renders with an
		// exponent marker; one within the limit never does.
		for _, s := range []string{
			"1", "-12345.678", "1e24", "1e25", "1e26", "-1e30", "1e-30", "123456789012345678901234567890.5",
		} {
			t.Run(s, func(t *testing.T) {
				d, err := Parse(s)
				require.NoError(t, err)

				plain := d.standard()
				got := d.Format(DefaultMaxWidth)
				if len(plain) > DefaultMaxWidth {
					assert.Contains(t, got, "e")
				} else {
					assert.NotContains(t, got, "e")
				}
			})
		}
	})
}

func bigThrees(n int) *big.Int {
	m, _ := new(big.Int).SetString(strings.Repeat("3", n), 10)
	return m
}
