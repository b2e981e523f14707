package bankaccount

import (
	"math/big"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code of the single currency accounts are kept in.
const Currency = money.USD

// Money represents a monetary value in Currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal converts the supported numeric types into a decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0)
	case uint32:
		return decimal.NewFromInt(int64(v))
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
	}
	return decimal.Zero
}

// currency returns the go-money definition of Currency.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the natural representation of the value, with as many
// digits as it carries and no symbol (e.g. "-100", "12.5").
func (m Money) String() string { return m.value.String() }

// Fixed returns the value rounded to the currency fraction (two digits for USD), without symbol.
func (m Money) Fixed() string {
	return m.value.StringFixed(int32(currency().Fraction))
}

// Display returns the value prefixed by the currency symbol and rounded to
// the currency fraction, e.g. "$1000.00". There is no thousands grouping.
func (m Money) Display() string {
	return currency().Grapheme + m.Fixed()
}

// Natural returns the value prefixed by the currency symbol, in its natural
// representation (e.g. "$-100", "$0.5").
func (m Money) Natural() string {
	return currency().Grapheme + m.String()
}

// Grouped returns the value formatted by the currency template, with
// thousands grouping, e.g. "$1,000.00", or "-$100.00" when negative. It is
// meant for human reports only.
func (m Money) Grouped() string {
	cur := currency()
	return cur.Formatter().Format(m.value.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MarshalJSON writes the value as a bare JSON number with all its digits.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON reads a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
