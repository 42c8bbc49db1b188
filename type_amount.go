package expense

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
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
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount represents a monetary value in the book.
//
// The book is currency-agnostic: amounts are bare numbers, the currency only
// matters for terminal display (see [Amount.Display]).
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a decimal string into an Amount. It rejects values that
// are not numbers or not strictly positive.
func ParseAmount(str string) (Amount, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Amount{}, &ValidationError{Field: "amount", Reason: "not a number: " + str}
	}
	if !v.IsPositive() {
		return Amount{}, &ValidationError{Field: "amount", Reason: "must be positive, got " + v.String()}
	}
	return Amount{value: v}, nil
}

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }

// DivInt divides the amount by a count, used to compute averages.
func (a Amount) DivInt(n int) Amount {
	return Amount{value: a.value.Div(decimal.NewFromInt(int64(n)))}
}

// String returns the amount with exactly two decimal places, the precision
// used by the backing and export files.
func (a Amount) String() string { return a.value.StringFixed(2) }

// Display formats the amount with the symbol of the given ISO currency code
// for terminal reports. An unknown code falls back to the bare number.
func (a Amount) Display(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return a.String()
	}
	minor := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// AsFloat returns the closest float64, only for chart geometry where exact
// arithmetic does not matter.
func (a Amount) AsFloat() float64 { return a.value.InexactFloat64() }
