package decimal

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as whole euros with thousands separators.
func (m Money) Format() string {
	s := m.Decimal.Round(0).Abs().StringFixed(0)
	out := make([]byte, 0, len(s)+len(s)/3+3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i])
	}
	if m.Decimal.Round(0).IsNegative() {
		return "-" + string(out) + " €"
	}
	return string(out) + " €"
}

// FromPercent converts a percent (19) into a fraction (0.19).
func FromPercent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// ToPercent converts a fraction (0.19) into a percent (19).
func ToPercent(f decimal.Decimal) decimal.Decimal {
	return f.Mul(hundred)
}

// ApplyPercent returns p percent of amount.
func ApplyPercent(amount, p decimal.Decimal) decimal.Decimal {
	return amount.Mul(p).Div(hundred)
}

// ReduceByPercent returns amount less p percent of it.
func ReduceByPercent(amount, p decimal.Decimal) decimal.Decimal {
	return amount.Mul(hundred.Sub(p)).Div(hundred)
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}
