package types

import "github.com/shopspring/decimal"

// Money is a decimal amount that serializes with two fractional digits,
// the display format used across the storefront ($12.50, not $12.5).
// Internally no rounding happens; only the JSON form is fixed.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromFloat(v float64) Money {
	return Money{Decimal: decimal.NewFromFloat(v)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = d
	return nil
}
