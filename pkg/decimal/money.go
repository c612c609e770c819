package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// groupSeparators are stripped from user-entered amounts before parsing
var groupSeparators = strings.NewReplacer(",", "", "_", "", " ", "", "\u00a0", "")

// Money represents a monetary amount with cent precision for display
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromString parses an amount that may contain grouping separators, e.g. "1,000,000.50"
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(groupSeparators.Replace(strings.TrimSpace(value)))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Float64 returns the nearest float64 for the calculation engine
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the amount with exactly two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped returns the amount with thousands separators and two decimals, e.g. "-1,234,567.89"
func (m Money) Grouped() string {
	return humanize.FormatFloat("#,###.##", m.Round().InexactFloat64())
}

// Format prefixes the grouped amount with a currency symbol
func (m Money) Format(symbol string) string {
	if m.IsNegative() {
		return "-" + symbol + Money{m.Neg()}.Grouped()
	}
	return symbol + m.Grouped()
}
