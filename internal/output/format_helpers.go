package output

import (
	"strconv"

	"github.com/rpgo/fire-calculator/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as grouped USD with 2 decimals, e.g. "$1,234.57".
func FormatCurrency(amount float64) string { return decimal.NewMoney(amount).Format("$") }

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string { return stddec.NewFromFloat(pct).StringFixed(2) + "%" }

// FormatRate formats an interest rate with 4 decimals so implied rates keep their precision.
func FormatRate(pct float64) string { return stddec.NewFromFloat(pct).StringFixed(4) + "%" }

// FormatYears renders whole horizons without decimals and fractional ones with 2.
func FormatYears(years float64) string {
	d := stddec.NewFromFloat(years)
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(2)
}

// plainAmount renders an amount for machine-readable output: 2 decimals, no grouping.
func plainAmount(amount float64) string { return decimal.NewMoney(amount).String() }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
