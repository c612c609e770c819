package output

import (
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Interest compounds once a year on the opening balance",
	"The withdrawal is taken at the end of every year and never changes",
	"A negative balance earns no interest",
	"Inflation, taxes and fees are not modeled",
}

// GenerateAssumptions adds the plan-specific lines to the defaults.
func GenerateAssumptions(p domain.ResolvedParameters) []string {
	lines := append([]string(nil), DefaultAssumptions...)
	if p.YearsDefaulted {
		lines = append(lines, fmt.Sprintf("Survival period not supplied; simulated over the default %d years", domain.DefaultYears))
	}
	if p.DrawdownRatio > 0 {
		lines = append(lines, fmt.Sprintf("%s of the principal is consumed by the end of the plan", FormatPercentage(p.DrawdownRatio)))
	}
	if p.Rate == 0 {
		lines = append(lines, "A zero rate was accepted; the balance only declines")
	}
	return lines
}
