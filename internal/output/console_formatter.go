package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ConsoleFormatter provides a one-screen console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	p := result.Parameters
	analysis := AnalyzePlan(result)

	fmt.Fprintln(&buf, "FIRE PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Pattern: %s\n", p.Pattern)
	fmt.Fprintf(&buf, "Principal=%s Rate=%s Withdrawal=%s Years=%s\n",
		FormatCurrency(p.Principal), FormatRate(p.Rate), FormatCurrency(p.Withdrawal), FormatYears(p.Years))
	fmt.Fprintf(&buf, "FirstYearInterest=%s Outlook=%s\n", FormatCurrency(analysis.FirstYearInterest), analysis.Outlook)
	fmt.Fprintf(&buf, "TotalInterest=%s FinalBalance=%s\n", FormatCurrency(result.TotalInterest), FormatCurrency(result.FinalBalance))
	if analysis.Unsustainable {
		fmt.Fprintf(&buf, "Unsustainable: balance negative from year %d\n", analysis.DepletionYear)
	}
	return buf.Bytes(), nil
}
