package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full console report: summary, formula,
// first-year analysis, totals, assumptions and the year-by-year table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	p := result.Parameters
	analysis := AnalyzePlan(result)

	fmt.Fprintln(&buf, titleStyle.Render("FIRE WITHDRAWAL PLAN"))
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf)

	writeSection(&buf, "PLAN SUMMARY")
	writeField(&buf, "Principal", FormatCurrency(p.Principal))
	writeField(&buf, "Annual rate", FormatRate(p.Rate))
	writeField(&buf, "Annual withdrawal", FormatCurrency(p.Withdrawal))
	years := FormatYears(p.Years)
	if p.YearsDefaulted {
		years += " (default)"
	}
	writeField(&buf, "Survival period", years+" years")
	if p.DrawdownRatio > 0 {
		writeField(&buf, "Principal consumed", FormatPercentage(p.DrawdownRatio))
	}
	writeField(&buf, "Supplied", p.Known.String())
	fmt.Fprintln(&buf)

	writeSection(&buf, "FORMULA")
	fmt.Fprintf(&buf, "  %s\n", analysis.Formula)
	fmt.Fprintf(&buf, "  %s\n", p.PatternLabel)
	fmt.Fprintln(&buf)

	writeSection(&buf, "FIRST-YEAR ANALYSIS")
	writeField(&buf, "Interest earned", FormatCurrency(analysis.FirstYearInterest))
	writeField(&buf, "Withdrawal", FormatCurrency(p.Withdrawal))
	writeField(&buf, "Interest minus withdrawal", FormatCurrency(analysis.InterestGap))
	writeField(&buf, "Withdrawal rate", FormatPercentage(analysis.WithdrawalRate))
	fmt.Fprintf(&buf, "  %s\n", analysis.Outlook.Describe())
	fmt.Fprintln(&buf)

	writeSection(&buf, "RESULTS")
	writeField(&buf, "Years simulated", intToString(len(result.Records)))
	writeField(&buf, "Total interest", FormatCurrency(result.TotalInterest))
	writeField(&buf, "Total withdrawn", FormatCurrency(analysis.TotalWithdrawn))
	writeField(&buf, "Final balance", FormatCurrency(result.FinalBalance))
	fmt.Fprintln(&buf)

	if analysis.Unsustainable {
		fmt.Fprintln(&buf, warningBoxStyle.Render(unsustainableMessage(result, analysis)))
		fmt.Fprintln(&buf)
	}

	writeSection(&buf, "KEY ASSUMPTIONS")
	for _, a := range GenerateAssumptions(p) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeSection(&buf, "YEAR-BY-YEAR PROJECTION")
	buf.WriteString(renderTable(yearTableHeaders, yearTableRows(result)))

	return buf.Bytes(), nil
}

var yearTableHeaders = []string{"Year", "Opening", "Interest", "Withdrawal", "Closing"}

func yearTableRows(result *domain.SimulationResult) [][]string {
	rows := make([][]string, 0, len(result.Records))
	for _, r := range result.Records {
		rows = append(rows, []string{
			intToString(r.Year),
			FormatCurrency(r.OpeningBalance),
			FormatCurrency(r.InterestAccrued),
			FormatCurrency(r.WithdrawalAmount),
			FormatCurrency(r.ClosingBalance),
		})
	}
	return rows
}

func unsustainableMessage(result *domain.SimulationResult, analysis Analysis) string {
	return fmt.Sprintf("WARNING: the balance turns negative in year %d and ends at %s.\nThis plan does not last %d years.",
		analysis.DepletionYear, FormatCurrency(result.FinalBalance), len(result.Records))
}

func writeSection(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, sectionStyle.Render(title))
}

func writeField(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-28s", label+":")), value)
}
