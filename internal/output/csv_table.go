package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CSVTableFormatter exports the year-by-year trajectory, one row per year.
type CSVTableFormatter struct{}

func (c CSVTableFormatter) Name() string      { return "csv" }
func (c CSVTableFormatter) Extension() string { return "csv" }

var csvHeader = []string{"Year", "OpeningBalance", "InterestAccrued", "WithdrawalAmount", "ClosingBalance", "Depleted"}

func (c CSVTableFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range result.Records {
		row := []string{
			intToString(r.Year),
			plainAmount(r.OpeningBalance),
			plainAmount(r.InterestAccrued),
			plainAmount(r.WithdrawalAmount),
			plainAmount(r.ClosingBalance),
			boolToString(r.IsDepleted()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
