package output

import (
	"encoding/json"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// JSONFormatter serializes the result and its analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

type jsonReport struct {
	Parameters    domain.ResolvedParameters `json:"parameters"`
	Supplied      string                    `json:"supplied"`
	Analysis      Analysis                  `json:"analysis"`
	Assumptions   []string                  `json:"assumptions"`
	TotalInterest float64                   `json:"total_interest"`
	FinalBalance  float64                   `json:"final_balance"`
	Records       []domain.YearRecord       `json:"records"`
}

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	records := result.Records
	if records == nil {
		records = []domain.YearRecord{}
	}
	return json.MarshalIndent(jsonReport{
		Parameters:    result.Parameters,
		Supplied:      result.Parameters.Known.String(),
		Analysis:      AnalyzePlan(result),
		Assumptions:   GenerateAssumptions(result.Parameters),
		TotalInterest: result.TotalInterest,
		FinalBalance:  result.FinalBalance,
		Records:       records,
	}, "", "  ")
}
