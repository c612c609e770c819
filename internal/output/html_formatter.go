package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a balance chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"years": FormatYears,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the data handed to Chart.js.
type chartSeries struct {
	Labels   []int     `json:"labels"`
	Balances []float64 `json:"balances"`
	Interest []float64 `json:"interest"`
}

func newChartSeries(records []domain.YearRecord) chartSeries {
	s := chartSeries{
		Labels:   make([]int, 0, len(records)),
		Balances: make([]float64, 0, len(records)),
		Interest: make([]float64, 0, len(records)),
	}
	for _, r := range records {
		s.Labels = append(s.Labels, r.Year)
		s.Balances = append(s.Balances, r.ClosingBalance)
		s.Interest = append(s.Interest, r.InterestAccrued)
	}
	return s
}

func (h HTMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.SimulationResult
		Analysis    Analysis
		Assumptions []string
		Chart       chartSeries
		Warning     string
	}{
		SimulationResult: result,
		Analysis:         AnalyzePlan(result),
		Assumptions:      GenerateAssumptions(result.Parameters),
		Chart:            newChartSeries(result.Records),
	}
	if data.Analysis.Unsustainable {
		data.Warning = unsustainableMessage(result, data.Analysis)
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
