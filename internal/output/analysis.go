package output

import (
	"math"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// Outlook describes what the first year does to the principal.
type Outlook string

const (
	OutlookGrows          Outlook = "grows"
	OutlookStable         Outlook = "stable"
	OutlookDrawsPrincipal Outlook = "draws-principal"
)

// stableTolerance is the interest/withdrawal gap below which the principal counts as unchanged.
const stableTolerance = 0.005

// Analysis summarizes a simulated plan for the report sections.
type Analysis struct {
	FirstYearInterest float64 `json:"first_year_interest"`
	// InterestGap is interest minus withdrawal in year one; negative means principal is consumed.
	InterestGap    float64 `json:"interest_gap"`
	WithdrawalRate float64 `json:"withdrawal_rate"`
	Outlook        Outlook `json:"outlook"`
	DepletionYear  int     `json:"depletion_year,omitempty"`
	Unsustainable  bool    `json:"unsustainable"`
	TotalWithdrawn float64 `json:"total_withdrawn"`
	Formula        string  `json:"formula"`
}

// AnalyzePlan derives the first-year analysis and the sustainability verdict.
func AnalyzePlan(result *domain.SimulationResult) Analysis {
	p := result.Parameters
	interest := p.FirstYearInterest()
	gap := interest - p.Withdrawal

	a := Analysis{
		FirstYearInterest: interest,
		InterestGap:       gap,
		Outlook:           outlookFor(gap),
		DepletionYear:     result.DepletionYear(),
		Unsustainable:     !result.IsSustainable(),
		TotalWithdrawn:    result.TotalWithdrawn(),
		Formula:           FormulaFor(p.Pattern),
	}
	if p.Principal > 0 {
		a.WithdrawalRate = p.Withdrawal / p.Principal * 100
	}
	return a
}

func outlookFor(gap float64) Outlook {
	switch {
	case math.Abs(gap) < stableTolerance:
		return OutlookStable
	case gap > 0:
		return OutlookGrows
	default:
		return OutlookDrawsPrincipal
	}
}

// Describe is the sentence used under the first-year analysis heading.
func (o Outlook) Describe() string {
	switch o {
	case OutlookGrows:
		return "Interest exceeds the withdrawal; the principal keeps growing."
	case OutlookStable:
		return "The withdrawal equals the interest; the principal stays unchanged."
	default:
		return "The withdrawal exceeds the interest; the principal is being drawn down."
	}
}

var formulas = map[domain.Pattern]string{
	domain.PatternInterestOnly:       "C = A·r",
	domain.PatternRequiredPrincipal:  "smallest A with a non-negative balance after D years (bisection)",
	domain.PatternImpliedRate:        "r = C / A",
	domain.PatternVerify:             "compare C with A·r",
	domain.PatternAnnuity:            "C = A·r·(1+r)^D / ((1+r)^D - 1)",
	domain.PatternDrawdownWithdrawal: "C = A·r·((1+r)^D - (1-K)) / ((1+r)^D - 1)",
	domain.PatternDrawdownPrincipal:  "A = C·((1+r)^D - 1) / (r·((1+r)^D - (1-K)))",
	domain.PatternDrawdownRate:       "r by bisection on the drawdown withdrawal",
	domain.PatternDrawdownHorizon:    "D = ln((C - A·r·(1-K)) / (C - A·r)) / ln(1+r)",
	domain.PatternDrawdownVerify:     "compare C with A·r·((1+r)^D - (1-K)) / ((1+r)^D - 1)",
}

// FormulaFor returns the closed form or method behind a pattern, with r = B/100
// and K the drawdown share.
func FormulaFor(p domain.Pattern) string {
	return formulas[p]
}
