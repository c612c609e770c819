package domain

// YearRecord represents one simulated year of the withdrawal plan
type YearRecord struct {
	Year             int     `json:"year"`
	OpeningBalance   float64 `json:"opening_balance"`
	InterestAccrued  float64 `json:"interest_accrued"`
	WithdrawalAmount float64 `json:"withdrawal_amount"`
	ClosingBalance   float64 `json:"closing_balance"`
}

// IsDepleted reports whether the balance went negative by the end of the year
func (yr YearRecord) IsDepleted() bool {
	return yr.ClosingBalance < 0
}

// NetChange is the balance movement over the year
func (yr YearRecord) NetChange() float64 {
	return yr.ClosingBalance - yr.OpeningBalance
}

// SimulationResult is the resolved plan together with its year-by-year trajectory
type SimulationResult struct {
	Parameters    ResolvedParameters `json:"parameters"`
	Records       []YearRecord       `json:"records"`
	TotalInterest float64            `json:"total_interest"`
	FinalBalance  float64            `json:"final_balance"`
}

// TotalWithdrawn sums all withdrawals over the trajectory
func (sr *SimulationResult) TotalWithdrawn() float64 {
	var total float64
	for _, r := range sr.Records {
		total += r.WithdrawalAmount
	}
	return total
}

// DepletionYear returns the first year whose closing balance is negative, or 0 if the plan never depletes
func (sr *SimulationResult) DepletionYear() int {
	for _, r := range sr.Records {
		if r.IsDepleted() {
			return r.Year
		}
	}
	return 0
}

// IsSustainable reports whether the plan ends with a non-negative balance
func (sr *SimulationResult) IsSustainable() bool {
	return sr.FinalBalance >= 0
}
