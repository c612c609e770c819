package calculation

import (
	"math"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// MaxYears is the longest survival period the resolvers accept.
const MaxYears = 1000

// Horizon is the number of simulated years for a (possibly fractional) survival
// period. It saturates at MaxYears.
func Horizon(years float64) int {
	if math.IsNaN(years) || years <= 0 {
		return 0
	}
	if years >= MaxYears {
		return MaxYears
	}
	return int(math.Ceil(years))
}

// yearStep applies one year of the recurrence. Interest is never charged on a
// depleted balance.
func yearStep(balance, rate, withdrawal float64) (interest, closing float64) {
	interest = math.Max(0, balance*rate)
	return interest, balance + interest - withdrawal
}

// balanceAfter runs the recurrence for the given number of years and returns the closing balance.
func balanceAfter(principal, rate, withdrawal float64, years int) float64 {
	balance := principal
	for y := 1; y <= years; y++ {
		_, balance = yearStep(balance, rate, withdrawal)
	}
	return balance
}

// Simulate projects the year-by-year balance for fully resolved parameters.
// A negative final balance is a valid result, not an error.
func Simulate(params domain.ResolvedParameters) *domain.SimulationResult {
	rate := params.RateFraction()
	years := Horizon(params.Years)

	result := &domain.SimulationResult{
		Parameters:   params,
		Records:      make([]domain.YearRecord, 0, years),
		FinalBalance: params.Principal,
	}

	balance := params.Principal
	for year := 1; year <= years; year++ {
		opening := balance
		interest, closing := yearStep(balance, rate, params.Withdrawal)
		result.Records = append(result.Records, domain.YearRecord{
			Year:             year,
			OpeningBalance:   opening,
			InterestAccrued:  interest,
			WithdrawalAmount: params.Withdrawal,
			ClosingBalance:   closing,
		})
		result.TotalInterest += interest
		balance = closing
	}
	result.FinalBalance = balance

	return result
}
