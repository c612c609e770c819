package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizon(t *testing.T) {
	tests := []struct {
		years float64
		want  int
	}{
		{30, 30},
		{10.5, 11},
		{0.2, 1},
		{0, 0},
		{-3, 0},
		{MaxYears, MaxYears},
		{1e9, MaxYears},
		{1e19, MaxYears},
		{1e300, MaxYears},
		{math.Inf(1), MaxYears},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Horizon(tt.years), "years %v", tt.years)
	}
}

func TestSimulateRecurrence(t *testing.T) {
	result := Simulate(domain.ResolvedParameters{Principal: 1000, Rate: 10, Withdrawal: 150, Years: 3})
	require.Len(t, result.Records, 3)

	want := []domain.YearRecord{
		{Year: 1, OpeningBalance: 1000, InterestAccrued: 100, WithdrawalAmount: 150, ClosingBalance: 950},
		{Year: 2, OpeningBalance: 950, InterestAccrued: 95, WithdrawalAmount: 150, ClosingBalance: 895},
		{Year: 3, OpeningBalance: 895, InterestAccrued: 89.5, WithdrawalAmount: 150, ClosingBalance: 834.5},
	}
	for i, w := range want {
		got := result.Records[i]
		assert.Equal(t, w.Year, got.Year)
		assert.InDelta(t, w.OpeningBalance, got.OpeningBalance, 1e-9)
		assert.InDelta(t, w.InterestAccrued, got.InterestAccrued, 1e-9)
		assert.InDelta(t, w.WithdrawalAmount, got.WithdrawalAmount, 1e-9)
		assert.InDelta(t, w.ClosingBalance, got.ClosingBalance, 1e-9)
	}
	assert.InDelta(t, 284.5, result.TotalInterest, 1e-9)
	assert.InDelta(t, 834.5, result.FinalBalance, 1e-9)
}

func TestSimulateInterestNeverNegative(t *testing.T) {
	result := Simulate(domain.ResolvedParameters{Principal: 100000, Rate: 5, Withdrawal: 50000, Years: 10})

	sawNegativeOpening := false
	for _, rec := range result.Records {
		assert.GreaterOrEqual(t, rec.InterestAccrued, 0.0, "year %d", rec.Year)
		if rec.OpeningBalance < 0 {
			sawNegativeOpening = true
			assert.Zero(t, rec.InterestAccrued, "year %d", rec.Year)
		}
	}
	assert.True(t, sawNegativeOpening)
	assert.Less(t, result.FinalBalance, 0.0)
	assert.Equal(t, 3, result.DepletionYear())
}

func TestSimulateTotalInterestIsSumOfRecords(t *testing.T) {
	result := Simulate(domain.ResolvedParameters{Principal: 1234567.89, Rate: 3.7, Withdrawal: 61000, Years: 42})

	var sum float64
	for _, rec := range result.Records {
		sum += rec.InterestAccrued
	}
	assert.Equal(t, sum, result.TotalInterest)
	assert.Equal(t, result.Records[len(result.Records)-1].ClosingBalance, result.FinalBalance)
}

func TestSimulateRecordsAreChained(t *testing.T) {
	result := Simulate(domain.ResolvedParameters{Principal: 500000, Rate: 2, Withdrawal: 30000, Years: 25})
	for i := 1; i < len(result.Records); i++ {
		assert.Equal(t, result.Records[i-1].ClosingBalance, result.Records[i].OpeningBalance)
		assert.Equal(t, i+1, result.Records[i].Year)
	}
}

func TestSimulateGrowingBalance(t *testing.T) {
	result := Simulate(domain.ResolvedParameters{Principal: 1000000, Rate: 6, Withdrawal: 30000, Years: 20})
	assert.Greater(t, result.FinalBalance, 1000000.0)
	assert.True(t, result.IsSustainable())
	assert.Zero(t, result.DepletionYear())
}

func TestSimulateNoYears(t *testing.T) {
	result := Simulate(domain.ResolvedParameters{Principal: 1000, Rate: 5, Withdrawal: 10, Years: 0})
	assert.Empty(t, result.Records)
	assert.Equal(t, 1000.0, result.FinalBalance)
	assert.Zero(t, result.TotalInterest)
}

func TestBalanceAfterMatchesSimulate(t *testing.T) {
	params := domain.ResolvedParameters{Principal: 750000, Rate: 4.5, Withdrawal: 52000, Years: 28}
	assert.Equal(t, Simulate(params).FinalBalance, balanceAfter(750000, 0.045, 52000, 28))
}

func TestSimulateSaturatesHorizon(t *testing.T) {
	result := Simulate(domain.ResolvedParameters{Principal: 1000000, Rate: 5, Withdrawal: 50000, Years: 1e300})
	assert.Len(t, result.Records, MaxYears)
	assert.InDelta(t, 1000000.0, result.FinalBalance, 1e-6)
}
