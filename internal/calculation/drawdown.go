package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// drawdownMismatchTolerance is the relative gap between a supplied and the
// theoretical withdrawal below which a verified plan counts as matching.
const drawdownMismatchTolerance = 0.01

// DrawdownResolver solves plans that consume a fixed share of the principal
// by the end of the survival period, leaving A·(1-d) where d = RatioPercent/100.
type DrawdownResolver struct {
	RatioPercent float64
}

// NewDrawdownResolver creates a resolver for the given principal consumption percentage.
func NewDrawdownResolver(ratioPercent float64) *DrawdownResolver {
	return &DrawdownResolver{RatioPercent: ratioPercent}
}

// Resolve solves the single unknown among principal, rate, withdrawal and years.
func (dr *DrawdownResolver) Resolve(ps domain.ParameterSet) (*domain.ResolvedParameters, error) {
	in := newSolveInput(ps, false)

	if !domain.IsFinite(dr.RatioPercent) || dr.RatioPercent <= 0 || dr.RatioPercent > 100 {
		return nil, resolutionError(domain.PatternUnknown, in.known,
			fmt.Errorf("%w: got %v", ErrInvalidDrawdownRatio, dr.RatioPercent))
	}

	pattern, err := classifyDrawdown(in.known)
	if err != nil {
		return nil, resolutionError(domain.PatternUnknown, in.known, err)
	}
	if err := checkYears(in); err != nil {
		return nil, resolutionError(pattern, in.known, err)
	}

	d := dr.RatioPercent / 100
	var rp domain.ResolvedParameters
	switch pattern {
	case domain.PatternDrawdownWithdrawal:
		rp, err = solveDrawdownWithdrawal(in, d)
	case domain.PatternDrawdownPrincipal:
		rp, err = solveDrawdownPrincipal(in, d)
	case domain.PatternDrawdownRate:
		rp, err = solveDrawdownRate(in, d)
	case domain.PatternDrawdownHorizon:
		rp, err = solveDrawdownHorizon(in, d)
	case domain.PatternDrawdownVerify:
		rp, err = solveDrawdownVerify(in, d)
	}
	if err != nil {
		return nil, resolutionError(pattern, in.known, err)
	}

	rp.Pattern = pattern
	rp.Known = in.known
	rp.DrawdownRatio = dr.RatioPercent
	if err := checkResolved(rp, false); err != nil {
		return nil, resolutionError(pattern, in.known, err)
	}
	return &rp, nil
}

func classifyDrawdown(known domain.ParamMask) (domain.Pattern, error) {
	if known.Count() < 2 {
		return domain.PatternUnknown, ErrInsufficientParameters
	}

	a := known.Has(domain.ParamPrincipal)
	b := known.Has(domain.ParamRate)
	c := known.Has(domain.ParamWithdrawal)
	d := known.Has(domain.ParamYears)

	switch {
	case a && b && c && d:
		return domain.PatternDrawdownVerify, nil
	case a && b && d:
		return domain.PatternDrawdownWithdrawal, nil
	case b && c && d:
		return domain.PatternDrawdownPrincipal, nil
	case a && c && d:
		return domain.PatternDrawdownRate, nil
	case a && b && c:
		return domain.PatternDrawdownHorizon, nil
	default:
		return domain.PatternUnknown, fmt.Errorf("%w: drawdown mode needs three of A, B, C, D; known %s",
			ErrUnsupportedCombination, known)
	}
}

// drawdownWithdrawal is the constant withdrawal that leaves principal·(1-d) after years.
func drawdownWithdrawal(principal, rate, years, d float64) float64 {
	pow := math.Pow(1+rate, years)
	return principal * rate * (pow - (1 - d)) / (pow - 1)
}

func solveDrawdownWithdrawal(in solveInput, d float64) (domain.ResolvedParameters, error) {
	return domain.ResolvedParameters{
		Principal:    in.principal,
		Rate:         in.rate * 100,
		Years:        in.years,
		Withdrawal:   drawdownWithdrawal(in.principal, in.rate, in.years, d),
		PatternLabel: fmt.Sprintf("Known %s, K: C = A·r·((1+r)^D - (1-K)) / ((1+r)^D - 1)", in.known),
	}, nil
}

func solveDrawdownPrincipal(in solveInput, d float64) (domain.ResolvedParameters, error) {
	pow := math.Pow(1+in.rate, in.years)
	denominator := in.rate * (pow - (1 - d))
	if denominator <= 0 {
		return domain.ResolvedParameters{}, fmt.Errorf("%w: principal denominator %v is not positive", ErrNumericDomain, denominator)
	}
	return domain.ResolvedParameters{
		Principal:    in.withdrawal * (pow - 1) / denominator,
		Rate:         in.rate * 100,
		Years:        in.years,
		Withdrawal:   in.withdrawal,
		PatternLabel: fmt.Sprintf("Known %s, K: A = C·((1+r)^D - 1) / (r·((1+r)^D - (1-K)))", in.known),
	}, nil
}

func solveDrawdownRate(in solveInput, d float64) (domain.ResolvedParameters, error) {
	withdrawalAt := func(rate float64) float64 {
		return drawdownWithdrawal(in.principal, rate, in.years, d)
	}

	lowest, highest := withdrawalAt(RateFloor), withdrawalAt(RateCeiling)
	if in.withdrawal < lowest || in.withdrawal > highest {
		return domain.ResolvedParameters{}, fmt.Errorf("%w: withdrawal %.2f needs a rate outside %.1f%% to %.0f%% (withdrawals %.2f to %.2f)",
			ErrNumericDomain, in.withdrawal, RateFloor*100, RateCeiling*100, lowest, highest)
	}

	lo, hi := bisect(RateFloor, RateCeiling, func(rate float64) bool {
		return withdrawalAt(rate) >= in.withdrawal
	})
	return domain.ResolvedParameters{
		Principal:    in.principal,
		Rate:         (lo + hi) / 2 * 100,
		Years:        in.years,
		Withdrawal:   in.withdrawal,
		PatternLabel: fmt.Sprintf("Known %s, K: B by bisection on the drawdown withdrawal formula", in.known),
	}, nil
}

func solveDrawdownHorizon(in solveInput, d float64) (domain.ResolvedParameters, error) {
	interest := in.principal * in.rate
	denominator := in.withdrawal - interest
	if denominator <= 0 {
		return domain.ResolvedParameters{}, fmt.Errorf("%w: withdrawal must exceed first-year interest (%.2f)", ErrNumericDomain, interest)
	}

	ratio := (in.withdrawal - interest*(1-d)) / denominator
	if ratio <= 1 {
		return domain.ResolvedParameters{}, fmt.Errorf("%w: growth ratio %v admits no positive horizon", ErrNumericDomain, ratio)
	}

	return domain.ResolvedParameters{
		Principal:    in.principal,
		Rate:         in.rate * 100,
		Years:        math.Log(ratio) / math.Log(1+in.rate),
		Withdrawal:   in.withdrawal,
		PatternLabel: fmt.Sprintf("Known %s, K: D = ln((C - A·r·(1-K)) / (C - A·r)) / ln(1+r)", in.known),
	}, nil
}

func solveDrawdownVerify(in solveInput, d float64) (domain.ResolvedParameters, error) {
	expected := drawdownWithdrawal(in.principal, in.rate, in.years, d)
	label := fmt.Sprintf("Known %s, K: withdrawal matches the theoretical %.2f", in.known, expected)
	if math.Abs(in.withdrawal-expected)/expected > drawdownMismatchTolerance {
		if in.withdrawal > expected {
			label = fmt.Sprintf("Known %s, K: withdrawal above the theoretical %.2f, may not last D years", in.known, expected)
		} else {
			label = fmt.Sprintf("Known %s, K: withdrawal below the theoretical %.2f, lasts beyond D years", in.known, expected)
		}
	}

	return domain.ResolvedParameters{
		Principal:    in.principal,
		Rate:         in.rate * 100,
		Years:        in.years,
		Withdrawal:   in.withdrawal,
		PatternLabel: label,
	}, nil
}
