package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// Resolver turns a partial parameter set into a fully determined plan.
type Resolver interface {
	Resolve(ps domain.ParameterSet) (*domain.ResolvedParameters, error)
}

// solveInput carries the known values into a solver; unknown fields are zero.
type solveInput struct {
	principal  float64
	rate       float64 // fraction
	withdrawal float64
	years      float64
	known      domain.ParamMask
}

func (in solveInput) has(p domain.Param) bool { return in.known.Has(p) }

type solver func(in solveInput) (domain.ResolvedParameters, error)

// StandardResolver implements the five interest/withdrawal solve patterns.
type StandardResolver struct {
	allowZeroRate bool
	solvers       map[domain.Pattern]solver
}

// ResolverOption configures a resolver.
type ResolverOption func(*StandardResolver)

// WithZeroRate treats an explicit rate of 0 as known instead of absent.
func WithZeroRate() ResolverOption {
	return func(r *StandardResolver) { r.allowZeroRate = true }
}

// NewStandardResolver creates a resolver for the standard patterns.
func NewStandardResolver(opts ...ResolverOption) *StandardResolver {
	r := &StandardResolver{
		solvers: map[domain.Pattern]solver{
			domain.PatternInterestOnly:      solveInterestOnly,
			domain.PatternRequiredPrincipal: solveRequiredPrincipal,
			domain.PatternImpliedRate:       solveImpliedRate,
			domain.PatternVerify:            solveVerify,
			domain.PatternAnnuity:           solveAnnuity,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve classifies the known parameters, solves for the missing ones and
// validates the result.
func (r *StandardResolver) Resolve(ps domain.ParameterSet) (*domain.ResolvedParameters, error) {
	in := newSolveInput(ps, r.allowZeroRate)

	pattern, err := classify(in.known)
	if err != nil {
		return nil, resolutionError(domain.PatternUnknown, in.known, err)
	}
	if err := checkYears(in); err != nil {
		return nil, resolutionError(pattern, in.known, err)
	}

	resolved, err := r.solvers[pattern](in)
	if err != nil {
		return nil, resolutionError(pattern, in.known, err)
	}
	resolved.Pattern = pattern
	applyYears(&resolved, in)

	if err := checkResolved(resolved, r.allowZeroRate); err != nil {
		return nil, resolutionError(pattern, in.known, err)
	}
	return &resolved, nil
}

func newSolveInput(ps domain.ParameterSet, allowZeroRate bool) solveInput {
	known := ps.Known()
	if allowZeroRate && ps.Rate != nil && *ps.Rate == 0 {
		known = known.With(domain.ParamRate)
	}

	in := solveInput{known: known}
	if known.Has(domain.ParamPrincipal) {
		in.principal = *ps.Principal
	}
	if known.Has(domain.ParamRate) {
		in.rate = *ps.Rate / 100
	}
	if known.Has(domain.ParamWithdrawal) {
		in.withdrawal = *ps.Withdrawal
	}
	if known.Has(domain.ParamYears) {
		in.years = *ps.Years
	}
	return in
}

// classify picks the single pattern that applies to a presence mask.
// An explicit survival period turns (A, B) into the annuity pattern.
func classify(known domain.ParamMask) (domain.Pattern, error) {
	if known.Count() < 2 {
		return domain.PatternUnknown, ErrInsufficientParameters
	}

	a := known.Has(domain.ParamPrincipal)
	b := known.Has(domain.ParamRate)
	c := known.Has(domain.ParamWithdrawal)
	d := known.Has(domain.ParamYears)

	switch {
	case a && b && c:
		return domain.PatternVerify, nil
	case a && b && d:
		return domain.PatternAnnuity, nil
	case a && b:
		return domain.PatternInterestOnly, nil
	case b && c:
		return domain.PatternRequiredPrincipal, nil
	case a && c:
		return domain.PatternImpliedRate, nil
	default:
		return domain.PatternUnknown, fmt.Errorf("%w: known %s; need (A, B), (B, C), (A, C), (A, B, C) or (A, B, D)",
			ErrUnsupportedCombination, known)
	}
}

// applyYears fills in the simulation length, falling back to DefaultYears.
func applyYears(rp *domain.ResolvedParameters, in solveInput) {
	rp.Known = in.known
	if in.has(domain.ParamYears) {
		rp.Years = in.years
		return
	}
	if rp.Years == 0 {
		rp.Years = domain.DefaultYears
		rp.YearsDefaulted = true
	}
}

// checkYears rejects a supplied survival period longer than MaxYears.
func checkYears(in solveInput) error {
	if in.has(domain.ParamYears) && in.years > MaxYears {
		return fmt.Errorf("%w: years %v exceeds the maximum of %d", ErrNumericDomain, in.years, MaxYears)
	}
	return nil
}

// checkResolved rejects degenerate values left by the algebra.
func checkResolved(rp domain.ResolvedParameters, allowZeroRate bool) error {
	values := []struct {
		name   string
		v      float64
		zeroOK bool
	}{
		{"principal", rp.Principal, false},
		{"rate", rp.Rate, allowZeroRate},
		{"withdrawal", rp.Withdrawal, false},
		{"years", rp.Years, false},
	}
	for _, f := range values {
		if !domain.IsFinite(f.v) || f.v < 0 || (f.v == 0 && !f.zeroOK) {
			return fmt.Errorf("%w: %s resolved to %v", ErrResolutionFailed, f.name, f.v)
		}
	}
	if rp.Years > MaxYears {
		return fmt.Errorf("%w: years resolved to %v, above the maximum of %d", ErrNumericDomain, rp.Years, MaxYears)
	}
	return nil
}

func solveInterestOnly(in solveInput) (domain.ResolvedParameters, error) {
	return domain.ResolvedParameters{
		Principal:    in.principal,
		Rate:         in.rate * 100,
		Withdrawal:   in.principal * in.rate,
		PatternLabel: fmt.Sprintf("Known %s: C = A × B/100 (withdraw the interest only)", in.known),
	}, nil
}

func solveRequiredPrincipal(in solveInput) (domain.ResolvedParameters, error) {
	rp := domain.ResolvedParameters{
		Rate:       in.rate * 100,
		Withdrawal: in.withdrawal,
	}

	if !in.has(domain.ParamYears) {
		if in.rate == 0 {
			return rp, fmt.Errorf("%w: a zero rate needs an unbounded principal to fund withdrawals forever", ErrNumericDomain)
		}
		rp.Principal = in.withdrawal / in.rate
		rp.PatternLabel = fmt.Sprintf("Known %s: A = C / (B/100) (principal whose interest covers C)", in.known)
		return rp, nil
	}

	// The balance after n years is increasing in the principal; 0 always ends
	// negative and 2·C·n always covers n withdrawals.
	steps := Horizon(in.years)
	_, hi := bisect(0, 2*in.withdrawal*float64(steps), func(principal float64) bool {
		return balanceAfter(principal, in.rate, in.withdrawal, steps) >= 0
	})
	rp.Principal = hi
	rp.PatternLabel = fmt.Sprintf("Known %s: A by bisection so the balance stays non-negative for D years", in.known)
	return rp, nil
}

func solveImpliedRate(in solveInput) (domain.ResolvedParameters, error) {
	rp := domain.ResolvedParameters{
		Principal:  in.principal,
		Withdrawal: in.withdrawal,
	}

	target := in.withdrawal / in.principal
	if target < RateFloor || target > RateCeiling {
		return rp, fmt.Errorf("%w: withdrawal is %.4f%% of principal, outside the %.1f%% to %.0f%% search range",
			ErrNumericDomain, target*100, RateFloor*100, RateCeiling*100)
	}

	lo, hi := bisect(RateFloor, RateCeiling, func(rate float64) bool {
		return in.principal*rate >= in.withdrawal
	})
	rp.Rate = (lo + hi) / 2 * 100
	rp.PatternLabel = fmt.Sprintf("Known %s: B by bisection on A × B/100 = C", in.known)
	return rp, nil
}

func solveVerify(in solveInput) (domain.ResolvedParameters, error) {
	label := fmt.Sprintf("Known %s: verify the plan with the given withdrawal", in.known)
	if in.has(domain.ParamYears) {
		label = fmt.Sprintf("Known %s: verify the plan over D years with the given withdrawal", in.known)
	}

	interest := in.principal * in.rate
	switch {
	case in.withdrawal > interest:
		label += "; withdrawal exceeds first-year interest"
	case in.withdrawal < interest:
		label += "; withdrawal below first-year interest, the balance grows"
	default:
		label += "; withdrawal equals first-year interest"
	}

	return domain.ResolvedParameters{
		Principal:    in.principal,
		Rate:         in.rate * 100,
		Withdrawal:   in.withdrawal,
		PatternLabel: label,
	}, nil
}

func solveAnnuity(in solveInput) (domain.ResolvedParameters, error) {
	rp := domain.ResolvedParameters{
		Principal: in.principal,
		Rate:      in.rate * 100,
		Years:     in.years,
	}
	rp.Withdrawal = annuityWithdrawal(in.principal, in.rate, in.years)
	rp.PatternLabel = fmt.Sprintf("Known %s: C = A·r·(1+r)^D / ((1+r)^D - 1) (balance reaches zero after D years)", in.known)
	return rp, nil
}

// annuityWithdrawal is the constant withdrawal that drains principal to zero
// after years of compounding at rate. A zero rate degrades to straight-line depletion.
func annuityWithdrawal(principal, rate, years float64) float64 {
	if rate == 0 {
		return principal / years
	}
	pow := math.Pow(1+rate, years)
	return principal * rate * pow / (pow - 1)
}
