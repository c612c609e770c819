package domain

import (
	"math"
	"strings"
)

// DefaultYears is the simulation length used when survival years are not supplied.
const DefaultYears = 30

// Param identifies one of the four plan parameters.
type Param uint8

const (
	ParamPrincipal Param = 1 << iota
	ParamRate
	ParamWithdrawal
	ParamYears
)

// String returns the parameter's short letter as used in pattern labels.
func (p Param) String() string {
	switch p {
	case ParamPrincipal:
		return "A"
	case ParamRate:
		return "B"
	case ParamWithdrawal:
		return "C"
	case ParamYears:
		return "D"
	default:
		return "?"
	}
}

// allParams is ordered A, B, C, D for stable rendering.
var allParams = []Param{ParamPrincipal, ParamRate, ParamWithdrawal, ParamYears}

// ParamMask is the set of parameters known for a calculation.
type ParamMask uint8

// Has reports whether every parameter in p is in the mask.
func (m ParamMask) Has(p Param) bool { return m&ParamMask(p) == ParamMask(p) }

// With returns the mask with p added.
func (m ParamMask) With(p Param) ParamMask { return m | ParamMask(p) }

// Count returns the number of known parameters.
func (m ParamMask) Count() int {
	n := 0
	for _, p := range allParams {
		if m.Has(p) {
			n++
		}
	}
	return n
}

// String renders the mask as e.g. "A, B, D".
func (m ParamMask) String() string {
	var names []string
	for _, p := range allParams {
		if m.Has(p) {
			names = append(names, p.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// MaskOf builds a mask from individual parameters.
func MaskOf(params ...Param) ParamMask {
	var m ParamMask
	for _, p := range params {
		m = m.With(p)
	}
	return m
}

// ParameterSet holds the user-supplied plan parameters. A nil field was not supplied.
//
// Principal and Withdrawal are currency amounts, Rate is an annual percentage
// (5 means 5%), and Years is the number of years the plan must last.
type ParameterSet struct {
	Principal  *float64 `json:"principal,omitempty" yaml:"principal,omitempty"`
	Rate       *float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	Withdrawal *float64 `json:"withdrawal,omitempty" yaml:"withdrawal,omitempty"`
	Years      *float64 `json:"years,omitempty" yaml:"years,omitempty"`
}

// Value returns a pointer to v, for building a ParameterSet inline.
func Value(v float64) *float64 { return &v }

// Known returns the parameters that are present: supplied, finite and positive.
func (ps ParameterSet) Known() ParamMask {
	var m ParamMask
	if IsPresent(ps.Principal) {
		m = m.With(ParamPrincipal)
	}
	if IsPresent(ps.Rate) {
		m = m.With(ParamRate)
	}
	if IsPresent(ps.Withdrawal) {
		m = m.With(ParamWithdrawal)
	}
	if IsPresent(ps.Years) {
		m = m.With(ParamYears)
	}
	return m
}

// IsPresent reports whether v holds a usable positive number.
func IsPresent(v *float64) bool {
	return v != nil && IsFinite(*v) && *v > 0
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Get returns the value of v, or zero when absent.
func Get(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Pattern identifies which resolution strategy produced a set of parameters.
type Pattern int

const (
	PatternUnknown Pattern = iota
	PatternInterestOnly
	PatternRequiredPrincipal
	PatternImpliedRate
	PatternVerify
	PatternAnnuity
	PatternDrawdownWithdrawal
	PatternDrawdownPrincipal
	PatternDrawdownRate
	PatternDrawdownHorizon
	PatternDrawdownVerify
)

var patternNames = map[Pattern]string{
	PatternUnknown:            "unknown",
	PatternInterestOnly:       "interest-only",
	PatternRequiredPrincipal:  "required-principal",
	PatternImpliedRate:        "implied-rate",
	PatternVerify:             "verify",
	PatternAnnuity:            "annuity",
	PatternDrawdownWithdrawal: "drawdown-withdrawal",
	PatternDrawdownPrincipal:  "drawdown-principal",
	PatternDrawdownRate:       "drawdown-rate",
	PatternDrawdownHorizon:    "drawdown-horizon",
	PatternDrawdownVerify:     "drawdown-verify",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return patternNames[PatternUnknown]
}

// MarshalText lets patterns render by name in JSON and YAML.
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// ResolvedParameters is a fully determined plan.
type ResolvedParameters struct {
	Principal  float64 `json:"principal"`
	Rate       float64 `json:"rate"`
	Withdrawal float64 `json:"withdrawal"`
	Years      float64 `json:"years"`

	Pattern      Pattern `json:"pattern"`
	PatternLabel string  `json:"pattern_label"`

	// Known is the set of parameters the caller supplied.
	Known ParamMask `json:"-"`
	// YearsDefaulted is set when Years came from DefaultYears.
	YearsDefaulted bool `json:"years_defaulted"`
	// DrawdownRatio is the principal consumption percentage (drawdown mode only).
	DrawdownRatio float64 `json:"drawdown_ratio,omitempty"`
}

// RateFraction returns the rate as a fraction (0.05 for 5%).
func (rp ResolvedParameters) RateFraction() float64 { return rp.Rate / 100 }

// FirstYearInterest is the interest earned on the principal in year one.
func (rp ResolvedParameters) FirstYearInterest() float64 { return rp.Principal * rp.RateFraction() }
