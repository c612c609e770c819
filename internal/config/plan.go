package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/decimal"
)

var (
	// ErrInvalidAmount is returned for text that is not a decimal number.
	ErrInvalidAmount = errors.New("not a decimal number")

	// ErrNegativeAmount is returned for amounts below zero.
	ErrNegativeAmount = errors.New("must not be negative")

	// ErrEmptyPlan is returned when a plan sets none of the four parameters.
	ErrEmptyPlan = errors.New("plan sets none of principal, rate, withdrawal or years")

	// ErrDrawdownRange is returned when the drawdown ratio is outside (0, 100].
	ErrDrawdownRange = errors.New("drawdown_ratio must be greater than 0 and at most 100")

	// ErrUnknownField is returned when a plan field name is not recognised.
	ErrUnknownField = errors.New("unknown plan field")

	// ErrZeroRateDrawdown is returned when allow_zero_rate is combined with drawdown mode.
	ErrZeroRateDrawdown = errors.New("allow_zero_rate cannot be combined with drawdown_ratio")
)

// FieldError reports a plan field whose text could not be used.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Plan is the on-disk form of a withdrawal plan. Amounts are kept as text so
// that "1,000,000" and "1_000_000" are accepted as written.
type Plan struct {
	Name          string `yaml:"name,omitempty"`
	Principal     string `yaml:"principal"`
	Rate          string `yaml:"rate"`
	Withdrawal    string `yaml:"withdrawal"`
	Years         string `yaml:"years"`
	DrawdownRatio string `yaml:"drawdown_ratio,omitempty"`
	AllowZeroRate bool   `yaml:"allow_zero_rate,omitempty"`
}

// ParseAmount converts user text into a value. Blank text means the value was
// not supplied and yields nil.
func ParseAmount(field, text string) (*float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	m, err := decimal.NewMoneyFromString(text)
	if err != nil {
		return nil, &FieldError{Field: field, Value: text, Err: ErrInvalidAmount}
	}
	if m.IsNegative() {
		return nil, &FieldError{Field: field, Value: text, Err: ErrNegativeAmount}
	}

	v := m.Float64()
	return &v, nil
}

// ParameterSet parses the four amounts into the calculator's input.
func (p Plan) ParameterSet() (domain.ParameterSet, error) {
	var ps domain.ParameterSet
	fields := []struct {
		name string
		text string
		dst  **float64
	}{
		{"principal", p.Principal, &ps.Principal},
		{"rate", p.Rate, &ps.Rate},
		{"withdrawal", p.Withdrawal, &ps.Withdrawal},
		{"years", p.Years, &ps.Years},
	}

	for _, f := range fields {
		v, err := ParseAmount(f.name, f.text)
		if err != nil {
			return domain.ParameterSet{}, err
		}
		*f.dst = v
	}
	return ps, nil
}

// Drawdown returns the principal consumption percentage, or nil when the plan
// uses the standard patterns.
func (p Plan) Drawdown() (*float64, error) {
	return ParseAmount("drawdown_ratio", p.DrawdownRatio)
}

// Override returns p with every non-blank field of o applied on top.
func (p Plan) Override(o Plan) Plan {
	set := func(dst *string, src string) {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}
	set(&p.Name, o.Name)
	set(&p.Principal, o.Principal)
	set(&p.Rate, o.Rate)
	set(&p.Withdrawal, o.Withdrawal)
	set(&p.Years, o.Years)
	set(&p.DrawdownRatio, o.DrawdownRatio)
	if o.AllowZeroRate {
		p.AllowZeroRate = true
	}
	return p
}

// Clear blanks the named fields so they count as not supplied. Names match the
// YAML keys; "drawdown" is accepted for drawdown_ratio.
func (p Plan) Clear(fields ...string) (Plan, error) {
	for _, field := range fields {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "principal":
			p.Principal = ""
		case "rate":
			p.Rate = ""
		case "withdrawal":
			p.Withdrawal = ""
		case "years":
			p.Years = ""
		case "drawdown", "drawdown_ratio":
			p.DrawdownRatio = ""
		default:
			return p, fmt.Errorf("%w: %q (want principal, rate, withdrawal, years or drawdown_ratio)", ErrUnknownField, field)
		}
	}
	return p, nil
}

// IsEmpty reports whether none of the four parameters has text.
func (p Plan) IsEmpty() bool {
	for _, s := range []string{p.Principal, p.Rate, p.Withdrawal, p.Years} {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
