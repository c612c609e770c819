package calculation

import (
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// Engine resolves a plan and projects its balance trajectory
type Engine struct {
	Resolver Resolver
	Logger   Logger
}

// NewEngine creates an engine using the standard solve patterns
func NewEngine(opts ...ResolverOption) *Engine {
	return &Engine{
		Resolver: NewStandardResolver(opts...),
		Logger:   NopLogger{},
	}
}

// NewDrawdownEngine creates an engine that consumes ratioPercent of the principal over the plan
func NewDrawdownEngine(ratioPercent float64) *Engine {
	return &Engine{
		Resolver: NewDrawdownResolver(ratioPercent),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate resolves the missing parameters and simulates the plan
func (e *Engine) Calculate(ps domain.ParameterSet) (*domain.SimulationResult, error) {
	resolved, err := e.Resolver.Resolve(ps)
	if err != nil {
		e.Logger.Debugf("resolution failed: %v", err)
		return nil, fmt.Errorf("calculation failed: %w", err)
	}

	e.Logger.Infof("resolved plan via %s: principal=%.2f rate=%.4f%% withdrawal=%.2f years=%.2f",
		resolved.Pattern, resolved.Principal, resolved.Rate, resolved.Withdrawal, resolved.Years)
	if resolved.YearsDefaulted {
		e.Logger.Debugf("years not supplied, simulating the default %d years", domain.DefaultYears)
	}

	result := Simulate(*resolved)
	if !result.IsSustainable() {
		e.Logger.Warnf("balance is negative after %d years (%.2f); first negative in year %d",
			len(result.Records), result.FinalBalance, result.DepletionYear())
	}
	return result, nil
}
