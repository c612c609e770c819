package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InputParser handles reading and writing plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// ReadFromFile decodes a plan file without validating it, for callers that
// complete the plan before checking it
func (ip *InputParser) ReadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Decode(data)
}

// Parse decodes and validates plan YAML
func (ip *InputParser) Parse(data []byte) (*Plan, error) {
	plan, err := ip.Decode(data)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidatePlan(plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return plan, nil
}

// Decode parses plan YAML without validating it
func (ip *InputParser) Decode(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &plan, nil
}

// ValidatePlan checks that every amount parses and the drawdown settings are usable
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if plan.IsEmpty() {
		return ErrEmptyPlan
	}

	if _, err := plan.ParameterSet(); err != nil {
		return err
	}

	ratio, err := plan.Drawdown()
	if err != nil {
		return err
	}
	if ratio != nil {
		if *ratio <= 0 || *ratio > 100 {
			return &FieldError{Field: "drawdown_ratio", Value: plan.DrawdownRatio, Err: ErrDrawdownRange}
		}
		if plan.AllowZeroRate {
			return ErrZeroRateDrawdown
		}
	}
	return nil
}

// SavePlan writes a plan as YAML
func (ip *InputParser) SavePlan(filename string, plan *Plan) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExamplePlan returns a plan that solves for the sustainable withdrawal
func (ip *InputParser) CreateExamplePlan() *Plan {
	return &Plan{
		Name:      "Early retirement",
		Principal: "1,000,000",
		Rate:      "5",
		Years:     "30",
	}
}
