package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

var (
	// ErrInsufficientParameters is returned when fewer than two parameters are known.
	ErrInsufficientParameters = errors.New("at least two of principal, rate, withdrawal and years are required")

	// ErrUnsupportedCombination is returned when no solve pattern matches the known parameters.
	ErrUnsupportedCombination = errors.New("unsupported parameter combination")

	// ErrResolutionFailed is returned when a solve produces a degenerate value.
	ErrResolutionFailed = errors.New("could not determine all required parameters")

	// ErrNumericDomain is returned when a solve leaves the domain its formula is defined on.
	ErrNumericDomain = errors.New("parameters outside the solvable range")

	// ErrInvalidDrawdownRatio is returned when drawdown mode has no usable consumption ratio.
	ErrInvalidDrawdownRatio = errors.New("drawdown ratio must be greater than 0 and at most 100 percent")
)

// ResolutionError records which pattern failed and why.
type ResolutionError struct {
	Pattern domain.Pattern
	Known   domain.ParamMask
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Pattern == domain.PatternUnknown {
		return fmt.Sprintf("resolve (known: %s): %v", e.Known, e.Err)
	}
	return fmt.Sprintf("resolve %s (known: %s): %v", e.Pattern, e.Known, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func resolutionError(pattern domain.Pattern, known domain.ParamMask, err error) *ResolutionError {
	return &ResolutionError{Pattern: pattern, Known: known, Err: err}
}
