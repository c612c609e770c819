package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// Render formats a result with the named formatter.
func Render(result *domain.SimulationResult, format string) ([]byte, error) {
	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	return f.Format(result)
}

// GenerateReport writes a result to a timestamped file in dir and returns its path.
func GenerateReport(result *domain.SimulationResult, format, dir string) (string, error) {
	f, err := lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, result, dir)
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
