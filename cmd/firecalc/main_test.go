package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalculateAnnuity(t *testing.T) {
	out, err := execute(t, "calculate", "--principal", "1,000,000", "--rate", "5", "--years", "30", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Pattern: annuity")
	assert.Contains(t, out, "Withdrawal=$65,051.44")
}

func TestCalculateRequiredPrincipalCSV(t *testing.T) {
	out, err := execute(t, "calculate", "--rate", "5", "--withdrawal", "50000", "--years", "30", "--format", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 31)
	assert.Equal(t, "768622.55", rows[1][1])
}

func TestCalculateInsufficientParameters(t *testing.T) {
	_, err := execute(t, "calculate", "--principal", "1000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrInsufficientParameters)
}

func TestCalculateRejectsMalformedAmount(t *testing.T) {
	_, err := execute(t, "calculate", "--principal", "a lot", "--rate", "5")
	require.Error(t, err)

	var fieldErr *config.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "principal", fieldErr.Field)
}

func TestCalculateEmptyInput(t *testing.T) {
	_, err := execute(t, "calculate")
	assert.ErrorIs(t, err, config.ErrEmptyPlan)
}

func TestCalculateZeroRate(t *testing.T) {
	out, err := execute(t, "calculate", "--principal", "1000000", "--rate", "0", "--withdrawal", "50000", "--years", "30",
		"--allow-zero-rate", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "FinalBalance=-$500,000.00")
}

func TestCalculateDrawdown(t *testing.T) {
	out, err := execute(t, "calculate", "--principal", "1000000", "--rate", "5", "--years", "30", "--drawdown", "50", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Pattern: drawdown-withdrawal")
	assert.Contains(t, out, "Withdrawal=$57,525.72")
	assert.Contains(t, out, "FinalBalance=$500,000.00")
}

func TestCalculateFromPlanFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte("principal: \"1,000,000\"\nrate: 4\nyears: 30\n"), 0o644))

	out, err := execute(t, "calculate", "--plan", planPath, "--rate", "5", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"pattern": "annuity"`)
	assert.Contains(t, out, `"rate": 5`)
}

func TestCalculateWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "report.html")

	out, err := execute(t, "calculate", "--principal", "100000", "--rate", "5", "--withdrawal", "50000", "--format", "html", "--output", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "WARNING: the balance turns negative in year 3")
}

func TestCalculateReportDir(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "calculate", "--principal", "1000000", "--rate", "4", "--format", "table", "--report-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+dir)

	matches, err := filepath.Glob(filepath.Join(dir, "fire_report_*.csv"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestCalculateUnknownFormat(t *testing.T) {
	_, err := execute(t, "calculate", "--principal", "1000000", "--rate", "4", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console-lite")
	assert.Contains(t, out, "verbose")
	assert.Contains(t, out, "-> console")
}

func TestExampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example plan written to "+path)

	plan, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,000,000", plan.Principal)
}

func TestRunCalculateWithoutLogger(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()

	var out bytes.Buffer
	opts := &calculateOptions{plan: config.Plan{Principal: "1000000", Rate: "4"}, format: "console"}
	require.NoError(t, runCalculate(&out, opts))
	assert.Contains(t, out.String(), "FIRE WITHDRAWAL PLAN")

	logger = nil
	out.Reset()
	require.NoError(t, runCalculate(&out, opts))
	assert.Contains(t, out.String(), "withdraw the interest only")
}

func TestCalculateRejectsHugeYears(t *testing.T) {
	for _, years := range []string{"1e9", "1e300"} {
		_, err := execute(t, "calculate", "--principal", "1000000", "--rate", "5", "--withdrawal", "50000", "--years", years)
		require.Error(t, err, years)
		assert.ErrorIs(t, err, calculation.ErrNumericDomain, years)

		_, err = execute(t, "calculate", "--principal", "1000000", "--rate", "5", "--years", years)
		assert.ErrorIs(t, err, calculation.ErrNumericDomain, years)
	}
}

func TestCalculatePartialPlanFileCompletedByFlags(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte("name: half\ndrawdown_ratio: \"50\"\n"), 0o644))

	out, err := execute(t, "calculate", "--plan", planPath, "--principal", "1000000", "--rate", "5", "--years", "30", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Pattern: drawdown-withdrawal")
	assert.Contains(t, out, "FinalBalance=$500,000.00")

	_, err = execute(t, "calculate", "--plan", planPath)
	assert.ErrorIs(t, err, config.ErrEmptyPlan)
}

func TestCalculateClearPlanField(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte("principal: \"1,000,000\"\nrate: 5\nyears: 30\n"), 0o644))

	out, err := execute(t, "calculate", "--plan", planPath, "--clear", "years", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Pattern: interest-only")

	_, err = execute(t, "calculate", "--plan", planPath, "--clear", "name")
	assert.ErrorIs(t, err, config.ErrUnknownField)
}
