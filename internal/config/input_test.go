package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain", "1000000", 1000000},
		{"comma grouping", "1,000,000", 1000000},
		{"underscore grouping", "1_000_000", 1000000},
		{"space grouping", "1 000 000.50", 1000000.5},
		{"fractional percent", "4.25", 4.25},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount("principal", tt.text)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 1e-9)
		})
	}
}

func TestParseAmountBlankIsAbsent(t *testing.T) {
	for _, text := range []string{"", "   ", "\t"} {
		got, err := ParseAmount("rate", text)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestParseAmountErrors(t *testing.T) {
	_, err := ParseAmount("withdrawal", "forty thousand")
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "withdrawal", fieldErr.Field)
	assert.Equal(t, "forty thousand", fieldErr.Value)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Contains(t, err.Error(), `invalid withdrawal "forty thousand"`)

	_, err = ParseAmount("years", "-5")
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestPlanParameterSet(t *testing.T) {
	plan := Plan{Principal: "1,000,000", Rate: "5", Years: "30"}
	ps, err := plan.ParameterSet()
	require.NoError(t, err)

	assert.Equal(t, domain.MaskOf(domain.ParamPrincipal, domain.ParamRate, domain.ParamYears), ps.Known())
	assert.Nil(t, ps.Withdrawal)
	assert.Equal(t, 1000000.0, *ps.Principal)

	_, err = Plan{Principal: "1,000,000", Rate: "five"}.ParameterSet()
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "rate", fieldErr.Field)
}

func TestLoadFromFile(t *testing.T) {
	content := "name: \"Lean FIRE\"\n" +
		"principal: \"750,000\"\n" +
		"rate: 4\n" +
		"withdrawal: \"\"\n" +
		"years: 35\n"

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	plan, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	want := &Plan{Name: "Lean FIRE", Principal: "750,000", Rate: "4", Years: "35"}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	parser := NewInputParser()
	dir := t.TempDir()

	_, err := parser.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("principal: [unterminated"), 0o644))
	_, err = parser.LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: nothing\n"), 0o644))
	_, err = parser.LoadFromFile(empty)
	assert.ErrorIs(t, err, ErrEmptyPlan)
	assert.Contains(t, err.Error(), "plan validation failed")
}

func TestValidatePlan(t *testing.T) {
	tests := []struct {
		name    string
		plan    Plan
		wantErr error
	}{
		{"valid standard plan", Plan{Principal: "1000000", Rate: "5"}, nil},
		{"valid drawdown plan", Plan{Principal: "1000000", Rate: "5", Years: "30", DrawdownRatio: "50"}, nil},
		{"full drawdown", Plan{Principal: "1000000", Rate: "5", Years: "30", DrawdownRatio: "100"}, nil},
		{"drawdown above 100", Plan{Principal: "1000000", Rate: "5", DrawdownRatio: "120"}, ErrDrawdownRange},
		{"drawdown of zero", Plan{Principal: "1000000", Rate: "5", DrawdownRatio: "0"}, ErrDrawdownRange},
		{"drawdown not a number", Plan{Principal: "1000000", DrawdownRatio: "half"}, ErrInvalidAmount},
		{"zero rate with drawdown", Plan{Principal: "1000000", Rate: "0", DrawdownRatio: "50", AllowZeroRate: true}, ErrZeroRateDrawdown},
		{"empty", Plan{Name: "nothing"}, ErrEmptyPlan},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidatePlan(&tt.plan)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSavePlanRoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	example := parser.CreateExamplePlan()
	require.NoError(t, parser.SavePlan(path, example))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(example, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanOverride(t *testing.T) {
	base := Plan{Name: "base", Principal: "1,000,000", Rate: "5", Years: "30"}
	flags := Plan{Rate: "4", Withdrawal: "40000", AllowZeroRate: true}

	got := base.Override(flags)
	want := Plan{Name: "base", Principal: "1,000,000", Rate: "4", Withdrawal: "40000", Years: "30", AllowZeroRate: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("override mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "5", base.Rate)
}

func TestPlanDrawdown(t *testing.T) {
	ratio, err := Plan{DrawdownRatio: "75"}.Drawdown()
	require.NoError(t, err)
	assert.Equal(t, 75.0, *ratio)

	ratio, err = Plan{}.Drawdown()
	require.NoError(t, err)
	assert.Nil(t, ratio)
}

func TestReadFromFileSkipsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: half\ndrawdown_ratio: \"50\"\n"), 0o644))

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	require.ErrorIs(t, err, ErrEmptyPlan)

	plan, err := parser.ReadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Plan{Name: "half", DrawdownRatio: "50"}, plan)

	_, err = parser.ReadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = parser.Decode([]byte("rate: [unterminated"))
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestPlanClear(t *testing.T) {
	base := Plan{Name: "base", Principal: "1,000,000", Rate: "5", Withdrawal: "40000", Years: "30", DrawdownRatio: "50"}

	got, err := base.Clear("years", " Drawdown ")
	require.NoError(t, err)
	want := Plan{Name: "base", Principal: "1,000,000", Rate: "5", Withdrawal: "40000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("clear mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "30", base.Years)

	got, err = base.Clear("principal", "rate", "withdrawal", "drawdown_ratio")
	require.NoError(t, err)
	assert.Equal(t, Plan{Name: "base", Years: "30"}, got)

	_, err = base.Clear("name")
	assert.ErrorIs(t, err, ErrUnknownField)
}
