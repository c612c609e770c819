package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type calculateOptions struct {
	plan      config.Plan
	planFile  string
	clear     []string
	format    string
	output    string
	reportDir string
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Resolve the missing plan values and project the balance",
		Example: `  firecalc calculate --principal 1,000,000 --rate 5 --years 30
  firecalc calculate --rate 5 --withdrawal 50000 --years 30 --format json
  firecalc calculate --plan plan.yaml --drawdown 50 --format html --output plan.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.plan.Principal, "principal", "", "starting principal (A), grouping separators allowed")
	f.StringVar(&opts.plan.Rate, "rate", "", "annual interest rate in percent (B)")
	f.StringVar(&opts.plan.Withdrawal, "withdrawal", "", "annual withdrawal (C)")
	f.StringVar(&opts.plan.Years, "years", "", "survival period in years (D)")
	f.StringVar(&opts.plan.DrawdownRatio, "drawdown", "", "percent of the principal to consume by the end (K), enables drawdown mode")
	f.BoolVar(&opts.plan.AllowZeroRate, "allow-zero-rate", false, "treat a rate of 0 as supplied")
	f.StringVar(&opts.planFile, "plan", "", "plan file (YAML); non-empty flags override its fields, use --clear to drop one")
	f.StringSliceVar(&opts.clear, "clear", nil, "plan-file fields to treat as not supplied, e.g. --clear years")
	f.StringVarP(&opts.format, "format", "f", "console", "output format (see 'firecalc formats')")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	f.StringVar(&opts.reportDir, "report-dir", "", "write a timestamped report into this directory")
	return cmd
}

func runCalculate(out io.Writer, opts *calculateOptions) error {
	log := logger
	if log == nil {
		log = zap.NewNop()
	}

	parser := config.NewInputParser()
	var plan config.Plan
	if opts.planFile != "" {
		loaded, err := parser.ReadFromFile(opts.planFile)
		if err != nil {
			return err
		}
		log.Debug("Loaded plan file", zap.String("path", opts.planFile), zap.String("name", loaded.Name))
		plan = *loaded
	}
	plan, err := plan.Clear(opts.clear...)
	if err != nil {
		return err
	}
	plan = plan.Override(opts.plan)

	if err := parser.ValidatePlan(&plan); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}

	engine, err := newEngine(plan)
	if err != nil {
		return err
	}
	engine.SetLogger(log.Sugar())

	ps, err := plan.ParameterSet()
	if err != nil {
		return err
	}
	result, err := engine.Calculate(ps)
	if err != nil {
		return err
	}

	if opts.reportDir != "" {
		path, err := output.GenerateReport(result, opts.format, opts.reportDir)
		if err != nil {
			return err
		}
		log.Info("Report written", zap.String("path", path), zap.String("format", opts.format))
		fmt.Fprintf(out, "Report written to %s\n", path)
		return nil
	}

	data, err := output.Render(result, opts.format)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", opts.output, err)
		}
		log.Info("Report written", zap.String("path", opts.output), zap.String("format", opts.format))
		fmt.Fprintf(out, "Report written to %s\n", opts.output)
		return nil
	}

	_, err = out.Write(data)
	return err
}

// newEngine picks drawdown mode when the plan names a consumption ratio.
func newEngine(plan config.Plan) (*calculation.Engine, error) {
	ratio, err := plan.Drawdown()
	if err != nil {
		return nil, err
	}
	if ratio != nil {
		return calculation.NewDrawdownEngine(*ratio), nil
	}
	if plan.AllowZeroRate {
		return calculation.NewEngine(calculation.WithZeroRate()), nil
	}
	return calculation.NewEngine(), nil
}
