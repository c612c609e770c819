package main

import (
	"fmt"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %-12s -> %s\n", alias, output.AliasTarget(alias))
			}
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [FILE]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "fire_plan.yaml"
			if len(args) == 1 {
				filename = args[0]
			}

			parser := config.NewInputParser()
			if err := parser.SavePlan(filename, parser.CreateExamplePlan()); err != nil {
				return err
			}
			if logger != nil {
				logger.Debug("Example plan written", zap.String("path", filename))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", filename)
			return nil
		},
	}
}
