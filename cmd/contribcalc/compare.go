package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/contribcalc/internal/compare"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare projected balances for alternative retirement ages",
		Long: `Compare the base retirement age against alternatives.

Examples:
  contribcalc compare inputs.yaml --retire-at 60,62,67
  contribcalc compare --age 45 --retire-at 55,60 --format csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(cmd, args)
			if err != nil {
				return err
			}

			agesStr, _ := cmd.Flags().GetString("retire-at")
			if agesStr == "" {
				return fmt.Errorf("--retire-at is required to specify alternative retirement ages")
			}
			ages, err := compare.ParseRetirementAges(agesStr)
			if err != nil {
				return err
			}

			options := compare.CompareOptions{RetirementAges: ages}
			if len(args) > 0 {
				options.InputPath = args[0]
			}
			comparisonSet, err := compare.NewCompareEngine(a.engine()).Compare(cmd.Context(), req, options)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			w := cmd.OutOrStdout()
			switch strings.ToLower(outputFormat) {
			case "csv":
				out, err := (&compare.CSVFormatter{}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(w, out)
			case "json":
				out, err := (&compare.JSONFormatter{Pretty: true}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(w, out)
			case "compact":
				fmt.Fprintln(w, (&compare.TableFormatter{}).FormatCompact(comparisonSet))
			case "table", "console", "":
				fmt.Fprint(w, (&compare.TableFormatter{}).Format(comparisonSet))
			default:
				return fmt.Errorf("unknown output format %q (valid: table, compact, csv, json)", outputFormat)
			}
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().String("retire-at", "", "Comma-separated alternative retirement ages (required)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	return cmd
}
