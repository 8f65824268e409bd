package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/output"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func calculateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate this year's limits and project balances to retirement",
		Long: `Calculate this year's contribution limits and a three-scenario projection.

Inputs come from an optional YAML, JSON or TOML file; flags override file values.

Examples:
  contribcalc calculate inputs.yaml
  contribcalc calculate --age 52 --salary 210000 --filing-status mfj -f markdown
  contribcalc calculate inputs.yaml --query '$.projection.headline.highNominal'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(cmd, args)
			if err != nil {
				return err
			}

			report, err := output.BuildReport(cmd.Context(), a.engine(), req.Profile, req.Plan, req.Params)
			if err != nil {
				return err
			}
			if report.Error != "" {
				a.logger.Warn("projection unavailable", zap.String("reason", report.Error))
			}

			if query, _ := cmd.Flags().GetString("query"); query != "" {
				return writeQuery(cmd.OutOrStdout(), report, query)
			}

			format := a.prefs.Output.Format
			if cmd.Flags().Changed("format") {
				format, _ = cmd.Flags().GetString("format")
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s)", format,
					strings.Join(output.AvailableFormatterNames(), ", "))
			}
			if save, _ := cmd.Flags().GetBool("save"); save {
				filename, err := output.WriteFormatted(f, report, fileExtension(f.Name()))
				if err != nil {
					return fmt.Errorf("failed to write %s report: %w", f.Name(), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := f.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	addInputFlags(cmd)
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, markdown, html, pretty)")
	cmd.Flags().String("query", "", "JSONPath expression evaluated against the JSON report")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

// fileExtension maps a formatter name to a report file extension
func fileExtension(format string) string {
	switch format {
	case "json", "csv", "html":
		return format
	case "markdown":
		return "md"
	default:
		return "txt"
	}
}

// writeQuery evaluates a JSONPath expression against the report's JSON form
func writeQuery(w io.Writer, report *output.Report, query string) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}

	val, err := jsonpath.Get(query, doc)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", query, err)
	}

	switch v := val.(type) {
	case string:
		_, err = fmt.Fprintln(w, v)
	default:
		var out []byte
		out, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			_, err = fmt.Fprintln(w, string(out))
		}
	}
	return err
}

func projectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [input-file]",
		Short: "Project balances to retirement under three return scenarios",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(cmd, args)
			if err != nil {
				return err
			}

			series, err := a.engine().ProjectRetirement(cmd.Context(), req.Profile, req.Plan, req.Params)
			if err != nil {
				return err
			}

			inflationAdjusted, _ := cmd.Flags().GetBool("real")
			writeProjection(cmd.OutOrStdout(), series, inflationAdjusted)
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().Bool("real", false, "Show balances in today's dollars")
	return cmd
}

// writeProjection prints the headline and a year-by-year table of the three scenarios
func writeProjection(w io.Writer, series *domain.ProjectionSeries, inflationAdjusted bool) {
	h := output.FormatHeadline(series)
	fmt.Fprintln(w, h.Main)
	fmt.Fprintln(w, h.Subtitle)
	fmt.Fprintln(w)

	mode := "nominal"
	if inflationAdjusted {
		mode = "today's dollars"
	}
	fmt.Fprintf(w, "PROJECTION TO %d (%d years, %s)\n", series.RetirementYear, series.YearsToRetirement, mode)
	fmt.Fprintf(w, "%-6s %4s %16s %16s %16s\n", "Year", "Age", "Conservative", "Moderate", "Aggressive")
	fmt.Fprintln(w, strings.Repeat("-", 62))

	base := series.Series(domain.ScenarioModerate)
	for i, snap := range base {
		values := make([]any, 0, domain.NumScenarios)
		for _, s := range domain.Scenarios {
			row := series.Series(s)[i]
			if inflationAdjusted {
				values = append(values, currency.Whole(row.Real))
			} else {
				values = append(values, currency.Whole(row.Nominal))
			}
		}
		fmt.Fprintf(w, "%-6d %4d %16s %16s %16s\n", append([]any{snap.Year, snap.Age}, values...)...)
	}
}
