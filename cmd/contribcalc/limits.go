package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/limits"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func limitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Print the contribution limit table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			l := limits.Current()
			w := cmd.OutOrStdout()

			switch strings.ToLower(format) {
			case "yaml", "yml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(l); err != nil {
					return fmt.Errorf("failed to encode limits: %w", err)
				}
				return enc.Close()
			case "json":
				data, err := json.MarshalIndent(l, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode limits: %w", err)
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			case "console", "table", "":
				writeLimits(w, l)
				return nil
			default:
				return fmt.Errorf("unknown output format %q (valid: console, yaml, json)", format)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, yaml, json)")
	return cmd
}

// writeLimits prints the limit table as text
func writeLimits(w io.Writer, l domain.TaxYearLimits) {
	row := func(label string, amount any) {
		fmt.Fprintf(w, "  %-44s %12v\n", label, amount)
	}
	band := func(b domain.PhaseOutBand) string {
		return currency.Whole(b.Start) + " - " + currency.Whole(b.End)
	}

	fmt.Fprintf(w, "%d CONTRIBUTION LIMITS\n", l.Year)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "401(k) / 403(b) / TSP")
	row("Elective deferral", currency.Whole(l.Plan401k.BaseDeferral))
	row(fmt.Sprintf("Catch-up (age %d+)", domain.CatchUpAge), currency.Whole(l.Plan401k.StandardCatchUp))
	row(fmt.Sprintf("Super catch-up (ages %d-%d)", domain.SuperCatchUpMinAge, domain.SuperCatchUpMaxAge), currency.Whole(l.Plan401k.SuperCatchUp))
	row("Total additions, 415(c)", currency.Whole(l.Plan401k.Total415c))
	row("415(c) with catch-up", currency.Whole(l.Plan401k.Total415cWithStandardCatchUp))
	row("415(c) with super catch-up", currency.Whole(l.Plan401k.Total415cWithSuperCatchUp))
	row("Roth catch-up FICA wage threshold", currency.Whole(l.RothCatchUpFICAThreshold))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "IRA")
	row("Contribution", currency.Whole(l.IRA.Base))
	row(fmt.Sprintf("Catch-up (age %d+)", domain.CatchUpAge), currency.Whole(l.IRA.CatchUp))
	for _, status := range domain.FilingStatuses {
		if b, ok := l.IRA.RothPhaseOut[status]; ok {
			row("Roth phase-out, "+status.Label(), band(b))
		}
	}
	names := make([]string, 0, len(l.TraditionalIRAPhaseOut))
	for name := range l.TraditionalIRAPhaseOut {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		row("Traditional deduction phase-out, "+name, band(l.TraditionalIRAPhaseOut[name]))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "HSA")
	row("Self-only coverage", currency.Whole(l.HSA.Self))
	row("Family coverage", currency.Whole(l.HSA.Family))
	row(fmt.Sprintf("Catch-up (age %d+)", domain.HSACatchUpAge), currency.Whole(l.HSA.CatchUp))
	row("HDHP minimum deductible, self", currency.Whole(l.HDHP.MinDeductibleSelf))
	row("HDHP minimum deductible, family", currency.Whole(l.HDHP.MinDeductibleFamily))
	row("HDHP out-of-pocket maximum, self", currency.Whole(l.HDHP.MaxOutOfPocketSelf))
	row("HDHP out-of-pocket maximum, family", currency.Whole(l.HDHP.MaxOutOfPocketFamily))
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Validate an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadInputs(cmd, args); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid\n", args[0])
			return nil
		},
	}
}
