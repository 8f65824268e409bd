package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rgehrsitz/contribcalc/internal/config"
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/output"
	"github.com/rgehrsitz/contribcalc/internal/tui"
	"github.com/spf13/cobra"
)

// formValues holds the interactive form as text, the way the fields are typed
type formValues struct {
	Age              string
	RetirementAge    string
	Salary           string
	MAGI             string
	FilingStatus     string
	FICAWages        string
	RaisePct         string
	InflationPct     string
	MatchPct         string
	MatchCap         string
	MatchDollarCap   string
	AllowsAfterTax   string
	AllowsConversion string
	HSACoverage      string
	TotalHSA         string
	BackdoorRoth     string
	Balance401k      string
	BalanceIRA       string
	BalanceHSA       string
}

func newFormValues(in config.Inputs) formValues {
	num := func(v float64) string {
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	whole := func(v int) string {
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	}
	return formValues{
		Age:              whole(in.Age),
		RetirementAge:    whole(in.RetirementAge),
		Salary:           num(in.Salary),
		MAGI:             num(in.MAGI),
		FilingStatus:     in.FilingStatus,
		FICAWages:        num(in.FICAWages),
		RaisePct:         num(in.RaisePct),
		InflationPct:     num(in.InflationPct),
		MatchPct:         num(in.MatchPct),
		MatchCap:         num(in.MatchCap),
		MatchDollarCap:   num(in.MatchDollarCap),
		AllowsAfterTax:   in.AllowsAfterTax,
		AllowsConversion: in.AllowsConversion,
		HSACoverage:      in.HSACoverage,
		TotalHSA:         num(in.TotalHSA),
		BackdoorRoth:     num(in.BackdoorRoth),
		Balance401k:      num(in.Balance401k),
		BalanceIRA:       num(in.BalanceIRA),
		BalanceHSA:       num(in.BalanceHSA),
	}
}

// toInputs parses the form. Blank fields stay zero and take their default later.
func (v formValues) toInputs() (config.Inputs, error) {
	var firstErr error
	parseFloat := func(field, s string) float64 {
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %q is not a number", field, s)
		}
		return f
	}
	parseInt := func(field, s string) int {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %q is not a whole number", field, s)
		}
		return n
	}

	in := config.Inputs{
		Age:              parseInt("age", v.Age),
		RetirementAge:    parseInt("retirement age", v.RetirementAge),
		Salary:           parseFloat("salary", v.Salary),
		MAGI:             parseFloat("MAGI", v.MAGI),
		FilingStatus:     v.FilingStatus,
		FICAWages:        parseFloat("FICA wages", v.FICAWages),
		RaisePct:         parseFloat("annual raise", v.RaisePct),
		InflationPct:     parseFloat("inflation", v.InflationPct),
		MatchPct:         parseFloat("match", v.MatchPct),
		MatchCap:         parseFloat("match cap", v.MatchCap),
		MatchDollarCap:   parseFloat("match dollar cap", v.MatchDollarCap),
		AllowsAfterTax:   v.AllowsAfterTax,
		AllowsConversion: v.AllowsConversion,
		HSACoverage:      v.HSACoverage,
		TotalHSA:         parseFloat("HSA contribution", v.TotalHSA),
		BackdoorRoth:     parseFloat("backdoor Roth", v.BackdoorRoth),
		Balance401k:      parseFloat("401(k) balance", v.Balance401k),
		BalanceIRA:       parseFloat("IRA balance", v.BalanceIRA),
		BalanceHSA:       parseFloat("HSA balance", v.BalanceHSA),
	}
	return in, firstErr
}

func validNumber(s string) error {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if f < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func validAge(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return errors.New("enter a whole number of years")
	}
	return nil
}

// newInputForm builds the huh form bound to v
func newInputForm(v *formValues) *huh.Form {
	numberInput := func(title string, value *string) *huh.Input {
		return huh.NewInput().Title(title).Value(value).Validate(validNumber)
	}
	filingOptions := make([]huh.Option[string], 0, len(domain.FilingStatuses))
	for _, s := range domain.FilingStatuses {
		filingOptions = append(filingOptions, huh.NewOption(s.Label(), string(s)))
	}
	yesNo := huh.NewOptions("no", "yes")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Current age").Value(&v.Age).Validate(validAge),
			huh.NewInput().Title("Retirement age").Value(&v.RetirementAge).Validate(validAge),
			numberInput("Annual salary", &v.Salary),
			numberInput("MAGI (blank uses salary)", &v.MAGI),
			huh.NewSelect[string]().Title("Filing status").Options(filingOptions...).Value(&v.FilingStatus),
			numberInput("Prior-year FICA wages", &v.FICAWages),
		).Title("About you"),
		huh.NewGroup(
			numberInput("Employer match (%)", &v.MatchPct),
			numberInput("Match cap (% of salary)", &v.MatchCap),
			numberInput("Match cap ($, blank for none)", &v.MatchDollarCap),
			huh.NewSelect[string]().Title("Plan allows after-tax contributions").Options(yesNo...).Value(&v.AllowsAfterTax),
			huh.NewSelect[string]().Title("Plan allows in-plan Roth conversion").Options(yesNo...).Value(&v.AllowsConversion),
		).Title("Your 401(k) plan"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("HSA coverage").Options(
				huh.NewOption("No HDHP coverage", string(domain.HSACoverageNone)),
				huh.NewOption("Self-only", string(domain.HSACoverageSelf)),
				huh.NewOption("Family", string(domain.HSACoverageFamily)),
			).Value(&v.HSACoverage),
			numberInput("Planned HSA contribution", &v.TotalHSA),
			numberInput("Planned backdoor Roth contribution", &v.BackdoorRoth),
		).Title("IRA and HSA"),
		huh.NewGroup(
			numberInput("Annual raise (%)", &v.RaisePct),
			numberInput("Inflation (%)", &v.InflationPct),
			numberInput("Current 401(k) balance", &v.Balance401k),
			numberInput("Current IRA balance", &v.BalanceIRA),
			numberInput("Current HSA balance", &v.BalanceHSA),
		).Title("Projection"),
	)
}

func interactiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Enter inputs in a form and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := newFormValues(config.DefaultInputs())
			if err := newInputForm(&values).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled")
					return nil
				}
				return fmt.Errorf("form failed: %w", err)
			}

			in, err := values.toInputs()
			if err != nil {
				return err
			}
			if err := config.NewInputParser().ValidateInputs(in); err != nil {
				return fmt.Errorf("invalid inputs: %w", err)
			}
			req := in.Normalize()

			if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
				_, err := tea.NewProgram(tui.NewModel(a.engine(), req, a.prefs.TUI.ShowReal), tea.WithAltScreen()).Run()
				return err
			}

			report, err := output.BuildReport(cmd.Context(), a.engine(), req.Profile, req.Plan, req.Params)
			if err != nil {
				return err
			}
			data, err := output.GetFormatterByName("console").Format(report)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().Bool("tui", false, "Show the results in the dashboard")
	return cmd
}

func tuiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [input-file]",
		Short: "Open the interactive dashboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(cmd, args)
			if err != nil {
				return err
			}
			showReal := a.prefs.TUI.ShowReal
			if cmd.Flags().Changed("real") {
				showReal, _ = cmd.Flags().GetBool("real")
			}
			_, err = tea.NewProgram(tui.NewModel(a.engine(), req, showReal), tea.WithAltScreen()).Run()
			return err
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Bool("real", false, "Start with balances in today's dollars")
	return cmd
}
