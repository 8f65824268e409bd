package main

import (
	"fmt"

	"github.com/rgehrsitz/contribcalc/internal/config"
	"github.com/spf13/cobra"
)

// addInputFlags registers one override flag per input field
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("age", 0, "Current age (default 35)")
	f.Int("retirement-age", 0, "Target retirement age (default 65)")
	f.Float64("salary", 0, "Annual salary (default 150000)")
	f.Float64("magi", 0, "Modified adjusted gross income (default: salary)")
	f.String("filing-status", "", "Filing status: single, mfj, mfs, hoh (default single)")
	f.Float64("fica-wages", 0, "Prior-year FICA wages")
	f.Float64("raise", 0, "Annual raise in percent (default 3)")
	f.Float64("inflation", 0, "Inflation rate in percent (default 2.5)")
	f.Float64("match-pct", 0, "Employer match rate in percent (default 100)")
	f.Float64("match-cap", 0, "Match cap in percent of salary (default 6)")
	f.Float64("match-dollar-cap", 0, "Match cap in dollars (default: none)")
	f.String("aftertax", "", "Plan allows after-tax contributions: yes or no")
	f.String("conversion", "", "Plan allows in-plan Roth conversion: yes or no")
	f.String("hsa-coverage", "", "HSA coverage: none, self, family (default none)")
	f.Float64("total-hsa", 0, "Planned total HSA contribution")
	f.Float64("backdoor-roth", 0, "Planned backdoor Roth contribution")
	f.Float64("balance-401k", 0, "Current 401(k) balance")
	f.Float64("balance-ira", 0, "Current IRA balance")
	f.Float64("balance-hsa", 0, "Current HSA balance")
}

// inputsFromFlags collects every override flag into Inputs; unset flags stay zero
func inputsFromFlags(cmd *cobra.Command) config.Inputs {
	f := cmd.Flags()
	getInt := func(name string) int {
		v, _ := f.GetInt(name)
		return v
	}
	getFloat := func(name string) float64 {
		v, _ := f.GetFloat64(name)
		return v
	}
	getString := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}

	return config.Inputs{
		Age:              getInt("age"),
		RetirementAge:    getInt("retirement-age"),
		Salary:           getFloat("salary"),
		MAGI:             getFloat("magi"),
		FilingStatus:     getString("filing-status"),
		FICAWages:        getFloat("fica-wages"),
		RaisePct:         getFloat("raise"),
		InflationPct:     getFloat("inflation"),
		MatchPct:         getFloat("match-pct"),
		MatchCap:         getFloat("match-cap"),
		MatchDollarCap:   getFloat("match-dollar-cap"),
		AllowsAfterTax:   getString("aftertax"),
		AllowsConversion: getString("conversion"),
		HSACoverage:      getString("hsa-coverage"),
		TotalHSA:         getFloat("total-hsa"),
		BackdoorRoth:     getFloat("backdoor-roth"),
		Balance401k:      getFloat("balance-401k"),
		BalanceIRA:       getFloat("balance-ira"),
		BalanceHSA:       getFloat("balance-hsa"),
	}
}

// loadInputs reads the optional input file and applies flag overrides.
// The merged inputs are validated against the input schema.
func loadInputs(cmd *cobra.Command, args []string) (config.Inputs, error) {
	parser := config.NewInputParser()

	in := config.Inputs{}
	if len(args) > 0 {
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			return config.Inputs{}, err
		}
		in = *loaded
	}

	in = in.Merge(inputsFromFlags(cmd))
	if err := parser.ValidateInputs(in); err != nil {
		return config.Inputs{}, fmt.Errorf("invalid inputs: %w", err)
	}
	return in, nil
}

// loadRequest is loadInputs followed by defaulting
func loadRequest(cmd *cobra.Command, args []string) (config.Request, error) {
	in, err := loadInputs(cmd, args)
	if err != nil {
		return config.Request{}, err
	}
	return in.Normalize(), nil
}
