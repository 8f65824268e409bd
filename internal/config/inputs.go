package config

import (
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Defaults applied to missing inputs
const (
	DefaultAge           = 35
	DefaultRetirementAge = 65
	DefaultSalary        = 150000
	DefaultMatchPct      = 100
	DefaultMatchCapPct   = 6
	DefaultRaisePct      = 3
	DefaultInflationPct  = 2.5
)

// Inputs mirrors the calculator form. Percentages are in percent units (6 means 6%).
// A zero or empty value means "not provided" and takes the default in Normalize.
type Inputs struct {
	Age              int     `yaml:"age,omitempty" json:"age,omitempty" toml:"age,omitempty"`
	RetirementAge    int     `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty" toml:"retirement_age,omitempty"`
	Salary           float64 `yaml:"salary,omitempty" json:"salary,omitempty" toml:"salary,omitempty"`
	MAGI             float64 `yaml:"magi,omitempty" json:"magi,omitempty" toml:"magi,omitempty"`
	FilingStatus     string  `yaml:"filing_status,omitempty" json:"filing_status,omitempty" toml:"filing_status,omitempty"`
	FICAWages        float64 `yaml:"fica_wages,omitempty" json:"fica_wages,omitempty" toml:"fica_wages,omitempty"`
	RaisePct         float64 `yaml:"raise_pct,omitempty" json:"raise_pct,omitempty" toml:"raise_pct,omitempty"`
	InflationPct     float64 `yaml:"inflation_pct,omitempty" json:"inflation_pct,omitempty" toml:"inflation_pct,omitempty"`
	MatchPct         float64 `yaml:"match_pct,omitempty" json:"match_pct,omitempty" toml:"match_pct,omitempty"`
	MatchCap         float64 `yaml:"match_cap,omitempty" json:"match_cap,omitempty" toml:"match_cap,omitempty"`
	MatchDollarCap   float64 `yaml:"match_dollar_cap,omitempty" json:"match_dollar_cap,omitempty" toml:"match_dollar_cap,omitempty"`
	AllowsAfterTax   string  `yaml:"allows_aftertax,omitempty" json:"allows_aftertax,omitempty" toml:"allows_aftertax,omitempty"`
	AllowsConversion string  `yaml:"allows_conversion,omitempty" json:"allows_conversion,omitempty" toml:"allows_conversion,omitempty"`
	HSACoverage      string  `yaml:"hsa_coverage,omitempty" json:"hsa_coverage,omitempty" toml:"hsa_coverage,omitempty"`
	TotalHSA         float64 `yaml:"total_hsa,omitempty" json:"total_hsa,omitempty" toml:"total_hsa,omitempty"`
	BackdoorRoth     float64 `yaml:"backdoor_roth,omitempty" json:"backdoor_roth,omitempty" toml:"backdoor_roth,omitempty"`
	Balance401k      float64 `yaml:"balance_401k,omitempty" json:"balance_401k,omitempty" toml:"balance_401k,omitempty"`
	BalanceIRA       float64 `yaml:"balance_ira,omitempty" json:"balance_ira,omitempty" toml:"balance_ira,omitempty"`
	BalanceHSA       float64 `yaml:"balance_hsa,omitempty" json:"balance_hsa,omitempty" toml:"balance_hsa,omitempty"`
}

// Request is a fully defaulted calculation request
type Request struct {
	Profile domain.PersonProfile
	Plan    domain.PlanFeatures
	Params  domain.ProjectionParams
}

// Merge returns a copy of in with every provided (non-zero) field of override applied
func (in Inputs) Merge(override Inputs) Inputs {
	out := in
	if override.Age != 0 {
		out.Age = override.Age
	}
	if override.RetirementAge != 0 {
		out.RetirementAge = override.RetirementAge
	}
	mergeFloat(&out.Salary, override.Salary)
	mergeFloat(&out.MAGI, override.MAGI)
	mergeString(&out.FilingStatus, override.FilingStatus)
	mergeFloat(&out.FICAWages, override.FICAWages)
	mergeFloat(&out.RaisePct, override.RaisePct)
	mergeFloat(&out.InflationPct, override.InflationPct)
	mergeFloat(&out.MatchPct, override.MatchPct)
	mergeFloat(&out.MatchCap, override.MatchCap)
	mergeFloat(&out.MatchDollarCap, override.MatchDollarCap)
	mergeString(&out.AllowsAfterTax, override.AllowsAfterTax)
	mergeString(&out.AllowsConversion, override.AllowsConversion)
	mergeString(&out.HSACoverage, override.HSACoverage)
	mergeFloat(&out.TotalHSA, override.TotalHSA)
	mergeFloat(&out.BackdoorRoth, override.BackdoorRoth)
	mergeFloat(&out.Balance401k, override.Balance401k)
	mergeFloat(&out.BalanceIRA, override.BalanceIRA)
	mergeFloat(&out.BalanceHSA, override.BalanceHSA)
	return out
}

func mergeFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func orInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func orFloat(v, fallback float64) decimal.Decimal {
	if v == 0 {
		return decimal.NewFromFloat(fallback)
	}
	return decimal.NewFromFloat(v)
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

var hundred = decimal.NewFromInt(100)

// Normalize applies the default for every missing input and converts to domain values.
// MAGI falls back to the (defaulted) salary. After-tax and conversion are enabled only by "yes".
func (in Inputs) Normalize() Request {
	age := orInt(in.Age, DefaultAge)
	salary := orFloat(in.Salary, DefaultSalary)
	magi := salary
	if in.MAGI != 0 {
		magi = decimal.NewFromFloat(in.MAGI)
	}

	profile := domain.PersonProfile{
		Age:                age,
		Salary:             salary,
		MAGI:               magi,
		FilingStatus:       domain.FilingStatus(orString(in.FilingStatus, string(domain.FilingSingle))),
		PriorYearFICAWages: orFloat(in.FICAWages, 0),
	}

	plan := domain.PlanFeatures{
		MatchRate:                orFloat(in.MatchPct, DefaultMatchPct).Div(hundred),
		MatchCapPercent:          orFloat(in.MatchCap, DefaultMatchCapPct).Div(hundred),
		MatchDollarCap:           orFloat(in.MatchDollarCap, 0),
		AllowsAfterTax:           in.AllowsAfterTax == "yes",
		AllowsConversion:         in.AllowsConversion == "yes",
		HSACoverage:              domain.HSACoverage(orString(in.HSACoverage, string(domain.HSACoverageNone))),
		HSATotalContribution:     orFloat(in.TotalHSA, 0),
		BackdoorRothContribution: orFloat(in.BackdoorRoth, 0),
	}

	params := domain.ProjectionParams{
		CurrentAge:     age,
		RetirementAge:  orInt(in.RetirementAge, DefaultRetirementAge),
		AnnualRaisePct: orFloat(in.RaisePct, DefaultRaisePct).Div(hundred),
		InflationRate:  orFloat(in.InflationPct, DefaultInflationPct).Div(hundred),
		ExistingBalances: domain.BucketBalances{
			orFloat(in.Balance401k, 0),
			orFloat(in.BalanceIRA, 0),
			orFloat(in.BalanceHSA, 0),
		},
	}

	return Request{Profile: profile, Plan: plan, Params: params}
}

// DefaultInputs returns the form pre-filled with every default
func DefaultInputs() Inputs {
	return Inputs{
		Age:              DefaultAge,
		RetirementAge:    DefaultRetirementAge,
		Salary:           DefaultSalary,
		FilingStatus:     string(domain.FilingSingle),
		RaisePct:         DefaultRaisePct,
		InflationPct:     DefaultInflationPct,
		MatchPct:         DefaultMatchPct,
		MatchCap:         DefaultMatchCapPct,
		AllowsAfterTax:   "no",
		AllowsConversion: "no",
		HSACoverage:      string(domain.HSACoverageNone),
	}
}
