package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Age thresholds used by the catch-up rules
const (
	CatchUpAge         = 50
	SuperCatchUpMinAge = 60
	SuperCatchUpMaxAge = 63
	HSACatchUpAge      = 55
)

// FilingStatus is the federal filing status used to select a Roth IRA phase-out band
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "mfj"
	FilingMarriedSeparate FilingStatus = "mfs"
	FilingHeadOfHousehold FilingStatus = "hoh"
)

// FilingStatuses lists the supported filing statuses in display order
var FilingStatuses = []FilingStatus{FilingSingle, FilingMarriedJoint, FilingMarriedSeparate, FilingHeadOfHousehold}

// Valid reports whether the filing status is one of the known values
func (f FilingStatus) Valid() bool {
	for _, s := range FilingStatuses {
		if f == s {
			return true
		}
	}
	return false
}

// Label returns a human readable name
func (f FilingStatus) Label() string {
	switch f {
	case FilingMarriedJoint:
		return "Married filing jointly"
	case FilingMarriedSeparate:
		return "Married filing separately"
	case FilingHeadOfHousehold:
		return "Head of household"
	default:
		return "Single"
	}
}

// HSACoverage is the HDHP coverage tier that determines the HSA limit
type HSACoverage string

const (
	HSACoverageNone   HSACoverage = "none"
	HSACoverageSelf   HSACoverage = "self"
	HSACoverageFamily HSACoverage = "family"
)

// CatchUpKind identifies which 401(k) catch-up tier applies
type CatchUpKind string

const (
	CatchUpNone     CatchUpKind = ""
	CatchUpStandard CatchUpKind = "standard"
	CatchUpSuper    CatchUpKind = "super"
)

// PhaseOutBand is an income range over which an allowance is reduced linearly to zero
type PhaseOutBand struct {
	Start decimal.Decimal `yaml:"start" json:"start"`
	End   decimal.Decimal `yaml:"end" json:"end"`
}

// Width returns End - Start
func (b PhaseOutBand) Width() decimal.Decimal {
	return b.End.Sub(b.Start)
}

// TaxYearLimits contains the IRS contribution limits for a single tax year
type TaxYearLimits struct {
	Year                     int             `yaml:"year" json:"year"`
	Plan401k                 Plan401kLimits  `yaml:"plan_401k" json:"plan401k"`
	IRA                      IRALimits       `yaml:"ira" json:"ira"`
	HSA                      HSALimits       `yaml:"hsa" json:"hsa"`
	RothCatchUpFICAThreshold decimal.Decimal `yaml:"roth_catch_up_fica_threshold" json:"rothCatchUpFicaThreshold"`

	// Reference data, reported but not evaluated
	TraditionalIRAPhaseOut map[string]PhaseOutBand `yaml:"traditional_ira_phase_out" json:"traditionalIraPhaseOut"`
	HDHP                   HDHPLimits              `yaml:"hdhp" json:"hdhp"`
}

// Plan401kLimits contains elective deferral and 415(c) limits
type Plan401kLimits struct {
	BaseDeferral                 decimal.Decimal `yaml:"base_deferral" json:"baseDeferral"`
	StandardCatchUp              decimal.Decimal `yaml:"standard_catch_up" json:"standardCatchUp"`
	SuperCatchUp                 decimal.Decimal `yaml:"super_catch_up" json:"superCatchUp"`
	Total415c                    decimal.Decimal `yaml:"total_415c" json:"total415c"`
	Total415cWithStandardCatchUp decimal.Decimal `yaml:"total_415c_with_standard_catch_up" json:"total415cWithStandardCatchUp"`
	Total415cWithSuperCatchUp    decimal.Decimal `yaml:"total_415c_with_super_catch_up" json:"total415cWithSuperCatchUp"`
}

// IRALimits contains IRA limits and Roth phase-out bands
type IRALimits struct {
	Base         decimal.Decimal               `yaml:"base" json:"base"`
	CatchUp      decimal.Decimal               `yaml:"catch_up" json:"catchUp"`
	RothPhaseOut map[FilingStatus]PhaseOutBand `yaml:"roth_phase_out" json:"rothPhaseOut"`
}

// HSALimits contains HSA contribution limits
type HSALimits struct {
	Self    decimal.Decimal `yaml:"self" json:"self"`
	Family  decimal.Decimal `yaml:"family" json:"family"`
	CatchUp decimal.Decimal `yaml:"catch_up" json:"catchUp"`
}

// HDHPLimits contains the high deductible health plan thresholds
type HDHPLimits struct {
	MinDeductibleSelf    decimal.Decimal `yaml:"min_deductible_self" json:"minDeductibleSelf"`
	MinDeductibleFamily  decimal.Decimal `yaml:"min_deductible_family" json:"minDeductibleFamily"`
	MaxOutOfPocketSelf   decimal.Decimal `yaml:"max_out_of_pocket_self" json:"maxOutOfPocketSelf"`
	MaxOutOfPocketFamily decimal.Decimal `yaml:"max_out_of_pocket_family" json:"maxOutOfPocketFamily"`
}

// RothPhaseOutFor returns the phase-out band for a filing status.
// Unknown statuses use the single band.
func (l TaxYearLimits) RothPhaseOutFor(status FilingStatus) PhaseOutBand {
	if band, ok := l.IRA.RothPhaseOut[status]; ok {
		return band
	}
	return l.IRA.RothPhaseOut[FilingSingle]
}

// Validate checks that every amount is non-negative and every band is well formed
func (l TaxYearLimits) Validate() error {
	amounts := map[string]decimal.Decimal{
		"plan_401k.base_deferral":                     l.Plan401k.BaseDeferral,
		"plan_401k.standard_catch_up":                 l.Plan401k.StandardCatchUp,
		"plan_401k.super_catch_up":                    l.Plan401k.SuperCatchUp,
		"plan_401k.total_415c":                        l.Plan401k.Total415c,
		"plan_401k.total_415c_with_standard_catch_up": l.Plan401k.Total415cWithStandardCatchUp,
		"plan_401k.total_415c_with_super_catch_up":    l.Plan401k.Total415cWithSuperCatchUp,
		"ira.base":                                    l.IRA.Base,
		"ira.catch_up":                                l.IRA.CatchUp,
		"hsa.self":                                    l.HSA.Self,
		"hsa.family":                                  l.HSA.Family,
		"hsa.catch_up":                                l.HSA.CatchUp,
		"roth_catch_up_fica_threshold":                l.RothCatchUpFICAThreshold,
	}
	keys := make([]string, 0, len(amounts))
	for k := range amounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if amounts[k].IsNegative() {
			return fmt.Errorf("%s must be non-negative, got %s", k, amounts[k].String())
		}
	}

	if _, ok := l.IRA.RothPhaseOut[FilingSingle]; !ok {
		return fmt.Errorf("ira.roth_phase_out is missing the %q band", FilingSingle)
	}
	for _, status := range FilingStatuses {
		band, ok := l.IRA.RothPhaseOut[status]
		if !ok {
			continue
		}
		if err := validateBand(band); err != nil {
			return fmt.Errorf("ira.roth_phase_out.%s: %w", status, err)
		}
	}
	for name, band := range l.TraditionalIRAPhaseOut {
		if err := validateBand(band); err != nil {
			return fmt.Errorf("traditional_ira_phase_out.%s: %w", name, err)
		}
	}
	return nil
}

func validateBand(b PhaseOutBand) error {
	if b.Start.IsNegative() {
		return fmt.Errorf("start must be non-negative, got %s", b.Start.String())
	}
	if !b.End.GreaterThan(b.Start) {
		return fmt.Errorf("end (%s) must be greater than start (%s)", b.End.String(), b.Start.String())
	}
	return nil
}
