// Package limits holds the compiled-in IRS contribution limits and projection constants.
package limits

import (
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxYear is the only tax year the calculator supports
const TaxYear = 2026

// Pay periods per year
const (
	PayPeriodsBiweekly    = 26
	PayPeriodsSemimonthly = 24
	MonthsPerYear         = 12
)

var (
	// DefaultAnnualRaise is the salary growth used when none is given
	DefaultAnnualRaise = decimal.NewFromFloat(0.03)
	// DefaultInflationRate is used to discount projected balances to today's dollars
	DefaultInflationRate = decimal.NewFromFloat(0.025)
)

var returnRates = [domain.NumScenarios]decimal.Decimal{
	domain.ScenarioConservative: decimal.NewFromFloat(0.05),
	domain.ScenarioModerate:     decimal.NewFromFloat(0.07),
	domain.ScenarioAggressive:   decimal.NewFromFloat(0.10),
}

// ReturnRate returns the fixed annual return for a scenario
func ReturnRate(s domain.Scenario) decimal.Decimal {
	return returnRates[s]
}

// ReturnRates returns all scenario rates indexed by scenario
func ReturnRates() [domain.NumScenarios]decimal.Decimal {
	return returnRates
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func band(start, end int64) domain.PhaseOutBand {
	return domain.PhaseOutBand{Start: d(start), End: d(end)}
}

// Current returns the 2026 limit table. Each call returns a fresh copy.
func Current() domain.TaxYearLimits {
	return domain.TaxYearLimits{
		Year: TaxYear,
		Plan401k: domain.Plan401kLimits{
			BaseDeferral:                 d(24500),
			StandardCatchUp:              d(8000),
			SuperCatchUp:                 d(11250),
			Total415c:                    d(72000),
			Total415cWithStandardCatchUp: d(80000),
			Total415cWithSuperCatchUp:    d(83250),
		},
		IRA: domain.IRALimits{
			Base:    d(7500),
			CatchUp: d(1100),
			RothPhaseOut: map[domain.FilingStatus]domain.PhaseOutBand{
				domain.FilingSingle:          band(153000, 168000),
				domain.FilingMarriedJoint:    band(242000, 252000),
				domain.FilingMarriedSeparate: band(0, 10000),
				domain.FilingHeadOfHousehold: band(153000, 168000),
			},
		},
		HSA: domain.HSALimits{
			Self:    d(4400),
			Family:  d(8750),
			CatchUp: d(1000),
		},
		RothCatchUpFICAThreshold: d(150000),
		TraditionalIRAPhaseOut: map[string]domain.PhaseOutBand{
			"single":              band(81000, 91000),
			"mfj_has_plan":        band(129000, 149000),
			"mfj_spouse_has_plan": band(242000, 252000),
		},
		HDHP: domain.HDHPLimits{
			MinDeductibleSelf:    d(1700),
			MinDeductibleFamily:  d(3400),
			MaxOutOfPocketSelf:   d(8500),
			MaxOutOfPocketFamily: d(17000),
		},
	}
}
