package config

import (
	"testing"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_AllMissing(t *testing.T) {
	req := Inputs{}.Normalize()

	assert.Equal(t, 35, req.Profile.Age, "Age should default to 35")
	assert.True(t, req.Profile.Salary.Equal(decimal.NewFromInt(150000)), "Salary should default to 150,000")
	assert.True(t, req.Profile.MAGI.Equal(req.Profile.Salary), "MAGI should follow salary")
	assert.Equal(t, domain.FilingSingle, req.Profile.FilingStatus)
	assert.True(t, req.Profile.PriorYearFICAWages.IsZero())

	assert.Equal(t, "1", req.Plan.MatchRate.String(), "Match should default to 100%")
	assert.Equal(t, "0.06", req.Plan.MatchCapPercent.String(), "Match cap should default to 6%")
	assert.False(t, req.Plan.HasMatchDollarCap(), "No dollar cap by default")
	assert.False(t, req.Plan.AllowsAfterTax)
	assert.False(t, req.Plan.AllowsConversion)
	assert.Equal(t, domain.HSACoverageNone, req.Plan.HSACoverage)
	assert.True(t, req.Plan.HSATotalContribution.IsZero())
	assert.True(t, req.Plan.BackdoorRothContribution.IsZero())

	assert.Equal(t, 35, req.Params.CurrentAge)
	assert.Equal(t, 65, req.Params.RetirementAge)
	assert.Equal(t, "0.03", req.Params.AnnualRaisePct.String())
	assert.Equal(t, "0.025", req.Params.InflationRate.String())
	assert.True(t, req.Params.ExistingBalances.Total().IsZero())
}

func TestNormalize_ProvidedValues(t *testing.T) {
	in := Inputs{
		Age:              52,
		RetirementAge:    62,
		Salary:           210000,
		MAGI:             180000,
		FilingStatus:     "mfj",
		FICAWages:        205000,
		RaisePct:         4,
		InflationPct:     3,
		MatchPct:         50,
		MatchCap:         8,
		MatchDollarCap:   6000,
		AllowsAfterTax:   "yes",
		AllowsConversion: "yes",
		HSACoverage:      "family",
		TotalHSA:         8750,
		BackdoorRoth:     7500,
		Balance401k:      400000,
		BalanceIRA:       90000,
		BalanceHSA:       15000,
	}

	req := in.Normalize()

	assert.Equal(t, 52, req.Profile.Age)
	assert.True(t, req.Profile.MAGI.Equal(decimal.NewFromInt(180000)), "Explicit MAGI should win")
	assert.Equal(t, domain.FilingMarriedJoint, req.Profile.FilingStatus)
	assert.True(t, req.Profile.PriorYearFICAWages.Equal(decimal.NewFromInt(205000)))
	assert.Equal(t, "0.5", req.Plan.MatchRate.String())
	assert.Equal(t, "0.08", req.Plan.MatchCapPercent.String())
	assert.True(t, req.Plan.MatchDollarCap.Equal(decimal.NewFromInt(6000)))
	assert.True(t, req.Plan.AllowsMegaBackdoor())
	assert.Equal(t, domain.HSACoverageFamily, req.Plan.HSACoverage)
	assert.Equal(t, 62, req.Params.RetirementAge)
	assert.Equal(t, "0.04", req.Params.AnnualRaisePct.String())
	assert.Equal(t, "0.03", req.Params.InflationRate.String())
	assert.True(t, req.Params.ExistingBalances[domain.Bucket401k].Equal(decimal.NewFromInt(400000)))
	assert.True(t, req.Params.ExistingBalances[domain.BucketHSA].Equal(decimal.NewFromInt(15000)))
}

func TestNormalize_ZeroMeansMissing(t *testing.T) {
	req := Inputs{MatchPct: 0, MatchCap: 0, RaisePct: 0}.Normalize()

	assert.Equal(t, "1", req.Plan.MatchRate.String(), "A zero match percentage takes the default")
	assert.Equal(t, "0.03", req.Params.AnnualRaisePct.String())
}

func TestNormalize_OnlyYesEnablesPlanFeatures(t *testing.T) {
	for _, v := range []string{"", "no", "Yes", "true", "1"} {
		req := Inputs{AllowsAfterTax: v, AllowsConversion: v}.Normalize()
		assert.False(t, req.Plan.AllowsAfterTax, "%q should not enable after-tax", v)
		assert.False(t, req.Plan.AllowsConversion, "%q should not enable conversion", v)
	}
}

func TestMerge(t *testing.T) {
	base := Inputs{Age: 40, Salary: 100000, FilingStatus: "hoh", HSACoverage: "self"}
	override := Inputs{Salary: 120000, HSACoverage: "family", BalanceIRA: 5000}

	merged := base.Merge(override)

	assert.Equal(t, 40, merged.Age, "Unset override keeps base")
	assert.Equal(t, 120000.0, merged.Salary)
	assert.Equal(t, "hoh", merged.FilingStatus)
	assert.Equal(t, "family", merged.HSACoverage)
	assert.Equal(t, 5000.0, merged.BalanceIRA)
}

func TestDefaultInputs_NormalizeMatchesEmpty(t *testing.T) {
	assert.Equal(t, Inputs{}.Normalize(), DefaultInputs().Normalize(), "Pre-filled defaults should normalize like missing values")
}
