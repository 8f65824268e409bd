package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func band(start, end int64) PhaseOutBand {
	return PhaseOutBand{Start: decimal.NewFromInt(start), End: decimal.NewFromInt(end)}
}

func validLimits() TaxYearLimits {
	d := decimal.NewFromInt
	return TaxYearLimits{
		Year: 2026,
		Plan401k: Plan401kLimits{
			BaseDeferral:                 d(24500),
			StandardCatchUp:              d(8000),
			SuperCatchUp:                 d(11250),
			Total415c:                    d(72000),
			Total415cWithStandardCatchUp: d(80000),
			Total415cWithSuperCatchUp:    d(83250),
		},
		IRA: IRALimits{
			Base:    d(7500),
			CatchUp: d(1100),
			RothPhaseOut: map[FilingStatus]PhaseOutBand{
				FilingSingle:       band(153000, 168000),
				FilingMarriedJoint: band(242000, 252000),
			},
		},
		HSA:                      HSALimits{Self: d(4400), Family: d(8750), CatchUp: d(1000)},
		RothCatchUpFICAThreshold: d(150000),
	}
}

func TestTaxYearLimits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *TaxYearLimits)
		wantErr string
	}{
		{"valid", func(l *TaxYearLimits) {}, ""},
		{
			"negative amount",
			func(l *TaxYearLimits) { l.HSA.Family = decimal.NewFromInt(-1) },
			"hsa.family must be non-negative",
		},
		{
			"missing single band",
			func(l *TaxYearLimits) { delete(l.IRA.RothPhaseOut, FilingSingle) },
			`missing the "single" band`,
		},
		{
			"inverted band",
			func(l *TaxYearLimits) { l.IRA.RothPhaseOut[FilingMarriedJoint] = band(252000, 242000) },
			"ira.roth_phase_out.mfj: end (242000) must be greater than start (252000)",
		},
		{
			"negative band start",
			func(l *TaxYearLimits) { l.IRA.RothPhaseOut[FilingSingle] = band(-5, 10) },
			"start must be non-negative",
		},
		{
			"bad reference band",
			func(l *TaxYearLimits) {
				l.TraditionalIRAPhaseOut = map[string]PhaseOutBand{"single": band(91000, 81000)}
			},
			"traditional_ira_phase_out.single",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLimits()
			tt.mutate(&l)

			err := l.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTaxYearLimits_RothPhaseOutFor(t *testing.T) {
	l := validLimits()

	assert.Equal(t, band(242000, 252000), l.RothPhaseOutFor(FilingMarriedJoint))
	assert.Equal(t, band(153000, 168000), l.RothPhaseOutFor(FilingHeadOfHousehold), "Missing status uses the single band")
	assert.Equal(t, band(153000, 168000), l.RothPhaseOutFor(FilingStatus("widowed")))
}

func TestPhaseOutBand_Width(t *testing.T) {
	assert.True(t, band(242000, 252000).Width().Equal(decimal.NewFromInt(10000)))
}

func TestFilingStatus(t *testing.T) {
	for _, s := range FilingStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, FilingStatus("widowed").Valid())
	assert.Equal(t, "Married filing jointly", FilingMarriedJoint.Label())
	assert.Equal(t, "Head of household", FilingHeadOfHousehold.Label())
	assert.Equal(t, "Single", FilingStatus("").Label())
}

func TestPersonProfile_Advance(t *testing.T) {
	p := PersonProfile{
		Age:                40,
		Salary:             decimal.NewFromInt(100000),
		MAGI:               decimal.NewFromInt(90000),
		FilingStatus:       FilingMarriedJoint,
		PriorYearFICAWages: decimal.NewFromInt(95000),
	}

	next := p.Advance(decimal.RequireFromString("0.03"))

	assert.Equal(t, 41, next.Age)
	assert.True(t, next.Salary.Equal(decimal.NewFromInt(103000)))
	assert.True(t, next.MAGI.Equal(p.MAGI), "MAGI is carried unchanged")
	assert.True(t, next.PriorYearFICAWages.Equal(p.PriorYearFICAWages))
	assert.Equal(t, 40, p.Age, "Original is not modified")
}

func TestPlanFeatures(t *testing.T) {
	plan := PlanFeatures{AllowsAfterTax: true}
	assert.False(t, plan.AllowsMegaBackdoor())
	assert.False(t, plan.HasMatchDollarCap())

	plan.AllowsConversion = true
	plan.MatchDollarCap = decimal.NewFromInt(5000)
	assert.True(t, plan.AllowsMegaBackdoor())
	assert.True(t, plan.HasMatchDollarCap())
}

func TestRothCatchUpRule_RequiresRoth(t *testing.T) {
	yes, no := true, false

	assert.False(t, RothCatchUpRule{}.RequiresRoth())
	assert.False(t, RothCatchUpRule{Applies: true, MustBeRoth: &no}.RequiresRoth())
	assert.True(t, RothCatchUpRule{Applies: true, MustBeRoth: &yes}.RequiresRoth())
}

func TestScenarioAndBucketNames(t *testing.T) {
	assert.Equal(t, "conservative", ScenarioConservative.String())
	assert.Equal(t, "aggressive", ScenarioAggressive.String())
	assert.Equal(t, "scenario(7)", Scenario(7).String())
	assert.Equal(t, "401k", Bucket401k.String())
	assert.Equal(t, "hsa", BucketHSA.String())
	assert.Equal(t, "bucket(9)", Bucket(9).String())

	data, err := json.Marshal(map[Scenario]int{ScenarioModerate: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"moderate": 1}`, string(data))
}

func TestBucketBalances_Total(t *testing.T) {
	b := BucketBalances{decimal.NewFromInt(100), decimal.NewFromInt(20), decimal.NewFromInt(3)}
	assert.True(t, b.Total().Equal(decimal.NewFromInt(123)))
}

func TestProjectionSeries_NilSafe(t *testing.T) {
	var p *ProjectionSeries
	assert.Nil(t, p.Series(ScenarioModerate))
	_, ok := p.Final(ScenarioModerate)
	assert.False(t, ok)

	p = &ProjectionSeries{Scenarios: map[Scenario][]YearSnapshot{
		ScenarioModerate: {{Year: 2026}, {Year: 2027}},
	}}
	last, ok := p.Final(ScenarioModerate)
	assert.True(t, ok)
	assert.Equal(t, 2027, last.Year)
}

func TestProjectionError(t *testing.T) {
	err := &ProjectionError{CurrentAge: 65, RetirementAge: 60, Message: "retirement age must be greater than current age"}
	assert.EqualError(t, err, "retirement age must be greater than current age")
}
