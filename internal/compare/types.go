package compare

import (
	"fmt"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/output"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one retirement age with its projection outcome
type ComparisonResult struct {
	Name              string                                     `json:"name"`
	RetirementAge     int                                        `json:"retirementAge"`
	YearsToRetirement int                                        `json:"yearsToRetirement"`
	RetirementYear    int                                        `json:"retirementYear"`
	FinalBalances     map[domain.Scenario]domain.ScenarioBalance `json:"finalBalances,omitempty"`
	Headline          output.Headline                            `json:"headline"`

	// Comparison to base, moderate scenario
	ModerateDiffFromBase     decimal.Decimal `json:"moderateDiffFromBase"`
	ModeratePctFromBase      decimal.Decimal `json:"moderatePctFromBase"`
	ModerateRealDiffFromBase decimal.Decimal `json:"moderateRealDiffFromBase"`

	// Set when the projection could not be run for this age
	Error string `json:"error,omitempty"`
}

// Valid reports whether the result carries a projection
func (r ComparisonResult) Valid() bool {
	return r.Error == ""
}

// Final returns the final balance of a scenario
func (r ComparisonResult) Final(s domain.Scenario) domain.ScenarioBalance {
	return r.FinalBalances[s]
}

// ComparisonSet is the base retirement age plus every alternative
type ComparisonSet struct {
	BaseName           string             `json:"baseName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	InputPath          string             `json:"inputPath,omitempty"`
}

// MetricsCalculator extracts comparison metrics from projections
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics summarizes a projection for one retirement age
func (mc *MetricsCalculator) CalculateMetrics(name string, retirementAge int, series *domain.ProjectionSeries) ComparisonResult {
	result := ComparisonResult{
		Name:          name,
		RetirementAge: retirementAge,
	}
	if series == nil {
		return result
	}
	result.YearsToRetirement = series.YearsToRetirement
	result.RetirementYear = series.RetirementYear
	result.FinalBalances = make(map[domain.Scenario]domain.ScenarioBalance, domain.NumScenarios)
	for s, b := range series.FinalBalances {
		result.FinalBalances[s] = b
	}
	result.Headline = output.FormatHeadline(series)
	return result
}

// FailedResult records an alternative whose projection was rejected
func (mc *MetricsCalculator) FailedResult(name string, retirementAge int, err error) ComparisonResult {
	return ComparisonResult{
		Name:          name,
		RetirementAge: retirementAge,
		Error:         err.Error(),
	}
}

// CalculateComparison fills in the moderate-scenario differences from base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	if !alt.Valid() || !base.Valid() {
		return alt
	}
	altFinal := alt.Final(domain.ScenarioModerate)
	baseFinal := base.Final(domain.ScenarioModerate)

	alt.ModerateDiffFromBase = altFinal.Nominal.Sub(baseFinal.Nominal)
	alt.ModerateRealDiffFromBase = altFinal.Real.Sub(baseFinal.Real)
	if !baseFinal.Nominal.IsZero() {
		alt.ModeratePctFromBase = alt.ModerateDiffFromBase.
			Div(baseFinal.Nominal).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return alt
}

// GenerateRecommendations highlights the alternatives with the largest moderate balances
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || !compSet.BaseResult.Valid() || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	var bestNominal, bestReal *ComparisonResult
	var failed []string
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.Valid() {
			failed = append(failed, alt.Name)
			continue
		}
		if alt.ModerateDiffFromBase.IsPositive() &&
			(bestNominal == nil || alt.ModerateDiffFromBase.GreaterThan(bestNominal.ModerateDiffFromBase)) {
			bestNominal = alt
		}
		if alt.ModerateRealDiffFromBase.IsPositive() &&
			(bestReal == nil || alt.ModerateRealDiffFromBase.GreaterThan(bestReal.ModerateRealDiffFromBase)) {
			bestReal = alt
		}
	}

	if bestNominal != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Largest balance: %s adds %s over %s in the moderate scenario",
				bestNominal.Name, currency.Whole(bestNominal.ModerateDiffFromBase), base.Name))
	}
	if bestReal != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Largest balance in today's dollars: %s adds %s",
				bestReal.Name, currency.Whole(bestReal.ModerateRealDiffFromBase)))
	}
	for _, name := range failed {
		recommendations = append(recommendations,
			fmt.Sprintf("%s could not be projected", name))
	}

	return recommendations
}
