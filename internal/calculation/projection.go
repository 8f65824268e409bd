package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/limits"
	"github.com/shopspring/decimal"
)

// ProjectRetirement projects balances year by year from params.CurrentAge to params.RetirementAge
// under the three fixed return scenarios. The starting age comes from params; p.Age is ignored.
func ProjectRetirement(l domain.TaxYearLimits, p domain.PersonProfile, plan domain.PlanFeatures, params domain.ProjectionParams) (*domain.ProjectionSeries, error) {
	return projectRetirement(context.Background(), l, p, plan, params, NopLogger{})
}

func projectRetirement(ctx context.Context, l domain.TaxYearLimits, p domain.PersonProfile, plan domain.PlanFeatures, params domain.ProjectionParams, logger Logger) (*domain.ProjectionSeries, error) {
	years := params.RetirementAge - params.CurrentAge
	if years <= 0 {
		return nil, &domain.ProjectionError{
			CurrentAge:    params.CurrentAge,
			RetirementAge: params.RetirementAge,
			Message:       "retirement age must be greater than current age",
		}
	}

	one := decimal.NewFromInt(1)
	rates := limits.ReturnRates()

	// balances[scenario][bucket], carried unrounded
	var balances [domain.NumScenarios]domain.BucketBalances
	for _, s := range domain.Scenarios {
		balances[s] = params.ExistingBalances
	}

	series := &domain.ProjectionSeries{
		YearsToRetirement: years,
		RetirementYear:    l.Year + years,
		ReturnRates:       make(map[domain.Scenario]decimal.Decimal, domain.NumScenarios),
		Scenarios:         make(map[domain.Scenario][]domain.YearSnapshot, domain.NumScenarios),
		FinalBalances:     make(map[domain.Scenario]domain.ScenarioBalance, domain.NumScenarios),
	}
	for _, s := range domain.Scenarios {
		series.ReturnRates[s] = rates[s]
		series.Scenarios[s] = make([]domain.YearSnapshot, 0, years+1)
	}

	person := p
	person.Age = params.CurrentAge
	inflationFactor := one

	for offset := 0; offset <= years; offset++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("projection cancelled at year %d: %w", l.Year+offset, err)
		}

		year := EvaluateYear(l, person, plan)
		var contrib domain.BucketBalances
		contrib[domain.Bucket401k] = year.Plan401k.TotalSavings
		contrib[domain.BucketIRA] = year.IRA.EffectiveContribution
		contrib[domain.BucketHSA] = year.HSA.TotalContribution
		annual := contrib.Total()

		if offset > 0 {
			inflationFactor = inflationFactor.Mul(one.Add(params.InflationRate))
		}

		for _, s := range domain.Scenarios {
			if offset > 0 {
				growth := one.Add(rates[s])
				for _, b := range domain.Buckets {
					balances[s][b] = balances[s][b].Add(contrib[b]).Mul(growth)
				}
			}
			nominal := balances[s].Total()
			series.Scenarios[s] = append(series.Scenarios[s], domain.YearSnapshot{
				Year:               l.Year + offset,
				Age:                person.Age,
				Nominal:            nominal.RoundBank(0),
				Real:               nominal.Div(inflationFactor).RoundBank(0),
				Balance401k:        balances[s][domain.Bucket401k].RoundBank(0),
				BalanceIRA:         balances[s][domain.BucketIRA].RoundBank(0),
				BalanceHSA:         balances[s][domain.BucketHSA].RoundBank(0),
				AnnualContribution: annual.RoundBank(0),
				Salary:             person.Salary.RoundBank(0),
			})
		}
		logger.Debugf("projected %d (age %d): contribution %s", l.Year+offset, person.Age, annual.StringFixed(2))

		person = person.Advance(params.AnnualRaisePct)
	}

	for _, s := range domain.Scenarios {
		final, _ := series.Final(s)
		series.FinalBalances[s] = domain.ScenarioBalance{Nominal: final.Nominal, Real: final.Real}
	}
	low := series.FinalBalances[domain.ScenarioConservative]
	high := series.FinalBalances[domain.ScenarioAggressive]
	series.Headline = domain.HeadlineRange{
		LowNominal:     low.Nominal,
		HighNominal:    high.Nominal,
		LowReal:        low.Real,
		HighReal:       high.Real,
		RetirementYear: series.RetirementYear,
	}
	return series, nil
}
