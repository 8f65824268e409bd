package calculation

import (
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// EvaluateYear computes every contribution limit and amount for one year.
// It is a pure function of its inputs.
func EvaluateYear(l domain.TaxYearLimits, p domain.PersonProfile, plan domain.PlanFeatures) domain.ContributionResult {
	k401 := Calculate401kLimits(l, p.Age)
	k401.YourMaxDeferral = decimal.Min(k401.MaxDeferral, p.Salary)
	k401.EmployerMatch = CalculateEmployerMatch(p.Salary, plan.MatchRate, plan.MatchCapPercent, plan.MatchDollarCap)

	mega := CalculateMegaBackdoorRoom(k401.Total415c, p.Salary, k401.YourMaxDeferral, k401.EmployerMatch, plan)
	k401.TotalSavings = k401.YourMaxDeferral.Add(k401.EmployerMatch).Add(mega.Room)

	ira := CalculateRothIRALimit(l, p.Age, p.MAGI, p.FilingStatus)
	ira.EffectiveContribution = EffectiveIRAContribution(ira, plan.BackdoorRothContribution)

	hsa := CalculateHSALimit(l, p.Age, plan.HSACoverage, plan.HSATotalContribution)

	totals := CalculateTotals(domain.ContributionBreakdown{
		Deferral401k: k401.YourMaxDeferral,
		MegaBackdoor: mega.Room,
		IRA:          ira.EffectiveContribution,
		HSA:          hsa.TotalContribution,
	}, k401.EmployerMatch)

	return domain.ContributionResult{
		Year:         l.Year,
		Age:          p.Age,
		Salary:       p.Salary,
		Plan401k:     k401,
		MegaBackdoor: mega,
		IRA:          ira,
		HSA:          hsa,
		RothCatchUp:  CalculateRothCatchUpRequirement(l, p.Age, p.PriorYearFICAWages),
		Totals:       totals,
		Paycheck:     PerPaycheck(totals.YourContributions),
	}
}
