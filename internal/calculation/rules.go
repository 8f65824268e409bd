package calculation

import (
	"fmt"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/limits"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
	"github.com/shopspring/decimal"
)

// CatchUpKindForAge returns the 401(k) catch-up tier for an age.
// 60-63 get the super catch-up, 50-59 and 64+ the standard one.
func CatchUpKindForAge(age int) domain.CatchUpKind {
	switch {
	case age < domain.CatchUpAge:
		return domain.CatchUpNone
	case age >= domain.SuperCatchUpMinAge && age <= domain.SuperCatchUpMaxAge:
		return domain.CatchUpSuper
	default:
		return domain.CatchUpStandard
	}
}

// Calculate401kLimits returns the elective deferral and 415(c) limits for an age.
// Only the limit fields of the result are populated.
func Calculate401kLimits(l domain.TaxYearLimits, age int) domain.Plan401kResult {
	res := domain.Plan401kResult{
		BaseDeferral: l.Plan401k.BaseDeferral,
		CatchUp:      decimal.Zero,
		CatchUpKind:  CatchUpKindForAge(age),
		Total415c:    l.Plan401k.Total415c,
	}
	switch res.CatchUpKind {
	case domain.CatchUpSuper:
		res.CatchUp = l.Plan401k.SuperCatchUp
		res.Total415c = l.Plan401k.Total415cWithSuperCatchUp
	case domain.CatchUpStandard:
		res.CatchUp = l.Plan401k.StandardCatchUp
		res.Total415c = l.Plan401k.Total415cWithStandardCatchUp
	}
	res.MaxDeferral = res.BaseDeferral.Add(res.CatchUp)
	return res
}

// CalculateEmployerMatch returns salary x capPercent x rate, limited by dollarCap when it is positive
func CalculateEmployerMatch(salary, rate, capPercent, dollarCap decimal.Decimal) decimal.Decimal {
	match := salary.Mul(capPercent).Mul(rate)
	if dollarCap.IsPositive() {
		match = decimal.Min(match, dollarCap)
	}
	return match
}

// CalculateMegaBackdoorRoom returns the after-tax room left under the 415(c) limit.
// Room is zero unless the plan allows both after-tax contributions and in-plan conversion.
func CalculateMegaBackdoorRoom(total415c, salary, deferral, match decimal.Decimal, plan domain.PlanFeatures) domain.MegaBackdoorResult {
	// Annual additions can never exceed compensation
	ceiling := decimal.Min(total415c, salary)
	res := domain.MegaBackdoorResult{
		Room:             decimal.Zero,
		Available:        plan.AllowsMegaBackdoor(),
		AllowsAfterTax:   plan.AllowsAfterTax,
		AllowsConversion: plan.AllowsConversion,
		Limit415c:        ceiling,
	}
	if !res.Available {
		return res
	}
	res.Room = decimal.Max(decimal.Zero, ceiling.Sub(deferral).Sub(match))
	return res
}

var ten = decimal.NewFromInt(10)

// CalculateRothIRALimit applies the MAGI phase-out for the filing status.
// Inside the band the limit is reduced linearly and rounded to the nearest $10.
func CalculateRothIRALimit(l domain.TaxYearLimits, age int, magi decimal.Decimal, status domain.FilingStatus) domain.IRAResult {
	band := l.RothPhaseOutFor(status)
	res := domain.IRAResult{
		BaseLimit:     l.IRA.Base,
		CatchUp:       decimal.Zero,
		PhaseOutStart: band.Start,
		PhaseOutEnd:   band.End,
	}
	if age >= domain.CatchUpAge {
		res.CatchUp = l.IRA.CatchUp
	}
	res.MaxLimit = res.BaseLimit.Add(res.CatchUp)

	switch {
	case magi.LessThan(band.Start):
		res.AllowedContribution = res.MaxLimit
		res.Eligible = true
	case magi.GreaterThanOrEqual(band.End):
		res.AllowedContribution = decimal.Zero
		res.SuggestBackdoor = true
	default:
		fraction := magi.Sub(band.Start).Div(band.Width())
		reduced := res.MaxLimit.Mul(decimal.NewFromInt(1).Sub(fraction))
		res.AllowedContribution = decimal.Max(decimal.Zero, reduced.Div(ten).Round(0).Mul(ten))
		res.Eligible = true
	}
	res.EffectiveContribution = res.AllowedContribution
	return res
}

// EffectiveIRAContribution returns the amount that actually goes into the IRA:
// the chosen backdoor amount clamped to the max limit when direct contributions are phased out.
func EffectiveIRAContribution(ira domain.IRAResult, backdoor decimal.Decimal) decimal.Decimal {
	if ira.SuggestBackdoor {
		return decimal.Min(backdoor, ira.MaxLimit)
	}
	return ira.AllowedContribution
}

// CalculateHSALimit returns the HSA limit for the coverage tier and clamps the requested contribution.
// Any coverage other than none or self is treated as family.
func CalculateHSALimit(l domain.TaxYearLimits, age int, coverage domain.HSACoverage, total decimal.Decimal) domain.HSAResult {
	if coverage == domain.HSACoverageNone || coverage == "" {
		return domain.HSAResult{
			BaseLimit:         decimal.Zero,
			CatchUp:           decimal.Zero,
			MaxLimit:          decimal.Zero,
			TotalContribution: decimal.Zero,
		}
	}

	res := domain.HSAResult{BaseLimit: l.HSA.Family, CatchUp: decimal.Zero, Eligible: true}
	if coverage == domain.HSACoverageSelf {
		res.BaseLimit = l.HSA.Self
	}
	if age >= domain.HSACatchUpAge {
		res.CatchUp = l.HSA.CatchUp
	}
	res.MaxLimit = res.BaseLimit.Add(res.CatchUp)
	res.TotalContribution = decimal.Min(total, res.MaxLimit)
	return res
}

// CalculateRothCatchUpRequirement applies the SECURE 2.0 rule: catch-up contributions
// must be Roth when prior-year FICA wages exceed the threshold.
func CalculateRothCatchUpRequirement(l domain.TaxYearLimits, age int, ficaWages decimal.Decimal) domain.RothCatchUpRule {
	if age < domain.CatchUpAge {
		return domain.RothCatchUpRule{
			Applies: false,
			Reason:  fmt.Sprintf("Under age %d, no catch-up contributions", domain.CatchUpAge),
		}
	}

	mustBeRoth := ficaWages.GreaterThan(l.RothCatchUpFICAThreshold)
	rule := domain.RothCatchUpRule{Applies: true, MustBeRoth: &mustBeRoth}
	if mustBeRoth {
		rule.Reason = fmt.Sprintf("Prior-year FICA wages (%s) exceed %s. Catch-up contributions must be Roth.",
			currency.Whole(ficaWages), currency.Whole(l.RothCatchUpFICAThreshold))
	} else {
		rule.Reason = "You can make catch-up contributions as pre-tax or Roth."
	}
	return rule
}

// CalculateTotals sums the employee contributions and adds the employer match
func CalculateTotals(breakdown domain.ContributionBreakdown, match decimal.Decimal) domain.ContributionTotals {
	yours := breakdown.Deferral401k.Add(breakdown.MegaBackdoor).Add(breakdown.IRA).Add(breakdown.HSA)
	return domain.ContributionTotals{
		YourContributions: yours,
		EmployerMatch:     match,
		TotalWithMatch:    yours.Add(match),
		Breakdown:         breakdown,
	}
}

// PerPaycheck spreads an annual amount over biweekly, semimonthly and monthly periods, rounded to cents
func PerPaycheck(annual decimal.Decimal) domain.PaycheckBreakdown {
	per := func(n int64) decimal.Decimal {
		return annual.Div(decimal.NewFromInt(n)).Round(2)
	}
	return domain.PaycheckBreakdown{
		Biweekly:    per(limits.PayPeriodsBiweekly),
		Semimonthly: per(limits.PayPeriodsSemimonthly),
		Monthly:     per(limits.MonthsPerYear),
	}
}
