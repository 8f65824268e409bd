package domain

import (
	"github.com/shopspring/decimal"
)

// ContributionResult holds every limit and amount for a single evaluated year
type ContributionResult struct {
	Year         int                `json:"year"`
	Age          int                `json:"age"`
	Salary       decimal.Decimal    `json:"salary"`
	Plan401k     Plan401kResult     `json:"plan401k"`
	MegaBackdoor MegaBackdoorResult `json:"megaBackdoor"`
	IRA          IRAResult          `json:"ira"`
	HSA          HSAResult          `json:"hsa"`
	RothCatchUp  RothCatchUpRule    `json:"rothCatchUp"`
	Totals       ContributionTotals `json:"totals"`
	Paycheck     PaycheckBreakdown  `json:"paycheck"`
}

// Plan401kResult contains the 401(k) deferral limits and amounts
type Plan401kResult struct {
	BaseDeferral    decimal.Decimal `json:"baseDeferral"`
	CatchUp         decimal.Decimal `json:"catchUp"`
	CatchUpKind     CatchUpKind     `json:"catchUpKind,omitempty"`
	MaxDeferral     decimal.Decimal `json:"maxDeferral"`
	Total415c       decimal.Decimal `json:"total415c"`
	YourMaxDeferral decimal.Decimal `json:"yourMaxDeferral"`
	EmployerMatch   decimal.Decimal `json:"employerMatch"`
	TotalSavings    decimal.Decimal `json:"totalSavings"`
}

// MegaBackdoorResult contains the after-tax 401(k) room
type MegaBackdoorResult struct {
	Room             decimal.Decimal `json:"room"`
	Available        bool            `json:"available"`
	AllowsAfterTax   bool            `json:"allowsAfterTax"`
	AllowsConversion bool            `json:"allowsConversion"`
	Limit415c        decimal.Decimal `json:"limit415c"` // 415(c) limit capped at salary
}

// IRAResult contains the Roth IRA eligibility after the phase-out
type IRAResult struct {
	BaseLimit             decimal.Decimal `json:"baseLimit"`
	CatchUp               decimal.Decimal `json:"catchUp"`
	MaxLimit              decimal.Decimal `json:"maxLimit"`
	AllowedContribution   decimal.Decimal `json:"allowedContribution"`
	Eligible              bool            `json:"eligible"`
	SuggestBackdoor       bool            `json:"suggestBackdoor"`
	PhaseOutStart         decimal.Decimal `json:"phaseOutStart"`
	PhaseOutEnd           decimal.Decimal `json:"phaseOutEnd"`
	EffectiveContribution decimal.Decimal `json:"effectiveContribution"`
}

// HSAResult contains the HSA limit and the clamped contribution
type HSAResult struct {
	BaseLimit         decimal.Decimal `json:"baseLimit"`
	CatchUp           decimal.Decimal `json:"catchUp"`
	MaxLimit          decimal.Decimal `json:"maxLimit"`
	TotalContribution decimal.Decimal `json:"totalContribution"`
	Eligible          bool            `json:"eligible"`
}

// RothCatchUpRule reports whether 401(k) catch-up contributions must be Roth.
// MustBeRoth is nil when catch-up contributions do not apply.
type RothCatchUpRule struct {
	Applies    bool   `json:"applies"`
	MustBeRoth *bool  `json:"mustBeRoth,omitempty"`
	Reason     string `json:"reason"`
}

// RequiresRoth is a nil-safe accessor for MustBeRoth
func (r RothCatchUpRule) RequiresRoth() bool {
	return r.MustBeRoth != nil && *r.MustBeRoth
}

// ContributionTotals sums the annual contributions
type ContributionTotals struct {
	YourContributions decimal.Decimal       `json:"yourContributions"`
	EmployerMatch     decimal.Decimal       `json:"employerMatch"`
	TotalWithMatch    decimal.Decimal       `json:"totalWithMatch"`
	Breakdown         ContributionBreakdown `json:"breakdown"`
}

// ContributionBreakdown is the employee contribution per bucket
type ContributionBreakdown struct {
	Deferral401k decimal.Decimal `json:"deferral401k"`
	MegaBackdoor decimal.Decimal `json:"megaBackdoor"`
	IRA          decimal.Decimal `json:"ira"`
	HSA          decimal.Decimal `json:"hsa"`
}

// PaycheckBreakdown spreads the employee contributions over pay periods
type PaycheckBreakdown struct {
	Biweekly    decimal.Decimal `json:"biweekly"`
	Semimonthly decimal.Decimal `json:"semimonthly"`
	Monthly     decimal.Decimal `json:"monthly"`
}
