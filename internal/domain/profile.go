package domain

import (
	"github.com/shopspring/decimal"
)

// PersonProfile is the point-in-time description of the saver
type PersonProfile struct {
	Age                int             `yaml:"age" json:"age"`
	Salary             decimal.Decimal `yaml:"salary" json:"salary"`
	MAGI               decimal.Decimal `yaml:"magi" json:"magi"`
	FilingStatus       FilingStatus    `yaml:"filing_status" json:"filingStatus"`
	PriorYearFICAWages decimal.Decimal `yaml:"prior_year_fica_wages" json:"priorYearFicaWages"`
}

// Advance returns the profile one year later: age+1 and salary grown by raise.
// MAGI and FICA wages are carried unchanged.
func (p PersonProfile) Advance(raise decimal.Decimal) PersonProfile {
	next := p
	next.Age = p.Age + 1
	next.Salary = p.Salary.Mul(decimal.NewFromInt(1).Add(raise))
	return next
}

// PlanFeatures describes the employer plan and the saver's elections
type PlanFeatures struct {
	MatchRate                decimal.Decimal `yaml:"match_rate" json:"matchRate"`
	MatchCapPercent          decimal.Decimal `yaml:"match_cap_percent" json:"matchCapPercent"`
	MatchDollarCap           decimal.Decimal `yaml:"match_dollar_cap" json:"matchDollarCap"` // zero means uncapped
	AllowsAfterTax           bool            `yaml:"allows_after_tax" json:"allowsAfterTax"`
	AllowsConversion         bool            `yaml:"allows_conversion" json:"allowsConversion"`
	HSACoverage              HSACoverage     `yaml:"hsa_coverage" json:"hsaCoverage"`
	HSATotalContribution     decimal.Decimal `yaml:"hsa_total_contribution" json:"hsaTotalContribution"`
	BackdoorRothContribution decimal.Decimal `yaml:"backdoor_roth_contribution" json:"backdoorRothContribution"`
}

// HasMatchDollarCap reports whether the match is limited to a fixed dollar amount
func (p PlanFeatures) HasMatchDollarCap() bool {
	return p.MatchDollarCap.IsPositive()
}

// AllowsMegaBackdoor reports whether both after-tax contributions and in-plan conversion are available
func (p PlanFeatures) AllowsMegaBackdoor() bool {
	return p.AllowsAfterTax && p.AllowsConversion
}
