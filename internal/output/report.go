package output

import (
	"context"
	"errors"

	"github.com/rgehrsitz/contribcalc/internal/calculation"
	"github.com/rgehrsitz/contribcalc/internal/domain"
)

// Report bundles everything a formatter can render for one calculation request
type Report struct {
	TaxYear    int                       `json:"taxYear"`
	Profile    domain.PersonProfile      `json:"profile"`
	Plan       domain.PlanFeatures       `json:"plan"`
	Params     domain.ProjectionParams   `json:"params"`
	ThisYear   domain.ContributionResult `json:"thisYear"`
	Projection *domain.ProjectionSeries  `json:"projection,omitempty"`
	Headline   *Headline                 `json:"headline,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

// NewReport assembles a report. A projection error is recorded in Error
// and leaves Projection and Headline empty.
func NewReport(profile domain.PersonProfile, plan domain.PlanFeatures, params domain.ProjectionParams,
	thisYear domain.ContributionResult, series *domain.ProjectionSeries, projErr error) *Report {
	r := &Report{
		TaxYear:  thisYear.Year,
		Profile:  profile,
		Plan:     plan,
		Params:   params,
		ThisYear: thisYear,
	}
	if projErr != nil {
		r.Error = projErr.Error()
		return r
	}
	if series != nil {
		h := FormatHeadline(series)
		r.Projection = series
		r.Headline = &h
	}
	return r
}

// HasProjection reports whether the projection ran
func (r *Report) HasProjection() bool {
	return r != nil && r.Projection != nil
}

// BuildReport evaluates this year and runs the projection. A rejected projection
// is recorded in the report; any other failure, such as cancellation, is returned.
func BuildReport(ctx context.Context, engine *calculation.CalculationEngine,
	profile domain.PersonProfile, plan domain.PlanFeatures, params domain.ProjectionParams) (*Report, error) {
	thisYear := engine.EvaluateYear(profile, plan)
	series, err := engine.ProjectRetirement(ctx, profile, plan, params)
	if err != nil {
		var perr *domain.ProjectionError
		if !errors.As(err, &perr) {
			return nil, err
		}
	}
	return NewReport(profile, plan, params, thisYear, series, err), nil
}
