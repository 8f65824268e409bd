package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/limits"
)

// CalculationEngine evaluates contribution rules and projections against one limit table
type CalculationEngine struct {
	Limits domain.TaxYearLimits
	Logger Logger
}

// NewCalculationEngine creates an engine using the compiled-in limit table
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Limits: limits.Current(),
		Logger: NopLogger{},
	}
}

// NewCalculationEngineWithLimits creates an engine for a custom limit table
func NewCalculationEngineWithLimits(l domain.TaxYearLimits) (*CalculationEngine, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limit table for %d: %w", l.Year, err)
	}
	return &CalculationEngine{Limits: l, Logger: NopLogger{}}, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// EvaluateYear computes this year's limits and contributions
func (ce *CalculationEngine) EvaluateYear(p domain.PersonProfile, plan domain.PlanFeatures) domain.ContributionResult {
	res := EvaluateYear(ce.Limits, p, plan)
	ce.Logger.Infof("evaluated %d limits for age %d: your contributions %s, employer match %s",
		res.Year, res.Age, res.Totals.YourContributions.StringFixed(2), res.Totals.EmployerMatch.StringFixed(2))
	if res.IRA.SuggestBackdoor {
		ce.Logger.Debugf("MAGI %s is above the %s Roth phase-out end %s",
			p.MAGI.String(), p.FilingStatus, res.IRA.PhaseOutEnd.String())
	}
	return res
}

// ProjectRetirement runs the three-scenario projection
func (ce *CalculationEngine) ProjectRetirement(ctx context.Context, p domain.PersonProfile, plan domain.PlanFeatures, params domain.ProjectionParams) (*domain.ProjectionSeries, error) {
	series, err := projectRetirement(ctx, ce.Limits, p, plan, params, ce.Logger)
	if err != nil {
		var perr *domain.ProjectionError
		if errors.As(err, &perr) {
			ce.Logger.Warnf("projection rejected: current age %d, retirement age %d", perr.CurrentAge, perr.RetirementAge)
		}
		return nil, err
	}
	ce.Logger.Infof("projected %d years to %d: %s to %s nominal",
		series.YearsToRetirement, series.RetirementYear,
		series.Headline.LowNominal.String(), series.Headline.HighNominal.String())
	return series, nil
}
