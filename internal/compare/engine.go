package compare

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/contribcalc/internal/calculation"
	"github.com/rgehrsitz/contribcalc/internal/config"
	"github.com/rgehrsitz/contribcalc/internal/domain"
)

// CompareEngine orchestrates retirement age comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	RetirementAges []int  // Alternative retirement ages
	InputPath      string // Source of the base request, for display
}

// ScenarioName labels a retirement age
func ScenarioName(retirementAge int) string {
	return fmt.Sprintf("retire at %d", retirementAge)
}

// Compare projects the base request and one alternative per retirement age.
// A rejected base is an error; rejected alternatives are reported in the set.
func (ce *CompareEngine) Compare(ctx context.Context, req config.Request, options CompareOptions) (*ComparisonSet, error) {
	baseName := ScenarioName(req.Params.RetirementAge)
	baseSeries, err := ce.CalcEngine.ProjectRetirement(ctx, req.Profile, req.Plan, req.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to project base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, req.Params.RetirementAge, baseSeries)

	alternatives := []ComparisonResult{}
	for _, age := range options.RetirementAges {
		if age == req.Params.RetirementAge {
			continue
		}
		name := ScenarioName(age)

		params := req.Params
		params.RetirementAge = age
		altSeries, err := ce.CalcEngine.ProjectRetirement(ctx, req.Profile, req.Plan, params)
		if err != nil {
			var perr *domain.ProjectionError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("failed to project %s: %w", name, err)
			}
			alternatives = append(alternatives, ce.MetricsCalculator.FailedResult(name, age, err))
			continue
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(name, age, altSeries)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseName:           baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		InputPath:          options.InputPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// ParseRetirementAges parses a comma separated age list such as "60,62,65".
// Duplicates are removed and the result is sorted.
func ParseRetirementAges(s string) ([]int, error) {
	seen := map[int]bool{}
	ages := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		age, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid retirement age %q: %w", part, err)
		}
		if age <= 0 {
			return nil, fmt.Errorf("invalid retirement age %d: must be positive", age)
		}
		if !seen[age] {
			seen[age] = true
			ages = append(ages, age)
		}
	}
	if len(ages) == 0 {
		return nil, fmt.Errorf("no retirement ages given")
	}
	sort.Ints(ages)
	return ages, nil
}
