package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scenario is one of the fixed return assumptions
type Scenario int

const (
	ScenarioConservative Scenario = iota
	ScenarioModerate
	ScenarioAggressive

	NumScenarios = 3
)

// Scenarios lists every scenario from lowest to highest return
var Scenarios = [NumScenarios]Scenario{ScenarioConservative, ScenarioModerate, ScenarioAggressive}

func (s Scenario) String() string {
	switch s {
	case ScenarioConservative:
		return "conservative"
	case ScenarioModerate:
		return "moderate"
	case ScenarioAggressive:
		return "aggressive"
	}
	return fmt.Sprintf("scenario(%d)", int(s))
}

// MarshalText encodes the scenario by name so it can key JSON and YAML maps
func (s Scenario) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Bucket is a tax-advantaged account type tracked by the projection
type Bucket int

const (
	Bucket401k Bucket = iota
	BucketIRA
	BucketHSA

	NumBuckets = 3
)

// Buckets lists every bucket
var Buckets = [NumBuckets]Bucket{Bucket401k, BucketIRA, BucketHSA}

func (b Bucket) String() string {
	switch b {
	case Bucket401k:
		return "401k"
	case BucketIRA:
		return "ira"
	case BucketHSA:
		return "hsa"
	}
	return fmt.Sprintf("bucket(%d)", int(b))
}

// BucketBalances holds one balance per bucket
type BucketBalances [NumBuckets]decimal.Decimal

// Total sums all buckets
func (b BucketBalances) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}

// ProjectionParams controls the multi-year projection
type ProjectionParams struct {
	CurrentAge       int             `yaml:"current_age" json:"currentAge"`
	RetirementAge    int             `yaml:"retirement_age" json:"retirementAge"`
	AnnualRaisePct   decimal.Decimal `yaml:"annual_raise_pct" json:"annualRaisePct"`
	InflationRate    decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	ExistingBalances BucketBalances  `yaml:"existing_balances" json:"existingBalances"`
}

// YearSnapshot is the state of one scenario at the end of one projected year.
// Amounts are whole dollars.
type YearSnapshot struct {
	Year               int             `json:"year"`
	Age                int             `json:"age"`
	Nominal            decimal.Decimal `json:"nominal"`
	Real               decimal.Decimal `json:"real"`
	Balance401k        decimal.Decimal `json:"balance401k"`
	BalanceIRA         decimal.Decimal `json:"balanceIra"`
	BalanceHSA         decimal.Decimal `json:"balanceHsa"`
	AnnualContribution decimal.Decimal `json:"annualContribution"`
	Salary             decimal.Decimal `json:"salary"`
}

// ScenarioBalance is a nominal/real pair
type ScenarioBalance struct {
	Nominal decimal.Decimal `json:"nominal"`
	Real    decimal.Decimal `json:"real"`
}

// HeadlineRange is the low (conservative) to high (aggressive) final balance range
type HeadlineRange struct {
	LowNominal     decimal.Decimal `json:"lowNominal"`
	HighNominal    decimal.Decimal `json:"highNominal"`
	LowReal        decimal.Decimal `json:"lowReal"`
	HighReal       decimal.Decimal `json:"highReal"`
	RetirementYear int             `json:"retirementYear"`
}

// ProjectionSeries is the result of a multi-year projection
type ProjectionSeries struct {
	YearsToRetirement int                          `json:"yearsToRetirement"`
	RetirementYear    int                          `json:"retirementYear"`
	ReturnRates       map[Scenario]decimal.Decimal `json:"returnRates"`
	Scenarios         map[Scenario][]YearSnapshot  `json:"scenarios"`
	FinalBalances     map[Scenario]ScenarioBalance `json:"finalBalances"`
	Headline          HeadlineRange                `json:"headline"`
}

// Series returns the yearly snapshots for a scenario
func (p *ProjectionSeries) Series(s Scenario) []YearSnapshot {
	if p == nil {
		return nil
	}
	return p.Scenarios[s]
}

// Final returns the last snapshot of a scenario
func (p *ProjectionSeries) Final(s Scenario) (YearSnapshot, bool) {
	series := p.Series(s)
	if len(series) == 0 {
		return YearSnapshot{}, false
	}
	return series[len(series)-1], true
}

// ProjectionError reports a projection that cannot be run
type ProjectionError struct {
	CurrentAge    int
	RetirementAge int
	Message       string
}

func (e *ProjectionError) Error() string {
	return e.Message
}
