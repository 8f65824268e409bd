package compare

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/contribcalc/internal/domain"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Scenario", "Type", "Retirement Age", "Years", "Retirement Year"}
	for _, s := range domain.Scenarios {
		header = append(header, s.String()+" Nominal", s.String()+" Real")
	}
	header = append(header, "Moderate Diff from Base", "Moderate % Change", "Error")
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	row := []string{
		result.Name,
		scenarioType,
		strconv.Itoa(result.RetirementAge),
	}
	if !result.Valid() {
		row = append(row, "", "")
		for range domain.Scenarios {
			row = append(row, "", "")
		}
		return append(row, "", "", result.Error)
	}

	row = append(row, strconv.Itoa(result.YearsToRetirement), strconv.Itoa(result.RetirementYear))
	for _, s := range domain.Scenarios {
		final := result.Final(s)
		row = append(row, final.Nominal.StringFixed(0), final.Real.StringFixed(0))
	}
	return append(row,
		result.ModerateDiffFromBase.StringFixed(0),
		result.ModeratePctFromBase.StringFixed(2),
		"")
}
