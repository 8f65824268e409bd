package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/output"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing retirement ages
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	nameWidth := tf.nameWidth(compSet)
	numWidth := 14
	// name, year and three balance columns, never narrower than a terminal line
	ruleWidth := max(80, nameWidth+7+3*(numWidth+1))
	rule := strings.Repeat("-", ruleWidth) + "\n"
	double := strings.Repeat("=", ruleWidth) + "\n"

	sb.WriteString("RETIREMENT AGE COMPARISON\n")
	sb.WriteString(double)
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseName))
	if compSet.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Inputs: %s\n", compSet.InputPath))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-*s %6s %*s %*s %*s\n",
		nameWidth, "Scenario",
		"Year",
		numWidth, "Conservative",
		numWidth, "Moderate",
		numWidth, "Aggressive"))
	sb.WriteString(rule)

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(rule)
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(double)

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE (moderate scenario)\n")
		sb.WriteString(rule)

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Name))
			if !alt.Valid() {
				sb.WriteString(fmt.Sprintf("  Not projected:    %s\n", alt.Error))
				continue
			}
			sb.WriteString(fmt.Sprintf("  Final balance:    %s%s (%s%%)\n",
				tf.deltaSymbol(alt.ModerateDiffFromBase),
				output.FormatAbbreviated(alt.ModerateDiffFromBase.Abs()),
				alt.ModeratePctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Today's dollars:  %s%s\n",
				tf.deltaSymbol(alt.ModerateRealDiffFromBase),
				output.FormatAbbreviated(alt.ModerateRealDiffFromBase.Abs())))
			sb.WriteString(fmt.Sprintf("  %s %s\n", alt.Headline.Main, alt.Headline.Subtitle))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(rule)
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// nameWidth fits the longest row label, including the base marker
func (tf *TableFormatter) nameWidth(compSet *ComparisonSet) int {
	width := len("Scenario")
	if compSet.BaseResult != nil {
		width = max(width, len(compSet.BaseResult.Name+baseMarker))
	}
	for _, alt := range compSet.AlternativeResults {
		width = max(width, len(alt.Name))
	}
	return width
}

const baseMarker = " (base)"

// formatRow formats a single scenario row of final nominal balances
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Name
	if isBase {
		name += baseMarker
	}
	if !result.Valid() {
		return fmt.Sprintf("%-*s %6s %s\n", nameWidth, name, "-", "not projected")
	}

	cols := make([]any, 0, 2*domain.NumScenarios)
	for _, s := range domain.Scenarios {
		cols = append(cols, numWidth, currency.Whole(result.Final(s).Nominal))
	}
	return fmt.Sprintf("%-*s %6d %*s %*s %*s\n",
		append([]any{nameWidth, name, result.RetirementYear}, cols...)...)
}

// deltaSymbol returns + for gains and - for losses
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// FormatCompact creates a single-line summary of the moderate differences
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		switch {
		case !alt.Valid():
			change = "n/a"
		case alt.ModerateDiffFromBase.IsPositive():
			change = "+" + output.FormatAbbreviated(alt.ModerateDiffFromBase)
		case alt.ModerateDiffFromBase.IsNegative():
			change = "-" + output.FormatAbbreviated(alt.ModerateDiffFromBase.Abs())
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.Name, change))
	}

	return sb.String()
}
