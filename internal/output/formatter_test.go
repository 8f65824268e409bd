package output

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/contribcalc/internal/calculation"
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/limits"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport(t *testing.T, currentAge, retirementAge int) *Report {
	t.Helper()
	profile := domain.PersonProfile{
		Age:          currentAge,
		Salary:       decimal.NewFromInt(150000),
		MAGI:         decimal.NewFromInt(150000),
		FilingStatus: domain.FilingSingle,
	}
	plan := domain.PlanFeatures{
		MatchRate:            decimal.NewFromInt(1),
		MatchCapPercent:      decimal.RequireFromString("0.06"),
		HSACoverage:          domain.HSACoverageSelf,
		HSATotalContribution: decimal.NewFromInt(4400),
	}
	params := domain.ProjectionParams{
		CurrentAge:     currentAge,
		RetirementAge:  retirementAge,
		AnnualRaisePct: limits.DefaultAnnualRaise,
		InflationRate:  limits.DefaultInflationRate,
	}
	r, err := BuildReport(context.Background(), calculation.NewCalculationEngine(), profile, plan, params)
	require.NoError(t, err)
	return r
}

func TestBuildReport_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	profile := domain.PersonProfile{Age: 40, Salary: decimal.NewFromInt(100000), MAGI: decimal.NewFromInt(100000)}
	params := domain.ProjectionParams{CurrentAge: 40, RetirementAge: 65}

	r, err := BuildReport(ctx, calculation.NewCalculationEngine(), profile, domain.PlanFeatures{}, params)

	assert.Nil(t, r)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewReport(t *testing.T) {
	r := buildTestReport(t, 35, 65)

	assert.Equal(t, 2026, r.TaxYear)
	assert.True(t, r.HasProjection(), "Should include the projection")
	require.NotNil(t, r.Headline)
	assert.True(t, strings.HasPrefix(r.Headline.Main, "By 2056, you could have between $"))
	assert.Empty(t, r.Error)
}

func TestNewReport_ProjectionError(t *testing.T) {
	r := buildTestReport(t, 65, 60)

	assert.False(t, r.HasProjection())
	assert.Nil(t, r.Headline)
	assert.Equal(t, "retirement age must be greater than current age", r.Error)
}

func TestFormatterFunc(t *testing.T) {
	called := false
	var received *Report

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(r *Report) ([]byte, error) {
			called = true
			received = r
			return []byte("test output"), nil
		},
	}

	report := buildTestReport(t, 35, 65)
	out, err := formatter.Format(report)

	assert.NoError(t, err, "Should not error")
	assert.True(t, called, "Should call the function")
	assert.Equal(t, report, received, "Should pass the report")
	assert.Equal(t, []byte("test output"), out, "Should return the function output")
	assert.Equal(t, "test-formatter", formatter.Name(), "Should return the ID")
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(r *Report) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(t, 35, 65), "txt")

	assert.NoError(t, err, "Should not error")
	assert.True(t, strings.HasPrefix(filename, "contribution_report_"), "Should use the report prefix")
	content, err := os.ReadFile(filename)
	assert.NoError(t, err, "Should read file")
	assert.Equal(t, "test output content", string(content), "Should have correct content")
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"TEXT", "console"},
		{" json ", "json"},
		{"json-pretty", "json"},
		{"csv", "csv"},
		{"md", "markdown"},
		{"html", "html"},
		{"terminal", "pretty"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "Should find %q", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}
	assert.Nil(t, GetFormatterByName("pdf"), "Unknown formats return nil")
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json", "markdown", "pretty"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "md")
}

func TestConsoleFormatter(t *testing.T) {
	r := buildTestReport(t, 35, 65)

	out, err := ConsoleFormatter{}.Format(r)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "2026 CONTRIBUTION LIMITS")
	assert.Contains(t, text, "$24,500")
	assert.Contains(t, text, "Your contributions:")
	assert.Contains(t, text, "$36,400")
	assert.Contains(t, text, "$1,400.00")
	assert.Contains(t, text, "PROJECTION TO 2056 (30 years)")
	assert.Contains(t, text, r.Headline.Main)
	assert.Contains(t, text, "conservative")
	assert.Contains(t, text, "10%")
}

func TestConsoleFormatter_ProjectionError(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t, 65, 60))
	require.NoError(t, err)

	assert.Contains(t, string(out), "Projection unavailable: retirement age must be greater than current age")
	assert.NotContains(t, string(out), "PROJECTION TO")
}

func TestJSONFormatter(t *testing.T) {
	r := buildTestReport(t, 35, 65)

	out, err := JSONFormatter{}.Format(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, float64(2026), decoded["taxYear"])
	projection := decoded["projection"].(map[string]any)
	scenarios := projection["scenarios"].(map[string]any)
	assert.Len(t, scenarios["moderate"], 31)
	assert.Contains(t, scenarios, "conservative")
	assert.Contains(t, scenarios, "aggressive")

	pretty, err := JSONFormatter{Pretty: true}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"taxYear\": 2026")
}

func TestJSONFormatter_ErrorField(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport(t, 65, 60))
	require.NoError(t, err)

	assert.Contains(t, string(out), `"error":"retirement age must be greater than current age"`)
	assert.NotContains(t, string(out), `"projection"`)
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport(t, 60, 62))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+3*3, "Header plus three years per scenario")
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"conservative", "2026", "60"}, records[1][:3])
	assert.Equal(t, "aggressive", records[9][0])
}

func TestMarkdownFormatter(t *testing.T) {
	r := buildTestReport(t, 35, 65)

	out, err := MarkdownFormatter{}.Format(r)
	require.NoError(t, err)
	md := string(out)

	assert.Contains(t, md, "# 2026 Contribution Limits")
	assert.Contains(t, md, "| 401(k) deferral | $24,500 | $24,500 |")
	assert.Contains(t, md, "## Projection to 2056")
	assert.Contains(t, md, "**"+r.Headline.Main+"**")
	assert.Contains(t, md, "| moderate | 7% |")
	assert.Contains(t, md, "| 2056 | 65 |")
}

func TestMarkdownFormatter_Backdoor(t *testing.T) {
	r := buildTestReport(t, 35, 65)
	r.ThisYear.IRA.SuggestBackdoor = true

	out, err := MarkdownFormatter{}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Roth IRA (backdoor)")
	assert.Contains(t, string(out), "direct contributions are not allowed")
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport(t, 35, 65))
	require.NoError(t, err)
	html := string(out)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>2026 Contribution Report</title>")
	assert.Contains(t, html, "<h1>2026 Contribution Limits</h1>")
	assert.Contains(t, html, "<table>")
}

func TestPrettyFormatter(t *testing.T) {
	out, err := PrettyFormatter{Style: "notty", Width: 120}.Format(buildTestReport(t, 35, 65))
	require.NoError(t, err)

	assert.Contains(t, string(out), "2026 Contribution Limits")
	assert.Contains(t, string(out), "you could have between")
}
