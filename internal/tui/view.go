package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/tui/components"
	"github.com/rgehrsitz/contribcalc/internal/tui/tuistyles"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
	"github.com/shopspring/decimal"
)

var scenarioColors = [domain.NumScenarios]lipgloss.Color{
	tuistyles.ColorChartLine1,
	tuistyles.ColorChartLine2,
	tuistyles.ColorChartLine3,
}

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("⠋ Calculating..."))
	}

	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress q to quit.", m.err.Error())))
	}

	if m.report == nil {
		return m.renderApp(InfoStyle.Render("No results to display"))
	}

	var content string
	switch m.currentTab {
	case TabThisYear:
		content = m.renderThisYear()
	case TabProjection:
		content = m.renderProjection()
	case TabTable:
		content = m.renderTable()
	default:
		content = "Unknown tab"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, tab bar and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		content,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title
func (m Model) renderTitleBar() string {
	year := ""
	if m.report != nil {
		year = strconv.Itoa(m.report.TaxYear) + " "
	}
	return TitleStyle.Render(year + "Contribution Planner")
}

// renderTabs renders the tab bar with the active tab highlighted
func (m Model) renderTabs() string {
	tabs := make([]string, 0, numTabs)
	for _, t := range Tabs {
		if t == m.currentTab {
			tabs = append(tabs, ActiveTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{}
	for _, b := range []struct{ key, desc string }{
		{keyNext.Help().Key, keyNext.Help().Desc},
		{keyPrev.Help().Key, keyPrev.Help().Desc},
		{keyToggleReal.Help().Key, keyToggleReal.Help().Desc},
		{keyQuit.Help().Key, keyQuit.Help().Desc},
	} {
		shortcuts = append(shortcuts, formatShortcut(b.key, b.desc))
	}

	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// valueMode names the current projection value mode
func (m Model) valueMode() string {
	if m.showReal {
		return "today's dollars"
	}
	return "nominal dollars"
}

// renderThisYear renders the metric cards for the current tax year
func (m Model) renderThisYear() string {
	res := m.report.ThisYear

	cards := []*components.MetricCard{
		components.NewMetricCard("Your contributions", currency.Whole(res.Totals.YourContributions)),
		components.NewMetricCard("Employer match", currency.Whole(res.Totals.EmployerMatch)),
		components.NewMetricCard("Total with match", currency.Whole(res.Totals.TotalWithMatch)),
		components.NewMetricCard("Per paycheck", currency.Cents(res.Paycheck.Biweekly)).
			WithDescription(fmt.Sprintf("%s semimonthly", currency.Cents(res.Paycheck.Semimonthly))),
		components.NewMetricCard("Per month", currency.Cents(res.Paycheck.Monthly)),
	}

	columns := max(1, (m.width-4)/28)
	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, columns),
		"",
		BorderStyle.Render(strings.Join(thisYearNotes(res), "\n")),
	)
}

// thisYearNotes lists the per-account details behind the totals
func thisYearNotes(res domain.ContributionResult) []string {
	notes := []string{}

	k := res.Plan401k
	deferral := fmt.Sprintf("401(k): up to %s of %s deferral limit", currency.Whole(k.YourMaxDeferral), currency.Whole(k.MaxDeferral))
	switch k.CatchUpKind {
	case domain.CatchUpSuper:
		deferral += fmt.Sprintf(", includes %s super catch-up", currency.Whole(k.CatchUp))
	case domain.CatchUpStandard:
		deferral += fmt.Sprintf(", includes %s catch-up", currency.Whole(k.CatchUp))
	}
	notes = append(notes, deferral)

	ira := res.IRA
	switch {
	case ira.SuggestBackdoor && res.IRA.EffectiveContribution.IsPositive():
		notes = append(notes, fmt.Sprintf("IRA: above the Roth phase-out, %s via backdoor Roth", currency.Whole(ira.EffectiveContribution)))
	case ira.SuggestBackdoor:
		notes = append(notes, "IRA: above the Roth phase-out, consider a backdoor Roth")
	case ira.AllowedContribution.LessThan(ira.MaxLimit):
		notes = append(notes, fmt.Sprintf("IRA: %s of %s (Roth phase-out)", currency.Whole(ira.AllowedContribution), currency.Whole(ira.MaxLimit)))
	default:
		notes = append(notes, fmt.Sprintf("IRA: %s", currency.Whole(ira.AllowedContribution)))
	}

	if res.HSA.Eligible {
		notes = append(notes, fmt.Sprintf("HSA: %s limit, contributing %s", currency.Whole(res.HSA.MaxLimit), currency.Whole(res.HSA.TotalContribution)))
	} else {
		notes = append(notes, "HSA: not eligible")
	}

	if res.MegaBackdoor.Available {
		notes = append(notes, fmt.Sprintf("Mega backdoor Roth: %s of after-tax room", currency.Whole(res.MegaBackdoor.Room)))
	}

	if res.RothCatchUp.Applies {
		notes = append(notes, "Catch-up: "+res.RothCatchUp.Reason)
	}

	return notes
}

// renderProjection renders the headline and the three-scenario chart
func (m Model) renderProjection() string {
	if !m.report.HasProjection() {
		return ErrorStyle.Render("Projection unavailable: " + m.report.Error)
	}

	var sb strings.Builder
	if h := m.report.Headline; h != nil {
		sb.WriteString(HeadlineStyle.Render(h.Main))
		sb.WriteString("\n")
		sb.WriteString(SubtitleStyle.Render(h.Subtitle))
		sb.WriteString("\n\n")
	}

	series := m.report.Projection
	chart := components.NewASCIIChart(fmt.Sprintf("Projected balance to %d", series.RetirementYear)).
		WithSize(max(40, m.width-4), max(6, m.height-16)).
		WithAxisLabels("Age", "Balance in "+m.valueMode())

	var labels []string
	for _, snap := range series.Series(domain.ScenarioModerate) {
		labels = append(labels, strconv.Itoa(snap.Age))
	}
	chart.WithLabels(labels)

	for _, s := range domain.Scenarios {
		chart.AddSeries(
			fmt.Sprintf("%s (%s)", s, currency.Percent(series.ReturnRates[s])),
			components.DecimalPoints(scenarioValues(series.Series(s), m.showReal)),
			scenarioColors[s],
		)
	}
	sb.WriteString(chart.Render())
	return sb.String()
}

// scenarioValues picks the nominal or real total of each snapshot
func scenarioValues(series []domain.YearSnapshot, inflationAdjusted bool) []decimal.Decimal {
	values := make([]decimal.Decimal, len(series))
	for i, snap := range series {
		if inflationAdjusted {
			values[i] = snap.Real
		} else {
			values[i] = snap.Nominal
		}
	}
	return values
}

// renderTable renders the moderate scenario year by year
func (m Model) renderTable() string {
	if !m.report.HasProjection() {
		return ErrorStyle.Render("Projection unavailable: " + m.report.Error)
	}
	title := InfoStyle.Render(fmt.Sprintf("Moderate scenario (%s)", currency.Percent(m.report.Projection.ReturnRates[domain.ScenarioModerate])))
	return title + "\n" + m.table.View()
}
