package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/contribcalc/internal/calculation"
	"github.com/rgehrsitz/contribcalc/internal/config"
	"github.com/rgehrsitz/contribcalc/internal/domain"
	"github.com/rgehrsitz/contribcalc/internal/output"
	"github.com/rgehrsitz/contribcalc/pkg/currency"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentTab Tab

	// Terminal dimensions
	width  int
	height int

	// Calculation inputs
	calcEngine *calculation.CalculationEngine
	request    config.Request

	// Results
	report   *output.Report
	showReal bool
	table    table.Model

	// Error state
	err error

	// Loading state
	loading bool
}

// NewModel creates a dashboard that calculates the request on start
func NewModel(engine *calculation.CalculationEngine, req config.Request, showReal bool) Model {
	return Model{
		currentTab: TabThisYear,
		calcEngine: engine,
		request:    req,
		showReal:   showReal,
		table:      newProjectionTable(),
		loading:    true,
		width:      100,
		height:     30,
	}
}

// NewModelWithReport creates a dashboard for an already calculated report
func NewModelWithReport(report *output.Report, showReal bool) Model {
	m := Model{
		currentTab: TabThisYear,
		showReal:   showReal,
		table:      newProjectionTable(),
		width:      100,
		height:     30,
	}
	m.setReport(report)
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if !m.loading || m.calcEngine == nil {
		return nil
	}
	return calculateCmd(m.calcEngine, m.request)
}

// calculateCmd returns a command that evaluates the year and runs the projection
func calculateCmd(engine *calculation.CalculationEngine, req config.Request) tea.Cmd {
	return func() tea.Msg {
		report, err := output.BuildReport(context.Background(), engine, req.Profile, req.Plan, req.Params)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ReportReadyMsg{Report: report}
	}
}

// Report returns the report being displayed, nil while loading
func (m Model) Report() *output.Report {
	return m.report
}

// CurrentTab returns the active tab
func (m Model) CurrentTab() Tab {
	return m.currentTab
}

// ShowReal reports whether the projection is shown in today's dollars
func (m Model) ShowReal() bool {
	return m.showReal
}

func (m *Model) setReport(report *output.Report) {
	m.report = report
	m.loading = false
	m.table.SetRows(projectionRows(report))
}

func newProjectionTable() table.Model {
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Age", Width: 4},
		{Title: "Salary", Width: 12},
		{Title: "Contribution", Width: 12},
		{Title: "401(k)", Width: 13},
		{Title: "IRA", Width: 12},
		{Title: "HSA", Width: 11},
		{Title: "Nominal", Width: 13},
		{Title: "Today's $", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableHighlightStyle
	t.SetStyles(s)
	return t
}

// projectionRows lists the moderate scenario year by year
func projectionRows(report *output.Report) []table.Row {
	if !report.HasProjection() {
		return nil
	}
	series := report.Projection.Series(domain.ScenarioModerate)
	rows := make([]table.Row, 0, len(series))
	for _, snap := range series {
		rows = append(rows, table.Row{
			strconv.Itoa(snap.Year),
			strconv.Itoa(snap.Age),
			currency.Whole(snap.Salary),
			currency.Whole(snap.AnnualContribution),
			currency.Whole(snap.Balance401k),
			currency.Whole(snap.BalanceIRA),
			currency.Whole(snap.BalanceHSA),
			currency.Whole(snap.Nominal),
			currency.Whole(snap.Real),
		})
	}
	return rows
}
