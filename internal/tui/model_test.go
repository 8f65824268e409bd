package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/contribcalc/internal/calculation"
	"github.com/rgehrsitz/contribcalc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedModel(t *testing.T, in config.Inputs) Model {
	t.Helper()
	m := NewModel(calculation.NewCalculationEngine(), in.Normalize(), false)

	cmd := m.Init()
	require.NotNil(t, cmd, "Init should start the calculation")
	msg := cmd()
	require.IsType(t, ReportReadyMsg{}, msg)

	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyR        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQ        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestNewModel_LoadingView(t *testing.T) {
	m := NewModel(calculation.NewCalculationEngine(), config.Inputs{}.Normalize(), false)

	assert.Nil(t, m.Report())
	assert.Contains(t, m.View(), "Calculating...")
}

func TestModel_ReportReady(t *testing.T) {
	m := loadedModel(t, config.Inputs{Age: 40, Salary: 120000})

	require.NotNil(t, m.Report())
	assert.True(t, m.Report().HasProjection())
	assert.Equal(t, TabThisYear, m.CurrentTab())

	view := m.View()
	assert.Contains(t, view, "2026 Contribution Planner")
	assert.Contains(t, view, "Your contributions")
	assert.Contains(t, view, "Employer match")
	assert.Contains(t, view, "Per paycheck")
	assert.Contains(t, view, "401(k): up to $24,500")
}

func TestModel_TabNavigation(t *testing.T) {
	m := loadedModel(t, config.Inputs{})

	m = press(m, keyTab)
	assert.Equal(t, TabProjection, m.CurrentTab())
	m = press(m, keyRight)
	assert.Equal(t, TabTable, m.CurrentTab())
	m = press(m, keyTab)
	assert.Equal(t, TabThisYear, m.CurrentTab(), "Navigation should wrap around")
	m = press(m, keyShiftTab)
	assert.Equal(t, TabTable, m.CurrentTab())
	m = press(m, keyLeft)
	assert.Equal(t, TabProjection, m.CurrentTab())

	updated, _ := m.Update(NavigateMsg{Tab: TabThisYear})
	assert.Equal(t, TabThisYear, updated.(Model).CurrentTab())
}

func TestModel_ProjectionTab(t *testing.T) {
	m := press(loadedModel(t, config.Inputs{Age: 35}), keyTab)

	view := m.View()
	assert.Contains(t, view, "By 2056, you could have between")
	assert.Contains(t, view, "in today's dollars")
	assert.Contains(t, view, "Balance in nominal dollars")
	assert.Contains(t, view, "conservative (5%)")

	m = press(m, keyR)
	assert.True(t, m.ShowReal())
	assert.Contains(t, m.View(), "Balance in today's dollars")
}

func TestModel_TableTab(t *testing.T) {
	m := press(loadedModel(t, config.Inputs{Age: 60, RetirementAge: 63}), keyTab, keyTab)

	view := m.View()
	assert.Contains(t, view, "Moderate scenario (7%)")
	assert.Contains(t, view, "Today's $")
	assert.Len(t, m.table.Rows(), 4, "One row per year including the start")
	assert.Equal(t, "2026", m.table.Rows()[0][0])
	assert.Equal(t, "63", m.table.Rows()[3][1])
}

func TestModel_ProjectionUnavailable(t *testing.T) {
	m := loadedModel(t, config.Inputs{Age: 66, RetirementAge: 65})

	assert.Contains(t, m.View(), "Your contributions", "This year is still shown")
	m = press(m, keyTab)
	assert.Contains(t, m.View(), "Projection unavailable: retirement age must be greater than current age")
	m = press(m, keyTab)
	assert.Contains(t, m.View(), "Projection unavailable")
	assert.Empty(t, m.table.Rows())
}

func TestModel_Quit(t *testing.T) {
	m := loadedModel(t, config.Inputs{})

	for _, k := range []tea.KeyMsg{keyQ, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd(), "Should quit")
	}
}

func TestModel_ErrorAndResize(t *testing.T) {
	m := NewModel(calculation.NewCalculationEngine(), config.Inputs{}.Normalize(), false)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)

	updated, _ = m.Update(ErrorMsg{Err: errors.New("boom")})
	assert.Contains(t, updated.(Model).View(), "Error: boom")
}

func TestNewModelWithReport(t *testing.T) {
	loaded := loadedModel(t, config.Inputs{})

	m := NewModelWithReport(loaded.Report(), true)

	assert.Nil(t, m.Init(), "Nothing to calculate")
	assert.True(t, m.ShowReal())
	assert.NotEmpty(t, m.table.Rows())
	assert.Contains(t, m.View(), "Your contributions")
}

func TestTab_String(t *testing.T) {
	assert.Equal(t, "This Year", TabThisYear.String())
	assert.Equal(t, "Projection", TabProjection.String())
	assert.Equal(t, "Table", TabTable.String())
	assert.Equal(t, "Unknown", Tab(7).String())
}
