package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyQuit       = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
	keyNext       = key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next"))
	keyPrev       = key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev"))
	keyToggleReal = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "nominal/today's $"))
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(5, m.height-8))
		return m, nil

	case NavigateMsg:
		m.currentTab = msg.Tab
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ReportReadyMsg:
		m.setReport(msg.Report)
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyQuit):
		return m, tea.Quit

	case key.Matches(msg, keyNext):
		m.currentTab = (m.currentTab + 1) % numTabs
		return m, nil

	case key.Matches(msg, keyPrev):
		m.currentTab = (m.currentTab + numTabs - 1) % numTabs
		return m, nil

	case key.Matches(msg, keyToggleReal):
		m.showReal = !m.showReal
		return m, nil
	}

	if m.currentTab == TabTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}
