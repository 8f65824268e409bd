package tui

import (
	"github.com/rgehrsitz/contribcalc/internal/output"
)

// Tab is one page of the dashboard
type Tab int

const (
	TabThisYear Tab = iota
	TabProjection
	TabTable

	numTabs = 3
)

// Tabs lists the tabs in display order
var Tabs = [numTabs]Tab{TabThisYear, TabProjection, TabTable}

func (t Tab) String() string {
	switch t {
	case TabThisYear:
		return "This Year"
	case TabProjection:
		return "Projection"
	case TabTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different tab
type NavigateMsg struct {
	Tab Tab
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ReportReadyMsg signals the calculation has finished
type ReportReadyMsg struct {
	Report *output.Report
}
