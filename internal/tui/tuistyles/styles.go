// Package tuistyles holds the lipgloss palette shared by the TUI and its components.
package tuistyles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#5A4FCF")
	ColorAccent    = lipgloss.Color("#F25D94")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorDanger    = lipgloss.Color("#FF4672")
	ColorInfo      = lipgloss.Color("#3C9EE7")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#444444")

	// One line color per projection scenario, lowest return first
	ColorChartLine1 = lipgloss.Color("#3C9EE7")
	ColorChartLine2 = lipgloss.Color("#04B575")
	ColorChartLine3 = lipgloss.Color("#F25D94")
)

// Base styles

var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorForeground).
	Background(ColorPrimary).
	Padding(0, 1)

var SubtitleStyle = lipgloss.NewStyle().
	Foreground(ColorMuted)

var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Padding(0, 1)

var StatusKeyStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorAccent)

var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(1, 2)

var ActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorForeground).
	Background(ColorSecondary).
	Padding(0, 2)

var InactiveTabStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Padding(0, 2)

var HeadlineStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorSuccess)

var MetricLabelStyle = lipgloss.NewStyle().
	Foreground(ColorMuted)

var MetricValueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorForeground)

var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorDanger).
	Bold(true)

var InfoStyle = lipgloss.NewStyle().
	Foreground(ColorInfo)

var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorPrimary).
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(ColorBorder).
	BorderBottom(true)

var TableHighlightStyle = lipgloss.NewStyle().
	Foreground(ColorForeground).
	Background(ColorSecondary)
