package tui

import "github.com/rgehrsitz/contribcalc/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	StatusKeyStyle      = tuistyles.StatusKeyStyle
	BorderStyle         = tuistyles.BorderStyle
	ActiveTabStyle      = tuistyles.ActiveTabStyle
	InactiveTabStyle    = tuistyles.InactiveTabStyle
	HeadlineStyle       = tuistyles.HeadlineStyle
	ErrorStyle          = tuistyles.ErrorStyle
	InfoStyle           = tuistyles.InfoStyle
	TableHeaderStyle    = tuistyles.TableHeaderStyle
	TableHighlightStyle = tuistyles.TableHighlightStyle
)
