package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles of every screen.
type Theme struct {
	// Board colors the game screen.
	Board Palette

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemDone    lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style

	// Star ratings
	StarEarned lipgloss.Style
	StarMissed lipgloss.Style

	// Scoreboard
	ScoreTitle    lipgloss.Style
	ScoreBorder   lipgloss.Color
	ScoreSelected lipgloss.Style
	ScoreMuted    lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Board: DefaultPalette(),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuControls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		StarEarned: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StarMissed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		ScoreTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		ScoreBorder:   lipgloss.Color("240"),
		ScoreSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		ScoreMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Board = MonochromePalette()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemNormal = lipgloss.NewStyle()
	theme.MenuItemActive = lipgloss.NewStyle().Bold(true).Reverse(true)
	theme.MenuItemDone = lipgloss.NewStyle()
	theme.StarEarned = lipgloss.NewStyle().Bold(true)
	theme.StarMissed = lipgloss.NewStyle()
	theme.ScoreSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
