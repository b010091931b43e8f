package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-linedraw/internal/core"
)

// Palette maps board colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// DefaultPalette uses the 256-color ANSI palette.
func DefaultPalette() Palette {
	return Palette{
		core.ColorDefault:      lipgloss.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3").Bold(true),
		core.ColorBlue:         fg("4"),
		core.ColorMagenta:      fg("5").Bold(true),
		core.ColorCyan:         fg("6"),
		core.ColorWhite:        fg("7"),
		core.ColorBrightRed:    fg("9").Bold(true),
		core.ColorBrightGreen:  fg("10").Bold(true),
		core.ColorBrightYellow: fg("11").Bold(true),
		core.ColorBrightCyan:   fg("14"),
		core.ColorBrightWhite:  fg("15"),
		core.ColorOrange:       fg("208"),
		core.ColorGray:         fg("245"),
		core.ColorDarkGray:     fg("238"),
	}
}

// MonochromePalette tells goals, claimed goals and the cursor apart with
// text attributes only.
func MonochromePalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		core.ColorDefault:  plain,
		core.ColorGoal:     plain.Bold(true),
		core.ColorClaimed:  plain.Bold(true).Underline(true),
		core.ColorPreview:  plain.Bold(true),
		core.ColorCursor:   plain.Reverse(true),
		core.ColorReject:   plain.Blink(true),
		core.ColorDarkGray: plain.Faint(true),
	}
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if style, ok := p[c]; ok {
		return style
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string using the
// current theme's palette. Runs of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	palette := theme.Board

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(palette.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
