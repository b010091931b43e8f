package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-linedraw/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Goals: 1 / 2")
	s.SetWithColor(2, 1, 'o', core.ColorGoal)
	s.SetWithColor(3, 1, '*', core.ColorClaimed)
	s.SetWithColor(4, 1, '+', core.ColorCursor)
	s.DrawTextWithColor(0, 2, "xx", core.Color(200))

	for _, tc := range []struct {
		name string
		t    Theme
	}{
		{"default", DefaultTheme()},
		{"monochrome", MonochromeTheme()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prev := CurrentTheme()
			SetTheme(tc.t)
			defer SetTheme(prev)

			lines := strings.Split(RenderScreen(s), "\n")
			if len(lines) != 3 {
				t.Fatalf("got %d lines, expected 3", len(lines))
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != 12 {
					t.Errorf("line %d width = %d, expected 12", i, w)
				}
			}
			if !strings.Contains(lines[0], "Goals: 1 / 2") {
				t.Errorf("HUD text lost: %q", lines[0])
			}
		})
	}
}

func TestPaletteFallsBackToDefault(t *testing.T) {
	p := Palette{core.ColorDefault: lipgloss.NewStyle().Bold(true)}
	if got := p.style(core.ColorOrange); !got.GetBold() {
		t.Error("unknown color did not use the default style")
	}
}
