package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-linedraw/internal/games/linedraw"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
	"github.com/vovakirdan/tui-linedraw/internal/storage"
)

// PickerModel is the level picker. Each entry shows the best star rating
// recorded for the level.
type PickerModel struct {
	levels       []levels.Level
	best         map[string]storage.LevelResult
	cursor       int
	scrollOffset int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme
	selected     string
	quitting     bool
	scoreboard   bool
}

// NewPickerModel creates a level picker with the cursor on startID (or the
// first level not yet completed when startID is empty). store may be nil.
func NewPickerModel(lvls []levels.Level, store *storage.Store, startID string, width, height int, logger *log.Logger) PickerModel {
	best := map[string]storage.LevelResult{}
	if store != nil {
		b, err := store.AllBest()
		if err != nil {
			if logger != nil {
				logger.Warn("could not load best results", "error", err)
			}
		} else {
			best = b
		}
	}

	m := PickerModel{
		levels:    lvls,
		best:      best,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     CurrentTheme(),
	}

	m.cursor = -1
	for i, l := range lvls {
		if startID != "" && l.ID == startID {
			m.cursor = i
			break
		}
		if startID == "" {
			if _, done := best[l.ID]; !done {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateScroll()
	return m
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor].ID
		}
	case MenuActionScoreboard:
		m.scoreboard = true
	}

	return m, nil
}

// visibleItems is the number of list rows that fit on screen.
func (m PickerModel) visibleItems() int {
	return max(m.height-10, 3) // header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *PickerModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("L I N E   D R A W"), m.width))
	b.WriteString("\n\n")

	done := 0
	for _, l := range m.levels {
		if _, ok := m.best[l.ID]; ok {
			done++
		}
	}
	subtitle := fmt.Sprintf("Select a level  (%d/%d complete)", done, len(m.levels))
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	endIdx := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < endIdx; i++ {
		l := m.levels[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		r, completed := m.best[l.ID]
		if completed {
			style = m.theme.MenuItemDone
		}
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%2d. %-24s", cursor, i+1, l.Name)) + " " + m.renderStars(r.Stars)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if endIdx < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.MenuControls.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// renderStars styles a best rating; zero means never completed.
func (m PickerModel) renderStars(stars int) string {
	if stars <= 0 {
		return m.theme.StarMissed.Render("---")
	}
	text := linedraw.StarsText(stars)
	earned := strings.Repeat("★", stars)
	return m.theme.StarEarned.Render(earned) + m.theme.StarMissed.Render(strings.TrimPrefix(text, earned))
}

// Selected returns the chosen level ID, or "" while still choosing.
func (m PickerModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the user asked for the scoreboard.
func (m PickerModel) WantsScoreboard() bool {
	return m.scoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
