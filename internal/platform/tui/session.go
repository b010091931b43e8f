package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
	"github.com/vovakirdan/tui-linedraw/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Levels []levels.Level
	Store  *storage.Store // optional

	// NewGame builds a game that starts on the given level.
	NewGame func(levelID string) Game

	Config core.RuntimeConfig
	Logger *log.Logger

	// StartID skips the picker and opens the level directly.
	StartID string
}

type sessionScreen int

const (
	screenPicker sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full flow of one player:
// level picker -> game -> level picker, with the scoreboard on the side.
// It is the top-level model both locally and for SSH sessions.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	logger     *log.Logger
	screen     sessionScreen
	picker     PickerModel
	game       Model
	scoreboard ScoreboardModel
	lastLevel  string
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := SessionModel{
		opts:   opts,
		config: cfg,
		logger: logger,
	}
	if opts.StartID != "" {
		m.startGame(opts.StartID)
	} else {
		m.showPicker("")
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updatePicker(msg)
	}
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if p, ok := next.(PickerModel); ok {
		m.picker = p
	}

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.picker.WantsScoreboard():
		if len(m.opts.Levels) > 0 {
			m.lastLevel = m.opts.Levels[m.picker.cursor].ID
		}
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Levels, m.lastLevel, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScoreboard
		return m, nil
	case m.picker.Selected() != "":
		m.startGame(m.picker.Selected())
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if g, ok := next.(Model); ok {
		m.game = g
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.WantsBack():
		if id := m.game.State().LevelID; id != "" {
			m.lastLevel = id
		}
		m.logger.Debug("back to level picker", "level", m.lastLevel)
		m.showPicker(m.lastLevel)
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if s, ok := next.(ScoreboardModel); ok {
		m.scoreboard = s
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.showPicker(m.lastLevel)
		return m, nil
	}
	return m, cmd
}

// showPicker switches to a fresh picker so best results are reloaded.
func (m *SessionModel) showPicker(levelID string) {
	m.picker = NewPickerModel(m.opts.Levels, m.opts.Store, levelID, m.config.ScreenW, m.config.ScreenH, m.logger)
	m.screen = screenPicker
}

// startGame switches to a new game on levelID. The caller runs its Init.
func (m *SessionModel) startGame(levelID string) {
	m.lastLevel = levelID
	m.game = NewModel(m.opts.NewGame(levelID), m.opts.Store, m.config, m.logger)
	m.screen = screenGame
	m.logger.Debug("starting level", "level", levelID)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.picker.View()
	}
}

// IsQuitting returns true if the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the session in the local terminal and blocks until the player
// quits.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
