// Package linedraw provides the line drawing puzzle: trace permitted shapes
// through a grid of dots until every goal dot is covered.
package linedraw

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-linedraw/internal/config"
	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/coverage"
	"github.com/vovakirdan/tui-linedraw/internal/grid"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
	"github.com/vovakirdan/tui-linedraw/internal/trace"
)

const (
	hudHeight    = 4
	followMargin = 2
	minScreenW   = 30
	minScreenH   = 10
)

// ErrNoLevels is reported when the game has nothing to play.
var ErrNoLevels = errors.New("linedraw: no levels available")

// Options configures a Game.
type Options struct {
	Config  config.GameConfig // zero value means config.DefaultGameConfig()
	Levels  []levels.Level    // nil loads the embedded pack
	StartID string            // level to start on; empty starts on the first
	Logger  *log.Logger
}

// Game implements the line drawing puzzle.
type Game struct {
	cfg    config.GameConfig
	logger *log.Logger

	levels     []levels.Level
	levelIndex int
	startID    string
	loadErr    error

	// Per-level state, rebuilt by loadLevel
	level   levels.Level
	index   *grid.Index
	tracker *coverage.Tracker
	ctrl    *trace.Controller
	camera  *Camera

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
	dt       float32 // seconds per tick

	// Keyboard cursor
	cursor        shape.Cell
	cursorTracing bool

	// Presentation state fed by the trace controller
	preview     []shape.Cell
	lastPreview []shape.Cell
	rejected    shape.Shape
	commitFlash flash
	rejectFlash flash
	message     string

	completed     bool
	justCompleted bool
	quit          bool
}

// New creates a new game.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == (config.GameConfig{}) {
		cfg = config.DefaultGameConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:     cfg,
		logger:  logger,
		levels:  opts.Levels,
		startID: opts.StartID,
	}
	if g.levels == nil {
		lvls, err := levels.Default().WithStars(cfg.Scoring.Thresholds()).LoadAll()
		if err != nil {
			g.loadErr = err
		}
		g.levels = lvls
	}
	if g.loadErr == nil && len(g.levels) == 0 {
		g.loadErr = ErrNoLevels
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "linedraw"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Line Draw"
}

// Err returns the error that prevented levels from loading, if any.
func (g *Game) Err() error { return g.loadErr }

// Reset initializes the game on its start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = g.cfg.Display.TickRate
	}
	g.dt = 1 / float32(tickRate)
	g.quit = false

	if g.loadErr != nil {
		return
	}

	g.levelIndex = 0
	for i, l := range g.levels {
		if l.ID == g.startID {
			g.levelIndex = i
			break
		}
	}
	g.loadLevel(g.levelIndex)
}

// Resize adapts the board to a new screen size without touching progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.camera != nil {
		g.layout()
	}
}

// loadLevel builds fresh per-level state. Claimed goals and committed
// paths are discarded.
func (g *Game) loadLevel(i int) {
	g.levelIndex = i
	g.level = g.levels[i]
	g.index = g.level.ToIndex()
	g.tracker = g.level.NewTracker()
	g.ctrl = trace.New(g.index, g.tracker, &presenter{g: g}, trace.Options{
		SnapRadiusFactor: g.cfg.Input.SnapRadiusFactor,
		Logger:           g.logger,
	})
	g.camera = NewCamera(g.cfg.Camera)
	g.layout()

	g.cursor = shape.C(0, 0)
	if dots := g.level.Interactable; len(dots) > 0 {
		g.cursor = dots[0]
	}
	g.cursorTracing = false
	g.preview = nil
	g.lastPreview = nil
	g.rejected = nil
	g.commitFlash.stop()
	g.rejectFlash.stop()
	g.message = ""
	g.completed = false
	g.justCompleted = false

	g.logger.Info("level loaded",
		"id", g.level.ID,
		"size", g.level.Rows*g.level.Cols,
		"goals", len(g.level.Goals),
	)
}

// layout fits the level into the area below the HUD.
func (g *Game) layout() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
	g.camera.SetViewport(core.NewRect(0, hudHeight, g.screenW, max(g.screenH-hudHeight, 0)))

	sp := g.level.CellSpacing
	size := core.V(float64(g.level.Cols-1)*sp, float64(g.level.Rows-1)*sp)
	g.camera.Fit(size)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.justCompleted = false
	if g.loadErr != nil || g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	g.commitFlash.update(g.dt)
	g.rejectFlash.update(g.dt)
	if !g.rejectFlash.active() {
		g.rejected = nil
	}

	switch {
	case in.Has(core.ActionBack):
		g.cancelCursorTrace()
		g.quit = true
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRestart):
		g.loadLevel(g.levelIndex)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionNextLevel) && g.completed:
		if g.levelIndex+1 < len(g.levels) {
			g.loadLevel(g.levelIndex + 1)
		}
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Camera
	if in.Has(core.ActionZoomIn) {
		g.camera.ZoomIn()
	}
	if in.Has(core.ActionZoomOut) {
		g.camera.ZoomOut()
	}
	if in.Pan != (core.Vec2{}) {
		g.camera.Pan(in.Pan)
	}

	if !g.completed {
		g.moveCursor(in)
		for _, e := range in.Pointers {
			g.handlePointer(e, g.camera.ScreenToWorld(e.Pos))
		}
		g.handleCursorTrace(in)
	}

	if !g.completed && g.tracker.Complete() {
		g.completed = true
		g.justCompleted = true
		g.cancelCursorTrace()
		g.logger.Info("level complete",
			"id", g.level.ID,
			"shapes", g.tracker.ShapesUsed(),
			"stars", g.tracker.Stars(),
		)
	}

	return core.StepResult{State: g.State(), JustCompleted: g.justCompleted}
}

func (g *Game) moveCursor(in core.InputFrame) {
	d := shape.Cell{}
	if in.Has(core.ActionUp) {
		d.Row--
	}
	if in.Has(core.ActionDown) {
		d.Row++
	}
	if in.Has(core.ActionLeft) {
		d.Col--
	}
	if in.Has(core.ActionRight) {
		d.Col++
	}
	if d == (shape.Cell{}) {
		return
	}

	next := g.cursor.Add(d)
	next.Row = core.Clamp(next.Row, 0, g.level.Rows-1)
	next.Col = core.Clamp(next.Col, 0, g.level.Cols-1)
	g.cursor = next
	g.camera.Follow(g.index.WorldPosition(g.cursor), followMargin)
}

// handleCursorTrace drives a trace from the keyboard. The cursor is a
// pointer of its own: the first trace key presses it, later ones add the
// dot under it, confirm releases it and cancel drops the trace.
func (g *Game) handleCursorTrace(in core.InputFrame) {
	// A pinch or a mouse trace may have ended ours.
	if g.cursorTracing && !g.ctrl.Drawing() {
		g.cancelCursorTrace()
	}

	world := g.index.WorldPosition(g.cursor)
	ev := core.PointerEvent{ID: core.PointerCursor, Pos: g.camera.WorldToScreen(world)}

	if in.Has(core.ActionTrace) {
		if g.cursorTracing {
			ev.Kind = core.PointerMove
			g.handlePointer(ev, world)
		} else {
			ev.Kind = core.PointerDown
			g.handlePointer(ev, world)
			g.cursorTracing = g.ctrl.Drawing()
			if !g.cursorTracing {
				// Nothing started; release the pointer again.
				g.handlePointer(core.PointerEvent{Kind: core.PointerCancel, ID: core.PointerCursor}, world)
			}
		}
	}

	if !g.cursorTracing {
		return
	}
	switch {
	case in.Has(core.ActionConfirm):
		ev.Kind = core.PointerUp
		g.handlePointer(ev, world)
		g.cursorTracing = false
	case in.Has(core.ActionCancel):
		g.cancelCursorTrace()
	}
}

func (g *Game) cancelCursorTrace() {
	if g.ctrl == nil {
		return
	}
	g.handlePointer(core.PointerEvent{Kind: core.PointerCancel, ID: core.PointerCursor}, core.Vec2{})
	g.cursorTracing = false
}

func (g *Game) handlePointer(e core.PointerEvent, world core.Vec2) {
	err := g.ctrl.HandlePointer(e, world)
	switch {
	case err == nil:
	case errors.Is(err, trace.ErrNoTemplateMatch):
		// Reported through the presenter.
	default:
		g.logger.Debug("pointer event ignored", "kind", e.Kind, "id", e.ID, "err", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.tracker == nil {
		return core.GameState{Quit: g.quit}
	}
	return core.GameState{
		LevelID:      g.level.ID,
		Goals:        len(g.tracker.Goals()),
		GoalsClaimed: len(g.tracker.Claimed()),
		ShapesUsed:   g.tracker.ShapesUsed(),
		Stars:        g.tracker.Stars(),
		Completed:    g.completed,
		Quit:         g.quit,
	}
}

// Levels returns every level the game can play, in order.
func (g *Game) Levels() []levels.Level { return g.levels }

// presenter receives trace outcomes on behalf of the game.
type presenter struct {
	g *Game
}

func (p *presenter) OnPathPreview(cells []shape.Cell) {
	if cells == nil {
		p.g.lastPreview = p.g.preview
	}
	p.g.preview = cells
}

func (p *presenter) OnShapeCommitted(name string, path shape.Shape) {
	p.g.commitFlash.start(p.g.cfg.Effects.CommitFlashSecs)
	p.g.rejectFlash.stop()
	p.g.rejected = nil
	p.g.message = name + "!"
}

func (p *presenter) OnShapeRejected() {
	p.g.rejected = p.g.lastPreview
	p.g.rejectFlash.start(p.g.cfg.Effects.RejectFlashSecs)
	p.g.message = "Not a permitted shape"
}

func (p *presenter) OnGoalsClaimed(cells []shape.Cell) {
	p.g.logger.Debug("goals claimed", "cells", cells)
}

func (p *presenter) OnPinchStart() {
	p.g.camera.BeginPinch()
}

func (p *presenter) OnPinchZoom(scale float64) {
	p.g.camera.PinchZoom(scale)
}
