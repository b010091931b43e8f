// Package trace turns pointer gestures into committed shapes.
//
// A Controller owns the single in-progress trace of a level. It snaps
// positions to the grid through a Locator, hands the finished path to the
// shape matcher, records successes in a coverage.Tracker and reports every
// outcome to a Presenter. All methods are meant to be called from one
// goroutine (the UI update loop).
package trace

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/coverage"
	"github.com/vovakirdan/tui-linedraw/internal/grid"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// DefaultSnapRadiusFactor is the snap radius as a fraction of cell spacing.
const DefaultSnapRadiusFactor = 0.3

// Locator is the grid lookup service the controller depends on.
// *grid.Index implements it.
type Locator interface {
	NearestInteractablePoint(pos core.Vec2) (grid.Nearest, bool)
	PointAt(pos core.Vec2) (grid.Point, bool)
	CellFromPosition(pos core.Vec2) (grid.Snap, bool)
	Spacing() float64
}

// Presenter receives the outcomes of tracing.
type Presenter interface {
	// OnPathPreview is called whenever the in-progress path changes.
	// A nil slice clears the preview.
	OnPathPreview(cells []shape.Cell)
	OnShapeCommitted(name string, path shape.Shape)
	OnShapeRejected()
	OnGoalsClaimed(cells []shape.Cell)
}

// PinchZoomer is optionally implemented by a Presenter that handles
// two-pointer zoom. Scale is the current pointer distance divided by the
// distance when the pinch started.
type PinchZoomer interface {
	OnPinchStart()
	OnPinchZoom(scale float64)
}

// Options configures a Controller.
type Options struct {
	SnapRadiusFactor float64
	Templates        []shape.Template // nil means the built-in catalogue
	Logger           *log.Logger
}

// Result describes a committed trace.
type Result struct {
	Match   shape.Match
	Path    shape.Shape
	Claimed []shape.Cell
}

// Controller is the gesture state machine for one level.
type Controller struct {
	loc     Locator
	tracker *coverage.Tracker
	pres    Presenter
	zoomer  PinchZoomer

	snapRadius float64
	templates  []shape.Template
	logger     *log.Logger

	drawing bool
	drawID  int
	path    shape.Shape
	end     core.Vec2 // loose end of the preview: last snapped dot or raw position

	pointers   map[int]core.Vec2
	pinching   bool
	pinchStart float64
}

// New creates a controller. tracker and pres must not be nil.
func New(loc Locator, tracker *coverage.Tracker, pres Presenter, opts Options) *Controller {
	factor := opts.SnapRadiusFactor
	if factor <= 0 {
		factor = DefaultSnapRadiusFactor
	}
	templates := opts.Templates
	if templates == nil {
		templates = shape.Catalogue()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		loc:        loc,
		tracker:    tracker,
		pres:       pres,
		snapRadius: factor * loc.Spacing(),
		templates:  templates,
		logger:     logger,
		pointers:   make(map[int]core.Vec2),
	}
	if z, ok := pres.(PinchZoomer); ok {
		c.zoomer = z
	}
	return c
}

// Drawing reports whether a trace is in progress.
func (c *Controller) Drawing() bool { return c.drawing }

// Pinching reports whether a pinch gesture is in progress.
func (c *Controller) Pinching() bool { return c.pinching }

// Path returns a copy of the in-progress path.
func (c *Controller) Path() shape.Shape { return c.path.Clone() }

// End returns the loose end of the in-progress trace in world space.
func (c *Controller) End() core.Vec2 { return c.end }

// SnapRadius returns the world distance within which extension snaps.
func (c *Controller) SnapRadius() float64 { return c.snapRadius }

// BeginTrace starts a trace at the interactable dot nearest to pos.
// Positions outside the grid start nothing.
func (c *Controller) BeginTrace(pos core.Vec2) error {
	if c.pinching {
		return ErrPinchActive
	}
	if _, ok := c.loc.CellFromPosition(pos); !ok {
		c.logger.Debug("trace ignored outside grid", "pos", pos)
		return ErrInvalidPath
	}
	nearest, ok := c.loc.NearestInteractablePoint(pos)
	if !ok {
		return ErrInvalidPath
	}

	c.drawing = true
	c.path = shape.Shape{nearest.Point.Cell}
	c.end = nearest.Point.World
	c.logger.Debug("trace begin", "cell", nearest.Point.Cell)
	c.pres.OnPathPreview(c.path.Clone())
	return nil
}

// ExtendTrace moves the loose end to pos and appends the nearest dot when it
// is within the snap radius and differs from the last cell.
func (c *Controller) ExtendTrace(pos core.Vec2) error {
	if !c.drawing {
		return ErrNoTrace
	}

	c.end = pos
	if _, ok := c.loc.CellFromPosition(pos); !ok {
		return ErrOutOfBounds
	}

	nearest, ok := c.loc.NearestInteractablePoint(pos)
	if !ok || nearest.Distance > c.snapRadius {
		return nil
	}
	c.end = nearest.Point.World
	if c.appendCell(nearest.Point.Cell) {
		c.pres.OnPathPreview(c.path.Clone())
	}
	return nil
}

// EndTrace finishes the trace at pos and validates it. On success the path
// is committed to the tracker and the returned Result says what matched.
func (c *Controller) EndTrace(pos core.Vec2) (Result, error) {
	if !c.drawing {
		return Result{}, ErrNoTrace
	}

	appended := false
	if p, ok := c.loc.PointAt(pos); ok {
		appended = c.appendCell(p.Cell)
	} else if n, ok := c.loc.NearestInteractablePoint(pos); ok && n.Distance <= c.snapRadius {
		appended = c.appendCell(n.Point.Cell)
	}
	if appended {
		c.pres.OnPathPreview(c.path.Clone())
	}

	path := shape.Dedupe(c.path)
	c.reset()
	c.pres.OnPathPreview(nil)

	if len(path) < 2 {
		c.logger.Debug("trace dropped", "cells", len(path))
		return Result{}, ErrInvalidPath
	}

	m, ok := shape.MatchAgainst(c.templates, path)
	if !ok {
		c.logger.Debug("trace rejected", "path", path)
		c.pres.OnShapeRejected()
		return Result{Path: path}, ErrNoTemplateMatch
	}

	claimed := c.tracker.Commit(path)
	c.logger.Debug("trace committed",
		"shape", m.Template.Name(),
		"cells", len(path),
		"scale", m.Scale,
		"direction", m.Transform.Direction,
		"claimed", len(claimed),
	)
	c.pres.OnShapeCommitted(m.Template.Name(), path.Clone())
	if len(claimed) > 0 {
		c.pres.OnGoalsClaimed(claimed)
	}
	return Result{Match: m, Path: path, Claimed: claimed}, nil
}

// CancelTrace discards the in-progress trace without matching it.
func (c *Controller) CancelTrace() error {
	if !c.drawing {
		return ErrNoTrace
	}
	c.logger.Debug("trace cancelled", "cells", len(c.path))
	c.reset()
	c.pres.OnPathPreview(nil)
	return nil
}

func (c *Controller) appendCell(cell shape.Cell) bool {
	if n := len(c.path); n > 0 && c.path[n-1] == cell {
		return false
	}
	c.path = append(c.path, cell)
	return true
}

func (c *Controller) reset() {
	c.drawing = false
	c.path = nil
	c.end = core.Vec2{}
}
