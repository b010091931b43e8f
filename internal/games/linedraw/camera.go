package linedraw

import (
	"math"

	"github.com/vovakirdan/tui-linedraw/internal/config"
	"github.com/vovakirdan/tui-linedraw/internal/core"
)

// Camera maps world positions to screen cells and back.
//
// Screen x grows with world x at zoom cells per world unit. Terminal cells
// are taller than they are wide, so screen y is compressed by the aspect
// ratio: sy = offY + wy*zoom/aspect.
type Camera struct {
	zoom   float64
	offset core.Vec2 // screen position of the world origin
	view   core.Rect

	minZoom float64
	maxZoom float64
	step    float64
	aspect  float64

	pinchBase float64
}

// NewCamera creates a camera at zoom 1 with the given limits.
func NewCamera(cfg config.CameraConfig) *Camera {
	return &Camera{
		zoom:      1,
		minZoom:   cfg.MinZoom,
		maxZoom:   cfg.MaxZoom,
		step:      cfg.ZoomStep,
		aspect:    cfg.Aspect,
		pinchBase: 1,
	}
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// Viewport returns the screen area the board is drawn in.
func (c *Camera) Viewport() core.Rect { return c.view }

// SetViewport sets the screen area the board is drawn in.
func (c *Camera) SetViewport(r core.Rect) { c.view = r }

// WorldToScreen maps a world position to fractional screen coordinates.
func (c *Camera) WorldToScreen(w core.Vec2) core.Vec2 {
	return core.V(c.offset.X+w.X*c.zoom, c.offset.Y+w.Y*c.zoom/c.aspect)
}

// ScreenToWorld maps screen coordinates to a world position.
func (c *Camera) ScreenToWorld(s core.Vec2) core.Vec2 {
	return core.V((s.X-c.offset.X)/c.zoom, (s.Y-c.offset.Y)*c.aspect/c.zoom)
}

// ScreenCell returns the character cell a world position falls in.
func (c *Camera) ScreenCell(w core.Vec2) (int, int) {
	s := c.WorldToScreen(w)
	return int(math.Round(s.X)), int(math.Round(s.Y))
}

// SetZoom changes the zoom, clamped to the configured range, keeping the
// world point at the viewport center fixed.
func (c *Camera) SetZoom(z float64) {
	center := c.viewCenter()
	anchor := c.ScreenToWorld(center)
	c.zoom = core.ClampF(z, c.minZoom, c.maxZoom)
	c.offset = core.V(center.X-anchor.X*c.zoom, center.Y-anchor.Y*c.zoom/c.aspect)
}

// ZoomIn increases the zoom by one step.
func (c *Camera) ZoomIn() { c.SetZoom(c.snap(c.zoom + c.step)) }

// ZoomOut decreases the zoom by one step.
func (c *Camera) ZoomOut() { c.SetZoom(c.snap(c.zoom - c.step)) }

// snap rounds z to a whole number of steps so repeated steps do not drift.
func (c *Camera) snap(z float64) float64 {
	return math.Round(z/c.step) * c.step
}

// BeginPinch records the zoom a pinch gesture scales from.
func (c *Camera) BeginPinch() { c.pinchBase = c.zoom }

// PinchZoom sets the zoom to the pinch start zoom times scale.
func (c *Camera) PinchZoom(scale float64) {
	if scale <= 0 {
		return
	}
	c.SetZoom(c.pinchBase * scale)
}

// Pan moves the view by d screen cells.
func (c *Camera) Pan(d core.Vec2) { c.offset = c.offset.Add(d) }

// CenterOn moves the view so w is at the viewport center.
func (c *Camera) CenterOn(w core.Vec2) {
	c.offset = c.offset.Add(c.viewCenter().Sub(c.WorldToScreen(w)))
}

// Follow pans the least amount needed to keep w at least margin cells
// inside the viewport.
func (c *Camera) Follow(w core.Vec2, margin int) {
	inner := c.view.Inset(margin)
	if inner.W == 0 || inner.H == 0 {
		c.CenterOn(w)
		return
	}

	s := c.WorldToScreen(w)
	var d core.Vec2
	switch {
	case s.X < float64(inner.X):
		d.X = float64(inner.X) - s.X
	case s.X > float64(inner.Right()-1):
		d.X = float64(inner.Right()-1) - s.X
	}
	switch {
	case s.Y < float64(inner.Y):
		d.Y = float64(inner.Y) - s.Y
	case s.Y > float64(inner.Bottom()-1):
		d.Y = float64(inner.Bottom()-1) - s.Y
	}
	c.Pan(d)
}

// Fit picks the largest zoom that shows a world area of the given size in
// the viewport, then centers it.
func (c *Camera) Fit(size core.Vec2) {
	z := c.maxZoom
	if size.X > 0 {
		z = min(z, float64(c.view.W-1)/size.X)
	}
	if size.Y > 0 {
		z = min(z, float64(c.view.H-1)*c.aspect/size.Y)
	}
	c.zoom = core.ClampF(z, c.minZoom, c.maxZoom)
	c.offset = core.Vec2{}
	c.CenterOn(size.Scale(0.5))
}

func (c *Camera) viewCenter() core.Vec2 {
	return core.V(
		float64(c.view.X)+float64(c.view.W-1)/2,
		float64(c.view.Y)+float64(c.view.H-1)/2,
	)
}
