package trace

import (
	"maps"
	"slices"

	"github.com/vovakirdan/tui-linedraw/internal/core"
)

// HandlePointer routes a pointer event. One pointer draws; a second pointer
// turns the gesture into a pinch, which cancels any trace.
// e.Pos is in screen space and drives the pinch distance; world is the same
// position mapped into grid space and drives tracing.
func (c *Controller) HandlePointer(e core.PointerEvent, world core.Vec2) error {
	switch e.Kind {
	case core.PointerDown:
		return c.pointerDown(e.ID, e.Pos, world)
	case core.PointerMove:
		return c.pointerMove(e.ID, e.Pos, world)
	case core.PointerUp:
		return c.pointerUp(e.ID, world)
	case core.PointerCancel:
		return c.pointerCancel(e.ID)
	}
	return nil
}

// ActivePointers returns how many pointers are down.
func (c *Controller) ActivePointers() int {
	return len(c.pointers)
}

func (c *Controller) pointerDown(id int, screen, world core.Vec2) error {
	if _, ok := c.pointers[id]; ok {
		// Repeated down without an up: treat as a move.
		return c.pointerMove(id, screen, world)
	}
	c.pointers[id] = screen

	switch len(c.pointers) {
	case 1:
		if err := c.BeginTrace(world); err != nil {
			return err
		}
		c.drawID = id
		return nil
	case 2:
		if c.drawing {
			_ = c.CancelTrace()
		}
		c.startPinch()
	}
	return nil
}

func (c *Controller) pointerMove(id int, screen, world core.Vec2) error {
	if _, ok := c.pointers[id]; !ok {
		// Hover without a press.
		return nil
	}
	c.pointers[id] = screen

	if c.pinching {
		c.updatePinch()
		return nil
	}
	if c.drawing && id == c.drawID {
		return c.ExtendTrace(world)
	}
	return nil
}

func (c *Controller) pointerUp(id int, world core.Vec2) error {
	if _, ok := c.pointers[id]; !ok {
		return nil
	}
	delete(c.pointers, id)

	if c.pinching {
		if len(c.pointers) < 2 {
			c.endPinch()
		}
		return nil
	}
	if c.drawing && id == c.drawID {
		_, err := c.EndTrace(world)
		return err
	}
	return nil
}

func (c *Controller) pointerCancel(id int) error {
	if _, ok := c.pointers[id]; !ok {
		return nil
	}
	delete(c.pointers, id)

	if c.pinching && len(c.pointers) < 2 {
		c.endPinch()
	}
	if c.drawing && id == c.drawID {
		return c.CancelTrace()
	}
	return nil
}

// pinchPair returns the two pointers of a pinch in a stable order.
func (c *Controller) pinchPair() (core.Vec2, core.Vec2, bool) {
	var pts []core.Vec2
	for _, id := range slices.Sorted(maps.Keys(c.pointers)) {
		pts = append(pts, c.pointers[id])
		if len(pts) == 2 {
			return pts[0], pts[1], true
		}
	}
	return core.Vec2{}, core.Vec2{}, false
}

func (c *Controller) startPinch() {
	a, b, ok := c.pinchPair()
	if !ok {
		return
	}
	c.pinching = true
	c.pinchStart = a.Dist(b)
	c.logger.Debug("pinch start", "distance", c.pinchStart)
	if c.zoomer != nil {
		c.zoomer.OnPinchStart()
	}
}

func (c *Controller) updatePinch() {
	a, b, ok := c.pinchPair()
	if !ok || c.pinchStart <= 0 || c.zoomer == nil {
		return
	}
	c.zoomer.OnPinchZoom(a.Dist(b) / c.pinchStart)
}

func (c *Controller) endPinch() {
	c.pinching = false
	c.pinchStart = 0
	c.logger.Debug("pinch end")
}
