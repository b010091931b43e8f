package trace

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// ptr builds a pointer event whose screen position equals its world
// position.
func ptr(c *Controller, kind core.PointerKind, id int, pos core.Vec2) error {
	return c.HandlePointer(core.PointerEvent{Kind: kind, ID: id, Pos: pos}, pos)
}

func TestPointerDrawsTriangle(t *testing.T) {
	c, tr, rec := newFixture()

	steps := []struct {
		kind core.PointerKind
		pos  core.Vec2
	}{
		{core.PointerDown, world(0, 0)},
		{core.PointerMove, world(1, 0)},
		{core.PointerMove, world(2, 0)},
		{core.PointerMove, world(2, 1)},
		{core.PointerMove, world(2, 2)},
		{core.PointerMove, world(1, 1)},
		{core.PointerUp, world(0, 0)},
	}
	for _, s := range steps {
		if err := ptr(c, s.kind, core.PointerMouse, s.pos); err != nil {
			t.Fatalf("%v at %v: %v", s.kind, s.pos, err)
		}
	}

	if len(rec.committed) != 1 {
		t.Fatalf("committed = %v, expected one triangle", rec.committed)
	}
	if got := rec.paths[0]; len(got) != 7 {
		t.Errorf("committed path = %v, expected 7 cells", got)
	}
	if tr.ShapesUsed() != 1 {
		t.Errorf("ShapesUsed() = %d", tr.ShapesUsed())
	}
	if c.ActivePointers() != 0 {
		t.Errorf("ActivePointers() = %d after release", c.ActivePointers())
	}
}

func TestHoverIsIgnored(t *testing.T) {
	c, _, rec := newFixture()
	if err := ptr(c, core.PointerMove, core.PointerMouse, world(1, 1)); err != nil {
		t.Errorf("hover returned %v", err)
	}
	if c.Drawing() || len(rec.previews) != 0 {
		t.Error("hover started a trace")
	}
}

func TestSecondPointerCancelsTraceAndPinches(t *testing.T) {
	c, tr, rec := newFixture()

	_ = ptr(c, core.PointerDown, 1, world(0, 0))
	_ = ptr(c, core.PointerMove, 1, world(0, 1))
	if !c.Drawing() {
		t.Fatal("first pointer should draw")
	}

	_ = ptr(c, core.PointerDown, 2, core.V(0, 20))
	if c.Drawing() {
		t.Error("second pointer should cancel the trace")
	}
	if !c.Pinching() {
		t.Fatal("second pointer should start a pinch")
	}
	if rec.pinchStart != 1 {
		t.Errorf("OnPinchStart calls = %d, expected 1", rec.pinchStart)
	}
	if rec.rejected != 0 || tr.ShapesUsed() != 0 {
		t.Error("cancelled trace reached the matcher")
	}

	// Pointer 1 sits at (10,0); moving pointer 2 doubles the distance.
	start := world(0, 1).Dist(core.V(0, 20))
	_ = ptr(c, core.PointerMove, 2, core.V(-10, 40))
	expected := world(0, 1).Dist(core.V(-10, 40)) / start
	if len(rec.scales) != 1 || math.Abs(rec.scales[0]-expected) > 1e-9 {
		t.Errorf("OnPinchZoom scales = %v, expected [%f]", rec.scales, expected)
	}

	// No drawing while pinching.
	if err := c.BeginTrace(world(2, 2)); !errors.Is(err, ErrPinchActive) {
		t.Errorf("BeginTrace() during pinch = %v, expected %v", err, ErrPinchActive)
	}

	_ = ptr(c, core.PointerUp, 2, core.V(-10, 40))
	if c.Pinching() {
		t.Error("pinch should end when a pointer lifts")
	}

	// The remaining pointer does not resume drawing.
	_ = ptr(c, core.PointerMove, 1, world(1, 1))
	if c.Drawing() {
		t.Error("remaining pointer resumed drawing")
	}
	_ = ptr(c, core.PointerUp, 1, world(1, 1))
	if c.ActivePointers() != 0 {
		t.Errorf("ActivePointers() = %d", c.ActivePointers())
	}

	// A fresh press draws again.
	if err := ptr(c, core.PointerDown, 1, world(0, 0)); err != nil {
		t.Errorf("new trace after pinch failed: %v", err)
	}
	if !c.Drawing() {
		t.Error("fresh press should draw")
	}
}

func TestPointerCancel(t *testing.T) {
	c, tr, rec := newFixture()

	_ = ptr(c, core.PointerDown, core.PointerMouse, world(0, 0))
	_ = ptr(c, core.PointerMove, core.PointerMouse, world(2, 0))
	_ = ptr(c, core.PointerMove, core.PointerMouse, world(2, 2))
	if err := c.HandlePointer(core.PointerEvent{Kind: core.PointerCancel, ID: core.PointerMouse}, core.Vec2{}); err != nil {
		t.Fatalf("cancel returned %v", err)
	}

	if c.Drawing() {
		t.Error("trace survived pointer cancel")
	}
	if rec.rejected != 0 || len(rec.committed) != 0 || tr.ShapesUsed() != 0 {
		t.Error("pointer cancel reached the matcher")
	}
}

func TestOtherPointerUpDoesNotEndTrace(t *testing.T) {
	c, _, _ := newFixture()
	_ = ptr(c, core.PointerDown, 1, world(0, 0))

	// Unknown pointer lifting is ignored.
	_ = ptr(c, core.PointerUp, 7, world(0, 0))
	if !c.Drawing() {
		t.Error("unrelated pointer ended the trace")
	}
	if p := c.Path(); len(p) != 1 || p[0] != shape.C(0, 0) {
		t.Errorf("Path() = %v", p)
	}
}
