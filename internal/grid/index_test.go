package grid

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// newTestIndex builds a 3x4 lattice with spacing 2. Column 3 is a hole
// except for the goal at (2,3).
func newTestIndex() *Index {
	var interactable []shape.Cell
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			interactable = append(interactable, shape.C(r, c))
		}
	}
	interactable = append(interactable, shape.C(2, 3))
	goals := []shape.Cell{shape.C(1, 1), shape.C(2, 3), shape.C(9, 9)}
	return NewIndex(3, 4, 2, interactable, goals)
}

func TestNewIndex(t *testing.T) {
	idx := newTestIndex()

	if idx.Rows() != 3 || idx.Cols() != 4 {
		t.Errorf("size = %dx%d, expected 3x4", idx.Rows(), idx.Cols())
	}
	if got := len(idx.Points()); got != 12 {
		t.Errorf("len(Points()) = %d, expected 12", got)
	}
	if got := idx.InteractableCount(); got != 10 {
		t.Errorf("InteractableCount() = %d, expected 10", got)
	}

	goals := idx.Goals()
	if len(goals) != 2 || goals[0] != shape.C(1, 1) || goals[1] != shape.C(2, 3) {
		t.Errorf("Goals() = %v, expected [(1,1) (2,3)]", goals)
	}
	if !idx.IsGoal(shape.C(2, 3)) || idx.IsGoal(shape.C(0, 0)) {
		t.Error("IsGoal reports wrong cells")
	}
	if idx.IsInteractable(shape.C(0, 3)) {
		t.Error("hole (0,3) should not be interactable")
	}
	if got := idx.Size(); got != core.V(6, 4) {
		t.Errorf("Size() = %v, expected (6,4)", got)
	}
}

func TestWorldPosition(t *testing.T) {
	idx := newTestIndex()
	p, ok := idx.Point(shape.C(2, 1))
	if !ok {
		t.Fatal("Point(2,1) not found")
	}
	if p.World != core.V(2, 4) {
		t.Errorf("World = %v, expected (2,4)", p.World)
	}
	if _, ok := idx.Point(shape.C(3, 0)); ok {
		t.Error("Point(3,0) should be out of bounds")
	}
}

func TestNearestInteractablePoint(t *testing.T) {
	idx := newTestIndex()

	tests := []struct {
		name     string
		pos      core.Vec2
		expected shape.Cell
		dist     float64
	}{
		{"exact dot", core.V(2, 2), shape.C(1, 1), 0},
		{"near origin", core.V(0.3, -0.4), shape.C(0, 0), 0.5},
		{"skips hole", core.V(6, 0), shape.C(0, 2), 2},
		{"far outside", core.V(100, 4), shape.C(2, 3), math.Hypot(94, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := idx.NearestInteractablePoint(tc.pos)
			if !ok {
				t.Fatal("NearestInteractablePoint() found nothing")
			}
			if n.Point.Cell != tc.expected {
				t.Errorf("cell = %v, expected %v", n.Point.Cell, tc.expected)
			}
			if math.Abs(n.Distance-tc.dist) > 1e-9 {
				t.Errorf("distance = %f, expected %f", n.Distance, tc.dist)
			}
		})
	}
}

func TestNearestInteractablePointEmpty(t *testing.T) {
	idx := NewIndex(2, 2, 1, nil, nil)
	if _, ok := idx.NearestInteractablePoint(core.V(0, 0)); ok {
		t.Error("NearestInteractablePoint() on an empty level should report false")
	}
}

func TestPointAt(t *testing.T) {
	idx := newTestIndex()

	if p, ok := idx.PointAt(core.V(4, 2)); !ok || p.Cell != shape.C(1, 2) {
		t.Errorf("PointAt(4,2) = (%v, %v), expected (1,2)", p.Cell, ok)
	}
	if _, ok := idx.PointAt(core.V(4.01, 2)); ok {
		t.Error("PointAt should require exact equality")
	}
	if _, ok := idx.PointAt(core.V(6, 0)); ok {
		t.Error("PointAt should ignore non-interactable points")
	}
}

func TestCellFromPosition(t *testing.T) {
	idx := newTestIndex()

	tests := []struct {
		name     string
		pos      core.Vec2
		expected shape.Cell
		ok       bool
	}{
		{"origin", core.V(0, 0), shape.C(0, 0), true},
		{"rounds down", core.V(2.9, 0.9), shape.C(0, 1), true},
		{"rounds up", core.V(3.1, 3.1), shape.C(2, 2), true},
		{"hole still in bounds", core.V(6, 0), shape.C(0, 3), true},
		{"left of grid", core.V(-1.5, 0), shape.Cell{}, false},
		{"below grid", core.V(0, 5.1), shape.Cell{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap, ok := idx.CellFromPosition(tc.pos)
			if ok != tc.ok {
				t.Fatalf("CellFromPosition(%v) ok = %v, expected %v", tc.pos, ok, tc.ok)
			}
			if ok && snap.Cell != tc.expected {
				t.Errorf("CellFromPosition(%v) = %v, expected %v", tc.pos, snap.Cell, tc.expected)
			}
		})
	}

	snap, _ := idx.CellFromPosition(core.V(3, 4))
	if math.Abs(snap.Distance-1) > 1e-9 {
		t.Errorf("snap distance = %f, expected 1", snap.Distance)
	}
}
