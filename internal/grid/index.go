// Package grid materializes a level's lattice in world space and answers the
// lookups a trace needs: the nearest interactable dot, the dot sitting at an
// exact position, and the lattice cell under a continuous position.
package grid

import (
	"math"

	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// Point is a grid cell placed in world space.
// Points are handed out by value; the index owns the canonical copies.
type Point struct {
	Cell         shape.Cell
	World        core.Vec2
	Interactable bool
	Goal         bool
}

// Nearest is the result of a nearest-point query.
type Nearest struct {
	Point    Point
	Distance float64
}

// Snap is the lattice cell under a continuous position.
type Snap struct {
	Cell     shape.Cell
	Distance float64 // distance from the position to the cell's world position
}

// Index holds every point of a level's lattice.
// It is built once per level and is read-only afterwards.
type Index struct {
	rows, cols int
	spacing    float64

	points       []Point // row-major, rows*cols entries
	interactable []int   // indices into points, row-major
	goals        []shape.Cell
}

// NewIndex builds the lattice for a level. Cells outside [0,rows)×[0,cols)
// are ignored. Goals are recorded whether or not they are interactable.
func NewIndex(rows, cols int, spacing float64, interactable, goals []shape.Cell) *Index {
	idx := &Index{
		rows:    max(rows, 0),
		cols:    max(cols, 0),
		spacing: spacing,
	}
	if idx.spacing <= 0 {
		idx.spacing = 1
	}

	idx.points = make([]Point, idx.rows*idx.cols)
	for r := 0; r < idx.rows; r++ {
		for c := 0; c < idx.cols; c++ {
			cell := shape.C(r, c)
			idx.points[idx.offset(cell)] = Point{Cell: cell, World: idx.WorldPosition(cell)}
		}
	}

	for _, cell := range interactable {
		if idx.InBounds(cell) {
			idx.points[idx.offset(cell)].Interactable = true
		}
	}
	for _, cell := range goals {
		if !idx.InBounds(cell) {
			continue
		}
		p := &idx.points[idx.offset(cell)]
		if !p.Goal {
			p.Goal = true
			idx.goals = append(idx.goals, cell)
		}
	}

	for i, p := range idx.points {
		if p.Interactable {
			idx.interactable = append(idx.interactable, i)
		}
	}
	return idx
}

func (idx *Index) offset(c shape.Cell) int {
	return c.Row*idx.cols + c.Col
}

// Rows returns the number of lattice rows.
func (idx *Index) Rows() int { return idx.rows }

// Cols returns the number of lattice columns.
func (idx *Index) Cols() int { return idx.cols }

// Spacing returns the world distance between neighbouring cells.
func (idx *Index) Spacing() float64 { return idx.spacing }

// Size returns the world-space extent of the lattice.
func (idx *Index) Size() core.Vec2 {
	return core.V(float64(max(idx.cols-1, 0))*idx.spacing, float64(max(idx.rows-1, 0))*idx.spacing)
}

// WorldPosition returns the world position of a cell: (col*spacing, row*spacing).
func (idx *Index) WorldPosition(c shape.Cell) core.Vec2 {
	return core.V(float64(c.Col)*idx.spacing, float64(c.Row)*idx.spacing)
}

// InBounds reports whether the cell lies on the lattice.
func (idx *Index) InBounds(c shape.Cell) bool {
	return c.Row >= 0 && c.Row < idx.rows && c.Col >= 0 && c.Col < idx.cols
}

// Point returns the point at a cell.
func (idx *Index) Point(c shape.Cell) (Point, bool) {
	if !idx.InBounds(c) {
		return Point{}, false
	}
	return idx.points[idx.offset(c)], true
}

// IsInteractable reports whether a trace may snap to the cell.
func (idx *Index) IsInteractable(c shape.Cell) bool {
	p, ok := idx.Point(c)
	return ok && p.Interactable
}

// IsGoal reports whether the cell is a goal.
func (idx *Index) IsGoal(c shape.Cell) bool {
	p, ok := idx.Point(c)
	return ok && p.Goal
}

// Goals returns the goal cells in row-major order.
func (idx *Index) Goals() []shape.Cell {
	out := make([]shape.Cell, len(idx.goals))
	copy(out, idx.goals)
	return out
}

// Points returns a copy of every lattice point in row-major order.
func (idx *Index) Points() []Point {
	out := make([]Point, len(idx.points))
	copy(out, idx.points)
	return out
}

// InteractableCount returns how many points a trace may snap to.
func (idx *Index) InteractableCount() int {
	return len(idx.interactable)
}

// NearestInteractablePoint scans every interactable point and returns the
// closest one by Euclidean distance. The second result is false when the
// level has no interactable points. Ties resolve to the first in row-major
// order.
func (idx *Index) NearestInteractablePoint(pos core.Vec2) (Nearest, bool) {
	best := Nearest{Distance: math.Inf(1)}
	found := false
	for _, i := range idx.interactable {
		p := idx.points[i]
		if d := pos.Dist(p.World); d < best.Distance {
			best = Nearest{Point: p, Distance: d}
			found = true
		}
	}
	return best, found
}

// PointAt returns the interactable point whose world position equals pos
// exactly.
func (idx *Index) PointAt(pos core.Vec2) (Point, bool) {
	for _, i := range idx.interactable {
		if p := idx.points[i]; p.World == pos {
			return p, true
		}
	}
	return Point{}, false
}

// CellFromPosition rounds a continuous position to the nearest lattice cell.
// The second result is false when that cell is out of bounds.
func (idx *Index) CellFromPosition(pos core.Vec2) (Snap, bool) {
	cell := shape.C(
		int(math.Round(pos.Y/idx.spacing)),
		int(math.Round(pos.X/idx.spacing)),
	)
	if !idx.InBounds(cell) {
		return Snap{}, false
	}
	return Snap{Cell: cell, Distance: pos.Dist(idx.WorldPosition(cell))}, true
}
