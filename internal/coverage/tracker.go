// Package coverage records what a level's committed shapes have achieved:
// the append-only list of committed paths, the monotonically growing set of
// claimed goal cells, and the star rating derived from the shape count.
package coverage

import (
	"slices"

	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// StarThresholds maps the number of committed shapes to a rating.
// Using at most Three shapes earns three stars, at most Two earns two,
// anything more earns one.
type StarThresholds struct {
	Three int `yaml:"three"`
	Two   int `yaml:"two"`
}

// DefaultStarThresholds returns the thresholds used when a level sets none.
func DefaultStarThresholds() StarThresholds {
	return StarThresholds{Three: 2, Two: 3}
}

// Valid reports whether the thresholds are usable.
func (s StarThresholds) Valid() bool {
	return s.Three >= 0 && s.Two >= s.Three
}

// Stars returns the rating for the given shape count.
func (s StarThresholds) Stars(used int) int {
	switch {
	case used <= s.Three:
		return 3
	case used <= s.Two:
		return 2
	default:
		return 1
	}
}

// Tracker is the per-level coverage state. It is not safe for concurrent
// use; a level is driven from a single update loop.
type Tracker struct {
	goals     []shape.Cell
	isGoal    map[shape.Cell]bool
	claimed   map[shape.Cell]bool
	order     []shape.Cell // claimed goals in claim order
	committed []shape.Shape
	stars     StarThresholds
}

// NewTracker creates a tracker for the given goal cells.
func NewTracker(goals []shape.Cell, stars StarThresholds) *Tracker {
	t := &Tracker{
		isGoal:  make(map[shape.Cell]bool, len(goals)),
		claimed: make(map[shape.Cell]bool, len(goals)),
		stars:   stars,
	}
	for _, g := range goals {
		if !t.isGoal[g] {
			t.isGoal[g] = true
			t.goals = append(t.goals, g)
		}
	}
	return t
}

// ClaimGoalsOnPath claims every still-unclaimed goal lying on a segment of
// the path and returns the newly claimed cells in path order. Claiming is
// idempotent: a goal already claimed is never reported again. A single-cell
// path claims that cell if it is a goal.
func (t *Tracker) ClaimGoalsOnPath(path shape.Shape) []shape.Cell {
	var claimed []shape.Cell

	if len(path) == 1 {
		if t.claim(path[0]) {
			claimed = append(claimed, path[0])
		}
		return claimed
	}

	for _, seg := range path.Segments() {
		if seg.Start == seg.End {
			if t.claim(seg.Start) {
				claimed = append(claimed, seg.Start)
			}
			continue
		}
		for _, g := range t.goalsOn(seg) {
			if t.claim(g) {
				claimed = append(claimed, g)
			}
		}
	}
	return claimed
}

// goalsOn returns the unclaimed goals lying on seg, ordered from its start.
func (t *Tracker) goalsOn(seg shape.Segment) []shape.Cell {
	var out []shape.Cell
	for _, g := range t.goals {
		if !t.claimed[g] && seg.Contains(g) {
			out = append(out, g)
		}
	}
	slices.SortStableFunc(out, func(a, b shape.Cell) int {
		return sqDist(seg.Start, a) - sqDist(seg.Start, b)
	})
	return out
}

func sqDist(a, b shape.Cell) int {
	d := b.Sub(a)
	return d.Row*d.Row + d.Col*d.Col
}

func (t *Tracker) claim(c shape.Cell) bool {
	if !t.isGoal[c] || t.claimed[c] {
		return false
	}
	t.claimed[c] = true
	t.order = append(t.order, c)
	return true
}

// Commit records a validated path and claims the goals it covers.
// It returns the newly claimed goals.
func (t *Tracker) Commit(path shape.Shape) []shape.Cell {
	t.committed = append(t.committed, path.Clone())
	return t.ClaimGoalsOnPath(path)
}

// Committed returns copies of the committed paths in commit order.
func (t *Tracker) Committed() []shape.Shape {
	out := make([]shape.Shape, len(t.committed))
	for i, p := range t.committed {
		out[i] = p.Clone()
	}
	return out
}

// Claimed returns the claimed goals in claim order.
func (t *Tracker) Claimed() []shape.Cell {
	out := make([]shape.Cell, len(t.order))
	copy(out, t.order)
	return out
}

// IsClaimed reports whether a goal has been claimed.
func (t *Tracker) IsClaimed(c shape.Cell) bool {
	return t.claimed[c]
}

// Goals returns the level's goal cells.
func (t *Tracker) Goals() []shape.Cell {
	out := make([]shape.Cell, len(t.goals))
	copy(out, t.goals)
	return out
}

// ShapesUsed returns the number of committed shapes.
func (t *Tracker) ShapesUsed() int {
	return len(t.committed)
}

// Complete reports whether the level has goals and all of them are claimed.
func (t *Tracker) Complete() bool {
	return len(t.goals) > 0 && len(t.order) == len(t.goals)
}

// Stars returns the current rating.
func (t *Tracker) Stars() int {
	return t.stars.Stars(t.ShapesUsed())
}

// Thresholds returns the level's star thresholds.
func (t *Tracker) Thresholds() StarThresholds {
	return t.stars
}
