// Package shape provides the grid-cell geometry, the catalogue of permitted
// shapes and the matcher that decides whether a traced path is one of them.
// It has no dependencies outside the standard library and performs integer
// arithmetic only.
package shape

import "fmt"

// Cell is an integer lattice coordinate.
// Two cells are equal iff their rows and columns are equal.
type Cell struct {
	Row int
	Col int
}

// C is a convenience constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Sub returns the component-wise difference c - other.
func (c Cell) Sub(other Cell) Cell {
	return Cell{Row: c.Row - other.Row, Col: c.Col - other.Col}
}

// Mul scales both components by k.
func (c Cell) Mul(k int) Cell {
	return Cell{Row: c.Row * k, Col: c.Col * k}
}

// PointOnSegment reports whether p lies on the closed segment start→end.
// p must be collinear with the segment (cross product zero) and its
// projection must fall inside it: 0 <= dot <= lenSq.
// Degenerate segments (start == end) are not supported.
func PointOnSegment(start, end, p Cell) bool {
	sx := p.Row - start.Row
	sy := p.Col - start.Col
	ex := end.Row - start.Row
	ey := end.Col - start.Col

	if sx*ey != sy*ex {
		return false
	}

	dot := sx*ex + sy*ey
	if dot < 0 {
		return false
	}

	lenSq := ex*ex + ey*ey
	return dot <= lenSq
}

// Segment is a pair of consecutive cells in a shape.
type Segment struct {
	Start Cell
	End   Cell
}

// Contains reports whether p lies on the segment.
func (s Segment) Contains(p Cell) bool {
	return PointOnSegment(s.Start, s.End, p)
}

// ContainsBoth reports whether both a and b lie on the segment.
func (s Segment) ContainsBoth(a, b Cell) bool {
	return s.Contains(a) && s.Contains(b)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func gcd(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
