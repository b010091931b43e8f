package shape

// Shape is an ordered walk over grid cells. Order matters: it is a
// polyline, not a set.
type Shape []Cell

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Equal reports whether two shapes visit the same cells in the same order.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// IsClosed reports whether the walk ends where it started.
func (s Shape) IsClosed() bool {
	return len(s) >= 2 && s[0] == s[len(s)-1]
}

// Segments returns the consecutive cell pairs of the walk.
func (s Shape) Segments() []Segment {
	if len(s) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(s)-1)
	for i := 0; i < len(s)-1; i++ {
		segs = append(segs, Segment{Start: s[i], End: s[i+1]})
	}
	return segs
}

// Bounds returns the minimum and maximum row and column of the shape.
// An empty shape yields zero cells.
func (s Shape) Bounds() (lo, hi Cell) {
	if len(s) == 0 {
		return Cell{}, Cell{}
	}
	lo, hi = s[0], s[0]
	for _, c := range s[1:] {
		lo.Row = min(lo.Row, c.Row)
		lo.Col = min(lo.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
	}
	return lo, hi
}

// Extent returns the bounding-box size (rows, cols) of the shape.
func (s Shape) Extent() Cell {
	lo, hi := s.Bounds()
	return hi.Sub(lo)
}

// Normalize translates the shape so its minimum row and column are zero.
func Normalize(s Shape) Shape {
	if len(s) == 0 {
		return Shape{}
	}
	lo, _ := s.Bounds()
	return Translate(s, -lo.Row, -lo.Col)
}

// Translate offsets every cell by (dr, dc).
func Translate(s Shape, dr, dc int) Shape {
	out := make(Shape, len(s))
	off := Cell{Row: dr, Col: dc}
	for i, c := range s {
		out[i] = c.Add(off)
	}
	return out
}

// Reverse returns the walk traversed backwards.
func Reverse(s Shape) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}

// Rotate cyclically shifts a closed walk by shift positions.
// The closing duplicate is dropped, the remaining cells are rotated and the
// new first cell is appended again to close the loop.
func Rotate(s Shape, shift int) Shape {
	if len(s) < 2 {
		return s.Clone()
	}
	open := s[:len(s)-1]
	n := len(open)
	shift = ((shift % n) + n) % n

	out := make(Shape, 0, len(s))
	out = append(out, open[shift:]...)
	out = append(out, open[:shift]...)
	out = append(out, out[0])
	return out
}

// Scale multiplies every cell by k.
func Scale(s Shape, k int) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = c.Mul(k)
	}
	return out
}

// Primitive normalizes the shape and divides it by the greatest common
// divisor of its coordinates, giving the smallest lattice copy of it.
func Primitive(s Shape) Shape {
	n := Normalize(s)
	g := 0
	for _, c := range n {
		g = gcd(g, c.Row)
		g = gcd(g, c.Col)
	}
	if g <= 1 {
		return n
	}
	for i := range n {
		n[i] = Cell{Row: n[i].Row / g, Col: n[i].Col / g}
	}
	return n
}

// Dedupe drops consecutive repeated cells.
func Dedupe(s Shape) Shape {
	out := make(Shape, 0, len(s))
	for i, c := range s {
		if i > 0 && c == s[i-1] {
			continue
		}
		out = append(out, c)
	}
	return out
}
