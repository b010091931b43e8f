package shape

// Direction is the traversal direction of a traced path.
type Direction uint8

const (
	Forward Direction = iota
	Reversed
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reversed:
		return "reversed"
	default:
		return "unknown"
	}
}

// Transform is one element of the search over path symmetries:
// a traversal direction, and for closed paths a cyclic start shift.
type Transform struct {
	Direction Direction
	Shift     int
	Cyclic    bool
}

// Apply returns the transformed copy of s. s is never modified.
func (tr Transform) Apply(s Shape) Shape {
	out := s
	if tr.Direction == Reversed {
		out = Reverse(out)
	}
	if tr.Cyclic {
		return Rotate(out, tr.Shift)
	}
	return out.Clone()
}

// Transforms enumerates the path symmetries searched for a template.
// Closed templates try both directions and every cyclic start of an n-cell
// loop; open templates try both directions only.
func Transforms(closed bool, n int) []Transform {
	dirs := []Direction{Forward, Reversed}
	if !closed {
		out := make([]Transform, 0, len(dirs))
		for _, d := range dirs {
			out = append(out, Transform{Direction: d})
		}
		return out
	}

	shifts := max(n-1, 1)
	out := make([]Transform, 0, len(dirs)*shifts)
	for _, d := range dirs {
		for shift := 0; shift < shifts; shift++ {
			out = append(out, Transform{Direction: d, Shift: shift, Cyclic: true})
		}
	}
	return out
}

// Match describes how a path matched a template.
type Match struct {
	Template    Template
	Orientation int       // index of the template orientation that matched
	Scale       int       // lattice scale of the template copy
	Transform   Transform // path symmetry that matched
	Normalized  Shape     // the normalized path that was tested
}

// Validate returns the first catalogue template the path matches.
func Validate(path Shape) (Template, bool) {
	m, ok := MatchPath(path)
	if !ok {
		return Template{}, false
	}
	return m.Template, true
}

// MatchPath matches the path against the built-in catalogue.
func MatchPath(path Shape) (Match, bool) {
	return MatchAgainst(catalogue, path)
}

// MatchAgainst matches the path against templates in order and reports
// the first success. Paths shorter than two cells never match.
func MatchAgainst(templates []Template, path Shape) (Match, bool) {
	if len(path) < 2 {
		return Match{}, false
	}

	normalized := Normalize(path)

	for _, t := range templates {
		// A template cannot be matched by a shorter trace.
		if len(t.shape) > len(normalized) {
			continue
		}
		if m, ok := t.match(normalized); ok {
			return m, true
		}
	}
	return Match{}, false
}

// match tries every orientation and path symmetry of t against a
// normalized path.
func (t Template) match(path Shape) (Match, bool) {
	if t.closed && !path.IsClosed() {
		return Match{}, false
	}

	extent := path.Extent()
	transforms := Transforms(t.closed, len(path))

	for oi, variant := range t.variants {
		k, ok := scaleFactor(variant.Extent(), extent)
		if !ok {
			continue
		}
		tmpl := Scale(variant, k)
		edges := tmpl.Segments()

		for _, tr := range transforms {
			candidate := tr.Apply(path)
			if matchesTemplate(candidate, tmpl, edges) {
				return Match{
					Template:    t,
					Orientation: oi,
					Scale:       k,
					Transform:   tr,
					Normalized:  path,
				}, true
			}
		}
	}
	return Match{}, false
}

// matchesTemplate applies the three predicates in order.
func matchesTemplate(path, tmpl Shape, edges []Segment) bool {
	return hasVerticesInOrder(path, tmpl) &&
		hasAllPointsOnEdges(path, tmpl, edges) &&
		hasAllConsecutiveEdgesValid(path, edges)
}

// hasVerticesInOrder reports whether every template vertex appears in the
// path in the same relative order. Extra path cells may sit between them.
func hasVerticesInOrder(path, tmpl Shape) bool {
	if len(tmpl) == 0 {
		return true
	}
	cursor := 0
	for _, c := range path {
		if c == tmpl[cursor] {
			cursor++
			if cursor == len(tmpl) {
				return true
			}
		}
	}
	return false
}

// hasAllPointsOnEdges reports whether every path cell lies on some
// template edge. Trivially true when the path has no extra cells.
func hasAllPointsOnEdges(path, tmpl Shape, edges []Segment) bool {
	if len(path) == len(tmpl) {
		return true
	}
	for _, c := range path {
		if !onAnyEdge(c, edges) {
			return false
		}
	}
	return true
}

func onAnyEdge(c Cell, edges []Segment) bool {
	for _, e := range edges {
		if e.Contains(c) {
			return true
		}
	}
	return false
}

// hasAllConsecutiveEdgesValid reports whether every step of the path stays
// on a single template edge.
func hasAllConsecutiveEdgesValid(path Shape, edges []Segment) bool {
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		valid := false
		for _, e := range edges {
			if e.ContainsBoth(a, b) {
				valid = true
				break
			}
		}
		if !valid {
			return false
		}
	}
	return true
}

// scaleFactor returns the integer k that maps a template bounding box
// onto the path bounding box, if one exists.
func scaleFactor(tmpl, path Cell) (int, bool) {
	k := 0
	for _, axis := range [2][2]int{{tmpl.Row, path.Row}, {tmpl.Col, path.Col}} {
		t, p := axis[0], axis[1]
		if t == 0 {
			if p != 0 {
				return 0, false
			}
			continue
		}
		if p == 0 || p%t != 0 {
			return 0, false
		}
		kk := p / t
		if k != 0 && kk != k {
			return 0, false
		}
		k = kk
	}
	if k == 0 {
		k = 1
	}
	return k, true
}
