package shape

import "testing"

var unitTriangle = Shape{C(0, 0), C(1, 0), C(1, 1), C(0, 0)}

var mShape = Shape{C(29, 0), C(0, 0), C(10, 10), C(0, 20), C(29, 20)}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		path     Shape
		expected string // "" means no match
	}{
		{"unit triangle", unitTriangle, NameTriangle},
		{"catalogue triangle", Shape{C(0, 0), C(10, 0), C(10, 10), C(0, 0)}, NameTriangle},
		{"triangle scaled by two", Shape{C(0, 0), C(2, 0), C(2, 2), C(0, 0)}, NameTriangle},
		{"triangle with edge midpoints", Shape{C(0, 0), C(1, 0), C(2, 0), C(2, 1), C(2, 2), C(1, 1), C(0, 0)}, NameTriangle},
		{"mirrored triangle", Shape{C(0, 0), C(0, 1), C(1, 1), C(0, 0)}, NameTriangle},
		{"unit rhombus", Shape{C(0, 1), C(1, 0), C(2, 1), C(1, 2), C(0, 1)}, NameRhombus},
		{"catalogue rhombus", Shape{C(0, 7), C(7, 0), C(14, 7), C(7, 14), C(0, 7)}, NameRhombus},
		{"m-shape", mShape, NameMShape},
		{"m-shape reversed", Reverse(mShape), NameMShape},
		{"m-shape with intermediate cells", Shape{C(29, 0), C(15, 0), C(0, 0), C(10, 10), C(0, 20), C(29, 20)}, NameMShape},
		{"bare diagonal", Shape{C(0, 0), C(1, 1)}, ""},
		{"single cell", Shape{C(0, 0)}, ""},
		{"empty", nil, ""},
		{"open triangle", Shape{C(0, 0), C(1, 0), C(1, 1)}, ""},
		{"square", Shape{C(0, 0), C(1, 0), C(1, 1), C(0, 1), C(0, 0)}, ""},
		{"m-shape out of order", Shape{C(0, 0), C(29, 0), C(10, 10), C(0, 20), C(29, 20)}, ""},
		{"off-edge intermediate cell", Shape{C(0, 0), C(2, 0), C(2, 2), C(1, 2), C(0, 0)}, ""},
		{"non-square triangle", Shape{C(0, 0), C(2, 0), C(2, 1), C(0, 0)}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, ok := Validate(tc.path)
			if tc.expected == "" {
				if ok {
					t.Errorf("Validate() = %q, expected no match", tmpl.Name())
				}
				return
			}
			if !ok {
				t.Fatalf("Validate() found no match, expected %q", tc.expected)
			}
			if tmpl.Name() != tc.expected {
				t.Errorf("Validate() = %q, expected %q", tmpl.Name(), tc.expected)
			}
		})
	}
}

func TestValidateTranslationInvariance(t *testing.T) {
	paths := []Shape{
		unitTriangle,
		Shape{C(0, 1), C(1, 0), C(2, 1), C(1, 2), C(0, 1)},
		mShape,
		Shape{C(0, 0), C(1, 1)},
		Shape{C(0, 0), C(2, 0), C(2, 2), C(1, 2), C(0, 0)},
	}
	offsets := []Cell{C(0, 0), C(3, 7), C(-5, 2), C(100, -40)}

	for _, p := range paths {
		base, baseOK := Validate(p)
		for _, off := range offsets {
			moved := Translate(p, off.Row, off.Col)
			got, ok := Validate(moved)
			if ok != baseOK || got.Name() != base.Name() {
				t.Errorf("Validate(%v + %v) = (%q, %v), expected (%q, %v)", p, off, got.Name(), ok, base.Name(), baseOK)
			}
		}
	}
}

func TestValidateTriangleRotationsAndReversals(t *testing.T) {
	for shift := 0; shift < len(unitTriangle)-1; shift++ {
		rotated := Rotate(unitTriangle, shift)
		for _, p := range []Shape{rotated, Reverse(rotated)} {
			tmpl, ok := Validate(p)
			if !ok || tmpl.Name() != NameTriangle {
				t.Errorf("Validate(%v) = (%q, %v), expected Triangle", p, tmpl.Name(), ok)
			}
		}
	}
}

func TestValidateEveryTriangleOrientation(t *testing.T) {
	for _, o := range orientations {
		p := Normalize(o.apply(unitTriangle))
		tmpl, ok := Validate(p)
		if !ok || tmpl.Name() != NameTriangle {
			t.Errorf("%s: Validate(%v) = (%q, %v), expected Triangle", o.name, p, tmpl.Name(), ok)
		}
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	path := Shape{C(5, 5), C(6, 5), C(6, 6), C(5, 5)}
	orig := path.Clone()
	Validate(path)
	if !path.Equal(orig) {
		t.Errorf("Validate modified its input: %v, expected %v", path, orig)
	}
}

func TestMatchPathDetail(t *testing.T) {
	m, ok := MatchPath(Reverse(mShape))
	if !ok {
		t.Fatal("MatchPath() found no match")
	}
	if m.Template.Name() != NameMShape {
		t.Errorf("Template = %q, expected %q", m.Template.Name(), NameMShape)
	}
	if m.Transform.Direction != Reversed {
		t.Errorf("Direction = %v, expected %v", m.Transform.Direction, Reversed)
	}
	if m.Transform.Cyclic {
		t.Error("open template matched with a cyclic transform")
	}
	if m.Scale != 1 {
		t.Errorf("Scale = %d, expected 1", m.Scale)
	}

	m, ok = MatchPath(Shape{C(0, 0), C(10, 0), C(10, 10), C(0, 0)})
	if !ok {
		t.Fatal("MatchPath() found no match for catalogue triangle")
	}
	if m.Scale != 10 {
		t.Errorf("Scale = %d, expected 10", m.Scale)
	}
}

func TestMatchAgainstOrder(t *testing.T) {
	line := NewTemplate("Line", false, Shape{C(0, 0), C(0, 1)})
	stroke := NewTemplate("Stroke", false, Shape{C(0, 0), C(0, 1)})

	m, ok := MatchAgainst([]Template{line, stroke}, Shape{C(3, 3), C(3, 6)})
	if !ok {
		t.Fatal("MatchAgainst() found no match")
	}
	if m.Template.Name() != "Line" {
		t.Errorf("MatchAgainst() = %q, expected first template %q", m.Template.Name(), "Line")
	}
}

func TestPredicates(t *testing.T) {
	tmpl := Shape{C(0, 0), C(2, 0), C(2, 2), C(0, 0)}
	edges := tmpl.Segments()

	tests := []struct {
		name                     string
		path                     Shape
		inOrder, onEdges, stepOK bool
	}{
		{"exact", tmpl, true, true, true},
		{"midpoint on edge", Shape{C(0, 0), C(1, 0), C(2, 0), C(2, 2), C(0, 0)}, true, true, true},
		{"cell off every edge", Shape{C(0, 0), C(2, 0), C(2, 2), C(1, 2), C(0, 0)}, true, false, false},
		{"vertices out of order", Shape{C(0, 0), C(2, 2), C(2, 0), C(0, 0)}, false, true, true},
		{"shortcut across edges", Shape{C(0, 0), C(2, 0), C(1, 1), C(2, 2), C(0, 0)}, true, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasVerticesInOrder(tc.path, tmpl); got != tc.inOrder {
				t.Errorf("hasVerticesInOrder() = %v, expected %v", got, tc.inOrder)
			}
			if got := hasAllPointsOnEdges(tc.path, tmpl, edges); got != tc.onEdges {
				t.Errorf("hasAllPointsOnEdges() = %v, expected %v", got, tc.onEdges)
			}
			if got := hasAllConsecutiveEdgesValid(tc.path, edges); got != tc.stepOK {
				t.Errorf("hasAllConsecutiveEdgesValid() = %v, expected %v", got, tc.stepOK)
			}
		})
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name       string
		tmpl, path Cell
		k          int
		ok         bool
	}{
		{"identity", C(1, 1), C(1, 1), 1, true},
		{"uniform", C(1, 1), C(10, 10), 10, true},
		{"mixed ratio", C(1, 1), C(2, 3), 0, false},
		{"not a multiple", C(2, 1), C(3, 1), 0, false},
		{"flat template", C(0, 1), C(0, 4), 4, true},
		{"flat template, thick path", C(0, 1), C(2, 4), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, ok := scaleFactor(tc.tmpl, tc.path)
			if ok != tc.ok || k != tc.k {
				t.Errorf("scaleFactor(%v, %v) = (%d, %v), expected (%d, %v)", tc.tmpl, tc.path, k, ok, tc.k, tc.ok)
			}
		})
	}
}

func TestTransforms(t *testing.T) {
	if got := len(Transforms(false, 5)); got != 2 {
		t.Errorf("len(Transforms(open)) = %d, expected 2", got)
	}
	if got := len(Transforms(true, 4)); got != 6 {
		t.Errorf("len(Transforms(closed, 4)) = %d, expected 6", got)
	}

	path := Shape{C(0, 0), C(1, 0), C(1, 1), C(0, 0)}
	for _, tr := range Transforms(true, len(path)) {
		out := tr.Apply(path)
		if !out.IsClosed() {
			t.Errorf("%+v produced an open path %v", tr, out)
		}
	}
	if !path.Equal(Shape{C(0, 0), C(1, 0), C(1, 1), C(0, 0)}) {
		t.Error("Transform.Apply modified its input")
	}
}
