package shape

// Template is one entry of the permitted-shape catalogue.
// Templates are built once when the package is initialised and expose no
// way to modify them; Shape returns a copy.
type Template struct {
	name   string
	closed bool
	shape  Shape

	// variants holds the primitive lattice form of every distinct
	// orientation the matcher is allowed to try.
	variants []Shape
}

// Name returns the display name of the template.
func (t Template) Name() string {
	return t.name
}

// Closed reports whether the template is a loop (first cell == last cell).
func (t Template) Closed() bool {
	return t.closed
}

// Shape returns a copy of the template's cell sequence as catalogued.
func (t Template) Shape() Shape {
	return t.shape.Clone()
}

// Len returns the number of cells in the template sequence.
func (t Template) Len() int {
	return len(t.shape)
}

// Orientations returns how many distinct orientations are searched.
func (t Template) Orientations() int {
	return len(t.variants)
}

// Names of the built-in templates.
const (
	NameTriangle = "Triangle"
	NameRhombus  = "Rhombus"
	NameMShape   = "M-Shape"
)

// catalogue is the process-wide list of permitted shapes, in match order.
var catalogue = []Template{
	newTemplate(NameTriangle, true, Shape{
		{Row: 0, Col: 0},
		{Row: 10, Col: 0},
		{Row: 10, Col: 10},
		{Row: 0, Col: 0},
	}),
	newTemplate(NameRhombus, true, Shape{
		{Row: 0, Col: 7},
		{Row: 7, Col: 0},
		{Row: 14, Col: 7},
		{Row: 7, Col: 14},
		{Row: 0, Col: 7},
	}),
	newTemplate(NameMShape, false, Shape{
		{Row: 29, Col: 0},
		{Row: 0, Col: 0},
		{Row: 10, Col: 10},
		{Row: 0, Col: 20},
		{Row: 29, Col: 20},
	}),
}

// Catalogue returns the permitted shapes in match order.
// The returned slice is a fresh copy; templates themselves are read-only.
func Catalogue() []Template {
	out := make([]Template, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a catalogue template by name.
func Lookup(name string) (Template, bool) {
	for _, t := range catalogue {
		if t.name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Names returns the template names in catalogue order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, t := range catalogue {
		names[i] = t.name
	}
	return names
}

// NewTemplate builds a template outside the built-in catalogue, e.g. for
// MatchAgainst in tests or level-specific rule sets.
func NewTemplate(name string, closed bool, s Shape) Template {
	return newTemplate(name, closed, s)
}

func newTemplate(name string, closed bool, s Shape) Template {
	t := Template{
		name:   name,
		closed: closed,
		shape:  s.Clone(),
	}

	// Open shapes are matched in their catalogued orientation only.
	if !closed {
		t.variants = []Shape{Primitive(s)}
		return t
	}

	for _, o := range orientations {
		v := Primitive(o.apply(s))
		if !containsShape(t.variants, v) {
			t.variants = append(t.variants, v)
		}
	}
	return t
}

func containsShape(list []Shape, s Shape) bool {
	for _, v := range list {
		if v.Equal(s) {
			return true
		}
	}
	return false
}

// orientation is one element of the symmetry group of the square lattice.
type orientation struct {
	name string
	fn   func(Cell) Cell
}

func (o orientation) apply(s Shape) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = o.fn(c)
	}
	return out
}

// orientations lists the four quarter turns followed by their mirror images.
var orientations = []orientation{
	{"rot0", func(c Cell) Cell { return Cell{Row: c.Row, Col: c.Col} }},
	{"rot90", func(c Cell) Cell { return Cell{Row: c.Col, Col: -c.Row} }},
	{"rot180", func(c Cell) Cell { return Cell{Row: -c.Row, Col: -c.Col} }},
	{"rot270", func(c Cell) Cell { return Cell{Row: -c.Col, Col: c.Row} }},
	{"mirror", func(c Cell) Cell { return Cell{Row: c.Row, Col: -c.Col} }},
	{"mirror90", func(c Cell) Cell { return Cell{Row: -c.Col, Col: -c.Row} }},
	{"mirror180", func(c Cell) Cell { return Cell{Row: -c.Row, Col: c.Col} }},
	{"mirror270", func(c Cell) Cell { return Cell{Row: c.Col, Col: c.Row} }},
}
