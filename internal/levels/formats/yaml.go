// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-linedraw/internal/coverage"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
	"gopkg.in/yaml.v3"
)

// DefaultCellSpacing is the world distance between neighbouring dots when a
// level does not set one.
const DefaultCellSpacing = 4.0

// Layout glyphs.
const (
	GlyphDot      = '.' // interactable dot
	GlyphGoal     = 'G' // interactable goal dot
	GlyphGoalOnly = 'g' // goal that cannot be snapped to
	GlyphHole     = 'x' // no dot
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	CellSpacing float64           `yaml:"cell_spacing,omitempty"`
	Stars       YAMLStars         `yaml:"stars,omitempty"`
	Layout      []string          `yaml:"layout,omitempty"`
	Size        YAMLSize          `yaml:"size,omitempty"`
	Holes       []YAMLCell        `yaml:"holes,omitempty"`
	Goals       []YAMLCell        `yaml:"goals,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLStars holds the shape-count thresholds for three and two stars.
type YAMLStars struct {
	Three int `yaml:"three"`
	Two   int `yaml:"two"`
}

// YAMLCell represents a single lattice cell in YAML format.
type YAMLCell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Level represents a parsed level ready for validation.
type Level struct {
	ID           string
	Name         string
	Rows         int
	Cols         int
	CellSpacing  float64
	Stars        coverage.StarThresholds
	StarsSet     bool // false when the file had no stars section
	Interactable []shape.Cell
	Goals        []shape.Cell
	Holes        []shape.Cell // holes listed outside the layout, as written
	Metadata     map[string]string
}

// LayoutError reports a malformed layout row.
type LayoutError struct {
	Row     int
	Message string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout row %d: %s", e.Row, e.Message)
}

// ParseYAML parses a YAML level file.
// A layout, when present, defines the grid size and which dots exist;
// otherwise size gives a full grid. Holes and goals listed separately are
// applied on top.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	spacing := yl.CellSpacing
	if spacing == 0 {
		spacing = DefaultCellSpacing
	}

	stars := coverage.StarThresholds{Three: yl.Stars.Three, Two: yl.Stars.Two}
	starsSet := stars != (coverage.StarThresholds{})
	if !starsSet {
		stars = coverage.DefaultStarThresholds()
	}

	level := Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Rows:        yl.Size.Rows,
		Cols:        yl.Size.Cols,
		CellSpacing: spacing,
		Stars:       stars,
		StarsSet:    starsSet,
		Metadata:    yl.Metadata,
	}

	// dots marks which cells exist; goals collects goal cells in file order.
	dots := make(map[shape.Cell]bool)
	var goals []shape.Cell

	if len(yl.Layout) > 0 {
		rows, err := parseLayout(yl.Layout)
		if err != nil {
			return Level{}, err
		}
		level.Rows = len(rows)
		level.Cols = len(rows[0])
		for r, row := range rows {
			for c, g := range row {
				cell := shape.C(r, c)
				switch g {
				case GlyphDot:
					dots[cell] = true
				case GlyphGoal:
					dots[cell] = true
					goals = append(goals, cell)
				case GlyphGoalOnly:
					goals = append(goals, cell)
				}
			}
		}
	} else {
		for r := 0; r < level.Rows; r++ {
			for c := 0; c < level.Cols; c++ {
				dots[shape.C(r, c)] = true
			}
		}
	}

	for _, h := range yl.Holes {
		cell := shape.C(h.Row, h.Col)
		level.Holes = append(level.Holes, cell)
		delete(dots, cell)
	}
	for _, g := range yl.Goals {
		goals = append(goals, shape.C(g.Row, g.Col))
	}

	// Row-major order keeps lookups deterministic.
	for r := 0; r < level.Rows; r++ {
		for c := 0; c < level.Cols; c++ {
			if cell := shape.C(r, c); dots[cell] {
				level.Interactable = append(level.Interactable, cell)
			}
		}
	}
	level.Goals = goals

	return level, nil
}

// parseLayout turns layout rows into glyph grids. Whitespace inside a row is
// ignored so rows may be written spaced out.
func parseLayout(lines []string) ([][]rune, error) {
	rows := make([][]rune, 0, len(lines))
	for i, line := range lines {
		var row []rune
		for _, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			if !strings.ContainsRune(string([]rune{GlyphDot, GlyphGoal, GlyphGoalOnly, GlyphHole}), r) {
				return nil, &LayoutError{Row: i, Message: fmt.Sprintf("unknown glyph %q", r)}
			}
			row = append(row, r)
		}
		if len(row) == 0 {
			return nil, &LayoutError{Row: i, Message: "empty row"}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &LayoutError{Row: i, Message: fmt.Sprintf("has %d cells, expected %d", len(row), len(rows[0]))}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
