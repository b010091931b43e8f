package levels_test

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-linedraw/internal/coverage"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// getTestdataPath returns path to testdata/<name>.
func getTestdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath("levels"))

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
	}
	expected := []string{"alpha", "beta", "gamma"}
	if len(ids) != len(expected) {
		t.Fatalf("LoadAll() ids = %v, expected %v", ids, expected)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], expected[i])
		}
	}
}

func TestLoaderLayoutLevel(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath("levels"))

	lvl, err := loader.LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Alpha" {
		t.Errorf("expected Name 'Alpha', got %q", lvl.Name)
	}
	if lvl.Rows != 2 || lvl.Cols != 3 {
		t.Errorf("expected 2x3, got %dx%d", lvl.Rows, lvl.Cols)
	}
	if lvl.CellSpacing != 3 {
		t.Errorf("expected spacing 3, got %g", lvl.CellSpacing)
	}
	if len(lvl.Interactable) != 4 {
		t.Errorf("expected 4 dots, got %d: %v", len(lvl.Interactable), lvl.Interactable)
	}
	if len(lvl.Goals) != 2 || lvl.Goals[0] != shape.C(1, 0) || lvl.Goals[1] != shape.C(1, 2) {
		t.Errorf("Goals = %v, expected [(1,0) (1,2)]", lvl.Goals)
	}
	if lvl.Stars != (coverage.StarThresholds{Three: 1, Two: 2}) {
		t.Errorf("Stars = %+v, expected {1 2}", lvl.Stars)
	}

	idx := lvl.ToIndex()
	if idx.IsInteractable(shape.C(1, 2)) {
		t.Error("goal-only cell (1,2) should not be interactable")
	}
	if !idx.IsGoal(shape.C(1, 2)) {
		t.Error("goal-only cell (1,2) should be a goal")
	}
	if idx.IsInteractable(shape.C(0, 2)) {
		t.Error("hole (0,2) should not be interactable")
	}
}

func TestLoaderSizeLevelDefaults(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath("levels"))

	lvl, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "beta" {
		t.Errorf("Name should default to the ID, got %q", lvl.Name)
	}
	if len(lvl.Interactable) != 11 {
		t.Errorf("expected 11 dots, got %d", len(lvl.Interactable))
	}
	if lvl.CellSpacing != 4 {
		t.Errorf("expected default spacing 4, got %g", lvl.CellSpacing)
	}
	if lvl.Stars != coverage.DefaultStarThresholds() {
		t.Errorf("Stars = %+v, expected defaults", lvl.Stars)
	}

	tr := lvl.NewTracker()
	if got := len(tr.Goals()); got != 1 {
		t.Errorf("tracker goals = %d, expected 1", got)
	}
}

func TestLoaderStarsOverride(t *testing.T) {
	custom := coverage.StarThresholds{Three: 4, Two: 6}
	loader := levels.NewLoader(getTestdataPath("levels")).WithStars(custom)

	beta, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if beta.Stars != custom {
		t.Errorf("beta Stars = %+v, expected %+v", beta.Stars, custom)
	}

	// A stars section in the file wins.
	alpha, err := loader.LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if alpha.Stars != (coverage.StarThresholds{Three: 1, Two: 2}) {
		t.Errorf("alpha Stars = %+v, expected {1 2}", alpha.Stars)
	}
}

func TestLoaderIDFromFilename(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath("levels"))

	lvl, err := loader.LoadByID("gamma")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Gamma Without ID" {
		t.Errorf("Name = %q", lvl.Name)
	}
}

func TestLoaderInvalidFile(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath("levels"))

	_, err := loader.LoadFile("broken.yaml")
	if err == nil {
		t.Fatal("LoadFile(broken.yaml) should fail")
	}
	if !errors.Is(err, levels.ValidationError{Code: levels.CodeGoalOutOfBounds}) {
		t.Errorf("error = %v, expected %s", err, levels.CodeGoalOutOfBounds)
	}

	if _, err := loader.LoadByID("broken"); err == nil {
		t.Error("invalid level should not be loadable by ID")
	}
}

func TestLoaderDuplicateID(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath("dup"))

	_, err := loader.LoadAll()
	if !errors.Is(err, levels.ValidationError{Code: levels.CodeDuplicateID}) {
		t.Errorf("LoadAll() error = %v, expected %s", err, levels.CodeDuplicateID)
	}
}

func TestLoaderValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{"zero size", "id: a\nsize: {rows: 0, cols: 3}\n", levels.CodeBadSize},
		{"negative spacing", "id: a\ncell_spacing: -1\nsize: {rows: 2, cols: 2}\n", levels.CodeBadSpacing},
		{"hole off grid", "id: a\nsize: {rows: 2, cols: 2}\nholes: [{row: 2, col: 0}]\n", levels.CodeCellOutOfBounds},
		{"goal off grid", "id: a\nsize: {rows: 2, cols: 2}\ngoals: [{row: 0, col: -1}]\n", levels.CodeGoalOutOfBounds},
		{"ragged layout", "id: a\nlayout: ['...', '..']\n", levels.CodeBadLayout},
		{"unknown glyph", "id: a\nlayout: ['.?.']\n", levels.CodeBadLayout},
		{"single dot", "id: a\nlayout: ['.x', 'xx']\n", levels.CodeBadLayout},
		{"stars out of order", "id: a\nsize: {rows: 2, cols: 2}\nstars: {three: 4, two: 2}\n", levels.CodeBadStars},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			loader := &levels.Loader{
				FS:     fstest.MapFS{"level.yaml": {Data: []byte(tc.data)}},
				Root:   ".",
				Origin: "memory",
			}
			_, err := loader.LoadFile("level.yaml")
			if !errors.Is(err, levels.ValidationError{Code: tc.code}) {
				t.Errorf("LoadFile() error = %v, expected %s", err, tc.code)
			}
		})
	}
}

func TestDefaultPack(t *testing.T) {
	lvls, err := levels.Default().LoadAll()
	if err != nil {
		t.Fatalf("Default().LoadAll failed: %v", err)
	}
	if len(lvls) < 5 {
		t.Fatalf("expected at least 5 built-in levels, got %d", len(lvls))
	}

	for _, l := range lvls {
		if len(l.Goals) == 0 {
			t.Errorf("level %s has no goals", l.ID)
		}
	}

	next, ok := levels.Next(lvls, lvls[0].ID)
	if !ok || next.ID != lvls[1].ID {
		t.Errorf("Next(%s) = (%s, %v), expected %s", lvls[0].ID, next.ID, ok, lvls[1].ID)
	}
	if _, ok := levels.Next(lvls, lvls[len(lvls)-1].ID); ok {
		t.Error("Next() after the last level should report false")
	}
}

// Each built-in level can be finished with the catalogue shapes; the
// solutions below are the ones the star thresholds are tuned for.
func TestDefaultPackSolvable(t *testing.T) {
	solutions := map[string][]shape.Shape{
		"01-first-triangle": {
			{shape.C(0, 0), shape.C(2, 0), shape.C(2, 2), shape.C(0, 0)},
		},
		"02-diamond": {
			{shape.C(0, 2), shape.C(2, 0), shape.C(4, 2), shape.C(2, 4), shape.C(0, 2)},
		},
		"03-two-triangles": {
			{shape.C(0, 0), shape.C(2, 0), shape.C(2, 2), shape.C(0, 0)},
			{shape.C(1, 3), shape.C(3, 3), shape.C(3, 1), shape.C(1, 3)},
		},
		"04-the-m": {
			{shape.C(29, 0), shape.C(0, 0), shape.C(10, 10), shape.C(0, 20), shape.C(29, 20)},
		},
		"05-stepping-stones": {
			{shape.C(0, 0), shape.C(4, 0), shape.C(4, 4), shape.C(0, 0)},
		},
	}

	for id, paths := range solutions {
		t.Run(id, func(t *testing.T) {
			lvl, err := levels.Default().LoadByID(id)
			if err != nil {
				t.Fatalf("LoadByID failed: %v", err)
			}
			tr := lvl.NewTracker()
			for _, p := range paths {
				if _, ok := shape.Validate(p); !ok {
					t.Fatalf("solution %v does not match a template", p)
				}
				tr.Commit(p)
			}
			if !tr.Complete() {
				t.Errorf("claimed %v of %v", tr.Claimed(), tr.Goals())
			}
			if tr.Stars() != 3 {
				t.Errorf("Stars() = %d, expected 3", tr.Stars())
			}
		})
	}
}
