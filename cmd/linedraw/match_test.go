package main

import (
	"testing"

	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

func TestParseCells(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected shape.Shape
	}{
		{"spaces", "0,0 2,0 2,2 0,0", shape.Shape{shape.C(0, 0), shape.C(2, 0), shape.C(2, 2), shape.C(0, 0)}},
		{"semicolons", "0,1; 1,2;2,1", shape.Shape{shape.C(0, 1), shape.C(1, 2), shape.C(2, 1)}},
		{"parentheses", "(3,4) (5,6)", shape.Shape{shape.C(3, 4), shape.C(5, 6)}},
		{"negative", "-1,0 0,-1", shape.Shape{shape.C(-1, 0), shape.C(0, -1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCells(tc.input)
			if err != nil {
				t.Fatalf("parseCells(%q) error: %v", tc.input, err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("parseCells(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseCellsErrors(t *testing.T) {
	for _, input := range []string{"", "  ", "1", "a,1", "1,b", "1;2", "(5, 6)"} {
		if got, err := parseCells(input); err == nil {
			t.Errorf("parseCells(%q) = %v, expected an error", input, got)
		}
	}
}

func TestParsedPathMatches(t *testing.T) {
	path, err := parseCells("0,1 1,0 2,1 1,2 0,1")
	if err != nil {
		t.Fatalf("parseCells() error: %v", err)
	}
	m, ok := shape.MatchPath(path)
	if !ok || m.Template.Name() != shape.NameRhombus {
		t.Errorf("MatchPath(%v) = %v, %v; expected Rhombus", path, m.Template.Name(), ok)
	}
}
