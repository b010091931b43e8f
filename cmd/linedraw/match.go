package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

var matchCmd = &cobra.Command{
	Use:   "match <path>",
	Short: "Check a path against the shape catalogue",
	Long: `Match a path of grid cells against the permitted shapes, exactly as a
trace released in the game would be.

The path is a list of row,col pairs separated by spaces or semicolons.
Closed shapes repeat their first cell at the end.

Examples:
  linedraw match "0,0 2,0 2,2 0,0"
  linedraw match "0,1; 1,2; 2,1; 1,0; 0,1"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMatch,
}

func runMatch(_ *cobra.Command, args []string) {
	path, err := parseCells(strings.Join(args, " "))
	exitOnError("parsing path", err)

	path = shape.Dedupe(path)
	m, ok := shape.MatchPath(path)
	if !ok {
		fmt.Printf("No match: %v is not one of %s\n", path, strings.Join(shape.Names(), ", "))
		os.Exit(1)
	}

	fmt.Printf("Match: %s\n", m.Template.Name())
	fmt.Printf("  scale:       %d\n", m.Scale)
	fmt.Printf("  direction:   %s\n", m.Transform.Direction)
	if m.Transform.Cyclic {
		fmt.Printf("  start shift: %d\n", m.Transform.Shift)
	}
	fmt.Printf("  orientation: %d of %d\n", m.Orientation+1, m.Template.Orientations())
	fmt.Printf("  normalized:  %v\n", m.Normalized)
}

// parseCells parses "r,c r,c ..." into a path.
func parseCells(s string) (shape.Shape, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty path")
	}

	path := make(shape.Shape, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "()[]")
		row, col, found := strings.Cut(f, ",")
		if !found {
			return nil, fmt.Errorf("cell %q: expected row,col", f)
		}
		r, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return nil, fmt.Errorf("cell %q: bad row: %w", f, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return nil, fmt.Errorf("cell %q: bad column: %w", f, err)
		}
		path = append(path, shape.C(r, c))
	}
	return path, nil
}
