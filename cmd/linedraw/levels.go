package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-linedraw/internal/games/linedraw"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
	"github.com/vovakirdan/tui-linedraw/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long: `Shows every level of the selected pack with its size, goal count,
star targets and your best result.

Examples:
  linedraw levels
  linedraw levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, err := newLogger(false)
	exitOnError("logger", err)

	lvls, err := loadLevels(logger)
	exitOnError("loading levels", err)

	best := map[string]storage.LevelResult{}
	if store, openErr := storage.Open(flagDBPath); openErr == nil {
		if b, bestErr := store.AllBest(); bestErr == nil {
			best = b
		} else {
			logger.Warn("could not load best results", "error", bestErr)
		}
		store.Close()
	} else {
		logger.Warn("could not open results database", "error", openErr)
	}

	// Calculate column widths
	idWidth, nameWidth := len("ID"), len("Name")
	for _, l := range lvls {
		idWidth = max(idWidth, len(l.ID))
		nameWidth = max(nameWidth, len(l.Name))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %-5s  %-5s  %-7s  %s\n", idWidth, "ID", nameWidth, "Name", "Size", "Goals", "Targets", "Best")
	fmt.Printf("  %s  %s  %s  %s  %s  %s\n",
		strings.Repeat("-", idWidth), strings.Repeat("-", nameWidth), "-----", "-----", "-------", "----")

	for _, l := range lvls {
		bestText := "-"
		if r, ok := best[l.ID]; ok {
			bestText = fmt.Sprintf("%s (%d shapes)", linedraw.StarsText(r.Stars), r.ShapesUsed)
		}
		fmt.Printf("  %-*s  %-*s  %-5s  %-5d  %-7s  %s\n",
			idWidth, l.ID,
			nameWidth, l.Name,
			fmt.Sprintf("%dx%d", l.Rows, l.Cols),
			len(l.Goals),
			fmt.Sprintf("%d / %d", l.Stars.Three, l.Stars.Two),
			bestText,
		)
	}

	fmt.Println()
	fmt.Println("Usage: linedraw play <id>")
}

func hasLevel(lvls []levels.Level, id string) bool {
	for _, l := range lvls {
		if l.ID == id {
			return true
		}
	}
	return false
}

func unknownLevel(id string) error {
	return fmt.Errorf("unknown level %q (run 'linedraw levels' to see available levels)", id)
}
