package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-linedraw/internal/games/linedraw"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
	"github.com/vovakirdan/tui-linedraw/internal/platform/tui"
	"github.com/vovakirdan/tui-linedraw/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recorded results",
	Long: `Without a level, show a summary of every level. With a level, list
its 10 most recent results.

Examples:
  linedraw scores
  linedraw scores 02-diamond
  linedraw scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	logger, err := newLogger(flagScoresTUI)
	exitOnError("logger", err)

	lvls, err := loadLevels(logger)
	exitOnError("loading levels", err)

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if !hasLevel(lvls, levelID) {
			exitOnError("scores", unknownLevel(levelID))
		}
	}

	store, err := storage.Open(flagDBPath)
	exitOnError("opening results database", err)
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, lvls, levelID, width, height); err != nil {
			store.Close()
			exitOnError("running scoreboard", err)
		}
		return
	}

	if levelID == "" {
		err = printSummary(store, lvls)
	} else {
		err = printResults(store, lvls, levelID)
	}
	if err != nil {
		store.Close()
		exitOnError("retrieving results", err)
	}
}

func printSummary(store *storage.Store, lvls []levels.Level) error {
	stats, err := store.GetAllLevelStats()
	if err != nil {
		return err
	}

	fmt.Println("Results")
	fmt.Println()
	fmt.Printf("  %-24s  %-6s  %-6s  %-6s  %s\n", "Level", "Played", "Best", "Fewest", "Last played")
	fmt.Printf("  %-24s  %-6s  %-6s  %-6s  %s\n", "-----", "------", "----", "------", "-----------")

	done := 0
	for _, l := range lvls {
		st, ok := stats[l.ID]
		if !ok {
			fmt.Printf("  %-24s  %-6s  %-6s  %-6s  %s\n", l.ID, "0", "-", "-", "-")
			continue
		}
		done++
		// Stars are multi-byte; pad by hand.
		fmt.Printf("  %-24s  %-6d  %s     %-6d  %s\n",
			l.ID, st.Completions, linedraw.StarsText(st.BestStars), st.FewestShapes,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Completed %d of %d levels.\n", done, len(lvls))
	return nil
}

func printResults(store *storage.Store, lvls []levels.Level, levelID string) error {
	results, err := store.Results(levelID, 10)
	if err != nil {
		return err
	}

	name := levelID
	for _, l := range lvls {
		if l.ID == levelID {
			name = l.Name
		}
	}
	fmt.Printf("Results - %s\n", name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'linedraw play %s' to set the first one!\n", levelID)
		return nil
	}

	fmt.Printf("  %-5s  %-6s  %s\n", "Stars", "Shapes", "Date")
	fmt.Printf("  %-5s  %-6s  %s\n", "-----", "------", "----")
	for _, r := range results {
		fmt.Printf("  %s    %-6d  %s\n", linedraw.StarsText(r.Stars), r.ShapesUsed, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	best, err := store.BestResult(levelID)
	if err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best: %s with %d shapes\n", linedraw.StarsText(best.Stars), best.ShapesUsed)
	}
	return nil
}
