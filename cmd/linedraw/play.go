package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/games/linedraw"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
	"github.com/vovakirdan/tui-linedraw/internal/platform/tui"
	"github.com/vovakirdan/tui-linedraw/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start playing. Without a level ID the level picker opens first.

Controls:
  Mouse drag          - Trace a shape (release to finish)
  Arrows/WASD/HJKL    - Move the cursor
  Space               - Start a trace / add the dot under the cursor
  Enter               - Finish the trace
  Esc, right click    - Drop the trace
  +/-, mouse wheel    - Zoom
  Middle drag         - Pan
  R                   - Restart the level
  N                   - Next level (once complete)
  B                   - Back to the level picker
  Ctrl+S              - Save a screenshot to ~/.linedraw/screenshots
  Q/Ctrl+C            - Quit

Examples:
  linedraw play
  linedraw play 03-two-triangles
  linedraw play --levels ./my-levels
  linedraw play --config ./my-linedraw.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	logger, err := newLogger(true)
	exitOnError("logger", err)

	lvls, err := loadLevels(logger)
	exitOnError("loading levels", err)

	startID := ""
	if len(args) == 1 {
		startID = args[0]
		if !hasLevel(lvls, startID) {
			exitOnError("play", unknownLevel(startID))
		}
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if os.Getenv("NO_COLOR") != "" {
		tui.SetTheme(tui.MonochromeTheme())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.SessionOptions{
		Levels:  lvls,
		Store:   store,
		NewGame: gameFactory(lvls, logger),
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: gameConfig.Display.TickRate,
		},
		Logger:  logger,
		StartID: startID,
	})

	if store != nil {
		store.Close()
	}
	exitOnError("running game", runErr)
}

// gameFactory returns a constructor for games sharing one level pack.
func gameFactory(lvls []levels.Level, logger *log.Logger) func(string) tui.Game {
	return func(levelID string) tui.Game {
		return linedraw.New(linedraw.Options{
			Config:  gameConfig,
			Levels:  lvls,
			StartID: levelID,
			Logger:  logger,
		})
	}
}
