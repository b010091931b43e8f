// linedraw is a terminal puzzle: trace permitted shapes through a grid of
// dots until every goal dot is covered.
//
// Usage:
//
//	linedraw play [level]     - Play (level picker when no level is given)
//	linedraw levels           - List levels and your best results
//	linedraw match "r,c ..."  - Check a path against the shape catalogue
//	linedraw scores [level]   - Show recorded results
//	linedraw serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 30)
//	--db <path>          - Set database path (default: ~/.linedraw/results.db)
//	--levels <dir>       - Load levels from a directory instead of the built-in pack
//	--config <path>      - Use a custom game config YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
//
// Every flag can also be set through a LINEDRAW_* environment variable
// (e.g. LINEDRAW_DB), read from the process environment or a .env file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-linedraw/internal/config"
	"github.com/vovakirdan/tui-linedraw/internal/levels"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLevels   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	gameConfig config.GameConfig
	logFile    *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linedraw",
	Short: "Line Draw - trace shapes through a grid of dots",
	Long: `Line Draw is a terminal puzzle. Drag the mouse (or steer the cursor)
across the dots to trace a Triangle, a Rhombus or an M-Shape. Every traced
shape that matches covers the goal dots it passes through. Cover all goals
with as few shapes as possible to earn three stars.

Available commands:
  play     - Play the game
  levels   - List levels
  match    - Check a path against the shape catalogue
  scores   - View recorded results
  serve    - Start SSH server for remote play

Examples:
  linedraw play
  linedraw play 02-diamond
  linedraw match "0,0 2,0 2,2 0,0"
  linedraw serve --ssh :2222`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.linedraw/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with level YAML files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads .env, applies environment overrides and reads the game
// config.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := applyEnv(cmd); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	gameConfig = cfg
	return nil
}

// applyEnv sets every flag the user did not pass from LINEDRAW_<NAME>.
func applyEnv(cmd *cobra.Command) error {
	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || firstErr != nil {
			return
		}
		key := "LINEDRAW_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if v, ok := os.LookupEnv(key); ok {
			if err := cmd.Flags().Set(f.Name, v); err != nil {
				firstErr = fmt.Errorf("%s: %w", key, err)
			}
		}
	})
	return firstErr
}

// newLogger builds the application logger. Without a log file, interactive
// commands discard logs because the terminal belongs to the UI.
func newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "linedraw",
		Level:           level,
	}), nil
}

// loadLevels reads the level pack chosen by --levels. Files without their
// own stars section use the configured thresholds.
func loadLevels(logger *log.Logger) ([]levels.Level, error) {
	loader := levels.Default()
	if flagLevels != "" {
		loader = levels.NewLoader(flagLevels)
	}
	lvls, err := loader.
		WithLogger(logger).
		WithStars(gameConfig.Scoring.Thresholds()).
		LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found in %s", loader.Origin)
	}
	return lvls, nil
}

// exitOnError prints err and exits when it is not nil.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", context, err)
	os.Exit(1)
}
