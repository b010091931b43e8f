// Package levels provides level loading for the line-drawing game.
// Levels are YAML files read from a directory or from the embedded default
// pack.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-linedraw/internal/coverage"
	"github.com/vovakirdan/tui-linedraw/internal/grid"
	"github.com/vovakirdan/tui-linedraw/internal/levels/formats"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

//go:embed data/*.yaml
var defaultPack embed.FS

// Level represents a complete, validated level definition.
// It is immutable for the duration of play.
type Level struct {
	ID           string
	Name         string
	Rows         int
	Cols         int
	CellSpacing  float64
	Interactable []shape.Cell
	Goals        []shape.Cell
	Stars        coverage.StarThresholds
	Metadata     map[string]string
	FilePath     string
}

// ToIndex creates the grid index for the level.
func (l *Level) ToIndex() *grid.Index {
	return grid.NewIndex(l.Rows, l.Cols, l.CellSpacing, l.Interactable, l.Goals)
}

// NewTracker creates a fresh coverage tracker for the level.
func (l *Level) NewTracker() *coverage.Tracker {
	return coverage.NewTracker(l.Goals, l.Stars)
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string // directory inside FS to scan
	Origin string // human-readable source, used in errors
	Logger *log.Logger

	// Stars replaces the built-in thresholds for files without a stars
	// section. The zero value keeps the built-in ones.
	Stars coverage.StarThresholds
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: ".", Origin: root}
}

// Default returns a loader for the levels compiled into the binary.
func Default() *Loader {
	return &Loader{FS: defaultPack, Root: "data", Origin: "embedded"}
}

// WithLogger sets the logger used to report skipped files.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	l.Logger = logger
	return l
}

// WithStars sets the thresholds for files without a stars section.
func (l *Loader) WithStars(stars coverage.StarThresholds) *Loader {
	l.Stars = stars
	return l
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic
// ordering; two files with the same ID are an error.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "file", p, "err", err)
			}
			return nil
		}

		if prev, ok := seen[level.ID]; ok {
			return ValidationError{
				Code:    CodeDuplicateID,
				Message: fmt.Sprintf("level id %q defined in both %s and %s", level.ID, prev, p),
			}
		}
		seen[level.ID] = p

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Origin, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file. The path is relative
// to the loader's file system.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		var le *formats.LayoutError
		if errors.As(err, &le) {
			err = ValidationError{Code: CodeBadLayout, Message: le.Error()}
		}
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}
	if !parsed.StarsSet && l.Stars != (coverage.StarThresholds{}) {
		parsed.Stars = l.Stars
	}

	if err := Validate(parsed); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", p, err)
	}

	return Level{
		ID:           parsed.ID,
		Name:         parsed.Name,
		Rows:         parsed.Rows,
		Cols:         parsed.Cols,
		CellSpacing:  parsed.CellSpacing,
		Interactable: parsed.Interactable,
		Goals:        parsed.Goals,
		Stars:        parsed.Stars,
		Metadata:     parsed.Metadata,
		FilePath:     path.Join(l.Origin, p),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// Next returns the level that follows id in sorted order.
func Next(levels []Level, id string) (Level, bool) {
	for i, lvl := range levels {
		if lvl.ID == id && i+1 < len(levels) {
			return levels[i+1], true
		}
	}
	return Level{}, false
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
