// Package config provides YAML-based game configuration loading for the
// line drawing game.
package config

import "github.com/vovakirdan/tui-linedraw/internal/coverage"

// GameConfig contains all tunable settings of the game.
type GameConfig struct {
	Input   InputConfig   `yaml:"input"`
	Camera  CameraConfig  `yaml:"camera"`
	Scoring ScoringConfig `yaml:"scoring"`
	Effects EffectsConfig `yaml:"effects"`
	Display DisplayConfig `yaml:"display"`
}

// InputConfig defines how pointer positions snap to the grid.
type InputConfig struct {
	SnapRadiusFactor float64 `yaml:"snap_radius_factor"` // fraction of cell spacing
}

// CameraConfig defines zoom limits and the terminal cell aspect ratio.
type CameraConfig struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
	Aspect   float64 `yaml:"aspect"` // terminal cell height / width
}

// ScoringConfig holds the star thresholds used by levels that set none.
type ScoringConfig struct {
	ThreeStars int `yaml:"three_stars"`
	TwoStars   int `yaml:"two_stars"`
}

// Thresholds converts the scoring section into tracker thresholds.
func (s ScoringConfig) Thresholds() coverage.StarThresholds {
	return coverage.StarThresholds{Three: s.ThreeStars, Two: s.TwoStars}
}

// EffectsConfig defines flash durations in seconds.
type EffectsConfig struct {
	CommitFlashSecs float64 `yaml:"commit_flash_secs"`
	RejectFlashSecs float64 `yaml:"reject_flash_secs"`
}

// DisplayConfig defines rendering parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}
