package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-linedraw/internal/coverage"
	"github.com/vovakirdan/tui-linedraw/internal/trace"
)

//go:embed defaults/linedraw.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	stars := coverage.DefaultStarThresholds()
	return GameConfig{
		Input: InputConfig{
			SnapRadiusFactor: trace.DefaultSnapRadiusFactor,
		},
		Camera: CameraConfig{
			MinZoom:  0.5,
			MaxZoom:  3.0,
			ZoomStep: 0.1,
			Aspect:   2.0,
		},
		Scoring: ScoringConfig{
			ThreeStars: stars.Three,
			TwoStars:   stars.Two,
		},
		Effects: EffectsConfig{
			CommitFlashSecs: 0.6,
			RejectFlashSecs: 0.4,
		},
		Display: DisplayConfig{
			TickRate: 30,
		},
	}
}

// Sanitize replaces out-of-range values with their defaults, so a partial
// or hand-edited file never produces an unusable game.
func (c *GameConfig) Sanitize() {
	def := DefaultGameConfig()

	if c.Input.SnapRadiusFactor <= 0 || c.Input.SnapRadiusFactor > 1 {
		c.Input.SnapRadiusFactor = def.Input.SnapRadiusFactor
	}

	if c.Camera.MinZoom <= 0 {
		c.Camera.MinZoom = def.Camera.MinZoom
	}
	if c.Camera.MaxZoom < c.Camera.MinZoom {
		c.Camera.MinZoom, c.Camera.MaxZoom = def.Camera.MinZoom, def.Camera.MaxZoom
	}
	if c.Camera.ZoomStep <= 0 {
		c.Camera.ZoomStep = def.Camera.ZoomStep
	}
	if c.Camera.Aspect <= 0 {
		c.Camera.Aspect = def.Camera.Aspect
	}

	if !c.Scoring.Thresholds().Valid() {
		c.Scoring = def.Scoring
	}

	if c.Effects.CommitFlashSecs < 0 {
		c.Effects.CommitFlashSecs = def.Effects.CommitFlashSecs
	}
	if c.Effects.RejectFlashSecs < 0 {
		c.Effects.RejectFlashSecs = def.Effects.RejectFlashSecs
	}

	if c.Display.TickRate <= 0 || c.Display.TickRate > 120 {
		c.Display.TickRate = def.Display.TickRate
	}
}
