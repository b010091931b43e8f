package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

// Palette used by the line-drawing board.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Semantic aliases for board elements.
const (
	ColorDot       = ColorGray
	ColorGoal      = ColorYellow
	ColorClaimed   = ColorBrightGreen
	ColorPreview   = ColorBrightCyan
	ColorCommitted = ColorWhite
	ColorHighlight = ColorBrightYellow
	ColorReject    = ColorBrightRed
	ColorCursor    = ColorMagenta
)

// Fade returns the color a flash effect shows at the given intensity
// (1 = full flash, 0 = settled). The palette has no true alpha, so the
// effect steps between a bright and a base color.
func Fade(bright, base Color, intensity float32) Color {
	if intensity >= 0.5 {
		return bright
	}
	return base
}
