package linedraw

import "github.com/vovakirdan/tui-linedraw/internal/shape"

// FlashKind names the effect currently shown.
type FlashKind string

const (
	FlashNone   FlashKind = ""
	FlashCommit FlashKind = "commit"
	FlashReject FlashKind = "reject"
)

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	LevelID       string
	LevelIndex    int
	Cursor        shape.Cell
	CursorTracing bool
	Drawing       bool
	Pinching      bool
	Preview       []shape.Cell
	Rejected      shape.Shape
	Committed     int
	GoalsClaimed  int
	Goals         int
	Stars         int
	Zoom          float64
	Flash         FlashKind
	Message       string
	Completed     bool
	TooSmall      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{TooSmall: g.tooSmall}
	}

	flash := FlashNone
	switch {
	case g.rejectFlash.active():
		flash = FlashReject
	case g.commitFlash.active():
		flash = FlashCommit
	}

	return Snapshot{
		LevelID:       g.level.ID,
		LevelIndex:    g.levelIndex,
		Cursor:        g.cursor,
		CursorTracing: g.cursorTracing,
		Drawing:       g.ctrl.Drawing(),
		Pinching:      g.ctrl.Pinching(),
		Preview:       append([]shape.Cell(nil), g.preview...),
		Rejected:      g.rejected.Clone(),
		Committed:     len(g.tracker.Committed()),
		GoalsClaimed:  len(g.tracker.Claimed()),
		Goals:         len(g.tracker.Goals()),
		Stars:         g.tracker.Stars(),
		Zoom:          g.camera.Zoom(),
		Flash:         flash,
		Message:       g.message,
		Completed:     g.completed,
		TooSmall:      g.tooSmall,
	}
}
