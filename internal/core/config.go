package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status the game reports to the platform after each tick.
type GameState struct {
	LevelID      string
	Goals        int  // total goals on the level
	GoalsClaimed int  // goals covered by committed shapes
	ShapesUsed   int  // committed shapes so far
	Stars        int  // current rating, 1..3
	Completed    bool // every goal claimed
	Quit         bool // player asked to leave the level
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// JustCompleted is set on the tick the level becomes complete.
	JustCompleted bool
}
