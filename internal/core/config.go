package core

// RuntimeConfig describes the terminal and pacing for a replay session.
type RuntimeConfig struct {
	ScreenW        int  // Screen width in characters
	ScreenH        int  // Screen height in characters
	StepsPerSecond int  // Commands executed per second while playing
	Autoplay       bool // Start playing immediately instead of paused
}

// DefaultConfig returns an 80x24 screen replaying 8 commands per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		StepsPerSecond: 8,
		Autoplay:       true,
	}
}

// Speed limits for interactive replay.
const (
	MinStepsPerSecond = 1
	MaxStepsPerSecond = 120
)

// ReplayStatus is what the status line of a replay shows.
type ReplayStatus struct {
	LevelID   string
	Bonus     int
	Cursor    int // Index of the next command
	Total     int // Number of commands in the stream
	Locks     int
	Cleared   int
	GameOvers int
	Paused    bool
	Finished  bool
	Err       error // Fatal spawn failure, if any
}
