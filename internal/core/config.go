package core

import (
	"fmt"
	"time"
)

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 asks the platform for a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the status the platform reads after every tick.
type GameState struct {
	Score    int  // points
	Lines    int  // cleared rows
	Level    int
	GameOver bool // the run has ended, by topping out or by finishing
	Won      bool // the run ended by reaching its goal
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}

// RunStats summarizes a finished run for storage.
type RunStats struct {
	Seed          int64
	Points        int
	Lines         int
	Level         int
	Tetrises      int
	TSpins        int
	DurationTicks int64
	Won           bool
}

// TicksToDuration converts a tick count at tickRate to wall-clock time. A
// non-positive rate counts as 60.
func TicksToDuration(ticks int64, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Duration(ticks) * time.Second / time.Duration(tickRate)
}

// FormatDuration renders d as m:ss.cc.
func FormatDuration(d time.Duration) string {
	centis := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", centis/6000, centis/100%60, centis%100)
}
