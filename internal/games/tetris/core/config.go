package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the constants the engine is built with. Durations are counted
// in TimeTick events.
type Config struct {
	Width      int // columns
	Height     int // rows, hidden buffer included
	HiddenRows int // rows above the visible top
	SpawnX     int // pivot column of a new piece
	SpawnY     int // pivot row of a new piece

	GravityTicks  int // ticks per automatic one-row fall
	LockDelay     int // landing ticks tolerated before a forced lock
	ClearDelay    int // ticks spent in StateClearing, 0 resolves immediately
	MaxLockResets int // rotations per piece that may restart the lock delay

	PreviewCount int // kinds reported in GameEventNext, 1..MaxPreview
	StartLevel   int // level at zero cleared lines
}

// DefaultConfig returns the standard 10x20 playfield with a 4-row hidden
// buffer and one-row-per-tick gravity.
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        24,
		HiddenRows:    4,
		SpawnX:        3,
		SpawnY:        3,
		GravityTicks:  1,
		LockDelay:     2,
		ClearDelay:    0,
		MaxLockResets: 15,
		PreviewCount:  5,
		StartLevel:    1,
	}
}

// VisibleRows returns the number of rows below the hidden buffer.
func (c Config) VisibleRows() int {
	return c.Height - c.HiddenRows
}

// Validate reports the first impossible setting.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("%w: width %d is narrower than a bar piece", ErrInvalidConfig, c.Width)
	case c.HiddenRows < 2:
		return fmt.Errorf("%w: need at least 2 hidden rows, got %d", ErrInvalidConfig, c.HiddenRows)
	case c.VisibleRows() < 4:
		return fmt.Errorf("%w: height %d leaves fewer than 4 visible rows", ErrInvalidConfig, c.Height)
	case c.SpawnX < 0 || c.SpawnX+4 > c.Width:
		return fmt.Errorf("%w: spawn column %d does not fit a 4-wide box", ErrInvalidConfig, c.SpawnX)
	case c.SpawnY < 0 || c.SpawnY >= c.HiddenRows:
		return fmt.Errorf("%w: spawn row %d must be inside the hidden buffer", ErrInvalidConfig, c.SpawnY)
	case c.GravityTicks < 1:
		return fmt.Errorf("%w: gravity ticks must be positive, got %d", ErrInvalidConfig, c.GravityTicks)
	case c.LockDelay < 0 || c.ClearDelay < 0 || c.MaxLockResets < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	case c.PreviewCount < 1 || c.PreviewCount > MaxPreview:
		return fmt.Errorf("%w: preview count %d outside 1..%d", ErrInvalidConfig, c.PreviewCount, MaxPreview)
	case c.StartLevel < 1:
		return fmt.Errorf("%w: start level must be at least 1, got %d", ErrInvalidConfig, c.StartLevel)
	}
	return nil
}
