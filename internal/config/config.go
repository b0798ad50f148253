// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Field      TetrisField      `yaml:"field"`
	Timing     TetrisTiming     `yaml:"timing"`
	Gameplay   TetrisGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisField defines the playfield geometry.
type TetrisField struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`      // including hidden rows
	HiddenRows int `yaml:"hidden_rows"` // buffer above the visible top
	SpawnX     int `yaml:"spawn_x"`
	SpawnY     int `yaml:"spawn_y"`
}

// TetrisTiming defines tick-based durations. One tick is one platform
// simulation step (1/60 s at the default tick rate).
type TetrisTiming struct {
	GravityTicks  []int `yaml:"gravity_ticks"`   // ticks per row, index 0 is level 1; the last entry repeats
	LockDelay     int   `yaml:"lock_delay"`      // landing ticks before a forced lock
	ClearDelay    int   `yaml:"clear_delay"`     // ticks the cleared rows stay visible
	MaxLockResets int   `yaml:"max_lock_resets"` // rotations per piece that restart the lock delay
	SoftDropRows  int   `yaml:"soft_drop_rows"`  // rows moved per soft-drop key press
}

// TetrisGameplay defines rules outside the engine timing.
type TetrisGameplay struct {
	PreviewCount int `yaml:"preview_count"` // upcoming pieces shown, 1..7
	MaxLevel     int `yaml:"max_level"`     // highest level a difficulty preset may start at
	SprintLines  int `yaml:"sprint_lines"`  // line target of the sprint mode
}

// GravityFor returns the gravity ticks for a 1-based level.
func (t TetrisTiming) GravityFor(level int) int {
	if len(t.GravityTicks) == 0 {
		return 1
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(t.GravityTicks) {
		i = len(t.GravityTicks) - 1
	}
	return t.GravityTicks[i]
}

// Validate checks the values the engine cannot check itself.
func (c TetrisConfig) Validate() error {
	if len(c.Timing.GravityTicks) == 0 {
		return errors.New("timing.gravity_ticks must not be empty")
	}
	for i, g := range c.Timing.GravityTicks {
		if g < 1 {
			return fmt.Errorf("timing.gravity_ticks[%d] must be positive, got %d", i, g)
		}
	}
	if c.Timing.SoftDropRows < 1 {
		return fmt.Errorf("timing.soft_drop_rows must be positive, got %d", c.Timing.SoftDropRows)
	}
	if c.Gameplay.MaxLevel < 1 {
		return fmt.Errorf("gameplay.max_level must be positive, got %d", c.Gameplay.MaxLevel)
	}
	if c.Gameplay.SprintLines < 1 {
		return fmt.Errorf("gameplay.sprint_lines must be positive, got %d", c.Gameplay.SprintLines)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // lines or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // extra gravity speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
