package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration, used when no
// YAML can be read.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: TetrisField{
			Width:      10,
			Height:     24,
			HiddenRows: 4,
			SpawnX:     3,
			SpawnY:     3,
		},
		Timing: TetrisTiming{
			GravityTicks:  []int{48, 43, 38, 33, 28, 23, 18, 13, 8, 6, 5, 5, 5, 4, 4, 4, 3, 3, 3, 2},
			LockDelay:     30,
			ClearDelay:    12,
			MaxLockResets: 15,
			SoftDropRows:  1,
		},
		Gameplay: TetrisGameplay{
			PreviewCount: 5,
			MaxLevel:     15,
			SprintLines:  40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultTetrisYAML returns a copy of the embedded default file.
func DefaultTetrisYAML() []byte {
	out := make([]byte, len(defaultTetrisYAML))
	copy(out, defaultTetrisYAML)
	return out
}
