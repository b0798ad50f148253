package config

import "math"

// DifficultyManager turns a DifficultyConfig into a starting level and a
// gravity scale that tightens as lines are cleared or time passes.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(lines int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "lines":
		progress = float64(lines) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StartLevel maps the initial difficulty onto a game level in
// [1, maxLevel].
func (d *DifficultyManager) StartLevel(maxLevel int) int {
	if maxLevel <= 1 {
		return 1
	}
	return 1 + int(math.Round(d.initialLevel*float64(maxLevel-1)))
}

// Gravity scales the base ticks-per-row down as difficulty rises. The
// result is never below one tick.
func (d *DifficultyManager) Gravity(baseTicks int, lines int, ticks int) int {
	if !d.IsEnabled() {
		return max(baseTicks, 1)
	}
	speed := 1.0 + (d.Level(lines, ticks)-d.initialLevel)*d.cfg.Scaling.SpeedMultiplier
	if speed <= 0 {
		speed = 1
	}
	return max(int(math.Round(float64(baseTicks)/speed)), 1)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
