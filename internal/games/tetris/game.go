// Package tetris adapts the falling-block rules engine to the terminal
// platform: it maps input frames to engine events, paces gravity by level
// and renders the well into a screen buffer.
package tetris

import (
	"math/rand"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the win condition.
type Mode string

const (
	ModeMarathon Mode = "marathon" // play until the stack overflows
	ModeSprint   Mode = "sprint"   // clear the target line count as fast as possible
)

// bannerTicks is how long a clear label stays on screen.
const bannerTicks = 90

// Package-level variables for configuration
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom config file path, used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset, used on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New(ModeMarathon)
	})
	registry.Register("tetris_sprint", func() registry.Game {
		return New(ModeSprint)
	})
}

// Game implements registry.Game on top of the rules engine.
type Game struct {
	mode Mode

	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	fixed      bool
	startLevel int

	engine *core.Game
	rng    *rand.Rand
	seed   int64

	next        []core.Kind
	banner      string
	bannerTimer int
	bannerLines int

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Status
	gameOver    bool
	won         bool
	paused      bool
	finishTicks int64
}

// New creates a game in the given mode. Call Reset before stepping it.
func New(mode Mode) *Game {
	return &Game{mode: mode, tickRate: 60}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "tetris_sprint"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Tetris Sprint"
	}
	return "Tetris"
}

// Description returns a one-line summary for game listings.
func (g *Game) Description() string {
	if g.mode == ModeSprint {
		return "Clear the line target as fast as you can"
	}
	return "Classic marathon: survive while the speed rises"
}

// Mode returns the win condition of this game.
func (g *Game) Mode() Mode {
	return g.mode
}

// loadConfig reads the YAML config and applies the selected preset. A file
// that fails to load or that the engine would reject is replaced by the
// built-in defaults; the error is returned for reporting.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(configPath)
	if err == nil {
		err = ValidateConfig(cfg)
	}
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	return cfg, err
}

// engineConfig converts the host config into the engine's.
func engineConfig(cfg config.TetrisConfig, startLevel int) core.Config {
	return core.Config{
		Width:         cfg.Field.Width,
		Height:        cfg.Field.Height,
		HiddenRows:    cfg.Field.HiddenRows,
		SpawnX:        cfg.Field.SpawnX,
		SpawnY:        cfg.Field.SpawnY,
		GravityTicks:  cfg.Timing.GravityFor(startLevel),
		LockDelay:     cfg.Timing.LockDelay,
		ClearDelay:    cfg.Timing.ClearDelay,
		MaxLockResets: cfg.Timing.MaxLockResets,
		PreviewCount:  cfg.Gameplay.PreviewCount,
		StartLevel:    startLevel,
	}
}

// ValidateConfig checks cfg against both the host rules and the engine's
// geometry rules.
func ValidateConfig(cfg config.TetrisConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return engineConfig(cfg, 1).Validate()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if cfg.TickRate > 0 {
		g.tickRate = cfg.TickRate
	}

	g.cfg, _ = loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.fixed = config.IsFixedPreset(difficultyPreset)
	g.startLevel = g.difficulty.StartLevel(g.cfg.Gameplay.MaxLevel)
	if g.mode == ModeSprint {
		g.startLevel = 1
	}

	g.gameOver = false
	g.won = false
	g.paused = false
	g.finishTicks = 0
	g.next = nil
	g.banner = ""
	g.bannerTimer = 0
	g.bannerLines = 0

	g.engine = core.New(engineConfig(g.cfg, g.startLevel), g.seed, g)
	g.engine.Start()
	if g.engine.State() == core.StateGameOver {
		g.gameOver = true
	}
}

// OnGameEvent receives engine notifications.
func (g *Game) OnGameEvent(ev core.GameEvent) {
	switch ev.Type {
	case core.GameEventNext:
		g.next = ev.Next
	case core.GameEventScoreChange:
		if ev.Score.DeletedLines > g.bannerLines && g.engine != nil {
			g.banner = g.engine.LastClear().String()
			g.bannerTimer = bannerTicks
		}
		g.bannerLines = ev.Score.DeletedLines
	case core.GameEventOverflow:
		g.gameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.engine == nil {
		return platformcore.StepResult{State: g.State()}
	}

	for _, a := range input.Order {
		switch a {
		case platformcore.ActionLeft:
			g.engine.Step(core.EventMoveLeft)
		case platformcore.ActionRight:
			g.engine.Step(core.EventMoveRight)
		case platformcore.ActionSoftDrop:
			for i := 0; i < g.cfg.Timing.SoftDropRows; i++ {
				g.engine.Step(core.EventSoftDrop)
			}
		case platformcore.ActionHardDrop:
			g.engine.Step(core.EventHardDrop)
		case platformcore.ActionRotateCW:
			g.engine.Step(core.EventRotateCW)
		case platformcore.ActionRotateCCW:
			g.engine.Step(core.EventRotateCCW)
		}
	}
	g.engine.Step(core.EventTimeTick)

	if g.bannerTimer > 0 {
		g.bannerTimer--
		if g.bannerTimer == 0 {
			g.banner = ""
		}
	}

	score := g.engine.Score()
	if g.mode == ModeSprint && score.DeletedLines >= g.cfg.Gameplay.SprintLines {
		g.won = true
		g.gameOver = true
		g.finishTicks = g.engine.Ticks()
	}
	if g.engine.State() == core.StateGameOver {
		g.gameOver = true
	}
	if g.gameOver && g.finishTicks == 0 {
		g.finishTicks = g.engine.Ticks()
	}

	g.engine.SetGravity(g.gravity())

	return platformcore.StepResult{State: g.State()}
}

// gravity returns the ticks per row for the current level, scaled by the
// difficulty manager. The fixed preset keeps the starting speed.
func (g *Game) gravity() int {
	if g.fixed {
		return g.cfg.Timing.GravityFor(g.startLevel)
	}
	score := g.engine.Score()
	base := g.cfg.Timing.GravityFor(score.Level)
	return g.difficulty.Gravity(base, score.DeletedLines, int(g.engine.Ticks()))
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	score := g.engine.Score()
	return platformcore.GameState{
		Score:    score.Points,
		Lines:    score.DeletedLines,
		Level:    score.Level,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// RunStats summarizes the current run for storage.
func (g *Game) RunStats() platformcore.RunStats {
	if g.engine == nil {
		return platformcore.RunStats{Seed: g.seed}
	}
	score := g.engine.Score()
	ticks := g.finishTicks
	if ticks == 0 {
		ticks = g.engine.Ticks()
	}
	return platformcore.RunStats{
		Seed:          g.seed,
		Points:        score.Points,
		Lines:         score.DeletedLines,
		Level:         score.Level,
		Tetrises:      score.Tetris,
		TSpins:        score.TSpins(),
		DurationTicks: ticks,
		Won:           g.won,
	}
}
