package tetris

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// useConfig points the package at a config file holding extra, or the
// embedded defaults when extra is empty, so tests never read the user's home
// directory.
func useConfig(t *testing.T, extra string) {
	t.Helper()
	data := config.DefaultTetrisYAML()
	if extra != "" {
		data = []byte(extra)
	}
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset(config.DifficultyNormal)
	})
}

func newGame(t *testing.T, mode Mode, seed int64) *Game {
	t.Helper()
	g := New(mode)
	g.Reset(platformcore.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_sprint"} {
		info, ok := registry.Info(id)
		if !ok {
			t.Fatalf("%s is not registered", id)
		}
		if info.Description == "" {
			t.Errorf("%s has no description", id)
		}
	}

	g, err := registry.Create("tetris_sprint")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "tetris_sprint" || g.Title() != "Tetris Sprint" {
		t.Errorf("unexpected sprint game %q / %q", g.ID(), g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, "")

	g1 := newGame(t, ModeMarathon, 12345)
	g2 := newGame(t, ModeMarathon, 12345)

	script := []platformcore.Action{
		platformcore.ActionLeft,
		platformcore.ActionRotateCW,
		platformcore.ActionRight,
		platformcore.ActionSoftDrop,
		platformcore.ActionHardDrop,
	}
	for i := 0; i < 600; i++ {
		in := platformcore.NewInputFrame()
		if i%20 == 0 {
			in.Set(script[(i/20)%len(script)])
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Tick != 600 && s1.State != StateGameOver {
		t.Errorf("Tick = %d, expected 600", s1.Tick)
	}
}

func TestSoftDropMovesPiece(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, ModeMarathon, 1)

	before := g.Snapshot().Piece.Y
	g.Step(frame(platformcore.ActionSoftDrop))

	if got := g.Snapshot().Piece.Y; got != before+1 {
		t.Errorf("Piece.Y = %d, expected %d", got, before+1)
	}
}

func TestHardDropLocksAndScores(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, ModeMarathon, 7)

	g.Step(frame(platformcore.ActionHardDrop))

	snap := g.Snapshot()
	if snap.Stack != 4 {
		t.Errorf("Stack = %d, expected 4 cells", snap.Stack)
	}
	if snap.Score <= 0 {
		t.Errorf("hard drop should score, got %d", snap.Score)
	}

	stats := g.RunStats()
	if stats.Points != g.State().Score || stats.Seed != 7 {
		t.Errorf("RunStats = %+v, state score %d", stats, g.State().Score)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, ModeMarathon, 3)

	g.Step(frame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	tick := g.Snapshot().Tick
	for i := 0; i < 100; i++ {
		g.Step(frame(platformcore.ActionHardDrop))
	}
	if g.Snapshot().Tick != tick || g.Snapshot().Stack != 0 {
		t.Error("paused game should not advance")
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, ModeMarathon, 99)

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(platformcore.ActionHardDrop))
	}
	if !g.State().GameOver {
		t.Fatal("stacking in one column should top out")
	}
	if g.State().Won {
		t.Error("marathon top out is not a win")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}

	// Input other than restart is ignored once the game is over.
	score := g.State().Score
	g.Step(frame(platformcore.ActionHardDrop))
	if g.State().Score != score {
		t.Error("score changed after game over")
	}

	g.Step(frame(platformcore.ActionRestart))
	if g.State().GameOver {
		t.Error("restart should begin a new run")
	}
	if snap := g.Snapshot(); snap.Tick != 0 || snap.Stack != 0 {
		t.Errorf("restart left state behind: %+v", snap)
	}
}

func TestSprintWinsAtLineTarget(t *testing.T) {
	useConfig(t, "gameplay:\n  sprint_lines: 1\n")
	g := newGame(t, ModeSprint, 5)

	// Fill the bottom row around the cells the active piece will land in.
	field := g.engine.Field()
	bottom := field.Height() - 1
	landing := map[int]bool{}
	for _, c := range g.engine.GhostPiece().Cells {
		if c.Y == bottom {
			landing[c.X] = true
		}
	}
	for x := 0; x < field.Width(); x++ {
		if !landing[x] {
			field.Set(x, bottom)
		}
	}

	g.Step(frame(platformcore.ActionHardDrop))

	state := g.State()
	if !state.Won || !state.GameOver {
		t.Fatalf("expected sprint win, got %+v", state)
	}
	if state.Lines != 1 {
		t.Errorf("Lines = %d, expected 1", state.Lines)
	}
	stats := g.RunStats()
	if !stats.Won || stats.DurationTicks != 1 {
		t.Errorf("RunStats = %+v, expected a won run of 1 tick", stats)
	}
}

func TestDifficultyPresetStartLevel(t *testing.T) {
	useConfig(t, "")
	SetDifficultyPreset(config.DifficultyHard)

	if got := newGame(t, ModeMarathon, 1).State().Level; got != 11 {
		t.Errorf("hard marathon starts at level %d, expected 11", got)
	}
	if got := newGame(t, ModeSprint, 1).State().Level; got != 1 {
		t.Errorf("sprint starts at level %d, expected 1", got)
	}

	SetDifficultyPreset(config.DifficultyFixed)
	g := newGame(t, ModeMarathon, 1)
	if got, want := g.Snapshot().Gravity, g.cfg.Timing.GravityFor(1); got != want {
		t.Errorf("fixed gravity = %d, expected %d", got, want)
	}
}

func TestRender(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, ModeMarathon, 11)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SCORE", "LEVEL", "NEXT", "┌", "██"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}

	g.Step(frame(platformcore.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay not drawn")
	}

	small := platformcore.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestRenderSprintTimer(t *testing.T) {
	useConfig(t, "")
	g := newGame(t, ModeSprint, 11)

	for i := 0; i < 90; i++ {
		g.Step(platformcore.NewInputFrame())
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "0:01.50") {
		t.Error("sprint timer not drawn")
	}
	if !strings.Contains(out, "0/40") {
		t.Error("sprint line target not drawn")
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Field.SpawnX = 8
	if err := ValidateConfig(cfg); err == nil {
		t.Error("spawn box outside the field should fail")
	}

	cfg = config.DefaultTetrisConfig()
	cfg.Timing.GravityTicks = nil
	if err := ValidateConfig(cfg); err == nil {
		t.Error("empty gravity table should fail")
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	useConfig(t, "field:\n  hidden_rows: 1\n")

	cfg, err := loadConfig()
	if err == nil {
		t.Fatal("a single hidden row should be rejected")
	}
	def := config.DefaultTetrisConfig()
	if cfg.Field.HiddenRows != def.Field.HiddenRows {
		t.Errorf("hidden rows = %d, expected default %d", cfg.Field.HiddenRows, def.Field.HiddenRows)
	}

	g := newGame(t, ModeMarathon, 1)
	ecfg := g.engine.Config()
	if ecfg.LockDelay != def.Timing.LockDelay {
		t.Errorf("engine lock delay = %d, expected %d", ecfg.LockDelay, def.Timing.LockDelay)
	}
	if ecfg.ClearDelay != def.Timing.ClearDelay {
		t.Errorf("engine clear delay = %d, expected %d", ecfg.ClearDelay, def.Timing.ClearDelay)
	}
	if ecfg.StartLevel != g.startLevel {
		t.Errorf("engine start level = %d, expected %d", ecfg.StartLevel, g.startLevel)
	}
}
