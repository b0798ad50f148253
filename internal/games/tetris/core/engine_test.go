package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// startGame creates and starts an engine that records its events.
func startGame(t *testing.T, cfg core.Config) (*core.Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := core.New(cfg, 42, rec)
	g.Start()
	require.Equal(t, core.StateFalling, g.State())
	return g, rec
}

func steps(g *core.Game, ev core.Event, n int) {
	for i := 0; i < n; i++ {
		g.Step(ev)
	}
}

func TestNewFallsBackToDefaultConfig(t *testing.T) {
	g := core.New(core.Config{Width: 2}, 1, nil)
	assert.Equal(t, core.DefaultConfig(), g.Config())
}

func TestStepBeforeStartIsNoop(t *testing.T) {
	rec := &recorder{}
	g := core.New(core.DefaultConfig(), 1, rec)

	g.Step(core.EventTimeTick)
	g.Step(core.EventHardDrop)

	assert.Equal(t, core.StateIdle, g.State())
	assert.Empty(t, rec.Events)
}

func TestStartEmitsStartNextScore(t *testing.T) {
	g, rec := startGame(t, core.DefaultConfig())

	assert.Equal(t, []core.GameEventType{
		core.GameEventStart,
		core.GameEventNext,
		core.GameEventScoreChange,
	}, rec.Types())
	assert.Len(t, rec.Events[1].Next, core.DefaultConfig().PreviewCount)
	assert.Equal(t, g.Upcoming(), rec.Events[1].Next)
	assert.Equal(t, core.Score{Level: 1}, rec.Events[2].Score)

	p := g.ActivePiece()
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 3, p.Y)
	assert.Equal(t, core.RotationSpawn, p.Rotation)
}

func TestRestartResetsState(t *testing.T) {
	g, rec := startGame(t, core.DefaultConfig())
	g.Step(core.EventHardDrop)
	require.NotZero(t, g.Score().Points)

	rec.Reset()
	g.Start()

	assert.Equal(t, core.Score{Level: 1}, g.Score())
	assert.True(t, g.Field().Empty())
	assert.Equal(t, core.GameEventStart, rec.Events[0].Type)
}

func TestHorizontalMovesStopAtWalls(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 10)))

	g.Step(core.EventMoveLeft)
	assert.Equal(t, 2, g.ActivePiece().X)

	steps(g, core.EventMoveLeft, 10)
	assert.Equal(t, 0, g.ActivePiece().X, "T spawn box touches the left wall at x=0")

	steps(g, core.EventMoveRight, 20)
	assert.Equal(t, 7, g.ActivePiece().X, "T spawn box is 3 wide")
	assert.Equal(t, 10, g.ActivePiece().Y)
}

func TestSoftDropMovesOneRow(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 10)))

	g.Step(core.EventSoftDrop)
	assert.Equal(t, 11, g.ActivePiece().Y)
	assert.Equal(t, core.StateFalling, g.State())
}

func TestSoftDropIntoFloorLands(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 22)))

	g.Step(core.EventSoftDrop)
	assert.Equal(t, 22, g.ActivePiece().Y)
	assert.Equal(t, core.StateLanding, g.State())
}

func TestGhostPieceRestsOnStack(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 10)))

	ghost := g.GhostPiece()
	assert.Equal(t, 3, ghost.X)
	assert.Equal(t, 22, ghost.Y)
	assert.Equal(t, 10, g.ActivePiece().Y, "ghost must not move the piece")

	g.Field().Set(4, 20)
	assert.Equal(t, 19, g.GhostPiece().Y)
}

func TestGravityFollowsTickCadence(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.GravityTicks = 3
	g, _ := startGame(t, cfg)
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 10)))

	steps(g, core.EventTimeTick, 2)
	assert.Equal(t, 10, g.ActivePiece().Y)
	g.Step(core.EventTimeTick)
	assert.Equal(t, 11, g.ActivePiece().Y)

	g.SetGravity(1)
	g.Step(core.EventTimeTick)
	assert.Equal(t, 12, g.ActivePiece().Y)
	assert.Equal(t, int64(4), g.Ticks())
}

func TestSquareNeverRotates(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	require.True(t, g.Place(core.NewPiece(core.KindO, 4, 10)))
	before := g.ActivePiece()

	g.Step(core.EventRotateCW)
	g.Step(core.EventRotateCCW)

	assert.Equal(t, before, g.ActivePiece())
	assert.False(t, g.Spun())
}

func TestRotationUsesKick(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	// Vertical I against the left wall: rotating back to spawn needs a kick.
	require.True(t, g.Place(core.Piece{Kind: core.KindI, Rotation: core.RotationLeft, X: -1, Y: 10}))

	g.Step(core.EventRotateCW)

	p := g.ActivePiece()
	assert.Equal(t, core.RotationSpawn, p.Rotation)
	for _, c := range p.Cells {
		assert.GreaterOrEqual(t, c.X, 0)
	}
	assert.True(t, g.Spun())
}

func TestMoveClearsSpin(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 10)))

	g.Step(core.EventRotateCW)
	require.True(t, g.Spun())
	g.Step(core.EventMoveLeft)
	assert.False(t, g.Spun())
}

func TestLockDelayLocksWithoutInput(t *testing.T) {
	cfg := core.DefaultConfig()
	g, rec := startGame(t, cfg)
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 22)))
	nextEvents := rec.Count(core.GameEventNext)

	g.Step(core.EventTimeTick)
	require.Equal(t, core.StateLanding, g.State())

	steps(g, core.EventTimeTick, cfg.LockDelay)
	assert.Equal(t, core.StateLanding, g.State(), "wait counter has not exceeded the threshold")
	assert.Equal(t, nextEvents, rec.Count(core.GameEventNext))

	g.Step(core.EventTimeTick)
	assert.Equal(t, core.StateFalling, g.State())
	assert.Equal(t, nextEvents+1, rec.Count(core.GameEventNext))

	rows := g.FieldRows()
	assert.Equal(t, []int{4}, occupied(rows, 22))
	assert.Equal(t, []int{3, 4, 5}, occupied(rows, 23))
	assert.Equal(t, 1, rec.Count(core.GameEventScoreChange), "a lock without clears or drops changes nothing")
}

func TestRotationResetsLockDelay(t *testing.T) {
	testCases := []struct {
		name      string
		resets    int
		wantState core.State
	}{
		{"budget available", 15, core.StateLanding},
		{"budget exhausted", 0, core.StateFalling},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.MaxLockResets = tc.resets
			g, _ := startGame(t, cfg)
			require.True(t, g.Place(core.NewPiece(core.KindI, 3, 22)))

			steps(g, core.EventTimeTick, 1+cfg.LockDelay)
			require.Equal(t, core.StateLanding, g.State())

			// Bar 0->R on the floor succeeds through the (1,-2) kick.
			g.Step(core.EventRotateCW)
			p := g.ActivePiece()
			require.Equal(t, core.RotationRight, p.Rotation)
			assert.Equal(t, 4, p.X)
			assert.Equal(t, 20, p.Y)

			g.Step(core.EventTimeTick)
			assert.Equal(t, tc.wantState, g.State())
		})
	}
}

func TestHardDropLocksAndScoresDistance(t *testing.T) {
	g, rec := startGame(t, core.DefaultConfig())
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 10)))
	assert.Equal(t, 22, g.GhostPiece().Y)

	g.Step(core.EventHardDrop)

	assert.Equal(t, core.StateFalling, g.State())
	assert.Equal(t, []int{3, 4, 5}, occupied(g.FieldRows(), 23))
	assert.Equal(t, 12*2, g.Score().Points)
	last := rec.Events[len(rec.Events)-1]
	assert.Equal(t, core.GameEventNext, last.Type, "spawn follows the score change")
	assert.Equal(t, core.GameEventScoreChange, rec.Events[len(rec.Events)-2].Type)
}

func TestTetrisScoring(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	f := g.Field()
	for y := 20; y < 24; y++ {
		fillRow(f, y, 0)
	}
	require.True(t, g.Place(core.Piece{Kind: core.KindI, Rotation: core.RotationLeft, X: -1, Y: 20}))

	g.Step(core.EventHardDrop)

	s := g.Score()
	assert.Equal(t, 1, s.Tetris)
	assert.Equal(t, 4, s.DeletedLines)
	assert.Zero(t, s.TSpins())
	assert.Equal(t, 800, s.Points)
	assert.Equal(t, core.ClearTetris, g.LastClear())
	assert.True(t, f.Empty())
}

func TestTSpinDouble(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	f := g.Field()
	fillRow(f, 22, 3, 4, 5)
	fillRow(f, 23, 4)
	require.True(t, g.Place(core.Piece{Kind: core.KindT, Rotation: core.RotationRight, X: 3, Y: 21}))

	g.Step(core.EventRotateCW)
	require.Equal(t, core.RotationInverted, g.ActivePiece().Rotation)
	g.Step(core.EventHardDrop)

	s := g.Score()
	assert.Equal(t, 1, s.TSpinDouble)
	assert.Equal(t, 2, s.DeletedLines)
	assert.Zero(t, s.Tetris)
	assert.Equal(t, 1200, s.Points)
	assert.True(t, f.Empty())
}

func TestSpinCreditForAnyRotatedPiece(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	f := g.Field()
	fillRow(f, 23, 5)
	require.True(t, g.Place(core.Piece{Kind: core.KindS, Rotation: core.RotationSpawn, X: 3, Y: 21}))

	g.Step(core.EventRotateCW)
	require.Equal(t, core.RotationRight, g.ActivePiece().Rotation)
	require.True(t, g.Spun())
	g.Step(core.EventHardDrop)

	s := g.Score()
	assert.Equal(t, 1, s.TSpinSingle)
	assert.Equal(t, 1, s.DeletedLines)
	assert.Equal(t, 800, s.Points)
	assert.Equal(t, core.ClearTSpinSingle, g.LastClear())
}

func TestDoubleWithoutRotationIsNotSpin(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	f := g.Field()
	fillRow(f, 22, 3, 4, 5)
	fillRow(f, 23, 4)
	require.True(t, g.Place(core.Piece{Kind: core.KindT, Rotation: core.RotationInverted, X: 3, Y: 21}))

	g.Step(core.EventHardDrop)

	s := g.Score()
	assert.Zero(t, s.TSpins())
	assert.Equal(t, 2, s.DeletedLines)
	assert.Equal(t, core.ClearDouble, g.LastClear())
}

func TestClearWithGapCompactsStack(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())
	f := g.Field()
	for x := 3; x < 10; x++ {
		f.Set(x, 20)
	}
	fillRow(f, 21, 0)
	f.Set(5, 22)
	fillRow(f, 23, 0)
	require.True(t, g.Place(core.Piece{Kind: core.KindI, Rotation: core.RotationLeft, X: -1, Y: 20}))

	g.Step(core.EventHardDrop)

	s := g.Score()
	assert.Equal(t, 2, s.DeletedLines)
	assert.Equal(t, core.ClearDouble, g.LastClear())

	rows := g.FieldRows()
	assert.Equal(t, []int{0, 5}, occupied(rows, 23))
	assert.Equal(t, []int{0, 3, 4, 5, 6, 7, 8, 9}, occupied(rows, 22))
	assert.Empty(t, occupied(rows, 21))
	assert.Empty(t, occupied(rows, 20))
	for y := 20; y < 24; y++ {
		assert.Equal(t, len(occupied(rows, y)), f.Count(y), "row %d count", y)
	}
}

func TestClearDelayHoldsRows(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ClearDelay = 3
	g, _ := startGame(t, cfg)
	f := g.Field()
	for y := 20; y < 24; y++ {
		fillRow(f, y, 0)
	}
	require.True(t, g.Place(core.Piece{Kind: core.KindI, Rotation: core.RotationLeft, X: -1, Y: 20}))

	g.Step(core.EventHardDrop)
	require.Equal(t, core.StateClearing, g.State())
	assert.Equal(t, []int{20, 21, 22, 23}, g.ClearingRows())
	assert.Equal(t, 1, g.Score().Tetris, "score is applied at lock time")

	g.Step(core.EventMoveLeft)
	steps(g, core.EventTimeTick, 2)
	assert.Equal(t, core.StateClearing, g.State())
	assert.True(t, f.IsFilled(23))

	g.Step(core.EventTimeTick)
	assert.Equal(t, core.StateFalling, g.State())
	assert.Empty(t, g.ClearingRows())
	assert.True(t, f.Empty())
}

func TestOverflowAboveVisibleTop(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.SpawnY = 1
	g, rec := startGame(t, cfg)
	f := g.Field()
	for y := 3; y < cfg.Height; y++ {
		fillRow(f, y, 9)
	}
	require.True(t, g.Place(core.NewPiece(core.KindT, 3, 1)))
	before := g.Score()
	scoreEvents := rec.Count(core.GameEventScoreChange)

	g.Step(core.EventHardDrop)

	assert.Equal(t, core.StateGameOver, g.State())
	assert.Equal(t, 1, rec.Count(core.GameEventOverflow))
	assert.Equal(t, before, g.Score())
	assert.Equal(t, scoreEvents, rec.Count(core.GameEventScoreChange))
	assert.False(t, f.Test(4, 1), "overflowing piece is not written")

	g.Step(core.EventMoveLeft)
	g.Step(core.EventTimeTick)
	g.Step(core.EventHardDrop)
	assert.Equal(t, 1, rec.Count(core.GameEventOverflow))
}

func TestStackingEventuallyOverflowsOnce(t *testing.T) {
	g, rec := startGame(t, core.DefaultConfig())

	for i := 0; i < 40 && g.State() != core.StateGameOver; i++ {
		g.Step(core.EventHardDrop)
	}

	assert.Equal(t, core.StateGameOver, g.State())
	assert.Equal(t, 1, rec.Count(core.GameEventOverflow))
	assert.Zero(t, g.Score().DeletedLines)
	assert.Equal(t, core.GameEventOverflow, rec.Events[len(rec.Events)-1].Type)
}

func TestUpcomingBecomesActive(t *testing.T) {
	g, _ := startGame(t, core.DefaultConfig())

	for i := 0; i < 5; i++ {
		next := g.Upcoming()[0]
		g.Step(core.EventHardDrop)
		if g.State() == core.StateGameOver {
			break
		}
		assert.Equal(t, next, g.ActivePiece().Kind, "draw %d", i)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	script := []core.Event{
		core.EventMoveLeft, core.EventRotateCW, core.EventHardDrop,
		core.EventMoveRight, core.EventMoveRight, core.EventTimeTick,
		core.EventSoftDrop, core.EventRotateCCW, core.EventHardDrop,
		core.EventHardDrop, core.EventTimeTick, core.EventHardDrop,
	}

	run := func() (*core.Game, []core.GameEventType) {
		rec := &recorder{}
		g := core.New(core.DefaultConfig(), 2024, rec)
		g.Start()
		for _, ev := range script {
			g.Step(ev)
		}
		return g, rec.Types()
	}

	a, aTypes := run()
	b, bTypes := run()

	assert.Equal(t, a.FieldRows(), b.FieldRows())
	assert.Equal(t, a.Score(), b.Score())
	assert.Equal(t, a.ActivePiece(), b.ActivePiece())
	assert.Equal(t, aTypes, bTypes)
}

func TestListenerFunc(t *testing.T) {
	var got []core.GameEventType
	g := core.New(core.DefaultConfig(), 5, core.ListenerFunc(func(ev core.GameEvent) {
		got = append(got, ev.Type)
	}))
	g.Start()

	assert.Equal(t, core.GameEventStart, got[0])
}
