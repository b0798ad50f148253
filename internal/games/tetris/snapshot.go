package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateClearing GameStateType = "clearing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     int64
	Mode     Mode
	Score    int
	Lines    int
	Level    int
	Tetrises int
	TSpins   int
	Piece    core.PieceSnapshot
	Next     []core.Kind
	Gravity  int
	Stack    int // occupied cells
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Mode: g.mode, State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.engine.State() == core.StateClearing:
		state = StateClearing
	}

	stack := 0
	field := g.engine.Field()
	for y := 0; y < field.Height(); y++ {
		stack += field.Count(y)
	}

	score := g.engine.Score()
	next := make([]core.Kind, len(g.next))
	copy(next, g.next)

	return Snapshot{
		Tick:     g.engine.Ticks(),
		Mode:     g.mode,
		Score:    score.Points,
		Lines:    score.DeletedLines,
		Level:    score.Level,
		Tetrises: score.Tetris,
		TSpins:   score.TSpins(),
		Piece:    g.engine.ActivePiece(),
		Next:     next,
		Gravity:  g.gravity(),
		Stack:    stack,
		State:    state,
	}
}
