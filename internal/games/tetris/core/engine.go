package core

import (
	"math/rand"
	"sort"
)

// State is the engine's phase.
type State uint8

const (
	StateIdle State = iota // before the first Start
	StateFalling
	StateLanding  // touched down, lock delay running
	StateClearing // rows queued for deletion
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFalling:
		return "Falling"
	case StateLanding:
		return "Landing"
	case StateClearing:
		return "Clearing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the rules engine. It is not safe for concurrent use; the host
// serializes every call.
type Game struct {
	cfg      Config
	seed     int64
	listener Listener

	field *Field
	bag   *Bag
	piece Piece
	state State
	score Score

	gravityTicks   int
	gravityCounter int
	waitCounter    int
	lockResets     int
	landedOnce     bool
	spun           bool
	dropPoints     int

	clearing     []int
	clearCounter int

	lastClear ClearKind
	ticks     int64
}

// New creates an idle engine. An invalid cfg is replaced by DefaultConfig.
// A nil listener is allowed.
func New(cfg Config, seed int64, listener Listener) *Game {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	return &Game{
		cfg:          cfg,
		seed:         seed,
		listener:     listener,
		field:        NewField(cfg.Width, cfg.Height),
		state:        StateIdle,
		gravityTicks: cfg.GravityTicks,
		score:        Score{Level: cfg.StartLevel},
	}
}

// Config returns the configuration the engine runs with.
func (g *Game) Config() Config {
	return g.cfg
}

// Start (re)initializes the field, score, bag and active piece, then emits
// Start, Next and the initial ScoreChange.
func (g *Game) Start() {
	g.field.Clear()
	g.bag = NewBag(rand.New(rand.NewSource(g.seed)))
	g.score = Score{Level: g.cfg.StartLevel}
	g.gravityTicks = g.cfg.GravityTicks
	g.clearing = nil
	g.clearCounter = 0
	g.lastClear = ClearNone
	g.ticks = 0
	g.state = StateFalling

	g.emit(GameEvent{Type: GameEventStart})
	if !g.spawn() {
		return
	}
	g.emit(GameEvent{Type: GameEventScoreChange, Score: g.score})
}

// Step applies one event. It is a no-op before Start and after game over.
func (g *Game) Step(ev Event) {
	switch g.state {
	case StateIdle, StateGameOver:
		return
	case StateClearing:
		if ev == EventTimeTick {
			g.ticks++
			g.tickClearing()
		}
		return
	}

	switch ev {
	case EventMoveLeft:
		g.shift(-1)
	case EventMoveRight:
		g.shift(1)
	case EventSoftDrop:
		if g.fall() {
			g.dropPoints += pointsSoftDropRow
		}
	case EventHardDrop:
		g.hardDrop()
	case EventRotateCW:
		g.rotate(Clockwise)
	case EventRotateCCW:
		g.rotate(CounterClockwise)
	case EventTimeTick:
		g.ticks++
		g.tick()
	}
}

// SetGravity changes how many ticks pass per automatic one-row fall. Hosts
// use it to speed up as the level rises. Values below 1 are ignored.
func (g *Game) SetGravity(ticks int) {
	if ticks < 1 {
		return
	}
	g.gravityTicks = ticks
	if g.gravityCounter >= ticks {
		g.gravityCounter = ticks - 1
	}
}

// Place replaces the active piece if p fits on the field. It exists for
// tests and scripted setups; the piece keeps the current landing state.
func (g *Game) Place(p Piece) bool {
	if g.state != StateFalling && g.state != StateLanding {
		return false
	}
	if p.Collides(g.field.Test) {
		return false
	}
	g.piece = p
	g.updateGrounded()
	return true
}

// Field exposes the grid for scripted setups such as garbage rows. Writing
// to it while a piece is active must keep the piece clear of new cells.
func (g *Game) Field() *Field {
	return g.field
}

// FieldRows returns a copy of the locked cells, indexed [y][x].
func (g *Game) FieldRows() [][]bool {
	return g.field.Rows()
}

// ActivePiece returns the falling piece.
func (g *Game) ActivePiece() PieceSnapshot {
	return g.piece.Snapshot()
}

// GhostPiece returns where the active piece would land on a hard drop.
func (g *Game) GhostPiece() PieceSnapshot {
	ghost := g.piece
	ghost.Offset(0, g.dropDistance())
	return ghost.Snapshot()
}

// Score returns a copy of the score.
func (g *Game) Score() Score {
	return g.score
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Upcoming returns the preview of kinds that will spawn next.
func (g *Game) Upcoming() []Kind {
	if g.bag == nil {
		return nil
	}
	return g.bag.Peek(g.cfg.PreviewCount)
}

// ClearingRows returns the rows waiting for deletion in StateClearing.
func (g *Game) ClearingRows() []int {
	out := make([]int, len(g.clearing))
	copy(out, g.clearing)
	return out
}

// LastClear reports the kind of the most recent lock that cleared rows.
func (g *Game) LastClear() ClearKind {
	return g.lastClear
}

// Ticks returns the number of TimeTick events processed since Start.
func (g *Game) Ticks() int64 {
	return g.ticks
}

// Spun reports whether the active piece's last successful action was a
// rotation.
func (g *Game) Spun() bool {
	return g.spun
}

func (g *Game) emit(ev GameEvent) {
	if g.listener != nil {
		g.listener.OnGameEvent(ev)
	}
}

// try moves the active piece by (dx, dy) and reverts on collision.
func (g *Game) try(dx, dy int) bool {
	g.piece.Offset(dx, dy)
	if g.piece.Collides(g.field.Test) {
		g.piece.Offset(-dx, -dy)
		return false
	}
	return true
}

// grounded reports whether the piece rests on the stack or floor.
func (g *Game) grounded() bool {
	below := g.piece
	below.Offset(0, 1)
	return below.Collides(g.field.Test)
}

// updateGrounded moves between Falling and Landing after a successful move.
func (g *Game) updateGrounded() {
	switch {
	case g.state == StateLanding && !g.grounded():
		g.state = StateFalling
		g.gravityCounter = 0
	case g.state == StateFalling && g.grounded() && g.landedOnce:
		// touching down again draws on the same reset budget
		g.state = StateLanding
		g.resetLockDelay()
	}
}

func (g *Game) shift(dx int) {
	if !g.try(dx, 0) {
		return
	}
	g.spun = false
	g.updateGrounded()
}

// fall moves the piece one row down, entering Landing when blocked.
func (g *Game) fall() bool {
	if g.try(0, 1) {
		g.spun = false
		return true
	}
	g.land()
	return false
}

func (g *Game) land() {
	if g.state == StateLanding {
		return
	}
	g.state = StateLanding
	if g.landedOnce {
		g.resetLockDelay()
		return
	}
	g.landedOnce = true
	g.waitCounter = 0
}

func (g *Game) resetLockDelay() {
	if g.lockResets >= g.cfg.MaxLockResets {
		return
	}
	g.lockResets++
	g.waitCounter = 0
}

// dropDistance returns how many rows the piece can fall.
func (g *Game) dropDistance() int {
	ghost := g.piece
	n := 0
	for {
		ghost.Offset(0, 1)
		if ghost.Collides(g.field.Test) {
			return n
		}
		n++
	}
}

func (g *Game) hardDrop() {
	n := g.dropDistance()
	if n > 0 {
		g.piece.Offset(0, n)
		g.spun = false
		g.dropPoints += n * pointsHardDropRow
	}
	g.lock()
}

func (g *Game) rotate(dir Direction) {
	if !g.piece.Rotatable() {
		return
	}
	from := g.piece.Rotation
	rotated := g.piece.Rotated(dir)
	for _, k := range Kicks(g.piece.Kind.Form(), from, rotated.Rotation) {
		candidate := rotated
		candidate.Offset(k.X, k.Y)
		if candidate.Collides(g.field.Test) {
			continue
		}
		g.piece = candidate
		g.spun = true
		if g.state == StateLanding {
			g.resetLockDelay()
		}
		g.updateGrounded()
		return
	}
}

func (g *Game) tick() {
	switch g.state {
	case StateFalling:
		g.gravityCounter++
		if g.gravityCounter < g.gravityTicks {
			return
		}
		g.gravityCounter = 0
		g.fall()
	case StateLanding:
		if !g.grounded() {
			g.state = StateFalling
			return
		}
		g.waitCounter++
		if g.waitCounter > g.cfg.LockDelay {
			g.lock()
		}
	}
}

// lock writes the piece into the field, scores the clear and moves on to
// the next piece. A piece resting entirely inside the hidden buffer ends
// the game instead.
func (g *Game) lock() {
	cells := g.piece.Cells()
	if g.aboveVisibleTop(cells) {
		g.gameOver()
		return
	}

	for _, c := range cells {
		g.field.Set(c.X, c.Y)
	}

	var rows []int
	for _, c := range cells {
		if g.field.IsFilled(c.Y) && !containsInt(rows, c.Y) {
			rows = append(rows, c.Y)
		}
	}
	sort.Ints(rows)

	before := g.score
	kind := Classify(len(rows), g.spun)
	g.score.apply(kind, len(rows), g.dropPoints, g.cfg.StartLevel)
	if kind != ClearNone {
		g.lastClear = kind
	}
	if g.score != before {
		g.emit(GameEvent{Type: GameEventScoreChange, Score: g.score})
	}

	if len(rows) > 0 && g.cfg.ClearDelay > 0 {
		g.state = StateClearing
		g.clearing = rows
		g.clearCounter = 0
		return
	}
	g.resolve(rows)
	g.spawn()
}

func (g *Game) aboveVisibleTop(cells [4]Point) bool {
	for _, c := range cells {
		if c.Y >= g.cfg.HiddenRows {
			return false
		}
	}
	return true
}

// resolve deletes the given rows and compacts the stack. rows must be sorted
// top to bottom: each Float then finds the rows above it already settled.
func (g *Game) resolve(rows []int) {
	for _, y := range rows {
		if g.field.Delete(y) {
			g.field.Float(y)
		}
	}
}

func (g *Game) tickClearing() {
	g.clearCounter++
	if g.clearCounter < g.cfg.ClearDelay {
		return
	}
	rows := g.clearing
	g.clearing = nil
	g.resolve(rows)
	g.state = StateFalling
	g.spawn()
}

// spawn takes the next kind from the bag and places it at the spawn point.
// A blocked spawn ends the game.
func (g *Game) spawn() bool {
	g.piece = NewPiece(g.bag.Next(), g.cfg.SpawnX, g.cfg.SpawnY)
	g.state = StateFalling
	g.gravityCounter = 0
	g.waitCounter = 0
	g.lockResets = 0
	g.landedOnce = false
	g.spun = false
	g.dropPoints = 0

	g.emit(GameEvent{Type: GameEventNext, Next: g.bag.Peek(g.cfg.PreviewCount)})
	if g.piece.Collides(g.field.Test) {
		g.gameOver()
		return false
	}
	return true
}

func (g *Game) gameOver() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.emit(GameEvent{Type: GameEventOverflow})
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
