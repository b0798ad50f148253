package core

// Piece is the active tetromino: a kind, an orientation and the pivot
// position of its bounding box on the field.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
}

// NewPiece creates a piece in spawn orientation at (x, y).
func NewPiece(k Kind, x, y int) Piece {
	return Piece{Kind: k, Rotation: RotationSpawn, X: x, Y: y}
}

// Pos returns the pivot position.
func (p Piece) Pos() (int, int) {
	return p.X, p.Y
}

// Offset moves the piece by (dx, dy).
func (p *Piece) Offset(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Absolute places the pivot at (x, y).
func (p *Piece) Absolute(x, y int) {
	p.X = x
	p.Y = y
}

// Cells returns the absolute field coordinates of the four occupied cells.
func (p Piece) Cells() [4]Point {
	var out [4]Point
	for i, c := range Cells(p.Kind, p.Rotation) {
		out[i] = Point{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

// Collides reports whether any cell of the piece is blocked according to
// the given predicate, typically Field.Test.
func (p Piece) Collides(blocked func(x, y int) bool) bool {
	for _, c := range p.Cells() {
		if blocked(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Rotatable reports whether rotation can ever succeed for this piece.
func (p Piece) Rotatable() bool {
	return p.Kind.Rotatable()
}

// Rotated returns a copy turned once in dir about the same pivot. Kicks are
// applied by the caller.
func (p Piece) Rotated(dir Direction) Piece {
	p.Rotation = p.Rotation.Next(dir)
	return p
}

// PieceSnapshot is a read-only view of a piece for renderers.
type PieceSnapshot struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
	Cells    [4]Point
}

// Snapshot captures the piece and its absolute cells.
func (p Piece) Snapshot() PieceSnapshot {
	return PieceSnapshot{
		Kind:     p.Kind,
		Rotation: p.Rotation,
		X:        p.X,
		Y:        p.Y,
		Cells:    p.Cells(),
	}
}
