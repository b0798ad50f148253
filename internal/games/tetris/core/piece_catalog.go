// Package core implements the rules engine for the falling-block game:
// piece geometry, SRS rotation, the playing field and the turn-by-turn state
// machine. It has no knowledge of terminals, clocks or storage; the terminal
// adapter drives it through Step and reads it through the query accessors.
package core

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindS
	KindZ
	KindJ
	KindL
	KindT
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// AllKinds lists every kind in declaration order.
var AllKinds = [KindCount]Kind{KindI, KindO, KindS, KindZ, KindJ, KindL, KindT}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Form returns the kick-table family used by this kind.
func (k Kind) Form() Form {
	switch k {
	case KindI:
		return FormBar
	case KindO:
		return FormSquare
	default:
		return FormNormal
	}
}

// Rotatable is false only for O.
func (k Kind) Rotatable() bool {
	return k != KindO
}

// Rotation is one of the four SRS orientation states.
type Rotation uint8

const (
	RotationSpawn Rotation = iota
	RotationRight
	RotationInverted
	RotationLeft
)

// RotationCount is the number of orientation states.
const RotationCount = 4

// String returns the conventional SRS name (0, R, 2, L).
func (r Rotation) String() string {
	switch r {
	case RotationSpawn:
		return "0"
	case RotationRight:
		return "R"
	case RotationInverted:
		return "2"
	case RotationLeft:
		return "L"
	default:
		return "?"
	}
}

// Offset is a relative (dx, dy) displacement. Positive dy points down.
type Offset struct {
	X, Y int
}

// Point is an absolute field coordinate.
type Point struct {
	X, Y int
}

// cellTable holds the occupied cells of every (kind, rotation) pair relative
// to the piece pivot, which is the top-left corner of the SRS bounding box.
var cellTable = [KindCount][RotationCount][4]Offset{
	KindI: {
		RotationSpawn:    {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		RotationRight:    {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		RotationInverted: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		RotationLeft:     {{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	KindO: {
		RotationSpawn:    {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		RotationRight:    {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		RotationInverted: {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		RotationLeft:     {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindS: {
		RotationSpawn:    {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		RotationRight:    {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		RotationInverted: {{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		RotationLeft:     {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		RotationSpawn:    {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		RotationRight:    {{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		RotationInverted: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		RotationLeft:     {{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		RotationSpawn:    {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		RotationRight:    {{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		RotationInverted: {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		RotationLeft:     {{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		RotationSpawn:    {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		RotationRight:    {{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		RotationInverted: {{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		RotationLeft:     {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	KindT: {
		RotationSpawn:    {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		RotationRight:    {{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		RotationInverted: {{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		RotationLeft:     {{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
}

// Cells returns the four cell offsets of kind k in rotation r.
// Unknown kinds or rotations yield the zero array.
func Cells(k Kind, r Rotation) [4]Offset {
	if !k.Valid() || r >= RotationCount {
		return [4]Offset{}
	}
	return cellTable[k][r]
}
