package core

// Form selects the kick table family for a piece kind.
type Form uint8

const (
	FormNormal Form = iota // J, L, S, T, Z
	FormBar                // I
	FormSquare             // O, never rotates
)

// Direction is a rotation direction.
type Direction int8

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Next returns the rotation state reached by turning once in dir.
func (r Rotation) Next(dir Direction) Rotation {
	if dir == CounterClockwise {
		return (r + RotationCount - 1) % RotationCount
	}
	return (r + 1) % RotationCount
}

type kickKey struct {
	form     Form
	from, to Rotation
}

// kickTable is the SRS wall-kick data. Guideline tables are published with y
// pointing up; the values here are already flipped for the y-down field.
var kickTable = map[kickKey][]Offset{
	// J, L, S, T, Z
	{FormNormal, RotationSpawn, RotationRight}:    {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{FormNormal, RotationRight, RotationSpawn}:    {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{FormNormal, RotationRight, RotationInverted}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{FormNormal, RotationInverted, RotationRight}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{FormNormal, RotationInverted, RotationLeft}:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{FormNormal, RotationLeft, RotationInverted}:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{FormNormal, RotationLeft, RotationSpawn}:     {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{FormNormal, RotationSpawn, RotationLeft}:     {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},

	// I
	{FormBar, RotationSpawn, RotationRight}:    {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{FormBar, RotationRight, RotationSpawn}:    {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{FormBar, RotationRight, RotationInverted}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{FormBar, RotationInverted, RotationRight}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{FormBar, RotationInverted, RotationLeft}:  {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{FormBar, RotationLeft, RotationInverted}:  {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{FormBar, RotationLeft, RotationSpawn}:     {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{FormBar, RotationSpawn, RotationLeft}:     {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// Kicks returns the ordered kick candidates for rotating a piece of the given
// form from one state to another. The first candidate is always (0,0).
// Square pieces and non-adjacent transitions have no candidates, so a
// rotation attempt against them always fails.
func Kicks(form Form, from, to Rotation) []Offset {
	return kickTable[kickKey{form: form, from: from, to: to}]
}
