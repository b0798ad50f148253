package core

// Score holds the counters of one game. It is a plain value; Game.Score
// returns a copy.
type Score struct {
	DeletedLines int // total rows cleared
	TSpinSingle  int
	TSpinDouble  int
	TSpinTriple  int
	Tetris       int // four-row clears

	Points int // level-weighted points, including drop bonuses
	Level  int
}

// LinesPerLevel is how many cleared rows advance the level by one.
const LinesPerLevel = 10

// Point values before the level multiplier.
const (
	pointsSingle      = 100
	pointsDouble      = 300
	pointsTriple      = 500
	pointsTetris      = 800
	pointsTSpinSingle = 800
	pointsTSpinDouble = 1200
	pointsTSpinTriple = 1600
	pointsSoftDropRow = 1
	pointsHardDropRow = 2
)

// ClearKind classifies a line clear for scoring.
type ClearKind uint8

const (
	ClearNone ClearKind = iota
	ClearSingle
	ClearDouble
	ClearTriple
	ClearTetris
	ClearTSpinSingle
	ClearTSpinDouble
	ClearTSpinTriple
)

// String returns a short label suitable for a HUD.
func (c ClearKind) String() string {
	switch c {
	case ClearSingle:
		return "Single"
	case ClearDouble:
		return "Double"
	case ClearTriple:
		return "Triple"
	case ClearTetris:
		return "Tetris"
	case ClearTSpinSingle:
		return "T-Spin Single"
	case ClearTSpinDouble:
		return "T-Spin Double"
	case ClearTSpinTriple:
		return "T-Spin Triple"
	default:
		return ""
	}
}

// Classify maps a lock result to its clear kind. Four rows is always a
// Tetris; otherwise spin credit applies to 1..3 rows.
func Classify(rows int, spin bool) ClearKind {
	switch {
	case rows <= 0:
		return ClearNone
	case rows >= 4:
		return ClearTetris
	case spin:
		return ClearTSpinSingle + ClearKind(rows-1)
	default:
		return ClearSingle + ClearKind(rows-1)
	}
}

// basePoints returns the unweighted points for a clear kind.
func (c ClearKind) basePoints() int {
	switch c {
	case ClearSingle:
		return pointsSingle
	case ClearDouble:
		return pointsDouble
	case ClearTriple:
		return pointsTriple
	case ClearTetris:
		return pointsTetris
	case ClearTSpinSingle:
		return pointsTSpinSingle
	case ClearTSpinDouble:
		return pointsTSpinDouble
	case ClearTSpinTriple:
		return pointsTSpinTriple
	default:
		return 0
	}
}

// apply records a lock that cleared rows of the given kind. dropPoints are
// the soft/hard drop bonuses accumulated by the piece. startLevel is the
// level at zero lines.
func (s *Score) apply(kind ClearKind, rows, dropPoints, startLevel int) {
	switch kind {
	case ClearTetris:
		s.Tetris++
	case ClearTSpinSingle:
		s.TSpinSingle++
	case ClearTSpinDouble:
		s.TSpinDouble++
	case ClearTSpinTriple:
		s.TSpinTriple++
	}
	s.Points += kind.basePoints()*s.Level + dropPoints
	if rows > 0 {
		s.DeletedLines += rows
	}
	s.Level = startLevel + s.DeletedLines/LinesPerLevel
}

// TSpins returns the total number of T-spin clears of any tier.
func (s Score) TSpins() int {
	return s.TSpinSingle + s.TSpinDouble + s.TSpinTriple
}
