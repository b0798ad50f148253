package core

// Field is the fixed-size playing grid. Row 0 is the top of the hidden
// buffer; y grows downward. counts[y] always equals the number of occupied
// cells in row y.
type Field struct {
	width  int
	height int
	rows   [][]bool
	counts []int
}

// NewField creates an empty field of the given dimensions.
func NewField(width, height int) *Field {
	f := &Field{
		width:  width,
		height: height,
	}
	f.allocate()
	return f
}

// allocate creates the row storage.
func (f *Field) allocate() {
	f.rows = make([][]bool, f.height)
	for y := range f.rows {
		f.rows[y] = make([]bool, f.width)
	}
	f.counts = make([]int, f.height)
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.width
}

// Height returns the number of rows, hidden buffer included.
func (f *Field) Height() int {
	return f.height
}

// inBounds reports whether (x, y) lies inside the grid.
func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Test reports whether (x, y) is blocked. Anything outside the grid counts
// as blocked so movement code can use Test as its only collision predicate.
func (f *Field) Test(x, y int) bool {
	if !f.inBounds(x, y) {
		return true
	}
	return f.rows[y][x]
}

// Set occupies (x, y) and returns true if that completes the row.
// Setting an occupied or out-of-range cell changes nothing.
func (f *Field) Set(x, y int) bool {
	if !f.inBounds(x, y) {
		return false
	}
	if !f.rows[y][x] {
		f.rows[y][x] = true
		f.counts[y]++
	}
	return f.counts[y] == f.width
}

// IsFilled reports whether row y is complete.
func (f *Field) IsFilled(y int) bool {
	if y < 0 || y >= f.height {
		return false
	}
	return f.counts[y] == f.width
}

// Count returns the number of occupied cells in row y.
func (f *Field) Count(y int) int {
	if y < 0 || y >= f.height {
		return 0
	}
	return f.counts[y]
}

// Delete empties row y if it is full. Rows that are not full are left
// untouched and Delete returns false.
func (f *Field) Delete(y int) bool {
	if !f.IsFilled(y) {
		return false
	}
	for x := range f.rows[y] {
		f.rows[y][x] = false
	}
	f.counts[y] = 0
	return true
}

// Float compacts the stack after row y has been deleted: the rows above y
// move down by one, stopping at the first empty row above. When several rows
// were deleted in one lock, Float them starting from the topmost one.
func (f *Field) Float(y int) {
	if y < 0 || y >= f.height {
		return
	}
	for now := y; now > 0; now-- {
		up := now - 1
		if f.counts[up] == 0 {
			return
		}
		f.rows[now], f.rows[up] = f.rows[up], f.rows[now]
		f.counts[now], f.counts[up] = f.counts[up], f.counts[now]
	}
}

// Clear empties every row.
func (f *Field) Clear() {
	for y := range f.rows {
		for x := range f.rows[y] {
			f.rows[y][x] = false
		}
		f.counts[y] = 0
	}
}

// Rows returns a copy of the grid, indexed [y][x].
func (f *Field) Rows() [][]bool {
	out := make([][]bool, f.height)
	for y := range f.rows {
		out[y] = make([]bool, f.width)
		copy(out[y], f.rows[y])
	}
	return out
}

// Empty reports whether no cell is occupied.
func (f *Field) Empty() bool {
	for _, c := range f.counts {
		if c != 0 {
			return false
		}
	}
	return true
}
