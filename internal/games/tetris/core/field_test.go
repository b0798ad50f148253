package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// fillRow occupies row y except for the listed columns.
func fillRow(f *core.Field, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < f.Width(); x++ {
		if !skip[x] {
			f.Set(x, y)
		}
	}
}

// occupied returns the occupied columns of row y.
func occupied(rows [][]bool, y int) []int {
	var xs []int
	for x, c := range rows[y] {
		if c {
			xs = append(xs, x)
		}
	}
	return xs
}

func TestFieldTestOutOfBounds(t *testing.T) {
	f := core.NewField(10, 6)

	testCases := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, false},
		{9, 5, false},
		{-1, 0, true},
		{10, 0, true},
		{0, -1, true},
		{0, 6, true},
		{100, 100, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, f.Test(tc.x, tc.y), "Test(%d, %d)", tc.x, tc.y)
	}
}

func TestFieldRowCountInvariant(t *testing.T) {
	f := core.NewField(10, 6)

	assert.False(t, f.Set(2, 3))
	assert.False(t, f.Set(2, 3), "setting an occupied cell again")
	assert.Equal(t, 1, f.Count(3))

	f.Set(5, 3)
	assert.Equal(t, 2, f.Count(3))
	assert.True(t, f.Test(5, 3))

	for y := 0; y < f.Height(); y++ {
		assert.Equal(t, len(occupied(f.Rows(), y)), f.Count(y), "row %d", y)
	}
}

func TestFieldSetReportsFilledRow(t *testing.T) {
	f := core.NewField(4, 4)

	assert.False(t, f.Set(0, 2))
	assert.False(t, f.Set(1, 2))
	assert.False(t, f.Set(2, 2))
	assert.True(t, f.Set(3, 2))
	assert.True(t, f.IsFilled(2))
	assert.False(t, f.IsFilled(1))
}

func TestFieldSetOutOfRangeIsNoop(t *testing.T) {
	f := core.NewField(4, 4)

	assert.NotPanics(t, func() {
		f.Set(-1, 0)
		f.Set(0, 99)
		f.Float(-3)
		f.Float(99)
		f.Delete(99)
	})
	assert.True(t, f.Empty())
}

func TestFieldDeleteRequiresFullRow(t *testing.T) {
	f := core.NewField(4, 4)
	f.Set(0, 3)
	f.Set(1, 3)

	assert.False(t, f.Delete(3))
	assert.Equal(t, 2, f.Count(3), "non-full row must be untouched")

	f.Set(2, 3)
	f.Set(3, 3)
	assert.True(t, f.Delete(3))
	assert.Equal(t, 0, f.Count(3))
	assert.Empty(t, occupied(f.Rows(), 3))
}

func TestFieldFloatOnEmptyStackIsNoop(t *testing.T) {
	f := core.NewField(4, 6)
	fillRow(f, 5)
	f.Delete(5)

	before := f.Rows()
	f.Float(5)
	assert.Equal(t, before, f.Rows())
}

func TestFieldFloatSingleRow(t *testing.T) {
	f := core.NewField(4, 6)
	f.Set(1, 3)
	fillRow(f, 4)
	f.Set(0, 5)

	assert.True(t, f.Delete(4))
	f.Float(4)

	rows := f.Rows()
	assert.Empty(t, occupied(rows, 3))
	assert.Equal(t, []int{1}, occupied(rows, 4))
	assert.Equal(t, []int{0}, occupied(rows, 5), "rows below the cleared one stay put")
}

func TestFieldFloatMultipleRowsTopmostFirst(t *testing.T) {
	f := core.NewField(10, 6)
	f.Set(7, 2)
	f.Set(2, 3)
	fillRow(f, 4)
	fillRow(f, 5)

	assert.True(t, f.Delete(4))
	assert.True(t, f.Delete(5))
	f.Float(4)
	f.Float(5)

	rows := f.Rows()
	assert.Empty(t, occupied(rows, 2))
	assert.Empty(t, occupied(rows, 3))
	assert.Equal(t, []int{7}, occupied(rows, 4))
	assert.Equal(t, []int{2}, occupied(rows, 5))
	assert.Equal(t, 1, f.Count(4))
	assert.Equal(t, 1, f.Count(5))
}

func TestFieldFloatStopsAtGap(t *testing.T) {
	f := core.NewField(4, 6)
	f.Set(0, 1) // separated from the stack by an empty row
	f.Set(3, 3)
	fillRow(f, 4)

	f.Delete(4)
	f.Float(4)

	rows := f.Rows()
	assert.Equal(t, []int{0}, occupied(rows, 1))
	assert.Empty(t, occupied(rows, 3))
	assert.Equal(t, []int{3}, occupied(rows, 4))
}

func TestFieldClear(t *testing.T) {
	f := core.NewField(4, 4)
	fillRow(f, 3, 0)
	f.Set(2, 1)

	f.Clear()
	assert.True(t, f.Empty())
	for y := 0; y < f.Height(); y++ {
		assert.Zero(t, f.Count(y))
	}
}
