package astroframe

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(rows, cols int) *Grid[int] {
	g := NewGrid[int](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, r*100+c)
		}
	}
	return g
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]uint8{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, uint8(6), g.At(1, 2))
	assert.Equal(t, []uint8{4, 5, 6}, g.Row(1))

	_, err = FromRows([][]uint8{{1, 2}, {3}})
	assert.Error(t, err)

	empty, err := FromRows[float32](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

func TestGridRegion(t *testing.T) {
	g := ramp(20, 20)

	sub := g.Region(image.Rect(2, 3, 10, 5))
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 8, sub.Cols())
	assert.Equal(t, 302, sub.At(0, 0))
	assert.Equal(t, 409, sub.At(1, 7))

	// the copy is independent of the source
	sub.Set(0, 0, -1)
	assert.Equal(t, 302, g.At(3, 2))
}

func TestGridRegionClipped(t *testing.T) {
	g := ramp(4, 4)

	sub := g.Region(image.Rect(-2, 2, 10, 10))
	assert.Equal(t, 2, sub.Rows())
	assert.Equal(t, 4, sub.Cols())
	assert.Equal(t, 200, sub.At(0, 0))

	none := g.Region(image.Rect(10, 10, 12, 12))
	assert.Equal(t, 0, none.Rows())
	assert.Equal(t, 0, none.Cols())
}

func TestGridIndexPanics(t *testing.T) {
	g := NewGrid[float64](2, 2)
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.Set(0, -1, 1) })
}
