package astroframe

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRegion(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 20, 20))
	src.SetGray(4, 2, color.Gray{Y: 200})

	f := WrapImage(src)
	assert.Equal(t, 20, f.Rows())
	assert.Equal(t, 20, f.Cols())

	sub := f.Region(image.Rect(3, 1, 10, 6))
	require.Equal(t, image.Rect(0, 0, 7, 5), sub.Bounds())
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, sub.At(1, 1))
	assert.Equal(t, color.RGBA{A: 255}, sub.At(0, 0))
}

func TestImageRegionOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(100, 50, 110, 60))
	src.SetRGBA(101, 51, color.RGBA{R: 9, A: 255})

	f := WrapImage(src)
	assert.Equal(t, 10, f.Rows())

	sub := f.Region(image.Rect(1, 1, 3, 3))
	assert.Equal(t, color.RGBA{R: 9, A: 255}, sub.At(0, 0))
}
