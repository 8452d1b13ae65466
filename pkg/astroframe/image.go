package astroframe

import (
	"image"

	"golang.org/x/image/draw"
)

// Image adapts an image.Image to a frame addressed from its top-left pixel,
// whatever the image's own bounds are.
type Image struct {
	image.Image
}

// WrapImage returns img as a frame.
func WrapImage(img image.Image) Image { return Image{Image: img} }

// Rows returns the image height in pixels.
func (f Image) Rows() int { return f.Bounds().Dy() }

// Cols returns the image width in pixels.
func (f Image) Cols() int { return f.Bounds().Dx() }

// Region copies the pixels inside rect into a new RGBA image whose bounds
// start at the origin.
func (f Image) Region(rect image.Rectangle) Image {
	b := f.Bounds()
	src := rect.Add(b.Min).Intersect(b)
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	draw.Copy(dst, image.Point{}, f.Image, src, draw.Src, nil)
	return Image{Image: dst}
}
