package astrobox

import (
	"image"

	"seehuhn.de/go/geom/vec"
)

// Point is an integer pixel position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Image converts p to an image.Point.
func (p Point) Image() image.Point { return image.Point{X: p.X, Y: p.Y} }

func (p Point) vec() vec.Vec2 { return vec.Vec2{X: float64(p.X), Y: float64(p.Y)} }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return p.vec().Sub(q.vec()).Length()
}
