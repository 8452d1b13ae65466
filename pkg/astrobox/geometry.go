package astrobox

import "image"

// Rectangle is an axis-aligned box given by its top-left corner and size.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Image converts r to an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// ExtractBoundingBox returns the smallest axis-aligned rectangle holding all
// of the given points. It returns the zero Rectangle for no points.
// Unlike Quad.BoundingBox it ignores corner labels, so the two differ only
// for a quad whose labels do not match its shape; astrocrop reports both.
func ExtractBoundingBox(points ...Point) Rectangle {
	if len(points) == 0 {
		return Rectangle{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	return Rectangle{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// xMin and yMin select by tag: the Left corners bound x from below and the
// Top corners bound y from below.
func (q Quad) xMin() int { return min(q.table[TopLeft].X, q.table[BottomLeft].X) }
func (q Quad) yMin() int { return min(q.table[TopLeft].Y, q.table[TopRight].Y) }

// WidthBounding returns the width of the smallest axis-aligned box that
// holds the quad.
func (q Quad) WidthBounding() int {
	return max(q.table[TopRight].X, q.table[BottomRight].X) - q.xMin()
}

// HeightBounding returns the height of the smallest axis-aligned box that
// holds the quad.
func (q Quad) HeightBounding() int {
	return max(q.table[BottomLeft].Y, q.table[BottomRight].Y) - q.yMin()
}

// SizeBounding returns (WidthBounding, HeightBounding). For a quad that is
// not rotated this is the size of the quad itself.
func (q Quad) SizeBounding() (int, int) {
	return q.WidthBounding(), q.HeightBounding()
}

// Width returns the length of the top edge.
func (q Quad) Width() float64 {
	return Distance(q.TopLeft(), q.TopRight())
}

// Height returns the distance from the top-left to the bottom-right
// corner. This is the diagonal, not the left edge; see LeftEdge.
func (q Quad) Height() float64 {
	return Distance(q.TopLeft(), q.BottomRight())
}

// LeftEdge returns the length of the left edge.
func (q Quad) LeftEdge() float64 {
	return Distance(q.TopLeft(), q.BottomLeft())
}

// Size returns (Width, Height).
func (q Quad) Size() (float64, float64) {
	return q.Width(), q.Height()
}

// BoundingBox returns the axis-aligned box around the quad.
func (q Quad) BoundingBox() Rectangle {
	return Rectangle{
		X:      q.xMin(),
		Y:      q.yMin(),
		Width:  q.WidthBounding(),
		Height: q.HeightBounding(),
	}
}

// BoundingRect returns a new, unrotated Quad that holds q.
func (q Quad) BoundingRect() Quad {
	b := q.BoundingBox()
	t := q.Table()
	t[TopLeft].X, t[TopLeft].Y = b.X, b.Y
	t[TopRight].X, t[TopRight].Y = b.X+b.Width, b.Y
	t[BottomLeft].X, t[BottomLeft].Y = b.X, b.Y+b.Height
	t[BottomRight].X, t[BottomRight].Y = b.X+b.Width, b.Y+b.Height
	return Quad{table: t}
}
