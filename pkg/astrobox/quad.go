package astrobox

import (
	"fmt"
	"math"
)

// Segment is one side of a detected boundary. By convention X1 <= X2 and
// Y1 <= Y2, i.e. the first endpoint is the smaller one on both axes.
type Segment struct {
	X1 float64 `yaml:"x1" json:"x1"`
	Y1 float64 `yaml:"y1" json:"y1"`
	X2 float64 `yaml:"x2" json:"x2"`
	Y2 float64 `yaml:"y2" json:"y2"`
}

// CornerRecord is one row of a corner table.
type CornerRecord struct {
	X, Y int
	Loc  Corner
	V    VTag
	H    HTag
}

// Table holds one record per corner, indexed by Corner.
type Table [4]CornerRecord

// Quad is a quadrilateral described by four labelled corners. The shape may
// be rotated; the labels are fixed at construction and never re-sorted.
// Quad is a value type and is never modified after construction.
type Quad struct {
	table Table
}

// maxCoord bounds segment coordinates so that truncation to int and the
// width/height differences cannot overflow.
const maxCoord = math.MaxInt32

func record(c Corner, x, y int) CornerRecord {
	return CornerRecord{X: x, Y: y, Loc: c, V: c.Vertical(), H: c.Horizontal()}
}

// FromSegments builds a Quad from the sides of a boundary by taking the
// minimum X1/Y1 and the maximum X2/Y2 over all segments. Coordinates are
// truncated to integers.
//
// At least four segments are required. If the result has no width or no
// height the Quad is still returned, together with ErrDegenerateBoundary.
func FromSegments(segs []Segment) (Quad, error) {
	if len(segs) < 4 {
		return Quad{}, fmt.Errorf("%w: need at least 4 segments, got %d", ErrInvalidBoundaryInput, len(segs))
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i, s := range segs {
		for _, v := range [4]float64{s.X1, s.Y1, s.X2, s.Y2} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Quad{}, fmt.Errorf("%w: segment %d has non-finite coordinate", ErrInvalidBoundaryInput, i)
			}
			if math.Abs(v) > maxCoord {
				return Quad{}, fmt.Errorf("%w: segment %d coordinate %g out of range", ErrInvalidBoundaryInput, i, v)
			}
		}
		xMin = math.Min(xMin, s.X1)
		xMax = math.Max(xMax, s.X2)
		yMin = math.Min(yMin, s.Y1)
		yMax = math.Max(yMax, s.Y2)
	}

	x0, x1 := int(xMin), int(xMax)
	y0, y1 := int(yMin), int(yMax)
	q := Quad{table: Table{
		record(TopLeft, x0, y0),
		record(TopRight, x1, y0),
		record(BottomLeft, x0, y1),
		record(BottomRight, x1, y1),
	}}

	if x1 <= x0 || y1 <= y0 {
		return q, fmt.Errorf("%w: %dx%d", ErrDegenerateBoundary, x1-x0, y1-y0)
	}
	return q, nil
}

// FromTable wraps an existing corner table. Coordinates are copied as they
// are; only the labels are checked.
func FromTable(t Table) (Quad, error) {
	for i, r := range t {
		c := Corner(i)
		if r.Loc != c || r.V != c.Vertical() || r.H != c.Horizontal() {
			return Quad{}, fmt.Errorf("%w: row %d labelled %s/%s%s", ErrInvalidBoundaryInput, i, r.Loc, r.V, r.H)
		}
	}
	return Quad{table: t}, nil
}

// FromCorners builds a Quad from four already known corner points.
func FromCorners(tl, tr, bl, br Point) Quad {
	return Quad{table: Table{
		record(TopLeft, tl.X, tl.Y),
		record(TopRight, tr.X, tr.Y),
		record(BottomLeft, bl.X, bl.Y),
		record(BottomRight, br.X, br.Y),
	}}
}

// Table returns a copy of the corner table.
func (q Quad) Table() Table { return q.table }

// Corner returns the position of corner c. It panics if c is not Valid.
func (q Quad) Corner(c Corner) Point {
	if !c.Valid() {
		panic(fmt.Sprintf("astrobox: invalid corner %s", c))
	}
	r := q.table[c]
	return Point{X: r.X, Y: r.Y}
}

// TopLeft returns the top-left corner.
func (q Quad) TopLeft() Point { return q.Corner(TopLeft) }

// TopRight returns the top-right corner.
func (q Quad) TopRight() Point { return q.Corner(TopRight) }

// BottomLeft returns the bottom-left corner.
func (q Quad) BottomLeft() Point { return q.Corner(BottomLeft) }

// BottomRight returns the bottom-right corner.
func (q Quad) BottomRight() Point { return q.Corner(BottomRight) }

// Corners returns the four corners in the order tl, tr, bl, br.
func (q Quad) Corners() [4]Point {
	return [4]Point{q.TopLeft(), q.TopRight(), q.BottomLeft(), q.BottomRight()}
}

// String formats the four corners for logging.
func (q Quad) String() string {
	return fmt.Sprintf("Quad{tl:%v tr:%v bl:%v br:%v}", q.TopLeft(), q.TopRight(), q.BottomLeft(), q.BottomRight())
}
