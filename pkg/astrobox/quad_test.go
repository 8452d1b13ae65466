package astrobox

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boxSegments = []Segment{
	{X1: 0, Y1: 0, X2: 10, Y2: 0},
	{X1: 10, Y1: 0, X2: 10, Y2: 5},
	{X1: 0, Y1: 5, X2: 10, Y2: 5},
	{X1: 0, Y1: 0, X2: 0, Y2: 5},
}

func TestFromSegments(t *testing.T) {
	q, err := FromSegments(boxSegments)
	require.NoError(t, err)

	assert.Equal(t, Pt(0, 0), q.TopLeft())
	assert.Equal(t, Pt(10, 0), q.TopRight())
	assert.Equal(t, Pt(0, 5), q.BottomLeft())
	assert.Equal(t, Pt(10, 5), q.BottomRight())
	assert.Equal(t, [4]Point{Pt(0, 0), Pt(10, 0), Pt(0, 5), Pt(10, 5)}, q.Corners())
}

func TestFromSegmentsTruncates(t *testing.T) {
	q, err := FromSegments([]Segment{
		{X1: 3.9, Y1: 1.2, X2: 40.7, Y2: 1.5},
		{X1: 40.1, Y1: 1.5, X2: 40.7, Y2: 22.8},
		{X1: 3.9, Y1: 22.1, X2: 40.2, Y2: 22.8},
		{X1: 3.9, Y1: 1.2, X2: 4.0, Y2: 22.5},
	})
	require.NoError(t, err)
	assert.Equal(t, Pt(3, 1), q.TopLeft())
	assert.Equal(t, Pt(40, 22), q.BottomRight())
}

func TestFromSegmentsLabels(t *testing.T) {
	q, err := FromSegments(boxSegments)
	require.NoError(t, err)

	for i, r := range q.Table() {
		c := Corner(i)
		assert.Equal(t, c, r.Loc)
		assert.Equal(t, c.Vertical(), r.V)
		assert.Equal(t, c.Horizontal(), r.H)
	}
	assert.Equal(t, Top, q.Table()[TopRight].V)
	assert.Equal(t, Right, q.Table()[TopRight].H)
	assert.Equal(t, Bottom, q.Table()[BottomLeft].V)
	assert.Equal(t, Left, q.Table()[BottomLeft].H)
}

func TestFromSegmentsInvalid(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
	}{
		{"none", nil},
		{"three", boxSegments[:3]},
		{"nan", append([]Segment{{X1: math.NaN()}}, boxSegments[1:]...)},
		{"inf", append([]Segment{{Y2: math.Inf(1)}}, boxSegments[1:]...)},
		{"huge", append([]Segment{{X1: -1e20, X2: 10}}, boxSegments[1:]...)},
		{"huge y", append([]Segment{{Y2: 3e9}}, boxSegments[1:]...)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromSegments(tc.segs)
			assert.ErrorIs(t, err, ErrInvalidBoundaryInput)
			assert.False(t, errors.Is(err, ErrDegenerateBoundary))
		})
	}
}

func TestFromSegmentsDegenerate(t *testing.T) {
	flat := []Segment{
		{X1: 0, Y1: 3, X2: 10, Y2: 3},
		{X1: 0, Y1: 3, X2: 10, Y2: 3},
		{X1: 0, Y1: 3, X2: 10, Y2: 3},
		{X1: 0, Y1: 3, X2: 10, Y2: 3},
	}
	q, err := FromSegments(flat)
	assert.ErrorIs(t, err, ErrDegenerateBoundary)
	assert.ErrorIs(t, err, ErrInvalidBoundaryInput)

	// the quad is still usable by callers that only want a warning
	assert.Equal(t, 10, q.WidthBounding())
	assert.Equal(t, 0, q.HeightBounding())
}

func TestFromSegmentsMoreThanFour(t *testing.T) {
	segs := append([]Segment{{X1: -2, Y1: 1, X2: 3, Y2: 1}}, boxSegments...)
	q, err := FromSegments(segs)
	require.NoError(t, err)
	assert.Equal(t, Pt(-2, 0), q.TopLeft())
}

func TestFromTableRoundTrip(t *testing.T) {
	q := FromCorners(Pt(2, 1), Pt(12, 3), Pt(0, 9), Pt(10, 11))

	again, err := FromTable(q.Table())
	require.NoError(t, err)
	assert.Equal(t, q.Corners(), again.Corners())
	assert.Equal(t, q, again)
}

func TestFromTableBadLabels(t *testing.T) {
	_, err := FromTable(Table{})
	assert.ErrorIs(t, err, ErrInvalidBoundaryInput)

	q := FromCorners(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1))
	tbl := q.Table()
	tbl[BottomRight].H = Left
	_, err = FromTable(tbl)
	assert.ErrorIs(t, err, ErrInvalidBoundaryInput)
}

func TestCornerInvalidPanics(t *testing.T) {
	q := FromCorners(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1))
	assert.PanicsWithValue(t, "astrobox: invalid corner Corner(9)", func() { q.Corner(Corner(9)) })
	assert.Equal(t, Pt(1, 1), q.Corner(BottomRight))
}

func TestTableIsCopy(t *testing.T) {
	q := FromCorners(Pt(0, 0), Pt(4, 0), Pt(0, 4), Pt(4, 4))
	tbl := q.Table()
	tbl[TopLeft].X = 99
	assert.Equal(t, Pt(0, 0), q.TopLeft())
}

func TestCornerNames(t *testing.T) {
	for _, c := range AllCorners {
		parsed, err := ParseCorner(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "br", BottomRight.String())
	assert.False(t, Corner(7).Valid())

	_, err := ParseCorner("middle")
	assert.ErrorIs(t, err, ErrInvalidBoundaryInput)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Pt(0, 0), Pt(3, 4)))
	assert.Equal(t, 0.0, Distance(Pt(7, 7), Pt(7, 7)))
	assert.Equal(t, Distance(Pt(1, 2), Pt(-4, 9)), Distance(Pt(-4, 9), Pt(1, 2)))
}
