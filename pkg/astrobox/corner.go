package astrobox

import "fmt"

// Corner names one of the four labelled positions of a Quad.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// AllCorners lists the corners in table order.
var AllCorners = [4]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

// VTag is the vertical half a corner belongs to.
type VTag uint8

const (
	Top VTag = iota
	Bottom
)

// HTag is the horizontal half a corner belongs to.
type HTag uint8

const (
	Left HTag = iota
	Right
)

var cornerNames = [4]string{"tl", "tr", "bl", "br"}

// String returns the short label, e.g. "tl".
func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return fmt.Sprintf("Corner(%d)", uint8(c))
}

// Valid reports whether c is one of the four defined corners.
func (c Corner) Valid() bool { return c <= BottomRight }

// Vertical returns the Top/Bottom tag of c.
func (c Corner) Vertical() VTag {
	if c == BottomLeft || c == BottomRight {
		return Bottom
	}
	return Top
}

// Horizontal returns the Left/Right tag of c.
func (c Corner) Horizontal() HTag {
	if c == TopRight || c == BottomRight {
		return Right
	}
	return Left
}

// ParseCorner maps the short labels "tl", "tr", "bl" and "br" to a Corner.
func ParseCorner(s string) (Corner, error) {
	for i, name := range cornerNames {
		if s == name {
			return Corner(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown corner label %q", ErrInvalidBoundaryInput, s)
}

// String returns "t" or "b".
func (v VTag) String() string {
	if v == Bottom {
		return "b"
	}
	return "t"
}

// String returns "l" or "r".
func (h HTag) String() string {
	if h == Right {
		return "r"
	}
	return "l"
}
