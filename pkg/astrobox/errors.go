package astrobox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBoundaryInput reports a boundary that cannot form a Quad.
	ErrInvalidBoundaryInput = errors.New("invalid boundary input")
	// ErrDegenerateBoundary reports a Quad with no width or no height.
	ErrDegenerateBoundary = fmt.Errorf("%w: degenerate boundary", ErrInvalidBoundaryInput)
	// ErrOutOfBounds reports a crop that does not fit its frame.
	ErrOutOfBounds = errors.New("crop rectangle out of frame bounds")
)
