package astrobox

import (
	"fmt"
	"image"

	"github.com/rs/zerolog/log"
)

// Frame is a row-major raster that can hand out rectangular sub-regions.
// Rectangles are given in column (X) / row (Y) coordinates with the origin
// at the first row and column. Whether Region copies or aliases the pixels
// is up to the implementation.
type Frame[F any] interface {
	Rows() int
	Cols() int
	Region(r image.Rectangle) F
}

// CropPolicy decides what happens when a crop leaves the frame.
type CropPolicy uint8

const (
	// Reject fails with ErrOutOfBounds.
	Reject CropPolicy = iota
	// Clamp crops to the part that lies inside the frame.
	Clamp
)

// String returns the policy name accepted by ParseCropPolicy.
func (p CropPolicy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Clamp:
		return "clamp"
	}
	return fmt.Sprintf("CropPolicy(%d)", uint8(p))
}

// ParseCropPolicy maps "reject" and "clamp" to a CropPolicy.
func ParseCropPolicy(s string) (CropPolicy, error) {
	switch s {
	case "reject", "":
		return Reject, nil
	case "clamp":
		return Clamp, nil
	}
	return Reject, fmt.Errorf("unknown crop policy %q", s)
}

// CropRect returns the pixel rectangle covered by the bounding rectangle of
// q inside a frame of the given size: rows [tl.Y, br.Y) and columns
// [tl.X, br.X). A quad whose right corners lie left of its left corners,
// or whose bottom corners lie above its top corners, is never flipped
// into a valid rectangle; it fails with ErrInvalidBoundaryInput.
func (q Quad) CropRect(rows, cols int, policy CropPolicy) (image.Rectangle, error) {
	if w, h := q.SizeBounding(); w < 0 || h < 0 {
		return image.Rectangle{}, fmt.Errorf("%w: bounding size %dx%d is negative", ErrInvalidBoundaryInput, w, h)
	}
	b := q.BoundingRect()
	r := image.Rectangle{Min: b.TopLeft().Image(), Max: b.BottomRight().Image()}
	bounds := image.Rect(0, 0, cols, rows)

	// image.Rectangle.In accepts any empty rectangle, so compare the edges.
	if r.Min.X >= 0 && r.Min.Y >= 0 && r.Max.X <= cols && r.Max.Y <= rows {
		return r, nil
	}
	if policy != Clamp {
		return image.Rectangle{}, fmt.Errorf("%w: %v not within %v", ErrOutOfBounds, r, bounds)
	}

	clamped := r.Intersect(bounds)
	if clamped.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: %v does not overlap %v", ErrOutOfBounds, r, bounds)
	}
	log.Debug().Msgf("crop %v clamped to %v", r, clamped)
	return clamped, nil
}

// CropTo extracts the bounding rectangle of q from frame and fails with
// ErrOutOfBounds if it does not fit.
func CropTo[F Frame[F]](q Quad, frame F) (F, error) {
	return CropToWith(q, frame, Reject)
}

// CropToWith is CropTo with an explicit policy for rectangles that leave
// the frame.
func CropToWith[F Frame[F]](q Quad, frame F, policy CropPolicy) (F, error) {
	r, err := q.CropRect(frame.Rows(), frame.Cols(), policy)
	if err != nil {
		var zero F
		return zero, err
	}
	return frame.Region(r), nil
}
