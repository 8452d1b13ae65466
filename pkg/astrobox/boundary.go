package astrobox

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type cornerPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type boundaryDoc struct {
	Segments []Segment            `yaml:"segments"`
	Corners  map[string]cornerPos `yaml:"corners"`
}

// ParseBoundary reads a boundary description in YAML or JSON. The document
// holds either a list of segments
//
//	segments:
//	  - {x1: 0, y1: 0, x2: 10, y2: 0}
//	  ...
//
// or the four corners keyed by label
//
//	corners:
//	  tl: {x: 0, y: 0}
//	  tr: {x: 10, y: 0}
//	  bl: {x: 0, y: 5}
//	  br: {x: 10, y: 5}
//
// Errors from FromSegments are passed through unchanged, including the
// Quad returned with ErrDegenerateBoundary.
func ParseBoundary(data []byte) (Quad, error) {
	var doc boundaryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Quad{}, fmt.Errorf("%w: %v", ErrInvalidBoundaryInput, err)
	}

	switch {
	case len(doc.Segments) > 0 && len(doc.Corners) > 0:
		return Quad{}, fmt.Errorf("%w: both segments and corners given", ErrInvalidBoundaryInput)
	case len(doc.Corners) > 0:
		return quadFromLabels(doc.Corners)
	}

	log.Debug().Int("segments", len(doc.Segments)).Msg("parsed boundary segments")
	return FromSegments(doc.Segments)
}

func quadFromLabels(labels map[string]cornerPos) (Quad, error) {
	var pts [4]Point
	var seen [4]bool
	for label, pos := range labels {
		c, err := ParseCorner(label)
		if err != nil {
			return Quad{}, err
		}
		pts[c] = Pt(pos.X, pos.Y)
		seen[c] = true
	}
	for _, c := range AllCorners {
		if !seen[c] {
			return Quad{}, fmt.Errorf("%w: corner %s missing", ErrInvalidBoundaryInput, c)
		}
	}
	return FromCorners(pts[TopLeft], pts[TopRight], pts[BottomLeft], pts[BottomRight]), nil
}
