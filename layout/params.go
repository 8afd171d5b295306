// Package layout derives per-item placement for a fanned-deck carousel:
// given an item count, an available area and a small parameter set, it
// builds the working geometry (face and pack rectangles, the closed locus
// between them, scale and alpha progressions) and evaluates rectangle,
// opacity, stacking order and visibility for any item at any continuous
// position. All evaluation is a pure function of the cached working
// geometry and the queried position.
package layout

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/t0rst/carousel"
)

// tracer writes to trace with key 'layout'
func tracer() tracing.Trace {
	return tracing.Select("layout")
}

// Params is the external configuration of a layout pass. A Params value
// is immutable as far as the engine is concerned: mutate a copy and hand
// it back via Engine.SetParams, which invalidates the working geometry.
type Params struct {
	// SpreadCount is the number of items shown fanned out before the rest
	// compress into the pack. Clamped to [0, itemCount−1] per pass.
	SpreadCount int
	// FaceSize is the explicit size of the face item; zero means derive
	// from the available area and spread count.
	FaceSize carousel.Pair
	// FacePosition and PackPosition are normalized anchors in [0,1]²
	// locating the face and pack rectangles within the available area.
	FacePosition carousel.Pair
	PackPosition carousel.Pair
	// PackScale is the size ratio of pack items to the face item, in (0,1].
	PackScale float64
	// LocusControls are the four control points of the single cubic
	// defining the path shape from face to pack, in an abstract unit
	// frame anchored at the first point.
	LocusControls [4]carousel.Pair
	// ReturnOvershoot scales how far the return path's tangent-derived
	// controls overshoot beyond the endpoints.
	ReturnOvershoot float64
	// ShowLocus toggles the debug overlay of the locus path.
	ShowLocus bool
}

// DefaultLocusControls is the evenly spaced, straight-line-equivalent
// cubic from the face corner to the pack corner of the unit frame.
func DefaultLocusControls() [4]carousel.Pair {
	return [4]carousel.Pair{
		carousel.P(0, 0),
		carousel.P(1.0/3.0, 1.0/3.0),
		carousel.P(2.0/3.0, 2.0/3.0),
		carousel.P(1, 1),
	}
}

// DefaultParams returns the parameter set used when no configuration is
// supplied: five spread items rising from a bottom-left face to a
// top-right pack at 40% scale, along a straight locus.
func DefaultParams() Params {
	return Params{
		SpreadCount:     5,
		FaceSize:        carousel.Origin,
		FacePosition:    carousel.P(0, 1),
		PackPosition:    carousel.P(1, 0),
		PackScale:       0.4,
		LocusControls:   DefaultLocusControls(),
		ReturnOvershoot: 1.0,
	}
}

// Equal compares two parameter sets within Epsilon.
func (p Params) Equal(q Params) bool {
	if p.SpreadCount != q.SpreadCount || p.ShowLocus != q.ShowLocus {
		return false
	}
	if !p.FaceSize.Equal(q.FaceSize) ||
		!p.FacePosition.Equal(q.FacePosition) ||
		!p.PackPosition.Equal(q.PackPosition) {
		return false
	}
	if !carousel.Is0(p.PackScale-q.PackScale) ||
		!carousel.Is0(p.ReturnOvershoot-q.ReturnOvershoot) {
		return false
	}
	for i := range p.LocusControls {
		if !p.LocusControls[i].Equal(q.LocusControls[i]) {
			return false
		}
	}
	return true
}
