package locus

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/t0rst/carousel"
)

// tracer writes to trace with key 'locus'
func tracer() tracing.Trace {
	return tracing.Select("locus")
}

var (
	// ErrNilLocus indicates a nil locus pointer.
	ErrNilLocus = errors.New("locus must not be nil")
	// ErrBadPointCount indicates a point count that is not 3k+1.
	ErrBadPointCount = errors.New("locus point count must be 3k+1")
	// ErrInvalidPoint indicates a control point containing NaN/Inf.
	ErrInvalidPoint = errors.New("locus has invalid control point")
	// ErrNotClosed indicates a cycle operation on a locus whose last point
	// differs from its first.
	ErrNotClosed = errors.New("locus is not closed")
	// ErrNoSegments indicates a segment operation on a single-point locus.
	ErrNoSegments = errors.New("locus has no segments")
	// ErrEmptyBuild indicates a builder finishing without a start point.
	ErrEmptyBuild = errors.New("locus build has no start point")
)

// Cubic is one Bézier segment: anchors A and D, interior controls B and C.
type Cubic struct {
	A, B, C, D carousel.Pair
}

// Sense selects which chord Vector reports at a segment anchor.
type Sense int8

const (
	// Outgoing is the chord leading out of a segment's start anchor.
	Outgoing Sense = iota
	// Incoming is the chord leading into a segment's end anchor.
	Incoming
)

// Locus is a closed path of k consecutive cubic Bézier segments sharing
// endpoints, stored as a flat sequence of 3k+1 control points. Point 3t is
// anchor A of segment t, points 3t+1 and 3t+2 its interior controls, and
// point 3t+3 its end anchor, which doubles as the next segment's start.
// A full cycle additionally requires the last point to equal the first.
type Locus struct {
	points []carousel.Pair
}
