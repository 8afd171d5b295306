package locus

import (
	"fmt"
	"math"

	"github.com/t0rst/carousel"
)

// Positions within this distance of a segment boundary rotate exactly,
// without re-splitting.
const boundaryTolerance = 1e-10

// New creates a locus over the given control points. The points are
// copied. The count must be 3k+1 for non-negative k; a single point is a
// valid (fully collapsed) locus.
func New(points []carousel.Pair) (*Locus, error) {
	if len(points) == 0 || len(points)%3 != 1 {
		return nil, fmt.Errorf("%w: got %d points", ErrBadPointCount, len(points))
	}
	for i, p := range points {
		x, y := p.F()
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w at index %d", ErrInvalidPoint, i)
		}
	}
	l := &Locus{points: make([]carousel.Pair, len(points))}
	copy(l.points, points)
	return l, nil
}

// Must is a helper which panics where New would return an error.
func Must(points []carousel.Pair) *Locus {
	l, err := New(points)
	if err != nil {
		panic(err)
	}
	return l
}

// N returns the number of Bézier segments.
func (l *Locus) N() int {
	return (len(l.points) - 1) / 3
}

// PointCount returns the number of stored control points, 3·N()+1.
func (l *Locus) PointCount() int {
	return len(l.points)
}

// Points returns a copy of the control point sequence.
func (l *Locus) Points() []carousel.Pair {
	pts := make([]carousel.Pair, len(l.points))
	copy(pts, l.points)
	return pts
}

// IsClosed is a predicate: does the last point coincide with the first?
// A single-point locus counts as closed.
func (l *Locus) IsClosed() bool {
	return l.points[0].Equal(l.points[len(l.points)-1])
}

// Segment returns the control point quadruple of segment (t mod N).
func (l *Locus) Segment(t int) Cubic {
	k := l.N()
	if k == 0 {
		p := l.points[0]
		return Cubic{p, p, p, p}
	}
	t = carousel.RotateIndex(t, 0, k)
	i := 3 * t
	return Cubic{l.points[i], l.points[i+1], l.points[i+2], l.points[i+3]}
}

// PointAt evaluates a point at the continuous parameter t. The integer
// part of t selects a segment cyclically, the fractional part the
// position within it.
func (l *Locus) PointAt(t float64) carousel.Pair {
	k := l.N()
	if k == 0 {
		return l.points[0]
	}
	seg, frac := carousel.SplitPosition(t, k)
	return l.Segment(seg).Eval(frac)
}

// Vector returns the chord leading out of segment t's start anchor
// (Outgoing) or into its end anchor (Incoming). Coincident control
// points are skipped, scanning onwards cyclically, so that the chord of
// a degenerate segment is taken from the nearest shaped neighbor; the
// duplicated terminal point of a closed locus is skipped on wrap.
// A fully collapsed locus yields the zero vector.
func (l *Locus) Vector(sense Sense, t int) carousel.Pair {
	k := l.N()
	if k == 0 {
		return carousel.Origin
	}
	n := 3 * k // cyclic index range; points[n] duplicates points[0]
	t = carousel.RotateIndex(t, 0, k)
	if sense == Outgoing {
		anchor := l.points[3*t]
		for step := 1; step <= n; step++ {
			q := l.points[carousel.RotateIndex(3*t+step, 0, n)]
			if !q.Equal(anchor) {
				return q - anchor
			}
		}
		return carousel.Origin
	}
	anchor := l.points[3*t+3]
	for step := 1; step <= n; step++ {
		q := l.points[carousel.RotateIndex(3*t+3-step, 0, n)]
		if !q.Equal(anchor) {
			return anchor - q
		}
	}
	return carousel.Origin
}

// Rotated returns a new closed locus whose segment 0 is the original
// segment startingAt. With forwards false the new locus traverses the
// original in the opposite direction, starting from the same anchor.
// Closure is preserved; rotating by 0 forwards is the identity.
func (l *Locus) Rotated(startingAt int, forwards bool) (*Locus, error) {
	k := l.N()
	if k == 0 {
		return New(l.points)
	}
	if !l.IsClosed() {
		return nil, ErrNotClosed
	}
	n := 3 * k
	pts := make([]carousel.Pair, n+1)
	s := carousel.RotateIndex(startingAt, 0, k)
	for i := 0; i < n; i++ {
		if forwards {
			pts[i] = l.points[carousel.RotateIndex(3*s+i, 0, n)]
		} else {
			pts[i] = l.points[carousel.RotateIndex(3*s-i, 0, n)]
		}
	}
	pts[n] = pts[0]
	return New(pts)
}

// RotatedAt returns a new closed locus starting exactly at the continuous
// parameter t. If t lands on a segment boundary (within tolerance) this
// is a plain rotation; otherwise the segment containing t is re-split at
// the fractional position, so the result gains one segment. The rotated
// locus is what a keyframe animation follows from an item's current spot.
func (l *Locus) RotatedAt(t float64, forwards bool) (*Locus, error) {
	k := l.N()
	if k == 0 {
		return New(l.points)
	}
	if !l.IsClosed() {
		return nil, ErrNotClosed
	}
	if !forwards {
		rev, err := l.reversed()
		if err != nil {
			return nil, err
		}
		return rev.RotatedAt(float64(k)-t, true)
	}
	seg, frac := carousel.SplitPosition(t, k)
	if frac <= boundaryTolerance {
		return l.Rotated(seg, true)
	}
	if frac >= 1-boundaryTolerance {
		return l.Rotated(seg+1, true)
	}
	base, err := l.Rotated(seg, true)
	if err != nil {
		return nil, err
	}
	head, tail := base.Segment(0).Split(frac)
	pts := make([]carousel.Pair, 0, 3*(k+1)+1)
	pts = append(pts, tail.A, tail.B, tail.C, tail.D)
	pts = append(pts, base.points[4:]...) // segments 1..k-1 and the closing anchor
	// replace the duplicated terminal anchor with the re-split head
	pts[len(pts)-1] = head.A
	pts = append(pts, head.B, head.C, head.D)
	return New(pts)
}

// reversed returns the locus traversed in the opposite direction.
func (l *Locus) reversed() (*Locus, error) {
	n := len(l.points)
	pts := make([]carousel.Pair, n)
	for i := range pts {
		pts[i] = l.points[n-1-i]
	}
	return New(pts)
}
