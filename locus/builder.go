package locus

import (
	"github.com/t0rst/carousel"
)

// Builder assembles a locus segment by segment. Obtain one with Build,
// add segments, and finish with Close or End. The builder records the
// first error it encounters and reports it when finishing.
//
//	l, err := locus.Build().
//		Start(carousel.P(0, 0)).
//		SubdividedCurveTo(b, c, d, 4).
//		DegenerateAt(2).
//		ReturnCurve(0.5).
//		Close()
type Builder struct {
	points []carousel.Pair
	err    error
}

// Build starts an empty locus build.
func Build() *Builder {
	return &Builder{}
}

// Start sets the first anchor point. Must be called exactly once, before
// any segment is added.
func (b *Builder) Start(p carousel.Pair) *Builder {
	if len(b.points) > 0 {
		panic("locus build already started")
	}
	b.points = append(b.points, p)
	return b
}

// CurveTo appends one cubic segment from the current point to d, with
// interior controls c1 and c2.
func (b *Builder) CurveTo(c1, c2, d carousel.Pair) *Builder {
	if len(b.points) == 0 {
		panic("cannot add curve to empty locus build")
	}
	b.points = append(b.points, c1, c2, d)
	return b
}

// SubdividedCurveTo appends a cubic from the current point to d, split
// into n equal-parameter sub-segments, so that each unit of the locus
// parameter covers 1/n of the curve.
func (b *Builder) SubdividedCurveTo(c1, c2, d carousel.Pair, n int) *Builder {
	if len(b.points) == 0 {
		panic("cannot add curve to empty locus build")
	}
	if n < 1 {
		n = 1
	}
	a := b.points[len(b.points)-1]
	sub := Cubic{a, c1, c2, d}.Subdivided(n)
	b.points = append(b.points, sub[1:]...)
	return b
}

// DegenerateAt appends n zero-length segments pinned to the current
// point. Degenerate segments keep point-index arithmetic uniform for
// items that do not move.
func (b *Builder) DegenerateAt(n int) *Builder {
	if len(b.points) == 0 {
		panic("cannot add segments to empty locus build")
	}
	p := b.points[len(b.points)-1]
	for i := 0; i < n; i++ {
		b.points = append(b.points, p, p, p)
	}
	return b
}

// ReturnCurve appends a closing cubic from the current point back to the
// start point. Its interior controls are extrapolated from the chord
// directions at the two endpoints, scaled by overshoot. The chords skip
// coincident points, so degenerate segments next to an endpoint do not
// flatten the return. An overshoot of 0 yields a straight return.
func (b *Builder) ReturnCurve(overshoot float64) *Builder {
	if len(b.points) == 0 {
		panic("cannot close empty locus build")
	}
	open, err := New(b.points)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	start := b.points[0]
	end := b.points[len(b.points)-1]
	into := open.Vector(Incoming, open.N()-1) // chord arriving at end
	outof := open.Vector(Outgoing, 0)         // chord departing start
	c1 := end + into.Scaled(overshoot)
	c2 := start - outof.Scaled(overshoot)
	b.points = append(b.points, c1, c2, start)
	return b
}

// Close finishes the build and requires the result to be a closed cycle.
func (b *Builder) Close() (*Locus, error) {
	l, err := b.End()
	if err != nil {
		return nil, err
	}
	if !l.IsClosed() {
		return nil, ErrNotClosed
	}
	return l, nil
}

// End finishes the build without requiring closure.
func (b *Builder) End() (*Locus, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.points) == 0 {
		return nil, ErrEmptyBuild
	}
	return New(b.points)
}
