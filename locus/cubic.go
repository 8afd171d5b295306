package locus

import (
	"github.com/t0rst/carousel"
)

// Eval evaluates the cubic at parameter t using the Bernstein form.
func (c Cubic) Eval(t float64) carousel.Pair {
	mt := 1 - t
	a := c.A.Scaled(mt * mt * mt)
	b := c.B.Scaled(3 * mt * mt * t)
	cc := c.C.Scaled(3 * mt * t * t)
	d := c.D.Scaled(t * t * t)
	return a + b + cc + d
}

// Derivative evaluates the first derivative of the cubic at parameter t.
func (c Cubic) Derivative(t float64) carousel.Pair {
	mt := 1 - t
	ab := (c.B - c.A).Scaled(3 * mt * mt)
	bc := (c.C - c.B).Scaled(6 * mt * t)
	cd := (c.D - c.C).Scaled(3 * t * t)
	return ab + bc + cd
}

// IsDegenerate is a predicate: do all four control points coincide?
func (c Cubic) IsDegenerate() bool {
	return c.A.Equal(c.B) && c.A.Equal(c.C) && c.A.Equal(c.D)
}

// Split divides the cubic at parameter u by de Casteljau's construction,
// returning the [0,u] and [u,1] halves. Both halves trace the same curve
// as the original.
func (c Cubic) Split(u float64) (Cubic, Cubic) {
	ab := c.A.Interpolated(c.B, u)
	bc := c.B.Interpolated(c.C, u)
	cd := c.C.Interpolated(c.D, u)
	abbc := ab.Interpolated(bc, u)
	bccd := bc.Interpolated(cd, u)
	mid := abbc.Interpolated(bccd, u)
	return Cubic{c.A, ab, abbc, mid}, Cubic{mid, bccd, cd, c.D}
}

// Subsegment returns the cubic restricted to the parameter interval
// [t0,t1], reparameterized over [0,1]: endpoints are evaluated directly
// and the interior controls derived from the endpoint derivatives.
func (c Cubic) Subsegment(t0, t1 float64) Cubic {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) / 3
	p1 := p0 + c.Derivative(t0).Scaled(scale)
	p2 := p3 - c.Derivative(t1).Scaled(scale)
	return Cubic{p0, p1, p2, p3}
}

// Subdivided splits the cubic into n equal-parameter sub-cubics and
// returns their 3n+1 shared control points. Adjacent sub-cubics share
// their boundary anchors exactly.
func (c Cubic) Subdivided(n int) []carousel.Pair {
	if n <= 1 {
		return []carousel.Pair{c.A, c.B, c.C, c.D}
	}
	points := make([]carousel.Pair, 0, 3*n+1)
	points = append(points, c.A)
	prev := c.A
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		sub := c.Subsegment(t0, t1)
		sub.A = prev // keep shared anchors bit-identical
		if i == n-1 {
			sub.D = c.D
		}
		points = append(points, sub.B, sub.C, sub.D)
		prev = sub.D
	}
	return points
}
