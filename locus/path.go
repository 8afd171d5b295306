package locus

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/t0rst/carousel"
)

// PathOp discriminates path elements.
type PathOp int8

const (
	// MoveOp starts the path at To.
	MoveOp PathOp = iota
	// CurveOp adds a cubic to To with controls C1 and C2.
	CurveOp
	// CloseOp closes the path back to the start point.
	CloseOp
)

// PathElement is one drawing instruction of a rendered locus.
type PathElement struct {
	Op     PathOp
	C1, C2 carousel.Pair
	To     carousel.Pair
}

// AsPath renders the locus as a drawable element sequence: one move, one
// curve per segment, and a close. Hosts feed this to their path or
// keyframe-animation primitives.
func (l *Locus) AsPath() []PathElement {
	k := l.N()
	path := make([]PathElement, 0, k+2)
	path = append(path, PathElement{Op: MoveOp, To: l.points[0]})
	for t := 0; t < k; t++ {
		seg := l.Segment(t)
		path = append(path, PathElement{Op: CurveOp, C1: seg.B, C2: seg.C, To: seg.D})
	}
	path = append(path, PathElement{Op: CloseOp, To: l.points[0]})
	return path
}

// Flattened samples the locus into a polygon contour with steps points
// per segment. Degenerate segments contribute coincident points. The
// contour backs the debug overlay's bounds and containment queries.
func (l *Locus) Flattened(steps int) polyclip.Contour {
	if steps < 1 {
		steps = 1
	}
	k := l.N()
	if k == 0 {
		x, y := l.points[0].F()
		return polyclip.Contour{{X: x, Y: y}}
	}
	contour := make(polyclip.Contour, 0, k*steps)
	for t := 0; t < k; t++ {
		seg := l.Segment(t)
		for i := 0; i < steps; i++ {
			x, y := seg.Eval(float64(i) / float64(steps)).F()
			contour = append(contour, polyclip.Point{X: x, Y: y})
		}
	}
	return contour
}

// AsString returns the locus as a debugging string, one segment per
// ".. controls .. and .." join, closing with "cycle" when the path is
// closed.
func AsString(l *Locus) string {
	if l == nil {
		return "<nil locus>"
	}
	k := l.N()
	if k == 0 {
		return fmt.Sprintf("%s .. cycle", ptstring(l.points[0]))
	}
	s := ptstring(l.points[0])
	for t := 0; t < k; t++ {
		seg := l.Segment(t)
		s += fmt.Sprintf(" .. controls %s and %s\n  .. ", ptstring(seg.B), ptstring(seg.C))
		if t == k-1 && l.IsClosed() {
			s += "cycle"
		} else {
			s += ptstring(seg.D)
		}
	}
	return s
}

func ptstring(p carousel.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
