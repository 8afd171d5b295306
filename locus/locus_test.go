package locus

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/t0rst/carousel"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func pairsEqual(t *testing.T, got, want []carousel.Pair) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("point count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// a closed two-segment test locus: unit-ish arc out and a straight chord back
func testlocus() *Locus {
	return Must([]carousel.Pair{
		carousel.P(0, 0),
		carousel.P(1, 0), carousel.P(2, 1), carousel.P(3, 1),
		carousel.P(2, 0.5), carousel.P(1, 0.5), carousel.P(0, 0),
	})
}

func TestNewValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := New(nil); !errors.Is(err, ErrBadPointCount) {
		t.Fatalf("expected ErrBadPointCount for empty, got %v", err)
	}
	pts := []carousel.Pair{carousel.P(0, 0), carousel.P(1, 1)}
	if _, err := New(pts); !errors.Is(err, ErrBadPointCount) {
		t.Fatalf("expected ErrBadPointCount for 2 points, got %v", err)
	}
	bad := testlocus().Points()
	bad[2] = carousel.Pair(complex(math.NaN(), 0))
	if _, err := New(bad); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("expected ErrInvalidPoint, got %v", err)
	}
	mustPanic(t, func() { Must(pts) })
}

func TestPointCountInvariant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, l := range []*Locus{
		Must([]carousel.Pair{carousel.P(4, 4)}),
		testlocus(),
	} {
		if l.PointCount()%3 != 1 {
			t.Errorf("point count %d not ≡ 1 (mod 3)", l.PointCount())
		}
		if l.PointCount() != 3*l.N()+1 {
			t.Errorf("point count %d does not match %d segments", l.PointCount(), l.N())
		}
	}
}

func TestPointAt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	if !l.PointAt(0).Equal(carousel.P(0, 0)) {
		t.Errorf("point at 0 should be the first anchor")
	}
	if !l.PointAt(1).Equal(carousel.P(3, 1)) {
		t.Errorf("point at 1 should be the shared anchor, got %v", l.PointAt(1))
	}
	// cyclic: parameter wraps with period N
	if !l.PointAt(2.5).Equal(l.PointAt(0.5)) {
		t.Errorf("point at 2.5 should equal point at 0.5")
	}
	if !l.PointAt(-0.5).Equal(l.PointAt(1.5)) {
		t.Errorf("point at -0.5 should equal point at 1.5")
	}
}

func TestPointAtSinglePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := Must([]carousel.Pair{carousel.P(7, 8)})
	for _, at := range []float64{-2, 0, 0.3, 9} {
		if !l.PointAt(at).Equal(carousel.P(7, 8)) {
			t.Errorf("collapsed locus should evaluate to its point at %g", at)
		}
	}
}

func TestCubicEvalMatchesCasteljau(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Cubic{carousel.P(0, 0), carousel.P(1, 2), carousel.P(3, 2), carousel.P(4, 0)}
	head, tail := c.Split(0.3)
	if !head.D.Equal(c.Eval(0.3)) || !tail.A.Equal(c.Eval(0.3)) {
		t.Errorf("split point should equal Eval(0.3)")
	}
	// halves trace the same curve
	for _, u := range []float64{0.1, 0.5, 0.9} {
		if !head.Eval(u).Equal(c.Eval(0.3 * u)) {
			t.Errorf("head eval diverges at %g", u)
		}
		if !tail.Eval(u).Equal(c.Eval(0.3 + 0.7*u)) {
			t.Errorf("tail eval diverges at %g", u)
		}
	}
}

func TestSubdivided(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Cubic{carousel.P(0, 0), carousel.P(1, 2), carousel.P(3, 2), carousel.P(4, 0)}
	pts := c.Subdivided(4)
	if len(pts) != 13 {
		t.Fatalf("expected 13 points for 4 sub-cubics, got %d", len(pts))
	}
	if !pts[0].Equal(c.A) || !pts[12].Equal(c.D) {
		t.Errorf("subdivision must preserve the endpoints")
	}
	for i := 0; i <= 4; i++ {
		want := c.Eval(float64(i) / 4)
		if !pts[3*i].Equal(want) {
			t.Errorf("anchor %d should lie on the original cubic", i)
		}
	}
	// interior of each sub-cubic lies on the original curve too
	l := Must(pts)
	if !l.PointAt(1.5).Equal(c.Eval(1.5 / 4)) {
		t.Errorf("sub-segment interior diverges from the original cubic")
	}
}

func TestVector(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	if !l.Vector(Outgoing, 0).Equal(carousel.P(1, 0)) {
		t.Errorf("outgoing chord of segment 0 should be (1,0), got %v", l.Vector(Outgoing, 0))
	}
	if !l.Vector(Incoming, 0).Equal(carousel.P(1, 0)) {
		t.Errorf("incoming chord at segment 0's end should be (1,0), got %v", l.Vector(Incoming, 0))
	}
	if !l.Vector(Incoming, 1).Equal(carousel.P(-1, -0.5)) {
		t.Errorf("incoming chord of segment 1 should be (-1,-0.5), got %v", l.Vector(Incoming, 1))
	}
}

func TestVectorSkipsCoincidentPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// segment 1 is degenerate at (3,1); chords at its anchors must come
	// from the shaped neighbors
	p := carousel.P(3, 1)
	l := Must([]carousel.Pair{
		carousel.P(0, 0),
		carousel.P(1, 0), carousel.P(2, 1), p,
		p, p, p,
		carousel.P(2, 0.5), carousel.P(1, 0.5), carousel.P(0, 0),
	})
	if !l.Vector(Incoming, 1).Equal(carousel.P(1, 0)) {
		t.Errorf("incoming chord should skip the degenerate run, got %v", l.Vector(Incoming, 1))
	}
	if !l.Vector(Outgoing, 1).Equal(carousel.P(-1, -0.5)) {
		t.Errorf("outgoing chord should skip the degenerate run, got %v", l.Vector(Outgoing, 1))
	}
}

func TestRotatedIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	r, err := l.Rotated(0, true)
	if err != nil {
		t.Fatalf("Rotated failed: %v", err)
	}
	pairsEqual(t, r.Points(), l.Points())
}

func TestRotatedForwards(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	r, err := l.Rotated(1, true)
	if err != nil {
		t.Fatalf("Rotated failed: %v", err)
	}
	if !r.IsClosed() {
		t.Fatalf("rotation must preserve closure")
	}
	if r.N() != l.N() {
		t.Fatalf("rotation must preserve segment count")
	}
	if !r.PointAt(0).Equal(l.PointAt(1)) {
		t.Errorf("rotated segment 0 should start at original segment 1")
	}
	if !r.PointAt(0.25).Equal(l.PointAt(1.25)) {
		t.Errorf("rotated evaluation should track the original with offset")
	}
}

func TestRotatedBackwards(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	r, err := l.Rotated(1, false)
	if err != nil {
		t.Fatalf("Rotated failed: %v", err)
	}
	if !r.IsClosed() {
		t.Fatalf("reverse rotation must preserve closure")
	}
	// evaluating forwards reproduces the original evaluated backwards from 1
	for _, d := range []float64{0, 0.25, 0.5, 1, 1.75} {
		if !r.PointAt(d).Equal(l.PointAt(1 - d)) {
			t.Errorf("backwards rotation diverges at offset %g", d)
		}
	}
}

func TestRotatedOpenFails(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	open := Must([]carousel.Pair{
		carousel.P(0, 0), carousel.P(1, 0), carousel.P(2, 1), carousel.P(3, 1),
	})
	if _, err := open.Rotated(1, true); !errors.Is(err, ErrNotClosed) {
		t.Fatalf("expected ErrNotClosed, got %v", err)
	}
}

func TestRotatedAtBoundary(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	r, err := l.RotatedAt(1.0, true)
	if err != nil {
		t.Fatalf("RotatedAt failed: %v", err)
	}
	if r.N() != l.N() {
		t.Fatalf("boundary rotation must not add a segment")
	}
	if !r.PointAt(0).Equal(l.PointAt(1)) {
		t.Errorf("boundary rotation should start at the boundary anchor")
	}
}

func TestRotatedAtResplits(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	r, err := l.RotatedAt(0.5, true)
	if err != nil {
		t.Fatalf("RotatedAt failed: %v", err)
	}
	if r.N() != l.N()+1 {
		t.Fatalf("re-split rotation should gain one segment: got %d", r.N())
	}
	if !r.IsClosed() {
		t.Fatalf("re-split rotation must preserve closure")
	}
	if !r.PointAt(0).Equal(l.PointAt(0.5)) {
		t.Errorf("re-split rotation should start at the split point")
	}
	// the remainder of the split segment still traces the original curve
	if !r.PointAt(0.5).Equal(l.PointAt(0.75)) {
		t.Errorf("re-split first segment diverges from the original")
	}
	if !r.PointAt(1).Equal(l.PointAt(1)) {
		t.Errorf("re-split rotation should rejoin at the old boundary")
	}
}

func TestRotatedAtBackwards(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	r, err := l.RotatedAt(0.5, false)
	if err != nil {
		t.Fatalf("RotatedAt failed: %v", err)
	}
	if !r.PointAt(0).Equal(l.PointAt(0.5)) {
		t.Errorf("backwards re-split should start at the split point")
	}
	if !r.PointAt(0.5).Equal(l.PointAt(0.25)) {
		t.Errorf("backwards re-split should traverse the original in reverse")
	}
}

func TestBuilderReturnCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l, err := Build().
		Start(carousel.P(0, 0)).
		CurveTo(carousel.P(1, 1), carousel.P(2, 2), carousel.P(3, 3)).
		DegenerateAt(2).
		ReturnCurve(0.5).
		Close()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if l.N() != 4 {
		t.Fatalf("expected 4 segments, got %d", l.N())
	}
	if !l.IsClosed() {
		t.Fatalf("return curve should close the locus")
	}
	ret := l.Segment(3)
	if !ret.A.Equal(carousel.P(3, 3)) || !ret.D.Equal(carousel.P(0, 0)) {
		t.Fatalf("return segment should run end to start, got %v .. %v", ret.A, ret.D)
	}
	// controls extrapolate past the endpoints, skipping the degenerate run
	if !ret.B.Equal(carousel.P(3.5, 3.5)) {
		t.Errorf("return control 1 should overshoot beyond the end, got %v", ret.B)
	}
	if !ret.C.Equal(carousel.P(-0.5, -0.5)) {
		t.Errorf("return control 2 should overshoot before the start, got %v", ret.C)
	}
}

func TestBuilderPanicsAndErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { Build().CurveTo(carousel.P(0, 0), carousel.P(1, 1), carousel.P(2, 2)) })
	mustPanic(t, func() { Build().DegenerateAt(1) })
	mustPanic(t, func() { Build().ReturnCurve(1) })
	if _, err := Build().End(); !errors.Is(err, ErrEmptyBuild) {
		t.Fatalf("expected ErrEmptyBuild, got %v", err)
	}
	// open chain rejected by Close
	if _, err := Build().Start(carousel.P(0, 0)).
		CurveTo(carousel.P(1, 0), carousel.P(2, 0), carousel.P(3, 0)).Close(); !errors.Is(err, ErrNotClosed) {
		t.Fatalf("expected ErrNotClosed, got %v", err)
	}
}

func TestAsPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	path := l.AsPath()
	if len(path) != l.N()+2 {
		t.Fatalf("expected move+curves+close, got %d elements", len(path))
	}
	if path[0].Op != MoveOp || !path[0].To.Equal(carousel.P(0, 0)) {
		t.Errorf("path should start with a move to the first anchor")
	}
	if path[1].Op != CurveOp || !path[1].To.Equal(carousel.P(3, 1)) {
		t.Errorf("first curve should end at the shared anchor")
	}
	if path[len(path)-1].Op != CloseOp {
		t.Errorf("path should end with a close")
	}
}

func TestFlattened(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := testlocus()
	contour := l.Flattened(8)
	if len(contour) != l.N()*8 {
		t.Fatalf("expected %d contour points, got %d", l.N()*8, len(contour))
	}
	bb := contour.BoundingBox()
	if bb.Min.X != 0 || bb.Min.Y != 0 {
		t.Errorf("bounding box should start at origin, got %+v", bb.Min)
	}
	if bb.Max.X < 2.5 {
		t.Errorf("bounding box should extend rightwards, got %+v", bb.Max)
	}
}

func TestAsStringSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := Must([]carousel.Pair{
		carousel.P(0, 0), carousel.P(1, 0), carousel.P(2, 1), carousel.P(3, 1),
	})
	want := "(0,0) .. controls (1,0) and (2,1)\n  .. (3,1)"
	if got := AsString(l); got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}
