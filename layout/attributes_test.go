package layout

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/t0rst/carousel"
)

func TestFrameForSpread(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, _ := testEngine(8)
	r, ok := e.FrameFor(0)
	if !ok {
		t.Fatalf("expected a frame")
	}
	if !r.Equal(carousel.R(0, 300, 100, 100)) {
		t.Errorf("face frame should match the face rect, got %v", r)
	}
	// halfway through the spread: size is the midpoint blend, the center
	// sits halfway along the straight default locus
	r, _ = e.FrameFor(1.5)
	if !r.Equal(carousel.R(175, 150, 75, 75)) {
		t.Errorf("mid-spread frame should be [175,150,75,75], got %v", r)
	}
	// deep in the pack: exactly the pack rect, no motion
	r, _ = e.FrameFor(5.2)
	if !r.Equal(carousel.R(350, 0, 50, 50)) {
		t.Errorf("pack frame should match the pack rect, got %v", r)
	}
}

func TestFrameForReturningCard(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, _ := testEngine(8)
	w, _ := e.WorkingParams()
	// pack half of the return keeps the pack size; the integral grid may
	// add a unit per axis
	r, _ := e.FrameFor(7.25)
	if r.Size.X() < 50 || r.Size.X() > 52 || r.Size.Y() < 50 || r.Size.Y() > 52 {
		t.Errorf("early return should keep pack size, got %v", r.Size)
	}
	// face half blends toward the face size; the integral grid may add
	// a unit per axis
	r, _ = e.FrameFor(7.8)
	want := carousel.Lerp(100, 50, (1-0.8)*2)
	if r.Size.X() < want || r.Size.X() > want+2 {
		t.Errorf("late return width should approach %g, got %g", want, r.Size.X())
	}
	// the center always rides the locus
	center := w.Locus.PointAt(7.8)
	if math.Abs(r.Center().X()-center.X()) > 1 || math.Abs(r.Center().Y()-center.Y()) > 1 {
		t.Errorf("returning card center should ride the locus")
	}
}

func TestAttributesStackingAndVisibility(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, _ := testEngine(8) // spread 3
	cases := []struct {
		ordinal   int
		z         int
		hidden    bool
		shadow    bool
		overlayOn bool
	}{
		{0, 8, false, true, true},
		{1, 7, false, true, false},
		{3, 5, false, true, false},
		{4, 4, false, false, false}, // first reveal candidate
		{5, 3, true, false, false},
		{6, 2, false, false, false}, // second-from-last stays installed
		{7, 1, false, false, true},  // returning card
	}
	for _, c := range cases {
		attr, ok := e.AttributesFor(c.ordinal, 0)
		if !ok {
			t.Fatalf("expected attributes for ordinal %d", c.ordinal)
		}
		if attr.ZIndex != c.z {
			t.Errorf("ordinal %d: z = %d, want %d", c.ordinal, attr.ZIndex, c.z)
		}
		if attr.Hidden != c.hidden {
			t.Errorf("ordinal %d: hidden = %v, want %v", c.ordinal, attr.Hidden, c.hidden)
		}
		if attr.HasShadow != c.shadow {
			t.Errorf("ordinal %d: shadow = %v, want %v", c.ordinal, attr.HasShadow, c.shadow)
		}
		if attr.OverlayHidden == c.overlayOn {
			t.Errorf("ordinal %d: overlay hidden = %v", c.ordinal, attr.OverlayHidden)
		}
	}
}

func TestReturnFade(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct{ fraction, want float64 }{
		{0, 1},
		{0.125, 0.5},
		{0.25, 0},
		{0.5, 0},
		{0.75, 0},
		{0.9, 0.6},
		{1, 1},
	}
	for _, c := range cases {
		if got := returnFade(c.fraction); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("returnFade(%g) = %g, want %g", c.fraction, got, c.want)
		}
	}
}

func TestReturningCardOpacity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, host := testEngine(8)
	// with a forward offset the departing face wraps onto the return
	// path: position −0.5 ≡ 7.5, the middle of the return travel
	attr, _ := e.AttributesFor(0, 0.5)
	if attr.Opacity != 0 {
		t.Errorf("mid-return opacity should be 0, got %g", attr.Opacity)
	}
	if attr.OverlayOpacity != 0 {
		t.Errorf("mid-return overlay opacity should be 0, got %g", attr.OverlayOpacity)
	}
	attr, _ = e.AttributesFor(0, 0.1)
	if math.Abs(attr.Opacity-0.6) > 1e-9 {
		t.Errorf("late-return opacity should be 0.6, got %g", attr.Opacity)
	}
	// position is computed relative to the currently selected item
	host.selected = 2
	attr, _ = e.AttributesFor(2, 0.5)
	if attr.Opacity != 0 {
		t.Errorf("relative returning card should fade too, got %g", attr.Opacity)
	}
}

func TestHitTest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, _ := testEngine(8)
	w, _ := e.WorkingParams()
	ord, ok := e.HitTest(w.FaceRect.Center())
	if !ok || ord != 0 {
		t.Errorf("face center should hit ordinal 0, got %d/%v", ord, ok)
	}
	ord, ok = e.HitTest(w.Locus.PointAt(2))
	if !ok || ord != 2 {
		t.Errorf("spread slot 2 center should hit ordinal 2, got %d/%v", ord, ok)
	}
	if _, ok = e.HitTest(carousel.P(-50, -50)); ok {
		t.Errorf("point outside every slot should miss")
	}
}

func TestLocusDebugQueries(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e, _ := testEngine(8)
	w, _ := e.WorkingParams()
	bounds, ok := e.LocusBounds()
	if !ok {
		t.Fatalf("expected locus bounds")
	}
	if !bounds.Contains(w.FaceRect.Center()) || !bounds.Contains(w.PackRect.Center()) {
		t.Errorf("locus bounds should span face and pack centers, got %v", bounds)
	}
	path, ok := e.LocusPath()
	if !ok || len(path) != w.Locus.N()+2 {
		t.Errorf("locus path should have move+curves+close elements")
	}
}

func TestPositionMapping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if Ordinal(2, 5, 8) != 5 {
		t.Errorf("ordinal of item 2 with selection 5 in 8 should be 5")
	}
	if IndexFor(5, 5, 8) != 2 {
		t.Errorf("IndexFor should invert Ordinal")
	}
	if got := Position(1, 1, 8); got != 0 {
		t.Errorf("a full forward offset should carry ordinal 1 to the face, got %g", got)
	}
	if got := Position(0, 0.25, 8); math.Abs(got-7.75) > 1e-9 {
		t.Errorf("the face should wrap onto the return path, got %g", got)
	}
	if SignedDelta(6, 1, 8) != 3 {
		t.Errorf("signed delta should take the short way round")
	}
	if SignedDelta(1, 6, 8) != -3 {
		t.Errorf("signed delta should be negative the other way")
	}
	if ResolveIndex(0, 4, 8, 0.6) != 2 {
		t.Errorf("interrupted change should land on the nearest index")
	}
}
