package layout

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/t0rst/carousel"
	"github.com/t0rst/carousel/locus"
)

func polyPoint(p carousel.Pair) polyclip.Point {
	x, y := p.F()
	return polyclip.Point{X: x, Y: y}
}

// Attributes are the visual properties of one item at one continuous
// position. The host applies them verbatim; nothing here is stateful.
type Attributes struct {
	Rect           carousel.Rect
	ZIndex         int
	Opacity        float64
	OverlayOpacity float64
	OverlayHidden  bool
	Hidden         bool
	HasShadow      bool
}

// FrameFor evaluates the item rectangle at a continuous position,
// ordinal plus fraction. The second result is false when there is
// nothing to lay out.
func (e *Engine) FrameFor(position float64) (carousel.Rect, bool) {
	w, ok := e.WorkingParams()
	if !ok {
		return carousel.Rect{}, false
	}
	return frameFor(w, position), true
}

// AttributesFor evaluates the full attribute set for an item given its
// absolute index and the current transitional offset. The second result
// is false when there is nothing to lay out.
func (e *Engine) AttributesFor(index int, transitionalOffset float64) (Attributes, bool) {
	w, ok := e.WorkingParams()
	if !ok {
		return Attributes{}, false
	}
	ordinal := Ordinal(index, e.host.SelectedIndex(), w.ItemCount)
	position := Position(ordinal, transitionalOffset, w.ItemCount)
	return attributesAt(w, position), true
}

// HitTest returns the spread ordinal whose frame contains the point,
// topmost (face) first. The second result is false when no spread slot
// contains the point or there is nothing laid out.
func (e *Engine) HitTest(p carousel.Pair) (int, bool) {
	w, ok := e.WorkingParams()
	if !ok {
		return 0, false
	}
	for ordinal := 0; ordinal <= w.SpreadCount; ordinal++ {
		if frameFor(w, float64(ordinal)).Contains(p) {
			return ordinal, true
		}
	}
	return 0, false
}

// LocusPath returns the drawable element sequence of the working locus,
// for the debug overlay or for driving keyframe animations along it.
func (e *Engine) LocusPath() ([]locus.PathElement, bool) {
	w, ok := e.WorkingParams()
	if !ok {
		return nil, false
	}
	return w.Locus.AsPath(), true
}

// flattening resolution of the debug overlay contour
const overlaySteps = 16

// LocusBounds returns the bounding rectangle of the flattened working
// locus, sizing the debug overlay.
func (e *Engine) LocusBounds() (carousel.Rect, bool) {
	w, ok := e.WorkingParams()
	if !ok {
		return carousel.Rect{}, false
	}
	bb := w.Locus.Flattened(overlaySteps).BoundingBox()
	return carousel.R(bb.Min.X, bb.Min.Y, bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y), true
}

// LocusContains reports whether a point lies inside the loop enclosed by
// the working locus. Debug aid alongside LocusBounds.
func (e *Engine) LocusContains(p carousel.Pair) bool {
	w, ok := e.WorkingParams()
	if !ok {
		return false
	}
	contour := w.Locus.Flattened(overlaySteps)
	if len(contour) < 3 {
		return false
	}
	return contour.Contains(polyPoint(p))
}

func frameFor(w *WorkingParams, position float64) carousel.Rect {
	count := w.ItemCount
	spread := w.SpreadCount
	ordinal, fraction := carousel.SplitPosition(position, count)
	faceSize := w.FaceRect.Size
	packSize := w.PackRect.Size

	if spread == 0 {
		if ordinal == 0 {
			return w.FaceRect.Integral()
		}
		return w.PackRect.Integral()
	}

	var size carousel.Pair
	switch {
	case ordinal == count-1:
		// the returning card, traversing the return segment
		if fraction < 0.5 {
			size = packSize
		} else {
			mix := (1 - fraction) * 2
			size = faceSize.Interpolated(packSize, mix)
		}
	case ordinal < spread:
		size = faceSize.Interpolated(packSize, position/float64(spread))
	default:
		// deep in the pack, no motion
		return w.PackRect.Integral()
	}
	center := w.Locus.PointAt(position)
	return carousel.RectAround(center, size).Integral()
}

func attributesAt(w *WorkingParams, position float64) Attributes {
	count := w.ItemCount
	spread := w.SpreadCount
	ordinal, fraction := carousel.SplitPosition(position, count)
	returning := spread > 0 && count > 1 && ordinal == count-1

	attr := Attributes{
		Rect:      frameFor(w, position),
		ZIndex:    count - ordinal,
		Opacity:   1,
		HasShadow: ordinal <= spread,
		Hidden:    ordinal > spread+1 && ordinal < count-2,
	}
	if returning {
		attr.Opacity = returnFade(fraction)
	}
	switch {
	case ordinal == 0:
		attr.OverlayOpacity = 1
	case returning:
		attr.OverlayOpacity = returnFade(fraction)
	default:
		// kept installed but hidden, so overlay show/hide never races
		// its opacity animation
		attr.OverlayHidden = true
	}
	return attr
}

// returnFade is the local opacity of the returning card over its own
// segment fraction: full at both ends of the return, zero through the
// middle half, fading over the outer quarters.
func returnFade(fraction float64) float64 {
	edge := fraction
	if 1-fraction < edge {
		edge = 1 - fraction
	}
	alpha := 1 - 4*edge
	if alpha < 0 {
		return 0
	}
	return alpha
}
