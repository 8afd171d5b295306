package carousel

import (
	"fmt"
	"math"
)

// === Rectangles ============================================================

// Rect is an axis-aligned rectangle, given by origin (top/left in screen
// coordinates) and size. Size components are never negative.
type Rect struct {
	Origin Pair
	Size   Pair
}

// R is a quick notation for constructing a rectangle from floats.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: P(x, y), Size: P(w, h)}
}

// Pretty Stringer for rectangles.
func (r Rect) String() string {
	return fmt.Sprintf("[%s %s]", r.Origin, r.Size)
}

// IsEmpty is a predicate: does this rectangle enclose no area?
func (r Rect) IsEmpty() bool {
	return Is0(r.Size.X()) || Is0(r.Size.Y())
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Pair {
	return r.Origin.Shifted(r.Size.Scaled(0.5))
}

// Equal compares two rectangles within Epsilon.
func (r Rect) Equal(r2 Rect) bool {
	return r.Origin.Equal(r2.Origin) && r.Size.Equal(r2.Size)
}

// Contains is a predicate: does the rectangle contain point p?
// Points on the boundary are contained.
func (r Rect) Contains(p Pair) bool {
	x, y := p.F()
	ox, oy := r.Origin.F()
	w, h := r.Size.F()
	return x >= ox && x <= ox+w && y >= oy && y <= oy+h
}

// Integral aligns the rectangle to the integer pixel grid: the origin is
// floored and the far edge is ceiled, so the result covers the input.
func (r Rect) Integral() Rect {
	x0 := math.Floor(r.Origin.X())
	y0 := math.Floor(r.Origin.Y())
	x1 := math.Ceil(r.Origin.X() + r.Size.X())
	y1 := math.Ceil(r.Origin.Y() + r.Size.Y())
	return R(x0, y0, x1-x0, y1-y0)
}

// RectAround constructs a rectangle of the given size centered at center.
func RectAround(center, size Pair) Rect {
	return Rect{
		Origin: center.Shifted(size.Scaled(-0.5)),
		Size:   size,
	}
}

// PlaceRect places a rectangle of the given size within a container using a
// normalized anchor: origin = anchor * (container − size), componentwise.
// Anchor (0,0) flushes the rectangle to the container's origin corner,
// (1,1) to the far corner, (0.5,0.5) centers it.
func PlaceRect(size, container, anchor Pair) Rect {
	slack := container.Shifted(size.Scaled(-1))
	return Rect{
		Origin: anchor.ScaledBy(slack),
		Size:   size,
	}
}
