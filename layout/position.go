package layout

import (
	"math"

	"github.com/t0rst/carousel"
)

// Ordinal returns the pack-relative rank of an item: 0 for the selected
// (face) item, increasing cyclically toward the back of the pack.
func Ordinal(index, selected, count int) int {
	return carousel.RotateIndex(index-selected, 0, count)
}

// IndexFor is the inverse of Ordinal: the absolute item index at a given
// pack-relative rank.
func IndexFor(ordinal, selected, count int) int {
	return carousel.RotateIndex(selected+ordinal, 0, count)
}

// Position returns the continuous position of an item during a
// transition: its ordinal shifted uniformly by the transitional offset,
// normalized into [0,count). An offset moving toward +1 carries each
// item one rank toward the face.
func Position(ordinal int, transitionalOffset float64, count int) float64 {
	return carousel.Rotate(float64(ordinal), -transitionalOffset, float64(count))
}

// SignedDelta returns the signed shortest cyclic step count from one
// index to another, preferring the forward direction on ties.
func SignedDelta(from, to, count int) int {
	if count <= 0 {
		return 0
	}
	d := carousel.RotateIndex(to-from, 0, count)
	if float64(d) > float64(count)/2 {
		d -= count
	}
	return d
}

// ResolveIndex linearly interpolates an interrupted index change by the
// fraction completed, landing on the nearest whole index.
func ResolveIndex(from, to, count int, fraction float64) int {
	if count <= 0 {
		return 0
	}
	delta := SignedDelta(from, to, count)
	step := int(math.Round(float64(delta) * fraction))
	return carousel.RotateIndex(from+step, 0, count)
}
