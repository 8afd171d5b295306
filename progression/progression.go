// Package progression implements cyclic, piecewise-linearly-interpolated
// scalar sequences.
/*
A progression stores an ordered sequence of sample values and answers
evaluation queries at arbitrary real positions. Positions wrap cyclically;
interpolation between adjacent samples is linear. Two loop-back behaviors
are supported:

Continuous treats the cycle length as the number of stored samples. There
is an implicit unit-length interpolation segment from the last sample back
to the first, so a progression over [a, b] varies a .. b .. a smoothly.

Discrete treats the cycle length as one less than the number of stored
samples. The last sample is a duplicate boundary: approaching it from below
interpolates toward it, but the cycle position equal to count−1 resets hard
to the first sample, with no interpolation segment from last back to first.

Progressions drive per-ordinal scale and opacity sampling in package
layout, and keyframe-animation value sequences via ValuesFrom.
*/
package progression

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/t0rst/carousel"
)

// tracer writes to trace with key 'progression'
func tracer() tracing.Trace {
	return tracing.Select("progression")
}

// ErrNoValues indicates a progression without any sample values.
var ErrNoValues = errors.New("progression needs at least one value")

// Positions within this distance of an exact sample boundary are treated
// as landing on the boundary.
const boundaryTolerance = 1e-10

// Loopback selects how a progression cycles past its last sample.
type Loopback int8

const (
	// Continuous wraps through an implicit unit step from the last value
	// back to the first; the cycle length equals the sample count.
	Continuous Loopback = iota
	// Discrete treats the last value as a duplicate boundary of the first;
	// the cycle length is the sample count minus one.
	Discrete
)

func (lb Loopback) String() string {
	if lb == Discrete {
		return "discrete"
	}
	return "continuous"
}

// Progression is a cyclic sequence of scalar samples with linear
// interpolation between them.
type Progression struct {
	values   []float64
	loopback Loopback
}

// New creates a progression over the given samples. The samples are copied.
func New(values []float64, loopback Loopback) (Progression, error) {
	if len(values) == 0 {
		return Progression{}, ErrNoValues
	}
	v := make([]float64, len(values))
	copy(v, values)
	return Progression{values: v, loopback: loopback}, nil
}

// MustNew is a helper which panics where New would return an error.
func MustNew(values []float64, loopback Loopback) Progression {
	p, err := New(values, loopback)
	if err != nil {
		panic(err)
	}
	return p
}

// Constant creates a single-sample progression, evaluating to v everywhere.
func Constant(v float64) Progression {
	return Progression{values: []float64{v}, loopback: Continuous}
}

// Count returns the number of stored samples.
func (pg Progression) Count() int {
	return len(pg.values)
}

// Loopback returns the progression's loop-back mode.
func (pg Progression) Loopback() Loopback {
	return pg.loopback
}

// Values returns a copy of the stored samples.
func (pg Progression) Values() []float64 {
	v := make([]float64, len(pg.values))
	copy(v, pg.values)
	return v
}

// Modulus returns the cycle length: Count for continuous loop-back,
// Count−1 for discrete.
func (pg Progression) Modulus() float64 {
	if pg.loopback == Discrete {
		return float64(len(pg.values) - 1)
	}
	return float64(len(pg.values))
}

// ValueAt evaluates the progression at an arbitrary real position.
// The position is normalized into [0,modulus) and the two surrounding
// samples are interpolated linearly.
func (pg Progression) ValueAt(position float64) float64 {
	count := len(pg.values)
	if count == 0 {
		tracer().Errorf("evaluating empty progression")
		return 0
	}
	modulus := pg.Modulus()
	if modulus <= 0 { // single discrete sample
		return pg.values[0]
	}
	normalized := carousel.Rotate(position, 0, modulus)
	if normalized >= modulus { // -ε inputs can round up to the modulus itself
		normalized = 0
	}
	n := int(math.Floor(normalized))
	m := (n + 1) % count
	t := normalized - float64(n)
	return carousel.Lerp(pg.values[n], pg.values[m], t)
}

// ValuesFrom returns one value per stored sample, starting at position.
// If position lands exactly on a sample boundary (within tolerance), the
// result is the stored sequence rotated to start at that sample, with no
// interpolation. Otherwise entry i is the interpolated value at
// position+i. The result drives per-step keyframe animation sampling.
//
// The forwards flag does not currently alter which values are produced;
// only the traversal direction of the accompanying path differs. See the
// package layout notes before relying on reverse symmetry.
func (pg Progression) ValuesFrom(position float64, forwards bool) []float64 {
	count := len(pg.values)
	if count == 0 {
		return nil
	}
	out := make([]float64, count)
	modulus := pg.Modulus()
	if modulus <= 0 {
		for i := range out {
			out[i] = pg.values[0]
		}
		return out
	}
	normalized := carousel.Rotate(position, 0, modulus)
	nearest := math.Round(normalized)
	if math.Abs(normalized-nearest) <= boundaryTolerance {
		start := carousel.RotateIndex(int(nearest), 0, count)
		for i := range out {
			out[i] = pg.values[(start+i)%count]
		}
		return out
	}
	for i := range out {
		out[i] = pg.ValueAt(position + float64(i))
	}
	return out
}
