package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/t0rst/carousel"
)

// Recognized configuration option keys.
const (
	OptSpreadCount     = "spreadCount"
	OptFaceSize        = "faceSize"
	OptFacePosition    = "facePosition"
	OptPackScale       = "packScale"
	OptPackPosition    = "packPosition"
	OptLocusPoints     = "locusControlPoints"
	OptReturnOvershoot = "returnOvershoot"
	OptShowLocus       = "showLocus"
)

// FieldError describes one rejected configuration option.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("option %q: %s (got %v)", fe.Field, fe.Reason, fe.Value)
}

// ConfigError aggregates all field failures of one configuration parse,
// ordered by field name. A failed parse leaves prior configuration in
// effect: Configure is all-or-nothing.
type ConfigError struct {
	Fields []FieldError
}

func (ce *ConfigError) Error() string {
	msgs := make([]string, len(ce.Fields))
	for i, fe := range ce.Fields {
		msgs[i] = fe.Error()
	}
	return "configuration rejected: " + strings.Join(msgs, "; ")
}

// Configure parses a flat option map into a Params value, starting from
// DefaultParams. Every recognized option is validated; unrecognized keys
// and malformed values are collected per field and reported together as
// a *ConfigError, in which case no partial result is returned.
//
// The tracer is an explicit capability: pass the trace the host wants
// parse diagnostics on. A nil trace falls back to this package's trace key.
func Configure(options map[string]any, trace tracing.Trace) (Params, error) {
	if trace == nil {
		trace = tracer()
	}
	params := DefaultParams()
	failed := treemap.NewWithStringComparator()
	fail := func(field string, value any, reason string) {
		failed.Put(field, FieldError{Field: field, Value: value, Reason: reason})
	}
	for key, value := range options {
		switch key {
		case OptSpreadCount:
			n, ok := intValue(value)
			if !ok || n < 0 {
				fail(key, value, "needs a non-negative integer")
				continue
			}
			params.SpreadCount = n
		case OptFaceSize:
			s, ok := scalarList(value, 2)
			if !ok || s[0] < 0 || s[1] < 0 {
				fail(key, value, "needs [width,height] with non-negative entries")
				continue
			}
			params.FaceSize = carousel.P(s[0], s[1])
		case OptFacePosition:
			p, ok := anchorValue(value)
			if !ok {
				fail(key, value, "needs [x,y] with entries in 0..1")
				continue
			}
			params.FacePosition = p
		case OptPackPosition:
			p, ok := anchorValue(value)
			if !ok {
				fail(key, value, "needs [x,y] with entries in 0..1")
				continue
			}
			params.PackPosition = p
		case OptPackScale:
			f, ok := floatValue(value)
			if !ok || f <= 0 || f > 1 {
				fail(key, value, "needs a scale in (0,1]")
				continue
			}
			params.PackScale = f
		case OptLocusPoints:
			controls, ok := locusControlsValue(value)
			if !ok {
				fail(key, value, "needs 0, 2 or 4 scalars")
				continue
			}
			params.LocusControls = controls
		case OptReturnOvershoot:
			f, ok := floatValue(value)
			if !ok {
				fail(key, value, "needs a finite scalar")
				continue
			}
			params.ReturnOvershoot = f
		case OptShowLocus:
			b, ok := value.(bool)
			if !ok {
				fail(key, value, "needs a boolean")
				continue
			}
			params.ShowLocus = b
		default:
			fail(key, value, "unrecognized option")
		}
	}
	if !failed.Empty() {
		ce := &ConfigError{}
		it := failed.Iterator()
		for it.Next() {
			ce.Fields = append(ce.Fields, it.Value().(FieldError))
		}
		trace.Errorf("%s", ce.Error())
		return Params{}, ce
	}
	trace.Debugf("configured params: spread %d, pack scale %g", params.SpreadCount, params.PackScale)
	return params, nil
}

// Options returns the flat option map describing p, the inverse of
// Configure. Serializing and re-parsing the result yields an equal
// Params value.
func (p Params) Options() map[string]any {
	return map[string]any{
		OptSpreadCount:  p.SpreadCount,
		OptFaceSize:     []float64{p.FaceSize.X(), p.FaceSize.Y()},
		OptFacePosition: []float64{p.FacePosition.X(), p.FacePosition.Y()},
		OptPackScale:    p.PackScale,
		OptPackPosition: []float64{p.PackPosition.X(), p.PackPosition.Y()},
		OptLocusPoints: []float64{
			p.LocusControls[1].X(), p.LocusControls[1].Y(),
			p.LocusControls[2].X(), p.LocusControls[2].Y(),
		},
		OptReturnOvershoot: p.ReturnOvershoot,
		OptShowLocus:       p.ShowLocus,
	}
}

func floatValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func intValue(v any) (int, bool) {
	f, ok := floatValue(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// scalarList coerces a list value to exactly want scalars.
func scalarList(v any, want int) ([]float64, bool) {
	var out []float64
	switch list := v.(type) {
	case []float64:
		out = append(out, list...)
		for _, f := range out {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, false
			}
		}
	case []any:
		for _, entry := range list {
			f, ok := floatValue(entry)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
	default:
		return nil, false
	}
	if want >= 0 && len(out) != want {
		return nil, false
	}
	return out, true
}

func anchorValue(v any) (carousel.Pair, bool) {
	s, ok := scalarList(v, 2)
	if !ok || s[0] < 0 || s[0] > 1 || s[1] < 0 || s[1] > 1 {
		return carousel.Origin, false
	}
	return carousel.P(s[0], s[1]), true
}

// locusControlsValue accepts 0 scalars (the default straight cubic),
// 2 scalars (one control point, mirrored through the frame center for a
// symmetric bulge) or 4 scalars (both interior controls explicit). The
// anchors stay pinned to the unit frame corners.
func locusControlsValue(v any) ([4]carousel.Pair, bool) {
	controls := DefaultLocusControls()
	s, ok := scalarList(v, -1)
	if !ok {
		return controls, false
	}
	switch len(s) {
	case 0:
		return controls, true
	case 2:
		controls[1] = carousel.P(s[0], s[1])
		controls[2] = carousel.P(1-s[0], 1-s[1])
		return controls, true
	case 4:
		controls[1] = carousel.P(s[0], s[1])
		controls[2] = carousel.P(s[2], s[3])
		return controls, true
	}
	return controls, false
}
