package layout

import (
	"github.com/t0rst/carousel"
	"github.com/t0rst/carousel/locus"
	"github.com/t0rst/carousel/progression"
)

// Host is the engine's view of its embedding collection: how many items
// exist, how much room there is, and which item is selected. The host
// may veto a selection change by returning false from SetSelectedIndex.
type Host interface {
	ItemCount() int
	AvailableArea() carousel.Pair
	SelectedIndex() int
	SetSelectedIndex(index int) bool
}

// WorkingParams is the geometry derived from one (item count, area,
// params) triple: the placed face and pack rectangles, the full locus
// scaled between them, and the per-ordinal scale and alpha progressions.
// It is valid only for the item count and area it was generated for.
type WorkingParams struct {
	ItemCount   int
	SpreadCount int // clamped to [0, ItemCount−1]
	Area        carousel.Pair
	FaceRect    carousel.Rect
	PackRect    carousel.Rect
	Locus       *locus.Locus
	Scales      progression.Progression
	Alphas      progression.Progression
}

// Engine computes per-item layout attributes. It holds the only mutable
// state of the package: the current parameter set and the cached working
// geometry, regenerated lazily whenever the cache is stale. Everything
// else is pure evaluation.
type Engine struct {
	host    Host
	params  Params
	working *WorkingParams
}

// NewEngine creates an engine querying the given host, with default
// parameters.
func NewEngine(host Host) *Engine {
	return &Engine{host: host, params: DefaultParams()}
}

// Params returns the current parameter set.
func (e *Engine) Params() Params {
	return e.params
}

// SetParams replaces the parameter set and invalidates the working
// geometry.
func (e *Engine) SetParams(params Params) {
	e.params = params
	e.Invalidate()
}

// Invalidate discards the cached working geometry. Callers must
// invalidate explicitly after any input change the engine cannot
// observe; size and item count changes are detected on the next query.
func (e *Engine) Invalidate() {
	e.working = nil
}

// WorkingParams returns the current working geometry, regenerating it if
// the cache is stale. The second result is false when there is nothing
// to lay out yet: no host, no items, or a degenerate area.
func (e *Engine) WorkingParams() (*WorkingParams, bool) {
	if e.host == nil {
		return nil, false
	}
	count := e.host.ItemCount()
	area := e.host.AvailableArea()
	if count <= 0 || carousel.Is0(area.X()) || carousel.Is0(area.Y()) {
		return nil, false
	}
	if w := e.working; w != nil && w.ItemCount == count && w.Area.Equal(area) {
		return w, true
	}
	w, err := generate(count, area, e.params)
	if err != nil {
		tracer().Errorf("working params generation failed: %v", err)
		return nil, false
	}
	tracer().Debugf("regenerated working params for %d items in %s", count, area)
	e.working = w
	return w, true
}

// generate derives working geometry per the rules of the layout:
// clamp the spread, size and place the rectangles, construct the locus
// from spread sub-cubics plus degenerate pack segments plus the return
// curve, and build the scale/alpha progressions.
func generate(count int, area carousel.Pair, params Params) (*WorkingParams, error) {
	spread := params.SpreadCount
	if spread > count-1 {
		spread = count - 1
	}
	if spread < 0 {
		spread = 0
	}

	faceSize := derivedFaceSize(params.FaceSize, area, spread)
	packScale := params.PackScale
	if packScale <= 0 || packScale > 1 {
		packScale = 1
	}
	packSize := faceSize.Scaled(packScale)
	faceRect := carousel.PlaceRect(faceSize, area, params.FacePosition)
	packRect := carousel.PlaceRect(packSize, area, params.PackPosition)

	w := &WorkingParams{
		ItemCount:   count,
		SpreadCount: spread,
		Area:        area,
		FaceRect:    faceRect,
		PackRect:    packRect,
	}

	if spread == 0 {
		// fully collapsed: every item sits at the face center
		w.Locus = locus.Must([]carousel.Pair{faceRect.Center()})
		w.Scales = progression.Constant(1)
		w.Alphas = progression.Constant(1)
		return w, nil
	}

	a, b, c, d := params.LocusControls[0], params.LocusControls[1],
		params.LocusControls[2], params.LocusControls[3]
	abstract, err := locus.Build().
		Start(a).
		SubdividedCurveTo(b, c, d, spread).
		DegenerateAt(count - (spread + 1)).
		ReturnCurve(params.ReturnOvershoot).
		Close()
	if err != nil {
		return nil, err
	}
	// map the abstract unit frame onto screen geometry: anchor the first
	// control point at the face center and scale by the face→pack vector
	faceCenter := faceRect.Center()
	packCenter := packRect.Center()
	span := packCenter - faceCenter
	m := carousel.Translation(a.Scaled(-1)).
		Combine(carousel.Scaling(span.X(), span.Y())).
		Combine(carousel.Translation(faceCenter))
	w.Locus, err = locus.New(m.TransformAll(abstract.Points()))
	if err != nil {
		return nil, err
	}

	scales := make([]float64, count)
	alphas := make([]float64, count)
	fade := spread + 2 // two pack items stay visible for reveal
	if fade > count {
		fade = count
	}
	for i := 0; i < count; i++ {
		if i <= spread {
			scales[i] = carousel.Lerp(1, packScale, float64(i)/float64(spread))
		} else {
			scales[i] = packScale
		}
		if i < fade {
			alphas[i] = 1
		}
	}
	w.Scales = progression.MustNew(scales, progression.Continuous)
	w.Alphas = progression.MustNew(alphas, progression.Continuous)
	return w, nil
}

// derivedFaceSize returns the explicit face size capped to the area, or
// the spread-dependent heuristic 2·area/(spread+2) per axis, never below
// 2 units.
func derivedFaceSize(explicit, area carousel.Pair, spread int) carousel.Pair {
	if explicit.X() > 0 && explicit.Y() > 0 {
		wdt := explicit.X()
		hgt := explicit.Y()
		if wdt > area.X() {
			wdt = area.X()
		}
		if hgt > area.Y() {
			hgt = area.Y()
		}
		return carousel.P(wdt, hgt)
	}
	den := float64(spread + 2)
	wdt := 2 * area.X() / den
	hgt := 2 * area.Y() / den
	if wdt < 2 {
		wdt = 2
	}
	if hgt < 2 {
		hgt = 2
	}
	return carousel.P(wdt, hgt)
}
