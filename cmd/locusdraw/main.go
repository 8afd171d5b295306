// Command locusdraw renders the travel locus of a carousel layout to a
// PNG image, together with the item frames a host would place on it.
// It exists to eyeball locus shapes while tuning configuration options.
//
// Usage:
//
//	locusdraw -count 12 -spread 5 -out locus.png
//	locusdraw -options '{"packScale":0.3,"locusControlPoints":[0.8,0.1]}' -out locus.png
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/t0rst/carousel"
	"github.com/t0rst/carousel/layout"
	"github.com/t0rst/carousel/locus"
)

// staticHost is a fixed-size, non-interactive layout host.
type staticHost struct {
	count    int
	area     carousel.Pair
	selected int
}

func (h *staticHost) ItemCount() int              { return h.count }
func (h *staticHost) AvailableArea() carousel.Pair { return h.area }
func (h *staticHost) SelectedIndex() int          { return h.selected }
func (h *staticHost) SetSelectedIndex(index int) bool {
	h.selected = index
	return true
}

func main() {
	out := flag.String("out", "locus.png", "Output PNG path")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	count := flag.Int("count", 12, "Number of carousel items")
	selected := flag.Int("selected", 0, "Selected item index")
	offset := flag.Float64("offset", 0, "Transitional offset to render items at")
	options := flag.String("options", "", "Layout options as a JSON object")
	noFrames := flag.Bool("noframes", false, "Suppress the item frames, draw the locus only")
	flag.Parse()

	params := layout.DefaultParams()
	if *options != "" {
		var opts map[string]any
		if err := json.Unmarshal([]byte(*options), &opts); err != nil {
			fmt.Fprintf(os.Stderr, "error parsing options: %v\n", err)
			os.Exit(1)
		}
		var err error
		params, err = layout.Configure(opts, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	host := &staticHost{
		count:    *count,
		area:     carousel.P(float64(*width), float64(*height)),
		selected: *selected,
	}
	engine := layout.NewEngine(host)
	engine.SetParams(params)

	working, ok := engine.WorkingParams()
	if !ok {
		fmt.Fprintln(os.Stderr, "error: layout has no working parameters (empty area or item count?)")
		os.Exit(1)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(*width, *height, img, img.Bounds())
	filler := rasterx.NewFiller(*width, *height, scanner)
	dasher := rasterx.NewDasher(*width, *height, scanner)
	dasher.SetStroke(fixed.I(2), fixed.I(4), rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)

	path, _ := engine.LocusPath()
	strokePath(dasher, path, color.NRGBA{R: 0x30, G: 0x60, B: 0xc0, A: 0xff})
	markAnchors(filler, working.Locus, color.NRGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff})

	if !*noFrames {
		drawFrames(filler, dasher, engine, host, *offset)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	f.Close()
	fmt.Printf("%d items, spread %d, %d locus segments → %s\n",
		working.ItemCount, working.SpreadCount, working.Locus.N(), *out)
}

func toFixed(p carousel.Pair) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X() * 64), Y: fixed.Int26_6(p.Y() * 64)}
}

// strokePath walks the path elements into the dasher and draws them.
func strokePath(dasher *rasterx.Dasher, path []locus.PathElement, col color.Color) {
	dasher.Scanner.SetColor(col)
	for _, el := range path {
		switch el.Op {
		case locus.MoveOp:
			dasher.Start(toFixed(el.To))
		case locus.CurveOp:
			dasher.CubeBezier(toFixed(el.C1), toFixed(el.C2), toFixed(el.To))
		case locus.CloseOp:
			dasher.Stop(true)
		}
	}
	dasher.Draw()
	dasher.Clear()
}

// markAnchors drops a small filled square on each on-curve point.
func markAnchors(filler *rasterx.Filler, l *locus.Locus, col color.Color) {
	filler.Scanner.SetColor(col)
	const r = 3.0
	for i := 0; i < l.N(); i++ {
		p := l.PointAt(float64(i))
		fillRect(filler, carousel.RectAround(p, carousel.P(2*r, 2*r)))
	}
	filler.Draw()
	filler.Clear()
}

func fillRect(filler *rasterx.Filler, r carousel.Rect) {
	a := r.Origin
	b := a.Shifted(carousel.P(r.Size.X(), 0))
	c := a.Shifted(r.Size)
	d := a.Shifted(carousel.P(0, r.Size.Y()))
	filler.Start(toFixed(a))
	filler.Line(toFixed(b))
	filler.Line(toFixed(c))
	filler.Line(toFixed(d))
	filler.Stop(true)
}

// drawFrames renders each visible item frame: a translucent fill shaded
// by the item's opacity, outlined by a hairline stroke.
func drawFrames(filler *rasterx.Filler, dasher *rasterx.Dasher, engine *layout.Engine, host *staticHost, offset float64) {
	dasher.SetStroke(fixed.I(1), fixed.I(4), rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap, rasterx.Miter, nil, 0)
	// back to front, so nearer items paint over farther ones
	for ordinal := host.count - 1; ordinal >= 0; ordinal-- {
		index := layout.IndexFor(ordinal, host.selected, host.count)
		attrs, ok := engine.AttributesFor(index, offset)
		if !ok || attrs.Hidden {
			continue
		}
		alpha := uint8(attrs.Opacity * 160)
		filler.Scanner.SetColor(color.NRGBA{R: 0x40, G: 0xa0, B: 0x60, A: alpha})
		fillRect(filler, attrs.Rect)
		filler.Draw()
		filler.Clear()

		dasher.Scanner.SetColor(color.NRGBA{R: 0x20, G: 0x50, B: 0x30, A: 0xff})
		strokeRect(dasher, attrs.Rect)
		dasher.Draw()
		dasher.Clear()
	}
}

func strokeRect(dasher *rasterx.Dasher, r carousel.Rect) {
	a := r.Origin
	b := a.Shifted(carousel.P(r.Size.X(), 0))
	c := a.Shifted(r.Size)
	d := a.Shifted(carousel.P(0, r.Size.Y()))
	dasher.Start(toFixed(a))
	dasher.Line(toFixed(b))
	dasher.Line(toFixed(c))
	dasher.Line(toFixed(d))
	dasher.Stop(true)
}
