package draw

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/segments/segments"
	"github.com/pkg/errors"
)

// Padding around the segments, so that endpoints and intersection markers are
// not clipped
const Padding = 20

// Canvases are never larger than this on either side. Wildly spread out
// coordinates get a smaller scale instead.
const MaxDimension = 4096

// Renders a collection to a PNG file every time Draw is called. It satisfies
// the session's drawing hook.
type Renderer struct {
	Path  string
	Scale float64
	// Print the image inline after saving (iTerm only)
	Imgcat bool
	Out    io.Writer
}

func (r *Renderer) Draw(c *segments.SegmentCollection) (err error) {
	// gg panics on canvases it cannot allocate. Report that like any other
	// drawing failure.
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Errorf("rendering %q: %v", r.Path, recovered)
		}
	}()

	dc := Render(c, r.Scale)
	if err := dc.SavePNG(r.Path); err != nil {
		return errors.Wrapf(err, "saving %q", r.Path)
	}
	if r.Imgcat {
		out := r.Out
		if out == nil {
			out = os.Stdout
		}
		if err := imgcat.CatFile(r.Path, out); err != nil {
			return errors.Wrapf(err, "printing %q", r.Path)
		}
	}
	return nil
}

// Draw every segment in the collection, and mark the points where pairs of
// them intersect. The origin is at the bottom left, as on paper. Segments
// with an infinite or NaN coordinate have no place on the canvas and are
// skipped.
func Render(c *segments.SegmentCollection, scale float64) *gg.Context {
	var all []segments.LineSegment
	for _, s := range c.Segments() {
		if isFinite(s.P1) && isFinite(s.P2) {
			all = append(all, s)
		}
	}

	var minX, minY, maxX, maxY float64
	if len(all) > 0 {
		minX = math.Inf(1)
		minY = math.Inf(1)
		maxX = math.Inf(-1)
		maxY = math.Inf(-1)
	}
	for _, s := range all {
		for _, p := range []segments.Point{s.P1, s.P2} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	// Half spans, because max-min overflows for endpoints near MaxFloat64
	halfX := maxX/2 - minX/2
	halfY := maxY/2 - minY/2
	scale = fitScale(scale, halfX, halfY)

	// Set up the context
	width := int(2*scale*halfX) + Padding*2
	height := int(2*scale*halfY) + Padding*2
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	// Flip the context so the origin is at the bottom left
	dc.Translate(0, float64(height))
	dc.Scale(1, -1)

	// Translate for padding
	dc.Translate(Padding, Padding)
	// Scale
	dc.Scale(scale, scale)
	// Translate to min
	dc.Translate(-minX, -minY)

	dc.SetLineWidth(2)
	dc.SetRGB(0, 1, 1)
	for _, s := range all {
		dc.DrawLine(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
		dc.Stroke()
	}

	// Markers are a fixed size on screen, whatever the scale
	dc.SetRGB(1, 0.3, 0.3)
	for _, pair := range c.AllPairsReport() {
		if pair.Relation != segments.Intersecting || !isFinite(pair.Point) {
			continue
		}
		dc.DrawCircle(pair.Point.X, pair.Point.Y, 4/scale)
		dc.Fill()
	}
	return dc
}

// Largest usable scale for the given half spans. Both spans are finite.
func fitScale(scale, halfX, halfY float64) float64 {
	limit := float64(MaxDimension-Padding*2) / 2
	if half := math.Max(halfX, halfY); half > 0 && scale*half > limit {
		return limit / half
	}
	return scale
}

func isFinite(p segments.Point) bool {
	for _, v := range []float64{p.X, p.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
