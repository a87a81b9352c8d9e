// Package rasterizer draws outline paths into an image, by default as black outlines on a white background.
package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/tdewolff/outline"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Style is the appearance of the drawn paths. Widths and dashes are in pixels.
type Style struct {
	Stroke      color.Color // nil for no stroke
	StrokeWidth float64
	Dashes      []float64
	Fill        color.Color // nil for no fill
	Background  color.Color // nil for a transparent background
}

// DefaultStyle draws black outlines of one pixel wide on white.
var DefaultStyle = Style{
	Stroke:      color.Black,
	StrokeWidth: 1.0,
	Background:  color.White,
}

// Draw draws the paths on a new image. The view box in user units is mapped to the image with the given scale in pixels per unit.
func Draw(paths []*outline.Path, viewBox outline.Rect, scale float64, style Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(viewBox.W*scale+0.5), int(viewBox.H*scale+0.5)))
	if style.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	}
	r := New(img, viewBox, scale, style)
	for _, p := range paths {
		r.RenderPath(p)
	}
	return img
}

// Renderer is a rasterizing renderer.
type Renderer struct {
	img     draw.Image
	viewBox outline.Rect
	scale   float64
	style   Style
	dasher  *rasterx.Dasher
}

// New returns a renderer that draws to a rasterized image.
func New(img draw.Image, viewBox outline.Rect, scale float64, style Style) *Renderer {
	size := img.Bounds().Size()
	scanner := rasterx.NewScannerGV(size.X, size.Y, img, img.Bounds())
	dasher := rasterx.NewDasher(size.X, size.Y, scanner)
	if style.Stroke != nil {
		width := fixed.Int26_6(style.StrokeWidth * 64.0)
		dasher.SetStroke(width, 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Round, style.Dashes, 0.0)
		dasher.SetColor(style.Stroke)
	}
	return &Renderer{
		img:     img,
		viewBox: viewBox,
		scale:   scale,
		style:   style,
		dasher:  dasher,
	}
}

// Size returns the size of the image in user units.
func (r *Renderer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X) / r.scale, float64(size.Y) / r.scale
}

// toPixel converts a point in user units to pixel coordinates.
func (r *Renderer) toPixel(p outline.Point) outline.Point {
	return outline.Point{X: (p.X - r.viewBox.X) * r.scale, Y: (p.Y - r.viewBox.Y) * r.scale}
}

func toFixed(p outline.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64.0), Y: fixed.Int26_6(p.Y * 64.0)}
}

// pathSink receives the path in pixel coordinates with arcs flattened.
type pathSink interface {
	moveTo(p outline.Point)
	lineTo(p outline.Point)
	quadTo(c, p outline.Point)
	cubeTo(c1, c2, p outline.Point)
	close()
}

// walk emits the operations of p to sink in pixel coordinates.
func (r *Renderer) walk(p *outline.Path, sink pathSink) {
	var pos outline.Point
	for _, op := range p.Ops() {
		switch op.Cmd {
		case outline.MoveToCmd:
			sink.moveTo(r.toPixel(op.End))
		case outline.LineToCmd:
			sink.lineTo(r.toPixel(op.End))
		case outline.QuadToCmd:
			sink.quadTo(r.toPixel(op.C1), r.toPixel(op.End))
		case outline.CubeToCmd:
			sink.cubeTo(r.toPixel(op.C1), r.toPixel(op.C2), r.toPixel(op.End))
		case outline.ArcToCmd:
			arc, err := outline.EndpointToCenter(pos.X, pos.Y, op.RX, op.RY, op.Rot, op.Large, op.Sweep, op.End.X, op.End.Y)
			if err == nil {
				// segments of about two pixels long
				n := int(math.Ceil(arc.Length() * r.scale / 2.0))
				for i := 1; i < n; i++ {
					sink.lineTo(r.toPixel(arc.PointAt(arc.Start + arc.Delta*float64(i)/float64(n))))
				}
			}
			sink.lineTo(r.toPixel(op.End))
		case outline.CloseCmd:
			sink.close()
		}
		pos = op.End
	}
}

// RenderPath draws the fill and stroke of a path.
func (r *Renderer) RenderPath(p *outline.Path) {
	if p == nil || p.Empty() {
		return
	}
	if r.style.Fill != nil {
		size := r.img.Bounds().Size()
		ras := &vectorSink{Rasterizer: vector.NewRasterizer(size.X, size.Y)}
		ras.moveTo(r.toPixel(outline.Point{}))
		r.walk(p, ras)
		ras.Draw(r.img, r.img.Bounds(), image.NewUniform(r.style.Fill), image.Point{})
	}
	if r.style.Stroke != nil && 0.0 < r.style.StrokeWidth {
		r.dasher.Clear()
		origin := r.toPixel(outline.Point{})
		stroke := &rasterxSink{dasher: r.dasher, pos: origin, first: origin}
		r.walk(p, stroke)
		stroke.stop(false)
		r.dasher.Draw()
	}
}

// vectorSink fills with the non-zero winding rule.
type vectorSink struct {
	*vector.Rasterizer
}

func (s *vectorSink) moveTo(p outline.Point) {
	s.MoveTo(float32(p.X), float32(p.Y))
}

func (s *vectorSink) lineTo(p outline.Point) {
	s.LineTo(float32(p.X), float32(p.Y))
}

func (s *vectorSink) quadTo(c, p outline.Point) {
	s.QuadTo(float32(c.X), float32(c.Y), float32(p.X), float32(p.Y))
}

func (s *vectorSink) cubeTo(c1, c2, p outline.Point) {
	s.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}

func (s *vectorSink) close() {
	s.ClosePath()
}

// rasterxSink strokes subpaths, starting one at the origin for path data that does not begin with a move.
type rasterxSink struct {
	dasher  *rasterx.Dasher
	started bool
	pos     outline.Point
	first   outline.Point // start of the subpath
}

func (s *rasterxSink) start() {
	if !s.started {
		s.dasher.Start(toFixed(s.pos))
		s.started = true
	}
}

func (s *rasterxSink) stop(closeLoop bool) {
	if s.started {
		s.dasher.Stop(closeLoop)
		s.started = false
	}
}

func (s *rasterxSink) moveTo(p outline.Point) {
	s.stop(false)
	s.pos = p
	s.first = p
	s.start()
}

func (s *rasterxSink) lineTo(p outline.Point) {
	s.start()
	s.dasher.Line(toFixed(p))
	s.pos = p
}

func (s *rasterxSink) quadTo(c, p outline.Point) {
	s.start()
	s.dasher.QuadBezier(toFixed(c), toFixed(p))
	s.pos = p
}

func (s *rasterxSink) cubeTo(c1, c2, p outline.Point) {
	s.start()
	s.dasher.CubeBezier(toFixed(c1), toFixed(c2), toFixed(p))
	s.pos = p
}

func (s *rasterxSink) close() {
	s.stop(true)
	s.pos = s.first
}
