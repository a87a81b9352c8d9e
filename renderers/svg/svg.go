// Package svg writes outline paths and their samples as a minimal SVG document.
package svg

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/outline"
)

// Options are the options of the SVG writer.
type Options struct {
	Compression int     // gzip level, 0 for no compression
	StrokeWidth float64 // in user units
	Samples     bool    // write the sampled polylines instead of the paths
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	StrokeWidth: 1.0,
}

// SVG is a scalable vector graphics renderer of black outlines.
type SVG struct {
	w    io.Writer
	gz   *gzip.Writer
	opts *Options
}

// New returns a scalable vector graphics (SVG) renderer for the given view box.
func New(w io.Writer, viewBox outline.Rect, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	var gz *gzip.Writer
	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		gz, _ = gzip.NewWriterLevel(w, opts.Compression)
		w = gz
	}

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%v" height="%v" viewBox="%v %v %v %v">`, num(viewBox.W), num(viewBox.H), num(viewBox.X), num(viewBox.Y), num(viewBox.W), num(viewBox.H))
	fmt.Fprintf(w, `<g fill="none" stroke="#000" stroke-width="%v">`, num(opts.StrokeWidth))
	return &SVG{
		w:    w,
		gz:   gz,
		opts: opts,
	}
}

// Close finishes the SVG.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</g></svg>")
	if r.gz != nil {
		if errClose := r.gz.Close(); err == nil {
			err = errClose
		}
	}
	return err
}

// RenderPath writes a path element.
func (r *SVG) RenderPath(p *outline.Path) {
	fmt.Fprintf(r.w, `<path d="%s"/>`, pathData(p))
}

// RenderPolyline writes a polyline element, or a polygon if it is closed.
func (r *SVG) RenderPolyline(poly *outline.Polyline) {
	coords := poly.Coords()
	tag := "polyline"
	if poly.Closed() && 2 < len(coords) {
		tag = "polygon"
		coords = coords[:len(coords)-1]
	}

	sb := strings.Builder{}
	for i, coord := range coords {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v %v", num(coord.X), num(coord.Y))
	}
	fmt.Fprintf(r.w, `<%s points="%s"/>`, tag, sb.String())
}

// Render writes all paths of the result, or all samples when Options.Samples is set.
func (r *SVG) Render(res *outline.Result) {
	for i := range res.Paths {
		if r.opts.Samples {
			r.RenderPolyline(res.Samples[i])
		} else {
			r.RenderPath(res.Paths[i])
		}
	}
}

// Writer writes the result as an SVG file.
func Writer(w io.Writer, viewBox outline.Rect, res *outline.Result, opts *Options) error {
	svg := New(w, viewBox, opts)
	svg.Render(res)
	return svg.Close()
}

// pathData returns compact path data with absolute coordinates.
func pathData(p *outline.Path) string {
	sb := strings.Builder{}
	for _, op := range p.Ops() {
		switch op.Cmd {
		case outline.MoveToCmd:
			fmt.Fprintf(&sb, "M%v %v", num(op.End.X), num(op.End.Y))
		case outline.LineToCmd:
			fmt.Fprintf(&sb, "L%v %v", num(op.End.X), num(op.End.Y))
		case outline.QuadToCmd:
			fmt.Fprintf(&sb, "Q%v %v %v %v", num(op.C1.X), num(op.C1.Y), num(op.End.X), num(op.End.Y))
		case outline.CubeToCmd:
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(op.C1.X), num(op.C1.Y), num(op.C2.X), num(op.C2.Y), num(op.End.X), num(op.End.Y))
		case outline.ArcToCmd:
			fmt.Fprintf(&sb, "A%v %v %v %s %s %v %v", num(op.RX), num(op.RY), num(op.Rot), flag(op.Large), flag(op.Sweep), num(op.End.X), num(op.End.Y))
		case outline.CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}
