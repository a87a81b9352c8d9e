package rasterizer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/tdewolff/outline"
	"github.com/tdewolff/test"
)

var viewBox = outline.Rect{X: 0.0, Y: 0.0, W: 100.0, H: 100.0}

func TestDraw(t *testing.T) {
	style := DefaultStyle
	style.StrokeWidth = 2.0
	img := Draw([]*outline.Path{outline.Rectangle(10, 10, 80, 80)}, viewBox, 1.0, style)
	test.T(t, img.Bounds().Dx(), 100)
	test.T(t, img.Bounds().Dy(), 100)
	test.That(t, img.RGBAAt(50, 10).R < 64, "top edge", img.RGBAAt(50, 10))
	test.That(t, img.RGBAAt(89, 50).R < 64, "right edge", img.RGBAAt(89, 50))
	test.T(t, img.RGBAAt(50, 50), color.RGBA{255, 255, 255, 255})
	test.T(t, img.RGBAAt(5, 5), color.RGBA{255, 255, 255, 255})
}

func TestDrawArcs(t *testing.T) {
	style := DefaultStyle
	style.StrokeWidth = 2.0
	img := Draw([]*outline.Path{outline.Circle(50, 50, 40)}, viewBox, 1.0, style)
	test.That(t, img.RGBAAt(50, 10).R < 128, "top", img.RGBAAt(50, 10))
	test.That(t, img.RGBAAt(50, 89).R < 128, "bottom", img.RGBAAt(50, 89))
	test.T(t, img.RGBAAt(50, 50), color.RGBA{255, 255, 255, 255})
}

func TestDrawFill(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	style := Style{Fill: red, Background: color.White}
	img := Draw([]*outline.Path{outline.Rectangle(10, 10, 80, 80)}, viewBox, 1.0, style)
	test.T(t, img.RGBAAt(50, 50), red)
	test.T(t, img.RGBAAt(5, 5), color.RGBA{255, 255, 255, 255})

	// scaled and offset view box
	img = Draw([]*outline.Path{outline.Rectangle(10, 10, 80, 80)}, outline.Rect{X: 50, Y: 50, W: 50, H: 50}, 2.0, style)
	test.T(t, img.Bounds().Dx(), 100)
	test.T(t, img.RGBAAt(10, 10), red)
	test.T(t, img.RGBAAt(95, 95), color.RGBA{255, 255, 255, 255})
}

func TestDrawTransparent(t *testing.T) {
	img := Draw([]*outline.Path{outline.Line(0, 50, 100, 50)}, viewBox, 1.0, Style{Stroke: color.Black, StrokeWidth: 2.0})
	test.T(t, img.RGBAAt(50, 20), color.RGBA{})
	test.That(t, 128 < img.RGBAAt(50, 50).A, img.RGBAAt(50, 50))
}

func TestRendererSize(t *testing.T) {
	img := Draw(nil, viewBox, 2.0, DefaultStyle)
	r := New(img, viewBox, 2.0, DefaultStyle)
	w, h := r.Size()
	test.Float(t, w, 100.0)
	test.Float(t, h, 100.0)
	r.RenderPath(nil)
	r.RenderPath(&outline.Path{})
	test.T(t, img.RGBAAt(0, 0), color.RGBA{255, 255, 255, 255})
}

func TestPNGWriter(t *testing.T) {
	var buf bytes.Buffer
	err := PNGWriter(viewBox, 0.5, DefaultStyle)(&buf, []*outline.Path{outline.Circle(50, 50, 40)})
	test.Error(t, err)

	img, err := png.Decode(&buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 50)
	test.T(t, img.Bounds().Dy(), 50)
}
