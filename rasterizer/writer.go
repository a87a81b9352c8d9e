package rasterizer

import (
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/tdewolff/outline"
	"golang.org/x/image/tiff"
)

// Writer writes paths to an image file.
type Writer func(w io.Writer, paths []*outline.Path) error

// PNGWriter writes the paths as a PNG file.
func PNGWriter(viewBox outline.Rect, scale float64, style Style) Writer {
	return func(w io.Writer, paths []*outline.Path) error {
		img := Draw(paths, viewBox, scale, style)
		return png.Encode(w, img)
	}
}

// JPGWriter writes the paths as a JPG file.
func JPGWriter(viewBox outline.Rect, scale float64, style Style, opts *jpeg.Options) Writer {
	return func(w io.Writer, paths []*outline.Path) error {
		img := Draw(paths, viewBox, scale, style)
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the paths as a GIF file.
func GIFWriter(viewBox outline.Rect, scale float64, style Style, opts *gif.Options) Writer {
	return func(w io.Writer, paths []*outline.Path) error {
		img := Draw(paths, viewBox, scale, style)
		return gif.Encode(w, img, opts)
	}
}

// TIFFWriter writes the paths as a TIFF file.
func TIFFWriter(viewBox outline.Rect, scale float64, style Style, opts *tiff.Options) Writer {
	return func(w io.Writer, paths []*outline.Path) error {
		img := Draw(paths, viewBox, scale, style)
		return tiff.Encode(w, img, opts)
	}
}
