package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/outline"
	"github.com/tdewolff/outline/rasterizer"
	"github.com/tdewolff/outline/renderers/geojson"
	"github.com/tdewolff/outline/renderers/svg"
	"golang.org/x/image/tiff"
)

// Scale is the number of pixels per user unit for raster output.
type Scale float64

// MaxImageSize is the largest width or height in pixels of raster output.
const MaxImageSize = 16384

// Options are the collected output options of Write.
type Options struct {
	Scale
	Style rasterizer.Style
	JPG   *jpeg.Options
	GIF   *gif.Options
	TIFF  *tiff.Options
	SVG   *svg.Options
}

// Write writes the conversion result to a file, where the file extension selects the format. The view box sets the extent of SVG and raster output. Options may be of type Scale, rasterizer.Style, *jpeg.Options, *gif.Options, *tiff.Options or *svg.Options.
func Write(filename string, viewBox outline.Rect, res *outline.Result, opts ...interface{}) error {
	options := Options{
		Scale: 1.0,
		Style: rasterizer.DefaultStyle,
		TIFF:  &tiff.Options{Compression: tiff.Deflate},
	}
	for _, opt := range opts {
		switch o := opt.(type) {
		case Scale:
			options.Scale = o
		case rasterizer.Style:
			options.Style = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		default:
			return fmt.Errorf("unknown option: %T(%v)", opt, opt)
		}
	}

	var writer func(io.Writer) error
	isRaster := false
	scale := float64(options.Scale)
	raster := func(rw rasterizer.Writer) func(io.Writer) error {
		isRaster = true
		return func(w io.Writer) error {
			return rw(w, res.Paths)
		}
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		writer = raster(rasterizer.PNGWriter(viewBox, scale, options.Style))
	case ".jpg", ".jpeg":
		writer = raster(rasterizer.JPGWriter(viewBox, scale, options.Style, options.JPG))
	case ".gif":
		writer = raster(rasterizer.GIFWriter(viewBox, scale, options.Style, options.GIF))
	case ".tif", ".tiff":
		writer = raster(rasterizer.TIFFWriter(viewBox, scale, options.Style, options.TIFF))
	case ".svg", ".svgz":
		svgOpts := svg.DefaultOptions
		if options.SVG != nil {
			svgOpts = *options.SVG
		}
		if ext == ".svgz" && svgOpts.Compression == 0 {
			svgOpts.Compression = -1
		}
		writer = func(w io.Writer) error {
			return svg.Writer(w, viewBox, res, &svgOpts)
		}
	case ".json", ".geojson":
		writer = func(w io.Writer) error {
			return geojson.Writer(w, res)
		}
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
	if isRaster {
		if scale <= 0.0 {
			return fmt.Errorf("scale must be positive")
		} else if MaxImageSize < viewBox.W*scale || MaxImageSize < viewBox.H*scale {
			return fmt.Errorf("image cannot exceed %d pixels", MaxImageSize)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := writer(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
