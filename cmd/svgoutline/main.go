package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/outline"
	"github.com/tdewolff/outline/rasterizer"
	"github.com/tdewolff/outline/renderers"
	"github.com/tdewolff/outline/renderers/geojson"
	rendersvg "github.com/tdewolff/outline/renderers/svg"
	"github.com/tdewolff/outline/svg"
)

type Outline struct {
	Samples bool    `short:"s" desc:"Print sampled points instead of path data"`
	GeoJSON bool    `desc:"Print sampled points as GeoJSON"`
	Density float64 `short:"d" default:"1" desc:"Samples per unit length along curves"`
	Min     int     `default:"4" desc:"Minimum number of segments per curve"`
	Max     int     `default:"1024" desc:"Maximum number of segments per curve"`
	Tol     float64 `short:"t" desc:"Simplify samples, removing points that span less than this area"`
	Grid    float64 `short:"g" desc:"Snap samples to a grid with this spacing"`
	Workers int     `short:"w" default:"0" desc:"Number of workers, 0 for all CPUs"`
	Strict  bool    `desc:"Fail on warnings"`
	Verbose bool    `short:"v" desc:"Log all diagnostics"`
	Quiet   bool    `short:"q" desc:"Log no diagnostics"`
	Output  string  `short:"o" desc:"Output file"`
	Input   string  `index:"0" desc:"Input SVG file, - for stdin"`
}

type SVG struct {
	Samples bool    `short:"s" desc:"Write sampled points instead of paths"`
	Gzip    bool    `short:"z" desc:"Compress output"`
	Width   float64 `default:"1" desc:"Stroke width"`
	Density float64 `short:"d" default:"1" desc:"Samples per unit length along curves"`
	Workers int     `short:"w" default:"0" desc:"Number of workers, 0 for all CPUs"`
	Strict  bool    `desc:"Fail on warnings"`
	Verbose bool    `short:"v" desc:"Log all diagnostics"`
	Quiet   bool    `short:"q" desc:"Log no diagnostics"`
	Output  string  `short:"o" desc:"Output file"`
	Input   string  `index:"0" desc:"Input SVG file, - for stdin"`
}

type Render struct {
	Scale   float64 `default:"1" desc:"Pixels per user unit"`
	Width   float64 `default:"1" desc:"Stroke width in pixels"`
	Fill    bool    `desc:"Fill shapes in gray"`
	Strict  bool    `desc:"Fail on warnings"`
	Verbose bool    `short:"v" desc:"Log all diagnostics"`
	Quiet   bool    `short:"q" desc:"Log no diagnostics"`
	Output  string  `short:"o" desc:"Output file, the extension selects PNG, JPG, GIF, TIFF, SVG or GeoJSON"`
	Input   string  `index:"0" desc:"Input SVG file, - for stdin"`
}

func main() {
	root := argp.NewCmd(&Outline{}, "Convert SVG shapes to path data and sampled outlines")
	root.AddCmd(&SVG{}, "svg", "Write outlines as SVG")
	root.AddCmd(&Render{}, "render", "Render outlines to an image")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Outline) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setLogger(cmd.Verbose, cmd.Quiet)

	opts := outline.Options{
		Density:     cmd.Density,
		MinSegments: cmd.Min,
		MaxSegments: cmd.Max,
		Workers:     cmd.Workers,
	}
	_, res, err := convert(cmd.Input, opts, cmd.Strict)
	if err != nil {
		return err
	}
	for i, poly := range res.Samples {
		if 0.0 < cmd.Tol {
			poly = poly.Simplify(cmd.Tol)
		}
		if 0.0 < cmd.Grid {
			poly = poly.Gridsnap(cmd.Grid)
		}
		res.Samples[i] = poly
	}

	return output(cmd.Output, func(w io.Writer) error {
		if cmd.GeoJSON {
			return geojson.Writer(w, res)
		}
		bw := bufio.NewWriter(w)
		for i, p := range res.Paths {
			if cmd.Samples {
				writeSamples(bw, res.Samples[i])
			} else {
				fmt.Fprintln(bw, p)
			}
		}
		return bw.Flush()
	})
}

func (cmd *SVG) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setLogger(cmd.Verbose, cmd.Quiet)

	opts := outline.Options{
		Density: cmd.Density,
		Workers: cmd.Workers,
	}
	doc, res, err := convert(cmd.Input, opts, cmd.Strict)
	if err != nil {
		return err
	}

	svgOpts := rendersvg.DefaultOptions
	svgOpts.StrokeWidth = cmd.Width
	svgOpts.Samples = cmd.Samples
	if cmd.Gzip {
		svgOpts.Compression = -1
	}
	return output(cmd.Output, func(w io.Writer) error {
		return rendersvg.Writer(w, doc.Size(res.Paths), res, &svgOpts)
	})
}

func (cmd *Render) Run() error {
	if cmd.Input == "" || cmd.Output == "" {
		fmt.Fprintln(os.Stderr, "ERROR: must specify input and output filename")
		return argp.ShowUsage
	} else if cmd.Scale <= 0.0 {
		return fmt.Errorf("scale must be positive")
	}
	setLogger(cmd.Verbose, cmd.Quiet)

	doc, res, err := convert(cmd.Input, outline.DefaultOptions, cmd.Strict)
	if err != nil {
		return err
	}

	style := rasterizer.DefaultStyle
	style.StrokeWidth = cmd.Width
	if cmd.Fill {
		style.Fill = color.Gray{Y: 0xd3}
	}

	return renderers.Write(cmd.Output, doc.Size(res.Paths), res, renderers.Scale(cmd.Scale), style)
}

// setLogger logs warnings to stderr, all diagnostics when verbose and none when quiet.
func setLogger(verbose, quiet bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	} else if quiet {
		level = slog.LevelError
	}
	outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func convert(input string, opts outline.Options, strict bool) (*svg.Document, *outline.Result, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}

	doc, err := svg.Read(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", input, err)
	}
	res := doc.Convert(opts)
	if strict {
		if err := res.Err(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", input, err)
		}
	}
	return doc, res, nil
}

func output(filename string, write func(io.Writer) error) error {
	if filename == "" || filename == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSamples(w io.Writer, poly *outline.Polyline) {
	for i, coord := range poly.Coords() {
		if i != 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%g,%g", coord.X, coord.Y)
	}
	fmt.Fprintln(w)
}
