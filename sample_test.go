package outline

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestBezierLength(t *testing.T) {
	approx(t, quadraticBezierLength(Point{0, 0}, Point{5, 0}, Point{10, 0}), 10.0, 1e-9)
	approx(t, cubicBezierLength(Point{0, 0}, Point{3, 0}, Point{6, 0}, Point{9, 0}), 9.0, 1e-9)
	// quarter circle approximation, see https://spencermortensen.com/articles/bezier-circle/
	c := 0.551915024494
	approx(t, cubicBezierLength(Point{1, 0}, Point{1, c}, Point{c, 1}, Point{0, 1}), math.Pi/2.0, 1e-3)
}

func TestBezierPos(t *testing.T) {
	test.T(t, quadraticBezierPos(Point{0, 0}, Point{5, 10}, Point{10, 0}, 0.5), Point{5, 5})
	test.T(t, cubicBezierPos(Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0}, 0.5), Point{5, 7.5})
	test.T(t, quadraticBezierDeriv(Point{0, 0}, Point{5, 10}, Point{10, 0}, 0.0), Point{10, 20})
	test.T(t, cubicBezierDeriv(Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0}, 0.5), Point{15, 0})
}

func TestSamplerSegments(t *testing.T) {
	s := newSampler(Options{Density: 2.0, MinSegments: 3, MaxSegments: 8})
	test.T(t, s.segments(0.0), 3)
	test.T(t, s.segments(2.1), 5)
	test.T(t, s.segments(100.0), 8)

	// zero options fall back to the defaults
	s = newSampler(Options{})
	test.T(t, s.opts.MinSegments, DefaultOptions.MinSegments)
	test.T(t, s.segments(1e9), DefaultOptions.MaxSegments)

	s = newSampler(Options{MinSegments: 10, MaxSegments: 5})
	test.T(t, s.segments(0.0), 10)
}

func TestPathSample(t *testing.T) {
	p := MustParsePath("M0 0L10 0M20 0L30 0")
	test.T(t, p.Sample(DefaultOptions).Coords(), []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}})

	p = MustParsePath("M0 0Q5 10 10 0")
	poly := p.Sample(Options{MinSegments: 4, MaxSegments: 4})
	test.T(t, poly.Len(), 5)
	test.T(t, poly.Coords()[2], Point{5, 5})
	test.T(t, poly.Last(), Point{10, 0})

	// samples of an elliptical arc lie on the ellipse
	p = MustParsePath("M30 0A30 10 0 0 1 -30 0")
	for _, coord := range p.Sample(DefaultOptions).Coords() {
		approx(t, coord.X*coord.X/900.0+coord.Y*coord.Y/100.0, 1.0, 1e-9)
	}
}
