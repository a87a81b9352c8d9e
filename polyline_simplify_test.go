package outline

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPolylineGridsnap(t *testing.T) {
	p := PolylineFromPoints(Point{0.1, 0.2}, Point{0.4, -0.3}, Point{1.6, 0.4}, Point{2.2, 2.9})
	test.T(t, p.Gridsnap(1.0).Coords(), []Point{{0, 0}, {2, 0}, {2, 3}})
	test.T(t, p.Gridsnap(0.5).Coords(), []Point{{0, 0}, {0.5, -0.5}, {1.5, 0.5}, {2, 3}})
}

func TestPolylineSimplify(t *testing.T) {
	var tts = []struct {
		p         *Polyline
		tolerance float64
		r         *Polyline
	}{
		{PolylineFromPoints(Point{0, 0}, Point{1, 0.01}, Point{2, 0}, Point{3, 5}, Point{4, 0}), 0.1, PolylineFromPoints(Point{0, 0}, Point{2, 0}, Point{3, 5}, Point{4, 0})},
		{PolylineFromPoints(Point{0, 0}, Point{1, 1}, Point{2, 0}), 100.0, PolylineFromPoints(Point{0, 0}, Point{2, 0})},
		{PolylineFromPoints(Point{0, 0}, Point{5, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10}, Point{0, 0}), 0.1, PolylineFromPoints(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10}, Point{0, 0})},
		{PolylineFromPoints(Point{0, 0}, Point{10, 0}, Point{0, 10}, Point{0, 0}), 1000.0, PolylineFromPoints(Point{0, 0}, Point{10, 0}, Point{0, 10}, Point{0, 0})},
		{PolylineFromPoints(Point{0, 0}, Point{10, 0}), 1000.0, PolylineFromPoints(Point{0, 0}, Point{10, 0})},
		{PolylineFromPoints(Point{0, 0}, Point{1, 1}, Point{2, 0}), 0.0, PolylineFromPoints(Point{0, 0}, Point{1, 1}, Point{2, 0})},
	}
	for _, tt := range tts {
		t.Run(tt.p.ToPath().String(), func(t *testing.T) {
			r := tt.p.Simplify(tt.tolerance)
			test.That(t, r.Equals(tt.r), r.Coords())
			test.T(t, r.Closed(), tt.p.Closed())
		})
	}
}

func TestPolylineSimplifySquare(t *testing.T) {
	// collinear points vanish, corners stay
	p := PolylineFromPoints(Point{0, 0}, Point{5, 0}, Point{10, 0}, Point{10, 5}, Point{10, 10}, Point{0, 10}, Point{0, 0})
	r := p.Simplify(0.5)
	test.T(t, r.Len(), 5)
	test.That(t, r.Closed())
	approx(t, r.Area(), p.Area(), 1e-9)
}
