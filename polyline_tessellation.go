package outline

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"
)

// Triangulate splits the area enclosed by the polyline into triangles using a constrained Delaunay triangulation. The polyline is closed implicitly and must not intersect itself.
func (p *Polyline) Triangulate() (triangles [][3]Point, err error) {
	coords := p.coords
	if p.Closed() {
		coords = coords[:len(coords)-1]
	}

	contour := []*poly2tri.Point{}
	for i, coord := range coords {
		if 0 < i && coord.Equals(coords[i-1]) {
			continue // poly2tri does not accept repeated points
		}
		contour = append(contour, poly2tri.NewPoint(coord.X, coord.Y))
	}
	if len(contour) < 3 {
		return nil, fmt.Errorf("triangulate: need at least 3 distinct points, got %d", len(contour))
	}

	defer func() {
		if r := recover(); r != nil {
			triangles, err = nil, fmt.Errorf("triangulate: %v", r)
		}
	}()

	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()
	for _, tr := range swctx.GetTriangles() {
		p0 := Point{tr.Points[0].X, tr.Points[0].Y}
		p1 := Point{tr.Points[1].X, tr.Points[1].Y}
		p2 := Point{tr.Points[2].X, tr.Points[2].Y}
		triangles = append(triangles, [3]Point{p0, p1, p2})
	}
	return triangles, nil
}
