package outline

import "math"

// FillRule is the rule that decides which points are inside a shape.
type FillRule int

// see FillRule
const (
	NonZero FillRule = iota
	EvenOdd
)

// Polyline is a list of points that approximates a path. If the last point equals the first point, we assume the polyline to close itself.
type Polyline struct {
	coords []Point
}

// PolylineFromPoints returns a polyline through the given points.
func PolylineFromPoints(coords ...Point) *Polyline {
	return &Polyline{append([]Point{}, coords...)}
}

// Empty returns true if the polyline has no points.
func (p *Polyline) Empty() bool {
	return len(p.coords) == 0
}

// Len returns the number of points.
func (p *Polyline) Len() int {
	return len(p.coords)
}

// Add adds a new point to the polyline.
func (p *Polyline) Add(x, y float64) *Polyline {
	p.coords = append(p.coords, Point{x, y})
	return p
}

// Close adds a new point equal to the first, closing the polyline.
func (p *Polyline) Close() *Polyline {
	if 0 < len(p.coords) {
		p.coords = append(p.coords, p.coords[0])
	}
	return p
}

// Closed returns true if the last point coincides with the first.
func (p *Polyline) Closed() bool {
	return 1 < len(p.coords) && p.coords[0].Equals(p.coords[len(p.coords)-1])
}

// Coords returns the list of points of the polyline.
func (p *Polyline) Coords() []Point {
	return p.coords
}

// Last returns the last point, or the origin for an empty polyline.
func (p *Polyline) Last() Point {
	if len(p.coords) == 0 {
		return Point{}
	}
	return p.coords[len(p.coords)-1]
}

// Equals returns true if both polylines have the same points with tolerance Epsilon.
func (p *Polyline) Equals(q *Polyline) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if !p.coords[i].Equals(q.coords[i]) {
			return false
		}
	}
	return true
}

// Length returns the total length of all segments.
func (p *Polyline) Length() float64 {
	length := 0.0
	for i := 1; i < len(p.coords); i++ {
		length += p.coords[i].Sub(p.coords[i-1]).Length()
	}
	return length
}

// Bounds returns the bounding box of the polyline.
func (p *Polyline) Bounds() Rect {
	if len(p.coords) == 0 {
		return Rect{}
	}
	xmin, ymin := p.coords[0].X, p.coords[0].Y
	xmax, ymax := xmin, ymin
	for _, coord := range p.coords[1:] {
		xmin, ymin = math.Min(xmin, coord.X), math.Min(ymin, coord.Y)
		xmax, ymax = math.Max(xmax, coord.X), math.Max(ymax, coord.Y)
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// FillCount returns the number of times the test point is enclosed by the polyline. Enclosures of opposite orientation have opposite signs.
func (p *Polyline) FillCount(x, y float64) int {
	if len(p.coords) == 0 {
		return 0
	}
	test := Point{x, y}
	count := 0
	prevCoord := p.coords[len(p.coords)-1] // an open polyline is closed implicitly
	for _, coord := range p.coords {
		// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
		if (test.Y < coord.Y) != (test.Y < prevCoord.Y) &&
			test.X < (prevCoord.X-coord.X)*(test.Y-coord.Y)/(prevCoord.Y-coord.Y)+coord.X {
			if prevCoord.Y < coord.Y {
				count--
			} else {
				count++
			}
		}
		prevCoord = coord
	}
	return count
}

// Interior is true when the point (x,y) is in the interior of the polyline, ie. gets filled. This depends on the fill rule.
func (p *Polyline) Interior(x, y float64, fillRule FillRule) bool {
	fillCount := p.FillCount(x, y)
	if fillRule == NonZero {
		return fillCount != 0
	}
	return fillCount%2 != 0
}

// Area returns the polygon's area.
func (p *Polyline) Area() float64 {
	n := len(p.coords)
	if p.Closed() {
		n--
	}
	a := 0.0
	for i := 0; i < n; i++ {
		a += p.coords[i].PerpDot(p.coords[(i+1)%n])
	}
	return math.Abs(a / 2.0)
}

// Centroid returns the center point of the polygon.
func (p *Polyline) Centroid() Point {
	n := len(p.coords)
	if p.Closed() {
		n--
	}
	if n == 0 {
		return Point{}
	} else if n == 1 {
		return p.coords[0]
	} else if n == 2 {
		return p.coords[0].Interpolate(p.coords[1], 0.5)
	}

	a := 0.0
	c := Point{}
	for i := 0; i < n; i++ {
		f := p.coords[i].PerpDot(p.coords[(i+1)%n])
		a += f
		c = c.Add(p.coords[i].Add(p.coords[(i+1)%n]).Mul(f))
	}
	if a == 0.0 {
		return p.coords[0]
	}
	return c.Div(3.0 * a)
}

// ToPath converts the polyline to a path of straight lines. A closed polyline is closed with a close command, and a polyline of fewer than two points yields an empty path.
func (p *Polyline) ToPath() *Path {
	if len(p.coords) < 2 {
		return &Path{}
	}

	q := &Path{}
	q.MoveTo(p.coords[0].X, p.coords[0].Y)
	coords := p.coords[1:]
	if p.Closed() {
		coords = coords[:len(coords)-1]
	}
	for _, coord := range coords {
		q.LineTo(coord.X, coord.Y)
	}
	if p.Closed() {
		q.Close()
	}
	return q
}
