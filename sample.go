package outline

import (
	"math"
)

func quadraticBezierPos(p0, p1, p2 Point, t float64) Point {
	q0 := p0.Interpolate(p1, t)
	q1 := p1.Interpolate(p2, t)
	return q0.Interpolate(q1, t)
}

func quadraticBezierDeriv(p0, p1, p2 Point, t float64) Point {
	return p1.Sub(p0).Interpolate(p2.Sub(p1), t).Mul(2.0)
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	q0 := p0.Interpolate(p1, t)
	q1 := p1.Interpolate(p2, t)
	q2 := p2.Interpolate(p3, t)
	return quadraticBezierPos(q0, q1, q2, t)
}

func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	return quadraticBezierPos(p1.Sub(p0), p2.Sub(p1), p3.Sub(p2), t).Mul(3.0)
}

func quadraticBezierLength(p0, p1, p2 Point) float64 {
	speed := func(t float64) float64 {
		return quadraticBezierDeriv(p0, p1, p2, t).Length()
	}
	return lengthOf(speed, 2)
}

func cubicBezierLength(p0, p1, p2, p3 Point) float64 {
	speed := func(t float64) float64 {
		return cubicBezierDeriv(p0, p1, p2, p3, t).Length()
	}
	return lengthOf(speed, 4)
}

////////////////////////////////////////////////////////////////

// sampler appends the sample points of path segments to a polyline. Curves are evaluated in closed form at a number of steps that grows with their length.
type sampler struct {
	opts Options
	poly *Polyline
}

func newSampler(opts Options) *sampler {
	return &sampler{
		opts: opts.normalize(),
		poly: &Polyline{},
	}
}

func (s *sampler) segments(length float64) int {
	n := int(math.Ceil(length * s.opts.Density))
	if n < s.opts.MinSegments {
		n = s.opts.MinSegments
	} else if s.opts.MaxSegments < n {
		n = s.opts.MaxSegments
	}
	return n
}

// begin makes sure the polyline starts at the start of the segment, for path data that does not start with a move.
func (s *sampler) begin(start Point) {
	if len(s.poly.coords) == 0 {
		s.poly.coords = append(s.poly.coords, start)
	}
}

func (s *sampler) moveTo(end Point) {
	s.poly.coords = append(s.poly.coords, end)
}

func (s *sampler) lineTo(start, end Point) {
	s.begin(start)
	s.poly.coords = append(s.poly.coords, end)
}

func (s *sampler) quadTo(p0, p1, p2 Point) {
	s.begin(p0)
	n := s.segments(quadraticBezierLength(p0, p1, p2))
	for i := 1; i < n; i++ {
		s.poly.coords = append(s.poly.coords, quadraticBezierPos(p0, p1, p2, float64(i)/float64(n)))
	}
	s.poly.coords = append(s.poly.coords, p2)
}

func (s *sampler) cubeTo(p0, p1, p2, p3 Point) {
	s.begin(p0)
	n := s.segments(cubicBezierLength(p0, p1, p2, p3))
	for i := 1; i < n; i++ {
		s.poly.coords = append(s.poly.coords, cubicBezierPos(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	s.poly.coords = append(s.poly.coords, p3)
}

func (s *sampler) arcTo(start Point, arc Arc, end Point) {
	s.begin(start)
	n := s.segments(arc.Length())
	for i := 1; i < n; i++ {
		s.poly.coords = append(s.poly.coords, arc.PointAt(arc.Start+arc.Delta*float64(i)/float64(n)))
	}
	s.poly.coords = append(s.poly.coords, end)
}

// op samples a single path operation that starts at start. Degenerate arcs are sampled as lines.
func (s *sampler) op(start Point, op Op) {
	switch op.Cmd {
	case MoveToCmd:
		s.moveTo(op.End)
	case LineToCmd, CloseCmd:
		s.lineTo(start, op.End)
	case QuadToCmd:
		s.quadTo(start, op.C1, op.End)
	case CubeToCmd:
		s.cubeTo(start, op.C1, op.C2, op.End)
	case ArcToCmd:
		arc, err := EndpointToCenter(start.X, start.Y, op.RX, op.RY, op.Rot, op.Large, op.Sweep, op.End.X, op.End.Y)
		if err != nil {
			s.lineTo(start, op.End)
		} else {
			s.arcTo(start, arc, op.End)
		}
	}
}

// Sample returns the sampled polyline of the path, in the same way that ParsePath and Convert sample their output.
func (p *Path) Sample(opts Options) *Polyline {
	s := newSampler(opts)
	var pos Point
	for _, op := range p.ops {
		s.op(pos, op)
		pos = op.End
	}
	return s.poly
}
