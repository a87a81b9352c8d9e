package outline

import (
	"errors"
	"math"
)

// ErrDegenerateArc is returned for arcs with a zero radius or coinciding end points. Such arcs are drawn as a straight line.
var ErrDegenerateArc = errors.New("degenerate arc")

// Arc is an elliptical arc in center form. Angles are in radians and counter clockwise positive in a Y-up frame, which is clockwise on screen for Y-down user space.
type Arc struct {
	Center Point
	RX, RY float64 // radii after out-of-range correction
	Phi    float64 // rotation of the X axis of the ellipse
	Start  float64 // angle of the start point
	Delta  float64 // angular sweep, negative when going CW
}

// EndpointToCenter converts an arc from the endpoint form used in path data to the center form.
// The start point is (x1,y1) and the end point (x2,y2), rot is the rotation of the ellipse's X axis in degrees.
// Radii that are too small to span both end points are scaled up uniformly.
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func EndpointToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (Arc, error) {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0.0 || ry == 0.0 {
		return Arc{}, ErrDegenerateArc
	}

	phi := rot * math.Pi / 180.0
	sinphi, cosphi := math.Sincos(phi)

	// F.6.5.1, midpoint in the frame of the ellipse
	hdx, hdy := (x1-x2)/2.0, (y1-y2)/2.0
	x1p := cosphi*hdx + sinphi*hdy
	y1p := -sinphi*hdx + cosphi*hdy
	if x1p == 0.0 && y1p == 0.0 {
		return Arc{}, ErrDegenerateArc
	}

	// F.6.6, correction of out-of-range radii
	lambda := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < lambda {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	// F.6.5.2, the center is the midpoint when the radii were scaled up
	sq := 0.0
	if lambda < 1.0 {
		sumSq := rx*rx*y1p*y1p + ry*ry*x1p*x1p
		sq = math.Max(0.0, (rx*rx*ry*ry-sumSq)/sumSq)
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// F.6.5.3
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	// F.6.5.5 and F.6.5.6
	u := Point{(x1p - cxp) / rx, (y1p - cyp) / ry}
	v := Point{(-x1p - cxp) / rx, (-y1p - cyp) / ry}
	theta := u.Angle()
	delta := angleNorm(u.AngleBetween(v))
	if !sweep {
		delta -= 2.0 * math.Pi
	}
	return Arc{
		Center: Point{cx, cy},
		RX:     rx,
		RY:     ry,
		Phi:    phi,
		Start:  theta,
		Delta:  delta,
	}, nil
}

// PointAt returns the point on the ellipse at angle theta.
func (a Arc) PointAt(theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(a.Phi)
	x := a.RX * costheta
	y := a.RY * sintheta
	return Point{
		a.Center.X + cosphi*x - sinphi*y,
		a.Center.Y + sinphi*x + cosphi*y,
	}
}

// End returns the angle of the end point.
func (a Arc) End() float64 {
	return a.Start + a.Delta
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	speed := func(t float64) float64 {
		sintheta, costheta := math.Sincos(a.Start + t*a.Delta)
		return math.Abs(a.Delta) * math.Hypot(a.RX*sintheta, a.RY*costheta)
	}
	// a full turn is split in eight parts for accuracy on eccentric ellipses
	n := int(math.Ceil(math.Abs(a.Delta) / (math.Pi / 4.0)))
	if n < 1 {
		n = 1
	}
	return lengthOf(speed, n)
}
