package outline

import (
	"math"
)

// Line returns a line segment from (x1,y1) to (x2,y2).
func Line(x1, y1, x2, y2 float64) *Path {
	p := &Path{}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Rectangle returns a rectangle with origin (x,y), width w and height h.
func Rectangle(x, y, w, h float64) *Path {
	if w <= 0.0 || h <= 0.0 {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangle returns a rectangle with origin (x,y), width w and height h, with elliptical corners of radii rx and ry. The radii are capped at half the width and height respectively, and a zero radius yields sharp corners.
func RoundedRectangle(x, y, w, h, rx, ry float64) *Path {
	if w <= 0.0 || h <= 0.0 {
		return &Path{}
	}
	rx = math.Min(math.Abs(rx), w/2.0)
	ry = math.Min(math.Abs(ry), h/2.0)
	if rx == 0.0 || ry == 0.0 {
		return Rectangle(x, y, w, h)
	}

	p := &Path{}
	p.MoveTo(x+rx, y)
	if !Equal(rx, w/2.0) {
		p.LineTo(x+w-rx, y)
	}
	p.ArcTo(rx, ry, 0.0, false, true, x+w, y+ry)
	if !Equal(ry, h/2.0) {
		p.LineTo(x+w, y+h-ry)
	}
	p.ArcTo(rx, ry, 0.0, false, true, x+w-rx, y+h)
	if !Equal(rx, w/2.0) {
		p.LineTo(x+rx, y+h)
	}
	p.ArcTo(rx, ry, 0.0, false, true, x, y+h-ry)
	if !Equal(ry, h/2.0) {
		p.LineTo(x, y+ry)
	}
	p.ArcTo(rx, ry, 0.0, false, true, x+rx, y)
	p.Close()
	return p
}

// Circle returns a circle with center (cx,cy) and radius r.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns an ellipse with center (cx,cy) and radii rx and ry. It starts at the rightmost point and runs in the positive angle direction.
func Ellipse(cx, cy, rx, ry float64) *Path {
	if rx <= 0.0 || ry <= 0.0 {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(cx+rx, cy)
	p.ArcTo(rx, ry, 0.0, false, true, cx-rx, cy)
	p.ArcTo(rx, ry, 0.0, false, true, cx+rx, cy)
	p.Close()
	return p
}

// Polygon returns a closed path through the given points.
func Polygon(coords ...Point) *Path {
	p := PolylinePath(coords...)
	if !p.Empty() {
		p.Close()
	}
	return p
}

// PolylinePath returns an open path through the given points.
func PolylinePath(coords ...Point) *Path {
	p := &Path{}
	for i, coord := range coords {
		if i == 0 {
			p.MoveTo(coord.X, coord.Y)
		} else {
			p.LineTo(coord.X, coord.Y)
		}
	}
	return p
}
