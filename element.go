package outline

import (
	"strings"
)

// Element is a drawable markup element with its raw attribute values, as handed over by a document reader.
type Element struct {
	Tag   string
	Attrs map[string]string
}

// converter turns the attributes of an element into a path, returning nil when the element is skipped.
type converter func(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline)

var converters map[string]converter

func init() {
	converters = map[string]converter{
		"path":     convertPath,
		"rect":     convertRect,
		"circle":   convertCircle,
		"ellipse":  convertEllipse,
		"line":     convertLine,
		"polygon":  convertPolygon,
		"polyline": convertPolyline,
	}
}

// IsDrawable returns true if the tag is one of path, rect, circle, ellipse, line, polygon or polyline, ignoring case.
func IsDrawable(tag string) bool {
	_, ok := converters[strings.ToLower(tag)]
	return ok
}

// ConvertElement converts a single element into a path and its sampled polyline. The element index is used to identify the element in diagnostics.
// Both the path and polyline are nil when the element is skipped, in which case a diagnostic explains why.
func ConvertElement(index int, elem Element, opts Options) (*Path, *Polyline, []Diagnostic) {
	ds := &diagnostics{elem: ElementID{
		Index: index,
		Tag:   elem.Tag,
		ID:    elem.Attrs["id"],
	}}
	p, poly := convertElement(elem, opts, ds)
	return p, poly, ds.list
}

func convertElement(elem Element, opts Options, ds *diagnostics) (*Path, *Polyline) {
	convert, ok := converters[strings.ToLower(elem.Tag)]
	if !ok {
		ds.info(UnknownCommand, "unsupported element %q", elem.Tag)
		return nil, nil
	}
	attrs := elem.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	p, poly := convert(attrs, opts, ds)
	if p == nil || p.Empty() {
		return nil, nil
	}
	return p, poly
}

func convertPath(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	p, poly := parsePath(attrs["d"], opts, ds)
	for _, op := range p.Ops() {
		if op.Cmd != MoveToCmd && op.Cmd != CloseCmd {
			return p, poly
		}
	}
	ds.warn(InsufficientPoints, "path without drawing commands")
	return nil, nil
}

func convertRect(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	x := attrNumberOr(attrs, "x", 0.0, ds)
	y := attrNumberOr(attrs, "y", 0.0, ds)
	w := attrNumberOr(attrs, "width", 0.0, ds)
	h := attrNumberOr(attrs, "height", 0.0, ds)
	if w <= 0.0 || h <= 0.0 {
		ds.warn(InsufficientPoints, "rect with non-positive size %gx%g", w, h)
		return nil, nil
	}

	// an unset or negative radius takes the value of the other one
	rx, okx := attrNumber(attrs, "rx", ds)
	ry, oky := attrNumber(attrs, "ry", ds)
	okx = okx && 0.0 <= rx
	oky = oky && 0.0 <= ry
	if !okx && !oky {
		rx, ry = 0.0, 0.0
	} else if !okx {
		rx = ry
	} else if !oky {
		ry = rx
	}

	p := RoundedRectangle(x, y, w, h, rx, ry)
	return p, p.Sample(opts)
}

func convertCircle(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	cx := attrNumberOr(attrs, "cx", 0.0, ds)
	cy := attrNumberOr(attrs, "cy", 0.0, ds)
	r := attrNumberOr(attrs, "r", 0.0, ds)
	if r <= 0.0 {
		ds.warn(InsufficientPoints, "circle with non-positive radius %g", r)
		return nil, nil
	}

	p := Circle(cx, cy, r)
	return p, p.Sample(opts)
}

func convertEllipse(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	cx := attrNumberOr(attrs, "cx", 0.0, ds)
	cy := attrNumberOr(attrs, "cy", 0.0, ds)
	rx := attrNumberOr(attrs, "rx", 0.0, ds)
	ry := attrNumberOr(attrs, "ry", 0.0, ds)
	if rx <= 0.0 || ry <= 0.0 {
		ds.warn(InsufficientPoints, "ellipse with non-positive radii %g,%g", rx, ry)
		return nil, nil
	}

	p := Ellipse(cx, cy, rx, ry)
	return p, p.Sample(opts)
}

func convertLine(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	x1 := attrNumberOr(attrs, "x1", 0.0, ds)
	y1 := attrNumberOr(attrs, "y1", 0.0, ds)
	x2 := attrNumberOr(attrs, "x2", 0.0, ds)
	y2 := attrNumberOr(attrs, "y2", 0.0, ds)

	p := Line(x1, y1, x2, y2)
	return p, p.Sample(opts)
}

// points returns the coordinate pairs of the points attribute, dropping an odd trailing value.
func points(attrs map[string]string, ds *diagnostics) []Point {
	vals := tokenize(attrs["points"], ds)
	if len(vals)%2 != 0 {
		ds.info(InsufficientPoints, "odd number of coordinates, ignoring %g", vals[len(vals)-1])
	}
	coords := make([]Point, 0, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		coords = append(coords, Point{vals[i], vals[i+1]})
	}
	return coords
}

func convertPolygon(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	coords := points(attrs, ds)
	if len(coords) == 0 {
		ds.warn(InsufficientPoints, "polygon without coordinate pairs")
		return nil, nil
	}

	p := Polygon(coords...)
	return p, p.Sample(opts)
}

func convertPolyline(attrs map[string]string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	coords := points(attrs, ds)
	if len(coords) == 0 {
		ds.warn(InsufficientPoints, "polyline without coordinate pairs")
		return nil, nil
	}

	p := PolylinePath(coords...)
	return p, p.Sample(opts)
}
