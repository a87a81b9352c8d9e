package outline

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestConvertElement(t *testing.T) {
	var tts = []struct {
		tag   string
		attrs map[string]string
		path  string
	}{
		{"path", map[string]string{"d": "M0 0L10 10"}, "M0 0L10 10"},
		{"PATH", map[string]string{"d": "M0 0L10 10"}, "M0 0L10 10"},
		{"rect", map[string]string{"x": "1", "y": "2", "width": "5", "height": "10"}, "M1 2H6V12H1z"},
		{"rect", map[string]string{"width": "5px", "height": "10px", "rx": "2"}, "M2 0L3 0A2 2 0 0 1 5 2L5 8A2 2 0 0 1 3 10L2 10A2 2 0 0 1 0 8L0 2A2 2 0 0 1 2 0z"},
		{"rect", map[string]string{"width": "5", "height": "10", "ry": "2"}, "M2 0L3 0A2 2 0 0 1 5 2L5 8A2 2 0 0 1 3 10L2 10A2 2 0 0 1 0 8L0 2A2 2 0 0 1 2 0z"},
		{"rect", map[string]string{"width": "5", "height": "10", "rx": "-1", "ry": "2"}, "M2 0L3 0A2 2 0 0 1 5 2L5 8A2 2 0 0 1 3 10L2 10A2 2 0 0 1 0 8L0 2A2 2 0 0 1 2 0z"},
		{"rect", map[string]string{"width": "5", "height": "10", "rx": "0"}, "M0 0H5V10H0z"},
		{"circle", map[string]string{"cx": "1", "cy": "1", "r": "2"}, "M3 1A2 2 0 0 1 -1 1A2 2 0 0 1 3 1z"},
		{"ellipse", map[string]string{"rx": "3", "ry": "2"}, "M3 0A3 2 0 0 1 -3 0A3 2 0 0 1 3 0z"},
		{"line", map[string]string{"x1": "1", "y1": "2", "x2": "3", "y2": "4"}, "M1 2L3 4"},
		{"line", map[string]string{}, "M0 0L0 0"},
		{"polygon", map[string]string{"points": "0,0 10,0 10,10"}, "M0 0L10 0L10 10z"},
		{"polyline", map[string]string{"points": "0,0 10,0 10,10"}, "M0 0L10 0L10 10"},
		{"polyline", map[string]string{"points": "0 0 10-5"}, "M0 0L10 -5"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, poly, diags := ConvertElement(i, Element{tt.tag, tt.attrs}, DefaultOptions)
			test.T(t, len(diags), 0, diags)
			test.That(t, p.Equals(MustParsePath(tt.path)), p, tt.path)
			test.That(t, p.Sample(DefaultOptions).Equals(poly))
		})
	}
}

func TestConvertElementSkipped(t *testing.T) {
	var tts = []struct {
		tag      string
		attrs    map[string]string
		severity Severity
		kind     Kind
	}{
		{"circle", map[string]string{"r": "0"}, Warning, InsufficientPoints},
		{"circle", map[string]string{"r": "-2"}, Warning, InsufficientPoints},
		{"circle", nil, Warning, InsufficientPoints},
		{"ellipse", map[string]string{"rx": "3"}, Warning, InsufficientPoints},
		{"rect", map[string]string{"width": "5"}, Warning, InsufficientPoints},
		{"rect", map[string]string{"width": "0", "height": "5"}, Warning, InsufficientPoints},
		{"path", map[string]string{}, Warning, InsufficientPoints},
		{"path", map[string]string{"d": "  "}, Warning, InsufficientPoints},
		{"path", map[string]string{"d": "Z"}, Warning, InsufficientPoints},
		{"path", map[string]string{"d": "M10 10"}, Warning, InsufficientPoints},
		{"path", map[string]string{"d": "M0 0M5 5z"}, Warning, InsufficientPoints},
		{"polygon", map[string]string{"points": ""}, Warning, InsufficientPoints},
		{"polyline", map[string]string{}, Warning, InsufficientPoints},
		{"text", map[string]string{"x": "5"}, Info, UnknownCommand},
		{"g", nil, Info, UnknownCommand},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, poly, diags := ConvertElement(i, Element{tt.tag, tt.attrs}, DefaultOptions)
			test.That(t, p == nil, "no path")
			test.That(t, poly == nil, "no samples")
			test.T(t, len(diags), 1, diags)
			test.T(t, diags[0].Severity, tt.severity)
			test.T(t, diags[0].Kind, tt.kind)
			test.T(t, diags[0].Element, ElementID{Index: i, Tag: tt.tag})
		})
	}
}

func TestConvertElementDiagnostics(t *testing.T) {
	// an odd coordinate count drops the last value
	p, _, diags := ConvertElement(0, Element{"polyline", map[string]string{"points": "0 0 10 10 5"}}, DefaultOptions)
	test.That(t, p.Equals(MustParsePath("M0 0L10 10")))
	test.T(t, len(diags), 1)
	test.T(t, diags[0].Severity, Info)
	test.T(t, diags[0].Kind, InsufficientPoints)

	// a malformed number is read as zero
	p, _, diags = ConvertElement(1, Element{"circle", map[string]string{"id": "c", "cx": "x1", "r": "2"}}, DefaultOptions)
	test.That(t, p.Equals(Circle(0.0, 0.0, 2.0)))
	test.T(t, len(diags), 1)
	test.T(t, diags[0].Kind, MalformedNumber)
	test.T(t, diags[0].Element, ElementID{1, "circle", "c"})
	test.String(t, diags[0].Element.String(), "circle#c[1]")

	// a degenerate arc is drawn as a line and the element is kept
	p, poly, diags := ConvertElement(2, Element{"path", map[string]string{"d": "M0 0A0 0 0 0 1 10 0"}}, DefaultOptions)
	test.That(t, p.Equals(MustParsePath("M0 0L10 0")))
	test.T(t, poly.Len(), 2)
	test.T(t, len(diags), 1)
	test.T(t, diags[0].Kind, DegenerateArc)
	test.String(t, diags[0].Element.String(), "path[2]")
}

func TestIsDrawable(t *testing.T) {
	for _, tag := range []string{"path", "rect", "circle", "ellipse", "line", "polygon", "polyline", "Rect"} {
		test.That(t, IsDrawable(tag), tag)
	}
	for _, tag := range []string{"g", "svg", "text", "use", ""} {
		test.That(t, !IsDrawable(tag), tag)
	}
}
