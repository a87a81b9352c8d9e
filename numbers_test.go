package outline

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tdewolff/test"
)

func TestTokenize(t *testing.T) {
	var tts = []struct {
		raw  string
		nums []float64
	}{
		{"", []float64{}},
		{"  ,, \n", []float64{}},
		{"10,20 -5-3", []float64{10, 20, -5, -3}},
		{"10-5", []float64{10, -5}},
		{"1e-5", []float64{1e-5}},
		{"1E-2-3", []float64{0.01, -3}},
		{"2.5e2,-1", []float64{250, -1}},
		{"-1-2-3", []float64{-1, -2, -3}},
		{"0.5\t1.5\r\n2.5", []float64{0.5, 1.5, 2.5}},
		{"10px 20PX 5em 50% 1in 2cm 3mm 4pt 5pc", []float64{10, 20, 5, 50, 1, 2, 3, 4, 5}},
		{"10px-5px", []float64{10, -5}},
		{"px", []float64{}},
		{"+3 .5", []float64{3, 0.5}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if diff := cmp.Diff(tt.nums, Tokenize(tt.raw), cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateEmpty()); diff != "" {
				test.Fail(t, "mismatch (-want +got):\n"+diff)
			}
		})
	}
}

func TestTokenizeMalformed(t *testing.T) {
	ds := &diagnostics{elem: ElementID{Tag: "polygon"}}
	nums := tokenize("1 abc 3 4x 1e999 -1e999", ds)
	test.T(t, len(nums), 6)
	test.Float(t, nums[1], 0.0)
	test.Float(t, nums[3], 0.0)
	test.Float(t, nums[4], 0.0)
	test.Float(t, nums[5], 0.0)
	test.T(t, len(ds.list), 4)
	for _, d := range ds.list {
		test.T(t, d.Kind, MalformedNumber)
		test.T(t, d.Severity, Warning)
		test.String(t, d.Element.Tag, "polygon")
	}
}

func TestStripUnit(t *testing.T) {
	test.String(t, stripUnit("10px"), "10")
	test.String(t, stripUnit("10Em"), "10")
	test.String(t, stripUnit("10%"), "10")
	test.String(t, stripUnit("10"), "10")
	test.String(t, stripUnit("10pt"), "10")
	test.String(t, stripUnit("in"), "")
}

func TestAttrNumber(t *testing.T) {
	ds := &diagnostics{}
	attrs := map[string]string{"x": "12.5px", "y": "", "w": "3 4"}

	x, ok := attrNumber(attrs, "x", ds)
	test.That(t, ok)
	test.Float(t, x, 12.5)

	_, ok = attrNumber(attrs, "y", ds)
	test.That(t, !ok, "empty attribute is unset")

	_, ok = attrNumber(attrs, "z", ds)
	test.That(t, !ok, "missing attribute is unset")

	test.Float(t, attrNumberOr(attrs, "w", 0.0, ds), 3.0)
	test.Float(t, attrNumberOr(attrs, "z", 7.0, ds), 7.0)
	test.T(t, len(ds.list), 0)
}
