package outline

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result holds the geometry of a document. Paths and Samples are index-aligned and in document order, with one entry per drawn element.
type Result struct {
	Paths       []*Path
	Samples     []*Polyline
	Diagnostics []Diagnostic
}

// Len returns the number of drawn elements.
func (r *Result) Len() int {
	return len(r.Paths)
}

// Err returns all warnings joined into one error, or nil if there are none.
func (r *Result) Err() error {
	errs := []error{}
	for _, d := range r.Diagnostics {
		if d.Severity == Warning {
			errs = append(errs, d)
		}
	}
	return errors.Join(errs...)
}

func (r *Result) add(p *Path, poly *Polyline, diags []Diagnostic) {
	if p != nil {
		r.Paths = append(r.Paths, p)
		r.Samples = append(r.Samples, poly)
	}
	r.Diagnostics = append(r.Diagnostics, diags...)
}

// Convert converts the elements one by one in document order. Elements that cannot be drawn are skipped and reported in the result's diagnostics.
func Convert(elems []Element, opts Options) *Result {
	r := &Result{}
	for i, elem := range elems {
		r.add(ConvertElement(i, elem, opts))
	}
	return r
}

// ConvertParallel converts the elements concurrently using opts.Workers goroutines and concatenates the results in document order. Its result is identical to that of Convert.
func ConvertParallel(elems []Element, opts Options) *Result {
	type slot struct {
		path  *Path
		poly  *Polyline
		diags []Diagnostic
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	slots := make([]slot, len(elems))
	g := errgroup.Group{}
	g.SetLimit(workers)
	for i, elem := range elems {
		g.Go(func() error {
			path, poly, diags := ConvertElement(i, elem, opts)
			slots[i] = slot{path, poly, diags}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	r := &Result{}
	for _, s := range slots {
		r.add(s.path, s.poly, s.diags)
	}
	return r
}
