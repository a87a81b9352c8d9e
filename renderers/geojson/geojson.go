// Package geojson writes sampled polylines as a GeoJSON feature collection in user space coordinates.
package geojson

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/outline"
)

// Geometry returns the polyline as a polygon when it is closed and encloses an area, or as a line string otherwise.
func Geometry(poly *outline.Polyline) orb.Geometry {
	ls := make(orb.LineString, 0, poly.Len())
	for _, coord := range poly.Coords() {
		ls = append(ls, orb.Point{coord.X, coord.Y})
	}
	if poly.Closed() && 4 <= len(ls) {
		return orb.Polygon{orb.Ring(ls)}
	}
	return ls
}

// FeatureCollection converts the samples of a result into features, in document order. Each feature has the properties index, closed and length, and polygons also have area and centroid.
func FeatureCollection(res *outline.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, poly := range res.Samples {
		f := geojson.NewFeature(Geometry(poly))
		f.Properties["index"] = i
		f.Properties["closed"] = poly.Closed()
		f.Properties["length"] = poly.Length()
		if _, ok := f.Geometry.(orb.Polygon); ok {
			centroid := poly.Centroid()
			f.Properties["area"] = poly.Area()
			f.Properties["centroid"] = []float64{centroid.X, centroid.Y}
		}
		fc.Append(f)
	}
	return fc
}

// Writer writes the samples of a result as GeoJSON.
func Writer(w io.Writer, res *outline.Result) error {
	b, err := FeatureCollection(res).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
