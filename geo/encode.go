/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"reflect"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// EncodeGeometry converts a typed geometry to a GeoJSON geometry. Measures are
// dropped.
func (c Converter) EncodeGeometry(g geom.T) (*geojson.Geometry, error) {
	return c.encodeGeometry(g, 1)
}

func (c Converter) encodeGeometry(g geom.T, depth int) (*geojson.Geometry, error) {
	if IsNil(g) {
		return nil, unsupported(nil)
	}
	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}

	var out *geojson.Geometry
	switch v := g.(type) {
	case *geom.Point:
		out = geojson.NewPointGeometry(encodePoint(v))
	case *geom.LineString:
		out = geojson.NewLineStringGeometry(encodeCoords(v.Coords(), v.Layout()))
	case *geom.Polygon:
		out = geojson.NewPolygonGeometry(encodePolygon(v))
	case *geom.MultiPoint:
		out = geojson.NewMultiPointGeometry(encodeMultiPoint(v)...)
	case *geom.MultiLineString:
		out = geojson.NewMultiLineStringGeometry(encodeMultiLineString(v)...)
	case *geom.MultiPolygon:
		out = geojson.NewMultiPolygonGeometry(encodeMultiPolygon(v)...)
	case *geom.GeometryCollection:
		children := make([]*geojson.Geometry, 0, v.NumGeoms())
		for i, child := range v.Geoms() {
			gj, err := c.encodeGeometry(child, depth+1)
			if err != nil {
				return nil, errors.WithMessagef(err, "geometry %d", i)
			}
			children = append(children, gj)
		}
		out = geojson.NewCollectionGeometry(children...)
	default:
		// LinearRing is a geom.T too, but it is not a GeoJSON geometry.
		return nil, unsupported(g)
	}

	if c.BoundingBox {
		out.BoundingBox = boundingBox(g)
	}
	return out, nil
}

// IsNil reports whether g is nil or a typed nil pointer.
func IsNil(g geom.T) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// position emits x and y, plus z when the layout has one. M never survives.
func position(c geom.Coord, l geom.Layout) []float64 {
	pos := []float64{c.X(), c.Y()}
	if zi := l.ZIndex(); zi != -1 {
		pos = append(pos, c[zi])
	}
	return pos
}

// encodePoint returns an empty, non-nil position for an empty point.
func encodePoint(p *geom.Point) []float64 {
	if p.Empty() {
		return []float64{}
	}
	return position(p.Coords(), p.Layout())
}

func encodeCoords(coords []geom.Coord, l geom.Layout) [][]float64 {
	out := make([][]float64, 0, len(coords))
	for _, c := range coords {
		out = append(out, position(c, l))
	}
	return out
}

func encodePolygon(p *geom.Polygon) [][][]float64 {
	rings := make([][][]float64, 0, p.NumLinearRings())
	for i := 0; i < p.NumLinearRings(); i++ {
		r := p.LinearRing(i)
		rings = append(rings, encodeCoords(r.Coords(), r.Layout()))
	}
	return rings
}

func encodeMultiPoint(mp *geom.MultiPoint) [][]float64 {
	points := make([][]float64, 0, mp.NumPoints())
	for i := 0; i < mp.NumPoints(); i++ {
		points = append(points, encodePoint(mp.Point(i)))
	}
	return points
}

func encodeMultiLineString(mls *geom.MultiLineString) [][][]float64 {
	lines := make([][][]float64, 0, mls.NumLineStrings())
	for i := 0; i < mls.NumLineStrings(); i++ {
		ls := mls.LineString(i)
		lines = append(lines, encodeCoords(ls.Coords(), ls.Layout()))
	}
	return lines
}

func encodeMultiPolygon(mp *geom.MultiPolygon) [][][][]float64 {
	polygons := make([][][][]float64, 0, mp.NumPolygons())
	for i := 0; i < mp.NumPolygons(); i++ {
		polygons = append(polygons, encodePolygon(mp.Polygon(i)))
	}
	return polygons
}

// boundingBox returns [minx, miny, (minz,) maxx, maxy, (maxz)], or nil for an
// empty geometry.
func boundingBox(g geom.T) []float64 {
	if g.Empty() {
		return nil
	}
	b := g.Bounds()
	if b == nil || b.Layout().Stride() < 2 || b.IsEmpty() {
		return nil
	}
	mins := []float64{b.Min(0), b.Min(1)}
	maxs := []float64{b.Max(0), b.Max(1)}
	if zi := b.Layout().ZIndex(); zi != -1 {
		mins = append(mins, b.Min(zi))
		maxs = append(maxs, b.Max(zi))
	}
	return append(mins, maxs...)
}
