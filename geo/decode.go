/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// DefaultLayout is the layout of a decoded geometry that has no positions to
// guess a layout from.
const DefaultLayout = geom.XY

// DecodeGeometry converts a GeoJSON geometry to the matching typed geometry.
func (c Converter) DecodeGeometry(g *geojson.Geometry) (geom.T, error) {
	return c.decodeGeometry(g, 1)
}

func (c Converter) decodeGeometry(g *geojson.Geometry, depth int) (geom.T, error) {
	if g == nil {
		return nil, ErrMissingCoordinates
	}
	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}

	switch g.Type {
	case geojson.GeometryPoint:
		return decodePoint(g.Point)
	case geojson.GeometryLineString:
		return decodeLineString(g.LineString)
	case geojson.GeometryPolygon:
		return decodePolygon(g.Polygon)
	case geojson.GeometryMultiPoint:
		return decodeMultiPoint(g.MultiPoint)
	case geojson.GeometryMultiLineString:
		return decodeMultiLineString(g.MultiLineString)
	case geojson.GeometryMultiPolygon:
		return decodeMultiPolygon(g.MultiPolygon)
	case geojson.GeometryCollection:
		return c.decodeCollection(g.Geometries, depth)
	default:
		return nil, unsupported(string(g.Type))
	}
}

// positionLayout returns the layout a position implies. A third component is
// always an altitude; anything after it is ignored.
func positionLayout(p []float64) geom.Layout {
	switch {
	case len(p) == 0:
		return geom.NoLayout
	case len(p) == 2:
		return geom.XY
	case len(p) >= 3:
		return geom.XYZ
	}
	return geom.NoLayout
}

// pointsLayout, ringsLayout and polygonsLayout return the layout of the first
// position at least two components long, or NoLayout.
func pointsLayout(ps [][]float64) geom.Layout {
	for _, p := range ps {
		if len(p) >= 2 {
			return positionLayout(p)
		}
	}
	return geom.NoLayout
}

func ringsLayout(pss [][][]float64) geom.Layout {
	for _, ps := range pss {
		if l := pointsLayout(ps); l != geom.NoLayout {
			return l
		}
	}
	return geom.NoLayout
}

func polygonsLayout(psss [][][][]float64) geom.Layout {
	for _, pss := range psss {
		if l := ringsLayout(pss); l != geom.NoLayout {
			return l
		}
	}
	return geom.NoLayout
}

func orDefault(l geom.Layout) geom.Layout {
	if l == geom.NoLayout {
		return DefaultLayout
	}
	return l
}

// decodeCoord converts p to a coordinate of layout l. ok is false when p is
// absent.
func decodeCoord(p []float64, l geom.Layout) (c geom.Coord, ok bool, err error) {
	switch len(p) {
	case 0:
		return nil, false, nil
	case 1:
		return nil, false, ErrDimensionalityTooLow
	}
	if pl := positionLayout(p); pl != l {
		return nil, false, geom.ErrLayoutMismatch{Got: pl, Want: l}
	}
	return geom.Coord(p[:l.Stride()]), true, nil
}

// decodePoint maps an absent position to an empty point.
func decodePoint(p []float64) (*geom.Point, error) {
	l := orDefault(positionLayout(p))
	return decodePointIn(p, l)
}

func decodePointIn(p []float64, l geom.Layout) (*geom.Point, error) {
	c, ok, err := decodeCoord(p, l)
	if err != nil {
		return nil, err
	}
	if !ok {
		return geom.NewPointEmpty(l), nil
	}
	return geom.NewPoint(l).SetCoords(c)
}

// decodeCoords converts the vertices of a line or ring. Unlike a point, a
// vertex cannot be absent.
func decodeCoords(ps [][]float64, l geom.Layout) ([]geom.Coord, error) {
	coords := make([]geom.Coord, 0, len(ps))
	for i, p := range ps {
		c, ok, err := decodeCoord(p, l)
		if err != nil {
			return nil, errors.WithMessagef(err, "position %d", i)
		}
		if !ok {
			return nil, errors.WithMessagef(ErrMissingCoordinates, "position %d", i)
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func decodeLineStringIn(ps [][]float64, l geom.Layout) (*geom.LineString, error) {
	coords, err := decodeCoords(ps, l)
	if err != nil {
		return nil, err
	}
	return geom.NewLineString(l).SetCoords(coords)
}

func decodeLineString(ps [][]float64) (*geom.LineString, error) {
	return decodeLineStringIn(ps, orDefault(pointsLayout(ps)))
}

func decodePolygonIn(pss [][][]float64, l geom.Layout) (*geom.Polygon, error) {
	p := geom.NewPolygon(l)
	for i, ps := range pss {
		coords, err := decodeCoords(ps, l)
		if err != nil {
			return nil, errors.WithMessagef(err, "ring %d", i)
		}
		r, err := geom.NewLinearRing(l).SetCoords(coords)
		if err != nil {
			return nil, errors.WithMessagef(err, "ring %d", i)
		}
		if err := p.Push(r); err != nil {
			return nil, errors.WithMessagef(err, "ring %d", i)
		}
	}
	return p, nil
}

func decodePolygon(pss [][][]float64) (*geom.Polygon, error) {
	return decodePolygonIn(pss, orDefault(ringsLayout(pss)))
}

func decodeMultiPoint(ps [][]float64) (*geom.MultiPoint, error) {
	l := orDefault(pointsLayout(ps))
	mp := geom.NewMultiPoint(l)
	for i, p := range ps {
		pt, err := decodePointIn(p, l)
		if err != nil {
			return nil, errors.WithMessagef(err, "point %d", i)
		}
		if err := mp.Push(pt); err != nil {
			return nil, errors.WithMessagef(err, "point %d", i)
		}
	}
	return mp, nil
}

func decodeMultiLineString(pss [][][]float64) (*geom.MultiLineString, error) {
	l := orDefault(ringsLayout(pss))
	mls := geom.NewMultiLineString(l)
	for i, ps := range pss {
		ls, err := decodeLineStringIn(ps, l)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", i)
		}
		if err := mls.Push(ls); err != nil {
			return nil, errors.WithMessagef(err, "line %d", i)
		}
	}
	return mls, nil
}

func decodeMultiPolygon(psss [][][][]float64) (*geom.MultiPolygon, error) {
	l := orDefault(polygonsLayout(psss))
	mp := geom.NewMultiPolygon(l)
	for i, pss := range psss {
		p, err := decodePolygonIn(pss, l)
		if err != nil {
			return nil, errors.WithMessagef(err, "polygon %d", i)
		}
		if err := mp.Push(p); err != nil {
			return nil, errors.WithMessagef(err, "polygon %d", i)
		}
	}
	return mp, nil
}

func (c Converter) decodeCollection(gs []*geojson.Geometry, depth int) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	for i, child := range gs {
		t, err := c.decodeGeometry(child, depth+1)
		if err != nil {
			return nil, errors.WithMessagef(err, "geometry %d", i)
		}
		if err := gc.Push(t); err != nil {
			return nil, errors.WithMessagef(err, "geometry %d", i)
		}
	}
	return gc, nil
}
