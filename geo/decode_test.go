/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geoconv/testutil"
)

func TestDecodePoint(t *testing.T) {
	g, err := DecodeGeometry(geojson.NewPointGeometry([]float64{100.0, 10.0}))
	require.NoError(t, err)
	p, ok := g.(*geom.Point)
	require.True(t, ok)
	require.Equal(t, geom.XY, p.Layout())
	require.Equal(t, -1, p.Layout().ZIndex())
	require.Equal(t, 100.0, p.X())
	require.Equal(t, 10.0, p.Y())

	g, err = DecodeGeometry(geojson.NewPointGeometry([]float64{61.34765625, 48.63290858589535, 12.7843}))
	require.NoError(t, err)
	p = g.(*geom.Point)
	require.Equal(t, geom.XYZ, p.Layout())
	require.Equal(t, 12.7843, p.Z())
}

func TestDecodePointExtraComponents(t *testing.T) {
	// The fourth value is not a measure.
	g, err := DecodeGeometry(geojson.NewPointGeometry([]float64{1, 2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, g.Layout())
	require.Equal(t, []float64{1, 2, 3}, g.FlatCoords())
}

func TestDecodeAbsentPoint(t *testing.T) {
	for _, pos := range [][]float64{nil, {}} {
		g, err := DecodeGeometry(geojson.NewPointGeometry(pos))
		require.NoError(t, err)
		p := g.(*geom.Point)
		require.True(t, p.Empty())
		require.Equal(t, DefaultLayout, p.Layout())
	}
}

func TestDecodeDimensionalityTooLow(t *testing.T) {
	_, err := DecodeGeometry(geojson.NewPointGeometry([]float64{1}))
	require.True(t, errors.Is(err, ErrDimensionalityTooLow))

	_, err = DecodeGeometry(geojson.NewLineStringGeometry([][]float64{{1, 2}, {3}}))
	require.True(t, errors.Is(err, ErrDimensionalityTooLow))
	require.Contains(t, err.Error(), "position 1")
}

func TestDecodeLineString(t *testing.T) {
	g, err := DecodeGeometry(geojson.NewLineStringGeometry([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.NoError(t, err)
	ls := g.(*geom.LineString)
	require.Equal(t, geom.XYZ, ls.Layout())
	require.Equal(t, 3, ls.NumCoords())
	require.Equal(t, geom.Coord{4, 5, 6}, ls.Coord(1))
}

func TestDecodeLineStringMissingVertex(t *testing.T) {
	_, err := DecodeGeometry(geojson.NewLineStringGeometry([][]float64{{1, 2}, nil}))
	require.True(t, errors.Is(err, ErrMissingCoordinates))
	require.Contains(t, err.Error(), "position 1")
}

func TestDecodeMixedDimensions(t *testing.T) {
	_, err := DecodeGeometry(geojson.NewLineStringGeometry([][]float64{{1, 2}, {3, 4, 5}}))
	var mismatch geom.ErrLayoutMismatch
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, geom.XYZ, mismatch.Got)
	require.Equal(t, geom.XY, mismatch.Want)
}

func TestDecodePolygonRings(t *testing.T) {
	exterior := [][]float64{{0, 0}, {10, 0}, {0, 10}}
	hole := [][]float64{{1, 1}, {2, 1}, {1, 2}}
	g, err := DecodeGeometry(geojson.NewPolygonGeometry([][][]float64{exterior, hole}))
	require.NoError(t, err)
	p := g.(*geom.Polygon)
	require.Equal(t, 2, p.NumLinearRings())
	require.Equal(t, []geom.Coord{{0, 0}, {10, 0}, {0, 10}}, p.LinearRing(0).Coords())
	require.Equal(t, []geom.Coord{{1, 1}, {2, 1}, {1, 2}}, p.LinearRing(1).Coords())
}

func TestDecodeMultiPoint(t *testing.T) {
	g, err := DecodeGeometry(geojson.NewMultiPointGeometry([]float64{1, 2}, nil, []float64{3, 4}))
	require.NoError(t, err)
	mp := g.(*geom.MultiPoint)
	require.Equal(t, 3, mp.NumPoints())
	require.Equal(t, geom.Coord{1, 2}, mp.Point(0).Coords())
	require.True(t, mp.Point(1).Empty())
	require.Equal(t, geom.Coord{3, 4}, mp.Point(2).Coords())
}

func TestDecodeMultiLineString(t *testing.T) {
	g, err := DecodeGeometry(geojson.NewMultiLineStringGeometry(
		[][]float64{{1, 2}, {3, 4}},
		[][]float64{{5, 6}, {7, 8}, {9, 10}},
	))
	require.NoError(t, err)
	mls := g.(*geom.MultiLineString)
	require.Equal(t, 2, mls.NumLineStrings())
	require.Equal(t, 2, mls.LineString(0).NumCoords())
	require.Equal(t, 3, mls.LineString(1).NumCoords())
	require.Equal(t, geom.Coord{9, 10}, mls.LineString(1).Coord(2))
}

func TestDecodeMultiPolygon(t *testing.T) {
	polys := [][][][]float64{
		{
			{{102.0, 2.0}, {103.0, 2.0}, {103.0, 3.0}, {102.0, 3.0}, {102.0, 2.0}},
			{{102.2, 2.2}, {102.8, 2.2}, {102.8, 2.8}, {102.2, 2.2}},
		},
		{
			{{100.0, 0.0}, {101.0, 0.0}, {101.0, 1.0}, {100.0, 1.0}, {100.0, 0.0}},
			{{100.2, 0.2}, {100.8, 0.2}, {100.8, 0.8}, {100.2, 0.8}, {100.2, 0.2}},
		},
	}
	g, err := DecodeGeometry(geojson.NewMultiPolygonGeometry(polys...))
	require.NoError(t, err)
	mp := g.(*geom.MultiPolygon)
	require.Equal(t, 2, mp.NumPolygons())
	for i, poly := range polys {
		p := mp.Polygon(i)
		require.Equal(t, 2, p.NumLinearRings())
		for j, ring := range poly {
			r := p.LinearRing(j)
			require.Equal(t, len(ring), r.NumCoords())
			for k, pos := range ring {
				require.Equal(t, geom.Coord(pos), r.Coord(k))
			}
		}
	}
}

func TestDecodeGeometryCollection(t *testing.T) {
	a := geojson.NewPointGeometry([]float64{1, 2, 3})
	b := geojson.NewLineStringGeometry([][]float64{{1, 2}, {3, 4}})
	g, err := DecodeGeometry(geojson.NewCollectionGeometry(a, b))
	require.NoError(t, err)
	gc := g.(*geom.GeometryCollection)
	require.Equal(t, 2, gc.NumGeoms())

	da, err := DecodeGeometry(a)
	require.NoError(t, err)
	db, err := DecodeGeometry(b)
	require.NoError(t, err)
	testutil.RequireGeomEqual(t, da, gc.Geom(0))
	testutil.RequireGeomEqual(t, db, gc.Geom(1))
}

func TestDecodeEmptySequences(t *testing.T) {
	tests := []struct {
		geometry *geojson.Geometry
		members  func(geom.T) int
	}{
		{geojson.NewLineStringGeometry([][]float64{}), func(g geom.T) int { return g.(*geom.LineString).NumCoords() }},
		{geojson.NewPolygonGeometry([][][]float64{}), func(g geom.T) int { return g.(*geom.Polygon).NumLinearRings() }},
		{geojson.NewMultiPointGeometry(), func(g geom.T) int { return g.(*geom.MultiPoint).NumPoints() }},
		{geojson.NewMultiLineStringGeometry(), func(g geom.T) int { return g.(*geom.MultiLineString).NumLineStrings() }},
		{geojson.NewMultiPolygonGeometry(), func(g geom.T) int { return g.(*geom.MultiPolygon).NumPolygons() }},
		{geojson.NewCollectionGeometry(), func(g geom.T) int { return g.(*geom.GeometryCollection).NumGeoms() }},
	}
	for _, tc := range tests {
		t.Run(string(tc.geometry.Type), func(t *testing.T) {
			g, err := DecodeGeometry(tc.geometry)
			require.NoError(t, err)
			require.Equal(t, 0, tc.members(g))
		})
	}
}

func TestDecodeUnsupportedShape(t *testing.T) {
	_, err := DecodeGeometry(&geojson.Geometry{Type: "Curve"})
	var unsupported *UnsupportedShapeError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, `"Curve"`, unsupported.Shape)

	// Nested failures abort the whole collection.
	_, err = DecodeGeometry(geojson.NewCollectionGeometry(
		geojson.NewPointGeometry([]float64{1, 2}),
		&geojson.Geometry{Type: "Feature"},
	))
	require.True(t, errors.As(err, &unsupported))
	require.Contains(t, err.Error(), "geometry 1")
}

func TestDecodeMissingGeometry(t *testing.T) {
	_, err := DecodeGeometry(nil)
	require.True(t, errors.Is(err, ErrMissingCoordinates))

	_, err = DecodeGeometry(geojson.NewCollectionGeometry(nil))
	require.True(t, errors.Is(err, ErrMissingCoordinates))
}

func TestDecodeNestingDepth(t *testing.T) {
	nested := geojson.NewCollectionGeometry(
		geojson.NewCollectionGeometry(geojson.NewPointGeometry([]float64{1, 2})))

	_, err := Converter{MaxDepth: 2}.DecodeGeometry(nested)
	require.True(t, errors.Is(err, ErrNestingTooDeep))

	g, err := Converter{MaxDepth: 3}.DecodeGeometry(nested)
	require.NoError(t, err)
	require.Equal(t, 1, g.(*geom.GeometryCollection).NumGeoms())

	_, err = Converter{}.DecodeGeometry(nested)
	require.NoError(t, err)
}

func TestDecodeFeature(t *testing.T) {
	f := geojson.NewFeature(geojson.NewPointGeometry([]float64{125.6, 10.1}))
	f.SetProperty("name", "Dinagat Islands")
	f.ID = 7
	g, err := DecodeFeature(f)
	require.NoError(t, err)
	require.Equal(t, []float64{125.6, 10.1}, g.FlatCoords())

	_, err = DecodeFeature(&geojson.Feature{Type: "Feature"})
	require.True(t, errors.Is(err, ErrMissingCoordinates))
	_, err = DecodeFeature(nil)
	require.True(t, errors.Is(err, ErrMissingCoordinates))
}

func TestDecodeFeatureCollection(t *testing.T) {
	a := geojson.NewPointGeometry([]float64{1, 2})
	b := geojson.NewPolygonGeometry([][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	fc := geojson.NewFeatureCollection().
		AddFeature(geojson.NewFeature(a)).
		AddFeature(geojson.NewFeature(b))

	gs, err := DecodeFeatureCollection(fc)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	for i, want := range []*geojson.Geometry{a, b} {
		g, err := DecodeGeometry(want)
		require.NoError(t, err)
		testutil.RequireGeomEqual(t, g, gs[i])
	}

	gs, err = DecodeFeatureCollection(geojson.NewFeatureCollection())
	require.NoError(t, err)
	require.NotNil(t, gs)
	require.Empty(t, gs)

	fc.AddFeature(&geojson.Feature{Type: "Feature"})
	_, err = DecodeFeatureCollection(fc)
	require.True(t, errors.Is(err, ErrMissingCoordinates))
	require.Contains(t, err.Error(), "feature 2")
}

func TestDecodeDoesNotAlias(t *testing.T) {
	pos := []float64{1, 2}
	g, err := DecodeGeometry(geojson.NewPointGeometry(pos))
	require.NoError(t, err)
	pos[0] = 99
	require.Equal(t, 1.0, g.(*geom.Point).X())
}

func TestSequenceLayouts(t *testing.T) {
	require.Equal(t, geom.NoLayout, pointsLayout(nil))
	require.Equal(t, geom.XYZ, pointsLayout([][]float64{{}, {1, 2, 3}, {1, 2}}))
	require.Equal(t, geom.XY, ringsLayout([][][]float64{{}, {{}, {1, 2}}}))
	require.Equal(t, geom.XYZ, polygonsLayout([][][][]float64{{{}}, {{{1, 2, 3, 4}}}}))
	require.Equal(t, geom.NoLayout, polygonsLayout([][][][]float64{{{{}}}}))
	require.Equal(t, DefaultLayout, orDefault(polygonsLayout(nil)))
}
