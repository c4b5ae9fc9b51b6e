/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package testutil

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/twpayne/go-geom"
)

// Shape is a comparable view of a geom.T. Two geometries with equal shapes
// have the same kind, layout, member order and coordinate values.
type Shape struct {
	Kind     string
	Layout   geom.Layout
	Coords   interface{}
	Children []Shape
}

// ShapeOf returns the comparable view of g.
func ShapeOf(g geom.T) Shape {
	switch v := g.(type) {
	case *geom.Point:
		s := Shape{Kind: "Point", Layout: v.Layout()}
		if !v.Empty() {
			s.Coords = []float64(v.Coords())
		}
		return s
	case *geom.LineString:
		return Shape{Kind: "LineString", Layout: v.Layout(), Coords: v.Coords()}
	case *geom.Polygon:
		return Shape{Kind: "Polygon", Layout: v.Layout(), Coords: v.Coords()}
	case *geom.MultiPoint:
		s := Shape{Kind: "MultiPoint", Layout: v.Layout()}
		for i := 0; i < v.NumPoints(); i++ {
			s.Children = append(s.Children, ShapeOf(v.Point(i)))
		}
		return s
	case *geom.MultiLineString:
		return Shape{Kind: "MultiLineString", Layout: v.Layout(), Coords: v.Coords()}
	case *geom.MultiPolygon:
		return Shape{Kind: "MultiPolygon", Layout: v.Layout(), Coords: v.Coords()}
	case *geom.GeometryCollection:
		s := Shape{Kind: "GeometryCollection"}
		for _, child := range v.Geoms() {
			s.Children = append(s.Children, ShapeOf(child))
		}
		return s
	}
	return Shape{Kind: fmt.Sprintf("%T", g)}
}

// DiffGeom returns a human readable difference between want and got, or the
// empty string when they are structurally equal.
func DiffGeom(want, got geom.T) string {
	return cmp.Diff(ShapeOf(want), ShapeOf(got), cmpopts.EquateEmpty())
}

// RequireGeomEqual fails the test unless want and got are structurally equal.
func RequireGeomEqual(t testing.TB, want, got geom.T) {
	t.Helper()
	if diff := DiffGeom(want, got); diff != "" {
		t.Fatalf("geometries differ (-want +got):\n%s", diff)
	}
}

// RandomGeometry returns a random geometry without measures. Every sequence
// holds at least one position, so the layout survives a GeoJSON round trip.
// Collections nest at most depth levels.
func RandomGeometry(r *rand.Rand, depth int) geom.T {
	kinds := 6
	if depth > 1 {
		kinds = 7
	}
	l := geom.XY
	if r.Intn(2) == 1 {
		l = geom.XYZ
	}

	switch r.Intn(kinds) {
	case 0:
		return geom.NewPoint(l).MustSetCoords(randomCoord(r, l))
	case 1:
		return geom.NewLineString(l).MustSetCoords(randomCoords(r, l))
	case 2:
		return geom.NewPolygon(l).MustSetCoords(randomRings(r, l))
	case 3:
		return geom.NewMultiPoint(l).MustSetCoords(randomCoords(r, l))
	case 4:
		return geom.NewMultiLineString(l).MustSetCoords(randomRings(r, l))
	case 5:
		n := 1 + r.Intn(3)
		polys := make([][][]geom.Coord, n)
		for i := range polys {
			polys[i] = randomRings(r, l)
		}
		return geom.NewMultiPolygon(l).MustSetCoords(polys)
	default:
		gc := geom.NewGeometryCollection()
		for i := r.Intn(4); i >= 0; i-- {
			if err := gc.Push(RandomGeometry(r, depth-1)); err != nil {
				panic(err)
			}
		}
		return gc
	}
}

func randomCoord(r *rand.Rand, l geom.Layout) geom.Coord {
	c := geom.Coord{r.Float64()*360 - 180, r.Float64()*180 - 90}
	if l == geom.XYZ {
		c = append(c, r.Float64()*9000-500)
	}
	return c
}

func randomCoords(r *rand.Rand, l geom.Layout) []geom.Coord {
	coords := make([]geom.Coord, 1+r.Intn(6))
	for i := range coords {
		coords[i] = randomCoord(r, l)
	}
	return coords
}

func randomRings(r *rand.Rand, l geom.Layout) [][]geom.Coord {
	rings := make([][]geom.Coord, 1+r.Intn(3))
	for i := range rings {
		rings[i] = randomCoords(r, l)
	}
	return rings
}
