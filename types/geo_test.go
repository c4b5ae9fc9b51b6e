/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geoconv/testutil"
)

func TestParse(t *testing.T) {
	array := []string{
		`{"type":"Point","coordinates":[1,2]}`,
		`{"type":"MultiLineString","coordinates":[[[1,2,3],[4,5,6],[7,8,9],[1,2,3]]]}`,
		`{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,0]],[[1,1],[2,1],[2,2],[1,1]]]}`,
	}
	for _, v := range array {
		var g Geo
		require.NoError(t, g.UnmarshalText([]byte(v)), v)

		// Marshal it back to text
		got, err := g.MarshalText()
		require.NoError(t, err)
		testutil.CompareJSON(t, v, string(got))

		// Marshal and unmarshal to WKB
		wkb, err := g.MarshalBinary()
		require.NoError(t, err)
		var bg Geo
		require.NoError(t, bg.UnmarshalBinary(wkb))
		testutil.RequireGeomEqual(t, g.T, bg.T)

		// And through WKT
		s, err := g.MarshalWKT()
		require.NoError(t, err)
		wg, err := ParseWKT(s)
		require.NoError(t, err)
		testutil.RequireGeomEqual(t, g.T, wg.T)
	}
}

func TestParseGeoJsonErrors(t *testing.T) {
	array := []string{
		`{"type":"Curve","coordinates":[1,2]}`,
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[125.6,10.1]},"properties":{"name":"Dinagat Islands"}}`,
		`{}`,
		`thisisntjson`,
	}
	for _, v := range array {
		var g Geo
		require.Error(t, g.UnmarshalText([]byte(v)), v)
	}
}

func TestGeoJSONField(t *testing.T) {
	type place struct {
		Name string `json:"name"`
		Loc  Geo    `json:"loc"`
	}
	in := `{"name":"alice","loc":{"type":"Point","coordinates":[-122.2207184,37.72129059]}}`
	var p place
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	require.Equal(t, "alice", p.Name)
	require.Equal(t, []float64{-122.2207184, 37.72129059}, p.Loc.FlatCoords())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	testutil.CompareJSON(t, in, string(out))
}

func TestWKT(t *testing.T) {
	g, err := ParseWKT("POINT Z (1 2 3)")
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, g.Layout())

	s, err := g.MarshalWKT()
	require.NoError(t, err)
	require.Equal(t, s, g.String())

	_, err = ParseWKT("POINT (1")
	require.Error(t, err)

	require.Equal(t, "<geodata>", Geo{}.String())
	_, err = Geo{}.MarshalBinary()
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	var g Geo
	require.NoError(t, g.UnmarshalText([]byte(`{"type":"GeometryCollection","geometries":[
		{"type":"Point","coordinates":[1,2,3]},
		{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]],[[0.2,0.2],[0.8,0.2],[0.8,0.8],[0.2,0.2]]]]}
	]}`)))

	s := Summarize(g.T)
	require.Equal(t, "GeometryCollection", s.Kind)
	require.True(t, s.HasZ)
	require.Equal(t, 2, s.Members)
	require.Equal(t, 9, s.Coords)
	require.Len(t, s.Children, 2)
	require.Equal(t, Summary{Kind: "Point", HasZ: true, Coords: 1}, s.Children[0])
	require.Equal(t, Summary{Kind: "MultiPolygon", Coords: 8, Rings: 2, Members: 1}, s.Children[1])

	empty := Summarize(geom.NewLineString(geom.XY))
	require.Equal(t, Summary{Kind: "LineString", Empty: true}, empty)
}
