/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// Summary describes the shape of a typed geometry without its coordinates.
type Summary struct {
	Kind     string    `json:"kind" yaml:"kind"`
	HasZ     bool      `json:"hasZ" yaml:"hasZ"`
	HasM     bool      `json:"hasM,omitempty" yaml:"hasM,omitempty"`
	Empty    bool      `json:"empty,omitempty" yaml:"empty,omitempty"`
	Coords   int       `json:"coords" yaml:"coords"`
	Rings    int       `json:"rings,omitempty" yaml:"rings,omitempty"`
	Members  int       `json:"members,omitempty" yaml:"members,omitempty"`
	Children []Summary `json:"children,omitempty" yaml:"children,omitempty"`
}

// Summarize returns the summary of g.
func Summarize(g geom.T) Summary {
	gc, ok := g.(*geom.GeometryCollection)
	if ok {
		s := Summary{Kind: "GeometryCollection", Members: gc.NumGeoms(), Empty: gc.NumGeoms() == 0}
		for _, child := range gc.Geoms() {
			c := Summarize(child)
			s.Coords += c.Coords
			s.HasZ = s.HasZ || c.HasZ
			s.HasM = s.HasM || c.HasM
			s.Children = append(s.Children, c)
		}
		return s
	}

	l := g.Layout()
	s := Summary{
		HasZ: l.ZIndex() != -1,
		HasM: l.MIndex() != -1,
	}
	if stride := l.Stride(); stride > 0 {
		s.Coords = len(g.FlatCoords()) / stride
	}
	s.Empty = s.Coords == 0

	switch v := g.(type) {
	case *geom.Point:
		s.Kind = "Point"
	case *geom.LineString:
		s.Kind = "LineString"
	case *geom.Polygon:
		s.Kind = "Polygon"
		s.Rings = v.NumLinearRings()
	case *geom.MultiPoint:
		s.Kind = "MultiPoint"
		s.Members = v.NumPoints()
	case *geom.MultiLineString:
		s.Kind = "MultiLineString"
		s.Members = v.NumLineStrings()
	case *geom.MultiPolygon:
		s.Kind = "MultiPolygon"
		s.Members = v.NumPolygons()
		for i := 0; i < v.NumPolygons(); i++ {
			s.Rings += v.Polygon(i).NumLinearRings()
		}
	default:
		s.Kind = fmt.Sprintf("%T", g)
	}
	return s
}
