/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geo converts between GeoJSON values (github.com/paulmach/go.geojson)
// and typed geometries (github.com/twpayne/go-geom).
//
// Decoding dispatches on the GeoJSON type tag and builds the matching go-geom
// shape; a position with three or more components produces an XYZ layout.
// Encoding walks a geom.T and emits coordinates, dropping any measure (M)
// dimension. Conversions are pure: nothing is cached or shared between calls.
package geo

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/twpayne/go-geom"
)

// DefaultMaxDepth is the default bound on geometry collection nesting.
const DefaultMaxDepth = 64

// Converter holds conversion options. The zero value performs unbounded
// recursion and does not emit bounding boxes.
type Converter struct {
	// MaxDepth bounds how deeply geometry collections may nest. Zero means no
	// bound.
	MaxDepth int
	// BoundingBox makes the encoder fill the bbox member of every non-empty
	// geometry.
	BoundingBox bool
}

// Default is the converter used by the package level functions.
var Default = Converter{MaxDepth: DefaultMaxDepth}

// DecodeGeometry converts a GeoJSON geometry to a typed geometry.
func DecodeGeometry(g *geojson.Geometry) (geom.T, error) {
	return Default.DecodeGeometry(g)
}

// DecodeFeature converts the geometry of a GeoJSON feature. Properties and id
// are ignored.
func DecodeFeature(f *geojson.Feature) (geom.T, error) {
	return Default.DecodeFeature(f)
}

// DecodeFeatureCollection converts every feature of fc, in order.
func DecodeFeatureCollection(fc *geojson.FeatureCollection) ([]geom.T, error) {
	return Default.DecodeFeatureCollection(fc)
}

// EncodeGeometry converts a typed geometry to a GeoJSON geometry.
func EncodeGeometry(g geom.T) (*geojson.Geometry, error) {
	return Default.EncodeGeometry(g)
}

// EncodeFeature wraps the encoded geometry in a feature with no properties.
func EncodeFeature(g geom.T) (*geojson.Feature, error) {
	return Default.EncodeFeature(g)
}

// EncodeFeatureCollection wraps the encoded geometry in a collection holding
// exactly one feature.
func EncodeFeatureCollection(g geom.T) (*geojson.FeatureCollection, error) {
	return Default.EncodeFeatureCollection(g)
}

func (c Converter) checkDepth(depth int) error {
	if c.MaxDepth > 0 && depth > c.MaxDepth {
		return ErrNestingTooDeep
	}
	return nil
}
