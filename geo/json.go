/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"encoding/json"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// Wrap selects the GeoJSON object an encoded geometry is emitted as.
type Wrap int

const (
	AsGeometry Wrap = iota
	AsFeature
	AsFeatureCollection
)

func (w Wrap) String() string {
	switch w {
	case AsGeometry:
		return "geometry"
	case AsFeature:
		return "feature"
	case AsFeatureCollection:
		return "collection"
	}
	return "unknown"
}

// ParseWrap parses the names returned by Wrap.String.
func ParseWrap(s string) (Wrap, error) {
	switch strings.ToLower(s) {
	case "geometry", "":
		return AsGeometry, nil
	case "feature":
		return AsFeature, nil
	case "collection", "featurecollection":
		return AsFeatureCollection, nil
	}
	return AsGeometry, errors.Errorf("geo: unknown wrap %q", s)
}

// UnmarshalGeometry parses a GeoJSON geometry and decodes it.
func (c Converter) UnmarshalGeometry(data []byte) (geom.T, error) {
	if err := missingMember(data); err != nil {
		return nil, err
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "geo: parsing geometry")
	}
	return c.DecodeGeometry(g)
}

// UnmarshalFeature parses a GeoJSON feature and decodes its geometry.
func (c Converter) UnmarshalFeature(data []byte) (geom.T, error) {
	if err := missingMember(data); err != nil {
		return nil, err
	}
	f, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, errors.Wrap(err, "geo: parsing feature")
	}
	return c.DecodeFeature(f)
}

// UnmarshalFeatureCollection parses a GeoJSON feature collection and decodes
// every feature.
func (c Converter) UnmarshalFeatureCollection(data []byte) ([]geom.T, error) {
	if err := missingMember(data); err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "geo: parsing feature collection")
	}
	return c.DecodeFeatureCollection(fc)
}

// members holds the parts of a GeoJSON object that must be present before
// go.geojson sees it.
type members struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometries  json.RawMessage `json:"geometries"`
	Geometry    json.RawMessage `json:"geometry"`
	Features    json.RawMessage `json:"features"`
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// missingMember returns ErrMissingCoordinates, with the path to the offending
// object, when a geometry lacks its coordinates or geometries member. Malformed
// JSON and unknown types are left for the parser and decoder to report.
func missingMember(data []byte) error {
	var m members
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	switch m.Type {
	case "FeatureCollection":
		return eachMember(m.Features, "feature %d")
	case "Feature":
		if isNull(m.Geometry) {
			// Decoded as a feature without geometry.
			return nil
		}
		return missingMember(m.Geometry)
	case string(geojson.GeometryCollection):
		if isNull(m.Geometries) {
			return errors.WithMessage(ErrMissingCoordinates, "GeometryCollection has no geometries")
		}
		return eachMember(m.Geometries, "geometry %d")
	case string(geojson.GeometryPoint), string(geojson.GeometryLineString),
		string(geojson.GeometryPolygon), string(geojson.GeometryMultiPoint),
		string(geojson.GeometryMultiLineString), string(geojson.GeometryMultiPolygon):
		if isNull(m.Coordinates) {
			return errors.WithMessagef(ErrMissingCoordinates, "%s has no coordinates", m.Type)
		}
	}
	return nil
}

func eachMember(raw json.RawMessage, context string) error {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	for i, item := range items {
		if isNull(item) {
			return errors.WithMessagef(ErrMissingCoordinates, context, i)
		}
		if err := missingMember(item); err != nil {
			return errors.WithMessagef(err, context, i)
		}
	}
	return nil
}

// Unmarshal decodes any GeoJSON object. A geometry or a feature yields one
// result, a feature collection one result per feature.
func (c Converter) Unmarshal(data []byte) ([]geom.T, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "geo: parsing GeoJSON")
	}

	switch head.Type {
	case "":
		return nil, errors.Errorf("geo: GeoJSON object has no type")
	case "FeatureCollection":
		return c.UnmarshalFeatureCollection(data)
	case "Feature":
		g, err := c.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		return []geom.T{g}, nil
	default:
		g, err := c.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		return []geom.T{g}, nil
	}
}

// Marshal encodes g and wraps it as requested.
func (c Converter) Marshal(g geom.T, as Wrap) ([]byte, error) {
	var v interface{}
	var err error
	switch as {
	case AsGeometry:
		v, err = c.EncodeGeometry(g)
	case AsFeature:
		v, err = c.EncodeFeature(g)
	case AsFeatureCollection:
		v, err = c.EncodeFeatureCollection(g)
	default:
		return nil, errors.Errorf("geo: unknown wrap %d", int(as))
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalGeometry parses and decodes a GeoJSON geometry with Default.
func UnmarshalGeometry(data []byte) (geom.T, error) {
	return Default.UnmarshalGeometry(data)
}

// Unmarshal decodes any GeoJSON object with Default.
func Unmarshal(data []byte) ([]geom.T, error) {
	return Default.Unmarshal(data)
}

// Marshal encodes g with Default.
func Marshal(g geom.T, as Wrap) ([]byte, error) {
	return Default.Marshal(g, as)
}
