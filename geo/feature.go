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

// DecodeFeature converts the geometry of f. A feature without a geometry is an
// error, not an empty result.
func (c Converter) DecodeFeature(f *geojson.Feature) (geom.T, error) {
	if f == nil || f.Geometry == nil {
		return nil, errors.WithMessage(ErrMissingCoordinates, "feature has no geometry")
	}
	return c.DecodeGeometry(f.Geometry)
}

// DecodeFeatureCollection converts each feature of fc in order. The first
// failing feature aborts the whole conversion.
func (c Converter) DecodeFeatureCollection(fc *geojson.FeatureCollection) ([]geom.T, error) {
	if fc == nil {
		return []geom.T{}, nil
	}
	out := make([]geom.T, 0, len(fc.Features))
	for i, f := range fc.Features {
		g, err := c.DecodeFeature(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "feature %d", i)
		}
		out = append(out, g)
	}
	return out, nil
}

// EncodeFeature wraps the encoded geometry in a feature with an empty property
// map and no id.
func (c Converter) EncodeFeature(g geom.T) (*geojson.Feature, error) {
	gj, err := c.EncodeGeometry(g)
	if err != nil {
		return nil, err
	}
	return geojson.NewFeature(gj), nil
}

// EncodeFeatureCollection wraps g as the only feature of a collection.
func (c Converter) EncodeFeatureCollection(g geom.T) (*geojson.FeatureCollection, error) {
	f, err := c.EncodeFeature(g)
	if err != nil {
		return nil, err
	}
	return geojson.NewFeatureCollection().AddFeature(f), nil
}
