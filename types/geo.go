/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/hypermodeinc/geoconv/geo"
)

// Geo represents geo-spatial data.
type Geo struct {
	geom.T
}

// MarshalText marshals to a GeoJSON geometry.
func (v Geo) MarshalText() ([]byte, error) {
	return geo.Marshal(v.T, geo.AsGeometry)
}

// MarshalJSON marshals to json
func (v Geo) MarshalJSON() ([]byte, error) {
	// this same as MarshalText
	return v.MarshalText()
}

// UnmarshalText parses the data from a GeoJSON geometry.
func (v *Geo) UnmarshalText(text []byte) error {
	g, err := geo.UnmarshalGeometry(text)
	if err != nil {
		return err
	}
	v.T = g
	return nil
}

// UnmarshalJSON parses a GeoJSON geometry.
func (v *Geo) UnmarshalJSON(data []byte) error {
	return v.UnmarshalText(data)
}

// MarshalBinary marshals to little endian WKB.
func (v Geo) MarshalBinary() ([]byte, error) {
	if v.T == nil {
		return nil, errors.New("types: no geometry to marshal")
	}
	return wkb.Marshal(v.T, binary.LittleEndian)
}

// UnmarshalBinary unmarshals the data from WKB
func (v *Geo) UnmarshalBinary(data []byte) error {
	w, err := wkb.Unmarshal(data)
	if err != nil {
		return errors.Wrap(err, "types: parsing WKB")
	}
	v.T = w
	return nil
}

// MarshalWKT returns the well known text form of v.
func (v Geo) MarshalWKT() (string, error) {
	if v.T == nil {
		return "", errors.New("types: no geometry to marshal")
	}
	return wkt.Marshal(v.T)
}

// ParseWKT parses a well known text geometry.
func ParseWKT(s string) (Geo, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Geo{}, errors.Wrapf(err, "types: parsing WKT %q", s)
	}
	return Geo{g}, nil
}

func (v Geo) String() string {
	s, err := v.MarshalWKT()
	if err != nil {
		return "<geodata>"
	}
	return s
}
