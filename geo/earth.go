/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the radius of the earth in meters (in a spherical earth model).
const EarthRadiusMeters = 1000 * 6371

// Length is a distance along the earth's surface in meters.
type Length float64

// EarthDistance converts a central angle to a surface distance.
func EarthDistance(angle s1.Angle) Length {
	return Length(angle.Radians() * EarthRadiusMeters)
}

// CoverRadius returns the radius of the smallest cap holding every cell of cu.
func CoverRadius(cu s2.CellUnion) Length {
	if len(cu) == 0 {
		return 0
	}
	return EarthDistance(cu.CapBound().Radius())
}

// String renders l with an SI prefix, e.g. "1.5 km".
func (l Length) String() string {
	return humanize.SIWithDigits(float64(l), 3, "m")
}

// Area is a surface area on earth in square meters.
type Area float64

// EarthArea scales an area on the unit sphere to square meters on earth.
func EarthArea(a float64) Area {
	return Area(a * EarthRadiusMeters * EarthRadiusMeters)
}

// CellArea returns the area on earth covered by an index cell.
func CellArea(id s2.CellID) Area {
	return EarthArea(s2.CellFromCellID(id).ExactArea())
}

const (
	km2 = 1000 * 1000
	cm2 = 100 * 100
)

func (a Area) String() string {
	if a >= km2 {
		return fmt.Sprintf("%.3f km^2", float64(a)/km2)
	}
	if a < 1 {
		return fmt.Sprintf("%.3f cm^2", float64(a)*cm2)
	}
	return fmt.Sprintf("%.3f m^2", float64(a))
}
