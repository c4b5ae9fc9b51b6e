/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingCoordinates is returned when a geometry, a feature's geometry or a
	// required vertex is absent.
	ErrMissingCoordinates = errors.New("geo: missing coordinates")
	// ErrDimensionalityTooLow is returned for a position with a single component.
	ErrDimensionalityTooLow = errors.New("geo: position needs at least two coordinates")
	// ErrNestingTooDeep is returned when geometry collections nest deeper than the
	// converter allows.
	ErrNestingTooDeep = errors.New("geo: geometry collections nested too deeply")
)

// UnsupportedShapeError is returned when a geometry is not one of the seven
// GeoJSON geometry kinds, in either direction.
type UnsupportedShapeError struct {
	Shape string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("geo: unsupported shape %s", e.Shape)
}

func unsupported(v interface{}) error {
	switch v := v.(type) {
	case string:
		return &UnsupportedShapeError{Shape: fmt.Sprintf("%q", v)}
	case nil:
		return &UnsupportedShapeError{Shape: "<nil>"}
	default:
		return &UnsupportedShapeError{Shape: fmt.Sprintf("%T", v)}
	}
}
