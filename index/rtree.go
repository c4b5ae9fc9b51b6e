/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package index keeps decoded geometries in a planar bounding box index.
package index

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/tidwall/rtree"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geoconv/geo"
)

// RTree maps the bounds of geometries to caller supplied ids.
type RTree struct {
	tree rtree.RTreeG[int]
}

// NewRTree returns an empty index.
func NewRTree() *RTree {
	return &RTree{}
}

// Insert adds g under id. Empty geometries have no bounds and are skipped, in
// which case Insert returns false.
func (r *RTree) Insert(id int, g geom.T) (bool, error) {
	if geo.IsNil(g) {
		return false, errors.Errorf("index: nil geometry for id %d", id)
	}
	b := g.Bounds()
	if b.IsEmpty() || g.Empty() {
		return false, nil
	}
	r.tree.Insert(
		[2]float64{b.Min(0), b.Min(1)},
		[2]float64{b.Max(0), b.Max(1)},
		id,
	)
	return true, nil
}

// Search returns the ids whose bounds intersect the query box, ascending.
func (r *RTree) Search(minX, minY, maxX, maxY float64) []int {
	ids := make([]int, 0)
	r.tree.Search(
		[2]float64{minX, minY},
		[2]float64{maxX, maxY},
		func(_, _ [2]float64, id int) bool {
			ids = append(ids, id)
			return true
		},
	)
	sort.Ints(ids)
	return ids
}

// Len returns the number of indexed geometries.
func (r *RTree) Len() int {
	return r.tree.Len()
}

// ParseBox reads a "minx,miny,maxx,maxy" list as given on the command line.
func ParseBox(v []float64) ([4]float64, error) {
	var box [4]float64
	if len(v) != 4 {
		return box, errors.Errorf("index: bounding box needs 4 values, got %d", len(v))
	}
	copy(box[:], v)
	if box[0] > box[2] || box[1] > box[3] {
		return box, errors.Errorf("index: inverted bounding box %v", v)
	}
	return box, nil
}
