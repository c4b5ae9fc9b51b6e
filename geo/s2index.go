/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"sort"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

const (
	// MinCellLevel is the smallest cell level (largest cell size) used by indexing
	MinCellLevel = 5 // Approx 250km x 380km
	// MaxCellLevel is the largest cell leve (smallest cell size) used by indexing
	MaxCellLevel = 16 // Approx 120m x 180m
	// MaxCells is the maximum number of cells to use when indexing regions.
	MaxCells = 18

	parentPrefix = "p/"
	coverPrefix  = "c/"
)

// IndexTokens returns the tokens a geospatial index would store for g: the
// parent cells prefixed with "p/" followed by the cover prefixed with "c/".
func IndexTokens(g geom.T) ([]string, error) {
	parents, cover, err := IndexCells(g)
	if err != nil {
		return nil, err
	}
	toks := make([]string, 0, len(parents)+len(cover))
	toks = append(toks, toTokens(parents, parentPrefix)...)
	toks = append(toks, toTokens(cover, coverPrefix)...)
	return toks, nil
}

// IndexCells returns two cellunions. The first is a list of parents, which are all the cells upto
// the min level that contain this geometry. The second is the cover, which are the smallest
// possible cells required to cover the region. Points, polygons and their multi variants are
// supported; polygon holes are not considered.
func IndexCells(g geom.T) (parents s2.CellUnion, cover s2.CellUnion, err error) {
	if IsNil(g) {
		return nil, nil, unsupported(nil)
	}
	if g.Stride() != 2 {
		return nil, nil, errors.Errorf("Covering only available for 2D co-ordinates.")
	}
	switch v := g.(type) {
	case *geom.Point:
		if v.Empty() {
			return nil, nil, errors.Errorf("Cannot index an empty point")
		}
		p, c := indexCellsForPoint(v.Coords(), MinCellLevel, MaxCellLevel)
		return p, c, nil
	case *geom.MultiPoint:
		for i := 0; i < v.NumPoints(); i++ {
			pt := v.Point(i)
			if pt.Empty() {
				continue
			}
			_, c := indexCellsForPoint(pt.Coords(), MaxCellLevel, MaxCellLevel)
			cover = append(cover, c...)
		}
	case *geom.Polygon:
		l, err := loopFromPolygon(v)
		if err != nil {
			return nil, nil, err
		}
		cover = coverLoop(l, MinCellLevel, MaxCellLevel, MaxCells)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumPolygons(); i++ {
			l, err := loopFromPolygon(v.Polygon(i))
			if err != nil {
				return nil, nil, errors.WithMessagef(err, "polygon %d", i)
			}
			cover = append(cover, coverLoop(l, MinCellLevel, MaxCellLevel, MaxCells)...)
		}
	default:
		return nil, nil, errors.Errorf("Cannot index geometry of type %T", v)
	}
	if len(cover) == 0 {
		return nil, nil, errors.Errorf("Cannot index an empty %T", g)
	}
	cover = uniqueCells(cover)
	return getParentCells(cover, MinCellLevel), cover, nil
}

func pointFromCoord(r geom.Coord) s2.Point {
	// GeoJSON coordinates are ordered [long, lat]
	// and every decoded geometry follows that order.
	ll := s2.LatLngFromDegrees(r.Y(), r.X())
	return s2.PointFromLatLng(ll)
}

// loopFromPolygon converts a geom.Polygon to a s2.Loop. We use loops instead of s2.Polygon as the
// s2.Polygon implemention is incomplete.
func loopFromPolygon(p *geom.Polygon) (*s2.Loop, error) {
	// Only the outer ring is used, holes are skipped.
	if p.NumLinearRings() == 0 {
		return nil, errors.Errorf("Can't convert polygon without rings")
	}
	r := p.LinearRing(0)
	n := r.NumCoords()
	if n < 4 {
		return nil, errors.Errorf("Can't convert ring with less than 4 pts")
	}
	// S2 specifies that the orientation of the polygons should be CCW. However there is no
	// restriction on the orientation in WKB (or geojson). To get the correct orientation we assume
	// that the polygons are always less than one hemisphere. If they are bigger, we flip the
	// orientation.
	reverse := isClockwise(r)
	l := loopFromRing(r, reverse)

	// Since our clockwise check was approximate, we check the cap and reverse if needed.
	if l.CapBound().Radius().Degrees() > 90 {
		l = loopFromRing(r, !reverse)
	}
	return l, nil
}

// Checks if a ring is clockwise or counter-clockwise. Note: This uses the algorithm for planar
// polygons and doesn't work for spherical polygons that contain the poles or the antimeridan
// discontinuity. We use this as a fast approximation instead.
func isClockwise(r *geom.LinearRing) bool {
	// The algorithm is described here https://en.wikipedia.org/wiki/Shoelace_formula
	var a float64
	n := r.NumCoords()
	for i := 0; i < n; i++ {
		p1 := r.Coord(i)
		p2 := r.Coord((i + 1) % n)
		a += (p2.X() - p1.X()) * (p1.Y() + p2.Y())
	}
	return a > 0
}

func loopFromRing(r *geom.LinearRing, reverse bool) *s2.Loop {
	// The last coordinate of a ring repeats the first. For s2 the points aren't allowed to
	// repeat and the loop is assumed to be closed, so we skip the last point.
	n := r.NumCoords()
	pts := make([]s2.Point, n-1)
	for i := 0; i < n-1; i++ {
		var c geom.Coord
		if reverse {
			c = r.Coord(n - 1 - i)
		} else {
			c = r.Coord(i)
		}
		pts[i] = pointFromCoord(c)
	}
	return s2.LoopFromPoints(pts)
}

// create cells for point from the minLevel to maxLevel both inclusive.
func indexCellsForPoint(c geom.Coord, minLevel, maxLevel int) (s2.CellUnion, s2.CellUnion) {
	ll := s2.LatLngFromDegrees(c.Y(), c.X())
	id := s2.CellIDFromLatLng(ll)
	cells := make([]s2.CellID, 0, maxLevel-minLevel+1)
	for l := minLevel; l <= maxLevel; l++ {
		cells = append(cells, id.Parent(l))
	}
	return cells, []s2.CellID{id.Parent(maxLevel)}
}

// getParentCells returns every ancestor of the cover down to minLevel, ordered by level and
// then by id.
func getParentCells(cu s2.CellUnion, minLevel int) s2.CellUnion {
	parents := make(map[s2.CellID]bool)
	for _, c := range cu {
		for l := c.Level(); l >= minLevel; l-- {
			parents[c.Parent(l)] = true
		}
	}
	cells := make([]s2.CellID, 0, len(parents))
	for k := range parents {
		cells = append(cells, k)
	}
	sortCells(cells)
	return cells
}

func uniqueCells(cu s2.CellUnion) s2.CellUnion {
	seen := make(map[s2.CellID]bool, len(cu))
	out := cu[:0]
	for _, c := range cu {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sortCells(out)
	return out
}

func sortCells(cells []s2.CellID) {
	sort.Slice(cells, func(i, j int) bool {
		if li, lj := cells[i].Level(), cells[j].Level(); li != lj {
			return li < lj
		}
		return cells[i] < cells[j]
	})
}

func coverLoop(l *s2.Loop, minLevel int, maxLevel int, maxCells int) s2.CellUnion {
	rc := &s2.RegionCoverer{
		MinLevel: minLevel,
		MaxLevel: maxLevel,
		LevelMod: 1,
		MaxCells: maxCells,
	}
	return rc.Covering(s2.PolygonFromLoops([]*s2.Loop{l}))
}

func toTokens(cu s2.CellUnion, prefix string) []string {
	toks := make([]string, len(cu))
	for i, c := range cu {
		toks[i] = prefix + c.ToToken()
	}
	return toks
}
