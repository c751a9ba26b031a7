// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3go

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// ContainmentMode selects how a cell's relationship to the polygon decides
// whether Polyfill keeps it.
type ContainmentMode int

const (
	// ContainmentCentroid keeps a cell if its center point falls inside
	// the polygon.
	ContainmentCentroid ContainmentMode = iota
	// ContainmentIntersectsBoundary keeps a cell if any part of its
	// boundary is inside the polygon or crosses the polygon's boundary.
	ContainmentIntersectsBoundary
	// ContainmentContainsBoundary keeps a cell only if its entire
	// boundary lies inside the polygon.
	ContainmentContainsBoundary
)

// Geofence is a simple polygon in geographic coordinates: one outer ring
// and zero or more hole rings, each a closed loop given without a
// repeated first/last vertex.
type Geofence struct {
	Outer []GeoCoord
	Holes [][]GeoCoord
}

// polyEdge is one ring edge, indexed by an rtreego.Tree for pruning
// point-in-polygon and boundary-intersection queries.
type polyEdge struct {
	a, b GeoCoord
}

// Bounds implements rtreego.Spatial.
func (e *polyEdge) Bounds() *rtreego.Rect {
	const pad = 1e-9
	minLon := math.Min(e.a.lon, e.b.lon) - pad
	maxLon := math.Max(e.a.lon, e.b.lon) + pad
	minLat := math.Min(e.a.lat, e.b.lat) - pad
	maxLat := math.Max(e.a.lat, e.b.lat) + pad
	rect, _ := rtreego.NewRect(rtreego.Point{minLon, minLat}, []float64{maxLon - minLon, maxLat - minLat})
	return rect
}

func ringEdges(ring []GeoCoord) []*polyEdge {
	edges := make([]*polyEdge, 0, len(ring))
	for i := range ring {
		edges = append(edges, &polyEdge{a: ring[i], b: ring[(i+1)%len(ring)]})
	}
	return edges
}

// buildEdgeIndex indexes every ring edge of a geofence (outer plus holes)
// so Polyfill can prune candidate edges instead of scanning every ring
// edge for every cell boundary segment it tests.
func buildEdgeIndex(g *Geofence) *rtreego.Tree {
	rt := rtreego.NewTree(2, 25, 50)
	for _, e := range ringEdges(g.Outer) {
		rt.Insert(e)
	}
	for _, hole := range g.Holes {
		for _, e := range ringEdges(hole) {
			rt.Insert(e)
		}
	}
	return rt
}

// geofenceBBox computes the bounding box of a geofence's outer ring. Callers
// must have already rejected transmeridian geofences, so a plain min/max
// scan is sufficient (no antimeridian wraparound to account for).
func geofenceBBox(g *Geofence) BBox {
	bbox := BBox{north: -M_PI_2, south: M_PI_2, east: -M_PI, west: M_PI}
	for _, v := range g.Outer {
		if v.lat > bbox.north {
			bbox.north = v.lat
		}
		if v.lat < bbox.south {
			bbox.south = v.lat
		}
		if v.lon > bbox.east {
			bbox.east = v.lon
		}
		if v.lon < bbox.west {
			bbox.west = v.lon
		}
	}
	return bbox
}

func isGeofenceTransmeridian(g *Geofence) bool {
	for i := range g.Outer {
		a := g.Outer[i]
		b := g.Outer[(i+1)%len(g.Outer)]
		if math.Abs(a.lon-b.lon) > M_PI {
			return true
		}
	}
	return false
}

func ringCentroid(ring []GeoCoord) GeoCoord {
	var lat, lon float64
	for _, v := range ring {
		lat += v.lat
		lon += v.lon
	}
	n := float64(len(ring))
	return GeoCoord{lat: lat / n, lon: lon / n}
}

// pointInRing is a direct even-odd ray cast; ring sizes in a geofence are
// small enough that this needs no spatial index of its own.
func pointInRing(ring []GeoCoord, pt *GeoCoord) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.lat > pt.lat) != (b.lat > pt.lat) {
			x := a.lon + (pt.lat-a.lat)/(b.lat-a.lat)*(b.lon-a.lon)
			if pt.lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

func pointInGeofence(g *Geofence, pt *GeoCoord) bool {
	if !pointInRing(g.Outer, pt) {
		return false
	}
	for _, hole := range g.Holes {
		if pointInRing(hole, pt) {
			return false
		}
	}
	return true
}

// segmentsIntersect reports whether segment p1p2 properly or improperly
// crosses segment p3p4, via orientation tests.
func segmentsIntersect(p1, p2, p3, p4 GeoCoord) bool {
	orient := func(a, b, c GeoCoord) float64 {
		return (b.lon-a.lon)*(c.lat-a.lat) - (b.lat-a.lat)*(c.lon-a.lon)
	}
	onSegment := func(a, b, c GeoCoord) bool {
		return math.Min(a.lon, b.lon) <= c.lon && c.lon <= math.Max(a.lon, b.lon) &&
			math.Min(a.lat, b.lat) <= c.lat && c.lat <= math.Max(a.lat, b.lat)
	}

	o1 := orient(p1, p2, p3)
	o2 := orient(p1, p2, p4)
	o3 := orient(p3, p4, p1)
	o4 := orient(p3, p4, p2)

	if ((o1 > 0) != (o2 > 0)) && ((o3 > 0) != (o4 > 0)) {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if o2 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	if o3 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if o4 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	return false
}

func boundaryIntersectsGeofence(gb *GeoBoundary, rt *rtreego.Tree) bool {
	for i := 0; i < gb.numVerts; i++ {
		a := gb.verts[i]
		b := gb.verts[(i+1)%gb.numVerts]
		edge := polyEdge{a: a, b: b}
		for _, cand := range rt.SearchIntersect(edge.Bounds()) {
			pe := cand.(*polyEdge)
			if segmentsIntersect(a, b, pe.a, pe.b) {
				return true
			}
		}
	}
	return false
}

func cellSatisfiesContainment(cell H3Index, g *Geofence, rt *rtreego.Tree, mode ContainmentMode) bool {
	switch mode {
	case ContainmentCentroid:
		var center GeoCoord
		H3ToGeo(cell, &center)
		return pointInGeofence(g, &center)

	case ContainmentIntersectsBoundary:
		var center GeoCoord
		H3ToGeo(cell, &center)
		if pointInGeofence(g, &center) {
			return true
		}
		var gb GeoBoundary
		H3ToGeoBoundary(cell, &gb)
		for i := 0; i < gb.numVerts; i++ {
			if pointInGeofence(g, &gb.verts[i]) {
				return true
			}
		}
		return boundaryIntersectsGeofence(&gb, rt)

	case ContainmentContainsBoundary:
		var gb GeoBoundary
		H3ToGeoBoundary(cell, &gb)
		for i := 0; i < gb.numVerts; i++ {
			if !pointInGeofence(g, &gb.verts[i]) {
				return false
			}
		}
		return !boundaryIntersectsGeofence(&gb, rt)
	}
	return false
}

func seedCell(g *Geofence, res int) (H3Index, error) {
	center := ringCentroid(g.Outer)
	if pointInGeofence(g, &center) {
		return GeoToH3(&center, res), nil
	}

	for _, v := range g.Outer {
		mid := GeoCoord{lat: (v.lat + center.lat) / 2, lon: (v.lon + center.lon) / 2}
		if pointInGeofence(g, &mid) {
			return GeoToH3(&mid, res), nil
		}
	}

	return H3_NULL, &InvalidGeometryError{Reason: "could not find a seed point inside the polygon"}
}

// Polyfill returns every cell at resolution res that satisfies mode's
// containment test against the geofence, found by flood-filling outward
// from a seed cell known to be inside the polygon.
func Polyfill(g *Geofence, res int, mode ContainmentMode) ([]H3Index, error) {
	if len(g.Outer) < 3 {
		return nil, &InvalidGeometryError{Reason: "outer ring needs at least 3 vertices"}
	}
	for _, hole := range g.Holes {
		if len(hole) < 3 {
			return nil, &InvalidGeometryError{Reason: "hole ring needs at least 3 vertices"}
		}
	}
	if isGeofenceTransmeridian(g) {
		return nil, &InvalidGeometryError{Reason: "polygon crosses the antimeridian; pre-split it into contiguous rings"}
	}
	if _, err := NewResolution(res); err != nil {
		return nil, err
	}

	rt := buildEdgeIndex(g)

	seed, err := seedCell(g, res)
	if err != nil {
		return nil, err
	}

	bbox := geofenceBBox(g)
	estimate := bboxHexEstimate(&bbox, res)

	visited := make(map[H3Index]bool, estimate)
	visited[seed] = true
	queue := make([]H3Index, 0, estimate)
	queue = append(queue, seed)
	result := make([]H3Index, 0, estimate)

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		if !cellSatisfiesContainment(cell, g, rt, mode) {
			continue
		}
		result = append(result, cell)

		for _, n := range KRing(cell, 1) {
			if n == H3_NULL || visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return result, nil
}
