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

// Ring is one closed loop of an outline, in the winding order it was
// traced off the input cell set's shared boundary.
type Ring struct {
	Vertices []GeoCoord
}

// LinkedPolygon is the output of CellsToLinkedPolygon: a set of outer
// rings paired with whichever hole rings fall inside them.
type LinkedPolygon struct {
	Outer Ring
	Holes []Ring
}

// CellsToLinkedPolygon traces the outline of a set of same-resolution
// cells: every boundary edge shared between two cells of the set cancels
// out, and the remaining edges are stitched end-to-end into closed rings.
// Each ring with positive signed area is an outer ring; each negative-area
// ring is a hole, assigned to whichever outer ring contains it.
func CellsToLinkedPolygon(cells []H3Index) ([]LinkedPolygon, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	res := H3_GET_RESOLUTION(cells[0])
	for _, c := range cells {
		if H3_GET_RESOLUTION(c) != res {
			return nil, &ResolutionMismatchError{A: res, B: H3_GET_RESOLUTION(c)}
		}
	}

	graph := &VertexGraph{}
	initVertexGraph(graph, len(cells)*6, res)

	seen := make(map[H3Index]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return nil, &OutlinerError{Reason: ReasonDuplicateInput}
		}
		seen[c] = true
	}

	for _, c := range cells {
		var gb GeoBoundary
		H3ToGeoBoundary(c, &gb)

		for i := 0; i < gb.numVerts; i++ {
			from := gb.verts[i]
			to := gb.verts[(i+1)%gb.numVerts]

			if existing := findNodeForEdge(graph, &to, &from); existing != nil {
				// The adjacent cell already contributed this edge walked
				// in the opposite direction; it is interior, so both
				// halves cancel.
				removeVertexNode(graph, existing)
				continue
			}
			addVertexNode(graph, &from, &to)
		}
	}

	var rings []Ring
	for node := firstVertexNode(graph); node != nil; node = firstVertexNode(graph) {
		ring, err := traceRing(graph, node)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}

	return assembleLinkedPolygons(rings), nil
}

// traceRing follows a chain of vertex-adjacent edges starting at start
// until it loops back to its own origin, removing each consumed edge from
// the graph as it goes.
func traceRing(graph *VertexGraph, start *VertexNode) (Ring, error) {
	ring := Ring{Vertices: []GeoCoord{start.from}}

	origin := start.from
	cur := start
	for {
		next := cur.to
		removeVertexNode(graph, cur)

		if geoAlmostEqual(&next, &origin) {
			return ring, nil
		}

		ring.Vertices = append(ring.Vertices, next)

		cur = findNodeForVertex(graph, &next)
		if cur == nil {
			return Ring{}, &OutlinerError{Reason: "dangling edge: boundary does not close"}
		}
	}
}

// signedArea computes twice the signed planar area of a ring via the
// shoelace formula; positive for a counterclockwise ring, negative for
// clockwise.
func signedArea(ring Ring) float64 {
	var area float64
	n := len(ring.Vertices)
	for i := 0; i < n; i++ {
		a := ring.Vertices[i]
		b := ring.Vertices[(i+1)%n]
		area += a.lon*b.lat - b.lon*a.lat
	}
	return area
}

// assembleLinkedPolygons partitions rings into outer/hole pairs by signed
// area, then assigns each hole to the first outer ring that contains the
// hole's first vertex, or to the first outer ring when none does.
func assembleLinkedPolygons(rings []Ring) []LinkedPolygon {
	var outers []LinkedPolygon
	var holes []Ring

	for _, r := range rings {
		if signedArea(r) >= 0 {
			outers = append(outers, LinkedPolygon{Outer: r})
		} else {
			holes = append(holes, r)
		}
	}

	for _, h := range holes {
		owner := 0
		for i, o := range outers {
			pt := h.Vertices[0]
			if pointInRing(o.Outer.Vertices, &pt) {
				owner = i
				break
			}
		}
		if len(outers) > 0 {
			outers[owner].Holes = append(outers[owner].Holes, h)
		}
	}

	return outers
}
