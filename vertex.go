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

// H3_VERTEX_MODE is the H3Index mode bits for a topological vertex index,
// distinct from H3_HEXAGON_MODE and H3_UNIEDGE_MODE.
const H3_VERTEX_MODE = 4

// INVALID_VERTEX_NUM marks a direction that has no associated vertex
// number, as with a pentagon's missing K-axes direction.
const INVALID_VERTEX_NUM = -1

// hexDirectionToVertex maps each of a hexagon's 6 IJK+ directions to the
// vertex number (0..5) where that direction's edge begins, walking the
// same K -> IK -> I -> IJ -> J -> JK cycle the digit rotation functions in
// basecells.go use.
var hexDirectionToVertex = map[Direction]int{
	K_AXES_DIGIT:  3,
	IK_AXES_DIGIT: 4,
	I_AXES_DIGIT:  5,
	IJ_AXES_DIGIT: 0,
	J_AXES_DIGIT:  1,
	JK_AXES_DIGIT: 2,
}

// pentDirectionToVertex is the same mapping with the K-axes direction
// (and its vertex) removed, renumbered 0..4.
var pentDirectionToVertex = map[Direction]int{
	IK_AXES_DIGIT: 3,
	I_AXES_DIGIT:  4,
	IJ_AXES_DIGIT: 0,
	J_AXES_DIGIT:  1,
	JK_AXES_DIGIT: 2,
}

// vertexNumForDirection returns the vertex number where the edge leaving
// origin in the given direction begins, or INVALID_VERTEX_NUM if origin
// is a pentagon and direction is its missing K-axes neighbor.
func vertexNumForDirection(origin H3Index, direction int) int {
	dir := Direction(direction)
	if H3IsPentagon(origin) {
		v, ok := pentDirectionToVertex[dir]
		if !ok {
			return INVALID_VERTEX_NUM
		}
		return v
	}
	v, ok := hexDirectionToVertex[dir]
	if !ok {
		return INVALID_VERTEX_NUM
	}
	return v
}

// CellToVertex packs a topological vertex index identifying the
// vertexNum-th corner of owner's boundary.
func CellToVertex(owner H3Index, vertexNum int) (H3Index, error) {
	maxVert := NUM_HEX_VERTS
	if H3IsPentagon(owner) {
		maxVert = NUM_PENT_VERTS
	}
	if vertexNum < 0 || vertexNum >= maxVert {
		return H3_NULL, &DomainError{Field: "vertexNum", Value: float64(vertexNum)}
	}

	v := owner
	H3_SET_MODE(&v, H3_VERTEX_MODE)
	H3_SET_RESERVED_BITS(&v, vertexNum)
	return v, nil
}

// CellToVertexes returns every topological vertex of owner's boundary, in
// the same winding order as H3ToGeoBoundary.
func CellToVertexes(owner H3Index) []H3Index {
	n := NUM_HEX_VERTS
	if H3IsPentagon(owner) {
		n = NUM_PENT_VERTS
	}
	out := make([]H3Index, n)
	for i := 0; i < n; i++ {
		out[i], _ = CellToVertex(owner, i)
	}
	return out
}

// VertexOwner returns the cell a vertex index was minted from.
func VertexOwner(vertex H3Index) H3Index {
	owner := vertex
	H3_SET_MODE(&owner, H3_HEXAGON_MODE)
	H3_SET_RESERVED_BITS(&owner, 0)
	return owner
}

// VertexIsValid reports whether vertex carries the vertex mode and a
// vertex number in range for its owning cell.
func VertexIsValid(vertex H3Index) bool {
	if H3_GET_MODE(vertex) != H3_VERTEX_MODE {
		return false
	}
	owner := VertexOwner(vertex)
	if !H3IsValid(owner) {
		return false
	}
	vertexNum := H3_GET_RESERVED_BITS(vertex)
	maxVert := NUM_HEX_VERTS
	if H3IsPentagon(owner) {
		maxVert = NUM_PENT_VERTS
	}
	return vertexNum >= 0 && vertexNum < maxVert
}

// VertexToLatLng returns the geographic coordinates of a topological
// vertex index.
func VertexToLatLng(vertex H3Index) (GeoCoord, error) {
	if !VertexIsValid(vertex) {
		return GeoCoord{}, &InvalidGeometryError{Reason: "invalid vertex index"}
	}

	vertexNum := H3_GET_RESERVED_BITS(vertex)
	owner := VertexOwner(vertex)

	var fijk FaceIJK
	_h3ToFaceIjk(owner, &fijk)
	res := H3_GET_RESOLUTION(owner)

	var gb GeoBoundary
	if H3IsPentagon(owner) {
		_faceIjkPentToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	}

	if gb.numVerts == 0 {
		return GeoCoord{}, &InvalidGeometryError{Reason: "vertex boundary lookup failed"}
	}
	return gb.verts[0], nil
}
