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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseCellCount(t *testing.T) {
	assert.Len(t, baseCellData, NUM_BASE_CELLS)
}

func TestBaseCellPentagonCount(t *testing.T) {
	count := 0
	polar := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			count++
		}
		if _isBaseCellPolarPentagon(bc) {
			polar++
		}
	}
	assert.Equal(t, NUM_PENTAGONS, count)
	assert.Equal(t, numPolarPentagons, polar)
}

func TestBaseCellPentagonOutOfRange(t *testing.T) {
	assert.False(t, _isBaseCellPentagon(-1))
	assert.False(t, _isBaseCellPentagon(NUM_BASE_CELLS))
}

func TestGetBaseCellNeighborCenterAndInvalid(t *testing.T) {
	assert.Equal(t, 5, _getBaseCellNeighbor(5, CENTER_DIGIT))
	assert.Equal(t, INVALID_BASE_CELL, _getBaseCellNeighbor(5, INVALID_DIGIT))
}

func TestGetBaseCellNeighborPentagonHasNoKNeighbor(t *testing.T) {
	for _, bc := range pentagonBaseCells {
		assert.Equal(t, INVALID_BASE_CELL, _getBaseCellNeighbor(bc, K_AXES_DIGIT))
	}
}

func TestGetBaseCellDirectionInvertsNeighbor(t *testing.T) {
	dirs := []Direction{K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT}
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		for _, dir := range dirs {
			neighbor := _getBaseCellNeighbor(bc, dir)
			if neighbor == INVALID_BASE_CELL {
				continue
			}
			require.NotEqual(t, dir, INVALID_DIGIT)
			got := _getBaseCellDirection(bc, neighbor)
			require.NotEqual(t, INVALID_DIGIT, got, "base cell %d neighbor %d", bc, neighbor)
			assert.Equal(t, neighbor, _getBaseCellNeighbor(bc, got), "base cell %d direction %d", bc, dir)
		}
	}
}

// TestBaseCellFaceCrossingsCarryRealRotations checks that at least some
// base-cell-to-base-cell steps actually cross an icosahedron face (per the
// real faceNeighbors adjacency table) and pick up a nonzero rotation,
// rather than every entry defaulting to the same unrotated identity.
func TestBaseCellFaceCrossingsCarryRealRotations(t *testing.T) {
	sawFaceCrossing := false
	sawNonZeroRotation := false
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		home := baseCellData[bc].homeFijk
		for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
			if baseCellData[bc].isPentagon && d == K_AXES_DIGIT {
				continue
			}
			fijk, rot := baseCellStep(home, d)
			if fijk.face != home.face {
				sawFaceCrossing = true
			}
			if rot != 0 {
				sawNonZeroRotation = true
			}
		}
	}
	assert.True(t, sawFaceCrossing, "expected at least one base-cell neighbor to cross an icosahedron face")
	assert.True(t, sawNonZeroRotation, "expected at least one face crossing to carry a nonzero rotation")
}

// TestBaseCellNeighborRotationsMatchStep checks that the table populated in
// init() agrees with calling baseCellStep directly, so localij.go consults
// the same rotations this test exercises.
func TestBaseCellNeighborRotationsMatchStep(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		home := baseCellData[bc].homeFijk
		for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
			if baseCellData[bc].isPentagon && d == K_AXES_DIGIT {
				assert.Equal(t, INVALID_BASE_CELL, baseCellNeighborCell[bc][d])
				continue
			}
			fijk, rot := baseCellStep(home, d)
			assert.Equal(t, _faceIjkToBaseCell(&fijk), baseCellNeighborCell[bc][d])
			assert.Equal(t, rot, baseCellNeighbor60CCWRots[bc][d])
		}
	}
}

func TestRotate60RoundTrip(t *testing.T) {
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		got := d
		for i := 0; i < 6; i++ {
			got = _rotate60ccw(got)
		}
		assert.Equal(t, d, got)
	}
}

func TestRotate60CWUndoesCCW(t *testing.T) {
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		assert.Equal(t, d, _rotate60cw(_rotate60ccw(d)))
	}
}

func TestRotate60LeavesSentinelsUnchanged(t *testing.T) {
	assert.Equal(t, CENTER_DIGIT, _rotate60ccw(CENTER_DIGIT))
	assert.Equal(t, INVALID_DIGIT, _rotate60ccw(INVALID_DIGIT))
	assert.Equal(t, CENTER_DIGIT, _rotate60cw(CENTER_DIGIT))
	assert.Equal(t, INVALID_DIGIT, _rotate60cw(INVALID_DIGIT))
}

func TestFaceIjkToBaseCellRoundTrip(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		fijk := baseCellData[bc].homeFijk
		assert.Equal(t, bc, _faceIjkToBaseCell(&fijk))
	}
}
