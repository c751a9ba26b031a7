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

func TestCellsToLinkedPolygonEmptyInput(t *testing.T) {
	polys, err := CellsToLinkedPolygon(nil)
	require.NoError(t, err)
	assert.Nil(t, polys)
}

func TestCellsToLinkedPolygonSingleCell(t *testing.T) {
	cell := sfOrigin(t)
	require.False(t, H3IsPentagon(cell))

	polys, err := CellsToLinkedPolygon([]H3Index{cell})
	require.NoError(t, err)
	require.Len(t, polys, 1)
	assert.Empty(t, polys[0].Holes)
	assert.Len(t, polys[0].Outer.Vertices, NUM_HEX_VERTS)
}

func TestCellsToLinkedPolygonDiskHasOneOuterRing(t *testing.T) {
	cell := sfOrigin(t)
	disk := KRing(cell, 1)
	var cells []H3Index
	for _, c := range disk {
		if c != H3_NULL {
			cells = append(cells, c)
		}
	}

	polys, err := CellsToLinkedPolygon(cells)
	require.NoError(t, err)
	require.Len(t, polys, 1)
	assert.Empty(t, polys[0].Holes)
}

func TestCellsToLinkedPolygonRejectsDuplicates(t *testing.T) {
	cell := sfOrigin(t)
	_, err := CellsToLinkedPolygon([]H3Index{cell, cell})
	require.Error(t, err)
}

func TestCellsToLinkedPolygonRejectsMixedResolution(t *testing.T) {
	cell := sfOrigin(t)
	parent := H3ToParent(cell, H3_GET_RESOLUTION(cell)-1)
	_, err := CellsToLinkedPolygon([]H3Index{cell, parent})
	require.Error(t, err)
	var resErr *ResolutionMismatchError
	assert.ErrorAs(t, err, &resErr)
}
