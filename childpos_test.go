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

func TestCellToChildPosRoundTripsWithChildPosToCell(t *testing.T) {
	g, err := NewLatLngFromDegrees(48.854501508844095, 2.3729695423293613)
	require.NoError(t, err)

	parent := GeoToH3(&g, 4)
	require.True(t, parent.IsValid())

	var descendants []H3Index
	H3ToChildren(parent, 7, &descendants)
	require.NotEmpty(t, descendants)

	for _, c := range descendants {
		pos, err := CellToChildPos(c, 4)
		require.NoError(t, err)

		got, err := ChildPosToCell(parent, 7, pos)
		require.NoError(t, err)
		assert.Equal(t, c, got, "child %s at pos %d", H3ToString(c), pos)
	}
}

func TestCellToChildPosCoversEveryPositionExactlyOnce(t *testing.T) {
	g, err := NewLatLngFromDegrees(48.854501508844095, 2.3729695423293613)
	require.NoError(t, err)

	parent := GeoToH3(&g, 3)
	require.True(t, parent.IsValid())

	size := MaxH3ToChildrenSize(parent, 5)
	seen := make(map[int64]H3Index, size)

	var descendants []H3Index
	H3ToChildren(parent, 5, &descendants)
	require.Len(t, descendants, size)

	for _, c := range descendants {
		pos, err := CellToChildPos(c, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, pos, int64(0))
		require.Less(t, pos, int64(size))

		if existing, ok := seen[pos]; ok {
			t.Fatalf("position %d reused by both %s and %s", pos, H3ToString(existing), H3ToString(c))
		}
		seen[pos] = c
	}
	assert.Len(t, seen, size)
}

func TestCellToChildPosSameResolutionIsZero(t *testing.T) {
	g, err := NewLatLngFromDegrees(48.854501508844095, 2.3729695423293613)
	require.NoError(t, err)

	cell := GeoToH3(&g, 6)
	pos, err := CellToChildPos(cell, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	got, err := ChildPosToCell(cell, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, cell, got)
}

func TestChildPosToCellRejectsOutOfRangePosition(t *testing.T) {
	g, err := NewLatLngFromDegrees(48.854501508844095, 2.3729695423293613)
	require.NoError(t, err)

	parent := GeoToH3(&g, 5)
	size := MaxH3ToChildrenSize(parent, 6)

	_, err = ChildPosToCell(parent, 6, int64(size))
	assert.Error(t, err)

	_, err = ChildPosToCell(parent, 6, -1)
	assert.Error(t, err)
}

func TestCellToChildPosRejectsInvalidParentRes(t *testing.T) {
	g, err := NewLatLngFromDegrees(48.854501508844095, 2.3729695423293613)
	require.NoError(t, err)

	cell := GeoToH3(&g, 5)
	_, err = CellToChildPos(cell, 6)
	assert.Error(t, err)

	_, err = CellToChildPos(cell, -1)
	assert.Error(t, err)
}
