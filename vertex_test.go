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

func TestCellToVertexesHexagonCount(t *testing.T) {
	cell := sfOrigin(t)
	require.False(t, H3IsPentagon(cell))
	verts := CellToVertexes(cell)
	assert.Len(t, verts, NUM_HEX_VERTS)
}

func TestCellToVertexOutOfRange(t *testing.T) {
	cell := sfOrigin(t)
	_, err := CellToVertex(cell, NUM_HEX_VERTS)
	require.Error(t, err)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestVertexOwnerRoundTrip(t *testing.T) {
	cell := sfOrigin(t)
	v, err := CellToVertex(cell, 0)
	require.NoError(t, err)
	assert.Equal(t, cell, VertexOwner(v))
}

func TestVertexIsValid(t *testing.T) {
	cell := sfOrigin(t)
	v, err := CellToVertex(cell, 0)
	require.NoError(t, err)
	assert.True(t, VertexIsValid(v))
	assert.False(t, VertexIsValid(cell))
}

func TestVertexToLatLngMatchesBoundary(t *testing.T) {
	cell := sfOrigin(t)
	var gb GeoBoundary
	H3ToGeoBoundary(cell, &gb)

	v, err := CellToVertex(cell, 0)
	require.NoError(t, err)

	g, err := VertexToLatLng(v)
	require.NoError(t, err)
	assert.InDelta(t, gb.verts[0].lat, g.lat, EPSILON_RAD)
	assert.InDelta(t, gb.verts[0].lon, g.lon, EPSILON_RAD)
}
