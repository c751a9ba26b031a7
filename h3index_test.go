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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoToH3AcceptsFiniteInput(t *testing.T) {
	g, err := NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	require.NoError(t, err)

	cell := GeoToH3(&g, 9)
	assert.NotEqual(t, H3_NULL, cell)
	assert.True(t, H3IsValid(cell))
	assert.Equal(t, 9, H3_GET_RESOLUTION(cell))
}

func TestGeoToH3RejectsNonFiniteInput(t *testing.T) {
	nan := GeoCoord{}
	nan.setGeoRads(math.NaN(), 0)
	assert.Equal(t, H3_NULL, GeoToH3(&nan, 5))

	inf := GeoCoord{}
	inf.setGeoRads(math.Inf(1), 0)
	assert.Equal(t, H3_NULL, GeoToH3(&inf, 5))
}

func TestGeoToH3RejectsOutOfRangeLatitude(t *testing.T) {
	g := GeoCoord{}
	g.setGeoRads(M_PI, 0)
	assert.Equal(t, H3_NULL, GeoToH3(&g, 5))
}

func TestH3ToGeoRoundTripIsClose(t *testing.T) {
	g, err := NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	require.NoError(t, err)

	cell := GeoToH3(&g, 9)
	var back GeoCoord
	H3ToGeo(cell, &back)

	assert.True(t, PointDistKm(&g, &back) < EdgeLengthKm(9))
}

func TestMaxH3ToChildrenSizeHexagon(t *testing.T) {
	g, err := NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	require.NoError(t, err)
	cell := GeoToH3(&g, 5)
	require.False(t, H3IsPentagon(cell))

	assert.Equal(t, 7, MaxH3ToChildrenSize(cell, 6))
	assert.Equal(t, 49, MaxH3ToChildrenSize(cell, 7))
}

func TestMaxH3ToChildrenSizePentagon(t *testing.T) {
	fijk := baseCellData[pentagonBaseCells[0]].homeFijk
	h := _faceIjkToH3(&fijk, 1)

	require.True(t, H3IsPentagon(h))
	assert.Equal(t, 6, MaxH3ToChildrenSize(h, 2))
	assert.Equal(t, 1+5*(49-1)/6, MaxH3ToChildrenSize(h, 3))
}

func TestCompactUncompactRoundTrip(t *testing.T) {
	g, err := NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	require.NoError(t, err)
	parent := GeoToH3(&g, 7)

	var children []H3Index
	H3ToChildren(parent, 8, &children)
	require.Len(t, children, 7)

	compacted, err := Compact(children)
	require.NoError(t, err)
	assert.Equal(t, []H3Index{parent}, compacted)

	uncompacted, err := Uncompact(compacted, 8)
	require.NoError(t, err)
	assert.ElementsMatch(t, children, uncompacted)
}

func TestStringToH3RoundTrip(t *testing.T) {
	g, err := NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	require.NoError(t, err)
	cell := GeoToH3(&g, 9)

	str := H3ToString(cell)
	assert.Equal(t, cell, StringToH3(str))
}
