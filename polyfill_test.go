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

func sfBoxGeofence(t *testing.T) *Geofence {
	corners := [][2]float64{
		{37.70, -122.50},
		{37.70, -122.35},
		{37.85, -122.35},
		{37.85, -122.50},
	}
	ring := make([]GeoCoord, len(corners))
	for i, c := range corners {
		g, err := NewLatLngFromDegrees(c[0], c[1])
		require.NoError(t, err)
		ring[i] = g
	}
	return &Geofence{Outer: ring}
}

func TestPolyfillCentroidFindsNonEmptySet(t *testing.T) {
	fence := sfBoxGeofence(t)
	cells, err := Polyfill(fence, 7, ContainmentCentroid)
	require.NoError(t, err)
	assert.NotEmpty(t, cells)

	for _, c := range cells {
		var center GeoCoord
		H3ToGeo(c, &center)
		assert.True(t, pointInGeofence(fence, &center))
	}
}

func TestPolyfillIntersectsBoundaryFindsAtLeastAsManyAsCentroid(t *testing.T) {
	fence := sfBoxGeofence(t)
	centroidCells, err := Polyfill(fence, 7, ContainmentCentroid)
	require.NoError(t, err)

	intersectCells, err := Polyfill(fence, 7, ContainmentIntersectsBoundary)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(intersectCells), len(centroidCells))
}

func TestPolyfillContainsBoundaryIsSubsetOfCentroid(t *testing.T) {
	fence := sfBoxGeofence(t)
	centroidCells, err := Polyfill(fence, 7, ContainmentCentroid)
	require.NoError(t, err)

	containCells, err := Polyfill(fence, 7, ContainmentContainsBoundary)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(containCells), len(centroidCells))
}

func TestPolyfillRejectsTransmeridianPolygon(t *testing.T) {
	corners := [][2]float64{
		{10, 179},
		{10, -179},
		{-10, -179},
		{-10, 179},
	}
	ring := make([]GeoCoord, len(corners))
	for i, c := range corners {
		g, err := NewLatLngFromDegrees(c[0], c[1])
		require.NoError(t, err)
		ring[i] = g
	}
	fence := &Geofence{Outer: ring}

	_, err := Polyfill(fence, 5, ContainmentCentroid)
	require.Error(t, err)
	var geomErr *InvalidGeometryError
	assert.ErrorAs(t, err, &geomErr)
}

func TestPolyfillRejectsDegenerateRing(t *testing.T) {
	g, err := NewLatLngFromDegrees(0, 0)
	require.NoError(t, err)
	fence := &Geofence{Outer: []GeoCoord{g, g}}

	_, err = Polyfill(fence, 5, ContainmentCentroid)
	require.Error(t, err)
}
