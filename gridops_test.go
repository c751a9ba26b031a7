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

func sfOrigin(t *testing.T) H3Index {
	g, err := NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	require.NoError(t, err)
	origin := GeoToH3(&g, 9)
	require.NotEqual(t, H3_NULL, origin)
	return origin
}

func TestMaxKringSize(t *testing.T) {
	assert.Equal(t, 1, maxKringSize(0))
	assert.Equal(t, 7, maxKringSize(1))
	assert.Equal(t, 19, maxKringSize(2))
}

func TestKRingZeroIsOrigin(t *testing.T) {
	origin := sfOrigin(t)
	ring := KRing(origin, 0)
	assert.Equal(t, []H3Index{origin}, ring)
}

func TestKRingAlwaysFixedLength(t *testing.T) {
	origin := sfOrigin(t)
	for k := 0; k <= 3; k++ {
		ring := KRing(origin, k)
		assert.Len(t, ring, maxKringSize(k))
	}
}

func TestKRingContainsOriginOnce(t *testing.T) {
	origin := sfOrigin(t)
	ring := KRing(origin, 2)
	count := 0
	for _, c := range ring {
		if c == origin {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGridDiskDistancesMatchesSafeCounts(t *testing.T) {
	origin := sfOrigin(t)
	fastCells, _ := GridDiskDistances(origin, 1)
	safeCells, _ := GridDiskSafe(origin, 1)

	fastSet := map[H3Index]bool{}
	for _, c := range fastCells {
		if c != H3_NULL {
			fastSet[c] = true
		}
	}
	safeSet := map[H3Index]bool{}
	for _, c := range safeCells {
		safeSet[c] = true
	}
	assert.Equal(t, safeSet, fastSet)
}

func TestGridRingFastZero(t *testing.T) {
	origin := sfOrigin(t)
	ring := GridRingFast(origin, 0)
	assert.Equal(t, []H3Index{origin}, ring)
}

func TestGridRingFastExcludesOrigin(t *testing.T) {
	origin := sfOrigin(t)
	ring := GridRingFast(origin, 1)
	for _, c := range ring {
		assert.NotEqual(t, origin, c)
	}
}
