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

func TestNewLatLngFromDegreesValid(t *testing.T) {
	g, err := NewLatLngFromDegrees(37.5, -122.25)
	require.NoError(t, err)
	assert.InDelta(t, DegsToRads(37.5), g.lat, EPSILON_RAD)
}

func TestNewLatLngRejectsOutOfRangeLat(t *testing.T) {
	_, err := NewLatLngFromDegrees(91, 0)
	require.Error(t, err)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestNewLatLngRejectsNaN(t *testing.T) {
	_, err := NewLatLngFromRadians(math.NaN(), 0)
	require.Error(t, err)
}

func TestNewLatLngRejectsInf(t *testing.T) {
	_, err := NewLatLngFromRadians(math.Inf(1), 0)
	require.Error(t, err)
}

func TestNewLatLngConstrainsLongitude(t *testing.T) {
	g, err := NewLatLngFromRadians(0, 3*M_PI)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.lon, -M_PI)
	assert.LessOrEqual(t, g.lon, M_PI)
}

func TestNewResolutionRange(t *testing.T) {
	_, err := NewResolution(-1)
	assert.Error(t, err)
	_, err = NewResolution(MAX_H3_RES + 1)
	assert.Error(t, err)
	res, err := NewResolution(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, res)
}
