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

import "math"

// NewLatLngFromDegrees builds a GeoCoord from a latitude/longitude pair
// given in decimal degrees, rejecting non-finite values and latitudes
// outside [-90, 90].
func NewLatLngFromDegrees(latDegs, lonDegs float64) (GeoCoord, error) {
	return NewLatLngFromRadians(DegsToRads(latDegs), DegsToRads(lonDegs))
}

// NewLatLngFromRadians builds a GeoCoord from a latitude/longitude pair
// given in radians, rejecting non-finite values and latitudes outside
// [-pi/2, pi/2].
func NewLatLngFromRadians(latRads, lonRads float64) (GeoCoord, error) {
	if math.IsNaN(latRads) || math.IsInf(latRads, 0) {
		return GeoCoord{}, &DomainError{Field: "lat", Value: latRads}
	}
	if math.IsNaN(lonRads) || math.IsInf(lonRads, 0) {
		return GeoCoord{}, &DomainError{Field: "lon", Value: lonRads}
	}
	if latRads < -M_PI_2 || latRads > M_PI_2 {
		return GeoCoord{}, &DomainError{Field: "lat", Value: latRads}
	}

	var g GeoCoord
	g.setGeoRads(latRads, constrainLng(lonRads))
	return g, nil
}

// NewResolution validates a resolution against the library's supported
// range, returning a DomainError if it falls outside 0..MAX_H3_RES.
func NewResolution(res int) (int, error) {
	if res < 0 || res > MAX_H3_RES {
		return 0, &DomainError{Field: "res", Value: float64(res)}
	}
	return res, nil
}
