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
	"errors"
	"fmt"
)

var (
	ErrCompactDuplicate     = errors.New("compact duplicated")
	ErrCompactLoopExceeded  = errors.New("compact loop exceeded")
	ErrUncompactResExceeded = errors.New("uncompact resolution exceeded")
)

// DomainError reports a scalar value outside the range its type allows, e.g.
// a latitude outside [-pi/2, pi/2] or a resolution outside 0..15.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("h3go: %s out of domain: %v", e.Field, e.Value)
}

// InvalidGeometryError reports a malformed polygon or ring: non-finite
// coordinates, too few vertices, or a degenerate (zero-area) ring.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return "h3go: invalid geometry: " + e.Reason
}

// HexGridError reports an IJK coordinate outside the region a LocalIJ
// operation can represent, or overflow while rotating across a face.
type HexGridError struct {
	Reason string
}

func (e *HexGridError) Error() string {
	return "h3go: hex grid error: " + e.Reason
}

// ResolutionMismatchError reports two cells of different resolutions being
// used in an operation (edge construction, local IJ, distance) that
// requires them to match.
type ResolutionMismatchError struct {
	A, B int
}

func (e *ResolutionMismatchError) Error() string {
	return fmt.Sprintf("h3go: resolution mismatch: %d != %d", e.A, e.B)
}

// PentagonDistortionError reports an operation (LocalIJ, grid path, grid
// distance) that hit an irreducible pentagon distortion case.
type PentagonDistortionError struct {
	Cell H3Index
}

func (e *PentagonDistortionError) Error() string {
	return "h3go: pentagon distortion at " + e.Cell.String()
}

// CompactionError carries the reason a compaction input was rejected.
// Compact and Uncompact do not return it: they report rejected input with
// the ErrCompactDuplicate and ErrUncompactResExceeded sentinels, and
// Compact does not check that its inputs share one resolution.
type CompactionError struct {
	Reason string
}

func (e *CompactionError) Error() string {
	return "h3go: compaction error: " + e.Reason
}

// OutlinerError reports why CellsToLinkedPolygon rejected its input cell set.
type OutlinerError struct {
	Reason string
}

func (e *OutlinerError) Error() string {
	return "h3go: outline error: " + e.Reason
}

const (
	ReasonHeterogeneousResolution = "heterogeneous resolution"
	ReasonDuplicateInput          = "duplicate input"
)
