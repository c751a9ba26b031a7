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

// CoordIJ is IJ hexagon coordinates
// Each axis is spaced 120 degrees apart.
type CoordIJ struct {
	i int // i component
	j int // j component
}

// ToIJK transforms coordinates from the IJ coordinate system to the IJK+
// coordinate system.
func (ij *CoordIJ) ToIJK() CoordIJK {
	ijk := CoordIJK{
		i: ij.i,
		j: ij.j,
		k: 0,
	}

	_ijkNormalize(&ijk)
	return ijk
}

// ijToIjk transforms coordinates from the IJ coordinate system to the IJK+
// coordinate system, writing into an existing CoordIJK rather than
// allocating one. Used by the LocalIJ anchoring in localij.go, which walks
// the result through _ijkNormalize-dependent neighbor steps in place.
func ijToIjk(ij *CoordIJ, ijk *CoordIJK) {
	*ijk = ij.ToIJK()
}

// ijkToIj transforms coordinates from the IJK+ coordinate system to the IJ
// coordinate system, discarding the redundant k axis.
func ijkToIj(ijk *CoordIJK, ij *CoordIJ) {
	ij.i = ijk.i - ijk.k
	ij.j = ijk.j - ijk.k
}

// FromIJK is the inverse of ToIJK: it projects a CoordIJK down to the IJ
// plane by dropping its redundant k axis.
func (ij *CoordIJ) FromIJK(ijk *CoordIJK) {
	ijkToIj(ijk, ij)
}
