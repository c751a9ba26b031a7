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

// h3NeighborRotations steps from origin one cell in the given IJK+
// direction, returning H3_NULL if that direction is undefined for origin
// (the deleted K-axes subsequence of a pentagon). rotations accumulates
// the number of 60-degree CCW rotations crossed so callers chaining
// multiple steps can track orientation; this construction's base-cell
// table never requires a rotation (see basecells.go), so it is left
// unchanged.
func h3NeighborRotations(origin H3Index, dir Direction, rotations *int) H3Index {
	if dir == INVALID_DIGIT {
		return H3_NULL
	}
	if dir == CENTER_DIGIT {
		return origin
	}

	var ijk CoordIJK
	if h3ToLocalIjk(origin, origin, &ijk) != 0 {
		return H3_NULL
	}
	_neighbor(&ijk, dir)

	var out H3Index
	if localIjkToH3(origin, &ijk, &out) != 0 {
		return H3_NULL
	}

	return out
}

// maxKringSize returns the maximum number of cells, including origin
// itself, that can appear within k grid steps of a cell: 1 + 3k(k+1).
func maxKringSize(k int) int {
	return 1 + 3*k*(k+1)
}

// KRing produces all cells within grid distance k of origin, padded with
// H3_NULL up to the fixed maxKringSize(k) length callers expect (a
// pentagon's disk has fewer real neighbors than a hexagon's). Positions
// that fall into an irreducible pentagon distortion are retried with the
// slower, always-correct GridDiskSafe; KRing itself never fails.
func KRing(origin H3Index, k int) []H3Index {
	out, _ := GridDiskDistances(origin, k)
	size := maxKringSize(k)
	if len(out) >= size {
		return out[:size]
	}
	padded := make([]H3Index, size)
	copy(padded, out)
	for i := len(out); i < size; i++ {
		padded[i] = H3_NULL
	}
	return padded
}

// GridDiskDistances is KRing, additionally returning the grid distance of
// each returned cell from origin in a slice of matching length.
func GridDiskDistances(origin H3Index, k int) ([]H3Index, []int) {
	size := maxKringSize(k)
	cells := make([]H3Index, size)
	distances := make([]int, size)

	if gridDiskFast(origin, k, cells, distances) != 0 {
		// Fast path hit a pentagon distortion; fall back to the safe BFS
		// for the entire disk so the result is still exact.
		return GridDiskSafe(origin, k)
	}

	return cells, distances
}

// gridDiskFast fills cells/distances (each pre-sized to maxKringSize(k))
// using the classic spiral walk: move outward k steps, then trace each
// successive ring by walking its 6 sides. Returns non-zero if the walk
// ever stepped off a pentagon's missing K-axes subsequence, signalling
// the caller should retry with the safe algorithm.
func gridDiskFast(origin H3Index, k int, cells []H3Index, distances []int) int {
	cells[0] = origin
	distances[0] = 0

	if k == 0 {
		return 0
	}

	idx := 1
	ring := origin
	rotations := 0

	// walk directly outward to the start of the outermost ring under
	// construction at each step.
	for n := 1; n <= k; n++ {
		ring = h3NeighborRotations(ring, I_AXES_DIGIT, &rotations)
		if ring == H3_NULL {
			return 1
		}
		corner := ring
		cells[idx] = ring
		distances[idx] = n
		idx++

		// trace the remaining 6n-1 cells of ring n, 6 sides of length n
		// walked counter-clockwise from the corner placed by the outward
		// walk above (the last side has one fewer cell, since its final
		// step would land back on that corner).
		dirs := [6]Direction{J_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT, IK_AXES_DIGIT, I_AXES_DIGIT, IJ_AXES_DIGIT}
		for side := 0; side < 6; side++ {
			steps := n
			if side == 5 {
				steps = n - 1
			}
			for s := 0; s < steps; s++ {
				ring = h3NeighborRotations(ring, dirs[side], &rotations)
				if ring == H3_NULL {
					return 1
				}
				cells[idx] = ring
				distances[idx] = n
				idx++
			}
		}
		ring = corner
	}

	return 0
}

// GridDiskSafe produces all cells within grid distance k of origin via
// breadth-first expansion over h3NeighborRotations, deduplicated by
// index. Always correct, including around pentagon distortion, at the
// cost of visiting more cells than the fast spiral walk.
func GridDiskSafe(origin H3Index, k int) ([]H3Index, []int) {
	visited := make(map[H3Index]int)
	visited[origin] = 0

	frontier := []H3Index{origin}
	for dist := 0; dist < k; dist++ {
		var next []H3Index
		for _, cell := range frontier {
			for dir := K_AXES_DIGIT; dir <= IJ_AXES_DIGIT; dir++ {
				rotations := 0
				neighbor := h3NeighborRotations(cell, dir, &rotations)
				if neighbor == H3_NULL {
					continue
				}
				if _, ok := visited[neighbor]; ok {
					continue
				}
				visited[neighbor] = dist + 1
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	cells := make([]H3Index, 0, len(visited))
	distances := make([]int, 0, len(visited))
	for cell, dist := range visited {
		cells = append(cells, cell)
		distances = append(distances, dist)
	}
	return cells, distances
}

// GridRingFast produces the cells at exactly grid distance k from origin
// via the fast spiral walk (the outermost ring of GridDiskDistances),
// falling back to GridDiskSafe filtered to distance k if the fast walk
// crosses a pentagon distortion.
func GridRingFast(origin H3Index, k int) []H3Index {
	if k == 0 {
		return []H3Index{origin}
	}

	size := maxKringSize(k)
	cells := make([]H3Index, size)
	distances := make([]int, size)
	if gridDiskFast(origin, k, cells, distances) != 0 {
		all, dists := GridDiskSafe(origin, k)
		var ring []H3Index
		for i, d := range dists {
			if d == k {
				ring = append(ring, all[i])
			}
		}
		return ring
	}

	var ring []H3Index
	for i, d := range distances {
		if d == k {
			ring = append(ring, cells[i])
		}
	}
	return ring
}
