// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package neighbours computes tet↔tet face adjacency for a tetrahedral
// mesh using the scheduler package: per-subdomain hashing in a first
// parallel pass, cross-subdomain stitching in a second (spec §4.7). It is
// the "worked example" showing the scheduler used for hard irregular work.
package neighbours

// Tet is one tetrahedron: four 1-based vertex indices and a material
// region reference.
type Tet struct {
	Idx [4]int
	Ref int
}

// Triangle is a boundary or material-interface triangle, emitted with
// outward orientation (spec §4.7).
type Triangle struct {
	V   [3]int
	Ref int // 0 = external, 1 = material interface
}

// tvpf gives, for face j of a tet, the three local vertex positions in
// outward-oriented order (the face opposite local vertex j).
var tvpf = [4][3]int{
	{1, 2, 3},
	{2, 0, 3},
	{3, 0, 1},
	{0, 2, 1},
}

// canonicalFace returns the sorted (min, mid, max) vertex indices of face f
// of tet t: the three entries of t.Idx other than position f, sorted
// ascending by vertex index (spec §4.7 "face canonicalization").
func canonicalFace(t Tet, f int) (vmin, vmid, vmax int) {
	var v [3]int
	k := 0
	for p := 0; p < 4; p++ {
		if p == f {
			continue
		}
		v[k] = t.Idx[p]
		k++
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	return v[0], v[1], v[2]
}
