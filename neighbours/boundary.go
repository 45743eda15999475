// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package neighbours

// extractBoundary emits one triangle per face with no neighbour, plus one
// per material-interface face — deduped by the strict i < neighbour
// inequality, so the interface triangle is always emitted from the
// smaller-id tet (spec §8 S3). Run single-threaded: the count and order
// matter for reproducibility (spec property 7, scenario S5), and the work
// is O(4·NmbTet), cheap relative to the two hashing launches.
func extractBoundary(tets []Tet, ngb [][4]int) []Triangle {
	var tris []Triangle
	for i, t := range tets {
		tetID := i + 1
		for face := 0; face < 4; face++ {
			n := ngb[i][face]
			switch {
			case n == 0:
				tris = append(tris, faceTriangle(t, face, 0))
			case tets[n-1].Ref != t.Ref && tetID < n:
				tris = append(tris, faceTriangle(t, face, 1))
			}
		}
	}
	return tris
}

func faceTriangle(t Tet, face, ref int) Triangle {
	p := tvpf[face]
	return Triangle{V: [3]int{t.Idx[p[0]], t.Idx[p[1]], t.Idx[p[2]]}, Ref: ref}
}
