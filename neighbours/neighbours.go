// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package neighbours

import (
	"errors"

	"github.com/clayne/lplib-go/scheduler"
)

// ErrEmptyMesh is returned by Compute when given zero tetrahedra.
var ErrEmptyMesh = errors.New("neighbours: mesh has no tetrahedra")

// Compute drives sched through two launches to build, for every
// tetrahedron and each of its 4 faces, the index of the neighbour sharing
// that face (0 if the face lies on the boundary), then extracts boundary
// and material-interface triangles (spec §4.7).
//
// Phase one (per-subdomain hashing) and phase two (cross-subdomain
// stitching) are two separate Launch calls on the same family: launches on
// one Scheduler are serialized (spec §5), so phase two never starts before
// every worker's phase-one table is fully populated, without any extra
// synchronization primitive.
func Compute(sched *scheduler.Scheduler, tets []Tet) (ngb [][4]int, tris []Triangle, err error) {
	c := len(tets)
	if c == 0 {
		return nil, nil, ErrEmptyMesh
	}

	nWorkers, _ := sched.Info()
	famID := sched.RegisterFamily(c)

	// Sized with a margin above the nominal 1/nWorkers share: packets are
	// claimed off the scheduler's shared atomic-cursor queue (spec §4.1),
	// not statically assigned, so a worker can claim well more than its
	// nominal share before others start (see DESIGN.md). 4x (rather than a
	// tight 2x) keeps insert's overflow panic a rare, loud failure instead
	// of a routine one under a skewed schedule.
	tetsPerWorker := ceilDiv(c, nWorkers)
	h := nextPow2(maxInt(1, 4*tetsPerWorker))
	tables := make([]*hashTable, nWorkers)
	for i := range tables {
		tables[i] = newHashTable(h)
	}

	ngb = make([][4]int, c)
	matchCount := make([]int8, c)
	owner := make([]int, c)
	for i := range owner {
		owner[i] = -1
	}

	phaseOne := func(begin, end, workerID int, arg any) {
		tbl := tables[workerID]
		for tetID := begin; tetID <= end; tetID++ {
			owner[tetID-1] = workerID
			t := tets[tetID-1]
			for face := 0; face < 4; face++ {
				vmin, vmid, vmax := canonicalFace(t, face)
				matchTet, matchFace, matched := tbl.insert(tetID, face, vmin, vmid, vmax)
				if matched {
					// Every entry of tbl was inserted by this worker, so the
					// matched tet (and its match-count cell) is ours too.
					if owner[matchTet-1] != workerID {
						panic("neighbours: phase one matched a tet owned by another worker")
					}
					ngb[tetID-1][face] = matchTet
					ngb[matchTet-1][matchFace] = tetID
					matchCount[tetID-1]++
					matchCount[matchTet-1]++
				}
			}
		}
	}
	if _, err := sched.Launch(famID, phaseOne, nil); err != nil {
		return nil, nil, err
	}

	phaseTwo := func(begin, end, workerID int, arg any) {
		for tetID := begin; tetID <= end; tetID++ {
			if matchCount[tetID-1] >= 4 {
				continue
			}
			own := owner[tetID-1]
			if own < 0 {
				panic("neighbours: tet processed in phase two without a phase-one owner")
			}
			t := tets[tetID-1]
			for face := 0; face < 4; face++ {
				if ngb[tetID-1][face] != 0 {
					continue
				}
				vmin, vmid, vmax := canonicalFace(t, face)
				for w := 0; w < nWorkers; w++ {
					if w == own {
						continue
					}
					if matchTet, _, ok := tables[w].find(vmin, vmid, vmax); ok {
						ngb[tetID-1][face] = matchTet
						break
					}
				}
			}
		}
	}
	if _, err := sched.Launch(famID, phaseTwo, nil); err != nil {
		return nil, nil, err
	}

	tris = extractBoundary(tets, ngb)
	return ngb, tris, nil
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
