// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package neighbours

// faceSlot is one entry of a per-worker hash table: a canonical face key
// plus the tet/face it came from, and a chain pointer into the overflow
// region (spec §4.7, design note §9 "a value type carrying (tet_id,
// face_index_in_tet, ..., next_slot)").
type faceSlot struct {
	used             bool
	tet, face        int
	vmin, vmid, vmax int
	next             int // index of next slot in chain, -1 if none
}

// hashTable is one worker's private open-chaining hash table: h primary
// buckets followed by a contiguous overflow region of up to 4h slots (5h
// total, spec §4.7). A worker only ever inserts into its own table, so no
// synchronization is needed across tables.
type hashTable struct {
	h            int
	slots        []faceSlot
	overflowUsed int
}

func newHashTable(h int) *hashTable {
	return &hashTable{h: h, slots: make([]faceSlot, 5*h)}
}

// nextPow2 returns the smallest power of two >= x (x >= 1).
func nextPow2(x int) int {
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}

// hashKey computes the spec §4.7 hash of a canonical face triple. The
// caller masks the result against h-1 (h is always a power of two).
func hashKey(vmin, vmid, vmax int) int {
	return 31*vmin + 7*vmid + 3*vmax
}

// insert records face (tet, face) with canonical key (vmin, vmid, vmax). If
// an existing entry in this table already carries the same canonical
// triple, the two faces match: insert reports the previously stored
// (tet, face) and does not add a new slot. Otherwise, the new face is
// appended (to the primary bucket if empty, to the overflow chain
// otherwise) and matched is false.
func (t *hashTable) insert(tet, face, vmin, vmid, vmax int) (matchTet, matchFace int, matched bool) {
	idx := hashKey(vmin, vmid, vmax) & (t.h - 1)
	for {
		s := &t.slots[idx]
		if !s.used {
			s.used = true
			s.tet, s.face = tet, face
			s.vmin, s.vmid, s.vmax = vmin, vmid, vmax
			s.next = -1
			return 0, 0, false
		}
		if s.vmin == vmin && s.vmid == vmid && s.vmax == vmax {
			return s.tet, s.face, true
		}
		if s.next == -1 {
			if t.overflowUsed >= len(t.slots)-t.h {
				panic("neighbours: hash table overflow region exhausted")
			}
			newIdx := t.h + t.overflowUsed
			t.overflowUsed++
			s.next = newIdx
			ns := &t.slots[newIdx]
			ns.used = true
			ns.tet, ns.face = tet, face
			ns.vmin, ns.vmid, ns.vmax = vmin, vmid, vmax
			ns.next = -1
			return 0, 0, false
		}
		idx = s.next
	}
}

// find probes this table for an existing entry with the given canonical
// triple without inserting anything. Used by phase two to stitch across
// subdomains (spec §4.7).
func (t *hashTable) find(vmin, vmid, vmax int) (tet, face int, ok bool) {
	idx := hashKey(vmin, vmid, vmax) & (t.h - 1)
	for {
		s := &t.slots[idx]
		if !s.used {
			return 0, 0, false
		}
		if s.vmin == vmin && s.vmid == vmid && s.vmax == vmax {
			return s.tet, s.face, true
		}
		if s.next == -1 {
			return 0, 0, false
		}
		idx = s.next
	}
}
