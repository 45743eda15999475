// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package scheduler

// packetKFactor is the small constant k from spec §4.2: packet size is
// chosen so coloring has freedom to split conflicting work across ~k
// packets per worker. Fixed at 4, per the spec's resolution of the open
// question over the exact value of k.
const packetKFactor = 4

// Packet is a contiguous, immutable half-open range [Begin, End) in a
// family's 0-based index space. The public API is 1-based and inclusive
// (spec §6); the conversion happens at the dispatch boundary, never here.
type Packet struct {
	Begin int
	End   int
}

// Len reports how many indices the packet covers.
func (p Packet) Len() int { return p.End - p.Begin }

// partition splits a family of cardinality c into packets of size
// P = max(1, ceil(c / (k*n))), contiguous and gap-free, per spec §4.2. The
// last packet may be shorter than P. The output is deterministic given
// (c, n, k).
func partition(c, n, k int) []Packet {
	if c <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if k < 1 {
		k = 1
	}

	p := ceilDiv(c, k*n)
	if p < 1 {
		p = 1
	}

	numPackets := ceilDiv(c, p)
	packets := make([]Packet, 0, numPackets)
	for begin := 0; begin < c; begin += p {
		end := begin + p
		if end > c {
			end = c
		}
		packets = append(packets, Packet{Begin: begin, End: end})
	}
	return packets
}

// toUserRange converts a packet's internal 0-based half-open range to the
// public 1-based inclusive convention used by UserFunc and ObserverFunc
// (spec §6, design note §9 "manual 1-indexing").
func toUserRange(p Packet) (begin, end int) {
	return p.Begin + 1, p.End
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
