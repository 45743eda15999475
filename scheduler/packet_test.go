// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package scheduler

import "testing"

func TestPartitionCoverage(t *testing.T) {
	cases := []struct {
		c, n, k int
	}{
		{100, 4, 4}, {1, 1, 4}, {17, 8, 4}, {10000, 8, 4}, {3, 16, 4},
	}
	for _, tc := range cases {
		packets := partition(tc.c, tc.n, tc.k)
		covered := 0
		for i, p := range packets {
			if p.Begin != covered {
				t.Fatalf("c=%d n=%d k=%d: gap before packet %d: begin=%d want %d", tc.c, tc.n, tc.k, i, p.Begin, covered)
			}
			if p.End <= p.Begin {
				t.Fatalf("c=%d n=%d k=%d: empty packet %d", tc.c, tc.n, tc.k, i)
			}
			covered = p.End
		}
		if covered != tc.c {
			t.Fatalf("c=%d n=%d k=%d: coverage ended at %d, want %d", tc.c, tc.n, tc.k, covered, tc.c)
		}
	}
}

func TestPartitionDeterministic(t *testing.T) {
	a := partition(10000, 8, 4)
	b := partition(10000, 8, 4)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("packet %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestToUserRange(t *testing.T) {
	begin, end := toUserRange(Packet{Begin: 0, End: 3})
	if begin != 1 || end != 3 {
		t.Errorf("toUserRange(0,3) = (%d,%d), want (1,3)", begin, end)
	}
}
