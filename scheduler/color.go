// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package scheduler

import (
	"context"
	"runtime"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/sync/semaphore"
)

// coloringParallelThreshold is the packet count above which observer
// evaluation (coloring engine step 1) is fanned out across goroutines
// instead of run inline. Below it, the goroutine overhead isn't worth it.
const coloringParallelThreshold = 64

// touchKey namespaces a touched index by target family, so two links to
// different targets never collide on index 5 meaning different cells.
type touchKey struct {
	target int
	index  int
}

type touch struct {
	key    touchKey
	packet int
}

// colorFamily recomputes f.colors for the given outgoing links, following
// the greedy deterministic algorithm of spec §4.3. Must be called with the
// owning Scheduler's cfgMu held, and never while a launch is active.
func colorFamily(f *family, links []link) {
	n := len(f.packets)
	if n == 0 {
		f.colors = nil
		f.dirty = false
		return
	}
	if len(links) == 0 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		f.colors = [][]int{all}
		f.dirty = false
		return
	}

	touches := collectTouches(f, links)

	// Step 2: group touches by (target, index); any group of size >= 2
	// means every pair of its packets conflicts.
	grouped := lo.GroupBy(touches, func(t touch) touchKey { return t.key })

	conflicts := make([]map[int]struct{}, n)
	for i := range conflicts {
		conflicts[i] = make(map[int]struct{})
	}
	for _, group := range grouped {
		if len(group) < 2 {
			continue
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i].packet, group[j].packet
				if a == b {
					continue
				}
				conflicts[a][b] = struct{}{}
				conflicts[b][a] = struct{}{}
			}
		}
	}

	// Step 3: order packets by descending conflict-degree, ties broken by
	// ascending packet id. This exact tie-break is required for
	// cross-platform reproducibility of the resulting coloring (spec §4.3).
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		da, db := len(conflicts[a]), len(conflicts[b])
		if da != db {
			return da > db
		}
		return a < b
	})

	// Step 4: assign each packet the smallest color not used by an
	// already-colored conflicting neighbour.
	color := make([]int, n)
	for i := range color {
		color[i] = -1
	}
	maxColor := -1
	for _, p := range order {
		used := make(map[int]struct{}, len(conflicts[p]))
		for nb := range conflicts[p] {
			if color[nb] >= 0 {
				used[color[nb]] = struct{}{}
			}
		}
		c := 0
		for {
			if _, busy := used[c]; !busy {
				break
			}
			c++
		}
		color[p] = c
		if c > maxColor {
			maxColor = c
		}
	}

	classes := make([][]int, maxColor+1)
	for p, c := range color {
		classes[c] = append(classes[c], p)
	}
	for _, cls := range classes {
		sort.Ints(cls)
	}

	f.colors = classes
	f.dirty = false
}

// collectTouches runs step 1 of the coloring algorithm: for each packet and
// each outgoing link, invoke the link's observation function and record
// every touched target index. Evaluation is fanned out across goroutines,
// bounded by a weighted semaphore, once the family is large enough that the
// fan-out overhead pays for itself; determinism (spec property 5) survives
// because observers are pure and the merge step that follows is
// order-independent.
func collectTouches(f *family, links []link) []touch {
	if len(f.packets) <= coloringParallelThreshold {
		var out []touch
		for pi, pkt := range f.packets {
			out = append(out, touchesForPacket(pi, pkt, links)...)
		}
		return out
	}

	results := make([][]touch, len(f.packets))
	sem := semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
	ctx := context.Background()
	done := make(chan struct{}, len(f.packets))

	for pi, pkt := range f.packets {
		pi, pkt := pi, pkt
		_ = sem.Acquire(ctx, 1) // ctx.Background() never cancels; error is impossible
		go func() {
			defer sem.Release(1)
			results[pi] = touchesForPacket(pi, pkt, links)
			done <- struct{}{}
		}()
	}
	for range f.packets {
		<-done
	}

	var out []touch
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func touchesForPacket(packetIdx int, pkt Packet, links []link) []touch {
	var out []touch
	begin, end := toUserRange(pkt)
	for _, lk := range links {
		for _, idx := range lk.observe(begin, end) {
			out = append(out, touch{key: touchKey{target: lk.target, index: idx}, packet: packetIdx})
		}
	}
	return out
}
