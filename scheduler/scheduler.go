// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package scheduler implements a shared-memory parallel loop scheduler
// specialized for unstructured-mesh computations: a fixed worker pool, a
// per-family partitioner and coloring engine, and a dispatcher that drives
// the pool through coloring, barrier, and packet dispatch with negligible
// per-iteration overhead.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler is process-wide-per-instance state: a fixed worker pool, a
// per-family table, and a dependency graph across families (spec §3).
// Only one launch may be active at a time (invariant 4).
type Scheduler struct {
	n    int
	pool *pool

	cfgMu      sync.Mutex
	families   []*family
	links      []link
	generation uint64

	launchMu  sync.Mutex
	launching bool
	shutdown  bool
}

// New creates a scheduler with n workers, spawning them immediately.
// n is clamped to [1, 128] per spec §6.
func New(n int) *Scheduler {
	if n < 1 {
		n = 1
	} else if n > 128 {
		n = 128
	}
	return &Scheduler{n: n, pool: newPool(n)}
}

// Shutdown joins all worker threads. Only permitted when no launch is
// active (spec §5); returns ErrLaunchActive otherwise. Idempotent.
func (s *Scheduler) Shutdown() error {
	s.launchMu.Lock()
	if s.launching {
		s.launchMu.Unlock()
		return ErrLaunchActive
	}
	if s.shutdown {
		s.launchMu.Unlock()
		return nil
	}
	s.shutdown = true
	s.launchMu.Unlock()

	s.pool.close()
	return nil
}

// RegisterFamily creates a new entity type of the given cardinality
// (1-indexed; C >= 1) and returns its family id (spec §4.5/§3). Safe to
// call at any time, but typically done once up front.
func (s *Scheduler) RegisterFamily(cardinality int) int {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()

	id := len(s.families)
	f := newFamily(id, cardinality, s.n)
	s.families = append(s.families, f)
	s.generation++
	return id
}

// Info reports the worker count and number of registered families
// (spec §6 info).
func (s *Scheduler) Info() (nWorkers, nFamilies int) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	return s.n, len(s.families)
}

// WallClock returns seconds since the Unix epoch, read from the wall clock
// (spec §6 wall_clock). Only meaningful as a difference between two calls.
func WallClock() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

func (s *Scheduler) familyLocked(id int) (*family, error) {
	if id < 0 || id >= len(s.families) {
		return nil, ErrUnknownFamily
	}
	return s.families[id], nil
}

// checkMutable reports whether families/links may currently be mutated.
// Caller must hold cfgMu. Mutation while a launch is active is undefined
// behaviour per spec §5; this turns it into a reported error instead
// (spec §7 "Internal assertion").
func (s *Scheduler) checkMutable() error {
	s.launchMu.Lock()
	defer s.launchMu.Unlock()
	if s.shutdown {
		return ErrShutdown
	}
	if s.launching {
		return ErrLaunchActive
	}
	return nil
}
