// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package scheduler

import "github.com/samber/lo"

// AddDependency records that packets of the writer family mutate cells of
// the target family through observe (spec §4.5 add_link). Marks writer
// dirty. Both families must already be registered.
func (s *Scheduler) AddDependency(writer, target int, observe ObserverFunc) error {
	if observe == nil {
		return ErrMissingObserver
	}

	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()

	if err := s.checkMutable(); err != nil {
		return err
	}
	w, err := s.familyLocked(writer)
	if err != nil {
		return err
	}
	if _, err := s.familyLocked(target); err != nil {
		return err
	}

	s.links = append(s.links, link{writer: writer, target: target, observe: observe})
	w.dirty = true
	s.generation++
	return nil
}

// RemoveDependency erases a previously added link and marks writer dirty
// (spec §4.5 remove_link). If no such link exists, the link set is left
// unchanged and no error is returned; writer is still marked dirty.
func (s *Scheduler) RemoveDependency(writer, target int) error {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()

	if err := s.checkMutable(); err != nil {
		return err
	}
	w, err := s.familyLocked(writer)
	if err != nil {
		return err
	}

	s.links = lo.Filter(s.links, func(l link, _ int) bool {
		return !(l.writer == writer && l.target == target)
	})
	w.dirty = true
	s.generation++
	return nil
}

// ResizeFamily updates a family's cardinality, repartitions it, and marks
// every family with an outgoing link into it dirty (spec §4.5
// resize_family).
func (s *Scheduler) ResizeFamily(target, newCardinality int) error {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()

	if err := s.checkMutable(); err != nil {
		return err
	}
	t, err := s.familyLocked(target)
	if err != nil {
		return err
	}

	t.cardinality = newCardinality
	t.repartition(s.n)

	affected := lo.Uniq(lo.FilterMap(s.links, func(l link, _ int) (int, bool) {
		return l.writer, l.target == target
	}))
	for _, w := range affected {
		if wf, err := s.familyLocked(w); err == nil {
			wf.dirty = true
		}
	}
	s.generation++
	return nil
}

// outgoingLinksLocked returns the links whose writer is the given family.
// Caller must hold cfgMu.
func (s *Scheduler) outgoingLinksLocked(writer int) []link {
	return lo.Filter(s.links, func(l link, _ int) bool { return l.writer == writer })
}
