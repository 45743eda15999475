// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package scheduler

// Launch runs fn over every packet of family W, color class by color class,
// barrier-separated, and returns the wall-clock time elapsed (spec §4.4).
//
// Preconditions: no other launch is active on s; familyID is registered;
// every outgoing link of familyID has a non-nil observer (guaranteed by
// AddDependency, which rejects nil observers).
func (s *Scheduler) Launch(familyID int, fn UserFunc, arg any) (float64, error) {
	s.launchMu.Lock()
	if s.shutdown {
		s.launchMu.Unlock()
		return 0, ErrShutdown
	}
	if s.launching {
		s.launchMu.Unlock()
		return 0, ErrLaunchActive
	}
	s.launching = true
	s.launchMu.Unlock()

	defer func() {
		s.launchMu.Lock()
		s.launching = false
		s.launchMu.Unlock()
	}()

	start := WallClock()

	f, _, err := s.prepareLaunch(familyID)
	if err != nil {
		return 0, err
	}

	for _, class := range f.colors {
		items := make([]workItem, len(class))
		for i, packetIdx := range class {
			begin, end := toUserRange(f.packets[packetIdx])
			items[i] = workItem{begin: begin, end: end, fn: fn, arg: arg}
		}
		s.pool.dispatchRound(items)
	}

	return WallClock() - start, nil
}

// prepareLaunch validates familyID, recolors it if dirty, and returns the
// family and its outgoing links under cfgMu — released before dispatch
// begins, since families/links are assumed unmutated for the duration of a
// launch (spec §5).
func (s *Scheduler) prepareLaunch(familyID int) (*family, []link, error) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()

	f, err := s.familyLocked(familyID)
	if err != nil {
		return nil, nil, err
	}

	links := s.outgoingLinksLocked(familyID)
	for _, l := range links {
		if l.observe == nil {
			return nil, nil, ErrMissingObserver
		}
	}

	if f.dirty {
		colorFamily(f, links)
	}

	return f, links, nil
}
