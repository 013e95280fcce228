// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package geotrack

import "waylog/models"

// Status is a point-in-time snapshot of the sampler, published to
// subscribers after every mutation.
type Status struct {
	// Enabled reports the recorded tracking intent. It is true while the
	// sampler waits for a permission grant, so the UI can keep the toggle on.
	Enabled bool

	// Authorization is the sampler's mirror of the platform permission state.
	Authorization models.Authorization

	// FixCount is the number of fixes in the recorded history.
	FixCount int

	// LastFix is a copy of the most recently accepted fix, nil when the
	// history is empty.
	LastFix *models.LocationFix
}

// Status returns the current snapshot.
func (s *Sampler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statusLocked()
}

// statusLocked builds a snapshot. Callers must hold s.mu.
func (s *Sampler) statusLocked() Status {
	st := Status{
		Enabled:       s.enabled,
		Authorization: s.authorization,
		FixCount:      s.fixes.Count(),
	}
	if s.lastFix != nil {
		last := *s.lastFix
		st.LastFix = &last
	}

	return st
}

// Subscribe registers fn to be called with a status copy after every
// mutation. The returned id unregisters the subscription via Unsubscribe.
func (s *Sampler) Subscribe(fn func(Status)) int {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	s.subscribers[s.nextSubID] = fn

	return s.nextSubID
}

// Unsubscribe removes the subscription with the given id. Unknown ids are
// ignored.
func (s *Sampler) Unsubscribe(id int) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	delete(s.subscribers, id)
}

// notify delivers st to every subscriber. It runs outside the state lock, so
// a subscriber may call back into the sampler without deadlocking.
func (s *Sampler) notify(st Status) {
	s.subMu.Lock()
	fns := make([]func(Status), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
