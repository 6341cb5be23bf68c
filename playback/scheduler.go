// SPDX-License-Identifier: MIT

package playback

import (
	"sync"
	"time"
)

// Cancel stops a scheduled callback if it has not run yet.
type Cancel func()

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Cancel
}

// RealTime returns a Scheduler backed by time.AfterFunc.
func RealTime() Scheduler { return realTime{} }

type realTime struct{}

func (realTime) AfterFunc(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Manual is a Scheduler driven by explicit Advance calls, for hosts with
// their own frame clock and for tests. The zero value is ready to use.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	nextID uint64
	timers []*manualTimer
}

type manualTimer struct {
	id uint64
	at time.Duration
	fn func()
}

// AfterFunc schedules fn at Now()+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.timers = append(m.timers, &manualTimer{id: id, at: m.now + d, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.remove(id)
	}
}

// Advance moves the clock forward by d and runs every callback that
// becomes due, earliest first, including ones scheduled by callbacks.
// It returns how many callbacks ran.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	ran := 0
	for {
		next := m.earliest(target)
		if next == nil {
			break
		}
		m.remove(next.id)
		m.now = next.at
		m.mu.Unlock()
		next.fn()
		ran++
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()

	return ran
}

// Pending returns the number of callbacks not yet run or cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.timers)
}

// Now returns the manual clock.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

func (m *Manual) earliest(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.at > limit {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.id < best.id) {
			best = t
		}
	}

	return best
}

func (m *Manual) remove(id uint64) {
	for i, t := range m.timers {
		if t.id == id {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
