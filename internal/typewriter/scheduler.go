package typewriter

import (
	"sync"
	"time"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler arms one-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler runs callbacks on the wall clock.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler is a virtual clock. Callbacks only run from Advance or
// FireNext, on the calling goroutine, in deadline order.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	seq     uint64
	f       func()
	stopped bool
	fired   bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	t.s.removeLocked(t)
	return true
}

// Now is the virtual time elapsed since the scheduler was created.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending is the number of armed timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves the clock forward by d, running every callback that falls due,
// including ones armed by earlier callbacks within the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		t := s.earliestLocked()
		if t == nil || t.at > target {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.fireLocked(t)
		s.mu.Unlock()
		t.f()
	}
}

// FireNext jumps the clock to the earliest pending timer and runs it. It
// reports false when nothing is armed.
func (s *ManualScheduler) FireNext() bool {
	s.mu.Lock()
	t := s.earliestLocked()
	if t == nil {
		s.mu.Unlock()
		return false
	}
	s.fireLocked(t)
	s.mu.Unlock()
	t.f()
	return true
}

func (s *ManualScheduler) fireLocked(t *manualTimer) {
	s.removeLocked(t)
	if t.at > s.now {
		s.now = t.at
	}
	t.fired = true
}

func (s *ManualScheduler) earliestLocked() *manualTimer {
	var best *manualTimer
	for _, t := range s.pending {
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *ManualScheduler) removeLocked(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
