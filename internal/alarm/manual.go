package alarm

import (
	"errors"
	"sync"
	"time"
)

// ManualScheduler is a deterministic Scheduler for tests: nothing fires
// until Fire is called explicitly.
type ManualScheduler struct {
	mu    sync.Mutex
	armed map[Name]time.Time
	fires chan Name

	// FailArm makes Arm return an error, for exercising scheduler
	// failure paths.
	FailArm bool
}

// NewManualScheduler creates a ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		armed: make(map[Name]time.Time),
		fires: make(chan Name, 16),
	}
}

func (s *ManualScheduler) Arm(name Name, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailArm {
		return errors.New("arm failed")
	}
	s.armed[name] = at
	return nil
}

func (s *ManualScheduler) Cancel(name Name) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.armed, name)
}

func (s *ManualScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armed = make(map[Name]time.Time)
}

func (s *ManualScheduler) Fires() <-chan Name {
	return s.fires
}

// ArmedAt returns the pending wake-up time for name, if armed.
func (s *ManualScheduler) ArmedAt(name Name) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.armed[name]
	return at, ok
}

// ArmedCount returns how many wake-ups are pending.
func (s *ManualScheduler) ArmedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.armed)
}

// Fire delivers a pending wake-up for name and disarms it.
func (s *ManualScheduler) Fire(name Name) bool {
	s.mu.Lock()
	_, ok := s.armed[name]
	if ok {
		delete(s.armed, name)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.fires <- name
	return true
}
