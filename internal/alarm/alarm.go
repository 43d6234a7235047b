// Package alarm schedules named wake-ups at absolute times. One wake-up
// per logical name: arming a name again replaces any pending wake-up
// for that name, so a timer can never fire twice.
package alarm

import (
	"sync"
	"time"
)

// Name identifies a logical timer.
type Name string

const (
	NameWork         Name = "WORK"
	NameBreak        Name = "BREAK"
	NameToast        Name = "TOAST"
	NameDailyRefresh Name = "DAILY_REFRESH"
)

// Scheduler arms and cancels named wake-ups. Fired names are delivered
// on the Fires channel.
type Scheduler interface {
	// Arm schedules a wake-up for name at the absolute time at,
	// replacing any pending wake-up with the same name.
	Arm(name Name, at time.Time) error

	// Cancel drops the pending wake-up for name, if any.
	Cancel(name Name)

	// CancelAll drops every pending wake-up.
	CancelAll()

	// Fires delivers fired names. The channel is never closed while the
	// scheduler is in use.
	Fires() <-chan Name
}

// TimerScheduler is the production Scheduler backed by time.Timer.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[Name]*time.Timer
	fires  chan Name
}

// NewTimerScheduler creates a Scheduler driven by wall-clock timers.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[Name]*time.Timer),
		fires:  make(chan Name, 16),
	}
}

func (s *TimerScheduler) Arm(name Name, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[name]; ok {
		old.Stop()
	}

	d := time.Until(at)
	if d < 0 {
		d = 0
	}

	s.timers[name] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, name)
		s.mu.Unlock()

		// A full channel means the consumer is gone; dropping beats
		// blocking the timer goroutine forever.
		select {
		case s.fires <- name:
		default:
		}
	})
	return nil
}

func (s *TimerScheduler) Cancel(name Name) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[name]; ok {
		t.Stop()
		delete(s.timers, name)
	}
}

func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, t := range s.timers {
		t.Stop()
		delete(s.timers, name)
	}
}

func (s *TimerScheduler) Fires() <-chan Name {
	return s.fires
}
