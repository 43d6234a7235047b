// Package profile holds the user's preferences used to steer break
// recommendations and notification timing.
package profile

import (
	"context"
	"time"

	"github.com/abhisek/breet/internal/breaks"
	"github.com/abhisek/breet/internal/store"
)

// ScheduleWindow marks working hours. Notifications outside the window
// are delayed rather than dropped.
type ScheduleWindow struct {
	StartHour int  `json:"startHour"` // 0-23
	EndHour   int  `json:"endHour"`   // 0-23, exclusive
	Weekends  bool `json:"weekends"`  // notify on Sat/Sun
}

// UserProfile is everything the recommender knows about the user.
type UserProfile struct {
	WorkPatterns        []string          `json:"workPatterns,omitempty"`
	HealthConcerns      []string          `json:"healthConcerns,omitempty"`
	PreferredCategories []breaks.Category `json:"preferredCategories,omitempty"`
	Routine             string            `json:"routine,omitempty"`
	Schedule            *ScheduleWindow   `json:"schedule,omitempty"`
}

// Load reads the profile from the shared store. A missing profile is not
// an error; it returns the zero value.
func Load(ctx context.Context, kv *store.KV) (UserProfile, error) {
	var p UserProfile
	_, err := kv.Get(ctx, store.KeyUserProfile, &p)
	return p, err
}

// Save writes the profile to the shared store.
func Save(ctx context.Context, kv *store.KV, p UserProfile) error {
	return kv.Set(ctx, store.KeyUserProfile, p)
}

// ShouldDelayNotification reports whether a notification at t falls
// outside the user's schedule window.
func (p UserProfile) ShouldDelayNotification(t time.Time) bool {
	if p.Schedule == nil {
		return false
	}

	wd := t.Weekday()
	if !p.Schedule.Weekends && (wd == time.Saturday || wd == time.Sunday) {
		return true
	}

	h := t.Hour()
	start, end := p.Schedule.StartHour, p.Schedule.EndHour
	if start == end {
		return false
	}
	if start < end {
		return h < start || h >= end
	}
	// Window wraps midnight, e.g. 22 → 6.
	return h < start && h >= end
}
