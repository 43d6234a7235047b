// Package stats aggregates break history into completion summaries.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/abhisek/breet/internal/store"
)

// Summary is a completion rollup over some slice of history.
type Summary struct {
	Total          int
	Completed      int
	MinutesOnBreak int
}

// CompletionRate returns completed/total in [0,1], or 0 for no data.
func (s Summary) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

func (s *Summary) add(ev store.BreakEvent) {
	s.Total++
	if ev.Completed {
		s.Completed++
		s.MinutesOnBreak += ev.DurationMinutes
	}
}

// DayStats is the rollup for one calendar day.
type DayStats struct {
	Date time.Time
	Summary
}

// CategoryStats is the rollup for one break category.
type CategoryStats struct {
	Category string
	Summary
}

// Service reads break history and produces rollups.
type Service struct {
	events store.EventRepo
}

// NewService creates a stats service over the event repository.
func NewService(events store.EventRepo) *Service {
	return &Service{events: events}
}

// Overall summarizes the whole history.
func (s *Service) Overall(ctx context.Context) (Summary, error) {
	all, err := s.events.AllBreaks(ctx)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, ev := range all {
		sum.add(ev)
	}
	return sum, nil
}

// BreaksToday counts completed breaks since local midnight. Errors
// read as zero.
func (s *Service) BreaksToday(ctx context.Context) int {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	evs, err := s.events.BreaksBetween(ctx, midnight, now)
	if err != nil {
		return 0
	}
	n := 0
	for _, ev := range evs {
		if ev.Completed {
			n++
		}
	}
	return n
}

// Daily summarizes the days in [from, to), oldest first. Days without
// breaks are omitted.
func (s *Service) Daily(ctx context.Context, from, to time.Time) ([]DayStats, error) {
	evs, err := s.events.BreaksBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*DayStats)
	for _, ev := range evs {
		day := localDay(ev.Timestamp)
		d, ok := byDay[day]
		if !ok {
			d = &DayStats{Date: day}
			byDay[day] = d
		}
		d.add(ev)
	}

	out := make([]DayStats, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// localDay returns midnight of ts's local calendar day, the same
// boundary BreaksToday counts against.
func localDay(ts time.Time) time.Time {
	ts = ts.Local()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// ByWeekday summarizes the whole history grouped by weekday.
func (s *Service) ByWeekday(ctx context.Context) (map[time.Weekday]Summary, error) {
	all, err := s.events.AllBreaks(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[time.Weekday]Summary)
	for _, ev := range all {
		sum := out[ev.Timestamp.Weekday()]
		sum.add(ev)
		out[ev.Timestamp.Weekday()] = sum
	}
	return out, nil
}

// ByCategory summarizes the whole history grouped by break category,
// most used first.
func (s *Service) ByCategory(ctx context.Context) ([]CategoryStats, error) {
	all, err := s.events.AllBreaks(ctx)
	if err != nil {
		return nil, err
	}

	byCat := make(map[string]*CategoryStats)
	for _, ev := range all {
		c, ok := byCat[ev.Category]
		if !ok {
			c = &CategoryStats{Category: ev.Category}
			byCat[ev.Category] = c
		}
		c.add(ev)
	}

	out := make([]CategoryStats, 0, len(byCat))
	for _, c := range byCat {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}
