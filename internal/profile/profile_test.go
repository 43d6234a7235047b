package profile

import (
	"testing"
	"time"
)

func at(weekday time.Weekday, hour int) time.Time {
	// 2026-08-31 is a Monday.
	base := time.Date(2026, 8, 31, hour, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(weekday-time.Monday))
}

func TestShouldDelayNotification_NoSchedule(t *testing.T) {
	var p UserProfile
	if p.ShouldDelayNotification(at(time.Sunday, 3)) {
		t.Fatal("no schedule should never delay")
	}
}

func TestShouldDelayNotification_Window(t *testing.T) {
	p := UserProfile{Schedule: &ScheduleWindow{StartHour: 9, EndHour: 18, Weekends: true}}

	if p.ShouldDelayNotification(at(time.Monday, 10)) {
		t.Fatal("10:00 is inside 9-18")
	}
	if !p.ShouldDelayNotification(at(time.Monday, 8)) {
		t.Fatal("8:00 is outside 9-18")
	}
	if !p.ShouldDelayNotification(at(time.Monday, 18)) {
		t.Fatal("18:00 is outside 9-18 (end exclusive)")
	}
}

func TestShouldDelayNotification_Weekend(t *testing.T) {
	p := UserProfile{Schedule: &ScheduleWindow{StartHour: 9, EndHour: 18}}

	if !p.ShouldDelayNotification(at(time.Saturday, 10)) {
		t.Fatal("weekends disabled should delay on Saturday")
	}

	p.Schedule.Weekends = true
	if p.ShouldDelayNotification(at(time.Saturday, 10)) {
		t.Fatal("weekends enabled should not delay on Saturday")
	}
}

func TestShouldDelayNotification_WrappingWindow(t *testing.T) {
	p := UserProfile{Schedule: &ScheduleWindow{StartHour: 22, EndHour: 6, Weekends: true}}

	if p.ShouldDelayNotification(at(time.Monday, 23)) {
		t.Fatal("23:00 is inside 22-6")
	}
	if p.ShouldDelayNotification(at(time.Monday, 3)) {
		t.Fatal("3:00 is inside 22-6")
	}
	if !p.ShouldDelayNotification(at(time.Monday, 12)) {
		t.Fatal("12:00 is outside 22-6")
	}
}
