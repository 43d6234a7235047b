package alarm

import (
	"testing"
	"time"
)

func waitFire(t *testing.T, s Scheduler, want Name) {
	t.Helper()
	select {
	case got := <-s.Fires():
		if got != want {
			t.Fatalf("fired %s, want %s", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", want)
	}
}

func TestTimerScheduler_Fires(t *testing.T) {
	s := NewTimerScheduler()
	defer s.CancelAll()

	if err := s.Arm(NameWork, time.Now().Add(5*time.Millisecond)); err != nil {
		t.Fatalf("arm: %v", err)
	}
	waitFire(t, s, NameWork)
}

func TestTimerScheduler_PastTimeFiresImmediately(t *testing.T) {
	s := NewTimerScheduler()
	defer s.CancelAll()

	if err := s.Arm(NameBreak, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("arm: %v", err)
	}
	waitFire(t, s, NameBreak)
}

func TestTimerScheduler_RearmReplaces(t *testing.T) {
	s := NewTimerScheduler()
	defer s.CancelAll()

	// First arm far in the future, then replace with a near one. Only
	// one fire must be delivered.
	if err := s.Arm(NameWork, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if err := s.Arm(NameWork, time.Now().Add(5*time.Millisecond)); err != nil {
		t.Fatalf("rearm: %v", err)
	}

	waitFire(t, s, NameWork)

	select {
	case got := <-s.Fires():
		t.Fatalf("unexpected second fire: %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTimerScheduler_Cancel(t *testing.T) {
	s := NewTimerScheduler()
	defer s.CancelAll()

	if err := s.Arm(NameToast, time.Now().Add(10*time.Millisecond)); err != nil {
		t.Fatalf("arm: %v", err)
	}
	s.Cancel(NameToast)

	select {
	case got := <-s.Fires():
		t.Fatalf("cancelled timer fired: %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTimerScheduler_CancelAll(t *testing.T) {
	s := NewTimerScheduler()

	_ = s.Arm(NameWork, time.Now().Add(10*time.Millisecond))
	_ = s.Arm(NameBreak, time.Now().Add(10*time.Millisecond))
	s.CancelAll()

	select {
	case got := <-s.Fires():
		t.Fatalf("cancelled timer fired: %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestManualScheduler(t *testing.T) {
	s := NewManualScheduler()

	at := time.Now().Add(time.Hour)
	if err := s.Arm(NameWork, at); err != nil {
		t.Fatalf("arm: %v", err)
	}

	got, ok := s.ArmedAt(NameWork)
	if !ok || !got.Equal(at) {
		t.Fatalf("ArmedAt = %v, %v", got, ok)
	}

	if s.Fire(NameBreak) {
		t.Fatal("firing an unarmed name must report false")
	}
	if !s.Fire(NameWork) {
		t.Fatal("firing an armed name must report true")
	}
	waitFire(t, s, NameWork)

	if s.ArmedCount() != 0 {
		t.Fatalf("expected disarmed after fire, got %d", s.ArmedCount())
	}
}

func TestManualScheduler_FailArm(t *testing.T) {
	s := NewManualScheduler()
	s.FailArm = true

	if err := s.Arm(NameWork, time.Now()); err == nil {
		t.Fatal("expected arm failure")
	}
	if s.ArmedCount() != 0 {
		t.Fatal("failed arm must not register a wake-up")
	}
}
