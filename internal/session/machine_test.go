package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/breet/internal/alarm"
	"github.com/abhisek/breet/internal/llm"
	"github.com/abhisek/breet/internal/notify"
	"github.com/abhisek/breet/internal/profile"
	"github.com/abhisek/breet/internal/recommend"
	"github.com/abhisek/breet/internal/selection"
	"github.com/abhisek/breet/internal/store"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	m     *Machine
	sched *alarm.ManualScheduler
	store *store.Store
	clock *fakeClock
	rec   *notify.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	clk := newFakeClock()
	sched := alarm.NewManualScheduler()
	recorder := &notify.Recorder{}

	recSvc := recommend.NewService(llm.NewMockProvider(), s.KV(), s.EventRepo(), 50*time.Millisecond)
	sel := selection.NewManager(s.KV(), recSvc)

	m := New(s.KV(), s.EventRepo(), sched, recSvc, sel, recorder)
	m.now = clk.Now

	return &fixture{m: m, sched: sched, store: s, clock: clk, rec: recorder}
}

func (f *fixture) mustDispatch(t *testing.T, intent Intent) Result {
	t.Helper()
	res := f.m.Dispatch(context.Background(), intent)
	if !res.OK {
		t.Fatalf("%T failed: %s", intent, res.Error)
	}
	return res
}

func (f *fixture) startWork(t *testing.T, workMin, breakMin int) {
	t.Helper()
	res := f.mustDispatch(t, SelectBreakBeforeWork{WorkMinutes: workMin, BreakMinutes: breakMin})
	f.mustDispatch(t, StartTimer{Candidate: res.Recommendation.Top})
}

func (f *fixture) historyCount(t *testing.T) int {
	t.Helper()
	evs, err := f.store.EventRepo().AllBreaks(context.Background())
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	return len(evs)
}

func TestSelectBreakBeforeWork(t *testing.T) {
	f := newFixture(t)

	res := f.mustDispatch(t, SelectBreakBeforeWork{Mode: "focus", WorkMinutes: 25, BreakMinutes: 5})

	if got := f.m.State().Phase; got != PhaseSelecting {
		t.Fatalf("phase = %s, want selecting", got)
	}
	if res.Recommendation == nil || len(res.Recommendation.Candidates) != recommend.CandidateCount {
		t.Fatalf("expected %d candidates, got %+v", recommend.CandidateCount, res.Recommendation)
	}

	st := f.m.State()
	if st.WorkDurationMinutes != 25 || st.BreakDurationMinutes != 5 {
		t.Fatalf("durations not recorded: %+v", st)
	}

	if res := f.m.Dispatch(context.Background(), SelectBreakBeforeWork{WorkMinutes: 0, BreakMinutes: 5}); res.OK {
		t.Fatal("zero work minutes must be rejected")
	}
}

func TestStartTimer_ArmsWorkWakeup(t *testing.T) {
	f := newFixture(t)
	f.startWork(t, 25, 5)

	st := f.m.State()
	if st.Phase != PhaseWork {
		t.Fatalf("phase = %s, want work", st.Phase)
	}
	if st.EndTs-st.StartTs != 25*60*1000 {
		t.Fatalf("interval %dms, want 25min", st.EndTs-st.StartTs)
	}

	at, ok := f.sched.ArmedAt(alarm.NameWork)
	if !ok {
		t.Fatal("work wake-up not armed")
	}
	if want := f.clock.Now().Add(25 * time.Minute); !at.Equal(want) {
		t.Fatalf("armed at %v, want %v", at, want)
	}

	if res := f.m.Dispatch(context.Background(), StartTimer{}); res.OK {
		t.Fatal("starting while already working must be rejected")
	}
}

func TestFullCycle_WorkToastBreakIdle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.startWork(t, 25, 5)

	f.clock.Advance(25 * time.Minute)
	f.m.HandleFire(ctx, alarm.NameWork)

	if got := f.m.State().Phase; got != PhaseWorkEnding {
		t.Fatalf("after work fire: phase = %s, want work_ending", got)
	}
	if len(f.rec.Sounds) != 1 || f.rec.Sounds[0] != notify.SoundWorkEnd {
		t.Fatalf("expected work end sound, got %v", f.rec.Sounds)
	}
	if at, ok := f.sched.ArmedAt(alarm.NameToast); !ok || !at.Equal(f.clock.Now().Add(10*time.Second)) {
		t.Fatalf("toast not armed 10s out: %v %v", at, ok)
	}

	f.clock.Advance(10 * time.Second)
	f.m.HandleFire(ctx, alarm.NameToast)

	st := f.m.State()
	if st.Phase != PhaseBreak {
		t.Fatalf("after toast fire: phase = %s, want break", st.Phase)
	}
	if want := millis(f.clock.Now().Add(5 * time.Minute)); st.EndTs != want {
		t.Fatalf("break end = %d, want %d", st.EndTs, want)
	}

	f.clock.Advance(5 * time.Minute)
	f.m.HandleFire(ctx, alarm.NameBreak)

	if got := f.m.State().Phase; got != PhaseIdle {
		t.Fatalf("after break fire: phase = %s, want idle", got)
	}

	evs, err := f.store.EventRepo().AllBreaks(ctx)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(evs) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(evs))
	}
	ev := evs[0]
	if !ev.Completed {
		t.Fatal("natural break end must record completed")
	}
	if ev.Label != "25/5" {
		t.Fatalf("label = %q, want 25/5", ev.Label)
	}
	if ev.WorkDurationMinutes != 25 || ev.DurationMinutes != 5 {
		t.Fatalf("durations wrong: %+v", ev.BreakEventData)
	}
	if ev.CorrelationID == "" {
		t.Fatal("expected selection correlation id")
	}
}

func TestNotificationsSuppressedOutsideSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The fixture clock sits at 09:00; working hours start at 10:00.
	err := profile.Save(ctx, f.store.KV(), profile.UserProfile{
		Schedule: &profile.ScheduleWindow{StartHour: 10, EndHour: 18},
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}

	f.startWork(t, 25, 5)
	f.clock.Advance(25 * time.Minute)
	f.m.HandleFire(ctx, alarm.NameWork)

	if got := f.m.State().Phase; got != PhaseWorkEnding {
		t.Fatalf("phase = %s, want work_ending despite quiet hours", got)
	}
	if len(f.rec.Notifications) != 0 || len(f.rec.Sounds) != 0 {
		t.Fatalf("expected silence outside the window, got %v %v", f.rec.Notifications, f.rec.Sounds)
	}

	// Inside the window the same fire notifies.
	f.clock.Advance(time.Hour) // past 10:00 now
	f.clock.Advance(10 * time.Second)
	f.m.HandleFire(ctx, alarm.NameToast)
	f.clock.Advance(5 * time.Minute)
	f.m.HandleFire(ctx, alarm.NameBreak)

	if len(f.rec.Notifications) != 1 {
		t.Fatalf("expected break-end notification inside the window, got %v", f.rec.Notifications)
	}
	if len(f.rec.Sounds) != 1 || f.rec.Sounds[0] != notify.SoundBreakEnd {
		t.Fatalf("expected break end sound, got %v", f.rec.Sounds)
	}
}

func TestPauseResume_Arithmetic(t *testing.T) {
	f := newFixture(t)
	f.startWork(t, 5, 5) // 300s work interval

	f.clock.Advance(90 * time.Second)
	f.mustDispatch(t, PauseTimer{})

	st := f.m.State()
	if st.Phase != PhasePaused || st.PausedPhase != PhaseWork {
		t.Fatalf("pause state wrong: %+v", st)
	}
	if st.RemainingMs != 210000 {
		t.Fatalf("remaining = %dms, want 210000", st.RemainingMs)
	}
	if _, armed := f.sched.ArmedAt(alarm.NameWork); armed {
		t.Fatal("work wake-up not cancelled")
	}

	f.clock.Advance(time.Hour) // paused time does not count
	f.mustDispatch(t, ResumeTimer{})

	st = f.m.State()
	if st.Phase != PhaseWork {
		t.Fatalf("resume phase = %s, want work", st.Phase)
	}
	if want := millis(f.clock.Now()) + 210000; st.EndTs != want {
		t.Fatalf("resumed end = %d, want %d", st.EndTs, want)
	}
	if at, ok := f.sched.ArmedAt(alarm.NameWork); !ok || !at.Equal(f.clock.Now().Add(210*time.Second)) {
		t.Fatalf("work wake-up not re-armed with remaining time: %v %v", at, ok)
	}
}

func TestPauseAfterEndIsClampedToZero(t *testing.T) {
	f := newFixture(t)
	f.startWork(t, 5, 5)

	f.clock.Advance(10 * time.Minute)
	f.mustDispatch(t, PauseTimer{})

	if got := f.m.State().RemainingMs; got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}
}

func TestPauseResume_NoOpOutsideValidPhases(t *testing.T) {
	f := newFixture(t)

	f.mustDispatch(t, PauseTimer{})
	if got := f.m.State().Phase; got != PhaseIdle {
		t.Fatalf("pause while idle changed phase to %s", got)
	}

	f.mustDispatch(t, ResumeTimer{})
	if got := f.m.State().Phase; got != PhaseIdle {
		t.Fatalf("resume while idle changed phase to %s", got)
	}
}

func TestQuota_LimitReached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustDispatch(t, SelectBreakBeforeWork{WorkMinutes: 25, BreakMinutes: 5})

	for i := 1; i <= selection.MaxOther; i++ {
		res := f.m.Dispatch(ctx, RequestNewBreaks{})
		if !res.OK {
			t.Fatalf("request %d failed: %s", i, res.Error)
		}
		if len(res.Recommendation.Candidates) != recommend.CandidateCount {
			t.Fatalf("request %d: %d candidates", i, len(res.Recommendation.Candidates))
		}
	}

	res := f.m.Dispatch(ctx, RequestNewBreaks{})
	if res.OK || !res.LimitReached {
		t.Fatalf("expected limit_reached, got %+v", res)
	}
}

func TestRequestNewBreaks_RecordsChangedDuration(t *testing.T) {
	f := newFixture(t)
	f.mustDispatch(t, SelectBreakBeforeWork{WorkMinutes: 25, BreakMinutes: 5})

	res := f.mustDispatch(t, RequestNewBreaks{BreakMinutes: 10})
	for _, c := range res.Recommendation.Candidates {
		if c.Minutes != 10 {
			t.Fatalf("candidate minutes %d, want 10", c.Minutes)
		}
	}
	if got := f.m.State().BreakDurationMinutes; got != 10 {
		t.Fatalf("break duration %d, want 10", got)
	}
}

func TestToastWithoutConfirmedCandidateWaits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.startWork(t, 25, 5)

	f.clock.Advance(25 * time.Minute)
	f.m.HandleFire(ctx, alarm.NameWork)

	// Drop the confirmed candidate before the toast fires.
	if err := f.store.KV().Remove(ctx, store.KeyPendingBreak); err != nil {
		t.Fatalf("remove pending: %v", err)
	}

	f.clock.Advance(10 * time.Second)
	f.m.HandleFire(ctx, alarm.NameToast)

	if got := f.m.State().Phase; got != PhaseWorkEnding {
		t.Fatalf("phase = %s, want work_ending awaiting user choice", got)
	}

	// An explicit choice starts the break.
	cand := recommend.Pick(1, 5, nil, nil, nil)[0]
	f.mustDispatch(t, StartBreakTimer{Candidate: &cand})
	if got := f.m.State().Phase; got != PhaseBreak {
		t.Fatalf("phase = %s, want break", got)
	}
}

func TestBreakCompleted_WritesEntryOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.startWork(t, 25, 5)

	f.clock.Advance(25 * time.Minute)
	f.m.HandleFire(ctx, alarm.NameWork)
	f.clock.Advance(10 * time.Second)
	f.m.HandleFire(ctx, alarm.NameToast)

	f.clock.Advance(2 * time.Minute)
	f.mustDispatch(t, BreakCompleted{Completed: true, ActualMinutes: 2})

	if n := f.historyCount(t); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}
	evs, _ := f.store.EventRepo().AllBreaks(ctx)
	if evs[0].DurationMinutes != 2 {
		t.Fatalf("actual minutes not recorded: %d", evs[0].DurationMinutes)
	}

	// Stale break fire after completion must not add a second entry.
	f.m.HandleFire(ctx, alarm.NameBreak)
	if n := f.historyCount(t); n != 1 {
		t.Fatalf("stale fire duplicated history: %d entries", n)
	}

	if res := f.m.Dispatch(ctx, BreakCompleted{Completed: true}); res.OK {
		t.Fatal("completing with no break in flight must be rejected")
	}
}

func TestStop_DuringBreakRecordsSkipped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.startWork(t, 25, 5)

	f.clock.Advance(25 * time.Minute)
	f.m.HandleFire(ctx, alarm.NameWork)
	f.clock.Advance(10 * time.Second)
	f.m.HandleFire(ctx, alarm.NameToast)

	f.mustDispatch(t, StopTimer{})

	if got := f.m.State().Phase; got != PhaseIdle {
		t.Fatalf("phase = %s, want idle", got)
	}
	evs, _ := f.store.EventRepo().AllBreaks(ctx)
	if len(evs) != 1 || evs[0].Completed {
		t.Fatalf("expected one uncompleted entry, got %+v", evs)
	}
}

func TestStop_DuringWorkLeavesNoHistory(t *testing.T) {
	f := newFixture(t)
	f.startWork(t, 25, 5)

	f.mustDispatch(t, StopTimer{})

	if n := f.historyCount(t); n != 0 {
		t.Fatalf("expected no history, got %d entries", n)
	}
	if got := f.m.State().Phase; got != PhaseIdle {
		t.Fatalf("phase = %s, want idle", got)
	}
}

func TestRotatePendingBreak_CyclesCandidateSet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.mustDispatch(t, SelectBreakBeforeWork{WorkMinutes: 25, BreakMinutes: 5})
	cands := res.Recommendation.Candidates
	f.mustDispatch(t, StartTimer{Candidate: cands[0]})

	pending := func() recommend.Candidate {
		t.Helper()
		var c recommend.Candidate
		if ok, err := f.store.KV().Get(ctx, store.KeyPendingBreak, &c); err != nil || !ok {
			t.Fatalf("read pending break: ok=%v err=%v", ok, err)
		}
		return c
	}

	f.mustDispatch(t, RotatePendingBreak{})
	if got := pending().ID; got != cands[1].ID {
		t.Fatalf("pending = %s, want %s", got, cands[1].ID)
	}
	if got := pending().Minutes; got != 5 {
		t.Fatalf("rotated minutes = %d, want the configured break duration", got)
	}

	// Two more rotations wrap back to the original choice.
	f.mustDispatch(t, RotatePendingBreak{})
	f.mustDispatch(t, RotatePendingBreak{})
	if got := pending().ID; got != cands[0].ID {
		t.Fatalf("pending = %s, want wrap to %s", got, cands[0].ID)
	}
}

func TestRotatePendingBreak_RejectedWhenIdle(t *testing.T) {
	f := newFixture(t)

	res := f.m.Dispatch(context.Background(), RotatePendingBreak{})
	if res.OK {
		t.Fatal("expected rotation to fail with no session")
	}
}

func TestSchedulerFailureDoesNotAdvancePhase(t *testing.T) {
	f := newFixture(t)
	res := f.mustDispatch(t, SelectBreakBeforeWork{WorkMinutes: 25, BreakMinutes: 5})

	f.sched.FailArm = true
	start := f.m.Dispatch(context.Background(), StartTimer{Candidate: res.Recommendation.Top})
	if start.OK {
		t.Fatal("expected failure when arm fails")
	}
	if got := f.m.State().Phase; got != PhaseSelecting {
		t.Fatalf("phase advanced to %s despite scheduler failure", got)
	}

	// The next user action retries cleanly.
	f.sched.FailArm = false
	f.mustDispatch(t, StartTimer{Candidate: res.Recommendation.Top})
	if got := f.m.State().Phase; got != PhaseWork {
		t.Fatalf("retry did not start work: %s", got)
	}
}

func TestStaleFiresIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.m.HandleFire(ctx, alarm.NameWork)
	f.m.HandleFire(ctx, alarm.NameBreak)
	f.m.HandleFire(ctx, alarm.NameToast)

	if got := f.m.State().Phase; got != PhaseIdle {
		t.Fatalf("stale fires changed phase to %s", got)
	}
	if n := f.historyCount(t); n != 0 {
		t.Fatalf("stale fires wrote history: %d", n)
	}
}

func TestDailyRefreshRearms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.m.armDailyRefresh()
	at, ok := f.sched.ArmedAt(alarm.NameDailyRefresh)
	if !ok {
		t.Fatal("daily refresh not armed")
	}
	wantFirst := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	if !at.Equal(wantFirst) {
		t.Fatalf("armed at %v, want %v", at, wantFirst)
	}

	f.clock.Advance(24 * time.Hour)
	f.sched.Fire(alarm.NameDailyRefresh)
	<-f.sched.Fires()
	f.m.HandleFire(ctx, alarm.NameDailyRefresh)

	at, ok = f.sched.ArmedAt(alarm.NameDailyRefresh)
	if !ok {
		t.Fatal("daily refresh not re-armed")
	}
	if want := wantFirst.AddDate(0, 0, 1); !at.Equal(want) {
		t.Fatalf("re-armed at %v, want %v", at, want)
	}

	// Fallback copy lands in the store even with no provider response.
	var quote string
	if ok, _ := f.store.KV().Get(ctx, store.KeyDailyQuote, &quote); !ok || quote == "" {
		t.Fatalf("daily quote not written: %q", quote)
	}
}

func TestRestartResetsNonIdlePhase(t *testing.T) {
	f := newFixture(t)
	f.startWork(t, 25, 5)

	// A second machine on the same store simulates a restart mid-work.
	m2 := New(f.store.KV(), f.store.EventRepo(), alarm.NewManualScheduler(), nil, nil, notify.Nop{})
	st := m2.State()
	if st.Phase != PhaseIdle {
		t.Fatalf("restart phase = %s, want idle", st.Phase)
	}
	if st.WorkDurationMinutes != 25 || st.BreakDurationMinutes != 5 {
		t.Fatalf("configured durations lost: %+v", st)
	}
}
