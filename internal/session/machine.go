package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abhisek/breet/internal/alarm"
	"github.com/abhisek/breet/internal/notify"
	"github.com/abhisek/breet/internal/profile"
	"github.com/abhisek/breet/internal/recommend"
	"github.com/abhisek/breet/internal/selection"
	"github.com/abhisek/breet/internal/store"
)

// pendingBreak is the confirmed candidate awaiting its history entry.
// Clearing it right after the entry is written is the write-once guard.
type pendingBreak struct {
	recommend.Candidate
	Source        recommend.Source `json:"source,omitempty"`
	CorrelationID string           `json:"correlationId,omitempty"`
}

// Machine is the session state machine. All phase transitions happen
// inside its handlers, one at a time; the run loop only feeds it
// scheduler fires.
type Machine struct {
	mu       sync.Mutex
	kv       *store.KV
	events   store.EventRepo
	sched    alarm.Scheduler
	rec      *recommend.Service
	sel      *selection.Manager
	notifier notify.Notifier
	now      func() time.Time

	state         State
	lastSource    recommend.Source
	correlationID string
}

// New creates a Machine. Persisted state is reloaded, but a non-idle
// phase resets to idle: armed wake-ups do not survive a restart.
func New(kv *store.KV, events store.EventRepo, sched alarm.Scheduler, rec *recommend.Service, sel *selection.Manager, notifier notify.Notifier) *Machine {
	m := &Machine{
		kv:       kv,
		events:   events,
		sched:    sched,
		rec:      rec,
		sel:      sel,
		notifier: notifier,
		now:      time.Now,
		state:    State{Phase: PhaseIdle},
	}

	ctx := context.Background()
	var saved State
	if ok, err := kv.Get(ctx, store.KeySessionState, &saved); err == nil && ok {
		if saved.Phase == PhaseIdle {
			m.state = saved
		} else {
			m.state = State{
				Phase:                PhaseIdle,
				Mode:                 saved.Mode,
				WorkDurationMinutes:  saved.WorkDurationMinutes,
				BreakDurationMinutes: saved.BreakDurationMinutes,
			}
			_ = kv.Set(ctx, store.KeySessionState, m.state)
		}
	}

	return m
}

// Run feeds scheduler fires into the machine until ctx is cancelled.
func (m *Machine) Run(ctx context.Context) {
	m.armDailyRefresh()

	for {
		select {
		case <-ctx.Done():
			m.sched.CancelAll()
			return
		case name := <-m.sched.Fires():
			m.HandleFire(ctx, name)
		}
	}
}

// State returns a copy of the current session state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Dispatch processes one intent and returns its result. Any panic in a
// handler is converted into a failure result so the run loop survives.
func (m *Machine) Dispatch(ctx context.Context, intent Intent) (res Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Sprintf("internal error: %v", r))
		}
	}()

	switch it := intent.(type) {
	case SelectBreakBeforeWork:
		return m.selectBreakBeforeWork(ctx, it)
	case StartTimer:
		return m.startTimer(ctx, it)
	case PauseTimer:
		return m.pause(ctx)
	case ResumeTimer:
		return m.resume(ctx)
	case StopTimer:
		return m.stop(ctx)
	case RequestNewBreaks:
		return m.requestNewBreaks(ctx, it)
	case RotatePendingBreak:
		return m.rotatePendingBreak(ctx)
	case StartBreakTimer:
		return m.startBreakTimer(ctx, it)
	case BreakCompleted:
		return m.breakCompleted(ctx, it)
	default:
		return fail(fmt.Sprintf("unknown intent %T", intent))
	}
}

// HandleFire processes one scheduler wake-up. Fires for phases the
// machine is no longer in are stale and ignored.
func (m *Machine) HandleFire(ctx context.Context, name alarm.Name) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "warning: wake-up %s panicked: %v\n", name, r)
		}
	}()

	switch name {
	case alarm.NameWork:
		m.workEnds(ctx)
	case alarm.NameBreak:
		m.breakEnds(ctx)
	case alarm.NameToast:
		m.toastEnds(ctx)
	case alarm.NameDailyRefresh:
		m.rec.RefreshDaily(ctx)
		m.armDailyRefresh()
	}
}

func (m *Machine) selectBreakBeforeWork(ctx context.Context, it SelectBreakBeforeWork) Result {
	if m.state.Phase != PhaseIdle && m.state.Phase != PhaseSelecting {
		return fail(fmt.Sprintf("cannot select a break while %s", m.state.Phase))
	}
	if it.WorkMinutes <= 0 || it.BreakMinutes <= 0 {
		return fail("work and break minutes must be positive")
	}

	sess, rec, err := m.sel.Begin(ctx, it.Mode, it.WorkMinutes, it.BreakMinutes)
	if err != nil {
		return fail(fmt.Sprintf("start selection: %v", err))
	}

	next := State{
		Phase:                PhaseSelecting,
		Mode:                 it.Mode,
		WorkDurationMinutes:  it.WorkMinutes,
		BreakDurationMinutes: it.BreakMinutes,
	}
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		return fail(fmt.Sprintf("persist state: %v", err))
	}

	m.state = next
	m.lastSource = rec.Source
	m.correlationID = sess.ID
	return Result{OK: true, Recommendation: &rec}
}

func (m *Machine) startTimer(ctx context.Context, it StartTimer) Result {
	if m.state.Phase != PhaseSelecting {
		return fail(fmt.Sprintf("cannot start work while %s", m.state.Phase))
	}

	cand := it.Candidate
	cand.Minutes = m.state.BreakDurationMinutes

	pb := pendingBreak{
		Candidate:     cand,
		Source:        m.lastSource,
		CorrelationID: m.correlationID,
	}
	if err := m.kv.Set(ctx, store.KeyPendingBreak, pb); err != nil {
		return fail(fmt.Sprintf("persist chosen break: %v", err))
	}

	m.cancelTimers()
	now := m.now()
	end := now.Add(time.Duration(m.state.WorkDurationMinutes) * time.Minute)
	if err := m.sched.Arm(alarm.NameWork, end); err != nil {
		return fail(fmt.Sprintf("arm work timer: %v", err))
	}

	next := m.state
	next.Phase = PhaseWork
	next.StartTs = millis(now)
	next.EndTs = millis(end)
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		m.sched.Cancel(alarm.NameWork)
		return fail(fmt.Sprintf("persist state: %v", err))
	}

	m.state = next
	// The selection session is done once work starts.
	if err := m.sel.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clear selection session: %v\n", err)
	}
	return ok()
}

func (m *Machine) pause(ctx context.Context) Result {
	if m.state.Phase != PhaseWork && m.state.Phase != PhaseBreak {
		// Pausing anything else is a silent no-op.
		return ok()
	}

	now := millis(m.now())
	remaining := m.state.EndTs - now
	if remaining < 0 {
		remaining = 0
	}

	name := alarm.NameWork
	if m.state.Phase == PhaseBreak {
		name = alarm.NameBreak
	}
	m.sched.Cancel(name)

	next := m.state
	next.PausedPhase = next.Phase
	next.Phase = PhasePaused
	next.PausedAt = now
	next.RemainingMs = remaining
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		// Best effort restore of the cancelled wake-up.
		_ = m.sched.Arm(name, time.UnixMilli(m.state.EndTs))
		return fail(fmt.Sprintf("persist state: %v", err))
	}

	m.state = next
	return ok()
}

func (m *Machine) resume(ctx context.Context) Result {
	if m.state.Phase != PhasePaused {
		return ok()
	}

	name := alarm.NameWork
	if m.state.PausedPhase == PhaseBreak {
		name = alarm.NameBreak
	}

	now := m.now()
	end := now.Add(time.Duration(m.state.RemainingMs) * time.Millisecond)
	if err := m.sched.Arm(name, end); err != nil {
		return fail(fmt.Sprintf("arm %s timer: %v", name, err))
	}

	next := m.state
	next.Phase = next.PausedPhase
	next.EndTs = millis(end)
	next.PausedAt = 0
	next.RemainingMs = 0
	next.PausedPhase = ""
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		m.sched.Cancel(name)
		return fail(fmt.Sprintf("persist state: %v", err))
	}

	m.state = next
	return ok()
}

func (m *Machine) stop(ctx context.Context) Result {
	if m.state.Phase == PhaseIdle {
		return ok()
	}

	m.sched.CancelAll()

	// A break that actually started gets an uncompleted entry; a break
	// that never began leaves no trace.
	breakStarted := m.state.Phase == PhaseBreak ||
		(m.state.Phase == PhasePaused && m.state.PausedPhase == PhaseBreak)
	if breakStarted {
		if err := m.appendHistory(ctx, false, 0); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record skipped break: %v\n", err)
		}
	}

	if err := m.kv.Remove(ctx, store.KeyPendingBreak, store.KeyPendingCandidates); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clear pending break: %v\n", err)
	}
	if err := m.sel.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clear selection session: %v\n", err)
	}

	next := State{
		Phase:                PhaseIdle,
		Mode:                 m.state.Mode,
		WorkDurationMinutes:  m.state.WorkDurationMinutes,
		BreakDurationMinutes: m.state.BreakDurationMinutes,
	}
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		return fail(fmt.Sprintf("persist state: %v", err))
	}

	m.state = next
	m.armDailyRefresh()
	return ok()
}

func (m *Machine) requestNewBreaks(ctx context.Context, it RequestNewBreaks) Result {
	rec, err := m.sel.RequestMore(ctx, it.BreakMinutes, it.ExcludeIDs)
	if errors.Is(err, selection.ErrLimitReached) {
		return Result{Error: "limit_reached", LimitReached: true}
	}
	if err != nil {
		return fail(fmt.Sprintf("request new breaks: %v", err))
	}

	m.lastSource = rec.Source
	if it.BreakMinutes > 0 && it.BreakMinutes != m.state.BreakDurationMinutes {
		next := m.state
		next.BreakDurationMinutes = it.BreakMinutes
		if err := m.kv.Set(ctx, store.KeySessionState, next); err == nil {
			m.state = next
		}
	}
	return Result{OK: true, Recommendation: &rec}
}

func (m *Machine) rotatePendingBreak(ctx context.Context) Result {
	switch m.state.Phase {
	case PhaseSelecting, PhaseWork, PhaseWorkEnding:
	default:
		return fail(fmt.Sprintf("cannot swap the break while %s", m.state.Phase))
	}

	var cands []recommend.Candidate
	found, err := m.kv.Get(ctx, store.KeyPendingCandidates, &cands)
	if err != nil {
		return fail(fmt.Sprintf("read candidate set: %v", err))
	}
	if !found || len(cands) == 0 {
		return fail("no candidate set to rotate")
	}

	var pb pendingBreak
	if _, err := m.kv.Get(ctx, store.KeyPendingBreak, &pb); err != nil {
		return fail(fmt.Sprintf("read chosen break: %v", err))
	}

	idx := 0
	for i, c := range cands {
		if c.ID == pb.ID {
			idx = i
			break
		}
	}

	cand := cands[(idx+1)%len(cands)]
	if m.state.BreakDurationMinutes > 0 {
		cand.Minutes = m.state.BreakDurationMinutes
	}

	next := pendingBreak{
		Candidate:     cand,
		Source:        pb.Source,
		CorrelationID: pb.CorrelationID,
	}
	if next.Source == "" {
		next.Source = m.lastSource
	}
	if next.CorrelationID == "" {
		next.CorrelationID = m.correlationID
	}
	if err := m.kv.Set(ctx, store.KeyPendingBreak, next); err != nil {
		return fail(fmt.Sprintf("persist chosen break: %v", err))
	}
	return ok()
}

func (m *Machine) startBreakTimer(ctx context.Context, it StartBreakTimer) Result {
	if m.state.Phase != PhaseWorkEnding {
		return fail(fmt.Sprintf("cannot start a break while %s", m.state.Phase))
	}

	if it.Candidate != nil {
		cand := *it.Candidate
		cand.Minutes = m.state.BreakDurationMinutes
		pb := pendingBreak{
			Candidate:     cand,
			Source:        m.lastSource,
			CorrelationID: m.correlationID,
		}
		if err := m.kv.Set(ctx, store.KeyPendingBreak, pb); err != nil {
			return fail(fmt.Sprintf("persist chosen break: %v", err))
		}
	} else {
		var pb pendingBreak
		found, err := m.kv.Get(ctx, store.KeyPendingBreak, &pb)
		if err != nil {
			return fail(fmt.Sprintf("read chosen break: %v", err))
		}
		if !found {
			return fail("no break chosen")
		}
	}

	m.sched.Cancel(alarm.NameToast)
	return m.enterBreak(ctx)
}

// enterBreak arms the break wake-up and moves to BREAK. Callers hold
// the mutex.
func (m *Machine) enterBreak(ctx context.Context) Result {
	now := m.now()
	end := now.Add(time.Duration(m.state.BreakDurationMinutes) * time.Minute)
	if err := m.sched.Arm(alarm.NameBreak, end); err != nil {
		return fail(fmt.Sprintf("arm break timer: %v", err))
	}

	next := m.state
	next.Phase = PhaseBreak
	next.StartTs = millis(now)
	next.EndTs = millis(end)
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		m.sched.Cancel(alarm.NameBreak)
		return fail(fmt.Sprintf("persist state: %v", err))
	}

	m.state = next
	return ok()
}

func (m *Machine) breakCompleted(ctx context.Context, it BreakCompleted) Result {
	inBreak := m.state.Phase == PhaseBreak ||
		(m.state.Phase == PhasePaused && m.state.PausedPhase == PhaseBreak)
	if !inBreak && m.state.Phase != PhaseWorkEnding {
		return fail(fmt.Sprintf("no break to complete while %s", m.state.Phase))
	}

	m.sched.Cancel(alarm.NameBreak)
	m.sched.Cancel(alarm.NameToast)

	if err := m.appendHistory(ctx, it.Completed, it.ActualMinutes); err != nil {
		return fail(fmt.Sprintf("record break: %v", err))
	}

	next := State{
		Phase:                PhaseIdle,
		Mode:                 m.state.Mode,
		WorkDurationMinutes:  m.state.WorkDurationMinutes,
		BreakDurationMinutes: m.state.BreakDurationMinutes,
	}
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		return fail(fmt.Sprintf("persist state: %v", err))
	}

	m.state = next
	return ok()
}

func (m *Machine) workEnds(ctx context.Context) {
	if m.state.Phase != PhaseWork {
		return
	}

	m.notifyUser(ctx, "Work finished", "Time for a break", notify.SoundWorkEnd)

	now := m.now()
	if err := m.kv.Set(ctx, store.KeyLastWorkEnd, millis(now)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record work end: %v\n", err)
	}

	if err := m.sched.Arm(alarm.NameToast, now.Add(toastDelay)); err != nil {
		// Without the toast the phase cannot advance safely; the next
		// user action retries.
		fmt.Fprintf(os.Stderr, "warning: arm toast: %v\n", err)
		return
	}

	next := m.state
	next.Phase = PhaseWorkEnding
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		m.sched.Cancel(alarm.NameToast)
		fmt.Fprintf(os.Stderr, "warning: persist state: %v\n", err)
		return
	}
	m.state = next
}

func (m *Machine) toastEnds(ctx context.Context) {
	if m.state.Phase != PhaseWorkEnding {
		return
	}

	var pb pendingBreak
	found, err := m.kv.Get(ctx, store.KeyPendingBreak, &pb)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read chosen break: %v\n", err)
		return
	}
	if !found {
		// No confirmed candidate: wait for an explicit user choice.
		return
	}

	if res := m.enterBreak(ctx); !res.OK {
		fmt.Fprintf(os.Stderr, "warning: start break: %s\n", res.Error)
	}
}

func (m *Machine) breakEnds(ctx context.Context) {
	if m.state.Phase != PhaseBreak {
		return
	}

	m.notifyUser(ctx, "Break finished", "Back to it", notify.SoundBreakEnd)

	if err := m.appendHistory(ctx, true, 0); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record break: %v\n", err)
	}

	next := State{
		Phase:                PhaseIdle,
		Mode:                 m.state.Mode,
		WorkDurationMinutes:  m.state.WorkDurationMinutes,
		BreakDurationMinutes: m.state.BreakDurationMinutes,
	}
	if err := m.kv.Set(ctx, store.KeySessionState, next); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist state: %v\n", err)
		return
	}
	m.state = next
}

// appendHistory writes the pending break's history entry, then clears
// the pending record so the entry cannot be written twice. A missing
// pending record means the entry was already written.
func (m *Machine) appendHistory(ctx context.Context, completed bool, actualMinutes int) error {
	var pb pendingBreak
	found, err := m.kv.Get(ctx, store.KeyPendingBreak, &pb)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	minutes := pb.Minutes
	if actualMinutes > 0 {
		minutes = actualMinutes
	}

	var workEnd time.Time
	var workEndMs int64
	if ok, err := m.kv.Get(ctx, store.KeyLastWorkEnd, &workEndMs); err == nil && ok && workEndMs > 0 {
		workEnd = time.UnixMilli(workEndMs)
	}

	source := pb.Source
	if source == "" {
		source = recommend.SourceRule
	}

	data := store.BreakEventData{
		BreakID:             pb.ID,
		Category:            string(pb.Category),
		BreakName:           pb.Name,
		DurationMinutes:     minutes,
		WorkDurationMinutes: m.state.WorkDurationMinutes,
		Label:               labelFor(m.state.WorkDurationMinutes, m.state.BreakDurationMinutes),
		Completed:           completed,
		WorkEndAt:           workEnd,
		Source:              string(source),
		CorrelationID:       pb.CorrelationID,
	}
	if err := m.events.AppendBreak(ctx, data); err != nil {
		return err
	}

	return m.kv.Remove(ctx, store.KeyPendingBreak, store.KeyPendingCandidates)
}

// notifyUser emits a phase-change notification unless the profile's
// schedule window puts the current time outside working hours. The
// phase still advances either way.
func (m *Machine) notifyUser(ctx context.Context, title, message string, clip notify.Sound) {
	p, err := profile.Load(ctx, m.kv)
	if err == nil && p.ShouldDelayNotification(m.now()) {
		return
	}
	m.notifier.Notify(title, message)
	m.notifier.PlaySound(clip)
}

// cancelTimers drops every interval wake-up.
func (m *Machine) cancelTimers() {
	m.sched.Cancel(alarm.NameWork)
	m.sched.Cancel(alarm.NameBreak)
	m.sched.Cancel(alarm.NameToast)
}

func (m *Machine) armDailyRefresh() {
	now := m.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if err := m.sched.Arm(alarm.NameDailyRefresh, next); err != nil {
		fmt.Fprintf(os.Stderr, "warning: arm daily refresh: %v\n", err)
	}
}
