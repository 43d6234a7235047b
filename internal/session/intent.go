package session

import "github.com/abhisek/breet/internal/recommend"

// Intent is a user-originated message to the state machine. Intents are
// processed one at a time; each handler returns a Result.
type Intent interface {
	isIntent()
}

// SelectBreakBeforeWork opens a selection session and fetches the first
// candidate page before the work timer starts.
type SelectBreakBeforeWork struct {
	Mode         string
	WorkMinutes  int
	BreakMinutes int
}

// StartTimer confirms the chosen break candidate and starts the work
// interval.
type StartTimer struct {
	Candidate recommend.Candidate
}

// PauseTimer pauses the running work or break interval. A no-op in any
// other phase.
type PauseTimer struct{}

// ResumeTimer resumes a paused interval with its captured remaining
// time. A no-op unless paused.
type ResumeTimer struct{}

// StopTimer aborts the cycle: all wake-ups are cancelled and, when a
// break was pending or running, an uncompleted history entry is written.
type StopTimer struct{}

// RequestNewBreaks asks the active selection session for another
// candidate page, excluding the given ids.
type RequestNewBreaks struct {
	ExcludeIDs   []string
	BreakMinutes int
}

// RotatePendingBreak swaps the confirmed break for the next candidate
// in the stored set, wrapping around.
type RotatePendingBreak struct{}

// StartBreakTimer explicitly starts the break from the end-of-work
// toast, optionally switching the candidate first.
type StartBreakTimer struct {
	Candidate *recommend.Candidate
}

// BreakCompleted reports the break finished early or from outside the
// timer, with the actual minutes spent when known.
type BreakCompleted struct {
	Completed     bool
	ActualMinutes int
}

func (SelectBreakBeforeWork) isIntent() {}
func (StartTimer) isIntent()            {}
func (PauseTimer) isIntent()            {}
func (ResumeTimer) isIntent()           {}
func (StopTimer) isIntent()             {}
func (RequestNewBreaks) isIntent()      {}
func (RotatePendingBreak) isIntent()    {}
func (StartBreakTimer) isIntent()       {}
func (BreakCompleted) isIntent()        {}

// Result is the response to one intent. Failures are values, never
// panics: nothing may escape into the scheduler callback path.
type Result struct {
	OK    bool
	Error string

	// Recommendation is set for intents that produced a candidate page.
	Recommendation *recommend.Recommendation

	// LimitReached marks a rejected RequestNewBreaks whose quota is
	// exhausted. State is unchanged.
	LimitReached bool
}

func ok() Result {
	return Result{OK: true}
}

func fail(msg string) Result {
	return Result{Error: msg}
}
