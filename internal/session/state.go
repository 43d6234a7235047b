// Package session owns the work/break timer lifecycle: the phase state
// machine, pause/resume arithmetic, and the wake-ups that advance it.
// It is the sole writer of session state and break history.
package session

import (
	"fmt"
	"time"
)

// Phase is the session state machine's current state.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSelecting  Phase = "selecting"
	PhaseWork       Phase = "work"
	PhaseWorkEnding Phase = "work_ending"
	PhaseBreak      Phase = "break"
	PhasePaused     Phase = "paused"

	// PhaseBreakEnding exists in saved records from older builds. No
	// transition produces it; a break ends straight into idle.
	PhaseBreakEnding Phase = "break_ending"
)

// toastDelay is how long the end-of-work toast stays up before the
// break can start on its own.
const toastDelay = 10 * time.Second

// State is the persisted session record. Timestamps are epoch
// milliseconds; zero means unset.
type State struct {
	Phase Phase  `json:"phase"`
	Mode  string `json:"mode,omitempty"`

	// StartTs and EndTs bound the active interval. For a running
	// interval, EndTs == StartTs + duration minutes in millis.
	StartTs int64 `json:"startTs,omitempty"`
	EndTs   int64 `json:"endTs,omitempty"`

	// PausedAt and RemainingMs are set only while paused. PausedPhase
	// records which phase the pause interrupted.
	PausedAt    int64 `json:"pausedAt,omitempty"`
	RemainingMs int64 `json:"remainingMs,omitempty"`
	PausedPhase Phase `json:"pausedPhase,omitempty"`

	WorkDurationMinutes  int `json:"workDurationMinutes,omitempty"`
	BreakDurationMinutes int `json:"breakDurationMinutes,omitempty"`
}

// Preset is a named work/break interval pairing.
type Preset struct {
	Label        string
	WorkMinutes  int
	BreakMinutes int
}

// Presets returns the built-in interval pairings.
func Presets() []Preset {
	return []Preset{
		{Label: "25/5", WorkMinutes: 25, BreakMinutes: 5},
		{Label: "50/10", WorkMinutes: 50, BreakMinutes: 10},
		{Label: "15/3", WorkMinutes: 15, BreakMinutes: 3},
		{Label: "1/1", WorkMinutes: 1, BreakMinutes: 1},
	}
}

// labelFor formats the history label for an interval pairing.
func labelFor(workMinutes, breakMinutes int) string {
	return fmt.Sprintf("%d/%d", workMinutes, breakMinutes)
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}
