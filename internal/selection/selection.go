// Package selection scopes one round of pre-work break browsing: a
// short-lived session holding the start payload and a bounded quota for
// "show me another" requests.
package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/breet/internal/recommend"
	"github.com/abhisek/breet/internal/store"
)

// MaxOther is the per-session quota for additional suggestion pages.
const MaxOther = 4

// ErrLimitReached is returned when the session's quota is exhausted.
// The counter is left untouched and no recommendation is attempted.
var ErrLimitReached = errors.New("suggestion limit reached")

// ErrNoSession is returned when no selection session is active.
var ErrNoSession = errors.New("no active selection session")

// Session is the ephemeral scope for one round of candidate browsing.
// Superseded sessions are deleted, never reused.
type Session struct {
	ID           string    `json:"id"`
	Mode         string    `json:"mode,omitempty"`
	WorkMinutes  int       `json:"workMinutes"`
	BreakMinutes int       `json:"breakMinutes"`
	OtherUsed    int       `json:"otherUsed"`
	MaxOther     int       `json:"maxOther"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Manager creates and resolves selection sessions on the shared store.
type Manager struct {
	kv  *store.KV
	rec *recommend.Service
}

// NewManager creates a selection manager.
func NewManager(kv *store.KV, rec *recommend.Service) *Manager {
	return &Manager{kv: kv, rec: rec}
}

func sessionKey(id string) string {
	return store.PrefixSelection + id
}

// Begin supersedes any existing session and starts a fresh one with the
// given start payload, running the pipeline for the first candidate page.
func (m *Manager) Begin(ctx context.Context, mode string, workMinutes, breakMinutes int) (Session, recommend.Recommendation, error) {
	// Old sessions, including the current pointer, are cleared wholesale.
	if err := m.kv.RemoveByPrefix(ctx, store.PrefixSelection); err != nil {
		return Session{}, recommend.Recommendation{}, fmt.Errorf("clear stale sessions: %w", err)
	}

	sess := Session{
		ID:           uuid.NewString(),
		Mode:         mode,
		WorkMinutes:  workMinutes,
		BreakMinutes: breakMinutes,
		OtherUsed:    0,
		MaxOther:     MaxOther,
		CreatedAt:    time.Now(),
	}

	if err := m.save(ctx, sess); err != nil {
		return Session{}, recommend.Recommendation{}, err
	}

	rec := m.rec.Recommend(ctx, breakMinutes, nil)
	return sess, rec, nil
}

// Current returns the active session, or ErrNoSession.
func (m *Manager) Current(ctx context.Context) (Session, error) {
	var id string
	ok, err := m.kv.Get(ctx, store.KeyCurrentSelection, &id)
	if err != nil {
		return Session{}, err
	}
	if !ok || id == "" {
		return Session{}, ErrNoSession
	}

	var sess Session
	ok, err = m.kv.Get(ctx, sessionKey(id), &sess)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// RequestMore asks for another candidate page. The quota is checked
// before the pipeline runs; on success the counter increments exactly
// once and a changed duration is recorded for subsequent calls.
func (m *Manager) RequestMore(ctx context.Context, breakMinutes int, excludeIDs []string) (recommend.Recommendation, error) {
	sess, err := m.Current(ctx)
	if err != nil {
		return recommend.Recommendation{}, err
	}

	if sess.OtherUsed >= sess.MaxOther {
		return recommend.Recommendation{}, ErrLimitReached
	}

	minutes := breakMinutes
	if minutes <= 0 {
		minutes = sess.BreakMinutes
	}

	rec := m.rec.Recommend(ctx, minutes, excludeIDs)

	sess.OtherUsed++
	sess.BreakMinutes = minutes
	if err := m.save(ctx, sess); err != nil {
		return recommend.Recommendation{}, err
	}

	return rec, nil
}

// Clear removes the active session and any stale namespaced state.
// Called when the work timer actually starts.
func (m *Manager) Clear(ctx context.Context) error {
	return m.kv.RemoveByPrefix(ctx, store.PrefixSelection)
}

func (m *Manager) save(ctx context.Context, sess Session) error {
	return m.kv.SetAll(ctx, map[string]any{
		sessionKey(sess.ID):       sess,
		store.KeyCurrentSelection: sess.ID,
	})
}
