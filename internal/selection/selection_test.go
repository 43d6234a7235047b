package selection

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/breet/internal/llm"
	"github.com/abhisek/breet/internal/recommend"
	"github.com/abhisek/breet/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "selection.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	rec := recommend.NewService(llm.NewMockProvider(), s.KV(), s.EventRepo(), 50*time.Millisecond)
	return NewManager(s.KV(), rec), s
}

func TestBegin_CreatesSession(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	sess, rec, err := m.Begin(ctx, "deep work", 25, 5)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "deep work", sess.Mode)
	assert.Equal(t, 25, sess.WorkMinutes)
	assert.Equal(t, 5, sess.BreakMinutes)
	assert.Equal(t, 0, sess.OtherUsed)
	assert.Equal(t, MaxOther, sess.MaxOther)
	assert.Len(t, rec.Candidates, recommend.CandidateCount)

	got, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}

func TestBegin_SupersedesOldSession(t *testing.T) {
	m, s := newTestManager(t)
	ctx := context.Background()

	first, _, err := m.Begin(ctx, "", 25, 5)
	require.NoError(t, err)

	second, _, err := m.Begin(ctx, "", 50, 10)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// The first session's record is deleted, not orphaned.
	var stale Session
	ok, err := s.KV().Get(ctx, store.PrefixSelection+first.ID, &stale)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, 0, got.OtherUsed, "quota resets with a new session")
}

func TestCurrent_NoSession(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Current(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRequestMore_QuotaExactlyMaxOther(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, _, err := m.Begin(ctx, "", 25, 5)
	require.NoError(t, err)

	for i := 1; i <= MaxOther; i++ {
		rec, err := m.RequestMore(ctx, 0, nil)
		require.NoError(t, err, "request %d should succeed", i)
		assert.Len(t, rec.Candidates, recommend.CandidateCount)

		sess, err := m.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, sess.OtherUsed, "counter increments exactly once per request")
	}

	_, err = m.RequestMore(ctx, 0, nil)
	assert.ErrorIs(t, err, ErrLimitReached)

	sess, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxOther, sess.OtherUsed, "rejected request must not touch the counter")
}

func TestRequestMore_RecordsChangedDuration(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, _, err := m.Begin(ctx, "", 25, 5)
	require.NoError(t, err)

	rec, err := m.RequestMore(ctx, 10, nil)
	require.NoError(t, err)
	for _, c := range rec.Candidates {
		assert.Equal(t, 10, c.Minutes)
	}

	sess, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, sess.BreakMinutes)

	// Subsequent calls inherit the recorded duration.
	rec, err = m.RequestMore(ctx, 0, nil)
	require.NoError(t, err)
	for _, c := range rec.Candidates {
		assert.Equal(t, 10, c.Minutes)
	}
}

func TestRequestMore_NoSession(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.RequestMore(context.Background(), 0, nil)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClear_RemovesSession(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, _, err := m.Begin(ctx, "", 25, 5)
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx))

	_, err = m.Current(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}
