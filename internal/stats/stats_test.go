package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/breet/internal/store"
)

func newTestService(t *testing.T) (*Service, store.EventRepo) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewService(s.EventRepo()), s.EventRepo()
}

func appendBreak(t *testing.T, repo store.EventRepo, category string, minutes int, completed bool) {
	t.Helper()
	err := repo.AppendBreak(context.Background(), store.BreakEventData{
		BreakID:         "test_break",
		Category:        category,
		DurationMinutes: minutes,
		Completed:       completed,
		Source:          "rule",
	})
	require.NoError(t, err)
}

func TestOverall(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	sum, err := svc.Overall(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
	assert.Equal(t, 0.0, sum.CompletionRate())

	appendBreak(t, repo, "stretching", 5, true)
	appendBreak(t, repo, "breathing", 4, true)
	appendBreak(t, repo, "hydration", 1, false)

	sum, err = svc.Overall(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Completed)
	assert.Equal(t, 9, sum.MinutesOnBreak, "skipped breaks contribute no minutes")
	assert.InDelta(t, 2.0/3.0, sum.CompletionRate(), 1e-9)
}

func TestDaily(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	appendBreak(t, repo, "stretching", 5, true)
	appendBreak(t, repo, "movement", 3, false)

	from := time.Now().Add(-24 * time.Hour)
	to := time.Now().Add(24 * time.Hour)

	days, err := svc.Daily(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 2, days[0].Total)
	assert.Equal(t, 1, days[0].Completed)

	// Outside the window.
	days, err = svc.Daily(ctx, from.Add(-48*time.Hour), from)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestLocalDayMatchesTodayBoundary(t *testing.T) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	assert.Equal(t, midnight, localDay(now))

	// The same instant buckets identically no matter which zone the
	// store rendered it in.
	assert.Equal(t, localDay(now), localDay(now.UTC()))

	// One second before local midnight is the previous day.
	assert.Equal(t, midnight.AddDate(0, 0, -1), localDay(midnight.Add(-time.Second)))

	// An evening timestamp in a far-east zone stays on its local day
	// even though its UTC date has already rolled over.
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	evening := time.Date(2026, 3, 1, 23, 30, 0, 0, tokyo)
	assert.Equal(t, localDay(evening), localDay(evening.UTC()))
}

func TestByWeekday(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	appendBreak(t, repo, "stretching", 5, true)
	appendBreak(t, repo, "breathing", 4, false)

	byDay, err := svc.ByWeekday(ctx)
	require.NoError(t, err)
	require.Len(t, byDay, 1)

	today := byDay[time.Now().Weekday()]
	assert.Equal(t, 2, today.Total)
	assert.Equal(t, 1, today.Completed)
}

func TestByCategory(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	appendBreak(t, repo, "stretching", 5, true)
	appendBreak(t, repo, "stretching", 5, false)
	appendBreak(t, repo, "hydration", 1, true)

	cats, err := svc.ByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)

	assert.Equal(t, "stretching", cats[0].Category, "most used first")
	assert.Equal(t, 2, cats[0].Total)
	assert.Equal(t, 1, cats[0].Completed)
	assert.Equal(t, "hydration", cats[1].Category)
}
