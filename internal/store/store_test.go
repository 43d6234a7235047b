package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestBreakEvents_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, cat := range []string{"stretching", "breathing", "hydration"} {
		err := repo.AppendBreak(ctx, BreakEventData{
			BreakID:             "neck_stretch_3",
			Category:            cat,
			DurationMinutes:     5,
			WorkDurationMinutes: 25,
			Label:               "25/5",
			Completed:           i%2 == 0,
			Source:              "rule",
		})
		if err != nil {
			t.Fatalf("append break %d: %v", i, err)
		}
	}

	recent, err := repo.RecentBreaks(ctx, 2)
	if err != nil {
		t.Fatalf("recent breaks: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	// Oldest first.
	if recent[0].Category != "breathing" || recent[1].Category != "hydration" {
		t.Errorf("unexpected order: %q, %q", recent[0].Category, recent[1].Category)
	}
	if recent[0].Sequence >= recent[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", recent[0].Sequence, recent[1].Sequence)
	}

	all, err := repo.AllBreaks(ctx)
	if err != nil {
		t.Fatalf("all breaks: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestBreaksBetween(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendBreak(ctx, BreakEventData{
		BreakID:         "drink_water_1",
		Category:        "hydration",
		DurationMinutes: 1,
		Completed:       true,
		Source:          "ai",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	now := time.Now()
	today, err := repo.BreaksBetween(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("breaks between: %v", err)
	}
	if len(today) != 1 {
		t.Fatalf("len(today) = %d, want 1", len(today))
	}

	past, err := repo.BreaksBetween(ctx, now.Add(-2*time.Hour), now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("breaks between (past): %v", err)
	}
	if len(past) != 0 {
		t.Errorf("len(past) = %d, want 0", len(past))
	}
}

func TestLLMEvents_AppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku",
			Purpose:      "break-rec",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append LLM request %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("len(usage) = %d, want 1", len(usage))
	}
	if usage[0].Calls != 3 || usage[0].InputTokens != 300 || usage[0].OutputTokens != 150 {
		t.Errorf("unexpected usage: %+v", usage[0])
	}
	if usage[0].AvgLatencyMs != 200 {
		t.Errorf("avg latency = %d, want 200", usage[0].AvgLatencyMs)
	}
}

func TestKV_SetGetRemove(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var got payload
	ok, err := kv.Get(ctx, "missing", &got)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}

	if err := kv.Set(ctx, "p", payload{Name: "a", Count: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "p", payload{Name: "b", Count: 2}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	ok, err = kv.Get(ctx, "p", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got.Name != "b" || got.Count != 2 {
		t.Errorf("got %+v, want overwritten value", got)
	}

	if err := kv.Remove(ctx, "p"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	ok, _ = kv.Get(ctx, "p", &got)
	if ok {
		t.Error("key survived remove")
	}
}

func TestKV_RemoveByPrefix(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	for _, k := range []string{"selection:a:meta", "selection:a:top", "other"} {
		if err := kv.Set(ctx, k, 1); err != nil {
			t.Fatalf("set %q: %v", k, err)
		}
	}

	if err := kv.RemoveByPrefix(ctx, "selection:"); err != nil {
		t.Fatalf("remove by prefix: %v", err)
	}

	var v int
	if ok, _ := kv.Get(ctx, "selection:a:meta", &v); ok {
		t.Error("prefixed key survived")
	}
	if ok, _ := kv.Get(ctx, "other", &v); !ok {
		t.Error("unrelated key was removed")
	}
}

func TestKV_Watch(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	var changes []Change
	cancel := kv.Watch("watched", func(c Change) {
		changes = append(changes, c)
	})

	if err := kv.Set(ctx, "watched", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "unwatched", "v2"); err != nil {
		t.Fatalf("set unwatched: %v", err)
	}
	if err := kv.Remove(ctx, "watched"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(changes) != 2 {
		t.Fatalf("len(changes) = %d, want 2", len(changes))
	}
	if changes[0].Value == nil {
		t.Error("set change should carry a value")
	}
	if changes[1].Value != nil {
		t.Error("remove change should carry nil value")
	}

	cancel()
	if err := kv.Set(ctx, "watched", "v3"); err != nil {
		t.Fatalf("set after cancel: %v", err)
	}
	if len(changes) != 2 {
		t.Errorf("watcher fired after cancel: %d changes", len(changes))
	}
}
