package recommend

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/breet/internal/llm"
	"github.com/abhisek/breet/internal/store"
)

func newTestService(t *testing.T, provider llm.Provider) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "recommend.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(provider, s.KV(), s.EventRepo(), 100*time.Millisecond), s
}

func suggestionsJSON(t *testing.T, sugs ...suggestion) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(suggestionList{Suggestions: sugs})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestRecommend_AISuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: suggestionsJSON(t,
			suggestion{ID: "neck_stretch_3", Duration: 3, Description: "roll your shoulders"},
			suggestion{Type: "breathing", Duration: 4},
			suggestion{Type: "hydration", Duration: 1},
		),
	})
	svc, st := newTestService(t, mock)

	rec := svc.Recommend(context.Background(), 5, nil)

	if rec.Source != SourceAI {
		t.Fatalf("expected ai source, got %s", rec.Source)
	}
	if len(rec.Candidates) != CandidateCount {
		t.Fatalf("expected %d candidates, got %d", CandidateCount, len(rec.Candidates))
	}
	if rec.Top != rec.Candidates[0] {
		t.Fatal("top must be the first candidate")
	}
	for _, c := range rec.Candidates {
		if c.Minutes != 5 {
			t.Fatalf("candidate %s: minutes %d, want 5", c.ID, c.Minutes)
		}
	}
	if rec.Candidates[0].Description != "roll your shoulders" {
		t.Fatalf("valid description lost: %q", rec.Candidates[0].Description)
	}

	// Result persisted for UI surfaces.
	var persisted []Candidate
	ok, err := st.KV().Get(context.Background(), store.KeyPendingCandidates, &persisted)
	if err != nil || !ok {
		t.Fatalf("candidates not persisted: ok=%v err=%v", ok, err)
	}
	if len(persisted) != CandidateCount {
		t.Fatalf("persisted %d candidates, want %d", len(persisted), CandidateCount)
	}
}

func TestRecommend_ProviderErrorFallsBack(t *testing.T) {
	// Empty mock queue yields ErrProviderUnavailable on every call.
	svc, _ := newTestService(t, llm.NewMockProvider())

	rec := svc.Recommend(context.Background(), 5, nil)

	if rec.Source != SourceRule {
		t.Fatalf("expected rule source, got %s", rec.Source)
	}
	if len(rec.Candidates) != CandidateCount {
		t.Fatalf("expected %d candidates, got %d", CandidateCount, len(rec.Candidates))
	}
}

// stallProvider blocks until the context is done.
type stallProvider struct{}

func (stallProvider) Complete(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallProvider) ModelID() string { return "stall" }

func TestRecommend_TimeoutFallsBack(t *testing.T) {
	svc, _ := newTestService(t, stallProvider{})

	start := time.Now()
	rec := svc.Recommend(context.Background(), 5, nil)

	if rec.Source != SourceRule {
		t.Fatalf("expected rule source after timeout, got %s", rec.Source)
	}
	if len(rec.Candidates) != CandidateCount {
		t.Fatalf("expected %d candidates, got %d", CandidateCount, len(rec.Candidates))
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %s", elapsed)
	}
}

func TestRecommend_ExclusionAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: suggestionsJSON(t,
			suggestion{ID: "neck_stretch_3", Duration: 3},
			suggestion{ID: "neck_stretch_3", Duration: 3}, // duplicate category
			suggestion{ID: "drink_water_1", Duration: 1},  // excluded below
		),
	})
	svc, _ := newTestService(t, mock)

	rec := svc.Recommend(context.Background(), 5, []string{"drink_water_1"})

	if len(rec.Candidates) != CandidateCount {
		t.Fatalf("expected %d candidates, got %d", CandidateCount, len(rec.Candidates))
	}
	seen := make(map[string]bool)
	for _, c := range rec.Candidates {
		if c.ID == "drink_water_1" {
			t.Fatal("excluded id in result")
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestRecommend_SalvagesJSONFromProse(t *testing.T) {
	prose := `Here are my suggestions: {"suggestions":[{"type":"movement","duration":3}]} hope they help!`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(prose)})
	svc, _ := newTestService(t, mock)

	rec := svc.Recommend(context.Background(), 5, nil)

	if rec.Source != SourceAI {
		t.Fatalf("expected salvage to keep ai source, got %s", rec.Source)
	}
	if rec.Candidates[0].ID != "walk_in_place_3" {
		t.Fatalf("expected movement entry first, got %s", rec.Candidates[0].ID)
	}
}

func TestRecommend_SalvageStopsAtBalancedObject(t *testing.T) {
	// A stray closing brace after the object must not defeat extraction.
	prose := `{"suggestions":[{"type":"movement","duration":3,"description":"has a } inside"}]} trailing }`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(prose)})
	svc, _ := newTestService(t, mock)

	rec := svc.Recommend(context.Background(), 5, nil)

	if rec.Source != SourceAI {
		t.Fatalf("expected salvage to keep ai source, got %s", rec.Source)
	}
	if rec.Candidates[0].Description != "has a } inside" {
		t.Fatalf("string-literal braces mishandled, got %q", rec.Candidates[0].Description)
	}
}

func TestRecommend_Properties(t *testing.T) {
	durations := []int{0, 1, 5, 15, 100}
	excludeSets := [][]string{nil, {"eye_20_20_20"}, {"eye_20_20_20", "neck_stretch_3", "box_breath_4", "drink_water_1", "walk_in_place_3"}}

	for _, d := range durations {
		for _, exclude := range excludeSets {
			svc, _ := newTestService(t, llm.NewMockProvider())
			rec := svc.Recommend(context.Background(), d, exclude)

			if len(rec.Candidates) != CandidateCount {
				t.Fatalf("d=%d: got %d candidates", d, len(rec.Candidates))
			}

			want := ClampMinutes(float64(d))
			if d == 0 {
				want = DefaultMinutes
			}
			excluded := make(map[string]bool)
			for _, id := range exclude {
				excluded[id] = true
			}
			seen := make(map[string]bool)
			for _, c := range rec.Candidates {
				if c.Minutes != want {
					t.Fatalf("d=%d: minutes %d, want %d", d, c.Minutes, want)
				}
				if excluded[c.ID] {
					t.Fatalf("excluded id %s in result", c.ID)
				}
				if seen[c.ID] {
					t.Fatalf("duplicate id %s", c.ID)
				}
				seen[c.ID] = true
			}
		}
	}
}

func TestRecommend_ResolvesDurationFromSessionState(t *testing.T) {
	svc, st := newTestService(t, llm.NewMockProvider())
	ctx := context.Background()

	err := st.KV().Set(ctx, store.KeySessionState, map[string]any{"breakDurationMinutes": 10})
	if err != nil {
		t.Fatalf("set session state: %v", err)
	}

	rec := svc.Recommend(ctx, 0, nil)
	for _, c := range rec.Candidates {
		if c.Minutes != 10 {
			t.Fatalf("expected session duration 10, got %d", c.Minutes)
		}
	}
}

func TestRefreshDaily_ValidContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"affirmation":"keep going","timerDescription":"stay with this task"}`),
	})
	svc, st := newTestService(t, mock)
	ctx := context.Background()

	content := svc.RefreshDaily(ctx)
	if content.Affirmation != "keep going" {
		t.Fatalf("unexpected affirmation %q", content.Affirmation)
	}

	var stored string
	if ok, _ := st.KV().Get(ctx, store.KeyDailyQuote, &stored); !ok || stored != "keep going" {
		t.Fatalf("daily quote not persisted, got %q", stored)
	}
	if ok, _ := st.KV().Get(ctx, store.KeyTimerDescription, &stored); !ok || stored != "stay with this task" {
		t.Fatalf("timer description not persisted, got %q", stored)
	}
}

func TestRefreshDaily_RejectsBadLengths(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"affirmation":"hi","timerDescription":"x"}`),
	})
	svc, _ := newTestService(t, mock)

	content := svc.RefreshDaily(context.Background())
	if content.Affirmation != defaultAffirmation {
		t.Fatalf("expected fallback affirmation, got %q", content.Affirmation)
	}
	if content.TimerDescription != defaultTimerDesc {
		t.Fatalf("expected fallback description, got %q", content.TimerDescription)
	}
}

func TestRefreshDaily_ProviderFailure(t *testing.T) {
	svc, _ := newTestService(t, llm.NewMockProvider())

	content := svc.RefreshDaily(context.Background())
	if content.Affirmation != defaultAffirmation || content.TimerDescription != defaultTimerDesc {
		t.Fatalf("expected fallbacks, got %+v", content)
	}
}
