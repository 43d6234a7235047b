package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/abhisek/breet/internal/breaks"
	"github.com/abhisek/breet/internal/llm"
	"github.com/abhisek/breet/internal/profile"
	"github.com/abhisek/breet/internal/store"
)

// Service orchestrates the recommendation pipeline: bounded-time AI
// call, normalization, and the deterministic fallback.
type Service struct {
	provider llm.Provider
	kv       *store.KV
	events   store.EventRepo
	timeout  time.Duration
	policy   DescriptionPolicy
	now      func() time.Time
}

// NewService creates a recommendation service. timeout bounds the AI
// call; on expiry the rule-based path takes over.
func NewService(provider llm.Provider, kv *store.KV, events store.EventRepo, timeout time.Duration) *Service {
	return &Service{
		provider: provider,
		kv:       kv,
		events:   events,
		timeout:  timeout,
		policy:   DefaultDescriptionPolicy(),
		now:      time.Now,
	}
}

// Recommend produces exactly CandidateCount candidates for the next
// break. It never returns an error: any AI failure falls through to the
// rule-based picker.
func (s *Service) Recommend(ctx context.Context, requestedMinutes int, excludeIDs []string) Recommendation {
	minutes := s.resolveMinutes(ctx, requestedMinutes)

	candidates, ok := s.aiCandidates(ctx, minutes, excludeIDs)
	source := SourceAI
	if !ok {
		candidates = nil
		source = SourceRule
	}

	if len(candidates) < CandidateCount {
		candidates = s.pad(ctx, candidates, minutes, excludeIDs)
	}
	candidates = candidates[:CandidateCount]

	rec := Recommendation{
		Source:     source,
		Candidates: candidates,
		Top:        candidates[0],
	}

	// Persist for UI surfaces; a write failure does not invalidate the
	// in-memory result.
	_ = s.kv.SetAll(ctx, map[string]any{
		store.KeyPendingCandidates: rec.Candidates,
		store.KeyPendingBreak:      rec.Top,
	})

	return rec
}

// resolveMinutes picks the effective break duration: explicit argument,
// then the stored session's configured duration, then the default.
func (s *Service) resolveMinutes(ctx context.Context, requested int) int {
	if requested > 0 {
		return ClampMinutes(float64(requested))
	}

	var state struct {
		BreakDurationMinutes int `json:"breakDurationMinutes"`
	}
	if ok, err := s.kv.Get(ctx, store.KeySessionState, &state); err == nil && ok && state.BreakDurationMinutes > 0 {
		return ClampMinutes(float64(state.BreakDurationMinutes))
	}

	return DefaultMinutes
}

// aiCandidates runs the AI path. It returns (nil, false) on any failure
// so the caller can fall back.
func (s *Service) aiCandidates(ctx context.Context, minutes int, excludeIDs []string) ([]Candidate, bool) {
	if s.provider == nil {
		return nil, false
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	callCtx = llm.WithPurpose(callCtx, "break-suggestions")

	resp, err := s.provider.Complete(callCtx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(s.buildContext(ctx, minutes, excludeIDs)),
		Schema:      SuggestionsSchema,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, false
	}

	parsed, ok := parseSuggestions(resp.Content)
	if !ok {
		return nil, false
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	seenCategory := make(map[breaks.Category]bool)
	var out []Candidate
	for i, sug := range parsed.Suggestions {
		if i >= CandidateCount {
			break
		}
		c := normalize(sug, minutes, s.policy)
		if excluded[c.ID] || seenCategory[c.Category] {
			continue
		}
		seenCategory[c.Category] = true
		out = append(out, c)
	}

	return out, true
}

// parseSuggestions decodes the model output, salvaging the first JSON
// object from surrounding prose when direct decoding fails.
func parseSuggestions(content json.RawMessage) (suggestionList, bool) {
	var list suggestionList
	if err := json.Unmarshal(content, &list); err == nil && len(list.Suggestions) > 0 {
		return list, true
	}

	block := firstJSONObject(content)
	if block == nil {
		return suggestionList{}, false
	}
	if err := json.Unmarshal(block, &list); err != nil || len(list.Suggestions) == 0 {
		return suggestionList{}, false
	}
	return list, true
}

// firstJSONObject extracts the first balanced top-level {...} block from
// free text, or nil. Braces inside string literals do not count.
func firstJSONObject(b []byte) []byte {
	start := bytes.IndexByte(b, '{')
	if start < 0 {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(b); i++ {
		c := b[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[start : i+1]
			}
		}
	}
	return nil
}

// pad fills the candidate set up to CandidateCount with the rule-based
// picker, avoiding ids and categories already chosen.
func (s *Service) pad(ctx context.Context, have []Candidate, minutes int, excludeIDs []string) []Candidate {
	exclude := append([]string(nil), excludeIDs...)
	avoid := s.recentCategories(ctx)
	for _, c := range have {
		exclude = append(exclude, c.ID)
		avoid = append(avoid, c.Category)
	}

	var preferred []breaks.Category
	if prof, err := profile.Load(ctx, s.kv); err == nil {
		preferred = prof.PreferredCategories
	}

	picked := Pick(CandidateCount-len(have), minutes, preferred, avoid, exclude)
	return append(have, picked...)
}
