package recommend

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/breet/internal/llm"
	"github.com/abhisek/breet/internal/store"
)

// Fallbacks when the model is unavailable or returns unusable text.
const (
	defaultAffirmation = "steady wins"
	defaultTimerDesc   = "one thing at a time"
)

// DailyContent is the short copy regenerated once a day.
type DailyContent struct {
	Affirmation      string `json:"affirmation"`
	TimerDescription string `json:"timerDescription"`
}

var dailyContentSchema = &llm.Schema{
	Name:        "daily-content",
	Description: "A daily affirmation and a one-line timer description",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"affirmation": map[string]any{
				"type":        "string",
				"description": "Short encouraging phrase, 6-15 characters, plain ASCII",
			},
			"timerDescription": map[string]any{
				"type":        "string",
				"description": "One-line focus reminder shown under the timer, 10-28 characters, plain ASCII",
			},
		},
		"required":             []any{"affirmation", "timerDescription"},
		"additionalProperties": false,
	},
}

// RefreshDaily regenerates the daily copy and stores it. Failures fall
// back to stock phrases; the refresh itself never fails.
func (s *Service) RefreshDaily(ctx context.Context) DailyContent {
	content := s.generateDaily(ctx)

	_ = s.kv.SetAll(ctx, map[string]any{
		store.KeyDailyQuote:       content.Affirmation,
		store.KeyTimerDescription: content.TimerDescription,
	})

	return content
}

func (s *Service) generateDaily(ctx context.Context) DailyContent {
	fallback := DailyContent{
		Affirmation:      defaultAffirmation,
		TimerDescription: defaultTimerDesc,
	}

	if s.provider == nil {
		return fallback
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	callCtx = llm.WithPurpose(callCtx, "daily-content")

	resp, err := s.provider.Complete(callCtx, llm.Request{
		System:      "You write terse, warm, plain-ASCII copy for a break timer app. No punctuation at the end of phrases.",
		Prompt:      "Write today's affirmation (6-15 characters) and timer description (10-28 characters).",
		Schema:      dailyContentSchema,
		MaxTokens:   256,
		Temperature: 0.9,
	})
	if err != nil {
		return fallback
	}

	var content DailyContent
	if err := json.Unmarshal(resp.Content, &content); err != nil {
		return fallback
	}

	if !lengthOK(content.Affirmation, 6, 15) {
		content.Affirmation = fallback.Affirmation
	}
	if !lengthOK(content.TimerDescription, 10, 28) {
		content.TimerDescription = fallback.TimerDescription
	}
	return content
}

func lengthOK(s string, min, max int) bool {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
