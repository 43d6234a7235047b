// Package recommend produces break candidate sets: an AI-assisted path
// with a hard timeout and a deterministic rule-based fallback. Callers
// always get exactly CandidateCount candidates, never an error.
package recommend

import "github.com/abhisek/breet/internal/breaks"

const (
	// CandidateCount is the fixed size of every candidate set.
	CandidateCount = 3

	// MinMinutes and MaxMinutes bound a break duration.
	MinMinutes = 1
	MaxMinutes = 15

	// DefaultMinutes is used when no duration can be resolved.
	DefaultMinutes = 5
)

// Source identifies which path produced a recommendation.
type Source string

const (
	SourceAI   Source = "ai"
	SourceRule Source = "rule"
)

// Candidate is one proposed break activity.
type Candidate struct {
	ID          string          `json:"id"`
	Category    breaks.Category `json:"category"`
	Minutes     int             `json:"durationMinutes"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
}

// Recommendation is the pipeline's result: a fixed-size candidate set
// and its first element as the default choice.
type Recommendation struct {
	Source     Source      `json:"source"`
	Candidates []Candidate `json:"candidates"`
	Top        Candidate   `json:"top"`
}

// suggestion is the untrusted shape returned by the model.
type suggestion struct {
	ID          string  `json:"id,omitempty"`
	Type        string  `json:"type,omitempty"`
	Duration    float64 `json:"duration"`
	Description string  `json:"description,omitempty"`
}

type suggestionList struct {
	Suggestions []suggestion `json:"suggestions"`
}
