package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// BreakEventData is the input for appending one break history entry.
type BreakEventData struct {
	BreakID             string
	Category            string
	BreakName           string
	DurationMinutes     int
	WorkDurationMinutes int
	Label               string
	Completed           bool
	WorkEndAt           time.Time
	Source              string
	CorrelationID       string
}

// BreakEvent is one persisted break history entry.
type BreakEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	BreakEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is one persisted LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token consumption for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
// Events are never updated or deleted once written.
type EventRepo interface {
	// AppendBreak records one break history entry.
	AppendBreak(ctx context.Context, data BreakEventData) error

	// RecentBreaks returns the most recent n break entries, oldest first.
	RecentBreaks(ctx context.Context, n int) ([]BreakEvent, error)

	// BreaksBetween returns break entries with from <= timestamp < to,
	// oldest first.
	BreaksBetween(ctx context.Context, from, to time.Time) ([]BreakEvent, error)

	// AllBreaks returns every break entry, oldest first.
	AllBreaks(ctx context.Context) ([]BreakEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
