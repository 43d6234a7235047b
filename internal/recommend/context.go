package recommend

import (
	"context"

	"github.com/abhisek/breet/internal/breaks"
	"github.com/abhisek/breet/internal/profile"
	"github.com/abhisek/breet/internal/store"
	"github.com/abhisek/breet/internal/todos"
)

// Bounds on the request context sent to the model. Small payloads keep
// latency inside the pipeline's timeout.
const (
	maxProfileItems = 3
	maxHistoryItems = 3
	maxTodoItems    = 5
	maxQuickEdits   = 3
)

// historyGlance is the trimmed view of one past break.
type historyGlance struct {
	Category  breaks.Category `json:"category"`
	Completed bool            `json:"completed"`
}

// promptContext is the bounded context serialized into the model prompt.
type promptContext struct {
	WorkPatterns        []string          `json:"workPatterns,omitempty"`
	HealthConcerns      []string          `json:"healthConcerns,omitempty"`
	PreferredCategories []breaks.Category `json:"preferredCategories,omitempty"`
	RecentBreaks        []historyGlance   `json:"recentBreaks,omitempty"`
	Tasks               []string          `json:"tasks,omitempty"`
	QuickEdits          []string          `json:"quickEdits,omitempty"`
	AllowedDuration     int               `json:"allowedDuration"`
	ExcludeIDs          []string          `json:"excludeIds,omitempty"`
}

func capStrings(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

// buildContext assembles the bounded context from the shared store.
// Read failures degrade to an emptier context rather than aborting.
func (s *Service) buildContext(ctx context.Context, minutes int, excludeIDs []string) promptContext {
	pc := promptContext{
		AllowedDuration: minutes,
		ExcludeIDs:      excludeIDs,
	}

	if prof, err := profile.Load(ctx, s.kv); err == nil {
		pc.WorkPatterns = capStrings(prof.WorkPatterns, maxProfileItems)
		pc.HealthConcerns = capStrings(prof.HealthConcerns, maxProfileItems)
		cats := prof.PreferredCategories
		if len(cats) > maxProfileItems {
			cats = cats[:maxProfileItems]
		}
		pc.PreferredCategories = cats
	}

	if recent, err := s.events.RecentBreaks(ctx, maxHistoryItems); err == nil {
		for _, ev := range recent {
			pc.RecentBreaks = append(pc.RecentBreaks, historyGlance{
				Category:  breaks.Category(ev.Category),
				Completed: ev.Completed,
			})
		}
	}

	list := todos.NewList(s.kv)
	if pending, err := list.Pending(ctx, maxTodoItems); err == nil {
		for _, t := range pending {
			pc.Tasks = append(pc.Tasks, t.Text)
		}
	}
	if len(pc.Tasks) < maxTodoItems {
		if done, err := list.CompletedYesterday(ctx, s.now()); err == nil {
			for _, t := range done {
				if len(pc.Tasks) >= maxTodoItems {
					break
				}
				pc.Tasks = append(pc.Tasks, "done yesterday: "+t.Text)
			}
		}
	}

	var edits []string
	if _, err := s.kv.Get(ctx, store.KeyQuickEdits, &edits); err == nil {
		pc.QuickEdits = capStrings(edits, maxQuickEdits)
	}

	return pc
}

// recentCategories extracts the categories of the last few breaks for
// the rule-based picker.
func (s *Service) recentCategories(ctx context.Context) []breaks.Category {
	recent, err := s.events.RecentBreaks(ctx, maxHistoryItems)
	if err != nil {
		return nil
	}
	var cats []breaks.Category
	for _, ev := range recent {
		cats = append(cats, breaks.Category(ev.Category))
	}
	return cats
}
