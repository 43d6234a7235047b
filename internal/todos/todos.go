// Package todos manages the lightweight task list shown next to the
// timer. Pending and recently completed tasks feed the recommendation
// context.
package todos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/breet/internal/store"
)

// Todo is one task on the list.
type Todo struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Done        bool       `json:"done"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// List is the KV-backed todo repository.
type List struct {
	kv *store.KV
}

// NewList creates a todo repository on the shared store.
func NewList(kv *store.KV) *List {
	return &List{kv: kv}
}

func (l *List) load(ctx context.Context) ([]Todo, error) {
	var items []Todo
	if _, err := l.kv.Get(ctx, store.KeyTodos, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (l *List) save(ctx context.Context, items []Todo) error {
	return l.kv.Set(ctx, store.KeyTodos, items)
}

// All returns every todo, oldest first.
func (l *List) All(ctx context.Context) ([]Todo, error) {
	return l.load(ctx)
}

// Add appends a new pending todo and returns it.
func (l *List) Add(ctx context.Context, text string) (Todo, error) {
	items, err := l.load(ctx)
	if err != nil {
		return Todo{}, err
	}

	todo := Todo{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}
	items = append(items, todo)

	if err := l.save(ctx, items); err != nil {
		return Todo{}, err
	}
	return todo, nil
}

// Toggle flips the done flag of the todo with the given id.
func (l *List) Toggle(ctx context.Context, id string) error {
	items, err := l.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Done = !items[i].Done
		if items[i].Done {
			now := time.Now()
			items[i].CompletedAt = &now
		} else {
			items[i].CompletedAt = nil
		}
		return l.save(ctx, items)
	}
	return fmt.Errorf("todo %q not found", id)
}

// Remove deletes the todo with the given id.
func (l *List) Remove(ctx context.Context, id string) error {
	items, err := l.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return l.save(ctx, items)
		}
	}
	return fmt.Errorf("todo %q not found", id)
}

// Pending returns up to max unfinished todos, oldest first.
func (l *List) Pending(ctx context.Context, max int) ([]Todo, error) {
	items, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	var pending []Todo
	for _, t := range items {
		if !t.Done {
			pending = append(pending, t)
			if len(pending) == max {
				break
			}
		}
	}
	return pending, nil
}

// CompletedYesterday returns todos completed on the calendar day before now.
func (l *List) CompletedYesterday(ctx context.Context, now time.Time) ([]Todo, error) {
	items, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	y := now.AddDate(0, 0, -1)
	dayStart := time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var done []Todo
	for _, t := range items {
		if t.Done && t.CompletedAt != nil &&
			!t.CompletedAt.Before(dayStart) && t.CompletedAt.Before(dayEnd) {
			done = append(done, t)
		}
	}
	return done, nil
}
