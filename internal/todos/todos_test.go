package todos

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/breet/internal/store"
)

func newTestList(t *testing.T) *List {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewList(s.KV())
}

func TestList_AddAndAll(t *testing.T) {
	ctx := context.Background()
	l := newTestList(t)

	first, err := l.Add(ctx, "write report")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}
	if _, err := l.Add(ctx, "review PR"); err != nil {
		t.Fatalf("add: %v", err)
	}

	all, err := l.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(all))
	}
	if all[0].Text != "write report" || all[1].Text != "review PR" {
		t.Fatalf("unexpected order: %q, %q", all[0].Text, all[1].Text)
	}
}

func TestList_Toggle(t *testing.T) {
	ctx := context.Background()
	l := newTestList(t)

	todo, err := l.Add(ctx, "stretch")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := l.Toggle(ctx, todo.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	all, _ := l.All(ctx)
	if !all[0].Done || all[0].CompletedAt == nil {
		t.Fatal("expected done with completion timestamp")
	}

	if err := l.Toggle(ctx, todo.ID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	all, _ = l.All(ctx)
	if all[0].Done || all[0].CompletedAt != nil {
		t.Fatal("expected not done with cleared timestamp")
	}

	if err := l.Toggle(ctx, "missing"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestList_Remove(t *testing.T) {
	ctx := context.Background()
	l := newTestList(t)

	todo, _ := l.Add(ctx, "hydrate")
	if err := l.Remove(ctx, todo.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	all, _ := l.All(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d", len(all))
	}

	if err := l.Remove(ctx, todo.ID); err == nil {
		t.Fatal("expected error for removed id")
	}
}

func TestList_Pending(t *testing.T) {
	ctx := context.Background()
	l := newTestList(t)

	for _, text := range []string{"a", "b", "c"} {
		if _, err := l.Add(ctx, text); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	all, _ := l.All(ctx)
	if err := l.Toggle(ctx, all[1].ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	pending, err := l.Pending(ctx, 5)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}

	capped, _ := l.Pending(ctx, 1)
	if len(capped) != 1 || capped[0].Text != "a" {
		t.Fatalf("expected only 'a', got %+v", capped)
	}
}

func TestList_CompletedYesterday(t *testing.T) {
	ctx := context.Background()
	l := newTestList(t)

	todo, _ := l.Add(ctx, "finished yesterday")
	if err := l.Toggle(ctx, todo.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Completed "now" is not yesterday from now's perspective.
	done, err := l.CompletedYesterday(ctx, time.Now())
	if err != nil {
		t.Fatalf("completed yesterday: %v", err)
	}
	if len(done) != 0 {
		t.Fatalf("expected none, got %d", len(done))
	}

	// But it is yesterday from tomorrow's perspective.
	done, err = l.CompletedYesterday(ctx, time.Now().AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("completed yesterday: %v", err)
	}
	if len(done) != 1 {
		t.Fatalf("expected 1, got %d", len(done))
	}
}
