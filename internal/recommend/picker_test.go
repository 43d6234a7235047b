package recommend

import (
	"strings"
	"testing"

	"github.com/abhisek/breet/internal/breaks"
)

func TestPick_ExactCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 8, 20} {
		got := Pick(n, 5, nil, nil, nil)
		if len(got) != n {
			t.Fatalf("Pick(%d): got %d candidates", n, len(got))
		}
	}
}

func TestPick_DurationApplied(t *testing.T) {
	for _, c := range Pick(3, 7, nil, nil, nil) {
		if c.Minutes != 7 {
			t.Fatalf("candidate %s has minutes %d, want 7", c.ID, c.Minutes)
		}
	}
}

func TestPick_RespectsExclusions(t *testing.T) {
	exclude := []string{"eye_20_20_20", "neck_stretch_3"}
	got := Pick(3, 5, nil, nil, exclude)

	for _, c := range got {
		for _, id := range exclude {
			if c.ID == id {
				t.Fatalf("excluded id %s appeared in result", id)
			}
		}
	}
}

func TestPick_UniqueIDs(t *testing.T) {
	got := Pick(10, 5, nil, nil, nil)
	seen := make(map[string]bool)
	for _, c := range got {
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestPick_PreferredFirst(t *testing.T) {
	got := Pick(3, 5, []breaks.Category{breaks.CategoryHydration}, nil, nil)
	if got[0].Category != breaks.CategoryHydration {
		t.Fatalf("expected hydration first, got %s", got[0].Category)
	}
}

func TestPick_AvoidsRecentCategories(t *testing.T) {
	recent := []breaks.Category{breaks.CategoryEyeExercise, breaks.CategoryStretching}
	got := Pick(3, 5, nil, recent, nil)

	for _, c := range got {
		if c.Category == breaks.CategoryEyeExercise || c.Category == breaks.CategoryStretching {
			t.Fatalf("recent category %s appeared while pool not exhausted", c.Category)
		}
	}
}

func TestPick_RecentCategoriesUsedWhenPoolExhausted(t *testing.T) {
	// Avoiding every category forces the full-catalog pad.
	got := Pick(3, 5, nil, breaks.Categories(), nil)
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	for _, c := range got {
		if strings.HasPrefix(c.ID, "gen_") {
			t.Fatalf("expected catalog entries before synthesis, got %s", c.ID)
		}
	}
}

func TestPick_SynthesizesWhenCatalogExcluded(t *testing.T) {
	var allIDs []string
	for _, b := range breaks.Library {
		allIDs = append(allIDs, b.ID)
	}

	got := Pick(7, 5, nil, nil, allIDs)
	if len(got) != 7 {
		t.Fatalf("expected 7, got %d", len(got))
	}

	cats := breaks.Categories()
	seen := make(map[string]bool)
	for i, c := range got {
		if !strings.HasPrefix(c.ID, "gen_") {
			t.Fatalf("expected synthesized id, got %s", c.ID)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate synthesized id %s", c.ID)
		}
		seen[c.ID] = true
		if c.Category != cats[i%len(cats)] {
			t.Fatalf("slot %d: category %s, want %s (cycling)", i, c.Category, cats[i%len(cats)])
		}
	}
}
