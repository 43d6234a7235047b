package recommend

import (
	"testing"

	"github.com/abhisek/breet/internal/breaks"
)

func TestClampMinutes(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{5, 5},
		{4.4, 4},
		{4.5, 5},
		{0, 1},
		{-3, 1},
		{0.4, 1},
		{15, 15},
		{15.6, 15},
		{100, 15},
	}

	for _, tt := range tests {
		if got := ClampMinutes(tt.in); got != tt.want {
			t.Errorf("ClampMinutes(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_ExactIDMatch(t *testing.T) {
	c := normalize(suggestion{ID: "box_breath_4", Duration: 99}, 5, DefaultDescriptionPolicy())
	if c.ID != "box_breath_4" {
		t.Fatalf("expected id match, got %s", c.ID)
	}
	if c.Category != breaks.CategoryBreathing {
		t.Fatalf("expected breathing, got %s", c.Category)
	}
	if c.Minutes != 5 {
		t.Fatalf("duration must be forced to 5, got %d", c.Minutes)
	}
}

func TestNormalize_CategoryMatch(t *testing.T) {
	c := normalize(suggestion{ID: "nonsense", Type: "hydration"}, 3, DefaultDescriptionPolicy())
	if c.ID != "drink_water_1" {
		t.Fatalf("expected category fallback to drink_water_1, got %s", c.ID)
	}
}

func TestNormalize_DefaultFallback(t *testing.T) {
	c := normalize(suggestion{ID: "nonsense", Type: "nonsense"}, 3, DefaultDescriptionPolicy())
	if c.ID != breaks.Library[0].ID {
		t.Fatalf("expected catalog default %s, got %s", breaks.Library[0].ID, c.ID)
	}
}

func TestNormalize_DescriptionCleaning(t *testing.T) {
	policy := DefaultDescriptionPolicy()

	c := normalize(suggestion{ID: "neck_stretch_3", Description: "roll your shoulders"}, 5, policy)
	if c.Description != "roll your shoulders" {
		t.Fatalf("valid description rejected: %q", c.Description)
	}

	c = normalize(suggestion{ID: "neck_stretch_3", Description: "do it now!"}, 5, policy)
	if c.Description != policy.StockPhrase(breaks.CategoryStretching) {
		t.Fatalf("expected stock phrase, got %q", c.Description)
	}
}
