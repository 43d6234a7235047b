package components

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/breet/internal/ui/theme"
)

func TestProgressBarFillsConfiguredWidth(t *testing.T) {
	bar := ProgressBar{Label: "x", Percent: 0.5, Width: 30, Color: theme.Work}

	view := bar.View()
	if view == "" {
		t.Fatal("empty render")
	}
	if got := lipgloss.Width(view); got != 30 {
		t.Fatalf("rendered width = %d, want 30", got)
	}
}

func TestNewProgressBarHasDefaultColor(t *testing.T) {
	bar := NewProgressBar("", 0, false, 20)
	if bar.Color == nil {
		t.Fatal("default color not set")
	}
}
