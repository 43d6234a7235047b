package breaks

import "testing"

func TestByID(t *testing.T) {
	b := ByID("box_breath_4")
	if b == nil {
		t.Fatal("expected catalog entry for box_breath_4")
	}
	if b.Category != CategoryBreathing {
		t.Errorf("category = %q, want breathing", b.Category)
	}

	if ByID("no_such_break") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestByCategory(t *testing.T) {
	for _, c := range Categories() {
		b := ByCategory(c)
		if b == nil {
			t.Errorf("no catalog entry for category %q", c)
			continue
		}
		if b.Category != c {
			t.Errorf("ByCategory(%q) returned entry of category %q", c, b.Category)
		}
	}
}

func TestNext_AvoidsPrevious(t *testing.T) {
	b := Next("eye_20_20_20", nil, nil)
	if b.ID == "eye_20_20_20" {
		t.Error("Next returned the avoided id")
	}
}

func TestNext_PrefersCategory(t *testing.T) {
	b := Next("", []Category{CategoryHydration}, nil)
	if b.Category != CategoryHydration {
		t.Errorf("category = %q, want hydration", b.Category)
	}
}

func TestNext_UsesRecentHistory(t *testing.T) {
	b := Next("", nil, []string{"box_breath_4", "neck_stretch_3"})
	if b.ID == "neck_stretch_3" {
		t.Error("Next returned the most recent history id")
	}
}
