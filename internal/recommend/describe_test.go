package recommend

import (
	"testing"

	"github.com/abhisek/breet/internal/breaks"
)

func TestDescriptionPolicy_Clean(t *testing.T) {
	policy := DefaultDescriptionPolicy()

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"valid", "slow side to side", "slow side to side", true},
		{"trims whitespace", "  rest your eyes  ", "rest your eyes", true},
		{"empty", "", "", false},
		{"too short", "stretch", "", false},
		{"too long", "a very long description that rambles", "", false},
		{"disallowed chars", "stretch & breathe", "", false},
		{"trailing period", "rest your eyes.", "", false},
		{"trailing bang", "drink water!!", "", false},
		{"ends with now", "Stretch it NOW", "", false},
		{"ends with please", "stand up please", "", false},
		{"exactly min length", "eightchr", "eightchr", true},
		{"exactly max length", "twenty characters ok", "twenty characters ok", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := policy.Clean(tt.in)
			if ok != tt.ok {
				t.Fatalf("Clean(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDescriptionPolicy_StockPhrases(t *testing.T) {
	policy := DefaultDescriptionPolicy()

	// Every stock phrase must itself pass the policy.
	for _, c := range breaks.Categories() {
		phrase := policy.StockPhrase(c)
		if _, ok := policy.Clean(phrase); !ok {
			t.Errorf("stock phrase for %s fails its own policy: %q", c, phrase)
		}
	}

	if policy.StockPhrase("unknown") != "take a short break" {
		t.Fatalf("unexpected default stock phrase")
	}
}
