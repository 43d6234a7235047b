package recommend

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/breet/internal/breaks"
)

// DescriptionPolicy validates free text coming back from the model.
// Rules are data so the policy can be tuned without touching the
// pipeline: a length window, a character allowlist, and a list of
// forbidden endings that keep descriptions in noun-phrase style.
type DescriptionPolicy struct {
	MinLen            int
	MaxLen            int
	Allowed           *regexp.Regexp
	ForbiddenSuffixes []string
	StockPhrases      map[breaks.Category]string
}

// DefaultDescriptionPolicy returns the policy used by the pipeline.
func DefaultDescriptionPolicy() DescriptionPolicy {
	return DescriptionPolicy{
		MinLen:            8,
		MaxLen:            20,
		Allowed:           regexp.MustCompile(`^[a-zA-Z0-9 ,'-]+$`),
		ForbiddenSuffixes: []string{".", "!", "?", " now", " please"},
		StockPhrases: map[breaks.Category]string{
			breaks.CategoryEyeExercise: "rest your eyes",
			breaks.CategoryStretching:  "loosen tight muscles",
			breaks.CategoryBreathing:   "slow steady breaths",
			breaks.CategoryHydration:   "sip a glass of water",
			breaks.CategoryMovement:    "get the blood moving",
		},
	}
}

// Clean validates a description. It returns the trimmed text and true
// when the text passes every rule, or ("", false) when it must be
// replaced with a stock phrase.
func (p DescriptionPolicy) Clean(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if n := utf8.RuneCountInString(s); n < p.MinLen || n > p.MaxLen {
		return "", false
	}

	if p.Allowed != nil && !p.Allowed.MatchString(s) {
		return "", false
	}

	lower := strings.ToLower(s)
	for _, suffix := range p.ForbiddenSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return "", false
		}
	}

	return s, true
}

// StockPhrase returns the category's fallback description.
func (p DescriptionPolicy) StockPhrase(c breaks.Category) string {
	if phrase, ok := p.StockPhrases[c]; ok {
		return phrase
	}
	return "take a short break"
}
