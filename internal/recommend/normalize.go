package recommend

import (
	"math"

	"github.com/abhisek/breet/internal/breaks"
)

// ClampMinutes rounds a duration to the nearest whole minute and clamps
// it to the legal break range.
func ClampMinutes(minutes float64) int {
	m := int(math.Round(minutes))
	if m < MinMinutes {
		return MinMinutes
	}
	if m > MaxMinutes {
		return MaxMinutes
	}
	return m
}

// normalize maps an untrusted suggestion onto a catalog entry: exact id
// match first, then category match, then the catalog default. The
// duration is always forced to minutes regardless of what the model
// asked for.
func normalize(s suggestion, minutes int, policy DescriptionPolicy) Candidate {
	entry := breaks.ByID(s.ID)
	if entry == nil && s.Type != "" {
		entry = breaks.ByCategory(breaks.Category(s.Type))
	}
	if entry == nil {
		entry = &breaks.Library[0]
	}

	desc, ok := policy.Clean(s.Description)
	if !ok {
		desc = policy.StockPhrase(entry.Category)
	}

	return Candidate{
		ID:          entry.ID,
		Category:    entry.Category,
		Minutes:     minutes,
		Name:        entry.Name,
		Description: desc,
	}
}
