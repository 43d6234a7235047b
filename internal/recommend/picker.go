package recommend

import (
	"fmt"
	"sync/atomic"

	"github.com/abhisek/breet/internal/breaks"
)

// genCounter feeds synthesized candidate ids. Global so ids stay unique
// across candidate sets within a process lifetime.
var genCounter atomic.Int64

// Pick deterministically selects n break candidates at the given
// duration. Categories seen in recentCategories and ids in excludeIDs
// are avoided; preferred categories are ordered first. Returning
// exactly n items is a hard postcondition: when the catalog runs out,
// placeholder candidates with fresh ids are synthesized, cycling
// through every category.
func Pick(n, minutes int, preferred, recentCategories []breaks.Category, excludeIDs []string) []Candidate {
	if n <= 0 {
		return []Candidate{}
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	recent := make(map[breaks.Category]bool, len(recentCategories))
	for _, c := range recentCategories {
		recent[c] = true
	}
	prefSet := make(map[breaks.Category]bool, len(preferred))
	for _, c := range preferred {
		prefSet[c] = true
	}

	policy := DefaultDescriptionPolicy()
	taken := make(map[string]bool, n)
	out := make([]Candidate, 0, n)

	add := func(b breaks.Break) {
		if len(out) >= n || excluded[b.ID] || taken[b.ID] {
			return
		}
		taken[b.ID] = true
		out = append(out, Candidate{
			ID:          b.ID,
			Category:    b.Category,
			Minutes:     minutes,
			Name:        b.Name,
			Description: b.Description,
		})
	}

	// Preferred categories first, rest in catalog order, both skipping
	// recently used categories.
	for _, b := range breaks.Library {
		if prefSet[b.Category] && !recent[b.Category] {
			add(b)
		}
	}
	for _, b := range breaks.Library {
		if !prefSet[b.Category] && !recent[b.Category] {
			add(b)
		}
	}

	// Pool exhausted: pad from the full catalog, still honoring exclusions.
	for _, b := range breaks.Library {
		add(b)
	}

	// Still short: synthesize placeholders cycling through categories.
	cats := breaks.Categories()
	for i := 0; len(out) < n; i++ {
		c := cats[i%len(cats)]
		out = append(out, Candidate{
			ID:          fmt.Sprintf("gen_%d_%s", genCounter.Add(1), c),
			Category:    c,
			Minutes:     minutes,
			Name:        string(c),
			Description: policy.StockPhrase(c),
		})
	}

	return out
}
