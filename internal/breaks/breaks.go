// Package breaks holds the static catalog of break activities.
// Everything else in the recommender normalizes onto this catalog.
package breaks

// Category classifies a break activity.
type Category string

const (
	CategoryEyeExercise Category = "eyeExercise"
	CategoryStretching  Category = "stretching"
	CategoryBreathing   Category = "breathing"
	CategoryHydration   Category = "hydration"
	CategoryMovement    Category = "movement"
)

// Categories lists all known categories in catalog order.
// Synthesized candidates cycle through this slice.
func Categories() []Category {
	return []Category{
		CategoryEyeExercise,
		CategoryStretching,
		CategoryBreathing,
		CategoryHydration,
		CategoryMovement,
	}
}

// Break is a single catalog entry.
type Break struct {
	ID             string
	Name           string
	Category       Category
	DefaultMinutes int
	Description    string
	Instructions   []string
}

// Library is the fixed break catalog. Order matters: the first entry is
// the default when normalization finds no better match.
var Library = []Break{
	{
		ID:             "eye_20_20_20",
		Name:           "20-20-20 eye break",
		Category:       CategoryEyeExercise,
		DefaultMinutes: 1,
		Description:    "gaze twenty feet away",
		Instructions:   []string{"Look at something at least 6m away for 20 seconds"},
	},
	{
		ID:             "neck_stretch_3",
		Name:           "neck stretch",
		Category:       CategoryStretching,
		DefaultMinutes: 3,
		Description:    "slow side to side",
		Instructions:   []string{"Left/right, 10 seconds each", "Forward/back, 10 seconds each"},
	},
	{
		ID:             "box_breath_4",
		Name:           "box breathing",
		Category:       CategoryBreathing,
		DefaultMinutes: 4,
		Description:    "four by four rhythm",
		Instructions:   []string{"Inhale 4", "Hold 4", "Exhale 4", "Hold 4"},
	},
	{
		ID:             "drink_water_1",
		Name:           "drink water",
		Category:       CategoryHydration,
		DefaultMinutes: 1,
		Description:    "one full glass",
		Instructions:   []string{"Get a glass of water and sip it slowly"},
	},
	{
		ID:             "walk_in_place_3",
		Name:           "walk in place",
		Category:       CategoryMovement,
		DefaultMinutes: 3,
		Description:    "loosen up lightly",
		Instructions:   []string{"Walk in place for 3 minutes"},
	},
}

// ByID returns the catalog entry with the given id, or nil.
func ByID(id string) *Break {
	for i := range Library {
		if Library[i].ID == id {
			return &Library[i]
		}
	}
	return nil
}

// ByCategory returns the first catalog entry of the given category, or nil.
func ByCategory(c Category) *Break {
	for i := range Library {
		if Library[i].Category == c {
			return &Library[i]
		}
	}
	return nil
}

// Next picks the next break heuristically: avoid the previous id (or the
// most recent history id), prefer the given categories, fall back to the
// first catalog entry.
func Next(prevID string, preferred []Category, recentIDs []string) Break {
	avoid := prevID
	if avoid == "" && len(recentIDs) > 0 {
		avoid = recentIDs[len(recentIDs)-1]
	}

	var pool []Break
	for _, b := range Library {
		if b.ID != avoid {
			pool = append(pool, b)
		}
	}
	if len(pool) == 0 {
		return Library[0]
	}

	if len(preferred) > 0 {
		prefSet := make(map[Category]bool, len(preferred))
		for _, c := range preferred {
			prefSet[c] = true
		}
		for _, b := range pool {
			if prefSet[b.Category] {
				return b
			}
		}
	}
	return pool[0]
}
