package recommend

import (
	"fmt"
	"strings"

	"github.com/abhisek/breet/internal/breaks"
)

const systemPrompt = `You are a wellbeing assistant suggesting short desk breaks between work intervals.

Rules:
- Suggest up to 3 activities, most suitable first, drawn from these categories: eyeExercise, stretching, breathing, hydration, movement.
- Prefer activities the user has not done recently and vary the categories across suggestions.
- When a catalog activity fits, reference it by its id; otherwise leave the id empty and set only the category.
- Durations must fit the allowed duration exactly.
- Descriptions are short noun phrases, 8-20 characters, plain ASCII, no trailing punctuation.
- Never suggest an activity whose id is in the exclude list.`

// buildPrompt formats the bounded context as the user message.
func buildPrompt(pc promptContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Allowed duration: %d minutes\n", pc.AllowedDuration)

	if len(pc.ExcludeIDs) > 0 {
		fmt.Fprintf(&b, "Exclude ids: %s\n", strings.Join(pc.ExcludeIDs, ", "))
	}

	if len(pc.PreferredCategories) > 0 {
		b.WriteString("Preferred categories: ")
		for i, c := range pc.PreferredCategories {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(string(c))
		}
		b.WriteString("\n")
	}

	if len(pc.WorkPatterns) > 0 {
		fmt.Fprintf(&b, "Work patterns: %s\n", strings.Join(pc.WorkPatterns, "; "))
	}
	if len(pc.HealthConcerns) > 0 {
		fmt.Fprintf(&b, "Health concerns: %s\n", strings.Join(pc.HealthConcerns, "; "))
	}

	if len(pc.RecentBreaks) > 0 {
		b.WriteString("Recent breaks:\n")
		for _, h := range pc.RecentBreaks {
			status := "skipped"
			if h.Completed {
				status = "completed"
			}
			fmt.Fprintf(&b, "- %s (%s)\n", h.Category, status)
		}
	}

	if len(pc.Tasks) > 0 {
		b.WriteString("Current tasks:\n")
		for _, task := range pc.Tasks {
			fmt.Fprintf(&b, "- %s\n", task)
		}
	}

	if len(pc.QuickEdits) > 0 {
		b.WriteString("Recent notes:\n")
		for _, e := range pc.QuickEdits {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	b.WriteString("\nCatalog:\n")
	for _, entry := range breaks.Library {
		fmt.Fprintf(&b, "- %s (%s): %s\n", entry.ID, entry.Category, entry.Name)
	}

	return b.String()
}
