package recommend

import "github.com/abhisek/breet/internal/llm"

// SuggestionsSchema defines the JSON schema for break suggestion responses.
var SuggestionsSchema = &llm.Schema{
	Name:        "break-suggestions",
	Description: "A short list of break activity suggestions for the user's next break",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Catalog id of the activity if one fits, otherwise empty",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"eyeExercise", "stretching", "breathing", "hydration", "movement"},
							"description": "Activity category",
						},
						"duration": map[string]any{
							"type":        "number",
							"description": "Suggested duration in minutes",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Short noun-phrase description, 8-20 characters, plain ASCII",
						},
					},
					"required": []any{"type", "duration"},
				},
				"minItems":    1,
				"maxItems":    3,
				"description": "Up to 3 suggestions, most suitable first",
			},
		},
		"required":             []any{"suggestions"},
		"additionalProperties": false,
	},
}
