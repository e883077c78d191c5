package plangen

import "github.com/skillsprint/skillsprint/internal/llm"

// PlanSchema defines the JSON schema for learning plan generation. Providers
// with structured output honor it; the parser still tolerates prose-wrapped
// arrays from those that do not.
var PlanSchema = &llm.Schema{
	Name:        "learning-plan",
	Description: "A learning plan of sequential milestones, each with daily tasks",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"milestone": map[string]any{
					"type":        "string",
					"description": "Milestone title, e.g. \"Milestone 1: Understanding the skill\"",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Short description of the milestone phase",
				},
				"tasks": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"day": map[string]any{
								"type":        "integer",
								"description": "Day number within the milestone, starting at 1",
							},
							"description": map[string]any{
								"type":        "string",
								"description": "Detailed step-by-step instructional guide for the day",
							},
							"link": map[string]any{
								"type":        "string",
								"description": "A real, reputable resource URL, or empty string",
							},
						},
						"required":             []any{"day", "description", "link"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"milestone", "description", "tasks"},
			"additionalProperties": false,
		},
	},
}
