package curriculum

// curriculumSchema is the JSON schema a custom curriculum file must
// satisfy before it replaces the built-in catalog.
var curriculumSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"modules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":              map[string]any{"type": "string", "minLength": 1},
					"title":           map[string]any{"type": "string", "minLength": 1},
					"estimated_weeks": map[string]any{"type": "integer", "minimum": 0},
					"lessons": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":    map[string]any{"type": "string", "minLength": 1},
								"title": map[string]any{"type": "string", "minLength": 1},
								"type": map[string]any{
									"type": "string",
									"enum": []any{"standard", "practice"},
								},
								"validation_required": map[string]any{"type": "boolean"},
								"difficulty":          map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
								"duration_mins":       map[string]any{"type": "integer", "minimum": 0},
								"content":             map[string]any{"type": "string"},
							},
							"required":             []any{"id", "title", "type", "difficulty"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "lessons"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"modules"},
	"additionalProperties": false,
}
