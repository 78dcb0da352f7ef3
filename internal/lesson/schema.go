package lesson

// cardSchema is the JSON Schema every lesson card must satisfy before
// decoding. It checks structure and tags, not pedagogy: per-item field
// consistency (e.g. an mcq without choices) is reported at render time
// so one bad item cannot block the whole card.
var cardSchema = map[string]any{
	"type":     "object",
	"required": []any{"title", "concepts"},
	"properties": map[string]any{
		"week":  map[string]any{"type": "integer", "minimum": 0},
		"title": map[string]any{"type": "string", "minLength": 1},
		"goals": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":       "object",
				"required":   []any{"text"},
				"properties": map[string]any{"text": map[string]any{"type": "string"}},
			},
		},
		"prerequisites": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"text"},
				"properties": map[string]any{
					"type": map[string]any{
						"enum": []any{"text", "input", "mcq"},
					},
					"text":         map[string]any{"type": "string"},
					"answer":       map[string]any{"type": "string"},
					"choices":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"correctIndex": map[string]any{"type": "integer", "minimum": 0},
					"isRequired":   map[string]any{"type": "boolean"},
					"hints":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
		"concepts": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"flow": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"type"},
							"properties": map[string]any{
								"type": map[string]any{
									"enum": []any{
										"explain", "example", "mistake", "nonexample",
										"note", "detail", "video", "image",
										"mcq", "input", "ordering", "match",
										"fillblank", "question",
									},
								},
								"text": map[string]any{"type": "string"},
								"url":  map[string]any{"type": "string"},
							},
						},
					},
				},
			},
		},
		"assessment": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"text"},
						"properties": map[string]any{
							"type": map[string]any{
								"enum": []any{"mcq", "input", "ordering", "match", "fillblank"},
							},
							"text":   map[string]any{"type": "string"},
							"points": map[string]any{"type": "integer", "minimum": 1},
						},
					},
				},
			},
		},
	},
}
