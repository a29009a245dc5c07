package questionbank

// bankSchema is the JSON Schema every question bank document must satisfy
// before it is decoded.
var bankSchema = map[string]any{
	"type":    "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{
			"type": "string",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"dosha": map[string]any{
									"type": "string",
									"enum": []any{"vata", "pitta", "kapha"},
								},
							},
							"required":             []any{"text", "dosha"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "prompt", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "questions"},
	"additionalProperties": false,
}
