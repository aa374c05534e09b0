package dashsmart

// payloadSchema describes the structural envelope an analysis payload must
// satisfy before the typed decode runs. Only structurally unusable payloads
// are rejected here; per-widget shape gaps are repaired during decode.
func payloadSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"widgets"},
		"properties": map[string]any{
			"dataset_title":   map[string]any{"type": "string"},
			"dataset_summary": map[string]any{"type": "string"},
			"title":           map[string]any{"type": "string"},
			"summary":         map[string]any{"type": "string"},
			"kpis": map[string]any{
				"type":  "array",
				"items": kpiSchema(),
			},
			"widgets": map[string]any{
				"type":  "array",
				"items": widgetSchema(),
			},
			"insights": map[string]any{
				"type":  "array",
				"items": insightSchema(),
			},
		},
	}
}

func widgetSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"type"},
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"tab":         map[string]any{"type": "string"},
			"type": map[string]any{
				"type": "string",
				"enum": []string{
					string(TypeArea),
					string(TypeBar),
					string(TypeLine),
					string(TypePie),
					string(TypeComposed),
					string(TypeTable),
				},
			},
			"xAxisKey": map[string]any{"type": "string"},
			"data": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
			// Series and column entries are repaired at decode time
			// (keyless entries dropped, unknown formats pass through to
			// the auto-format rule), so the envelope only pins their
			// container shape.
			"series": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"key":   map[string]any{"type": "string"},
						"name":  map[string]any{"type": "string"},
						"color": map[string]any{"type": "string"},
					},
				},
			},
			"columns": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"key":    map[string]any{"type": "string"},
						"label":  map[string]any{"type": "string"},
						"format": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func kpiSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"label":    map[string]any{"type": "string"},
			"value":    map[string]any{"type": []string{"string", "number"}},
			"subValue": map[string]any{"type": "string"},
			// Trend and iconHint are display hints. Off-vocabulary
			// values fall back to the neutral rendering, so they never
			// sink the whole document.
			"trend":      map[string]any{"type": "string"},
			"trendValue": map[string]any{"type": "string"},
			"iconHint":   map[string]any{"type": "string"},
		},
	}
}

func insightSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"type":        map[string]any{"type": "string"},
		},
	}
}
