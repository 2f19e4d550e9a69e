package examples

import "github.com/blockpad/blockpad-cli/pkg/models"

func getLandingExamples() []BlockSet {
	return []BlockSet{
		{
			Name:        "Landing Page",
			Description: "Hero, feature grid and footer for a product landing page",
			Blocks: []SampleBlock{
				{
					Name:     "Hero",
					Filename: "hero.yaml",
					Type:     "section",
					Attributes: map[string]any{
						"title":            "Build pages out of blocks",
						"layout":           "stack",
						"text_color":       "#f5f5f5",
						"background_color": "#1a1a1a",
						"items": []models.RepeaterItem{
							{ID: 1, Label: "Headline", Value: "Edit every block from your terminal", Collapsed: true},
							{ID: 2, Label: "Call to action", Value: "blockpad init", Collapsed: true},
						},
					},
				},
				{
					Name:     "Features",
					Filename: "features.yaml",
					Type:     "section",
					Attributes: map[string]any{
						"title":  "Why Blockpad",
						"layout": "grid",
						"anchor": "features",
						"items": []models.RepeaterItem{
							{ID: 1, Label: "Plain YAML", Value: "Blocks are files you can diff and review", Collapsed: true},
							{ID: 2, Label: "Keyboard first", Value: "Reorder, duplicate and toggle without a mouse", Collapsed: true},
							{ID: 3, Label: "Exportable", Value: "Compose every block into one document", Collapsed: true},
						},
					},
				},
				{
					Name:     "Footer",
					Filename: "footer.yaml",
					Type:     "section",
					Attributes: map[string]any{
						"title":  "Footer",
						"layout": "list",
						"items": []models.RepeaterItem{
							{ID: 1, Label: "Docs", Collapsed: true},
							{ID: 2, Label: "Source", Collapsed: true},
						},
					},
				},
			},
		},
	}
}
