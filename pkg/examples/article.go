package examples

import "github.com/blockpad/blockpad-cli/pkg/models"

func getArticleExamples() []BlockSet {
	return []BlockSet{
		{
			Name:        "Article",
			Description: "Intro section plus running notes for a long-form article",
			Blocks: []SampleBlock{
				{
					Name:     "Introduction",
					Filename: "introduction.yaml",
					Type:     "section",
					Attributes: map[string]any{
						"title":  "Introduction",
						"layout": "list",
						"anchor": "intro",
						"items": []models.RepeaterItem{
							{ID: 1, Label: "Hook", Value: "Open with the problem, not the tool", Collapsed: true},
							{ID: 2, Label: "Thesis", Collapsed: true},
						},
					},
				},
				{
					Name:     "Outline",
					Filename: "outline.yaml",
					Type:     "note",
					Attributes: map[string]any{
						"title": "Outline",
						"items": []models.RepeaterItem{
							{ID: 1, Label: "Background", Collapsed: true},
							{ID: 2, Label: "Walkthrough", Collapsed: true},
							{ID: 3, Label: "Conclusion", Collapsed: true},
						},
					},
				},
			},
		},
	}
}
