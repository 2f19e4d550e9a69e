package tui

import (
	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/condition"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

// Attribute keys for the built-in section block.
const (
	attrTitle      = "title"
	attrLayout     = "layout"
	attrTextColor  = "text_color"
	attrBackground = "background_color"
	attrItems      = "items"
	attrAnchor     = "anchor"
)

func defaultPalette() []models.NamedColor {
	return []models.NamedColor{
		{Name: "Black", Hex: "#1a1a1a"},
		{Name: "White", Hex: "#f5f5f5"},
		{Name: "Red", Hex: "#cf2e2e"},
		{Name: "Orange", Hex: "#ff6900"},
		{Name: "Green", Hex: "#00d084"},
		{Name: "Blue", Hex: "#0693e3"},
		{Name: "Purple", Hex: "#9b51e0"},
	}
}

// DefaultAttributes returns the attribute defaults a freshly created block
// starts with. The repeater list starts with a single item so the
// prevent-empty policy has something to protect.
func DefaultAttributes(blockType string) map[string]any {
	attributes := map[string]any{
		attrTitle: "",
		attrItems: []models.RepeaterItem{
			{ID: 1, Label: "Item 1", Collapsed: true},
		},
	}
	if blockType == "section" {
		attributes[attrLayout] = "grid"
	}
	return attributes
}

// controlsForBlock builds the inspector panel for a block type. Unknown types
// get the generic title + items panel.
func controlsForBlock(store *attrs.Store, settings *models.Settings) []Control {
	itemsConfig := models.RepeaterConfig{
		Attribute:     attrItems,
		Label:         "Items",
		AddButtonText: settings.Editor.DefaultAddLabel,
	}

	switch store.Block().Type {
	case "section":
		return []Control{
			NewTextControl(models.TextConfig{
				Attribute:   attrTitle,
				Label:       "Title",
				Placeholder: "Section title",
			}, store),
			NewToggleControl(models.ToggleConfig{
				Attribute: attrLayout,
				Label:     "Layout",
				Options: []models.ToggleOption{
					{Label: "Grid", Value: "grid"},
					{Label: "List", Value: "list"},
					{Label: "Stack", Value: "stack"},
				},
			}, store),
			NewColorControl(models.ColorConfig{
				Label: "Colors",
				Tabs: []models.ColorTab{
					{Key: attrTextColor, Label: "Text"},
					{Key: attrBackground, Label: "Background"},
				},
				Palette: defaultPalette(),
			}, store),
			NewRepeaterControl(itemsConfig, store, settings),
			// Anchors only make sense for flowing layouts, so the field shuts
			// off while the section is stacked.
			NewTextControl(models.TextConfig{
				Attribute:   attrAnchor,
				Label:       "HTML Anchor",
				Placeholder: "my-section",
				DisabledWhen: &condition.Rule{
					Attribute: attrLayout,
					Equals:    "stack",
				},
			}, store),
		}

	default:
		return []Control{
			NewTextControl(models.TextConfig{
				Attribute:   attrTitle,
				Label:       "Title",
				Placeholder: "Block title",
			}, store),
			NewRepeaterControl(itemsConfig, store, settings),
		}
	}
}
