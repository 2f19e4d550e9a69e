package tui

import (
	"testing"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

func TestDefaultAttributes(t *testing.T) {
	attributes := DefaultAttributes("section")

	items, ok := attributes[attrItems].([]models.RepeaterItem)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one seed item, got %v", attributes[attrItems])
	}
	if items[0].ID != 1 || !items[0].Collapsed {
		t.Errorf("unexpected seed item: %+v", items[0])
	}
	if attributes[attrLayout] != "grid" {
		t.Errorf("section should default to grid layout, got %v", attributes[attrLayout])
	}
}

func TestControlsForSectionBlock(t *testing.T) {
	block := &models.Block{
		Name:       "hero",
		Type:       "section",
		Attributes: DefaultAttributes("section"),
	}
	store := attrs.NewStore(block, nil)
	controls := controlsForBlock(store, models.DefaultSettings())

	if len(controls) != 5 {
		t.Fatalf("expected 5 controls for a section block, got %d", len(controls))
	}

	labels := make([]string, len(controls))
	for i, control := range controls {
		labels[i] = control.Label()
	}
	want := []string{"Title", "Layout", "Colors", "Items", "HTML Anchor"}
	for i, label := range want {
		if labels[i] != label {
			t.Errorf("control %d = %q, want %q", i, labels[i], label)
		}
	}
}

func TestAnchorDisabledForStackLayout(t *testing.T) {
	block := &models.Block{
		Name:       "hero",
		Type:       "section",
		Attributes: DefaultAttributes("section"),
	}
	store := attrs.NewStore(block, nil)
	controls := controlsForBlock(store, models.DefaultSettings())
	anchor := controls[4]

	if anchor.Disabled() {
		t.Error("anchor should be enabled for the default grid layout")
	}

	store.Set(attrLayout, "stack")
	if !anchor.Disabled() {
		t.Error("anchor should disable while the section is stacked")
	}

	store.Set(attrLayout, "list")
	if anchor.Disabled() {
		t.Error("anchor should re-enable for list layout")
	}
}

func TestControlsForUnknownBlockType(t *testing.T) {
	block := &models.Block{
		Name:       "mystery",
		Type:       "custom",
		Attributes: DefaultAttributes("custom"),
	}
	store := attrs.NewStore(block, nil)
	controls := controlsForBlock(store, models.DefaultSettings())

	if len(controls) != 2 {
		t.Fatalf("expected generic panel with 2 controls, got %d", len(controls))
	}
}
