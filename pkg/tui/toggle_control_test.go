package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockpad/blockpad-cli/pkg/condition"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

func makeToggleControl(attributes map[string]any) (*ToggleControl, *int) {
	store, commits := makeControlStore(attributes)
	control := NewToggleControl(models.ToggleConfig{
		Attribute: "layout",
		Label:     "Layout",
		Options: []models.ToggleOption{
			{Label: "Grid", Value: "grid"},
			{Label: "List", Value: "list"},
			{Label: "Stack", Value: "stack"},
		},
	}, store)
	return control, commits
}

func TestToggleControlSelectionDerivedFromStore(t *testing.T) {
	control, _ := makeToggleControl(map[string]any{"layout": "list"})
	if got := control.selectedIndex(); got != 1 {
		t.Errorf("selectedIndex() = %d, want 1", got)
	}

	// Unknown or missing values fall back to the first option
	control.store.Set("layout", "bogus")
	if got := control.selectedIndex(); got != 0 {
		t.Errorf("selectedIndex() for unknown value = %d, want 0", got)
	}
}

func TestToggleControlMoveCommitsImmediately(t *testing.T) {
	control, commits := makeToggleControl(map[string]any{"layout": "grid"})

	control.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := control.store.String("layout"); got != "list" {
		t.Errorf("right should select list, got %q", got)
	}
	if *commits != 1 {
		t.Errorf("selection change should commit, got %d commits", *commits)
	}

	control.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := control.store.String("layout"); got != "grid" {
		t.Errorf("left should select grid, got %q", got)
	}
}

func TestToggleControlBounds(t *testing.T) {
	control, commits := makeToggleControl(map[string]any{"layout": "grid"})

	control.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := control.store.String("layout"); got != "grid" {
		t.Errorf("left at first option should be a no-op, got %q", got)
	}

	control.store.Set("layout", "stack")
	control.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := control.store.String("layout"); got != "stack" {
		t.Errorf("right at last option should be a no-op, got %q", got)
	}
	if *commits != 0 {
		t.Errorf("no-op moves must not commit, got %d", *commits)
	}
}

func TestToggleControlDisabled(t *testing.T) {
	store, commits := makeControlStore(map[string]any{"layout": "grid", "locked": true})
	control := NewToggleControl(models.ToggleConfig{
		Attribute: "layout",
		Label:     "Layout",
		Options: []models.ToggleOption{
			{Label: "Grid", Value: "grid"},
			{Label: "List", Value: "list"},
		},
		DisabledWhen: &condition.Rule{Attribute: "locked", Equals: true},
	}, store)

	control.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := store.String("layout"); got != "grid" {
		t.Errorf("disabled toggle must ignore input, got %q", got)
	}
	if *commits != 0 {
		t.Errorf("disabled toggle must not commit, got %d", *commits)
	}
}
