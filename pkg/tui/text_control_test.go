package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/condition"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

func makeControlStore(attributes map[string]any) (*attrs.Store, *int) {
	commits := 0
	block := &models.Block{Name: "test", Type: "section", Attributes: attributes}
	return attrs.NewStore(block, func(*models.Block) error {
		commits++
		return nil
	}), &commits
}

func typeString(control *TextControl, s string) {
	for _, r := range s {
		control.Update(keyRune(r))
	}
}

func TestTextControlEditAndCommit(t *testing.T) {
	store, commits := makeControlStore(map[string]any{"title": "Old"})
	control := NewTextControl(models.TextConfig{Attribute: "title", Label: "Title"}, store)

	control.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !control.Editing() {
		t.Fatal("enter should start editing")
	}
	if control.input.Value() != "Old" {
		t.Errorf("editor should start from the stored value, got %q", control.input.Value())
	}

	control.input.SetValue("")
	typeString(control, "New title")
	control.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if control.Editing() {
		t.Error("commit should end editing")
	}
	if got := store.String("title"); got != "New title" {
		t.Errorf("attribute not committed, got %q", got)
	}
	if *commits != 1 {
		t.Errorf("expected one commit, got %d", *commits)
	}
}

func TestTextControlEscapeDiscards(t *testing.T) {
	store, commits := makeControlStore(map[string]any{"title": "Kept"})
	control := NewTextControl(models.TextConfig{Attribute: "title", Label: "Title"}, store)

	control.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeString(control, "scrapped")
	control.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if control.Editing() {
		t.Error("esc should end editing")
	}
	if got := store.String("title"); got != "Kept" {
		t.Errorf("esc must not change the attribute, got %q", got)
	}
	if *commits != 0 {
		t.Errorf("esc must not commit, got %d", *commits)
	}
}

func TestTextControlDisabledIgnoresInput(t *testing.T) {
	store, commits := makeControlStore(map[string]any{
		"layout": "stack",
		"anchor": "top",
	})
	control := NewTextControl(models.TextConfig{
		Attribute: "anchor",
		Label:     "Anchor",
		DisabledWhen: &condition.Rule{
			Attribute: "layout",
			Equals:    "stack",
		},
	}, store)

	if !control.Disabled() {
		t.Fatal("control should be disabled while layout is stack")
	}

	control.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if control.Editing() {
		t.Error("disabled control must ignore input")
	}
	if *commits != 0 {
		t.Errorf("disabled control must not commit, got %d", *commits)
	}

	// Flipping the watched attribute re-enables the control
	store.Set("layout", "grid")
	if control.Disabled() {
		t.Error("control should re-enable when the condition stops matching")
	}
}
