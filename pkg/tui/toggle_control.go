package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

// ToggleControl edits a string attribute constrained to a fixed option set,
// rendered as a horizontal group. Selection changes commit immediately.
type ToggleControl struct {
	config models.ToggleConfig
	store  *attrs.Store
}

func NewToggleControl(config models.ToggleConfig, store *attrs.Store) *ToggleControl {
	return &ToggleControl{
		config: config,
		store:  store,
	}
}

func (c *ToggleControl) Label() string {
	return c.config.Label
}

func (c *ToggleControl) Disabled() bool {
	return c.config.DisabledWhen.Disabled(c.store)
}

// Editing is always false: the toggle group never captures input.
func (c *ToggleControl) Editing() bool {
	return false
}

// selectedIndex derives the selection from the stored value on every call.
// An unknown or missing value falls back to the first option.
func (c *ToggleControl) selectedIndex() int {
	current := c.store.String(c.config.Attribute)
	for i, opt := range c.config.Options {
		if opt.Value == current {
			return i
		}
	}
	return 0
}

func (c *ToggleControl) Update(msg tea.KeyMsg) tea.Cmd {
	if c.Disabled() || len(c.config.Options) == 0 {
		return nil
	}

	selected := c.selectedIndex()
	switch msg.String() {
	case "left", "h":
		if selected > 0 {
			return c.commitSelection(selected - 1)
		}
	case "right", "l":
		if selected < len(c.config.Options)-1 {
			return c.commitSelection(selected + 1)
		}
	}
	return nil
}

func (c *ToggleControl) commitSelection(index int) tea.Cmd {
	c.store.Set(c.config.Attribute, c.config.Options[index].Value)
	if err := c.store.Commit(); err != nil {
		return statusCmd("× %v", err)
	}
	return nil
}

func (c *ToggleControl) View(width int, focused bool) string {
	label := renderControlLabel(c.config.Label, focused, c.Disabled())

	selected := c.selectedIndex()
	parts := make([]string, len(c.config.Options))
	for i, opt := range c.config.Options {
		switch {
		case c.Disabled():
			parts[i] = DisabledStyle.Render(" " + opt.Label + " ")
		case i == selected:
			parts[i] = ToggleSelectedStyle.Render(opt.Label)
		default:
			parts[i] = ToggleOptionStyle.Render(opt.Label)
		}
	}
	group := strings.Join(parts, " ")

	return lipgloss.JoinVertical(lipgloss.Left, label, "  "+group)
}
