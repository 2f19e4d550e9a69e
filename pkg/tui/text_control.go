package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

// TextControl edits a single string attribute through a text input.
type TextControl struct {
	config  models.TextConfig
	store   *attrs.Store
	input   textinput.Model
	editing bool
}

func NewTextControl(config models.TextConfig, store *attrs.Store) *TextControl {
	input := textinput.New()
	input.Placeholder = config.Placeholder
	input.CharLimit = 256
	input.PlaceholderStyle = PlaceholderStyle
	input.Cursor.Style = CursorStyle

	return &TextControl{
		config: config,
		store:  store,
		input:  input,
	}
}

func (c *TextControl) Label() string {
	return c.config.Label
}

func (c *TextControl) Disabled() bool {
	return c.config.DisabledWhen.Disabled(c.store)
}

func (c *TextControl) Editing() bool {
	return c.editing
}

func (c *TextControl) Update(msg tea.KeyMsg) tea.Cmd {
	if c.Disabled() {
		return nil
	}

	if !c.editing {
		if msg.String() == "enter" {
			c.editing = true
			c.input.SetValue(c.store.String(c.config.Attribute))
			c.input.CursorEnd()
			return c.input.Focus()
		}
		return nil
	}

	switch msg.String() {
	case "enter":
		c.editing = false
		c.input.Blur()
		c.store.Set(c.config.Attribute, c.input.Value())
		if err := c.store.Commit(); err != nil {
			return statusCmd("× %v", err)
		}
		return nil

	case "esc":
		// Discard the edit, the stored value stays authoritative
		c.editing = false
		c.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *TextControl) View(width int, focused bool) string {
	label := renderControlLabel(c.config.Label, focused, c.Disabled())

	var value string
	if c.editing {
		value = c.input.View()
	} else {
		current := c.store.String(c.config.Attribute)
		switch {
		case c.Disabled():
			if current == "" {
				current = "—"
			}
			value = DisabledStyle.Render(current)
		case current == "":
			value = PlaceholderStyle.Render(c.config.Placeholder)
		default:
			value = NormalStyle.Render(current)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, "  "+value)
}

// renderControlLabel renders a control heading in the right state style.
func renderControlLabel(label string, focused, disabled bool) string {
	switch {
	case disabled:
		return DisabledStyle.Render("  " + label)
	case focused:
		return FocusedLabelStyle.Render("› " + label)
	default:
		return ControlLabelStyle.Render("  " + label)
	}
}
