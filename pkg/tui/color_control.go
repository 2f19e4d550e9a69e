package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

// ColorControl edits one color attribute per tab. The tab row is derived from
// the block's color configuration; each tab writes to its own attribute key.
type ColorControl struct {
	config     models.ColorConfig
	store      *attrs.Store
	tab        int
	cursor     int
	hexInput   textinput.Model
	editingHex bool
}

func NewColorControl(config models.ColorConfig, store *attrs.Store) *ColorControl {
	input := textinput.New()
	input.Placeholder = "#rrggbb"
	input.CharLimit = 7
	input.Prompt = ""
	input.PlaceholderStyle = PlaceholderStyle
	input.Cursor.Style = CursorStyle

	return &ColorControl{
		config:   config,
		store:    store,
		hexInput: input,
	}
}

func (c *ColorControl) Label() string {
	return c.config.Label
}

func (c *ColorControl) Disabled() bool {
	return false
}

func (c *ColorControl) Editing() bool {
	return c.editingHex
}

// currentTab returns the active color dimension.
func (c *ColorControl) currentTab() models.ColorTab {
	if len(c.config.Tabs) == 0 {
		return models.ColorTab{Key: "color", Label: "Color"}
	}
	return c.config.Tabs[c.tab]
}

func (c *ColorControl) currentHex() string {
	return c.store.String(c.currentTab().Key)
}

func (c *ColorControl) Update(msg tea.KeyMsg) tea.Cmd {
	if c.editingHex {
		return c.updateHexInput(msg)
	}

	switch msg.String() {
	case "tab":
		if len(c.config.Tabs) > 1 {
			c.tab = (c.tab + 1) % len(c.config.Tabs)
			c.cursor = 0
		}
		return nil

	case "left", "h":
		if c.cursor > 0 {
			c.cursor--
		}
		return nil

	case "right", "l":
		if c.cursor < len(c.config.Palette)-1 {
			c.cursor++
		}
		return nil

	case "enter":
		if c.cursor < len(c.config.Palette) {
			return c.commitColor(c.config.Palette[c.cursor].Hex)
		}
		return nil

	case "#", "x":
		c.editingHex = true
		c.hexInput.SetValue(c.currentHex())
		c.hexInput.CursorEnd()
		return c.hexInput.Focus()

	case "c":
		hex := c.currentHex()
		if hex == "" {
			return statusCmd("× No color set for %s", c.currentTab().Label)
		}
		if err := clipboard.WriteAll(hex); err != nil {
			return statusCmd("× Failed to copy: %v", err)
		}
		return statusCmd("✓ Copied %s", hex)
	}

	return nil
}

func (c *ColorControl) updateHexInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(strings.ToLower(c.hexInput.Value()))
		if !strings.HasPrefix(value, "#") {
			value = "#" + value
		}
		if _, err := colorful.Hex(value); err != nil {
			return statusCmd("× Invalid color %q", c.hexInput.Value())
		}
		c.editingHex = false
		c.hexInput.Blur()
		return c.commitColor(value)

	case "esc":
		c.editingHex = false
		c.hexInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	c.hexInput, cmd = c.hexInput.Update(msg)
	return cmd
}

func (c *ColorControl) commitColor(hex string) tea.Cmd {
	c.store.Set(c.currentTab().Key, hex)
	if err := c.store.Commit(); err != nil {
		return statusCmd("× %v", err)
	}
	return nil
}

func (c *ColorControl) View(width int, focused bool) string {
	label := renderControlLabel(c.config.Label, focused, false)

	var rows []string
	rows = append(rows, label)

	// Tab row, one tab per color dimension
	if len(c.config.Tabs) > 0 {
		tabs := make([]string, len(c.config.Tabs))
		for i, tab := range c.config.Tabs {
			if i == c.tab {
				tabs[i] = TabActiveStyle.Render(tab.Label)
			} else {
				tabs[i] = TabInactiveStyle.Render(tab.Label)
			}
		}
		rows = append(rows, "  "+strings.Join(tabs, "  "))
	}

	// Palette swatches
	current := c.currentHex()
	swatches := make([]string, 0, len(c.config.Palette)+1)
	for i, color := range c.config.Palette {
		swatch := renderSwatch(color, color.Hex == current)
		if focused && i == c.cursor && !c.editingHex {
			swatch = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(ColorActive)).
				Render(swatch)
		}
		swatches = append(swatches, swatch)
	}
	rows = append(rows, "  "+lipgloss.JoinHorizontal(lipgloss.Center, swatches...))

	// Current value / hex editor
	if c.editingHex {
		rows = append(rows, "  "+c.hexInput.View())
	} else if current != "" {
		rows = append(rows, "  "+NormalStyle.Render(current))
	} else {
		rows = append(rows, "  "+PlaceholderStyle.Render("no color"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSwatch paints a palette entry on its own color, choosing a readable
// label color from the swatch's luminance.
func renderSwatch(color models.NamedColor, selected bool) string {
	label := " "
	if selected {
		label = "✓"
	}

	fg := ColorWhite
	if parsed, err := colorful.Hex(color.Hex); err == nil {
		if _, _, l := parsed.Hcl(); l > 0.7 {
			fg = ColorDark
		}
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(color.Hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(label)
}
