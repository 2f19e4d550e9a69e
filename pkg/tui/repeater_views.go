package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (c *RepeaterControl) View(width int, focused bool) string {
	label := renderControlLabel(c.config.Label, focused, false)

	var rows []string
	rows = append(rows, label)

	if c.confirm.Active() {
		rows = append(rows, c.confirm.View())
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	items := c.items()
	if len(items) == 0 {
		rows = append(rows, "  "+EmptyStateStyle.Render("No items"))
	} else {
		rows = append(rows, c.viewport.View())
	}

	if c.editing {
		rows = append(rows, "  "+HelpStyle.Render(c.footerHints()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// footerHints lists the available item operations; the add hint disappears
// for fixed repeaters.
func (c *RepeaterControl) footerHints() string {
	hints := []string{}
	if !c.config.Fixed {
		add := c.config.AddButtonText
		if add == "" {
			add = "add"
		}
		hints = append(hints, "a "+strings.ToLower(add))
	}
	hints = append(hints,
		"d remove",
		"y duplicate",
		"tab collapse",
		"shift+↑/↓ move",
		"esc done",
	)
	return strings.Join(hints, " · ")
}

func (c *RepeaterControl) renderItems() string {
	items := c.items()

	var b strings.Builder
	for i, item := range items {
		selected := c.editing && i == c.cursor

		marker := "  "
		if selected {
			marker = CursorStyle.Render("> ")
		}

		chevron := "▸"
		if !item.Collapsed {
			chevron = "▾"
		}

		line := fmt.Sprintf("%s%s %s", marker, chevron, item.Label)
		idBadge := HelpStyle.Render(fmt.Sprintf(" #%d", item.ID))
		if selected {
			b.WriteString(SelectedStyle.Render(line) + idBadge)
		} else {
			b.WriteString(NormalStyle.Render(line) + idBadge)
		}
		b.WriteString("\n")

		// Expanded items show their payload underneath
		if !item.Collapsed {
			value := item.Value
			if value == "" {
				value = "(empty)"
			}
			b.WriteString(HelpStyle.Render("      "+value) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
