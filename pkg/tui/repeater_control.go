package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/models"
	"github.com/blockpad/blockpad-cli/pkg/repeater"
)

const repeaterViewportHeight = 10

// RepeaterControl edits an ordered item-list attribute. Every operation reads
// the current list from the store, computes a new list through the repeater
// package, and writes the whole list back; nothing is cached between events.
type RepeaterControl struct {
	config    models.RepeaterConfig
	store     *attrs.Store
	itemLabel string

	cursor   int
	editing  bool
	viewport viewport.Model
	confirm  *ConfirmationModel

	// pendingScroll schedules exactly one scroll-to-bottom after an add; it
	// fires only after the viewport content includes the new item.
	pendingScroll bool
}

func NewRepeaterControl(config models.RepeaterConfig, store *attrs.Store, settings *models.Settings) *RepeaterControl {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	vp := viewport.New(60, repeaterViewportHeight)

	c := &RepeaterControl{
		config:    config,
		store:     store,
		itemLabel: settings.Editor.DefaultItemLabel,
		viewport:  vp,
		confirm:   NewConfirmation(),
	}
	c.refreshViewport()
	return c
}

func (c *RepeaterControl) Label() string {
	return c.config.Label
}

func (c *RepeaterControl) Disabled() bool {
	return false
}

func (c *RepeaterControl) Editing() bool {
	return c.editing
}

// SetWidth resizes the item viewport.
func (c *RepeaterControl) SetWidth(width int) {
	c.viewport.Width = width
	c.confirm.SetWidth(width)
	c.refreshViewport()
}

func (c *RepeaterControl) items() []models.RepeaterItem {
	return c.store.Items(c.config.Attribute)
}

func (c *RepeaterControl) Update(msg tea.KeyMsg) tea.Cmd {
	if c.confirm.Active() {
		return c.confirm.Update(msg)
	}

	if !c.editing {
		if msg.String() == "enter" {
			c.editing = true
			c.refreshViewport()
		}
		return nil
	}

	items := c.items()

	switch msg.String() {
	case "esc":
		c.editing = false
		return nil

	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
			c.refreshViewport()
		}
		return nil

	case "down", "j":
		if c.cursor < len(items)-1 {
			c.cursor++
			c.refreshViewport()
		}
		return nil

	case "a":
		return c.addItem(items)

	case "d":
		return c.removeItem(items)

	case "y":
		return c.duplicateItem(items)

	case "tab", " ":
		return c.toggleItem(items)

	case "shift+up", "K":
		return c.moveItem(items, -1)

	case "shift+down", "J":
		return c.moveItem(items, +1)
	}

	return nil
}

func (c *RepeaterControl) addItem(items []models.RepeaterItem) tea.Cmd {
	if c.config.Fixed {
		return nil
	}

	label := fmt.Sprintf("%s %d", c.itemLabel, repeater.NextID(items))
	value := time.Now().Format(time.RFC3339)
	newItems := repeater.Add(items, label, value)

	c.cursor = len(newItems) - 1
	c.pendingScroll = true
	return c.commitItems(newItems)
}

func (c *RepeaterControl) removeItem(items []models.RepeaterItem) tea.Cmd {
	if c.cursor < 0 || c.cursor >= len(items) {
		return nil
	}
	if c.config.PreventEmptyEnabled() && len(items) == 1 {
		return statusCmd("× Cannot remove the last item")
	}

	target := items[c.cursor]
	c.confirm.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Remove %q?", target.Label),
		Destructive: true,
	}, func() tea.Cmd {
		current := c.items()
		newItems := repeater.Remove(current, target.ID, c.config.PreventEmptyEnabled())
		if c.cursor >= len(newItems) && c.cursor > 0 {
			c.cursor--
		}
		return c.commitItems(newItems)
	}, nil)

	return nil
}

func (c *RepeaterControl) duplicateItem(items []models.RepeaterItem) tea.Cmd {
	if c.cursor < 0 || c.cursor >= len(items) {
		return nil
	}
	newItems := repeater.Duplicate(items, items[c.cursor].ID)
	if len(newItems) == len(items) {
		return nil
	}
	// The clone is appended at the end; follow it with the cursor
	c.cursor = len(newItems) - 1
	return c.commitItems(newItems)
}

func (c *RepeaterControl) toggleItem(items []models.RepeaterItem) tea.Cmd {
	if c.cursor < 0 || c.cursor >= len(items) {
		return nil
	}
	return c.commitItems(repeater.ToggleCollapse(items, items[c.cursor].ID))
}

func (c *RepeaterControl) moveItem(items []models.RepeaterItem, delta int) tea.Cmd {
	target := c.cursor + delta
	if c.cursor < 0 || c.cursor >= len(items) || target < 0 || target >= len(items) {
		return nil
	}

	overID := items[target].ID
	newItems := repeater.Reorder(items, repeater.ReorderEvent{
		Active: items[c.cursor].ID,
		Over:   &overID,
	})
	c.cursor = target
	return c.commitItems(newItems)
}

// commitItems writes the new list through the store, persists it, and
// re-lays the viewport. A scheduled scroll-to-bottom fires only here, after
// the content reflects the new list.
func (c *RepeaterControl) commitItems(items []models.RepeaterItem) tea.Cmd {
	c.store.Set(c.config.Attribute, items)
	err := c.store.Commit()
	c.refreshViewport()
	if err != nil {
		return statusCmd("× %v", err)
	}
	return nil
}

func (c *RepeaterControl) refreshViewport() {
	c.viewport.SetContent(c.renderItems())
	if c.pendingScroll {
		c.viewport.GotoBottom()
		c.pendingScroll = false
	}
}
