package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Control is one form control in the inspector panel. Controls read their
// value from the shared attribute store on every render and write through it
// on every edit; they hold no attribute state of their own.
type Control interface {
	// Label returns the display label for the control.
	Label() string

	// Disabled reports whether the control's disable condition currently
	// applies. Disabled controls render dimmed and ignore input.
	Disabled() bool

	// Editing reports whether the control has captured keyboard input. While
	// editing, the inspector routes every key to the control, including esc.
	Editing() bool

	// Update handles a key while the control is focused.
	Update(msg tea.KeyMsg) tea.Cmd

	// View renders the control at the given width.
	View(width int, focused bool) string
}

// statusCmd surfaces a user-visible status message.
func statusCmd(format string, args ...any) tea.Cmd {
	msg := StatusMsg(fmt.Sprintf(format, args...))
	return func() tea.Msg {
		return msg
	}
}
