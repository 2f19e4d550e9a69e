package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Message     string // Main confirmation message
	Warning     string // Optional warning text (shown in orange)
	Destructive bool   // If true, Yes is red, No is green
	YesLabel    string // Custom label for Yes (default: "Yes")
	NoLabel     string // Custom label for No (default: "No")
}

// ConfirmationModel handles inline confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	viewWidth int
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// SetWidth sets the width used to center the prompt
func (m *ConfirmationModel) SetWidth(width int) {
	m.viewWidth = width
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation prompt
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder

	messageStyle := lipgloss.NewStyle().Bold(true)
	if m.config.Destructive {
		messageStyle = messageStyle.Foreground(lipgloss.Color(ColorDanger))
	} else {
		messageStyle = messageStyle.Foreground(lipgloss.Color(ColorWarning))
	}
	b.WriteString(messageStyle.Render(m.config.Message))

	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Render(m.config.Warning))
	}

	b.WriteString("\n\n")

	yesStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
	noStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorDanger))
	if m.config.Destructive {
		yesStyle, noStyle = noStyle, yesStyle
	}

	b.WriteString(yesStyle.Render("y " + m.config.YesLabel))
	b.WriteString("   ")
	b.WriteString(noStyle.Render("n " + m.config.NoLabel))

	prompt := b.String()
	if m.viewWidth > 0 {
		prompt = lipgloss.PlaceHorizontal(m.viewWidth, lipgloss.Center, prompt)
	}
	return prompt
}
