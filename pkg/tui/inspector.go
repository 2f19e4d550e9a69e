package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/files"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

// InspectorModel hosts the form controls for one block. It owns nothing but
// focus state: attribute values live in the store, which persists every edit
// straight back to the block document.
type InspectorModel struct {
	store    *attrs.Store
	settings *models.Settings
	controls []Control
	focus    int
	width    int
	height   int
	err      error
}

func NewInspectorModel() *InspectorModel {
	return &InspectorModel{}
}

// SetBlock loads a block document and builds its control panel.
func (m *InspectorModel) SetBlock(path string) error {
	block, err := files.ReadBlock(path)
	if err != nil {
		return fmt.Errorf("failed to open block: %w", err)
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	m.settings = settings
	m.store = attrs.NewStore(block, files.WriteBlock)
	m.controls = controlsForBlock(m.store, settings)
	m.focus = 0
	m.applyWidths()
	return nil
}

func (m *InspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *InspectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.applyWidths()
}

func (m *InspectorModel) applyWidths() {
	for _, control := range m.controls {
		if sizable, ok := control.(interface{ SetWidth(int) }); ok {
			sizable.SetWidth(m.width - 4)
		}
	}
}

func (m *InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.controls) == 0 {
		return m, nil
	}

	focused := m.controls[m.focus]

	// A control that captured input gets every key, including esc
	if focused.Editing() {
		return m, focused.Update(keyMsg)
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg {
			return SwitchViewMsg{view: blockListView}
		}

	case "up", "k":
		if m.focus > 0 {
			m.focus--
		}
		return m, nil

	case "down", "j":
		if m.focus < len(m.controls)-1 {
			m.focus++
		}
		return m, nil
	}

	return m, focused.Update(keyMsg)
}

func (m *InspectorModel) View() string {
	if m.store == nil {
		return "Loading..."
	}

	block := m.store.Block()
	header := renderHeader(m.width, fmt.Sprintf("%s · %s", block.Name, block.Type))

	panels := make([]string, 0, len(m.controls))
	for i, control := range m.controls {
		panels = append(panels, control.View(m.width-4, i == m.focus))
	}
	body := ContentPaddingStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, strings.Join(panels, "\n\n")),
	)

	help := ""
	if m.settings.UI.ShowHelp {
		hints := "↑/↓ choose control · enter edit · esc back"
		help = ContentPaddingStyle.Render(
			HelpStyle.Render(wordwrap.String(hints, m.width-2)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Top, header, "", body, "", help)
}
