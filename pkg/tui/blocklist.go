package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/blockpad/blockpad-cli/pkg/files"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

type blockItem struct {
	name     string
	path     string
	typ      string
	modified time.Time
}

// BlockListModel is the opening view: every block document in the project,
// one per row.
type BlockListModel struct {
	blocks    []blockItem
	cursor    int
	width     int
	height    int
	creating  bool
	nameInput textinput.Model
	confirm   *ConfirmationModel
	err       error
}

func NewBlockListModel() *BlockListModel {
	input := textinput.New()
	input.Placeholder = "New block name"
	input.CharLimit = 64
	input.PlaceholderStyle = PlaceholderStyle
	input.Cursor.Style = CursorStyle

	m := &BlockListModel{
		nameInput: input,
		confirm:   NewConfirmation(),
	}
	m.loadBlocks()
	return m
}

func (m *BlockListModel) loadBlocks() {
	paths, err := files.ListBlocks()
	if err != nil {
		m.err = err
		return
	}

	m.blocks = nil
	for _, path := range paths {
		block, err := files.ReadBlock(path)
		if err != nil {
			// Skip unreadable documents rather than blocking the whole list
			continue
		}
		m.blocks = append(m.blocks, blockItem{
			name:     block.Name,
			path:     path,
			typ:      block.Type,
			modified: block.Modified,
		})
	}

	if m.cursor >= len(m.blocks) && len(m.blocks) > 0 {
		m.cursor = len(m.blocks) - 1
	}
}

func (m *BlockListModel) Init() tea.Cmd {
	return nil
}

func (m *BlockListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.confirm.SetWidth(width)
}

func (m *BlockListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirm.Active() {
		return m, m.confirm.Update(keyMsg)
	}

	if m.creating {
		return m.updateCreating(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.blocks)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.blocks) {
			path := m.blocks[m.cursor].path
			return m, func() tea.Msg {
				return SwitchViewMsg{view: inspectorView, block: path}
			}
		}

	case "n":
		m.creating = true
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()

	case "d":
		if m.cursor < len(m.blocks) {
			target := m.blocks[m.cursor]
			m.confirm.Show(ConfirmationConfig{
				Message:     fmt.Sprintf("Delete block %q?", target.name),
				Destructive: true,
			}, func() tea.Cmd {
				if err := files.DeleteBlock(target.path); err != nil {
					return statusCmd("× %v", err)
				}
				m.loadBlocks()
				return statusCmd("✓ Deleted block: %s", target.name)
			}, nil)
		}
	}

	return m, nil
}

func (m *BlockListModel) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, statusCmd("× Block name cannot be empty")
		}
		m.creating = false
		m.nameInput.Blur()

		block := &models.Block{
			Name:       name,
			Type:       "section",
			Attributes: DefaultAttributes("section"),
		}
		if err := files.WriteBlock(block); err != nil {
			return m, statusCmd("× %v", err)
		}
		m.loadBlocks()
		return m, statusCmd("✓ Created block: %s", name)

	case "esc":
		m.creating = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *BlockListModel) View() string {
	header := renderHeader(m.width, "")

	var b strings.Builder
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if len(m.blocks) == 0 {
		b.WriteString(EmptyStateStyle.Render("No blocks yet — press n to create one"))
	} else {
		for i, block := range m.blocks {
			line := fmt.Sprintf("%s  %s", block.name, HelpStyle.Render("("+block.typ+")"))
			if i == m.cursor {
				b.WriteString(SelectedStyle.Render("> " + line))
			} else {
				b.WriteString(NormalStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	if m.creating {
		b.WriteString("\n")
		b.WriteString(ControlLabelStyle.Render("Name: "))
		b.WriteString(m.nameInput.View())
	}

	if m.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}

	body := ContentPaddingStyle.Render(b.String())

	hints := "↑/↓ navigate · enter open · n new · d delete · q quit"
	help := ContentPaddingStyle.Render(
		HelpStyle.Render(wordwrap.String(hints, m.width-2)),
	)

	return lipgloss.JoinVertical(lipgloss.Top, header, "", body, "", help)
}
