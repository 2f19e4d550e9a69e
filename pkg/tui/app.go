package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sessionState int

const (
	blockListView sessionState = iota
	inspectorView
)

type App struct {
	state     sessionState
	blockList *BlockListModel
	inspector *InspectorModel
	width     int
	height    int
	statusMsg string
}

func NewApp() *App {
	return &App{
		state:     blockListView,
		blockList: NewBlockListModel(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.blockList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		if a.blockList != nil {
			a.blockList.SetSize(msg.Width, msg.Height)
		}
		if a.inspector != nil {
			a.inspector.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case blockListView:
			a.state = blockListView
			if a.blockList == nil {
				a.blockList = NewBlockListModel()
			} else {
				// Reload blocks when returning to the list
				a.blockList.loadBlocks()
			}
			a.statusMsg = msg.status
			return a, a.blockList.Init()
		case inspectorView:
			a.state = inspectorView
			if a.inspector == nil {
				a.inspector = NewInspectorModel()
			}
			a.inspector.SetSize(a.width, a.height)
			if err := a.inspector.SetBlock(msg.block); err != nil {
				a.state = blockListView
				a.statusMsg = "× " + err.Error()
				return a, nil
			}
			return a, a.inspector.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case blockListView:
		var m tea.Model
		m, cmd = a.blockList.Update(msg)
		if bl, ok := m.(*BlockListModel); ok {
			a.blockList = bl
		}
	case inspectorView:
		var m tea.Model
		m, cmd = a.inspector.Update(msg)
		if in, ok := m.(*InspectorModel); ok {
			a.inspector = in
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case blockListView:
		content = a.blockList.View()
	case inspectorView:
		content = a.inspector.View()
	default:
		content = "Unknown view"
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views
type StatusMsg string

type SwitchViewMsg struct {
	view   sessionState
	block  string // block filename for the inspector
	status string // optional status to show after switching
}
