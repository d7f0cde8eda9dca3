// Package tui holds the Bubble Tea level picker and the Wish SSH server.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/world"
)

// maxVisibleLevels caps the table height.
const maxVisibleLevels = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels   []world.LevelFile
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	selected *world.LevelFile // Set when the user picks a level
}

// NewMenuModel creates a picker over levels, in the order given.
func NewMenuModel(levels []world.LevelFile) MenuModel {
	rows := make([]table.Row, len(levels))
	for i, l := range levels {
		rows[i] = table.Row{
			l.ID,
			l.Name,
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			fmt.Sprintf("%.0f,%.0f", l.Spawn.X, l.Spawn.Y),
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 8},
			{Title: "Name", Width: 20},
			{Title: "Size", Width: 8},
			{Title: "Spawn", Width: 8},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows), maxVisibleLevels)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MenuModel{
		levels: levels,
		table:  t,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				selected := m.levels[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit // Exit menu to start the game
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("T I L E S"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Select a level"))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(emptyStyle.Render("No levels found"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *world.LevelFile {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level world.LevelFile
	Quit  bool
}

// RunMenu runs the picker on the current terminal and returns the choice.
func RunMenu(levels []world.LevelFile, opts ...tea.ProgramOption) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(levels), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Quit: true}, nil
	}
	return MenuResult{Level: *m.Selected()}, nil
}
