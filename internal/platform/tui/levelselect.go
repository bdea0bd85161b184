package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// ErrSelectionCanceled is returned when the user leaves the level picker
// without choosing a level.
var ErrSelectionCanceled = errors.New("level selection canceled")

// LevelSelectKeyMap defines the key bindings for the level picker.
type LevelSelectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelSelectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelSelectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Quit},
	}
}

// DefaultLevelSelectKeyMap returns default key bindings.
func DefaultLevelSelectKeyMap() LevelSelectKeyMap {
	return LevelSelectKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

// LevelSelectModel is the Bubble Tea model for picking the start level.
type LevelSelectModel struct {
	catalog  *core.Catalog
	table    table.Model
	help     help.Model
	keys     LevelSelectKeyMap
	width    int
	height   int
	selected int // -1 until a level is chosen
	quitting bool
}

// NewLevelSelectModel creates a level picker for the catalog.
func NewLevelSelectModel(cat *core.Catalog, width, height int) LevelSelectModel {
	h := help.New()
	h.ShowAll = false

	m := LevelSelectModel{
		catalog:  cat,
		help:     h,
		keys:     DefaultLevelSelectKeyMap(),
		width:    width,
		height:   height,
		selected: -1,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the table of levels.
func (m *LevelSelectModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 16},
		{Title: "Theme", Width: 8},
		{Title: "Enemies", Width: 8},
		{Title: "Hazard", Width: 8},
	}

	rows := make([]table.Row, m.catalog.Len())
	for i := range rows {
		lvl := m.catalog.Level(i)
		hazard := "-"
		if lvl.Hazard != nil {
			hazard = lvl.Hazard.Kind.String()
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.ID,
			lvl.Label(),
			lvl.Theme.String(),
			fmt.Sprintf("%d", len(lvl.Enemies)),
			hazard,
		}
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
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

	return t
}

// Init initializes the level picker.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level picker.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if m.catalog.Len() > 0 {
				m.selected = m.table.Cursor()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Level picker styles.
var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	pickerFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	pickerHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the level picker.
func (m LevelSelectModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	title := pickerTitleStyle.Render("SELECT LEVEL")
	if m.width > 0 {
		title = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		pickerFrameStyle.Render(m.table.View()),
		pickerHelpStyle.Render(m.help.View(m.keys)),
	)
}

// Selected returns the chosen level index and whether one was chosen.
func (m LevelSelectModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// SelectLevel runs the level picker and returns the chosen level index.
// Returns ErrSelectionCanceled if the user backs out.
func SelectLevel(cat *core.Catalog, width, height int) (int, error) {
	p := tea.NewProgram(
		NewLevelSelectModel(cat, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("running level picker: %w", err)
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return 0, ErrSelectionCanceled
	}
	idx, chosen := m.Selected()
	if !chosen {
		return 0, ErrSelectionCanceled
	}
	return idx, nil
}
