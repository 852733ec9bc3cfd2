package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LevelEntry describes one row of the level picker.
type LevelEntry struct {
	ID    string
	Name  string
	Cols  int
	Rows  int
	Goals int
}

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
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultLevelSelectKeyMap returns default key bindings.
func DefaultLevelSelectKeyMap() LevelSelectKeyMap {
	return LevelSelectKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelSelectModel is the Bubble Tea model for the level picker.
type LevelSelectModel struct {
	levels   []LevelEntry
	table    table.Model
	help     help.Model
	keys     LevelSelectKeyMap
	width    int
	height   int
	selected string
	quitting bool
}

// NewLevelSelectModel creates a level picker over the given levels with the
// cursor on the level named initial, if present.
func NewLevelSelectModel(levels []LevelEntry, initial string, width, height int) LevelSelectModel {
	h := help.New()
	h.Width = width

	m := LevelSelectModel{
		levels: levels,
		keys:   DefaultLevelSelectKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	for i, l := range levels {
		if l.ID == initial {
			m.table.SetCursor(i)
			break
		}
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *LevelSelectModel) createTable() table.Model {
	nameWidth := 24
	if avail := m.width - 4 - 12 - 8 - 8 - 8; avail > nameWidth {
		nameWidth = min(avail, 40)
	}
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: nameWidth},
		{Title: "Size", Width: 8},
		{Title: "Homes", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *LevelSelectModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		rows[i] = table.Row{
			l.ID,
			l.Name,
			fmt.Sprintf("%dx%d", l.Cols, l.Rows),
			fmt.Sprintf("%d", l.Goals),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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
			if i := m.table.Cursor(); i >= 0 && i < len(m.levels) {
				m.selected = m.levels[i].ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level picker.
func (m LevelSelectModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("FROGGIT - choose a level", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.levels) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(emptyStyle.Render("No levels found.")), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen level id, or "" if none was chosen.
func (m LevelSelectModel) Selected() string {
	return m.selected
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunLevelSelect runs the level picker. It returns "" if the player quit
// without choosing.
func RunLevelSelect(levels []LevelEntry, initial string, width, height int) (string, error) {
	model := NewLevelSelectModel(levels, initial, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(LevelSelectModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
