package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wildfire/internal/storage"
)

// browserKeyMap defines the key bindings for the scenario browser.
type browserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Load   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "o"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// browserModel is the scenario browser screen: a table of saved presets with
// load and delete actions.
type browserModel struct {
	store     *storage.Store
	scenarios []storage.Scenario
	table     table.Model
	keys      browserKeyMap
	width     int
	height    int

	closed   bool              // back to the simulator
	quitting bool              // quit the whole program
	selected *storage.Scenario // set when the user loads a scenario
}

// newBrowserModel creates a scenario browser sized to the terminal.
func newBrowserModel(store *storage.Store, width, height int) browserModel {
	m := browserModel{
		store:  store,
		keys:   defaultBrowserKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable builds the preset table with appropriate columns.
func (m *browserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Density", Width: 8},
		{Title: "Wind", Width: 10},
		{Title: "Moist", Width: 6},
		{Title: "Temp", Width: 6},
		{Title: "Saved", Width: 16},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
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

// reload refreshes the table from the store.
func (m *browserModel) reload() {
	scenarios, err := m.store.ListScenarios()
	if err != nil {
		scenarios = nil
	}
	m.scenarios = scenarios

	rows := make([]table.Row, len(scenarios))
	for i, sc := range scenarios {
		rows[i] = table.Row{
			sc.Name,
			fmt.Sprintf("%.2f", sc.Params.TreeDensity),
			fmt.Sprintf("%.0f° @%.0f%%", sc.Params.WindDir, sc.Params.WindStr*100),
			fmt.Sprintf("%.2f", sc.Params.Moisture),
			fmt.Sprintf("%.0f°C", sc.Params.Temperature),
			sc.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m browserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.Load):
			if sc := m.current(); sc != nil {
				m.selected = sc
				m.closed = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if sc := m.current(); sc != nil {
				//nolint:errcheck // Best-effort delete, list reload shows the result
				m.store.DeleteScenario(sc.Name)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the scenario under the cursor, or nil.
func (m *browserModel) current() *storage.Scenario {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.scenarios) {
		return nil
	}
	sc := m.scenarios[idx]
	return &sc
}

// View renders the browser.
func (m browserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Saved scenarios"))
	b.WriteString("\n\n")

	if len(m.scenarios) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(empty.Render("No scenarios saved yet.\nPress S in the simulator to save one."))
	} else {
		border := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(border.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(styleStatus.Render("enter load · d delete · esc back · q quit"))
	return b.String()
}
