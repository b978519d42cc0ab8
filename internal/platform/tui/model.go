package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wildfire/internal/config"
	"github.com/vovakirdan/wildfire/internal/sim"
	"github.com/vovakirdan/wildfire/internal/storage"
)

// Layout constants for the simulator screen.
const (
	panelWidth    = 34 // Right-hand control panel width
	statusHeight  = 2  // Status + help lines at the bottom
	minGridWidth  = 20
	minGridHeight = 10
)

// adjustSteps is the per-keypress increment for each parameter slider.
var adjustSteps = map[sim.ParamKey]float64{
	sim.ParamTreeDensity: 0.05,
	sim.ParamWindDir:     15,
	sim.ParamWindStr:     0.05,
	sim.ParamMoisture:    0.025,
	sim.ParamTemperature: 2.5,
}

// Model is the Bubble Tea model driving the wildfire simulator.
type Model struct {
	engine *sim.Engine
	params sim.Params
	cfg    config.Config
	store  *storage.Store // may be nil; scenario features degrade gracefully
	rng    *rand.Rand

	keys KeyMap
	help help.Model

	width  int
	height int
	cursor int // index into sim.ParamKeys

	playing  bool
	quitting bool
	tooSmall bool
	status   string

	browser *browserModel // non-nil while the scenario browser is open
}

// NewModel creates a simulator model. A seed of 0 selects a time-based seed.
func NewModel(cfg config.Config, store *storage.Store, width, height int, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := sim.Params{}
	params.Set(sim.ParamTreeDensity, cfg.Defaults.TreeDensity)
	params.Set(sim.ParamWindDir, cfg.Defaults.WindDir)
	params.Set(sim.ParamWindStr, cfg.Defaults.WindStr)
	params.Set(sim.ParamMoisture, cfg.Defaults.Moisture)
	params.Set(sim.ParamTemperature, cfg.Defaults.Temperature)

	h := help.New()
	h.ShowAll = false

	m := Model{
		engine: sim.NewEngine(1, 1, seed),
		params: params,
		cfg:    cfg,
		store:  store,
		rng:    rand.New(rand.NewSource(seed + 1)),
		keys:   DefaultKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.layoutGrid()
	m.engine.Reset(m.params.TreeDensity)
	return m
}

// gridSize returns the landscape dimensions that fit the current terminal.
func (m *Model) gridSize() (w, h int) {
	w = m.width - panelWidth - 1
	h = m.height - statusHeight
	return w, h
}

// layoutGrid resizes the landscape to the terminal, flagging screens too
// small to host a meaningful grid.
func (m *Model) layoutGrid() {
	w, h := m.gridSize()
	if w < minGridWidth || h < minGridHeight {
		m.tooSmall = true
		return
	}
	m.tooSmall = false
	m.engine.Resize(w, h)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Timing.StepsPerSecond)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Route everything to the scenario browser while it is open.
	if m.browser != nil {
		return m.updateBrowser(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layoutGrid()
		m.engine.Reset(m.params.TreeDensity)
		m.playing = false
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.PrevParam):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(sim.ParamKeys) - 1
		}

	case key.Matches(msg, m.keys.NextParam):
		m.cursor = (m.cursor + 1) % len(sim.ParamKeys)

	case key.Matches(msg, m.keys.Decrease):
		m.adjustParam(-1)

	case key.Matches(msg, m.keys.Increase):
		m.adjustParam(+1)

	case key.Matches(msg, m.keys.Ignite):
		if m.engine.Ignite(m.cfg.Timing.IgniteCells) {
			m.playing = true
			m.status = "Fire started"
		} else {
			m.status = "No trees to ignite"
		}

	case key.Matches(msg, m.keys.PlayPause):
		m.playing = !m.playing

	case key.Matches(msg, m.keys.StepOnce):
		if !m.engine.Step(m.params) {
			m.playing = false
		}

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset(m.params.TreeDensity)
		m.playing = false
		m.status = "Forest reset"

	case key.Matches(msg, m.keys.Randomize):
		m.params.Randomize(m.rng)
		m.engine.Reset(m.params.TreeDensity)
		m.playing = false
		m.status = "Randomized scenario"

	case key.Matches(msg, m.keys.Save):
		m.saveScenario()

	case key.Matches(msg, m.keys.Scenarios):
		m.openBrowser()
	}

	return m, nil
}

// handleMouse ignites the clicked cell if it holds a tree.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	// The grid occupies the top-left of the screen, one cell per character.
	if m.engine.IgniteAt(msg.Y, msg.X) {
		m.playing = true
		m.status = fmt.Sprintf("Ignited cell (%d, %d)", msg.Y, msg.X)
	}
	return m, nil
}

// adjustParam nudges the selected parameter by its slider step; the setter
// clamps (or wraps, for wind direction) the result.
func (m *Model) adjustParam(dir float64) {
	keyID := sim.ParamKeys[m.cursor]
	cur := m.params.Get(keyID)
	m.params.Set(keyID, cur+dir*adjustSteps[keyID])

	// Density changes take effect on the next reset; everything else feeds
	// straight into the next step through the derived probability.
	m.status = ""
}

// handleTick advances the simulation while auto-play is on.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.playing && !m.tooSmall {
		if !m.engine.Step(m.params) {
			// Fire self-extinguished; stop advancing automatically.
			m.playing = false
			m.status = "Fire burned out"
		}
	}
	return m, tickCmd(m.cfg.Timing.StepsPerSecond)
}

// saveScenario stores the current parameter set under a timestamped name.
func (m *Model) saveScenario() {
	if m.store == nil {
		m.status = "No scenario database"
		return
	}
	name := "scenario-" + time.Now().Format("20060102-150405")
	if _, err := m.store.SaveScenario(name, m.params); err != nil {
		m.status = "Save failed: " + err.Error()
		return
	}
	m.status = "Saved " + name
}

// openBrowser switches to the scenario browser screen.
func (m *Model) openBrowser() {
	if m.store == nil {
		m.status = "No scenario database"
		return
	}
	b := newBrowserModel(m.store, m.width, m.height)
	m.browser = &b
}

// updateBrowser routes messages to the scenario browser and applies its
// outcome once it closes.
func (m Model) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keep the simulation tick loop alive behind the browser.
	if _, ok := msg.(TickMsg); ok {
		return m.handleTick()
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	updated, cmd := m.browser.Update(msg)
	if b, ok := updated.(browserModel); ok {
		m.browser = &b
	}

	switch {
	case m.browser.quitting:
		m.quitting = true
		return m, tea.Quit
	case m.browser.closed:
		selected := m.browser.selected
		m.browser = nil

		// Re-fit only if the terminal was resized while browsing; Resize
		// discards the landscape, so an unchanged grid is left alone.
		if w, h := m.gridSize(); w != m.engine.Grid().W || h != m.engine.Grid().H {
			m.layoutGrid()
			if !m.tooSmall {
				m.engine.Reset(m.params.TreeDensity)
			}
			m.playing = false
		}

		if selected != nil {
			m.params = selected.Params
			m.engine.Reset(m.params.TreeDensity)
			m.playing = false
			m.status = "Loaded " + selected.Name
		}
	}

	return m, cmd
}

// View renders the simulator.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.browser != nil {
		return m.browser.View()
	}
	if m.tooSmall {
		return "Terminal too small — resize to continue"
	}
	return m.render()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, store *storage.Store, width, height int, seed int64) error {
	model := NewModel(cfg, store, width, height, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // click-to-ignite
	)

	_, err := p.Run()
	return err
}
