package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wildfire/internal/sim"
)

// Cell glyphs and styles for the landscape.
var (
	styleTree    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleBurning = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleBurnt   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(panelWidth - 2).
			Padding(0, 1)

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	styleLabel    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	styleBarFill  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleBarEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	styleDanger   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleStatus   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const sliderWidth = 20

// render draws the landscape, the control panel and the status bar.
func (m Model) render() string {
	grid := m.renderGrid()
	panel := m.renderPanel()

	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", panel)

	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(styleStatus.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// renderGrid converts the cell grid to styled text, grouping runs of
// same-state cells to keep escape sequences down.
func (m Model) renderGrid() string {
	g := m.engine.Grid()

	var sb strings.Builder
	sb.Grow(g.W*g.H + g.H)

	for row := 0; row < g.H; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		col := 0
		for col < g.W {
			state := g.At(row, col)

			var run strings.Builder
			for col < g.W && g.At(row, col) == state {
				run.WriteRune(cellRune(state))
				col++
			}

			switch state {
			case sim.CellTree:
				sb.WriteString(styleTree.Render(run.String()))
			case sim.CellBurning:
				sb.WriteString(styleBurning.Render(run.String()))
			case sim.CellBurnt:
				sb.WriteString(styleBurnt.Render(run.String()))
			default:
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// cellRune returns the glyph for a cell state.
func cellRune(s sim.CellState) rune {
	switch s {
	case sim.CellTree:
		return '▲'
	case sim.CellBurning:
		return '✸'
	case sim.CellBurnt:
		return '░'
	default:
		return ' '
	}
}

// renderPanel draws the control panel: sliders, wind compass, derived fire
// probability and live cell tallies.
func (m Model) renderPanel() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Wildfire"))
	b.WriteString("\n\n")

	for i, keyID := range sim.ParamKeys {
		label := keyID.String()
		value := m.params.Get(keyID)

		line := fmt.Sprintf("%-18s %7s", label, formatParam(keyID, value))
		if i == m.cursor {
			b.WriteString(styleSelected.Render("> " + line))
		} else {
			b.WriteString(styleLabel.Render("  " + line))
		}
		b.WriteString("\n  ")
		b.WriteString(renderSlider(keyID, value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderCompass())
	b.WriteString("\n")

	prob := m.params.FireProbability()
	b.WriteString(styleLabel.Render("Fire spread probability"))
	b.WriteString("\n")
	b.WriteString(styleDanger.Render(fmt.Sprintf("%.0f%%", prob*100)))
	b.WriteString("\n\n")

	trees, burning, burnt := m.engine.Counts()
	b.WriteString(styleTree.Render(fmt.Sprintf("Trees   %6d", trees)))
	b.WriteString("\n")
	b.WriteString(styleBurning.Render(fmt.Sprintf("Burning %6d", burning)))
	b.WriteString("\n")
	b.WriteString(styleBurnt.Render(fmt.Sprintf("Burnt   %6d", burnt)))
	b.WriteString("\n\n")

	if m.playing {
		b.WriteString(styleSelected.Render("▶ running"))
	} else {
		b.WriteString(styleLabel.Render("‖ paused"))
	}

	return stylePanel.Render(b.String())
}

// formatParam formats a parameter value for display.
func formatParam(key sim.ParamKey, v float64) string {
	switch key {
	case sim.ParamWindDir:
		return fmt.Sprintf("%.0f°", v)
	case sim.ParamTemperature:
		return fmt.Sprintf("%.1f°C", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// renderSlider draws a filled bar proportional to the parameter's position
// within its valid range.
func renderSlider(key sim.ParamKey, v float64) string {
	r := sim.RangeOf(key)
	frac := 0.0
	if r.Max > r.Min {
		frac = (v - r.Min) / (r.Max - r.Min)
	}
	filled := int(frac*sliderWidth + 0.5)
	if filled > sliderWidth {
		filled = sliderWidth
	}
	return styleBarFill.Render(strings.Repeat("█", filled)) +
		styleBarEmpty.Render(strings.Repeat("░", sliderWidth-filled))
}

// compassGlyphs maps 45° sectors, starting at north, to arrows showing the
// direction the wind blows toward.
var compassGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// renderCompass draws a small wind indicator.
func (m Model) renderCompass() string {
	sector := int((m.params.WindDir+22.5)/45) % 8
	arrow := compassGlyphs[sector]

	var b strings.Builder
	b.WriteString(styleLabel.Render("      N"))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render("   W  "))
	b.WriteString(styleSelected.Render(string(arrow)))
	b.WriteString(styleLabel.Render("  E"))
	b.WriteString(styleSelected.Render(fmt.Sprintf("   %.0f°", m.params.WindDir)))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render("      S"))
	b.WriteString(styleLabel.Render(fmt.Sprintf("    str %.0f%%", m.params.WindStr*100)))
	b.WriteString("\n")
	return b.String()
}
