// Package tui provides the Bubble Tea front end for the wildfire simulator.
// It owns timing and input: the simulation core is advanced on a fixed
// cadence and never drives itself.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step while auto-play is on.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given
// number of steps per second.
func tickCmd(stepsPerSecond int) tea.Cmd {
	interval := time.Second / time.Duration(stepsPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
