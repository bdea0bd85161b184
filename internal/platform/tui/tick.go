// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, and the end screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// EndScreenDoneMsg is sent when the end-of-run message has been shown long enough.
type EndScreenDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// endScreenCmd returns a command that fires once after d.
func endScreenCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return EndScreenDoneMsg{}
	})
}
