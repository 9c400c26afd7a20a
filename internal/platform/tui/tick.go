// Package tui provides the Bubble Tea front ends for blockdrop: the
// interactive replay viewer, the stored-runs table and the SSH server that
// serves replays over Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// uiTickRate is the redraw rate. Engine steps are paced separately so the
// replay rate can change without restarting the tick loop.
const uiTickRate = 30

// TickMsg is sent to trigger a UI tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
