package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/storage"
)

func TestRunRows(t *testing.T) {
	created := time.Date(2025, time.March, 4, 15, 30, 0, 0, time.UTC)
	rows := RunRows([]storage.Run{
		{Bonus: 5, Locks: 9, RowsCleared: 5, GameOvers: 0, Source: "cli", CreatedAt: created},
		{Bonus: -10, Locks: 2, GameOvers: 1, Source: "ssh:bob"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#1", "5", "9", "5", "0", "cli", "Mar 04 15:30"}, []string(rows[0]))
	assert.Equal(t, []string{"#2", "-10", "2", "0", "1", "ssh:bob", ""}, []string(rows[1]))
}

func TestRunsModelCyclesLevels(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.Run{
		{LevelID: "alpha", Bonus: 1, Source: "test"},
		{LevelID: "alpha", Bonus: 4, Source: "test"},
		{LevelID: "beta", Bonus: 2, Source: "test"},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	m := NewRunsModel(store, "alpha", 100, 30)
	require.Equal(t, "alpha", m.Level())
	require.Len(t, m.Runs(), 2)
	assert.Equal(t, 4, m.Runs()[0].Bonus, "best run first")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	assert.Equal(t, "beta", m.Level())
	assert.Len(t, m.Runs(), 1)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(RunsModel)
	assert.Equal(t, "alpha", m.Level())

	// Wraps to the last level
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(RunsModel)
	assert.Equal(t, m.levels[len(m.levels)-1], m.Level())
}

func TestRunsModelUnknownLevel(t *testing.T) {
	m := NewRunsModel(nil, "nowhere", 60, 20)
	assert.Equal(t, "nowhere", m.Level())
	assert.Empty(t, m.Runs())
	assert.Contains(t, m.View(), "No runs recorded yet.")
}

func TestRunsModelView(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.Run{LevelID: "alpha", Bonus: 3, Source: "cli"})
	require.NoError(t, err)

	wide := NewRunsModel(store, "alpha", 120, 30)
	view := wide.View()
	assert.Contains(t, view, "RUNS - alpha")
	assert.Contains(t, view, "Levels")

	narrow := NewRunsModel(store, "alpha", 60, 30)
	assert.Contains(t, narrow.View(), "< alpha >")
}

func TestRunsModelQuit(t *testing.T) {
	m := NewRunsModel(nil, "", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}
