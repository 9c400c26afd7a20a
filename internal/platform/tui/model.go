package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/level"
	"github.com/vovakirdan/blockdrop/internal/storage"
	"github.com/vovakirdan/blockdrop/internal/tetris"
)

const (
	panelWidth = 30 // Status panel to the right of the field
	maxEvents  = 8
)

// ReplayOptions configures a replay session. Zero Glyphs, Scoring and
// Palette fall back to the defaults.
type ReplayOptions struct {
	Level   level.Level
	Store   *storage.Store // nil disables saving
	Source  string         // Recorded with the saved run
	Config  core.RuntimeConfig
	Glyphs  tetris.Glyphs
	Scoring tetris.Scoring
	Palette core.Palette
	Logger  *log.Logger
}

// eventLog keeps the most recent engine events for the side panel.
// It is shared by pointer with the engine hooks.
type eventLog struct {
	lines []string
}

func (l *eventLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > maxEvents {
		l.lines = l.lines[len(l.lines)-maxEvents:]
	}
}

func (l *eventLog) reset() {
	l.lines = nil
}

// ReplayModel is the Bubble Tea model that steps an engine through a
// level's command stream.
type ReplayModel struct {
	opts     ReplayOptions
	engine   *tetris.Engine
	screen   *core.Screen
	keys     ReplayKeyMap
	help     help.Model
	input    core.InputFrame
	events   *eventLog
	rate     int // Engine steps per second
	budget   int // Step credit accumulated across ticks
	paused   bool
	err      error // Fatal spawn failure
	saved    bool
	quitting bool
}

// NewReplayModel builds the level and spawns its first piece.
func NewReplayModel(opts ReplayOptions) (ReplayModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Glyphs == (tetris.Glyphs{}) {
		opts.Glyphs = tetris.DefaultGlyphs()
	}
	if opts.Scoring == (tetris.Scoring{}) {
		opts.Scoring = tetris.DefaultScoring()
	}
	if opts.Palette == (core.Palette{}) {
		opts.Palette = core.DefaultPalette()
	}
	if opts.Config.ScreenW == 0 || opts.Config.ScreenH == 0 {
		def := core.DefaultConfig()
		opts.Config.ScreenW, opts.Config.ScreenH = def.ScreenW, def.ScreenH
	}

	engine, err := opts.Level.Build()
	if err != nil {
		return ReplayModel{}, err
	}
	engine.SetScoring(opts.Scoring)

	events := &eventLog{}
	engine.SetHooks(eventHooks(events))

	h := help.New()
	h.ShowAll = false

	m := ReplayModel{
		opts:   opts,
		engine: engine,
		screen: core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH-1),
		keys:   DefaultReplayKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
		events: events,
		rate:   core.Clamp(opts.Config.StepsPerSecond, core.MinStepsPerSecond, core.MaxStepsPerSecond),
		paused: !opts.Config.Autoplay,
	}
	m.start()
	return m, nil
}

func eventHooks(events *eventLog) tetris.Hooks {
	return tetris.Hooks{
		OnRender: func(index int, _ tetris.Snapshot) {
			events.add("%4d render", index)
		},
		OnLock: func(ev tetris.LockEvent) {
			if ev.Cleared > 0 {
				events.add("%4d lock  %+d rows  %d", ev.CommandIndex, ev.Cleared, ev.Bonus)
				return
			}
			events.add("%4d lock  bonus %d", ev.CommandIndex, ev.Bonus)
		},
		OnGameOver: func(ev tetris.GameOverEvent) {
			if ev.CommandIndex < 0 {
				events.add("start game over  %d", ev.Bonus)
				return
			}
			events.add("%4d game over  %d", ev.CommandIndex, ev.Bonus)
		},
	}
}

// start spawns the first piece; a shape wider than the field ends the
// replay immediately.
func (m *ReplayModel) start() {
	if err := m.engine.Start(); err != nil {
		m.err = err
		m.events.add("spawn impossible")
	}
}

// Init starts the tick loop.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(uiTickRate)
}

// Update handles messages and updates the model state.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit is immediate.
func (m ReplayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Set(action)
	return m, nil
}

// handleTick applies pending input, then advances the engine by as many
// commands as the replay rate allows.
func (m ReplayModel) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()
	m.input.Clear()

	if !m.paused && !m.finished() {
		m.budget += m.rate
		for m.budget >= uiTickRate && !m.finished() {
			m.budget -= uiTickRate
			m.step()
		}
	}

	m.saveIfDone()
	return m, tickCmd(uiTickRate)
}

func (m *ReplayModel) applyInput() {
	if m.input.Has(core.ActionRestart) {
		m.restart()
	}
	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
		m.budget = 0
	}
	if m.input.Has(core.ActionStep) {
		m.paused = true
		if !m.finished() {
			m.step()
		}
	}
	if m.input.Has(core.ActionFaster) {
		m.rate = core.Clamp(m.rate*2, core.MinStepsPerSecond, core.MaxStepsPerSecond)
	}
	if m.input.Has(core.ActionSlower) {
		m.rate = core.Clamp(m.rate/2, core.MinStepsPerSecond, core.MaxStepsPerSecond)
	}
	if m.input.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *ReplayModel) step() {
	_, err := m.engine.Step()
	if err != nil && !errors.Is(err, tetris.ErrFinished) {
		m.err = err
		m.events.add("spawn impossible")
	}
}

func (m *ReplayModel) restart() {
	m.engine = m.engine.Restart()
	m.events.reset()
	m.err = nil
	m.saved = false
	m.budget = 0
	m.start()
}

// saveIfDone records the finished run once. Aborted runs are not saved.
func (m *ReplayModel) saveIfDone() {
	if m.saved || m.err != nil || !m.engine.Done() {
		return
	}
	m.saved = true
	if m.opts.Store == nil {
		return
	}

	run := storage.NewRun(m.opts.Level.ID, m.opts.Source, m.engine.Result())
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "level", m.opts.Level.ID, "error", err)
		return
	}
	m.events.add("run saved")
}

func (m ReplayModel) finished() bool {
	return m.err != nil || m.engine.Done()
}

// Status returns the values shown in the side panel.
func (m ReplayModel) Status() core.ReplayStatus {
	st := m.engine.Stats()
	return core.ReplayStatus{
		LevelID:   m.opts.Level.ID,
		Bonus:     m.engine.Bonus(),
		Cursor:    m.engine.Cursor(),
		Total:     m.engine.CommandCount(),
		Locks:     st.Locks,
		Cleared:   st.RowsCleared,
		GameOvers: st.GameOvers,
		Paused:    m.paused,
		Finished:  m.finished(),
		Err:       m.err,
	}
}

// Rate returns the current replay rate in commands per second.
func (m ReplayModel) Rate() int {
	return m.rate
}

// Saved reports whether the finished run has been handled by the store.
func (m ReplayModel) Saved() bool {
	return m.saved
}

// Engine returns the engine being replayed.
func (m ReplayModel) Engine() *tetris.Engine {
	return m.engine
}

// View renders the current state to a string for display.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// draw lays out the title, the boxed field and the status panel.
func (m ReplayModel) draw() {
	s := m.screen
	p := m.opts.Palette
	s.Clear()

	snap := m.engine.Snapshot()
	boxW, boxH := snap.Width+2, snap.Height+2
	needW, needH := boxW+2+panelWidth, boxH+1
	if needW > s.Width() || needH > s.Height() {
		s.DrawTextCentered(s.Height()/2-1, "terminal too small", core.ColorRed)
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("need %dx%d", needW, needH+1), p.Text)
		return
	}

	s.DrawTextCentered(0, "BLOCKDROP · "+m.opts.Level.Title(), core.ColorBrightCyan)

	area := core.NewRect(0, 1, s.Width(), s.Height()-1)
	layout := core.CenteredIn(area, needW, boxH)
	box := core.NewRect(layout.X, layout.Y, boxW, boxH)

	s.DrawBox(box, p.Border)
	inner := box.Inset(1)
	tetris.DrawSnapshot(s, snap, inner.X, inner.Y, m.opts.Glyphs, p)

	x := box.Right() + 2
	y := box.Y
	for _, line := range m.statusLines() {
		s.DrawTextColored(x, y, truncate(line, panelWidth), p.Text)
		y++
	}
	y++
	for _, line := range m.events.lines {
		if y >= box.Bottom() {
			break
		}
		s.DrawTextColored(x, y, truncate(line, panelWidth), core.ColorGray)
		y++
	}
}

func (m ReplayModel) statusLines() []string {
	st := m.Status()
	state := "playing"
	switch {
	case st.Err != nil:
		state = "aborted"
	case st.Finished:
		state = "finished"
	case st.Paused:
		state = "paused"
	}
	return []string{
		fmt.Sprintf("Bonus      %d", st.Bonus),
		fmt.Sprintf("Command    %d/%d", st.Cursor, st.Total),
		fmt.Sprintf("Locks      %d", st.Locks),
		fmt.Sprintf("Rows       %d", st.Cleared),
		fmt.Sprintf("Game overs %d", st.GameOvers),
		fmt.Sprintf("Rate       %d/s", m.rate),
		fmt.Sprintf("State      %s", state),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// RunReplay starts the replay viewer and returns the final status.
func RunReplay(opts ReplayOptions) (core.ReplayStatus, error) {
	model, err := NewReplayModel(opts)
	if err != nil {
		return core.ReplayStatus{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return core.ReplayStatus{}, err
	}
	if m, ok := final.(ReplayModel); ok {
		return m.Status(), nil
	}
	return model.Status(), nil
}
