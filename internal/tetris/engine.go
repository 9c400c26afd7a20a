package tetris

// State is the engine's position in the run lifecycle.
type State uint8

const (
	StateSpawning State = iota
	StateActive
	StateLocking
	StateRowClearing
	StateGameOver
	StateFinished
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateSpawning:
		return "Spawning"
	case StateActive:
		return "Active"
	case StateLocking:
		return "Locking"
	case StateRowClearing:
		return "RowClearing"
	case StateGameOver:
		return "GameOver"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Scoring holds the bonus adjustments applied by the engine.
type Scoring struct {
	RowBonus        int // Added per cleared row
	GameOverPenalty int // Subtracted per game-over
}

// DefaultScoring returns the standard +1 per row, -10 per game-over scoring.
func DefaultScoring() Scoring {
	return Scoring{RowBonus: 1, GameOverPenalty: 10}
}

// LockEvent is emitted after a piece locks and the next piece has spawned.
// Bonus already includes any game-over penalty from that spawn.
type LockEvent struct {
	CommandIndex int
	Bonus        int
	Cleared      int
}

// GameOverEvent is emitted when a spawned piece did not fit and the field
// was reset. CommandIndex is -1 for the initial spawn.
type GameOverEvent struct {
	CommandIndex int
	Bonus        int
}

// Hooks receive engine events. Nil hooks are skipped.
type Hooks struct {
	OnRender   func(index int, snap Snapshot)
	OnLock     func(LockEvent)
	OnGameOver func(GameOverEvent)
}

// Outcome describes what a single Step did.
type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomeRendered
	OutcomeLocked
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "Moved"
	case OutcomeRendered:
		return "Rendered"
	case OutcomeLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// StepResult contains information about one processed command.
type StepResult struct {
	Index    int
	Command  Command
	Outcome  Outcome
	Cleared  int  // Rows cleared, only for OutcomeLocked
	GameOver bool // A game-over happened while respawning
	Bonus    int
}

// Stats accumulates counters over a run.
type Stats struct {
	Commands    int
	Locks       int
	RowsCleared int
	GameOvers   int
}

// Result summarizes a finished run.
type Result struct {
	Bonus int
	Stats
}

// Engine advances one piece at a time through a command stream.
// It is not safe for concurrent use; run independent engines instead.
type Engine struct {
	width  int
	height int
	shapes []Figure
	cmds   Commands

	initial   *Field
	field     *Field
	active    Figure
	next      int // Index of the shape to spawn next
	bonus     int
	commander *Commander
	state     State
	started   bool
	stats     Stats

	scoring Scoring
	hooks   Hooks
}

// New creates an engine over the given field, shape list and commands.
// Shapes are given in design space; the engine places them on spawn.
func New(field *Field, shapes []Figure, cmds Commands) (*Engine, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}
	return &Engine{
		width:     field.Width(),
		height:    field.Height(),
		shapes:    append([]Figure(nil), shapes...),
		cmds:      cmds,
		initial:   field,
		field:     field,
		commander: NewCommander(cmds),
		state:     StateSpawning,
		scoring:   DefaultScoring(),
	}, nil
}

// SetScoring replaces the bonus adjustments. Call before Start.
func (e *Engine) SetScoring(s Scoring) {
	e.scoring = s
}

// SetHooks installs event callbacks.
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
}

// Field returns the current field.
func (e *Engine) Field() *Field {
	return e.field
}

// Active returns the active figure. Only meaningful after Start.
func (e *Engine) Active() Figure {
	return e.active
}

// Bonus returns the running bonus.
func (e *Engine) Bonus() int {
	return e.bonus
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Stats returns the counters accumulated so far.
func (e *Engine) Stats() Stats {
	return e.stats
}

// NextShape returns the index of the shape that spawns next.
func (e *Engine) NextShape() int {
	return e.next
}

// Cursor returns the index of the next command to execute.
func (e *Engine) Cursor() int {
	return e.commander.Pos()
}

// CommandCount returns the length of the command stream.
func (e *Engine) CommandCount() int {
	return e.commander.Len()
}

// Done returns true once the command stream is exhausted or a fatal spawn
// failure aborted the run.
func (e *Engine) Done() bool {
	return e.state == StateFinished
}

// Start spawns the first piece. It is called implicitly by Step and Run.
func (e *Engine) Start() error {
	if e.started {
		return nil
	}
	e.started = true
	_, err := e.spawn(-1)
	return err
}

// Step executes the next command. Collisions are absorbed into the
// lock/respawn cycle; the only error during play is ErrSpawnImpossible.
// After the stream is exhausted Step returns ErrFinished.
func (e *Engine) Step() (StepResult, error) {
	if err := e.Start(); err != nil {
		return StepResult{}, err
	}
	if e.state == StateFinished {
		return StepResult{}, ErrFinished
	}

	index := e.commander.Pos()
	cmd, ok := e.commander.Next()
	if !ok {
		e.state = StateFinished
		return StepResult{}, ErrFinished
	}
	e.stats.Commands++

	res := StepResult{Index: index, Command: cmd}

	if cmd == Render {
		if e.hooks.OnRender != nil {
			e.hooks.OnRender(index, e.Snapshot())
		}
		res.Outcome = OutcomeRendered
		res.Bonus = e.bonus
		e.finishIfExhausted()
		return res, nil
	}

	candidate := apply(cmd, e.active)
	if e.field.Fits(candidate) {
		e.active = candidate
		res.Outcome = OutcomeMoved
		res.Bonus = e.bonus
		e.finishIfExhausted()
		return res, nil
	}

	cleared, gameOver, err := e.lock(index)
	res.Outcome = OutcomeLocked
	res.Cleared = cleared
	res.GameOver = gameOver
	res.Bonus = e.bonus
	if err != nil {
		return res, err
	}
	e.finishIfExhausted()
	return res, nil
}

// Run executes all remaining commands and returns the run summary.
func (e *Engine) Run() (Result, error) {
	for {
		_, err := e.Step()
		if err == ErrFinished {
			return e.Result(), nil
		}
		if err != nil {
			return e.Result(), err
		}
	}
}

// Result returns the current run summary.
func (e *Engine) Result() Result {
	return Result{Bonus: e.bonus, Stats: e.stats}
}

// Restart returns a fresh engine with the same initial field, shapes,
// commands, scoring and hooks.
func (e *Engine) Restart() *Engine {
	fresh := &Engine{
		width:     e.width,
		height:    e.height,
		shapes:    e.shapes,
		cmds:      e.cmds,
		initial:   e.initial,
		field:     e.initial,
		commander: NewCommander(e.cmds),
		state:     StateSpawning,
		scoring:   e.scoring,
		hooks:     e.hooks,
	}
	return fresh
}

// finishIfExhausted moves to Finished when no commands remain.
func (e *Engine) finishIfExhausted() {
	if e.commander.Remaining() == 0 {
		e.state = StateFinished
	}
}

// lock writes the active piece into the field, clears rows and spawns the
// next shape. The command that triggered the lock is not retried.
func (e *Engine) lock(index int) (cleared int, gameOver bool, err error) {
	e.state = StateLocking
	field := e.field.Lock(e.active)
	e.stats.Locks++

	e.state = StateRowClearing
	field, cleared = field.ClearFullRows()
	e.field = field
	e.bonus += cleared * e.scoring.RowBonus
	e.stats.RowsCleared += cleared

	gameOver, err = e.spawn(index)
	if err != nil {
		return cleared, gameOver, err
	}

	if e.hooks.OnLock != nil {
		e.hooks.OnLock(LockEvent{CommandIndex: index, Bonus: e.bonus, Cleared: cleared})
	}
	return cleared, gameOver, nil
}

// spawn places the next shape. If it does not fit, the field is reset and
// the same shape is tried once more on the empty field.
func (e *Engine) spawn(index int) (gameOver bool, err error) {
	e.state = StateSpawning
	shape := e.next
	fig := Place(e.shapes[shape], e.width)

	if !e.field.Fits(fig) {
		gameOver = true
		e.state = StateGameOver
		e.bonus -= e.scoring.GameOverPenalty
		e.stats.GameOvers++
		e.field = NewEmptyField(e.width, e.height)
		if e.hooks.OnGameOver != nil {
			e.hooks.OnGameOver(GameOverEvent{CommandIndex: index, Bonus: e.bonus})
		}

		if !e.field.Fits(fig) {
			e.state = StateFinished
			e.active = Figure{}
			return gameOver, &SpawnError{Shape: shape, Width: e.width, Height: e.height}
		}
	}

	e.active = fig
	e.next = (shape + 1) % len(e.shapes)
	e.state = StateActive
	return gameOver, nil
}

// apply returns the figure after the geometric effect of cmd.
func apply(cmd Command, f Figure) Figure {
	switch cmd {
	case MoveLeft:
		return f.ShiftLeft(1)
	case MoveRight:
		return f.ShiftRight(1)
	case SoftDrop:
		return f.ShiftDown(1)
	case RotateCW:
		return f.RotateClockwise()
	case RotateCCW:
		return f.RotateCounterClockwise()
	default:
		return f
	}
}

// Place positions a shape at the top of a field of the given
// width, horizontally centered on its bounding box.
func Place(shape Figure, width int) Figure {
	minX, maxX, minY, _ := shape.DesignBounds()
	boxW := maxX - minX + 1
	offsetX := floorDiv(width-boxW, 2) - minX
	return shape.AtDesign().Translate(offsetX, -minY)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
