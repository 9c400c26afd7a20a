package tetris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, field *Field, commands string, shapes ...Figure) *Engine {
	t.Helper()
	cmds, err := ParseCommands(commands)
	require.NoError(t, err)
	e, err := New(field, shapes, cmds)
	require.NoError(t, err)
	return e
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name  string
		shape Figure
		width int
		want  []Point
	}{
		{"single cell", MustFigure(P(0, 0)), 4, []Point{P(1, 0)}},
		{"T on 10", tShape(), 10, []Point{P(3, 0), P(4, 0), P(5, 0), P(4, 1)}},
		{"cell above pivot", MustFigure(P(0, 0), P(0, -1)), 5, []Point{P(2, 1), P(2, 0)}},
		{"rotated input uses design", tShape().RotateClockwise().Translate(7, 7), 10, []Point{P(3, 0), P(4, 0), P(5, 0), P(4, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Place(tt.shape, tt.width).Projections())
		})
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 3, floorDiv(7, 2))
	assert.Equal(t, -1, floorDiv(-1, 2))
	assert.Equal(t, -2, floorDiv(-4, 2))
	assert.Equal(t, 0, floorDiv(0, 2))
}

func TestNewRequiresShapes(t *testing.T) {
	_, err := New(NewEmptyField(4, 4), nil, nil)
	assert.ErrorIs(t, err, ErrNoShapes)
}

func TestEndToEndSingleCell(t *testing.T) {
	e := newEngine(t, NewEmptyField(4, 6), "SSSSSS", MustFigure(P(0, 0)))

	var locks []LockEvent
	e.SetHooks(Hooks{OnLock: func(ev LockEvent) { locks = append(locks, ev) }})

	require.NoError(t, e.Start())
	assert.Equal(t, []Point{P(1, 0)}, e.Active().Projections())

	for i := 0; i < 5; i++ {
		res, err := e.Step()
		require.NoError(t, err)
		assert.Equal(t, OutcomeMoved, res.Outcome)
	}
	assert.Equal(t, []Point{P(1, 5)}, e.Active().Projections())

	res, err := e.Step()
	require.NoError(t, err)
	assert.Equal(t, OutcomeLocked, res.Outcome)
	assert.Equal(t, 0, res.Cleared)
	assert.False(t, res.GameOver)

	s, err := e.Field().At(1, 5)
	require.NoError(t, err)
	assert.Equal(t, Occupied, s)
	assert.Equal(t, 1, e.Field().OccupiedCount())

	assert.Equal(t, 0, e.Bonus())
	assert.Equal(t, []Point{P(1, 0)}, e.Active().Projections())
	assert.Equal(t, []LockEvent{{CommandIndex: 5, Bonus: 0, Cleared: 0}}, locks)
	assert.True(t, e.Done())

	_, err = e.Step()
	assert.ErrorIs(t, err, ErrFinished)
}

func TestGameOverOnInitialSpawn(t *testing.T) {
	e := newEngine(t, NewField(4, 4, Occupied), "S", MustFigure(P(0, 0)))

	var overs []GameOverEvent
	e.SetHooks(Hooks{OnGameOver: func(ev GameOverEvent) { overs = append(overs, ev) }})

	require.NoError(t, e.Start())
	assert.Equal(t, -10, e.Bonus())
	assert.Equal(t, 0, e.Cursor(), "no command consumed")
	assert.Equal(t, 0, e.Field().OccupiedCount(), "field reset")
	assert.Equal(t, StateActive, e.State())
	assert.Equal(t, []GameOverEvent{{CommandIndex: -1, Bonus: -10}}, overs)
	assert.Equal(t, 1, e.Stats().GameOvers)
}

func TestSpawnImpossible(t *testing.T) {
	e := newEngine(t, NewEmptyField(1, 4), "SSS", MustFigure(P(0, 0), P(1, 0)))

	err := e.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawnImpossible)

	var se *SpawnError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 0, se.Shape)
	assert.True(t, e.Done())

	_, err = e.Step()
	assert.ErrorIs(t, err, ErrFinished)
}

func TestRunSpawnImpossible(t *testing.T) {
	e := newEngine(t, NewEmptyField(1, 4), "SSS", MustFigure(P(0, 0), P(1, 0)))
	_, err := e.Run()
	assert.ErrorIs(t, err, ErrSpawnImpossible)
}

func TestGameOverDuringPlay(t *testing.T) {
	vertical := MustFigure(P(0, 0), P(0, 1))
	e := newEngine(t, NewEmptyField(2, 2), "SD", vertical)

	var locks []LockEvent
	var overs []GameOverEvent
	e.SetHooks(Hooks{
		OnLock:     func(ev LockEvent) { locks = append(locks, ev) },
		OnGameOver: func(ev GameOverEvent) { overs = append(overs, ev) },
	})

	res, err := e.Step()
	require.NoError(t, err)
	assert.Equal(t, OutcomeLocked, res.Outcome)
	assert.True(t, res.GameOver)
	assert.Equal(t, -10, res.Bonus)
	assert.Equal(t, 0, e.Field().OccupiedCount(), "field reset after game over")
	assert.Equal(t, []Point{P(0, 0), P(0, 1)}, e.Active().Projections())

	assert.Equal(t, []GameOverEvent{{CommandIndex: 0, Bonus: -10}}, overs)
	assert.Equal(t, []LockEvent{{CommandIndex: 0, Bonus: -10, Cleared: 0}}, locks)

	// The run goes on after a game over.
	res, err = e.Step()
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, res.Outcome)
	assert.Equal(t, []Point{P(1, 0), P(1, 1)}, e.Active().Projections())
}

func TestRowClearAwardsBonus(t *testing.T) {
	domino := MustFigure(P(0, 0), P(1, 0))
	e := newEngine(t, NewEmptyField(2, 3), "SSS", domino)

	result, err := e.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, result.Bonus)
	assert.Equal(t, 1, result.RowsCleared)
	assert.Equal(t, 1, result.Locks)
	assert.Equal(t, 3, result.Commands)
	assert.Equal(t, 0, e.Field().OccupiedCount())
}

func TestLockOnRotationUsesLastValidPosition(t *testing.T) {
	bar := MustFigure(P(-1, 0), P(0, 0), P(1, 0))
	e := newEngine(t, NewEmptyField(3, 3), "ES", bar)

	res, err := e.Step()
	require.NoError(t, err)
	assert.Equal(t, OutcomeLocked, res.Outcome)
	assert.Equal(t, 1, res.Cleared, "horizontal bar filled row 0")
	assert.Equal(t, 1, e.Bonus())

	// The locking command is consumed; the next command moves the new piece.
	res, err = e.Step()
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, res.Outcome)
	assert.Equal(t, []Point{P(0, 1), P(1, 1), P(2, 1)}, e.Active().Projections())
}

func TestShapesCycle(t *testing.T) {
	single := MustFigure(P(0, 0))
	domino := MustFigure(P(0, 0), P(1, 0))
	e := newEngine(t, NewEmptyField(4, 3), "SSSSSS", single, domino)

	require.NoError(t, e.Start())
	assert.Equal(t, 1, e.NextShape())

	for i := 0; i < 3; i++ {
		_, err := e.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, []Point{P(1, 0), P(2, 0)}, e.Active().Projections())
	assert.Equal(t, 0, e.NextShape(), "index wraps")

	// Domino drops to row 1 (row 2 holds the single cell at column 1), then locks.
	for i := 0; i < 2; i++ {
		_, err := e.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, []Point{P(1, 0)}, e.Active().Projections())
	assert.Equal(t, 2, e.Stats().Locks)
}

func TestRenderHook(t *testing.T) {
	e := newEngine(t, NewEmptyField(4, 3), "SPSSP", MustFigure(P(0, 0)))

	var frames []string
	e.SetHooks(Hooks{OnRender: func(_ int, snap Snapshot) {
		frames = append(frames, RenderASCII(snap, DefaultGlyphs()))
	}})

	_, err := e.Run()
	require.NoError(t, err)

	require.Len(t, frames, 2)
	assert.Equal(t, "....\n.*..\n....\n", frames[0])
	assert.Equal(t, ".*..\n....\n.#..\n", frames[1])
}

func TestRenderDoesNotPersistCurrentPiece(t *testing.T) {
	e := newEngine(t, NewEmptyField(3, 3), "P", MustFigure(P(0, 0)))
	_, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, e.Field().OccupiedCount())
}

func TestCustomScoring(t *testing.T) {
	domino := MustFigure(P(0, 0), P(1, 0))
	e := newEngine(t, NewEmptyField(2, 3), "SSS", domino)
	e.SetScoring(Scoring{RowBonus: 5, GameOverPenalty: 1})

	result, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 5, result.Bonus)
}

func TestRestartIsDeterministic(t *testing.T) {
	e := newEngine(t, NewEmptyField(5, 6), "SSEDDSSSQASSSSSSPSSSSSSEESSSS",
		tShape(), lShape(), MustFigure(P(0, 0), P(1, 0)))

	r1, err := e.Run()
	require.NoError(t, err)

	e2 := e.Restart()
	r2, err := e2.Run()
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.True(t, e.Field().Equal(e2.Field()))
}

func TestEmptyCommandStream(t *testing.T) {
	e := newEngine(t, NewEmptyField(3, 3), "", MustFigure(P(0, 0)))
	result, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, Result{}, result)
	assert.True(t, e.Done())
}
