package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/core"
)

func TestDrawSnapshot(t *testing.T) {
	field, err := FieldFromRows([][]CellState{
		{Free, Free, Free},
		{Occupied, Free, Occupied},
	})
	require.NoError(t, err)

	e, err := New(field, []Figure{MustFigure(P(0, 0))}, nil)
	require.NoError(t, err)
	require.NoError(t, e.Start())

	scr := core.NewScreen(6, 4)
	pal := core.DefaultPalette()
	DrawSnapshot(scr, e.Snapshot(), 2, 1, DefaultGlyphs(), pal)

	assert.Equal(t, "      ", scr.Row(0))
	assert.Equal(t, "  .*. ", scr.Row(1))
	assert.Equal(t, "  #.# ", scr.Row(2))

	assert.Equal(t, pal.Current, scr.GetCell(3, 1).Color)
	assert.Equal(t, pal.Occupied, scr.GetCell(2, 2).Color)
	assert.Equal(t, pal.Free, scr.GetCell(3, 2).Color)
}

func TestDrawSnapshotClips(t *testing.T) {
	e, err := New(NewEmptyField(5, 5), []Figure{MustFigure(P(0, 0))}, nil)
	require.NoError(t, err)

	scr := core.NewScreen(3, 2)
	assert.NotPanics(t, func() {
		DrawSnapshot(scr, e.Snapshot(), 1, 1, DefaultGlyphs(), core.DefaultPalette())
	})
	assert.Equal(t, "   \n ..", scr.String())
}
