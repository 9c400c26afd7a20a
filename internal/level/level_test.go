package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/tetris"
)

func singleCell(commands string) Level {
	return Level{
		ID:       "single",
		Width:    4,
		Height:   6,
		Pieces:   [][]tetris.Point{{tetris.P(0, 0)}},
		Commands: commands,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Level)
		code   string
	}{
		{"ok", func(*Level) {}, ""},
		{"zero width", func(l *Level) { l.Width = 0 }, CodeBadSize},
		{"negative height", func(l *Level) { l.Height = -2 }, CodeBadSize},
		{"no pieces", func(l *Level) { l.Pieces = nil }, CodeNoPieces},
		{"no pivot", func(l *Level) { l.Pieces = [][]tetris.Point{{tetris.P(1, 0)}} }, CodeBadPiece},
		{"duplicate cell", func(l *Level) {
			l.Pieces = [][]tetris.Point{{tetris.P(0, 0), tetris.P(0, 0)}}
		}, CodeBadPiece},
		{"bad command", func(l *Level) { l.Commands = "SSX" }, CodeBadCommands},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := singleCell("SSP")
			tt.mutate(&lvl)

			err := lvl.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.code, ve.Code)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestValidateWrapsCause(t *testing.T) {
	lvl := singleCell("SZ")
	err := lvl.Validate()
	assert.ErrorIs(t, err, tetris.ErrInvalidCommand)

	lvl = singleCell("")
	lvl.Pieces = [][]tetris.Point{{tetris.P(2, 2)}}
	assert.ErrorIs(t, lvl.Validate(), tetris.ErrInvalidShape)
}

func TestBuild(t *testing.T) {
	e, err := singleCell("SSSSSS").Build()
	require.NoError(t, err)

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Locks)
	assert.Equal(t, 6, res.Commands)
	assert.Equal(t, 4, e.Field().Width())
	assert.Equal(t, 6, e.Field().Height())
}

func TestBuildInvalid(t *testing.T) {
	lvl := singleCell("S")
	lvl.Width = 0
	_, err := lvl.Build()
	assert.True(t, IsValidationError(err))
}

func TestTitle(t *testing.T) {
	lvl := singleCell("")
	assert.Equal(t, "single", lvl.Title())
	lvl.Name = "Single Cell"
	assert.Equal(t, "Single Cell", lvl.Title())
}

const yamlLevel = `
id: drop
name: Drop
size: {w: 3, h: 3}
pieces:
  - cells: [{x: 0, y: 0}]
commands: SSS
`

const jsonLevel = `{"Width": 2, "Height": 2, "Pieces": [{"Cells": [{"X": 0, "Y": 0}]}], "Commands": "S"}`

func TestLoaderLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"drop.yaml":         {Data: []byte(yamlLevel)},
		"nested/tiny.json":  {Data: []byte(jsonLevel)},
		"broken.yml":        {Data: []byte("size: [")},
		"README.md":         {Data: []byte("# levels")},
		"nested/other.toml": {Data: []byte("x = 1")},
	}
	loader := NewFSLoader(fsys, "testdata")

	levels, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, "drop", levels[0].ID)
	assert.Equal(t, "Drop", levels[0].Name)
	assert.Equal(t, filepath.Join("testdata", "drop.yaml"), levels[0].FilePath)

	// ID falls back to the file name
	assert.Equal(t, "tiny", levels[1].ID)
	assert.Equal(t, 2, levels[1].Width)

	ids, err := loader.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"drop", "tiny"}, ids)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{"drop.yaml": {Data: []byte(yamlLevel)}}, ".")

	lvl, err := loader.LoadByID("drop")
	require.NoError(t, err)
	assert.Equal(t, "SSS", lvl.Commands)

	_, err = loader.LoadByID("missing")
	assert.ErrorContains(t, err, "level not found")
}

func TestLoaderFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.json"), []byte(jsonLevel), 0o600))

	levels, err := NewLoader(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, filepath.Join(dir, "tiny.json"), levels[0].FilePath)

	lvl, err := LoadFile(filepath.Join(dir, "tiny.json"))
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.ID)

	_, err = LoadFile(filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	assert.Error(t, err)
}
