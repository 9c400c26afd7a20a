package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/tetris"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"Width": 4,
		"Height": 6,
		"Pieces": [
			{"Cells": [{"X": 0, "Y": 0}]},
			{"Cells": [{"X": -1, "Y": 0}, {"X": 0, "Y": 0}]}
		],
		"Commands": "SSSP"
	}`)

	lvl, err := ParseJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 4, lvl.Width)
	assert.Equal(t, 6, lvl.Height)
	assert.Equal(t, "SSSP", lvl.Commands)
	assert.Equal(t, [][]tetris.Point{
		{tetris.P(0, 0)},
		{tetris.P(-1, 0), tetris.P(0, 0)},
	}, lvl.Pieces)
	assert.Empty(t, lvl.ID)
}

func TestParseJSONLowercaseKeys(t *testing.T) {
	lvl, err := ParseJSON([]byte(`{"width": 3, "height": 2, "pieces": [{"cells": [{"x": 0, "y": 0}]}], "commands": "S"}`))
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Width)
	assert.Equal(t, [][]tetris.Point{{tetris.P(0, 0)}}, lvl.Pieces)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"Width": "wide"}`))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
name: Demo Level
size: {w: 5, h: 8}
pieces:
  - cells: [{x: 0, y: 0}, {x: 1, y: 0}]
commands: |
  SSAD
  EQP
`)

	lvl, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "demo", lvl.ID)
	assert.Equal(t, "Demo Level", lvl.Name)
	assert.Equal(t, 5, lvl.Width)
	assert.Equal(t, 8, lvl.Height)
	assert.Equal(t, "SSADEQP", lvl.Commands)
	assert.Equal(t, [][]tetris.Point{{tetris.P(0, 0), tetris.P(1, 0)}}, lvl.Pieces)
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML([]byte("size: [1, 2"))
	assert.Error(t, err)
}

func TestParseByExtension(t *testing.T) {
	_, err := Parse([]byte(`{}`), ".JSON")
	assert.NoError(t, err)

	_, err = Parse([]byte("id: x"), ".yml")
	assert.NoError(t, err)

	_, err = Parse(nil, ".toml")
	assert.ErrorContains(t, err, "unsupported extension")

	assert.True(t, Supported(".YAML"))
	assert.False(t, Supported(".txt"))
}
