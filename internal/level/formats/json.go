package formats

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/blockdrop/internal/tetris"
)

// JSONLevel is the flat JSON input layout:
//
//	{"Width": 10, "Height": 20,
//	 "Pieces": [{"Cells": [{"X": 0, "Y": 0}, ...]}, ...],
//	 "Commands": "SSAP..."}
//
// ID and Name are optional extensions; field matching is case-insensitive.
type JSONLevel struct {
	ID       string      `json:"Id,omitempty"`
	Name     string      `json:"Name,omitempty"`
	Width    int         `json:"Width"`
	Height   int         `json:"Height"`
	Pieces   []JSONPiece `json:"Pieces"`
	Commands string      `json:"Commands"`
}

// JSONPiece is one shape in design coordinates.
type JSONPiece struct {
	Cells []JSONCell `json:"Cells"`
}

// JSONCell is a single design coordinate.
type JSONCell struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (Level, error) {
	var jl JSONLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}

	level := Level{
		ID:       jl.ID,
		Name:     jl.Name,
		Width:    jl.Width,
		Height:   jl.Height,
		Pieces:   make([][]tetris.Point, len(jl.Pieces)),
		Commands: jl.Commands,
	}
	for i, p := range jl.Pieces {
		cells := make([]tetris.Point, len(p.Cells))
		for j, c := range p.Cells {
			cells[j] = tetris.P(c.X, c.Y)
		}
		level.Pieces[i] = cells
	}
	return level, nil
}
