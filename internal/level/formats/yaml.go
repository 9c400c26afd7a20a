package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockdrop/internal/tetris"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Size     YAMLSize    `yaml:"size"`
	Pieces   []YAMLPiece `yaml:"pieces"`
	Commands string      `yaml:"commands"`
}

// YAMLSize represents field dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPiece is one shape in design coordinates.
type YAMLPiece struct {
	Cells []YAMLCell `yaml:"cells"`
}

// YAMLCell is a single design coordinate.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML level file. Whitespace inside the commands
// string is dropped so long streams can be folded across lines.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Pieces:   make([][]tetris.Point, len(yl.Pieces)),
		Commands: stripSpace(yl.Commands),
	}
	for i, p := range yl.Pieces {
		cells := make([]tetris.Point, len(p.Cells))
		for j, c := range p.Cells {
			cells[j] = tetris.P(c.X, c.Y)
		}
		level.Pieces[i] = cells
	}
	return level, nil
}

func stripSpace(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
