// Package formats provides the level file parsers. Each parser turns raw
// bytes into a Level; the caller picks one by file extension.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockdrop/internal/tetris"
)

// Level is a parsed level file before validation.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Pieces   [][]tetris.Point
	Commands string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Supported reports whether ext (with leading dot) has a parser.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range FormatExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
