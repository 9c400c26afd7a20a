// Package builtin registers the levels shipped inside the binary.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/blockdrop/internal/level/builtin"
package builtin

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/blockdrop/internal/level"
	"github.com/vovakirdan/blockdrop/internal/registry"
)

//go:embed levels/*.yaml
var files embed.FS

func init() {
	levels, err := Levels()
	if err != nil {
		panic(err)
	}
	for _, lvl := range levels {
		lvl := lvl
		registry.Register(lvl.ID, func() level.Level { return lvl })
	}
}

// Levels parses and validates every embedded level.
func Levels() ([]level.Level, error) {
	sub, err := fs.Sub(files, "levels")
	if err != nil {
		return nil, err
	}
	levels, err := level.NewFSLoader(sub, "builtin").LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range levels {
		if err := lvl.Validate(); err != nil {
			return nil, fmt.Errorf("builtin level %s: %w", lvl.ID, err)
		}
	}
	return levels, nil
}
