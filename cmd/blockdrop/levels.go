package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/blockdrop/internal/level"
	"github.com/vovakirdan/blockdrop/internal/registry"
)

// resolveLevel finds a level by registered ID, then by file path, then by
// ID inside dir.
func resolveLevel(arg, dir string) (level.Level, error) {
	if registry.Exists(arg) {
		return registry.Create(arg)
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return level.LoadFile(arg)
	}

	if dir != "" {
		return level.NewLoader(dir).LoadByID(arg)
	}

	return level.Level{}, fmt.Errorf("unknown level %q", arg)
}
