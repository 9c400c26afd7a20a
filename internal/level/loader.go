package level

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/blockdrop/internal/level/formats"
)

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system, such as an
// embedded one. Root is used only in error messages.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(path.Ext(p)) {
			return nil
		}

		lvl, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file given its path inside the loader's tree.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}
	lvl, err := decode(data, name)
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = filepath.Join(l.Root, filepath.FromSlash(name))
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadFile reads one level file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	lvl, err := decode(data, p)
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = p
	return lvl, nil
}

// decode parses data by the extension of name and fills in a missing ID
// from the base file name.
func decode(data []byte, name string) (Level, error) {
	ext := path.Ext(filepath.ToSlash(name))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}

	id := parsed.ID
	if id == "" {
		base := path.Base(filepath.ToSlash(name))
		id = strings.TrimSuffix(base, path.Ext(base))
	}

	return Level{
		ID:       id,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Pieces:   parsed.Pieces,
		Commands: parsed.Commands,
	}, nil
}
