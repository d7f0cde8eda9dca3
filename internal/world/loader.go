package world

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// LevelFile is a parsed level plus the path it was read from.
type LevelFile struct {
	Level
	Path string
}

// Loader handles loading levels from a directory of an fs.FS.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(fsys fs.FS, root string) *Loader {
	return &Loader{FS: fsys, Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Files that fail to
// parse are skipped.
func (l *Loader) LoadAll() ([]LevelFile, error) {
	levels, _, err := l.scan()
	return levels, err
}

// scan loads every level file under Root and keeps the errors of files that
// failed, keyed by path.
func (l *Loader) scan() ([]LevelFile, map[string]error, error) {
	var levels []LevelFile
	failed := make(map[string]error)

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			failed[p] = err
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, nil, fmt.Errorf("world: walking %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, failed, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (LevelFile, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return LevelFile{}, fmt.Errorf("world: reading %s: %w", p, err)
	}

	level, err := ParseFile(p, data)
	if err != nil {
		return LevelFile{}, fmt.Errorf("world: parsing %s: %w", p, err)
	}

	return LevelFile{Level: level, Path: p}, nil
}

// LoadByID loads a specific level by ID. When no level has that ID but a
// file named after it failed to load, that file's error is returned.
func (l *Loader) LoadByID(id string) (LevelFile, error) {
	levels, failed, err := l.scan()
	if err != nil {
		return LevelFile{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	paths := make([]string, 0, len(failed))
	for p := range failed {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		if strings.TrimSuffix(path.Base(p), path.Ext(p)) == id {
			return LevelFile{}, failed[p]
		}
	}

	return LevelFile{}, fmt.Errorf("world: level not found: %s: %w", id, core.ErrLoad)
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

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
