// Package levels loads world catalogs from YAML level files.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Enemy  EnemyDefaults
	Logger *log.Logger
}

// NewLoader creates a new level loader. A nil logger discards warnings.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{
		Root:   root,
		Enemy:  DefaultEnemy(),
		Logger: logger,
	}
}

// LoadAll recursively scans and loads all level files.
// Files are ordered by their order field, then by ID.
// Every broken file is reported, each error prefixed with its path.
func (l *Loader) LoadAll() ([]File, error) {
	var (
		files []File
		errs  []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}

		f, err := l.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	seen := make(map[string]string, len(files))
	for _, f := range files {
		if prev, ok := seen[f.Level.ID]; ok {
			errs = append(errs, fmt.Errorf("%s: duplicate level id %q (also in %s)", f.Path, f.Level.ID, prev))
			continue
		}
		seen[f.Level.ID] = f.Path
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Order != files[j].Order {
			return files[i].Order < files[j].Order
		}
		return files[i].Level.ID < files[j].Level.ID
	})

	return files, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	f, warnings, err := Parse(data, l.Enemy)
	for _, w := range warnings {
		if l.Logger != nil {
			l.Logger.Warn(w, "file", path)
		}
	}
	if err != nil {
		return File{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	f.Path = path
	return f, nil
}

// Catalog loads every level under Root and builds a world catalog.
func (l *Loader) Catalog() (*core.Catalog, error) {
	files, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	lvls := make([]*core.Level, len(files))
	for i, f := range files {
		lvls[i] = f.Level
	}

	cat, err := core.NewCatalog(lvls...)
	if err != nil {
		return nil, fmt.Errorf("building catalog from %s: %w", l.Root, err)
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded level catalog", "root", l.Root, "levels", cat.Len())
	}
	return cat, nil
}

// Export writes every level of a catalog to dir, one file per level.
func Export(cat *core.Catalog, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	paths := make([]string, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		lvl := cat.Level(i)
		data, err := Marshal(lvl, i+1)
		if err != nil {
			return paths, fmt.Errorf("level %q: %w", lvl.ID, err)
		}
		path := filepath.Join(dir, lvl.ID+".yaml")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return paths, fmt.Errorf("writing file %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
