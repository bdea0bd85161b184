package levels_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/levels"
)

// shippedLevels returns the path to the levels directory at the repo root.
func shippedLevels() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "..", "levels")
}

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func simpleLevel(id string, order int) string {
	return fmt.Sprintf(`id: %q
order: %d
platforms:
  - {x: 0, y: 360, w: 600, h: 40, kind: ground}
goal: {x: 550, y: 200, w: 30, h: 160}
`, id, order)
}

func TestLoaderShippedLevelsMatchBuiltin(t *testing.T) {
	loader := levels.NewLoader(shippedLevels(), nil)

	cat, err := loader.Catalog()
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	builtin := core.BuiltinCatalog()
	if cat.Len() < builtin.Len() {
		t.Fatalf("expected at least %d levels, got %d", builtin.Len(), cat.Len())
	}
	for i := 0; i < builtin.Len(); i++ {
		if !sameLevel(cat.Level(i), builtin.Level(i)) {
			t.Errorf("level %d differs from the built-in world", i)
		}
	}
}

func TestLoaderOrdering(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", simpleLevel("b", 1))
	writeLevel(t, dir, "a.yaml", simpleLevel("a", 2))
	writeLevel(t, dir, "nested/c.yml", simpleLevel("c", 1))
	writeLevel(t, dir, "notes.txt", "not a level")

	files, err := levels.NewLoader(dir, nil).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	var ids []string
	for _, f := range files {
		ids = append(ids, f.Level.ID)
	}
	if got := strings.Join(ids, ","); got != "b,c,a" {
		t.Errorf("order = %s, expected b,c,a", got)
	}
	if files[1].Path != filepath.Join(dir, "nested", "c.yml") {
		t.Errorf("path = %s", files[1].Path)
	}
}

func TestLoaderReportsEveryBrokenFile(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "ok.yaml", simpleLevel("ok", 0))
	badGoal := writeLevel(t, dir, "bad-goal.yaml", "id: g\ngoal: {x: 0, y: 0, w: 0, h: 5}\n")
	badYAML := writeLevel(t, dir, "bad-yaml.yaml", "id: [\n")

	_, err := levels.NewLoader(dir, nil).LoadAll()
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	for _, path := range []string{badGoal, badYAML} {
		if !strings.Contains(msg, path) {
			t.Errorf("error does not mention %s: %v", path, err)
		}
	}

	var verr core.ValidationError
	if !errors.As(err, &verr) || verr.Code != core.CodeEmptyGoal {
		t.Errorf("expected wrapped %s, got %v", core.CodeEmptyGoal, err)
	}
}

func TestLoaderDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "one.yaml", simpleLevel("same", 0))
	writeLevel(t, dir, "two.yaml", simpleLevel("same", 0))

	_, err := levels.NewLoader(dir, nil).LoadAll()
	if err == nil || !strings.Contains(err.Error(), "duplicate level id") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}

func TestLoaderEmptyDirectory(t *testing.T) {
	_, err := levels.NewLoader(t.TempDir(), nil).Catalog()

	var verr core.ValidationError
	if !errors.As(err, &verr) || verr.Code != core.CodeEmptyCatalog {
		t.Errorf("expected %s, got %v", core.CodeEmptyCatalog, err)
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	_, err := levels.NewLoader(filepath.Join(t.TempDir(), "nope"), nil).LoadAll()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := levels.Export(core.BuiltinCatalog(), dir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 files, got %d", len(paths))
	}

	cat, err := levels.NewLoader(dir, nil).Catalog()
	if err != nil {
		t.Fatalf("reloading export: %v", err)
	}
	builtin := core.BuiltinCatalog()
	for i := 0; i < builtin.Len(); i++ {
		if !sameLevel(cat.Level(i), builtin.Level(i)) {
			t.Errorf("exported level %d differs", i)
		}
	}
}
