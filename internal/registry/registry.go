// Package registry provides a global registry of play frontends.
// Frontends register themselves at startup, allowing the CLI to pick one
// by name without hardcoded dependencies on every display backend.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worlds/internal/config"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Session is everything a frontend needs to play one run.
type Session struct {
	Catalog *core.Catalog
	Start   int // Index of the first level
	Config  config.WorldsConfig
	Logger  *log.Logger

	// Script is an input script path, used by frontends without a player.
	Script string
}

// Frontend displays a run and feeds it input until the run ends.
type Frontend interface {
	// Name returns the identifier used on the command line (e.g., "terminal").
	Name() string

	// Description returns a one-line summary for help output.
	Description() string

	// Play runs one session and reports how it ended.
	Play(ctx context.Context, s Session) (core.Outcome, error)
}

// Info contains metadata about a registered frontend.
type Info struct {
	Name        string
	Description string
}

var (
	frontends = make(map[string]Frontend)
	mu        sync.RWMutex
)

// Register adds a frontend to the registry.
// Panics if a frontend with the same name is already registered.
func Register(f Frontend) {
	mu.Lock()
	defer mu.Unlock()

	name := f.Name()
	if _, exists := frontends[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}
	frontends[name] = f
}

// List returns information about all registered frontends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(frontends))
	for name, f := range frontends {
		result = append(result, Info{
			Name:        name,
			Description: f.Description(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the frontend registered under name.
func Get(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := frontends[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}
	return f, nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := frontends[name]
	return ok
}
