// Package registry provides a global registry for window backends.
// Backends register themselves in init() functions, allowing the CLI
// to pick a renderer by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory opens a window for the given runtime configuration.
type Factory func(cfg core.RuntimeConfig) (core.Window, error)

type entry struct {
	factory     Factory
	description string
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	backends[name] = entry{factory: f, description: description}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for name, e := range backends {
		result = append(result, BackendInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create opens a window with the named backend.
// Returns an error wrapping core.ErrInit if the name is not registered or
// the backend fails to start.
func Create(name string, cfg core.RuntimeConfig) (core.Window, error) {
	mu.RLock()
	e, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q: %w", name, core.ErrInit)
	}

	win, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w: %w", name, core.ErrInit, err)
	}
	return win, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
