// Package registry provides a global registry for story modules.
// Stories register themselves in init() functions, allowing the CLI
// and the SSH server to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/morningparty/frequency-rescue/internal/engine"
)

// StoryInfo contains menu metadata about a registered story.
type StoryInfo struct {
	ID    string
	Title string
	Tag   string
}

// Factory builds a fresh Story value. Stories are immutable, but a
// factory keeps registration symmetric with how content packages are
// loaded.
type Factory func() *engine.Story

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]StoryInfo)
	mu        sync.RWMutex
)

// Register adds a story factory to the registry. Typically called
// from a story package's init() function. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: story %q already registered", id))
	}

	factories[id] = f
	st := f()
	infos[id] = StoryInfo{ID: id, Title: st.Title, Tag: st.Tag}
}

// List returns information about all registered stories, sorted by ID.
func List() []StoryInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StoryInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a story by its ID.
func Create(id string) (*engine.Story, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown story %q", id)
	}
	return f(), nil
}

// Exists checks if a story with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
