// Package registry provides a global registry for view factories.
// Views register themselves in init() functions, allowing the engine and the
// other views to start them by ID without importing each other.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-shooter/internal/view"
)

// ErrUnknownView is returned by Create for an unregistered ID.
var ErrUnknownView = errors.New("registry: unknown view")

// ViewInfo contains metadata about a registered view.
type ViewInfo struct {
	ID    string
	Title string
}

// Factory creates a view. carried holds the state handed over by the view
// being replaced and is nil when the view starts from scratch.
type Factory func(ctx *view.Context, carried *view.Backgrounds) (view.View, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a view factory to the registry.
// Typically called from a view package's init() function.
// Panics if a view with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: view %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered views, sorted by ID.
func List() []ViewInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ViewInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ViewInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a view by its ID.
func Create(id string, ctx *view.Context, carried *view.Backgrounds) (view.View, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownView, id)
	}

	v, err := f(ctx, carried)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return v, nil
}

// Exists checks if a view with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Switch creates the view id and returns the action that activates it,
// handing carried over to it.
func Switch(id string, ctx *view.Context, carried *view.Backgrounds) (view.Action, error) {
	v, err := Create(id, ctx, carried)
	if err != nil {
		return view.Action{}, err
	}
	return view.SwitchTo(v), nil
}
