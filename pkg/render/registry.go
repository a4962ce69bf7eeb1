package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrRendererNotFound is returned when a name has no registered renderer.
	ErrRendererNotFound = errors.New("render: renderer not found")

	// ErrDuplicateRenderer is returned when registering a name twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// Registry stores renderers by name. It is safe for concurrent use; renders
// for different requests only take the read lock.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates a registry holding the given renderers. It panics on
// invalid or duplicate renderers, which makes it suitable for init-time
// wiring.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer, len(renderers)),
	}
	for _, renderer := range renderers {
		r.MustRegister(renderer)
	}
	return r
}

// Register adds a renderer under its Name().
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := normalizeName(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
	}
	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name. Names are case-insensitive.
func (r *Registry) Get(name string) (Renderer, error) {
	key := normalizeName(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrRendererNotFound, name, strings.Join(r.namesLocked(), ", "))
	}
	return renderer, nil
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[normalizeName(name)]
	return ok
}

// List returns the registered renderer names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
