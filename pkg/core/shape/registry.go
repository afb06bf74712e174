package shape

import (
	"slices"
	"sync"

	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Built-in renderer names.
const (
	NameRect       = "rect"
	NameHollowRect = "hollow-rect"
	NameLine       = "line"
	NameTick       = "tick"
)

// Factory builds a renderer carrying caller style overrides.
type Factory func(style primitive.Style) Renderer

// Registry maps shape names to renderer factories. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// Default is the registry holding the built-in renderers.
var Default = NewRegistry()

// NewRegistry returns a registry with the built-in renderers registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(NameRect, func(s primitive.Style) Renderer { return ColorRect(ColorFill, s) })
	r.Register(NameHollowRect, func(s primitive.Style) Renderer { return ColorRect(ColorStroke, s) })
	r.Register(NameLine, Line)
	r.Register(NameTick, Tick)
	return r
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// New builds the renderer registered under name.
func (r *Registry) New(name string, style primitive.Style) (Renderer, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidShape, "unknown shape %q (available: %v)", name, r.Names())
	}
	return f(style), nil
}
