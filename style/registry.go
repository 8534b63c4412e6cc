package style

import (
	"sort"
	"strings"
)

// Registry holds registered styles.
type Registry struct {
	styles map[string]Formatter
}

// DefaultRegistry is the global style registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new style registry.
func NewRegistry() *Registry {
	return &Registry{
		styles: make(map[string]Formatter),
	}
}

// Register adds a style to the registry.
func (r *Registry) Register(f Formatter) {
	r.styles[f.Name()] = f
}

// Get retrieves a style by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	f, ok := r.styles[strings.ToLower(name)]
	return f, ok
}

// List returns all registered style names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a style to the default registry.
func Register(f Formatter) {
	DefaultRegistry.Register(f)
}

// Get retrieves a style from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the default registry's style names.
func List() []string {
	return DefaultRegistry.List()
}
