// Package builder defines the contract for user-supplied image builders and
// the registry that resolves them by name.
package builder

import (
	"fmt"
	"sort"

	"github.com/dosanma1/sysgen/internal/config"
	"github.com/dosanma1/sysgen/internal/generator"
)

// Builder issues generator operations driven by the merged configuration.
type Builder interface {
	// Name returns the builder name used on the command line.
	Name() string

	// Build records the image in gen. It must not call gen.Finish.
	Build(gen *generator.Generator, cfg config.Mapping) error
}

// SchemaProvider is implemented by builders that publish the JSON schema
// their configuration must satisfy.
type SchemaProvider interface {
	Schema() []byte
}

// Factory creates a builder.
type Factory func() Builder

// Registry holds all registered builders.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty builder registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a builder factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("builder %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Get returns a new builder instance by name.
func (r *Registry) Get(name string) (Builder, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("builder %q not found", name)
	}
	return factory(), nil
}

// List returns all registered builder names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a builder is registered.
func (r *Registry) Has(name string) bool {
	_, exists := r.factories[name]
	return exists
}
