package builder

// DefaultRegistry is the global builder registry.
var DefaultRegistry = NewRegistry()

func init() {
	_ = DefaultRegistry.Register(ManifestName, func() Builder { return NewManifestBuilder() })
}

// Register registers a builder in the default registry.
func Register(name string, factory Factory) error {
	return DefaultRegistry.Register(name, factory)
}

// Get retrieves a builder from the default registry.
func Get(name string) (Builder, error) {
	return DefaultRegistry.Get(name)
}

// List returns all builders in the default registry.
func List() []string {
	return DefaultRegistry.List()
}
