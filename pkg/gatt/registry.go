package gatt

import (
	"fmt"
	"sort"

	"github.com/cornelk/hashmap"
	"github.com/srg/blecore/pkg/att"
)

// Factory returns a fresh provider. Providers are not safe for concurrent
// use, so every lookup builds its own.
type Factory func() att.Provider

// Registry maps table names to provider factories. It is safe for
// concurrent use.
type Registry struct {
	factories *hashmap.Map[string, Factory]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: hashmap.New[string, Factory]()}
}

// DefaultRegistry returns a registry holding the "battery" and "midi"
// reference tables.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("battery", func() att.Provider { return NewBatteryServiceAttrs() })
	_ = r.Register("midi", func() att.Provider { return NewMidiServiceAttrs() })
	return r
}

// Register adds a named factory. Names are unique.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("table name and factory are required")
	}
	if !r.factories.Insert(name, f) {
		return fmt.Errorf("table %q already registered", name)
	}
	return nil
}

// Lookup builds the provider registered under name.
func (r *Registry) Lookup(name string) (att.Provider, bool) {
	f, ok := r.factories.Get(name)
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.factories.Len())
	r.factories.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
