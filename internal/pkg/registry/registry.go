package registry

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned by Get for unknown service keys.
var ErrNotRegistered = errors.New("service not registered")

type factory struct {
	fn        func() any
	singleton bool
}

// Registry holds service registrations keyed by service name.
type Registry struct {
	instances  map[string]any
	factories  map[string]factory
	singletons map[string]any
}

// New creates an empty registry.
func New() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.instances = map[string]any{}
	r.factories = map[string]factory{}
	r.singletons = map[string]any{}
}

// RegisterInstance stores a ready instance under key. Instances carry
// singleton semantics: the first Get promotes the value to the
// singleton cache and every lookup returns it.
func (r *Registry) RegisterInstance(key string, v any) {
	r.instances[key] = v
}

// RegisterFactory stores a constructor under key. With singleton set,
// the factory runs at most once and its result is cached.
func (r *Registry) RegisterFactory(key string, fn func() any, singleton bool) {
	r.factories[key] = factory{fn: fn, singleton: singleton}
}

// RegisterZero synthesizes a default factory producing a pointer to
// T's zero value, registered with singleton semantics.
func RegisterZero[T any](r *Registry, key string) {
	r.RegisterFactory(key, func() any { return new(T) }, true)
}

// Get resolves key: cached singleton first, then a stored instance
// (promoted to the singleton cache), then the factory (result cached
// when registered as singleton). Unknown keys fail with
// ErrNotRegistered naming the key.
func (r *Registry) Get(key string) (any, error) {
	if v, ok := r.singletons[key]; ok {
		return v, nil
	}
	if v, ok := r.instances[key]; ok {
		r.singletons[key] = v
		return v, nil
	}
	if f, ok := r.factories[key]; ok {
		v := f.fn()
		if f.singleton {
			r.singletons[key] = v
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotRegistered, key)
}

// Has reports whether key has any registration.
func (r *Registry) Has(key string) bool {
	if _, ok := r.singletons[key]; ok {
		return true
	}
	if _, ok := r.instances[key]; ok {
		return true
	}
	_, ok := r.factories[key]
	return ok
}

// Clear removes all instances, factories, and cached singletons,
// returning the registry to its initial empty state.
func (r *Registry) Clear() {
	r.reset()
}

// Resolve fetches key from r and asserts its type.
func Resolve[T any](r *Registry, key string) (T, error) {
	var zero T
	v, err := r.Get(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("service %q is %T, not %T", key, v, zero)
	}
	return t, nil
}

// defaultRegistry is the process-wide registry, created lazily.
var defaultRegistry *Registry

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	if defaultRegistry == nil {
		defaultRegistry = New()
	}
	return defaultRegistry
}

// SetDefault replaces the process-wide registry wholesale.
func SetDefault(r *Registry) {
	defaultRegistry = r
}
