package foundry

import "maps"

type factory struct{}

var Factory factory

// EngineOption configures an engine at construction time.
type EngineOption func(*engine)

// WithBlueprintTypes supplies a closed enumeration of blueprint type keys.
// When set, BuildEntity validates its key against the enumeration and
// resolves it to the canonical blueprint name; unrecognized keys fail with
// InvalidBlueprintTypeError.
func WithBlueprintTypes(types map[string]string) EngineOption {
	return func(e *engine) {
		e.typeKeys = maps.Clone(types)
	}
}

// NewEngine creates an engine over the given component classes. The classes
// are the closed set blueprints may reference; registering more than
// Config.ComponentCapacity of them fails.
func (f factory) NewEngine(classes []ComponentClass, opts ...EngineOption) (Engine, error) {
	return newEngine(classes, opts...)
}

// NewEntity creates an empty entity for direct composition, outside any
// engine.
func (f factory) NewEntity() Entity {
	return newEntity()
}

// FactoryNewComponentClass creates a typed component class for the named
// slot.
func FactoryNewComponentClass[T any](name string) AccessibleClass[T] {
	return AccessibleClass[T]{
		ComponentClass: &componentClass[T]{
			name: name,
			slot: slotElementFor[T](name),
		},
	}
}

// FactoryNewTaggedComponentClass creates a tagged variant of the named slot.
// Tagged variants are interchangeable implementations: they share the slot,
// so putting one replaces another.
func FactoryNewTaggedComponentClass[T any](name, tag string) AccessibleClass[T] {
	return AccessibleClass[T]{
		ComponentClass: &componentClass[T]{
			name: name,
			tag:  tag,
			slot: slotElementFor[T](name),
		},
	}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
