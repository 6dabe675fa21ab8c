package foundry

import (
	"time"
)

// Engine owns the entity set, the priority-ordered system set, the entity
// listeners, and the blueprint registry, and drives them through update ticks.
type Engine interface {
	// Start snapshots the registered blueprints into the entity factory.
	// It must be called exactly once, after all blueprints are registered
	// and before any BuildEntity call.
	Start() error

	// BuildEntity resolves the given key to a blueprint and constructs a
	// fresh entity from it. The entity is not added to the engine.
	BuildEntity(key string) (Entity, error)
	// NewEntity constructs an empty entity for direct composition.
	NewEntity() Entity

	AddEntity(Entity)
	AddEntities(...Entity)
	RemoveEntity(Entity)
	RemoveEntities(...Entity)
	// Entities returns a point-in-time snapshot of the entity set.
	Entities() []Entity

	AddSystem(System)
	AddSystems(...System)
	RemoveSystem(System)
	RemoveSystems(...System)

	AddBlueprint(*Blueprint) error
	AddBlueprints(...*Blueprint) error

	// Update runs one tick: systems execute in ascending priority order.
	Update(delta time.Duration)
	// NotifyPriorityChange marks the system set for re-sorting before the
	// next tick. The engine does not verify that s is attached.
	NotifyPriorityChange(s System)

	AddEntityListener(EntityListener)
	RemoveEntityListener(EntityListener)
}

// Entity is an identity owning at most one component instance per name.
// Putting a component replaces any existing instance of the same name.
type Entity interface {
	ID() int
	Put(ComponentClass) Component
	PutInstance(ComponentClass, Component)
	Get(ComponentClass) (Component, bool)
	GetNamed(name string) (Component, bool)
	Remove(ComponentClass) bool
	Has(ComponentClass) bool
	// Components returns a snapshot of the current component instances.
	Components() []Component
}

// System is a behavior unit run once per engine tick. Lower priorities run
// first. OnAttach and OnDetach are invoked exclusively by the engine's
// AddSystem/RemoveSystem operations.
type System interface {
	Priority() int
	SetPriority(int)
	// Engines returns a snapshot of the engines the system is attached to.
	Engines() []Engine
	OnAttach(Engine)
	OnDetach(Engine)
	Update(engine Engine, delta time.Duration)
}

// EntityListener is notified synchronously of entity membership changes,
// in listener registration order.
type EntityListener interface {
	OnEntityAdded(Entity)
	OnEntityRemoved(Entity)
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
}

// AccessibleClass extends a base ComponentClass with typed entity access.
type AccessibleClass[T any] struct {
	ComponentClass
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
