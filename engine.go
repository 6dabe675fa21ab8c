package foundry

import (
	"cmp"
	"errors"
	"slices"
	"time"
)

var _ Engine = &engine{}

type engine struct {
	classes  Cache[ComponentClass]
	typeKeys map[string]string // optional enumerated key -> canonical blueprint name

	blueprints     []*Blueprint
	seenBlueprints map[*Blueprint]struct{}
	factory        *EntityFactory
	started        bool

	entities   map[Entity]struct{}
	systems    []System
	systemSet  map[System]struct{}
	listeners  []EntityListener
	sortNeeded bool
}

func newEngine(classes []ComponentClass, opts ...EngineOption) (*engine, error) {
	registry := FactoryNewCache[ComponentClass](Config.componentCapacity)
	for _, class := range classes {
		if _, err := registry.Register(classKey(class.Name(), class.Tag()), class); err != nil {
			var full RegistryFullError
			if errors.As(err, &full) {
				full.Kind = "component"
				return nil, full
			}
			return nil, err
		}
	}
	e := &engine{
		classes:        registry,
		seenBlueprints: make(map[*Blueprint]struct{}),
		entities:       make(map[Entity]struct{}),
		systemSet:      make(map[System]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start snapshots the registered blueprints into the entity factory. The
// second call fails: registration happens before Start, resolution after.
func (e *engine) Start() error {
	if e.started {
		return StartedEngineError{}
	}
	factory, err := newEntityFactory(e.classes, e.blueprints)
	if err != nil {
		return err
	}
	e.factory = factory
	e.started = true
	return nil
}

func (e *engine) BuildEntity(key string) (Entity, error) {
	if !e.started {
		return nil, NotStartedError{}
	}
	name := key
	if e.typeKeys != nil {
		canonical, ok := e.typeKeys[key]
		if !ok {
			return nil, InvalidBlueprintTypeError{Key: key}
		}
		name = canonical
	}
	return e.factory.Build(name)
}

func (e *engine) NewEntity() Entity {
	return newEntity()
}

func (e *engine) AddEntity(en Entity) {
	if en == nil {
		return
	}
	if _, ok := e.entities[en]; ok {
		return
	}
	e.entities[en] = struct{}{}
	for _, l := range e.listeners {
		l.OnEntityAdded(en)
	}
}

func (e *engine) AddEntities(entities ...Entity) {
	for _, en := range entities {
		e.AddEntity(en)
	}
}

func (e *engine) RemoveEntity(en Entity) {
	if en == nil {
		return
	}
	if _, ok := e.entities[en]; !ok {
		return
	}
	delete(e.entities, en)
	for _, l := range e.listeners {
		l.OnEntityRemoved(en)
	}
}

func (e *engine) RemoveEntities(entities ...Entity) {
	for _, en := range entities {
		e.RemoveEntity(en)
	}
}

func (e *engine) Entities() []Entity {
	out := make([]Entity, 0, len(e.entities))
	for en := range e.entities {
		out = append(out, en)
	}
	return out
}

func (e *engine) AddSystem(s System) {
	if s == nil {
		return
	}
	if _, ok := e.systemSet[s]; ok {
		return
	}
	e.systemSet[s] = struct{}{}
	e.systems = append(e.systems, s)
	e.sortNeeded = true
	s.OnAttach(e)
}

func (e *engine) AddSystems(systems ...System) {
	for _, s := range systems {
		e.AddSystem(s)
	}
}

func (e *engine) RemoveSystem(s System) {
	if _, ok := e.systemSet[s]; !ok {
		return
	}
	delete(e.systemSet, s)
	for i, attached := range e.systems {
		if attached == s {
			copy(e.systems[i:], e.systems[i+1:])
			e.systems[len(e.systems)-1] = nil
			e.systems = e.systems[:len(e.systems)-1]
			break
		}
	}
	s.OnDetach(e)
}

func (e *engine) RemoveSystems(systems ...System) {
	for _, s := range systems {
		e.RemoveSystem(s)
	}
}

func (e *engine) AddBlueprint(bp *Blueprint) error {
	if e.started {
		return StartedEngineError{}
	}
	if bp == nil {
		return nil
	}
	if _, ok := e.seenBlueprints[bp]; ok {
		return nil
	}
	e.seenBlueprints[bp] = struct{}{}
	e.blueprints = append(e.blueprints, bp)
	return nil
}

func (e *engine) AddBlueprints(bps ...*Blueprint) error {
	for _, bp := range bps {
		if err := e.AddBlueprint(bp); err != nil {
			return err
		}
	}
	return nil
}

// Update runs one tick. If any priority changed since the last sort, the
// system set is stable-sorted ascending by priority first, so ties keep
// their prior relative order. The tick then iterates a snapshot of that
// order: systems added during the tick first run on the next tick, while
// entity and component mutations are visible to later systems immediately.
func (e *engine) Update(delta time.Duration) {
	if e.sortNeeded {
		slices.SortStableFunc(e.systems, func(a, b System) int {
			return cmp.Compare(a.Priority(), b.Priority())
		})
		e.sortNeeded = false
	}
	order := slices.Clone(e.systems)
	for _, s := range order {
		s.Update(e, delta)
	}
}

// NotifyPriorityChange marks the system set for re-sorting before the next
// tick and nothing else. The engine trusts callers: s is not validated
// against the attached set.
func (e *engine) NotifyPriorityChange(s System) {
	e.sortNeeded = true
}

func (e *engine) AddEntityListener(l EntityListener) {
	if l == nil {
		return
	}
	for _, registered := range e.listeners {
		if registered == l {
			return
		}
	}
	e.listeners = append(e.listeners, l)
}

func (e *engine) RemoveEntityListener(l EntityListener) {
	for i, registered := range e.listeners {
		if registered == l {
			copy(e.listeners[i:], e.listeners[i+1:])
			e.listeners[len(e.listeners)-1] = nil
			e.listeners = e.listeners[:len(e.listeners)-1]
			return
		}
	}
}
