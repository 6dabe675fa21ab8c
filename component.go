package foundry

import (
	"github.com/TheBitDrifter/table"
)

// Component is a unit of data attached to an entity under its class's name.
// Concrete payloads are plain structs supplied by the host application.
type Component any

// ComponentClass identifies a component slot and constructs default
// instances of it. Matching is name-based so that blueprints, which are pure
// data, can reference component types by name. The optional tag
// distinguishes interchangeable implementations sharing the same slot.
type ComponentClass interface {
	Name() string
	Tag() string
	// New returns a default instance of the class's payload type.
	New() Component
	// RowIndex reports the schema row assigned to the class's slot.
	// Tagged variants of one name share a row.
	RowIndex() uint32
}

// mainSchema assigns stable row indices to component slots; slot rows feed
// the membership masks on entities and the resolver.
var mainSchema = table.Factory.NewSchema()

// slotElements maps a slot name to the schema element registered for it, so
// tagged variants of one name resolve to the same row.
var slotElements = map[string]table.ElementType{}

type componentClass[T any] struct {
	name string
	tag  string
	slot table.ElementType
}

func (c *componentClass[T]) Name() string { return c.name }

func (c *componentClass[T]) Tag() string { return c.tag }

func (c *componentClass[T]) New() Component { return new(T) }

func (c *componentClass[T]) RowIndex() uint32 {
	return mainSchema.RowIndexFor(c.slot)
}

func slotElementFor[T any](name string) table.ElementType {
	if elem, ok := slotElements[name]; ok {
		return elem
	}
	elem := table.FactoryNewElementType[T]()
	mainSchema.Register(elem)
	slotElements[name] = elem
	return elem
}

// classKey builds the registry key for a class: the bare name, or name#tag
// for tagged variants.
func classKey(name, tag string) string {
	if tag == "" {
		return name
	}
	return name + "#" + tag
}
