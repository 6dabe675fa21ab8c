package foundry

import (
	"github.com/TheBitDrifter/mask"
)

var _ Entity = &entity{}

// nextEntityID hands out process-wide identities. The runtime is
// single-thread owned, so a plain counter suffices.
var nextEntityID int

type entity struct {
	id         int
	components map[string]Component
	membership mask.Mask
}

func newEntity() *entity {
	nextEntityID++
	return &entity{
		id:         nextEntityID,
		components: make(map[string]Component),
	}
}

func (e *entity) ID() int { return e.id }

// Put attaches a default instance of the class, replacing any instance the
// slot already holds, and returns the live instance.
func (e *entity) Put(c ComponentClass) Component {
	instance := c.New()
	e.PutInstance(c, instance)
	return instance
}

func (e *entity) PutInstance(c ComponentClass, v Component) {
	e.components[c.Name()] = v
	e.membership.Mark(c.RowIndex())
}

func (e *entity) Get(c ComponentClass) (Component, bool) {
	return e.GetNamed(c.Name())
}

func (e *entity) GetNamed(name string) (Component, bool) {
	v, ok := e.components[name]
	return v, ok
}

func (e *entity) Remove(c ComponentClass) bool {
	if _, ok := e.components[c.Name()]; !ok {
		return false
	}
	delete(e.components, c.Name())
	e.membership.Unmark(c.RowIndex())
	return true
}

func (e *entity) Has(c ComponentClass) bool {
	var slot mask.Mask
	slot.Mark(c.RowIndex())
	return e.membership.ContainsAll(slot)
}

func (e *entity) Components() []Component {
	out := make([]Component, 0, len(e.components))
	for _, v := range e.components {
		out = append(out, v)
	}
	return out
}
