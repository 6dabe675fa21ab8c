package foundry

// GetFromEntity retrieves the typed component instance held by the entity's
// slot. The second result is false when the slot is empty or holds an
// instance of a different payload type.
func (c AccessibleClass[T]) GetFromEntity(e Entity) (*T, bool) {
	v, ok := e.Get(c.ComponentClass)
	if !ok {
		return nil, false
	}
	typed, ok := v.(*T)
	return typed, ok
}

// Check reports whether the entity's slot for this class is occupied.
func (c AccessibleClass[T]) Check(e Entity) bool {
	return e.Has(c.ComponentClass)
}
