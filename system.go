package foundry

import (
	"slices"
	"time"
)

var _ System = &BaseSystem{}

// BaseSystem carries the bookkeeping every system needs: priority storage
// and the set of attached engines. Concrete systems embed it and shadow
// Update with their behavior.
type BaseSystem struct {
	priority int
	engines  []Engine
}

func (s *BaseSystem) Priority() int { return s.priority }

// SetPriority stores the new priority and notifies every attached engine so
// its system set is re-sorted before the next tick. Sorting is deferred:
// rapid successive changes cost one sort.
func (s *BaseSystem) SetPriority(p int) {
	s.priority = p
	for _, e := range s.engines {
		e.NotifyPriorityChange(s)
	}
}

func (s *BaseSystem) Engines() []Engine {
	return slices.Clone(s.engines)
}

// OnAttach records the engine. Attaching an engine twice is a no-op. Called
// by Engine.AddSystem, never by user code.
func (s *BaseSystem) OnAttach(e Engine) {
	for _, attached := range s.engines {
		if attached == e {
			return
		}
	}
	s.engines = append(s.engines, e)
}

// OnDetach forgets the engine. Detaching an unattached engine is a no-op.
// Called by Engine.RemoveSystem, never by user code.
func (s *BaseSystem) OnDetach(e Engine) {
	for i, attached := range s.engines {
		if attached == e {
			copy(s.engines[i:], s.engines[i+1:])
			s.engines[len(s.engines)-1] = nil
			s.engines = s.engines[:len(s.engines)-1]
			return
		}
	}
}

// Update is a no-op so bookkeeping-only systems stay valid; concrete systems
// shadow it.
func (s *BaseSystem) Update(Engine, time.Duration) {}
