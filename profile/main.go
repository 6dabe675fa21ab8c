// Profiling:
// go build ./profile
// go tool pprof -http=":8000" -nodefraction=0.001 ./profile mem.pprof

package main

import (
	"time"

	"github.com/TheBitDrifter/foundry"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

var (
	positionClass = foundry.FactoryNewComponentClass[position]("position")
	velocityClass = foundry.FactoryNewComponentClass[velocity]("velocity")
)

type movementSystem struct {
	foundry.BaseSystem
}

func (s *movementSystem) Update(e foundry.Engine, delta time.Duration) {
	for _, en := range e.Entities() {
		pos, ok := positionClass.GetFromEntity(en)
		if !ok {
			continue
		}
		vel, ok := velocityClass.GetFromEntity(en)
		if !ok {
			continue
		}
		pos.X += vel.X * delta.Seconds()
		pos.Y += vel.Y * delta.Seconds()
	}
}

func main() {
	entities := 10000
	ticks := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(entities, ticks)
	p.Stop()
}

func run(entities, ticks int) {
	eng, err := foundry.Factory.NewEngine([]foundry.ComponentClass{positionClass, velocityClass})
	if err != nil {
		panic(err)
	}
	bp := &foundry.Blueprint{
		Name: "mover",
		Components: []foundry.BlueprintComponent{
			{Type: "position"},
			{Type: "velocity", Values: map[string]any{"x": 1.5, "y": 0.5}},
		},
	}
	if err := eng.AddBlueprint(bp); err != nil {
		panic(err)
	}
	if err := eng.Start(); err != nil {
		panic(err)
	}
	for range entities {
		en, err := eng.BuildEntity("mover")
		if err != nil {
			panic(err)
		}
		eng.AddEntity(en)
	}
	eng.AddSystem(&movementSystem{})
	for range ticks {
		eng.Update(16 * time.Millisecond)
	}
}
