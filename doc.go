/*
Package foundry provides a blueprint-driven Entity-Component-System (ECS) runtime for games and simulations.

Foundry keeps the classic ECS shape: entities are bags of named components,
and systems are priority-ordered behavior units driven once per tick. On top
of that it adds a declarative construction layer. Blueprints are pure-data
templates that can inherit from other blueprints, and the engine resolves
them into concrete entities through an entity factory built when the engine
starts.

Core Concepts:

  - Entity: an identity owning at most one component instance per name.
  - Component: a named unit of data attachable to an entity.
  - System: a behavior unit invoked once per engine tick, lowest priority first.
  - Blueprint: a named, inheritable template listing component types and value overrides.
  - Engine: the orchestrator owning entities, systems, listeners, and the blueprint registry.

Basic Usage:

	// Define component classes
	position := foundry.FactoryNewComponentClass[Position]("position")
	health := foundry.FactoryNewComponentClass[Health]("health")

	// Create an engine over the classes
	engine, _ := foundry.Factory.NewEngine([]foundry.ComponentClass{position, health})

	// Register blueprints, then start to build the entity factory
	engine.AddBlueprint(&foundry.Blueprint{
		Name: "goblin",
		Components: []foundry.BlueprintComponent{
			{Type: "position"},
			{Type: "health", Values: map[string]any{"current": 30, "max": 30}},
		},
	})
	engine.Start()

	// Build and register entities, attach systems, drive ticks
	goblin, _ := engine.BuildEntity("goblin")
	engine.AddEntity(goblin)
	engine.AddSystem(&MovementSystem{})
	engine.Update(16 * time.Millisecond)

Blueprints can also be parsed from yaml documents via ParseBlueprints, keeping
entity composition entirely in data.

Foundry is the composition layer for the Bappa Framework but also works as a
standalone library.
*/
package foundry
