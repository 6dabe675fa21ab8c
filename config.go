package foundry

// Config holds global configuration for the composition system
var Config config = config{
	componentCapacity: 64,
	blueprintCapacity: 256,
}

type config struct {
	componentCapacity int
	blueprintCapacity int
}

// ComponentCapacity reports the maximum number of registered component
// classes per engine. The ceiling is bound to the mask width, so slot
// membership checks stay a single mask comparison.
func (c *config) ComponentCapacity() int { return c.componentCapacity }

// SetComponentCapacity configures the component class ceiling for engines
// created afterwards.
func (c *config) SetComponentCapacity(n int) { c.componentCapacity = n }

// BlueprintCapacity reports the maximum number of blueprints an entity
// factory snapshots at Start.
func (c *config) BlueprintCapacity() int { return c.blueprintCapacity }

// SetBlueprintCapacity configures the blueprint ceiling for engines started
// afterwards.
func (c *config) SetBlueprintCapacity(n int) { c.blueprintCapacity = n }
