package foundry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Blueprint is a declarative template for constructing an entity. Parents
// listed in Inherits are merged in order before the blueprint's own
// components, so later entries override earlier ones per component name.
// Blueprints are immutable once registered with an engine.
type Blueprint struct {
	Name       string               `yaml:"name"`
	Inherits   []string             `yaml:"inherits,omitempty"`
	Components []BlueprintComponent `yaml:"components,omitempty"`
}

// BlueprintComponent names a component type to instantiate. When Values is
// set, the listed fields are assigned onto the default instance.
type BlueprintComponent struct {
	Type   string         `yaml:"type"`
	Tag    string         `yaml:"tag,omitempty"`
	Values map[string]any `yaml:"values,omitempty"`
}

type blueprintDoc struct {
	Blueprints []*Blueprint `yaml:"blueprints"`
}

// ParseBlueprints decodes a yaml blueprint document:
//
//	blueprints:
//	  - name: creature
//	    components:
//	      - type: position
//	      - type: health
//	        values: {current: 10, max: 10}
//	  - name: goblin
//	    inherits: [creature]
//	    components:
//	      - type: health
//	        values: {current: 30, max: 30}
//
// Inheritance references are not validated here; resolution happens when an
// engine builds entities from the registered set.
func ParseBlueprints(data []byte) ([]*Blueprint, error) {
	var doc blueprintDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing blueprint document: %w", err)
	}
	for i, bp := range doc.Blueprints {
		if bp == nil || bp.Name == "" {
			return nil, fmt.Errorf("blueprint %d: missing name", i)
		}
		for j, bc := range bp.Components {
			if bc.Type == "" {
				return nil, fmt.Errorf("blueprint %q: component %d: missing type", bp.Name, j)
			}
		}
	}
	return doc.Blueprints, nil
}
