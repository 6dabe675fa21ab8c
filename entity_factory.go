package foundry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/TheBitDrifter/mask"
	"gopkg.in/yaml.v3"
)

// EntityFactory resolves blueprint inheritance chains into concrete
// entities. It is a read-only snapshot of the blueprints registered with an
// engine before Start; blueprints registered later are invisible to it.
type EntityFactory struct {
	classes    Cache[ComponentClass]
	blueprints Cache[*Blueprint]
}

type resolvedComponent struct {
	component BlueprintComponent
	owner     string // blueprint that listed the component
	class     ComponentClass
}

func newEntityFactory(classes Cache[ComponentClass], registered []*Blueprint) (*EntityFactory, error) {
	blueprints := FactoryNewCache[*Blueprint](Config.blueprintCapacity)
	for _, bp := range registered {
		if _, err := blueprints.Register(bp.Name, bp); err != nil {
			var full RegistryFullError
			if errors.As(err, &full) {
				full.Kind = "blueprint"
				err = full
			}
			return nil, fmt.Errorf("snapshotting blueprint %q: %w", bp.Name, err)
		}
	}
	return &EntityFactory{classes: classes, blueprints: blueprints}, nil
}

// Build constructs a fresh entity from the named blueprint's flattened
// inheritance chain. Construction is all-or-nothing: unknown blueprints,
// cycles, unknown component types, and bad value overrides all fail before
// any entity escapes.
func (f *EntityFactory) Build(name string) (Entity, error) {
	resolved, err := f.resolve(name)
	if err != nil {
		return nil, err
	}
	en := newEntity()
	for _, rc := range resolved {
		instance := rc.class.New()
		if len(rc.component.Values) > 0 {
			if err := applyValues(instance, rc.component.Values); err != nil {
				return nil, fmt.Errorf("blueprint %q: component %q: %w", rc.owner, rc.component.Type, err)
			}
		}
		en.PutInstance(rc.class, instance)
	}
	return en, nil
}

// Resolve returns the flattened, deduplicated component list for the named
// blueprint: parents depth-first in listed order, child overriding parent
// per component name, last write wins.
func (f *EntityFactory) Resolve(name string) ([]BlueprintComponent, error) {
	resolved, err := f.resolve(name)
	if err != nil {
		return nil, err
	}
	out := make([]BlueprintComponent, len(resolved))
	for i, rc := range resolved {
		out[i] = rc.component
	}
	return out, nil
}

func (f *EntityFactory) resolve(name string) ([]resolvedComponent, error) {
	merged, err := f.flatten(name, "", nil)
	if err != nil {
		return nil, err
	}
	return dedupe(merged), nil
}

// flatten walks the inheritance chain depth-first, applying each parent's
// components before the child's own. path holds the blueprints currently
// being resolved; revisiting one of them is a cycle.
func (f *EntityFactory) flatten(name, referencedBy string, path []string) ([]resolvedComponent, error) {
	bp, ok := f.lookup(name)
	if !ok {
		return nil, UnknownBlueprintError{Name: name, ReferencedBy: referencedBy}
	}
	if slices.Contains(path, name) {
		return nil, CyclicBlueprintError{Path: append(slices.Clone(path), name)}
	}
	path = append(path, name)

	var merged []resolvedComponent
	for _, parent := range bp.Inherits {
		fromParent, err := f.flatten(parent, name, path)
		if err != nil {
			return nil, err
		}
		merged = append(merged, fromParent...)
	}
	for _, bc := range bp.Components {
		class, err := f.classFor(bc, name)
		if err != nil {
			return nil, err
		}
		merged = append(merged, resolvedComponent{component: bc, owner: name, class: class})
	}
	return merged, nil
}

// dedupe keeps the last occurrence per component slot, matching the replace
// semantics of Entity.Put. Slot membership is tracked with a mask over
// schema rows.
func dedupe(merged []resolvedComponent) []resolvedComponent {
	var seen mask.Mask
	kept := make([]resolvedComponent, 0, len(merged))
	for i := len(merged) - 1; i >= 0; i-- {
		var slot mask.Mask
		slot.Mark(merged[i].class.RowIndex())
		if seen.ContainsAll(slot) {
			continue
		}
		seen.Mark(merged[i].class.RowIndex())
		kept = append(kept, merged[i])
	}
	slices.Reverse(kept)
	return kept
}

func (f *EntityFactory) lookup(name string) (*Blueprint, bool) {
	idx, ok := f.blueprints.GetIndex(name)
	if !ok {
		return nil, false
	}
	return *f.blueprints.GetItem(idx), true
}

func (f *EntityFactory) classFor(bc BlueprintComponent, owner string) (ComponentClass, error) {
	idx, ok := f.classes.GetIndex(classKey(bc.Type, bc.Tag))
	if !ok {
		return nil, UnknownComponentTypeError{Type: bc.Type, Tag: bc.Tag, Blueprint: owner}
	}
	return *f.classes.GetItem(idx), nil
}

// applyValues assigns override fields onto the default instance by routing
// the override map through yaml, so field matching follows the payload
// struct's yaml tags.
func applyValues(instance Component, values map[string]any) error {
	raw, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, instance)
}
