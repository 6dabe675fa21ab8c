package foundry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedEngine(t *testing.T, bps ...*Blueprint) Engine {
	t.Helper()
	eng, err := Factory.NewEngine(testComponentClasses())
	require.NoError(t, err)
	require.NoError(t, eng.AddBlueprints(bps...))
	require.NoError(t, eng.Start())
	return eng
}

func TestBuildAppliesValuesOntoDefaults(t *testing.T) {
	eng := newStartedEngine(t, &Blueprint{
		Name: "goblin",
		Components: []BlueprintComponent{
			{Type: "position"},
			{Type: "health", Values: map[string]any{"current": 30, "max": 40}},
		},
	})

	en, err := eng.BuildEntity("goblin")
	require.NoError(t, err)

	pos, ok := posClass.GetFromEntity(en)
	require.True(t, ok)
	assert.Equal(t, Position{}, *pos, "no values means the default instance")

	health, ok := healthClass.GetFromEntity(en)
	require.True(t, ok)
	assert.Equal(t, 30, health.Current)
	assert.Equal(t, 40, health.Max)
}

func TestChildOverridesParentOnNameCollision(t *testing.T) {
	parent := &Blueprint{
		Name: "creature",
		Components: []BlueprintComponent{
			{Type: "health", Values: map[string]any{"current": 1, "max": 10}},
		},
	}
	child := &Blueprint{
		Name:     "goblin",
		Inherits: []string{"creature"},
		Components: []BlueprintComponent{
			{Type: "health", Values: map[string]any{"current": 2}},
		},
	}
	eng := newStartedEngine(t, parent, child)

	en, err := eng.BuildEntity("goblin")
	require.NoError(t, err)

	health, ok := healthClass.GetFromEntity(en)
	require.True(t, ok)
	assert.Equal(t, 2, health.Current)
	assert.Equal(t, 0, health.Max, "override replaces the whole instance, not individual fields")
}

func TestDiamondInheritance(t *testing.T) {
	base := &Blueprint{
		Name:       "base",
		Components: []BlueprintComponent{{Type: "position"}},
	}
	left := &Blueprint{
		Name:       "left",
		Inherits:   []string{"base"},
		Components: []BlueprintComponent{{Type: "health", Values: map[string]any{"current": 1}}},
	}
	right := &Blueprint{
		Name:       "right",
		Inherits:   []string{"base"},
		Components: []BlueprintComponent{{Type: "health", Values: map[string]any{"current": 2}}},
	}
	leaf := &Blueprint{
		Name:     "leaf",
		Inherits: []string{"left", "right"},
	}
	eng := newStartedEngine(t, base, left, right, leaf).(*engine)

	resolved, err := eng.factory.Resolve("leaf")
	require.NoError(t, err)

	require.Len(t, resolved, 2, "shared ancestor components collapse to one slot entry")
	assert.Equal(t, "position", resolved[0].Type)
	assert.Equal(t, "health", resolved[1].Type)
	assert.Equal(t, 2, resolved[1].Values["current"], "the last-listed parent wins the slot")

	en, err := eng.BuildEntity("leaf")
	require.NoError(t, err)
	assert.Len(t, en.Components(), 2)
}

func TestCyclicInheritanceFails(t *testing.T) {
	tests := []struct {
		name     string
		bps      []*Blueprint
		target   string
		wantPath []string
	}{
		{
			name: "Two-node cycle",
			bps: []*Blueprint{
				{Name: "a", Inherits: []string{"b"}},
				{Name: "b", Inherits: []string{"a"}},
			},
			target:   "a",
			wantPath: []string{"a", "b", "a"},
		},
		{
			name:     "Self cycle",
			bps:      []*Blueprint{{Name: "a", Inherits: []string{"a"}}},
			target:   "a",
			wantPath: []string{"a", "a"},
		},
		{
			name: "Cycle below the root",
			bps: []*Blueprint{
				{Name: "root", Inherits: []string{"a"}},
				{Name: "a", Inherits: []string{"b"}},
				{Name: "b", Inherits: []string{"a"}},
			},
			target:   "root",
			wantPath: []string{"root", "a", "b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newStartedEngine(t, tt.bps...)

			en, err := eng.BuildEntity(tt.target)

			require.Nil(t, en, "no partial entity on failure")
			var cyclic CyclicBlueprintError
			require.ErrorAs(t, err, &cyclic)
			assert.Equal(t, tt.wantPath, cyclic.Path)
		})
	}
}

func TestUnknownBlueprintReferences(t *testing.T) {
	eng := newStartedEngine(t, &Blueprint{Name: "orphan", Inherits: []string{"ghost"}})

	_, err := eng.BuildEntity("orphan")
	var unknown UnknownBlueprintError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.Name)
	assert.Equal(t, "orphan", unknown.ReferencedBy)

	_, err = eng.BuildEntity("nope")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
	assert.Empty(t, unknown.ReferencedBy)
}

func TestUnknownComponentType(t *testing.T) {
	eng := newStartedEngine(t, &Blueprint{
		Name: "mage",
		Components: []BlueprintComponent{
			{Type: "position"},
			{Type: "mana"},
		},
	})

	en, err := eng.BuildEntity("mage")

	require.Nil(t, en, "construction is all-or-nothing")
	var unknown UnknownComponentTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "mana", unknown.Type)
	assert.Equal(t, "mage", unknown.Blueprint)
}

func TestTaggedComponentResolution(t *testing.T) {
	eng := newStartedEngine(t, &Blueprint{
		Name: "knight",
		Components: []BlueprintComponent{
			{Type: "armor", Tag: "iron", Values: map[string]any{"rating": 5}},
		},
	})

	en, err := eng.BuildEntity("knight")
	require.NoError(t, err)

	armor, ok := ironArmorClass.GetFromEntity(en)
	require.True(t, ok)
	assert.Equal(t, 5, armor.Rating)
}

func TestUntaggedReferenceToTaggedOnlySlot(t *testing.T) {
	// Only tagged armor classes are registered; a bare "armor" reference
	// matches no class.
	eng := newStartedEngine(t, &Blueprint{
		Name:       "knight",
		Components: []BlueprintComponent{{Type: "armor"}},
	})

	_, err := eng.BuildEntity("knight")
	var unknown UnknownComponentTypeError
	require.ErrorAs(t, err, &unknown)
}

func TestBlueprintsRegisteredAfterStartAreInvisible(t *testing.T) {
	eng := newStartedEngine(t, &Blueprint{Name: "early"})

	err := eng.AddBlueprint(&Blueprint{Name: "late"})
	var started StartedEngineError
	require.ErrorAs(t, err, &started)

	_, err = eng.BuildEntity("late")
	var unknown UnknownBlueprintError
	require.ErrorAs(t, err, &unknown, "the factory is a snapshot taken at Start")
}

func TestDeepInheritanceChain(t *testing.T) {
	eng := newStartedEngine(t,
		&Blueprint{Name: "a", Components: []BlueprintComponent{{Type: "position"}}},
		&Blueprint{Name: "b", Inherits: []string{"a"}, Components: []BlueprintComponent{{Type: "velocity"}}},
		&Blueprint{Name: "c", Inherits: []string{"b"}, Components: []BlueprintComponent{{Type: "health", Values: map[string]any{"current": 7}}}},
	)

	en, err := eng.BuildEntity("c")
	require.NoError(t, err)

	assert.True(t, posClass.Check(en))
	assert.True(t, velClass.Check(en))
	health, ok := healthClass.GetFromEntity(en)
	require.True(t, ok)
	assert.Equal(t, 7, health.Current)
}
