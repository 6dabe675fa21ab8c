package foundry

import (
	"fmt"
	"strings"
)

type NotStartedError struct{}

func (e NotStartedError) Error() string {
	return "engine has not been started"
}

type StartedEngineError struct{}

func (e StartedEngineError) Error() string {
	return "engine is already started"
}

type InvalidBlueprintTypeError struct {
	Key string
}

func (e InvalidBlueprintTypeError) Error() string {
	return fmt.Sprintf("unrecognized blueprint type key: %q", e.Key)
}

type UnknownBlueprintError struct {
	Name         string
	ReferencedBy string
}

func (e UnknownBlueprintError) Error() string {
	if e.ReferencedBy != "" {
		return fmt.Sprintf("unknown blueprint %q referenced by %q", e.Name, e.ReferencedBy)
	}
	return fmt.Sprintf("unknown blueprint %q", e.Name)
}

type CyclicBlueprintError struct {
	Path []string
}

func (e CyclicBlueprintError) Error() string {
	return fmt.Sprintf("cyclic blueprint inheritance: %s", strings.Join(e.Path, " -> "))
}

type UnknownComponentTypeError struct {
	Type      string
	Tag       string
	Blueprint string
}

func (e UnknownComponentTypeError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("blueprint %q references unregistered component type %q (tag %q)", e.Blueprint, e.Type, e.Tag)
	}
	return fmt.Sprintf("blueprint %q references unregistered component type %q", e.Blueprint, e.Type)
}

type RegistryFullError struct {
	Kind     string
	Capacity int
}

func (e RegistryFullError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s registry at maximum capacity (%d)", e.Kind, e.Capacity)
	}
	return fmt.Sprintf("registry at maximum capacity (%d)", e.Capacity)
}
