package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/prefabs"
	"github.com/milk9111/hypernova/render"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":  addPlayerTag,
	"hostile_tag": addHostileTag,
	"input":       addInput,
	"transform":   addTransform,
	"velocity":    addVelocity,
	"friction":    addFriction,
	"health":      addHealth,
	"sprite":      addSprite,
}

// Tags and transforms first so later builders can read them.
var componentBuildOrder = []string{
	"player_tag",
	"hostile_tag",
	"input",
	"transform",
	"velocity",
	"friction",
	"health",
	"sprite",
}

// BuildEntity creates an entity from a prefab's component map. Unknown
// component names fail the build and the partial entity is torn down.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	for name := range remaining {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
	}

	return e, nil
}

// SetEntityTransform overrides an entity's prefab position.
func SetEntityTransform(w *ecs.World, e ecs.Entity, pos cp.Vector) error {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("entity %s has no transform", e)
	}
	tr.Pos = pos
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addHostileTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.HostileTagComponent.Kind(), &component.HostileTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Pos:      cp.Vector{X: spec.X, Y: spec.Y},
		Rotation: spec.Rotation,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

func addFriction(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.FrictionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode friction spec: %w", err)
	}
	return ecs.Add(w, e, component.FrictionComponent.Kind(), &component.Friction{Amount: spec.Amount})
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max == 0 {
		spec.Max = 1
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(spec.Max))
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("sprite radius must be positive, got %v", spec.Radius)
	}
	col, err := render.NamedColor(spec.Color)
	if err != nil {
		return fmt.Errorf("parse sprite color: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Mesh:    render.NGon(spec.Radius, spec.Vertices, col),
		Visible: true,
		Layer:   spec.Layer,
	})
}
