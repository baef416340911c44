package system

import (
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/obj"
)

// MovementSystem integrates velocities on the fixed logical tick and applies
// friction to entities that carry it.
type MovementSystem struct {
	Clock *obj.Clock
}

func NewMovementSystem(clock *obj.Clock) *MovementSystem {
	return &MovementSystem{Clock: clock}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Clock == nil {
		return
	}
	dt := s.Clock.Dt()

	for _, e := range w.Query(component.VelocityComponent.Kind(), component.TransformComponent.Kind()) {
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if vel == nil || tr == nil {
			continue
		}
		tr.Pos = tr.Pos.Add(vel.Vel.Mult(dt))
	}

	for _, e := range w.Query(component.VelocityComponent.Kind(), component.FrictionComponent.Kind()) {
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		fr, _ := ecs.Get(w, e, component.FrictionComponent.Kind())
		if vel == nil || fr == nil {
			continue
		}
		speed := vel.Vel.Length()
		if speed == 0 {
			continue
		}
		// friction can stop the entity but never reverse it
		drop := fr.Amount * dt
		if drop > speed {
			drop = speed
		}
		vel.Vel = vel.Vel.Sub(vel.Vel.Normalize().Mult(drop))
	}
}
