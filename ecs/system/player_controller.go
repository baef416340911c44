package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/common"
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/obj"
	"github.com/milk9111/hypernova/prefabs"
)

// PlayerControllerSystem turns Input intents into player velocity, recoil,
// and bullet spawn requests.
type PlayerControllerSystem struct {
	Pool   *obj.BulletPool
	Camera *obj.Camera

	speed    float64
	maxSpeed float64
	recoil   float64
}

func NewPlayerControllerSystem(pool *obj.BulletPool, camera *obj.Camera, tuning prefabs.PlayerTuning) *PlayerControllerSystem {
	s := &PlayerControllerSystem{Pool: pool, Camera: camera}
	s.SetTuning(tuning)
	return s
}

// SetTuning applies (possibly hot-reloaded) player tunables.
func (s *PlayerControllerSystem) SetTuning(tuning prefabs.PlayerTuning) {
	if s == nil {
		return
	}
	s.speed = tuning.Speed
	s.maxSpeed = tuning.MaxSpeed
	s.recoil = tuning.Recoil
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Pool == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	) {
		in, _ := ecs.Get(w, e, component.InputComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		if in == nil || tr == nil || vel == nil {
			continue
		}

		move := cp.Vector{X: in.MoveX, Y: in.MoveY}
		if move.Length() > 0 {
			vel.AddClamped(move.Normalize().Mult(s.speed), s.maxSpeed)
		}

		if in.FirePressed {
			dir := s.cursorWorld(in.CursorX, in.CursorY).Sub(tr.Pos)
			s.Pool.EnqueueSpawn(component.BulletBall, tr.Pos, dir)
			if dir.Length() > 0 {
				// firing kicks the player back along the shot line
				vel.Vel = vel.Vel.Sub(dir.Normalize().Mult(s.recoil))
			}
		}
	}
}

// cursorWorld maps a screen-space cursor to world space through the camera.
// Without a camera the screen origin is the world origin.
func (s *PlayerControllerSystem) cursorWorld(cx, cy float64) cp.Vector {
	cursor := cp.Vector{X: cx, Y: cy}
	if s.Camera == nil {
		return cursor
	}
	center := cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2}
	return s.Camera.Position().Add(cursor.Sub(center))
}
