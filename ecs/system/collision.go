package system

import (
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/obj"
	"github.com/milk9111/hypernova/prefabs"
)

// CollisionSystem pairs every hostile against every active bullet. The scan
// is O(hostiles x bullets) per tick, which is fine at single-screen entity
// counts; there is deliberately no spatial index.
//
// A bullet keeps colliding for the rest of the pass after its first hit, so
// it can damage several overlapping hostiles in one tick. It is parked by
// the despawn queue before the next pass.
type CollisionSystem struct {
	Pool   *obj.BulletPool
	Camera *obj.Camera
	Clock  *obj.Clock

	hostileRadius float64
	damagePerHit  float64
	deathEpsilon  float64

	shakeIntensity float64
	shakeDuration  float64
}

func NewCollisionSystem(pool *obj.BulletPool, camera *obj.Camera, clock *obj.Clock, collision prefabs.CollisionTuning, shake prefabs.ShakeTuning) *CollisionSystem {
	s := &CollisionSystem{Pool: pool, Camera: camera, Clock: clock}
	s.SetTuning(collision, shake)
	return s
}

// SetTuning applies (possibly hot-reloaded) collision and shake tunables.
func (s *CollisionSystem) SetTuning(collision prefabs.CollisionTuning, shake prefabs.ShakeTuning) {
	if s == nil {
		return
	}
	s.hostileRadius = collision.HostileRadius
	s.damagePerHit = collision.DamagePerHit
	s.deathEpsilon = collision.DeathEpsilon
	s.shakeIntensity = shake.Intensity
	s.shakeDuration = shake.Duration
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Pool == nil {
		return
	}

	bullets := w.Query(component.BulletComponent.Kind(), component.TransformComponent.Kind())

	for _, hostile := range w.Query(
		component.HostileTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.HealthComponent.Kind(),
	) {
		hostileTr, _ := ecs.Get(w, hostile, component.TransformComponent.Kind())
		health, _ := ecs.Get(w, hostile, component.HealthComponent.Kind())
		if hostileTr == nil || health == nil {
			continue
		}

		for _, bullet := range bullets {
			if ecs.Has(w, bullet, component.BulletInactiveComponent.Kind()) {
				continue
			}
			bulletTr, ok := ecs.Get(w, bullet, component.TransformComponent.Kind())
			if !ok {
				continue
			}
			if hostileTr.Pos.Distance(bulletTr.Pos) >= s.hostileRadius {
				continue
			}

			s.Pool.EnqueueDespawn(bullet)

			before := health.Current
			health.Current -= s.damagePerHit

			// The impulse fires on the crossing only, so piling more hits
			// onto a dead hostile in the same pass shakes once.
			if before > s.deathEpsilon && health.Current <= s.deathEpsilon {
				if s.Camera != nil {
					s.Camera.PushShake(s.shakeIntensity, s.shakeDuration, s.Clock.Now())
				}
				w.Events().Push(ecs.Event{Type: ecs.EventHostileDied, Data: hostile})
			}
		}
	}
}
