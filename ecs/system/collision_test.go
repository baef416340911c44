package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/noise"
	"github.com/milk9111/hypernova/obj"
	"github.com/milk9111/hypernova/prefabs"
)

func newCollisionWorld(t *testing.T) (*ecs.World, *obj.BulletPool, *obj.Camera, *CollisionSystem) {
	t.Helper()

	w := ecs.NewWorld()
	pool := obj.NewBulletPool(map[component.BulletKind]obj.BulletMeta{
		component.BulletBall: {Speed: 100},
	}, 4)
	pool.Warm(w)

	camera := obj.NewCamera(noise.New(1), obj.DefaultCameraConfig())
	clock := obj.NewClock(1.0 / 60)
	clock.Advance()

	sys := NewCollisionSystem(pool, camera, clock,
		prefabs.CollisionTuning{HostileRadius: 40, DamagePerHit: 1, DeathEpsilon: 0.01},
		prefabs.ShakeTuning{Intensity: 10, Duration: 0.2},
	)
	return w, pool, camera, sys
}

func addHostile(t *testing.T, w *ecs.World, pos cp.Vector, health float64) ecs.Entity {
	t.Helper()

	e := ecs.CreateEntity(w)
	for _, err := range []error{
		ecs.Add(w, e, component.HostileTagComponent.Kind(), &component.HostileTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}),
		ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: health, Max: health}),
	} {
		if err != nil {
			t.Fatalf("build hostile: %v", err)
		}
	}
	return e
}

func spawnBulletAt(w *ecs.World, pool *obj.BulletPool, pos cp.Vector) {
	pool.EnqueueSpawn(component.BulletBall, pos, cp.Vector{})
	pool.ApplySpawns(w)
}

func hostileDiedEvents(w *ecs.World) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventHostileDied {
			out = append(out, evt)
		}
	}
	return out
}

func TestNoHitAtOrBeyondHostileRadius(t *testing.T) {
	w, pool, _, sys := newCollisionWorld(t)
	hostile := addHostile(t, w, cp.Vector{}, 3)
	spawnBulletAt(w, pool, cp.Vector{X: 40}) // exactly on the boundary

	sys.Update(w)
	pool.ApplyDespawns(w)

	health, _ := ecs.Get(w, hostile, component.HealthComponent.Kind())
	if health.Current != 3 {
		t.Fatalf("health = %v, boundary contact should not damage", health.Current)
	}
	if active, _ := countActiveBullets(w); active != 1 {
		t.Fatalf("%d active bullets, boundary contact should not despawn", active)
	}
}

func TestHitDamagesAndParksBullet(t *testing.T) {
	w, pool, _, sys := newCollisionWorld(t)
	hostile := addHostile(t, w, cp.Vector{}, 3)
	spawnBulletAt(w, pool, cp.Vector{X: 39})

	sys.Update(w)
	pool.ApplyDespawns(w)

	health, _ := ecs.Get(w, hostile, component.HealthComponent.Kind())
	if health.Current != 2 {
		t.Fatalf("health = %v, want 2 after one hit", health.Current)
	}
	if active, _ := countActiveBullets(w); active != 0 {
		t.Fatalf("%d active bullets, want the hit bullet parked", active)
	}
}

func TestDeathShakesAndSignalsOnce(t *testing.T) {
	w, pool, camera, sys := newCollisionWorld(t)
	hostile := addHostile(t, w, cp.Vector{}, 3)
	spawnBulletAt(w, pool, cp.Vector{X: 0})
	spawnBulletAt(w, pool, cp.Vector{X: 10})
	spawnBulletAt(w, pool, cp.Vector{X: 20})

	sys.Update(w)
	pool.ApplyDespawns(w)

	health, _ := ecs.Get(w, hostile, component.HealthComponent.Kind())
	if health.Current != 0 {
		t.Fatalf("health = %v, want 0 after three hits", health.Current)
	}
	if camera.LiveShakes() != 1 {
		t.Fatalf("LiveShakes = %d, death should shake exactly once", camera.LiveShakes())
	}
	evts := hostileDiedEvents(w)
	if len(evts) != 1 {
		t.Fatalf("%d death events, want 1", len(evts))
	}
	if got, ok := evts[0].Data.(ecs.Entity); !ok || got != hostile {
		t.Fatalf("death event data = %v, want the dead hostile %s", evts[0].Data, hostile)
	}
	if active, _ := countActiveBullets(w); active != 0 {
		t.Fatalf("%d active bullets, all three should be parked", active)
	}
}

func TestExtraHitsAfterDeathDoNotShakeAgain(t *testing.T) {
	w, pool, camera, sys := newCollisionWorld(t)
	addHostile(t, w, cp.Vector{}, 1)
	spawnBulletAt(w, pool, cp.Vector{X: 0})
	spawnBulletAt(w, pool, cp.Vector{X: 10})

	sys.Update(w)

	if camera.LiveShakes() != 1 {
		t.Fatalf("LiveShakes = %d, want 1", camera.LiveShakes())
	}
	if evts := hostileDiedEvents(w); len(evts) != 1 {
		t.Fatalf("%d death events, want 1", len(evts))
	}
}

func TestNoShakeForAlreadyDeadHostile(t *testing.T) {
	w, pool, camera, sys := newCollisionWorld(t)
	addHostile(t, w, cp.Vector{}, 0)
	spawnBulletAt(w, pool, cp.Vector{X: 5})

	sys.Update(w)

	if camera.LiveShakes() != 0 {
		t.Fatalf("LiveShakes = %d, hits on a dead hostile should not shake", camera.LiveShakes())
	}
	if evts := hostileDiedEvents(w); len(evts) != 0 {
		t.Fatalf("%d death events, want none", len(evts))
	}
}

func countActiveBullets(w *ecs.World) (active, parked int) {
	for _, e := range w.Query(component.BulletComponent.Kind()) {
		if ecs.Has(w, e, component.BulletInactiveComponent.Kind()) {
			parked++
		} else {
			active++
		}
	}
	return active, parked
}
