package system

import (
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/obj"
)

// BulletSpawnSystem is the single consumer of the pool's spawn queue. It
// runs before motion integration so a bullet spawned this tick also moves
// this tick.
type BulletSpawnSystem struct {
	Pool *obj.BulletPool
}

func NewBulletSpawnSystem(pool *obj.BulletPool) *BulletSpawnSystem {
	return &BulletSpawnSystem{Pool: pool}
}

func (s *BulletSpawnSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	s.Pool.ApplySpawns(w)
}

// BulletDespawnSystem is the single consumer of the pool's despawn queue. It
// runs after collision so hits raised this tick are parked before the next
// collision pass.
type BulletDespawnSystem struct {
	Pool *obj.BulletPool
}

func NewBulletDespawnSystem(pool *obj.BulletPool) *BulletDespawnSystem {
	return &BulletDespawnSystem{Pool: pool}
}

func (s *BulletDespawnSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	s.Pool.ApplyDespawns(w)
}
