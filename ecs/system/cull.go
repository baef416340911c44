package system

import (
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/obj"
)

// CullSystem parks bullets that fly beyond the play radius, measured from
// the player. The radius is the viewport width. Runs after despawns so the
// cull sees this tick's final positions; with no player the frame is
// skipped.
type CullSystem struct {
	Pool   *obj.BulletPool
	Radius float64
}

func NewCullSystem(pool *obj.BulletPool, radius float64) *CullSystem {
	return &CullSystem{Pool: pool, Radius: radius}
}

func (s *CullSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Pool == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	s.Pool.Cull(w, tr.Pos, s.Radius)
}
