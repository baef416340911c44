package obj

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/render"
)

// BulletMeta is the immutable per-kind record: render shape and travel
// speed. One entry per kind, built once at startup from tuning.yaml.
type BulletMeta struct {
	Mesh  *render.Mesh
	Speed float64
	Layer int
}

// SpawnRequest asks the pool for one projectile. Dir does not have to be
// normalized; a zero-length Dir yields a zero velocity.
type SpawnRequest struct {
	Kind component.BulletKind
	Pos  cp.Vector
	Dir  cp.Vector
}

// BulletPool owns every projectile slot. Other systems never mutate bullet
// state directly: they enqueue spawn/despawn requests and the pool applies
// them, one consumer per queue, at fixed points in the tick.
type BulletPool struct {
	metas       map[component.BulletKind]BulletMeta
	initialSize int

	spawns   []SpawnRequest
	despawns []ecs.Entity

	exhaustions int
}

// NewBulletPool creates a pool that warms initialSize slots per kind.
func NewBulletPool(metas map[component.BulletKind]BulletMeta, initialSize int) *BulletPool {
	if initialSize <= 0 {
		initialSize = 10
	}
	return &BulletPool{metas: metas, initialSize: initialSize}
}

// Meta returns the metadata record for a kind.
func (p *BulletPool) Meta(kind component.BulletKind) (BulletMeta, bool) {
	if p == nil {
		return BulletMeta{}, false
	}
	meta, ok := p.metas[kind]
	return meta, ok
}

// Warm pre-allocates the inactive slots for every kind. Call once at
// startup.
func (p *BulletPool) Warm(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	for kind, meta := range p.metas {
		for i := 0; i < p.initialSize; i++ {
			p.newSlot(w, kind, meta, false, cp.Vector{}, cp.Vector{})
		}
	}
}

// EnqueueSpawn records a spawn intent; applied by ApplySpawns.
func (p *BulletPool) EnqueueSpawn(kind component.BulletKind, pos, dir cp.Vector) {
	if p == nil {
		return
	}
	p.spawns = append(p.spawns, SpawnRequest{Kind: kind, Pos: pos, Dir: dir})
}

// EnqueueDespawn records a despawn intent; applied by ApplyDespawns. Stale
// references are ignored there, so enqueueing is always safe.
func (p *BulletPool) EnqueueDespawn(e ecs.Entity) {
	if p == nil || !e.Valid() {
		return
	}
	p.despawns = append(p.despawns, e)
}

// ApplySpawns drains the spawn queue. Each request reuses the first inactive
// slot of its kind; with no slot free it allocates past the initial size and
// logs a pool-exhaustion warning so the initial size can be retuned.
func (p *BulletPool) ApplySpawns(w *ecs.World) {
	if p == nil || w == nil || len(p.spawns) == 0 {
		return
	}
	requests := p.spawns
	p.spawns = nil

	for _, req := range requests {
		meta, ok := p.metas[req.Kind]
		if !ok {
			log.Printf("bullet pool: no metadata for kind %s, dropping spawn", req.Kind)
			continue
		}
		vel := cp.Vector{}
		if req.Dir.Length() > 0 {
			vel = req.Dir.Normalize().Mult(meta.Speed)
		}

		if e, ok := p.freeSlot(w, req.Kind); ok {
			p.activate(w, e, req.Pos, vel)
			continue
		}

		p.exhaustions++
		log.Printf("bullet pool: exhausted for kind %s, allocating past initial size %d", req.Kind, p.initialSize)
		p.newSlot(w, req.Kind, meta, true, req.Pos, vel)
	}
}

// ApplyDespawns drains the despawn queue. Requests against slots that are
// already inactive or destroyed are silently ignored; despawn is idempotent.
func (p *BulletPool) ApplyDespawns(w *ecs.World) {
	if p == nil || w == nil || len(p.despawns) == 0 {
		return
	}
	requests := p.despawns
	p.despawns = nil

	for _, e := range requests {
		if !ecs.IsAlive(w, e) {
			continue
		}
		if !ecs.Has(w, e, component.BulletComponent.Kind()) {
			continue
		}
		if ecs.Has(w, e, component.BulletInactiveComponent.Kind()) {
			continue
		}
		p.deactivate(w, e)
	}
}

// Cull parks every active bullet farther than radius from center. The
// comparison is strict: a bullet sitting exactly on the boundary stays
// active. Runs after motion integration; this is the pool's own direct
// mutation, not a queued request.
func (p *BulletPool) Cull(w *ecs.World, center cp.Vector, radius float64) {
	if p == nil || w == nil {
		return
	}
	radiusSq := radius * radius
	for _, e := range w.Query(component.BulletComponent.Kind(), component.TransformComponent.Kind()) {
		if ecs.Has(w, e, component.BulletInactiveComponent.Kind()) {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if tr.Pos.DistanceSq(center) > radiusSq {
			p.deactivate(w, e)
		}
	}
}

// Exhaustions returns how many spawns fell back to unpooled allocation.
func (p *BulletPool) Exhaustions() int {
	if p == nil {
		return 0
	}
	return p.exhaustions
}

// PendingSpawns returns the number of queued, unapplied spawn requests.
func (p *BulletPool) PendingSpawns() int {
	if p == nil {
		return 0
	}
	return len(p.spawns)
}

func (p *BulletPool) freeSlot(w *ecs.World, kind component.BulletKind) (ecs.Entity, bool) {
	for _, e := range w.Query(component.BulletComponent.Kind(), component.BulletInactiveComponent.Kind()) {
		b, ok := ecs.Get(w, e, component.BulletComponent.Kind())
		if ok && b.Kind == kind {
			return e, true
		}
	}
	return 0, false
}

func (p *BulletPool) activate(w *ecs.World, e ecs.Entity, pos, vel cp.Vector) {
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tr.Pos = pos
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.Vel = vel
	}
	if spr, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		spr.Visible = true
	}
	ecs.Remove(w, e, component.BulletInactiveComponent.Kind())
}

func (p *BulletPool) deactivate(w *ecs.World, e ecs.Entity) {
	if spr, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		spr.Visible = false
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.Vel = cp.Vector{}
	}
	_ = ecs.Add(w, e, component.BulletInactiveComponent.Kind(), &component.BulletInactive{})
}

// newSlot allocates a bullet entity. Inactive slots are the warmed pool;
// active ones are the overflow path. Either way the entity carries the same
// components, so an overflow bullet rejoins the pool on its first despawn.
func (p *BulletPool) newSlot(w *ecs.World, kind component.BulletKind, meta BulletMeta, active bool, pos, vel cp.Vector) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Kind: kind})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vel: vel})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Mesh:    meta.Mesh,
		Visible: active,
		Layer:   meta.Layer,
	})
	if !active {
		_ = ecs.Add(w, e, component.BulletInactiveComponent.Kind(), &component.BulletInactive{})
	}
	return e
}
