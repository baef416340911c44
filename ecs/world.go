package ecs

import "github.com/milk9111/hypernova/ecs/component"

// System updates a world once per logical tick.
type System interface {
	Update(w *World)
}

// World owns entities, component tables, system order, and the frame event
// queue. All mutation happens on the tick goroutine; there is no locking.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*sparseSet
	systems  []System
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{tables: map[component.ComponentID]*sparseSet{}}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes the entity's components and marks it dead. Returns
// false for stale or already-dead handles.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.tables {
		set.remove(int(e.id()))
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then drops any unconsumed events.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns live entities carrying every given component kind.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	base := w.table(kinds[0].ID())
	if base == nil {
		return nil
	}
	out := make([]Entity, 0, len(base.denseEntities))
	for _, e := range base.denseEntities {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, k := range kinds[1:] {
			set := w.table(k.ID())
			if set == nil || !set.has(int(e.id())) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying the given component kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	set := w.table(kind.ID())
	if set == nil {
		return 0, false
	}
	for _, e := range set.denseEntities {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

func (w *World) table(id component.ComponentID) *sparseSet {
	if w == nil || id == 0 {
		return nil
	}
	return w.tables[id]
}

func (w *World) tableFor(id component.ComponentID) *sparseSet {
	if w.tables == nil {
		w.tables = map[component.ComponentID]*sparseSet{}
	}
	set, ok := w.tables[id]
	if !ok {
		set = &sparseSet{}
		w.tables[id] = set
	}
	return set
}
