package ecs

import "github.com/milk9111/hypernova/ecs/component"

// Add attaches a component to a live entity, replacing any existing value of
// the same kind.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if w == nil || !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.tableFor(k.ID()).set(e, v)
	return nil
}

// Get returns the entity's component of the given kind. Stale handles never
// resolve.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.table(k.ID()).get(int(e.id()))
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the live entity carries the given component kind.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.table(k.ID()).has(int(e.id()))
}

// Remove detaches the component from the entity if present.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return false
	}
	set := w.table(k.ID())
	if set == nil {
		return false
	}
	return set.remove(int(e.id()))
}

// ForEach visits every live entity carrying the kind. The callback may add or
// remove components on the visited entity; iteration works on a snapshot of
// the dense entity list.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	set := w.table(k.ID())
	if set == nil {
		return
	}
	snapshot := append([]Entity(nil), set.denseEntities...)
	for _, e := range snapshot {
		if v, ok := Get(w, e, k); ok {
			fn(e, v)
		}
	}
}
