package ecs

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld()

	e := CreateEntity(w)
	if !IsAlive(w, e) {
		t.Fatalf("freshly created entity %s should be alive", e)
	}
	if !DestroyEntity(w, e) {
		t.Fatalf("destroying live entity %s should report true", e)
	}
	if IsAlive(w, e) {
		t.Fatalf("destroyed entity %s should not be alive", e)
	}
	if DestroyEntity(w, e) {
		t.Fatal("second destroy should report false")
	}
}

func TestStaleHandleAfterIDReuse(t *testing.T) {
	w := NewWorld()

	old := CreateEntity(w)
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected id %d to be reused, got %d", old.id(), reused.id())
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle should not resolve after its id was reused")
	}
	if !IsAlive(w, reused) {
		t.Fatal("reused entity should be alive")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	kind := component.TransformComponent.Kind()

	if err := Add(w, e, kind, &component.Transform{Pos: cp.Vector{X: 3, Y: 4}}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tr, ok := Get(w, e, kind)
	if !ok {
		t.Fatal("Get should find the added component")
	}
	if tr.Pos.X != 3 || tr.Pos.Y != 4 {
		t.Fatalf("got pos %v, want {3 4}", tr.Pos)
	}

	// components are held by pointer, mutations stick
	tr.Pos.X = 7
	again, _ := Get(w, e, kind)
	if again.Pos.X != 7 {
		t.Fatalf("mutation through Get pointer was lost, got %v", again.Pos.X)
	}

	if !Has(w, e, kind) {
		t.Fatal("Has should report the component")
	}
	if !Remove(w, e, kind) {
		t.Fatal("Remove should report true for a present component")
	}
	if Has(w, e, kind) {
		t.Fatal("component should be gone after Remove")
	}
	if Remove(w, e, kind) {
		t.Fatal("second Remove should report false")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	var invalid component.ComponentKind[component.Transform]
	if err := Add(w, e, invalid, &component.Transform{}); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("invalid kind: got %v, want ErrInvalidComponentKind", err)
	}
	if err := Add(w, e, component.TransformComponent.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("nil component: got %v, want ErrNilComponent", err)
	}

	DestroyEntity(w, e)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("dead entity: got %v, want ErrEntityNotAlive", err)
	}
}

func TestDestroyClearsComponents(t *testing.T) {
	w := NewWorld()

	e := CreateEntity(w)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: cp.Vector{X: 1}}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if _, ok := Get(w, reused, component.TransformComponent.Kind()); ok {
		t.Fatal("component from destroyed entity leaked into reused id")
	}
}

func TestQueryMatchesAllKinds(t *testing.T) {
	w := NewWorld()

	both := CreateEntity(w)
	if err := Add(w, both, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, both, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	onlyTransform := CreateEntity(w)
	if err := Add(w, onlyTransform, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := w.Query(component.TransformComponent.Kind(), component.VelocityComponent.Kind())
	if len(got) != 1 || got[0] != both {
		t.Fatalf("two-kind query = %v, want [%s]", got, both)
	}
	if got := w.Query(component.TransformComponent.Kind()); len(got) != 2 {
		t.Fatalf("one-kind query matched %d entities, want 2", len(got))
	}
	if got := w.Query(); got != nil {
		t.Fatalf("empty query should return nil, got %v", got)
	}

	DestroyEntity(w, both)
	if got := w.Query(component.TransformComponent.Kind()); len(got) != 1 || got[0] != onlyTransform {
		t.Fatalf("query after destroy = %v, want [%s]", got, onlyTransform)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()

	if _, ok := w.First(component.TransformComponent.Kind()); ok {
		t.Fatal("First on an empty world should report false")
	}

	e := CreateEntity(w)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := w.First(component.TransformComponent.Kind())
	if !ok || got != e {
		t.Fatalf("First = %s, %v; want %s, true", got, ok, e)
	}

	DestroyEntity(w, e)
	if _, ok := w.First(component.TransformComponent.Kind()); ok {
		t.Fatal("First should not resolve destroyed entities")
	}
}

func TestForEachAllowsRemovalDuringIteration(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	visited := 0
	ForEach(w, component.TransformComponent.Kind(), func(e Entity, _ *component.Transform) {
		visited++
		Remove(w, e, component.TransformComponent.Kind())
	})
	if visited != 5 {
		t.Fatalf("visited %d entities, want 5", visited)
	}
	if got := w.Query(component.TransformComponent.Kind()); len(got) != 0 {
		t.Fatalf("%d components remain after removal in ForEach", len(got))
	}
}

type recordingSystem struct {
	tag string
	log *[]string
}

func (s *recordingSystem) Update(*World) {
	*s.log = append(*s.log, s.tag)
}

func TestUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{tag: "first", log: &log})
	w.AddSystem(&recordingSystem{tag: "second", log: &log})
	w.AddSystem(&recordingSystem{tag: "third", log: &log})

	w.Update()

	want := []string{"first", "second", "third"}
	if len(log) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("system order %v, want %v", log, want)
		}
	}
}

func TestEventQueueDrainAndFlush(t *testing.T) {
	w := NewWorld()

	w.Events().Push(Event{Type: EventHostileDied, Data: Entity(1)})
	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Type != EventHostileDied {
		t.Fatalf("drained %v, want one %s event", evts, EventHostileDied)
	}
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("second drain should be empty, got %v", got)
	}

	// unconsumed events are dropped at the end of the tick
	w.Events().Push(Event{Type: EventHostileDied, Data: Entity(2)})
	w.Update()
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("Update should flush leftover events, got %v", got)
	}
}
