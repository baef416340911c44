package ecs

import "strconv"

// Entity packs a 32-bit id and a 32-bit generation. A despawned id can be
// reused; the generation bump keeps stale handles from resolving.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}

// entityStore tracks entity generations and free ids.
type entityStore struct {
	gen  []generation
	dead []bool
	free []entityID
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		s.dead[id-1] = false
	} else {
		s.gen = append(s.gen, 0)
		s.dead = append(s.dead, false)
		id = entityID(len(s.gen))
	}
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.dead[idx] = true
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.id() == 0 || int(e.id()) > len(s.gen) {
		return false
	}
	idx := e.id() - 1
	return !s.dead[idx] && s.gen[idx] == e.generation()
}

func (s *entityStore) all() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.gen))
	for i, g := range s.gen {
		if s.dead[i] {
			continue
		}
		out = append(out, makeEntity(entityID(i+1), g))
	}
	return out
}
