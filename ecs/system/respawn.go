package system

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/ecs/entity"
)

const spawnPointScript = "spawn_point.tengo"

// RespawnSystem consumes hostile-death events and rebuilds each dead hostile
// from its prefab at a position chosen by the spawn placement script.
type RespawnSystem struct {
	compiled *tengo.Compiled
	seed     int64
}

func NewRespawnSystem(arenaW, arenaH float64, scriptSrc []byte) (*RespawnSystem, error) {
	script := tengo.NewScript(scriptSrc)
	_ = script.Add("__seed", int64(0))
	_ = script.Add("__arena_w", arenaW)
	_ = script.Add("__arena_h", arenaH)
	_ = script.Add("__x", 0.0)
	_ = script.Add("__y", 0.0)
	script.SetImports(stdlib.GetModuleMap("rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("respawn: compile %s: %w", spawnPointScript, err)
	}
	return &RespawnSystem{compiled: compiled, seed: rand.Int63()}, nil
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventHostileDied {
			continue
		}
		dead, ok := evt.Data.(ecs.Entity)
		if !ok || !ecs.IsAlive(w, dead) {
			continue
		}
		if !ecs.Has(w, dead, component.HostileTagComponent.Kind()) {
			continue
		}
		ecs.DestroyEntity(w, dead)

		pos, err := s.SpawnPoint()
		if err != nil {
			log.Printf("respawn: spawn point script: %v", err)
			continue
		}
		if _, err := entity.NewHostileAt(w, pos); err != nil {
			log.Printf("respawn: rebuild hostile: %v", err)
		}
	}
}

// SpawnPoint runs the placement script once and returns the chosen position.
func (s *RespawnSystem) SpawnPoint() (cp.Vector, error) {
	if s == nil || s.compiled == nil {
		return cp.Vector{}, fmt.Errorf("respawn: no compiled script")
	}
	run := s.compiled.Clone()
	if err := run.Set("__seed", s.seed); err != nil {
		return cp.Vector{}, err
	}
	s.seed++
	if err := run.Run(); err != nil {
		return cp.Vector{}, err
	}
	return cp.Vector{
		X: run.Get("__x").Float(),
		Y: run.Get("__y").Float(),
	}, nil
}
