package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/ecs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

func NewPlayerAt(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	e, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return e, nil
}
