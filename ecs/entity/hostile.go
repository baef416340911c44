package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/ecs"
)

func NewHostileAt(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	e, err := BuildEntity(w, "hostile.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("hostile: override transform: %w", err)
	}
	return e, nil
}
