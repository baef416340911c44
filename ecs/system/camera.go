package system

import (
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/obj"
)

// CameraSystem feeds the injected camera controller each tick: shake first,
// then follow, matching the controller's composition order. With no player
// the frame is skipped and the camera self-heals once one exists.
type CameraSystem struct {
	Camera *obj.Camera
	Clock  *obj.Clock
}

func NewCameraSystem(camera *obj.Camera, clock *obj.Clock) *CameraSystem {
	return &CameraSystem{Camera: camera, Clock: clock}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Camera == nil || s.Clock == nil {
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
	s.Camera.ApplyShake(s.Clock.Now())
	s.Camera.Follow(tr.Pos, s.Clock.Dt())
}
