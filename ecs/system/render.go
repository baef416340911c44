package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/common"
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/obj"
	"github.com/milk9111/hypernova/render"
)

const (
	healthBarWidth   = 100.0
	healthBarHeight  = 20.0
	healthBarOffsetY = 70.0
)

// RenderSystem draws the world through the camera. It runs from the ebiten
// Draw pass, not the tick pipeline, and reads state only.
type RenderSystem struct {
	Camera *obj.Camera
}

func NewRenderSystem(camera *obj.Camera) *RenderSystem {
	return &RenderSystem{Camera: camera}
}

func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil || s.Camera == nil {
		return
	}
	topLeft := s.Camera.Position().Sub(cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2})

	type drawable struct {
		sprite *component.Sprite
		pos    cp.Vector
	}
	var drawables []drawable
	for _, e := range w.Query(component.SpriteComponent.Kind(), component.TransformComponent.Kind()) {
		spr, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if spr == nil || tr == nil || !spr.Visible {
			continue
		}
		drawables = append(drawables, drawable{sprite: spr, pos: tr.Pos})
	}
	sort.SliceStable(drawables, func(i, j int) bool {
		return drawables[i].sprite.Layer < drawables[j].sprite.Layer
	})
	for _, d := range drawables {
		d.sprite.Mesh.Draw(screen, d.pos.X-topLeft.X, d.pos.Y-topLeft.Y)
	}

	s.drawHealthBars(w, screen, topLeft)
}

// drawHealthBars paints a black backing bar and a white fill proportional to
// current health above every entity that has health.
func (s *RenderSystem) drawHealthBars(w *ecs.World, screen *ebiten.Image, topLeft cp.Vector) {
	for _, e := range w.Query(component.HealthComponent.Kind(), component.TransformComponent.Kind()) {
		health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if health == nil || tr == nil || health.Max <= 0 {
			continue
		}
		pct := common.Clamp(health.Current/health.Max, 0, 1)

		x := tr.Pos.X - topLeft.X - healthBarWidth/2
		y := tr.Pos.Y - topLeft.Y - healthBarOffsetY - healthBarHeight/2
		render.FillRect(screen, x, y, healthBarWidth, healthBarHeight, color.Black)
		render.FillRect(screen, x, y, healthBarWidth*pct, healthBarHeight, color.White)
	}
}
