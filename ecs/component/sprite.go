package component

import "github.com/milk9111/hypernova/render"

// Sprite holds the generated mesh drawn for an entity. Invisible sprites are
// skipped by the render pass entirely.
type Sprite struct {
	Mesh    *render.Mesh
	Visible bool
	Layer   int
}

var SpriteComponent = NewComponent[Sprite]()
