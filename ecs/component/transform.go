package component

import "github.com/jakecoffman/cp"

type Transform struct {
	Pos      cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
