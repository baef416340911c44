package component

import "github.com/jakecoffman/cp"

type Velocity struct {
	Vel cp.Vector
}

// AddClamped accumulates velocity while keeping the total magnitude under
// maxLen.
func (v *Velocity) AddClamped(delta cp.Vector, maxLen float64) {
	if v == nil {
		return
	}
	v.Vel = v.Vel.Add(delta).Clamp(maxLen)
}

var VelocityComponent = NewComponent[Velocity]()

// Friction decelerates an entity toward rest, in units per second per second.
type Friction struct {
	Amount float64
}

var FrictionComponent = NewComponent[Friction]()
