package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/common"
	"github.com/milk9111/hypernova/noise"
)

// CameraConfig carries the follow and shake tunables.
type CameraConfig struct {
	// Below SnapThreshold the follow point jumps straight to the target,
	// avoiding asymptotic creep at rest.
	SnapThreshold float64
	// Smoothing ramps from MinSmooth to MaxSmooth as the target strays from
	// 0 to MaxDistance away; beyond that it stays at MaxSmooth.
	MaxDistance float64
	MinSmooth   float64
	MaxSmooth   float64

	// Shake impulses sample noise on a circle of this radius.
	ShakeCircleRadius float64
	// Per-impulse random sampling offsets are drawn from ±ShakeOffsetRange.
	ShakeOffsetRange float64
}

// DefaultCameraConfig matches the shipped tuning.yaml.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		SnapThreshold:     10,
		MaxDistance:       100,
		MinSmooth:         1,
		MaxSmooth:         1,
		ShakeCircleRadius: 5,
		ShakeOffsetRange:  1000,
	}
}

// ShakeImpulse is one time-bounded positional perturbation. An impulse is
// live while elapsed < Duration; an expired impulse gets Start reset to the
// zero sentinel and is purged on the same update.
type ShakeImpulse struct {
	Intensity float64
	Duration  float64
	Start     float64

	xOffset cp.Vector
	yOffset cp.Vector
}

// Camera tracks a subject with distance-adaptive smoothing and layers the
// summed offsets of live shake impulses on top of the follow point. It owns
// all of its state; callers mutate it only through these methods.
type Camera struct {
	FollowPoint cp.Vector

	cfg    CameraConfig
	field  *noise.Field
	shakes []ShakeImpulse
	offset cp.Vector
}

// NewCamera creates a camera sampling the given noise field.
func NewCamera(field *noise.Field, cfg CameraConfig) *Camera {
	return &Camera{field: field, cfg: cfg}
}

// SetConfig swaps tunables, e.g. after a hot reload.
func (c *Camera) SetConfig(cfg CameraConfig) {
	if c == nil {
		return
	}
	c.cfg = cfg
}

// Follow moves the follow point toward target. Close targets are snapped to
// exactly; otherwise the blend factor scales with distance so the camera
// catches up faster the farther the subject strays.
func (c *Camera) Follow(target cp.Vector, dt float64) {
	if c == nil {
		return
	}
	distance := target.Sub(c.FollowPoint).Length()
	if distance < c.cfg.SnapThreshold {
		c.FollowPoint = target
		return
	}
	smooth := c.cfg.MaxSmooth
	if distance <= c.cfg.MaxDistance && c.cfg.MaxDistance > 0 {
		smooth = common.Lerp(c.cfg.MinSmooth, c.cfg.MaxSmooth, distance/c.cfg.MaxDistance)
	}
	c.FollowPoint = c.FollowPoint.Add(target.Sub(c.FollowPoint).Mult(smooth * dt))
}

// PushShake appends a live impulse. The two sampling offsets are randomized
// per impulse so simultaneous shakes read decorrelated regions of the noise
// field.
func (c *Camera) PushShake(intensity, duration, start float64) {
	if c == nil {
		return
	}
	c.shakes = append(c.shakes, ShakeImpulse{
		Intensity: intensity,
		Duration:  duration,
		Start:     start,
		xOffset:   c.field.Offset(c.cfg.ShakeOffsetRange),
		yOffset:   c.field.Offset(c.cfg.ShakeOffsetRange),
	})
}

// ApplyShake recomputes the frame's total shake offset at simulation time
// now. Live impulse contributions sum; expired impulses contribute nothing
// and are purged.
func (c *Camera) ApplyShake(now float64) {
	if c == nil {
		return
	}
	c.offset = cp.Vector{}
	for i := range c.shakes {
		shake := &c.shakes[i]
		elapsed := now - shake.Start
		if elapsed >= shake.Duration {
			shake.Start = 0
			continue
		}
		remaining := 1 - elapsed/shake.Duration
		c.offset = c.offset.Add(c.sampleImpulse(shake, remaining))
	}

	live := c.shakes[:0]
	for _, shake := range c.shakes {
		if shake.Start > 0 {
			live = append(live, shake)
		}
	}
	c.shakes = live
}

// sampleImpulse walks a small circle through the noise field as the impulse
// decays, keeping the offset continuous with no direction jumps. Magnitude
// falls off linearly with remaining life.
func (c *Camera) sampleImpulse(shake *ShakeImpulse, remaining float64) cp.Vector {
	angle := remaining * 2 * math.Pi
	dx := math.Cos(angle) * c.cfg.ShakeCircleRadius
	dy := math.Sin(angle) * c.cfg.ShakeCircleRadius

	x := c.field.Sample(shake.xOffset.X+dx, shake.xOffset.Y+dy)
	y := c.field.Sample(shake.yOffset.X+dx, shake.yOffset.Y+dy)

	strength := shake.Intensity * remaining
	return cp.Vector{X: x * strength, Y: y * strength}
}

// ShakeOffset returns the current summed shake offset.
func (c *Camera) ShakeOffset() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.offset
}

// Shakes returns a copy of the tracked impulses.
func (c *Camera) Shakes() []ShakeImpulse {
	if c == nil {
		return nil
	}
	return append([]ShakeImpulse(nil), c.shakes...)
}

// LiveShakes returns the number of tracked impulses.
func (c *Camera) LiveShakes() int {
	if c == nil {
		return 0
	}
	return len(c.shakes)
}

// Position returns the rendered camera center: follow point plus shake.
func (c *Camera) Position() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.FollowPoint.Add(c.offset)
}
