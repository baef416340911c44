package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hypernova/noise"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		SnapThreshold:     10,
		MaxDistance:       100,
		MinSmooth:         0.5,
		MaxSmooth:         1.0,
		ShakeCircleRadius: 5,
		ShakeOffsetRange:  1000,
	}
}

func TestFollowSnapsWhenClose(t *testing.T) {
	c := NewCamera(noise.New(1), testCameraConfig())

	target := cp.Vector{X: 6, Y: 3}
	c.Follow(target, 1.0/60)
	if c.FollowPoint != target {
		t.Fatalf("FollowPoint = %v, want snap to %v", c.FollowPoint, target)
	}
}

func TestFollowBlendsWithDistance(t *testing.T) {
	c := NewCamera(noise.New(1), testCameraConfig())

	c.Follow(cp.Vector{X: 50}, 0.1)

	// at half of MaxDistance the smoothing lerps to 0.75, so the camera
	// covers 50 * 0.75 * dt this tick
	want := 3.75
	if math.Abs(c.FollowPoint.X-want) > 1e-9 || c.FollowPoint.Y != 0 {
		t.Fatalf("FollowPoint = %v, want {%v 0}", c.FollowPoint, want)
	}
}

func TestFollowCapsSmoothingBeyondMaxDistance(t *testing.T) {
	c := NewCamera(noise.New(1), testCameraConfig())

	c.Follow(cp.Vector{X: 200}, 0.1)

	want := 200 * 1.0 * 0.1
	if math.Abs(c.FollowPoint.X-want) > 1e-9 {
		t.Fatalf("FollowPoint.X = %v, want %v", c.FollowPoint.X, want)
	}
}

func TestShakeExpiresAndPurges(t *testing.T) {
	c := NewCamera(noise.New(1), testCameraConfig())

	c.PushShake(10, 0.5, 1.0)
	if c.LiveShakes() != 1 {
		t.Fatalf("LiveShakes = %d, want 1", c.LiveShakes())
	}

	c.ApplyShake(1.25)
	if c.ShakeOffset() == (cp.Vector{}) {
		t.Fatal("a live impulse should perturb the camera")
	}
	if c.LiveShakes() != 1 {
		t.Fatalf("mid-life impulse was purged, LiveShakes = %d", c.LiveShakes())
	}

	c.ApplyShake(2.0)
	if got := c.ShakeOffset(); got != (cp.Vector{}) {
		t.Fatalf("expired impulse still contributes %v", got)
	}
	if c.LiveShakes() != 0 {
		t.Fatalf("expired impulse should be purged, LiveShakes = %d", c.LiveShakes())
	}
}

func TestShakeContributionsSum(t *testing.T) {
	const seed = 99
	const now = 1.5

	both := NewCamera(noise.New(seed), testCameraConfig())
	both.PushShake(10, 1.0, 1.0)
	both.PushShake(4, 2.0, 1.0)
	both.ApplyShake(now)
	total := both.ShakeOffset()

	// The same seed replays the same offset draws, so each camera below
	// reproduces one of the two impulses in isolation.
	first := NewCamera(noise.New(seed), testCameraConfig())
	first.PushShake(10, 1.0, 1.0)
	first.ApplyShake(now)

	second := NewCamera(noise.New(seed), testCameraConfig())
	second.PushShake(10, 0.1, 0.01) // stand-in for the first impulse, expired by now
	second.PushShake(4, 2.0, 1.0)
	second.ApplyShake(now)

	want := first.ShakeOffset().Add(second.ShakeOffset())
	if math.Abs(total.X-want.X) > 1e-12 || math.Abs(total.Y-want.Y) > 1e-12 {
		t.Fatalf("summed offset = %v, want %v", total, want)
	}
	if second.ShakeOffset() == (cp.Vector{}) {
		t.Fatal("second impulse should contribute on its own")
	}
}

func TestPositionIncludesShakeOffset(t *testing.T) {
	c := NewCamera(noise.New(7), testCameraConfig())
	c.FollowPoint = cp.Vector{X: 100, Y: 50}

	c.PushShake(10, 1.0, 1.0)
	c.ApplyShake(1.5)

	want := c.FollowPoint.Add(c.ShakeOffset())
	if c.Position() != want {
		t.Fatalf("Position = %v, want %v", c.Position(), want)
	}
}
