package obj

import (
	"math"
	"testing"
)

func TestClockAdvances(t *testing.T) {
	c := NewClock(1.0 / 60)
	if c.Now() != 0 {
		t.Fatalf("new clock Now = %v, want 0", c.Now())
	}
	for i := 0; i < 60; i++ {
		c.Advance()
	}
	if math.Abs(c.Now()-1.0) > 1e-9 {
		t.Fatalf("Now after 60 ticks = %v, want 1", c.Now())
	}
	if c.Dt() != 1.0/60 {
		t.Fatalf("Dt = %v, want 1/60", c.Dt())
	}
}
