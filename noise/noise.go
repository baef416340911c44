// Package noise supplies the coherent 2D noise and random offsets consumed by
// the camera shake path.
package noise

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/ojrac/opensimplex-go"
)

// Field samples a fixed simplex noise field and draws uniform random offsets.
// Not safe for concurrent use; the game tick is single-threaded.
type Field struct {
	noise opensimplex.Noise
	rng   *rand.Rand
}

// New creates a Field seeded deterministically. The same seed yields the same
// noise surface and offset sequence.
func New(seed int64) *Field {
	return &Field{
		noise: opensimplex.New(seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Sample returns a smoothly varying value in roughly [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	if f == nil {
		return 0
	}
	return f.noise.Eval2(x, y)
}

// Offset returns a uniform random vector with each axis in [-max, max).
// Shake impulses use wide offsets so overlapping impulses sample
// decorrelated regions of the same field.
func (f *Field) Offset(max float64) cp.Vector {
	if f == nil {
		return cp.Vector{}
	}
	return cp.Vector{
		X: (f.rng.Float64()*2 - 1) * max,
		Y: (f.rng.Float64()*2 - 1) * max,
	}
}
