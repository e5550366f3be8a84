package noisemodel_test

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

// recorder is a Field that remembers the last point it was evaluated at.
type recorder struct {
	last  r3.Vec
	calls int
	value float64
}

func (r *recorder) Evaluate(p r3.Vec) float64 {
	r.last = p
	r.calls++
	return r.value
}

// sumField returns a value that differs for nearly every distinct point.
func sumField(p r3.Vec) float64 { return p.X + 3*p.Y + 7*p.Z }
