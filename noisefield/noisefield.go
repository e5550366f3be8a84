// Package noisefield adapts third-party noise generators and a few simple
// reference fields to the noisemodel.Field interface.
package noisefield

import (
	"github.com/soypat/noisemodel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Constant returns a Field that evaluates to v everywhere.
func Constant(v float64) noisemodel.Field { return constant(v) }

type constant float64

func (c constant) Evaluate(r3.Vec) float64 { return float64(c) }

// transform maps a model coordinate into generator space: p*frequency + offset.
type transform struct {
	frequency float64
	offset    r3.Vec
}

func newTransform(frequency float64, offset r3.Vec) transform {
	if frequency == 0 {
		frequency = 1
	}
	return transform{frequency: frequency, offset: offset}
}

func (t transform) apply(p r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(t.frequency, p), t.offset)
}
