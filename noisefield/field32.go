package noisefield

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/noisemodel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field32 is a scalar field evaluated in single precision, the form used
// by GPU-oriented generators.
type Field32 interface {
	Evaluate(p ms3.Vec) float32
}

// FromField32 returns a Field that converts coordinates to float32,
// evaluates f and widens the result.
func FromField32(f Field32) noisemodel.Field {
	if f == nil {
		return nil
	}
	return field32{f: f}
}

type field32 struct {
	f Field32
}

func (f field32) Evaluate(p r3.Vec) float64 {
	return float64(f.f.Evaluate(ms3.Vec{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}))
}

// Spheres32 is a field of concentric shells centered on the origin.
// It is 1 on every shell of integer radius/Frequency and falls linearly to -1
// halfway between shells. The value only depends on distance from the origin
// so any model point of a given radius samples the same value.
type Spheres32 struct {
	// Frequency is the number of shells per unit distance. Zero is treated as 1.
	Frequency float32
}

// Evaluate returns the shell value at p.
func (s Spheres32) Evaluate(p ms3.Vec) float32 {
	freq := s.Frequency
	if freq == 0 {
		freq = 1
	}
	dist := ms3.Norm(p) * freq
	inner := dist - math32.Floor(dist)
	nearest := math32.Min(inner, 1-inner)
	return 1 - 4*nearest
}
