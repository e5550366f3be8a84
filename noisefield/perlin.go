package noisefield

import (
	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r3"
)

// PerlinParms configures a Perlin field.
type PerlinParms struct {
	// Alpha is the weight when the sum is formed, typically 2.
	// As it approaches 1 the function is noisier.
	Alpha float64
	// Beta is the harmonic scaling/spacing, typically 2.
	Beta float64
	// N is the number of octaves.
	N    int32
	Seed int64
	// Frequency scales input coordinates. Zero is treated as 1.
	Frequency float64
	// Offset is added to scaled coordinates.
	Offset r3.Vec
}

// Perlin is a Field backed by github.com/aquilax/go-perlin.
type Perlin struct {
	noise *perlin.Perlin
	xf    transform
}

// NewPerlin returns a Perlin field configured by parms. Zero Alpha, Beta or N
// take the values 2, 2 and 3.
func NewPerlin(parms PerlinParms) *Perlin {
	if parms.Alpha == 0 {
		parms.Alpha = 2
	}
	if parms.Beta == 0 {
		parms.Beta = 2
	}
	if parms.N == 0 {
		parms.N = 3
	}
	return &Perlin{
		noise: perlin.NewPerlin(parms.Alpha, parms.Beta, parms.N, parms.Seed),
		xf:    newTransform(parms.Frequency, parms.Offset),
	}
}

// Evaluate returns the Perlin noise value at p.
func (pn *Perlin) Evaluate(p r3.Vec) float64 {
	q := pn.xf.apply(p)
	return pn.noise.Noise3D(q.X, q.Y, q.Z)
}
