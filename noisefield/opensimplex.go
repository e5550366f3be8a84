package noisefield

import (
	"github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r3"
)

// OpenSimplexParms configures an OpenSimplex field.
type OpenSimplexParms struct {
	Seed int64
	// Frequency scales input coordinates. Zero is treated as 1.
	Frequency float64
	// Offset is added to scaled coordinates.
	Offset r3.Vec
	// Normalized selects output in [0,1) instead of [-1,1).
	Normalized bool
}

// OpenSimplex is a Field backed by github.com/ojrac/opensimplex-go.
type OpenSimplex struct {
	noise opensimplex.Noise
	xf    transform
}

// NewOpenSimplex returns an OpenSimplex field configured by parms.
func NewOpenSimplex(parms OpenSimplexParms) *OpenSimplex {
	var n opensimplex.Noise
	if parms.Normalized {
		n = opensimplex.NewNormalized(parms.Seed)
	} else {
		n = opensimplex.New(parms.Seed)
	}
	return &OpenSimplex{
		noise: n,
		xf:    newTransform(parms.Frequency, parms.Offset),
	}
}

// Evaluate returns the OpenSimplex noise value at p.
func (sn *OpenSimplex) Evaluate(p r3.Vec) float64 {
	q := sn.xf.apply(p)
	return sn.noise.Eval3(q.X, q.Y, q.Z)
}
