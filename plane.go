package noisemodel

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane samples a Field over the infinite y=0 plane.
type Plane struct {
	fieldRef
}

// NewPlane returns a Plane that samples f.
func NewPlane(f Field) (*Plane, error) {
	p := &Plane{}
	if err := p.SetField(f); err != nil {
		return nil, err
	}
	return p, nil
}

// Value returns the Field's value at (x, 0, z).
func (p *Plane) Value(x, z float64) (float64, error) {
	return p.sample(r3.Vec{X: x, Z: z})
}

// Map interprets uv as (x, z).
func (p *Plane) Map(uv r2.Vec) r3.Vec { return r3.Vec{X: uv.X, Z: uv.Y} }

// Evaluate is Value(uv.X, uv.Y).
func (p *Plane) Evaluate(uv r2.Vec) (float64, error) { return p.Value(uv.X, uv.Y) }
