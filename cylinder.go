package noisemodel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder samples a Field over the surface of a cylinder of radius 1
// and infinite height, centered at the origin and oriented along the y axis.
// Angles 0 and 360 degrees map to the same point, so textures generated
// over one full turn wrap without a seam.
//
// The zero value is a Cylinder with no Field assigned.
type Cylinder struct {
	fieldRef
}

// NewCylinder returns a Cylinder that samples f.
func NewCylinder(f Field) (*Cylinder, error) {
	c := &Cylinder{}
	if err := c.SetField(f); err != nil {
		return nil, err
	}
	return c, nil
}

// CylinderPoint returns the point on the unit cylinder at angle (degrees)
// around the y axis and height along it.
func CylinderPoint(angle, height float64) r3.Vec {
	s, c := math.Sincos(d2r(angle))
	return r3.Vec{X: c, Y: height, Z: s}
}

// Value returns the Field's value at the (angle, height) point on the
// cylinder's surface. angle is in degrees.
func (c *Cylinder) Value(angle, height float64) (float64, error) {
	return c.sample(CylinderPoint(angle, height))
}

// Map interprets uv as (angle, height).
func (c *Cylinder) Map(uv r2.Vec) r3.Vec { return CylinderPoint(uv.X, uv.Y) }

// Evaluate is Value(uv.X, uv.Y).
func (c *Cylinder) Evaluate(uv r2.Vec) (float64, error) { return c.Value(uv.X, uv.Y) }
