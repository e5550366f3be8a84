package noisemodel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere samples a Field over the surface of a sphere of radius 1
// centered at the origin. Points are given as latitude and longitude
// in degrees; latitude +90 is the +y pole.
//
// Longitude wraps every 360 degrees. Latitude is not clamped, values past
// a pole continue over it along the same meridian.
type Sphere struct {
	fieldRef
}

// NewSphere returns a Sphere that samples f.
func NewSphere(f Field) (*Sphere, error) {
	s := &Sphere{}
	if err := s.SetField(f); err != nil {
		return nil, err
	}
	return s, nil
}

// SpherePoint converts latitude and longitude in degrees to a point on the unit sphere.
func SpherePoint(lat, lon float64) r3.Vec {
	slat, clat := math.Sincos(d2r(lat))
	slon, clon := math.Sincos(d2r(lon))
	return r3.Vec{X: clat * clon, Y: slat, Z: clat * slon}
}

// Value returns the Field's value at (lat, lon) on the sphere's surface.
func (s *Sphere) Value(lat, lon float64) (float64, error) {
	return s.sample(SpherePoint(lat, lon))
}

// Map interprets uv as (latitude, longitude).
func (s *Sphere) Map(uv r2.Vec) r3.Vec { return SpherePoint(uv.X, uv.Y) }

// Evaluate is Value(uv.X, uv.Y).
func (s *Sphere) Evaluate(uv r2.Vec) (float64, error) { return s.Value(uv.X, uv.Y) }
