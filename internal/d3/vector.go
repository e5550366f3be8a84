package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector helpers shared by the surface models and their tests.

func Elem(sides float64) r3.Vec {
	return r3.Vec{
		X: sides,
		Y: sides,
		Z: sides,
	}
}

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Lerp returns the point a fraction t of the way from a to b.
// t outside [0,1] extrapolates along the same line.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// IsFinite reports whether all components of a are neither NaN nor infinite.
func IsFinite(a r3.Vec) bool {
	return !(math.IsNaN(a.X) || math.IsInf(a.X, 0) ||
		math.IsNaN(a.Y) || math.IsInf(a.Y, 0) ||
		math.IsNaN(a.Z) || math.IsInf(a.Z, 0))
}
