// Package must provides constructors for the surface models that panic
// instead of returning an error. Use it where a nil Field is a programming
// error that should never reach production.
package must

import (
	"github.com/soypat/noisemodel"
)

// Cylinder returns a Cylinder sampling f. It panics if f is nil.
func Cylinder(f noisemodel.Field) *noisemodel.Cylinder {
	c, err := noisemodel.NewCylinder(f)
	check(err)
	return c
}

// Sphere returns a Sphere sampling f. It panics if f is nil.
func Sphere(f noisemodel.Field) *noisemodel.Sphere {
	s, err := noisemodel.NewSphere(f)
	check(err)
	return s
}

// Plane returns a Plane sampling f. It panics if f is nil.
func Plane(f noisemodel.Field) *noisemodel.Plane {
	p, err := noisemodel.NewPlane(f)
	check(err)
	return p
}

// Line returns a Line sampling f between (0,0,0) and (1,1,1) with
// parabolic attenuation. It panics if f is nil.
func Line(f noisemodel.Field) *noisemodel.Line {
	l, err := noisemodel.NewLine(f)
	check(err)
	return l
}

// LineFromParms returns a Line configured by parms. It panics if parms.Field is nil.
func LineFromParms(parms noisemodel.LineParms) *noisemodel.Line {
	l, err := noisemodel.NewLineFromParms(parms)
	check(err)
	return l
}

// Value returns v or panics if err is not nil. It is meant to wrap a
// model's Value method when the model is known to have a Field:
//  v := must.Value(cyl.Value(angle, height))
func Value(v float64, err error) float64 {
	check(err)
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
