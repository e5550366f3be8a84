package noisemodel

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNilField is returned when a nil Field is assigned to a model.
	ErrNilField = errors.New("nil Field argument")
	// ErrMissingField is returned when a model is sampled before a Field
	// has been assigned to it.
	ErrMissingField = errors.New("no Field assigned to model")
	// ErrNilAttenuation is returned when a nil AttenuationFunc is assigned to a Line.
	ErrNilAttenuation = errors.New("nil AttenuationFunc argument")
)

// Field is the interface to a 3d scalar noise field.
type Field interface {
	// Evaluate returns the value of the field at p. Implementations should
	// accept any finite coordinate and be a pure function of p.
	Evaluate(p r3.Vec) float64
}

// FieldFunc adapts an ordinary function of three coordinates to a Field.
type FieldFunc func(x, y, z float64) float64

// Evaluate calls f(p.X, p.Y, p.Z).
func (f FieldFunc) Evaluate(p r3.Vec) float64 { return f(p.X, p.Y, p.Z) }

// Surface is implemented by every model. It maps a point in the
// model's two natural parameters to 3d space and samples the Field there.
// Models with a single parameter read it from uv.X.
type Surface interface {
	// Map returns the Cartesian point for surface parameters uv.
	Map(uv r2.Vec) r3.Vec
	// Evaluate returns the Field's value at Map(uv).
	Evaluate(uv r2.Vec) (float64, error)
	Field() Field
	SetField(Field) error
}

var (
	_ Surface = (*Line)(nil)
	_ Surface = (*Plane)(nil)
	_ Surface = (*Sphere)(nil)
	_ Surface = (*Cylinder)(nil)
)

// fieldRef holds the replaceable, non-owning Field reference every model carries.
type fieldRef struct {
	field Field
}

// Field returns the Field used to generate output values, or nil if none was assigned.
func (r *fieldRef) Field() Field { return r.field }

// SetField replaces the Field used to generate output values. f must remain
// valid for as long as the model samples it. A nil f is rejected with
// ErrNilField and the previously assigned Field is kept.
//
// SetField does no locking: it must not be called while another goroutine
// is sampling the same model.
func (r *fieldRef) SetField(f Field) error {
	if f == nil {
		return ErrNilField
	}
	r.field = f
	return nil
}

func (r *fieldRef) sample(p r3.Vec) (float64, error) {
	if r.field == nil {
		return 0, ErrMissingField
	}
	return r.field.Evaluate(p), nil
}
