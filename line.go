package noisemodel

import (
	"math"

	"github.com/soypat/noisemodel/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// AttenuationFunc returns the factor a Line multiplies its output by at
// position p along the segment.
type AttenuationFunc func(p float64) float64

// ParabolicAttenuation is 4p(1-p): zero at both ends and 1 at the midpoint.
// It is the default for Line.
func ParabolicAttenuation(p float64) float64 { return 4 * p * (1 - p) }

// LinearAttenuation is 1-p: the full value at the start fading to zero at the end.
func LinearAttenuation(p float64) float64 { return 1 - p }

// SmoothstepAttenuation is zero at both ends and 1 at the midpoint like
// ParabolicAttenuation but with zero slope at the ends. p is clamped to [0,1].
func SmoothstepAttenuation(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return 4 * smoothstep(p) * smoothstep(1-p)
}

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

// LineParms configures a Line.
type LineParms struct {
	Field Field
	// Segment end points. Position 0 maps to Start and 1 to End.
	Start, End r3.Vec
	// Attenuate enables damping of the output towards the segment ends.
	Attenuate bool
	// Attenuation is the damping curve. Nil selects ParabolicAttenuation.
	Attenuation AttenuationFunc
}

// Line samples a Field along a segment between two points.
//
// The zero value is a degenerate segment at the origin with attenuation
// disabled and no Field assigned.
type Line struct {
	fieldRef
	start, end  r3.Vec
	attenuate   bool
	attenuation AttenuationFunc
}

// NewLine returns a Line that samples f between (0,0,0) and (1,1,1)
// with parabolic attenuation enabled.
func NewLine(f Field) (*Line, error) {
	return NewLineFromParms(LineParms{
		Field:     f,
		End:       d3.Elem(1),
		Attenuate: true,
	})
}

// NewLineFromParms returns a Line configured by parms.
func NewLineFromParms(parms LineParms) (*Line, error) {
	l := &Line{
		start:       parms.Start,
		end:         parms.End,
		attenuate:   parms.Attenuate,
		attenuation: parms.Attenuation,
	}
	if err := l.SetField(parms.Field); err != nil {
		return nil, err
	}
	return l, nil
}

// Points returns the segment's start and end points.
func (l *Line) Points() (start, end r3.Vec) { return l.start, l.end }

// SetPoints sets the segment's start and end points.
func (l *Line) SetPoints(start, end r3.Vec) {
	l.start = start
	l.end = end
}

// Attenuate reports whether the output is damped towards the segment ends.
func (l *Line) Attenuate() bool { return l.attenuate }

// SetAttenuate enables or disables damping of the output.
func (l *Line) SetAttenuate(attenuate bool) { l.attenuate = attenuate }

// SetAttenuation replaces the damping curve. It does not enable attenuation.
func (l *Line) SetAttenuation(fn AttenuationFunc) error {
	if fn == nil {
		return ErrNilAttenuation
	}
	l.attenuation = fn
	return nil
}

// Point returns the point at position p along the segment.
// p outside [0,1] extrapolates past the end points.
func (l *Line) Point(p float64) r3.Vec { return d3.Lerp(l.start, l.end, p) }

// Value returns the Field's value at position p along the segment,
// multiplied by the attenuation curve at p if attenuation is enabled.
func (l *Line) Value(p float64) (float64, error) {
	v, err := l.sample(l.Point(p))
	if err != nil || !l.attenuate {
		return v, err
	}
	atten := l.attenuation
	if atten == nil {
		atten = ParabolicAttenuation
	}
	return atten(p) * v, nil
}

// Map uses uv.X as the position along the segment. uv.Y is ignored.
func (l *Line) Map(uv r2.Vec) r3.Vec { return l.Point(uv.X) }

// Evaluate is Value(uv.X).
func (l *Line) Evaluate(uv r2.Vec) (float64, error) { return l.Value(uv.X) }
