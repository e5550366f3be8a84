package noisemodel_test

import (
	"testing"

	"github.com/soypat/noisemodel"
	"github.com/soypat/noisemodel/internal/d3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSpherePoint(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 15 {
		for lon := -180.0; lon <= 180; lon += 20 {
			p := noisemodel.SpherePoint(lat, lon)
			if n := r3.Norm(p); !scalar.EqualWithinAbs(n, 1, 1e-12) {
				t.Errorf("SpherePoint(%g,%g) norm %g. want 1", lat, lon, n)
			}
		}
	}
	for _, test := range []struct {
		lat, lon float64
		want     r3.Vec
	}{
		{0, 0, r3.Vec{X: 1}},
		{0, 90, r3.Vec{Z: 1}},
		{0, 180, r3.Vec{X: -1}},
		{90, 0, r3.Vec{Y: 1}},
		{-90, 0, r3.Vec{Y: -1}},
	} {
		got := noisemodel.SpherePoint(test.lat, test.lon)
		if !d3.EqualWithin(got, test.want, 1e-12) {
			t.Errorf("SpherePoint(%g,%g) got %v. want %v", test.lat, test.lon, got, test.want)
		}
	}
}

func TestSphereContinuity(t *testing.T) {
	s, _ := noisemodel.NewSphere(noisemodel.FieldFunc(func(x, y, z float64) float64 {
		return sumField(r3.Vec{X: x, Y: y, Z: z})
	}))
	for lat := -80.0; lat <= 80; lat += 20 {
		a, _ := s.Value(lat, -180)
		b, _ := s.Value(lat, 180)
		if !scalar.EqualWithinAbs(a, b, 1e-9) {
			t.Errorf("longitude seam at lat %g: %g != %g", lat, a, b)
		}
	}
	// All longitudes meet at the poles.
	for _, pole := range []float64{-90, 90} {
		ref, _ := s.Value(pole, 0)
		for lon := -180.0; lon <= 180; lon += 45 {
			v, _ := s.Value(pole, lon)
			if !scalar.EqualWithinAbs(v, ref, 1e-9) {
				t.Errorf("pole %g lon %g: %g != %g", pole, lon, v, ref)
			}
		}
	}
}

func TestSphereDelegation(t *testing.T) {
	rec := &recorder{value: -1}
	s, _ := noisemodel.NewSphere(rec)
	got, err := s.Value(30, 60)
	if err != nil {
		t.Fatal(err)
	}
	if got != -1 {
		t.Errorf("got %g. want -1", got)
	}
	if want := noisemodel.SpherePoint(30, 60); rec.last != want {
		t.Errorf("sampled %v. want %v", rec.last, want)
	}
}
