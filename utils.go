package noisemodel

import "math"

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
