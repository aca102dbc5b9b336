package transmission

import "math"

var inf = math.Inf(1)

const tol = 1e-9

func testCoupledConfig() CoupledConfig {
	return CoupledConfig{
		ActuatorReduction: [2]float64{10, -20},
		JointReduction:    [2]float64{1.5, 0.8},
		JointOffset:       [2]float64{0.3, -0.1},
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// samples covers zero, mixed signs and large magnitudes.
var samples = [][2]float64{
	{0, 0},
	{1, 0},
	{0, 1},
	{1.5, -2.25},
	{-300, 42},
	{1e5, 1e-3},
}
