package metric

import "math"

// Euclidean is straight-line distance between count vectors. It is not
// normalized for vector magnitude: a longer document yields systematically
// larger distances to every other unit. That is a documented property of the
// metric, not a defect; use Cosine when length must not matter.
type Euclidean struct{}

// Name returns "euclidean".
func (Euclidean) Name() string { return "euclidean" }

// Pair returns sqrt(sum((a_i - b_i)^2)) over the full shared feature space.
func (Euclidean) Pair(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// Self returns 0: a vector is at zero distance from itself.
func (Euclidean) Self([]float64) float64 { return 0 }
