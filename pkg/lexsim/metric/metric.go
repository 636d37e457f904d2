package metric

// Metric computes one pairwise value between two equal-length dense count
// vectors. Pair is called once per unordered pair; Self supplies the
// diagonal value, which depends on metric semantics (0 for distances, 1 for
// normalized similarities on a non-zero vector).
type Metric interface {
	Name() string
	Pair(a, b []float64) float64
	Self(v []float64) float64
}
