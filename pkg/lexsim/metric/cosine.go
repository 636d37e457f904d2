package metric

import "math"

// Cosine is angular similarity between count vectors, in [0,1] for
// non-negative counts. It normalizes for magnitude, so two documents with
// proportionally similar term distributions score high regardless of length.
//
// Zero-norm policy: when either vector has zero norm the similarity is 0,
// never NaN. All-zero rows are legal after trimming and must not poison a
// batch computation with division-by-zero failures.
type Cosine struct{}

// Name returns "cosine".
func (Cosine) Name() string { return "cosine" }

// Pair returns a·b / (‖a‖·‖b‖), or 0 when either norm is zero.
func (Cosine) Pair(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Self returns 1 for a non-zero vector and 0 for an all-zero vector.
func (Cosine) Self(v []float64) float64 {
	for _, x := range v {
		if x != 0 {
			return 1
		}
	}
	return 0
}
