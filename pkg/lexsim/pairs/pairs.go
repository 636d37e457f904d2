package pairs

import (
	"sort"

	"github.com/cognicore/lexsim/pkg/lexsim/pairwise"
)

// Record is one unordered unit pair and its metric value. A and B are
// distinct and each unordered pair appears exactly once.
type Record struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Value float64 `json:"value"`
}

// Extract flattens the strict upper triangle of a symmetric matrix into
// N·(N−1)/2 records, row-major by (i, j) with i < j. The order is
// deterministic, the diagonal is excluded, and no reversed duplicates are
// emitted, so the result is a set of independent observations ready for an
// external statistical collaborator.
func Extract(m *pairwise.Matrix) []Record {
	n := m.Size()
	out := make([]Record, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Record{
				A:     m.Label(i),
				B:     m.Label(j),
				Value: m.At(i, j),
			})
		}
	}
	return out
}

// Mean returns the arithmetic mean of the record values, 0 for no records.
func Mean(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Value
	}
	return sum / float64(len(records))
}

// Median returns the median of the record values, 0 for no records.
func Median(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}

// TopK returns the k records with the highest values, ties broken by
// extraction order. Useful for "closest pairs" reporting on similarity
// matrices; pass the negated matrix or sort ascending externally for
// distances.
func TopK(records []Record, k int) []Record {
	if k <= 0 {
		return nil
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}
