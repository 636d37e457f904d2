package pairs

import (
	"math"
	"testing"

	"github.com/cognicore/lexsim/pkg/lexsim/pairwise"
)

func buildMatrix(labels []string) *pairwise.Matrix {
	m := pairwise.New(labels)
	n := m.Size()
	v := 0.1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, v)
			v += 0.1
		}
	}
	return m
}

func TestExtractCount(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7} {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		records := Extract(buildMatrix(labels))
		want := n * (n - 1) / 2
		if len(records) != want {
			t.Errorf("n=%d: %d records, want %d", n, len(records), want)
		}
	}
}

func TestExtractNoDuplicatesNoSelfPairs(t *testing.T) {
	records := Extract(buildMatrix([]string{"a", "b", "c", "d"}))

	seen := make(map[[2]string]bool)
	for _, r := range records {
		if r.A == r.B {
			t.Errorf("self pair emitted: %v", r)
		}
		key := [2]string{r.A, r.B}
		rev := [2]string{r.B, r.A}
		if seen[key] || seen[rev] {
			t.Errorf("unordered pair emitted twice: %v", r)
		}
		seen[key] = true
	}
}

func TestExtractOrderRowMajor(t *testing.T) {
	records := Extract(buildMatrix([]string{"a", "b", "c"}))
	want := []Record{
		{A: "a", B: "b", Value: 0.1},
		{A: "a", B: "c", Value: 0.2},
		{A: "b", B: "c", Value: 0.3},
	}
	for i, r := range records {
		if r.A != want[i].A || r.B != want[i].B || math.Abs(r.Value-want[i].Value) > 1e-12 {
			t.Errorf("record %d = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestMeanMedian(t *testing.T) {
	records := []Record{
		{Value: 1}, {Value: 2}, {Value: 6},
	}
	if got := Mean(records); math.Abs(got-3) > 1e-12 {
		t.Errorf("Mean = %v, want 3", got)
	}
	if got := Median(records); got != 2 {
		t.Errorf("Median = %v, want 2", got)
	}

	even := append(records, Record{Value: 4})
	if got := Median(even); math.Abs(got-3) > 1e-12 {
		t.Errorf("Median(even) = %v, want 3", got)
	}

	if Mean(nil) != 0 || Median(nil) != 0 {
		t.Error("empty input should yield 0")
	}
}

func TestTopK(t *testing.T) {
	records := []Record{
		{A: "a", B: "b", Value: 0.2},
		{A: "a", B: "c", Value: 0.9},
		{A: "b", B: "c", Value: 0.5},
	}
	top := TopK(records, 2)
	if len(top) != 2 || top[0].Value != 0.9 || top[1].Value != 0.5 {
		t.Errorf("TopK = %+v", top)
	}
	if got := TopK(records, 10); len(got) != 3 {
		t.Errorf("TopK over length = %d records", len(got))
	}
	if TopK(records, 0) != nil {
		t.Error("TopK(0) should be nil")
	}
}
