package dfm

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
)

func sampleUnits() []UnitCounts {
	return []UnitCounts{
		{ID: "times/politics", Counts: map[string]int64{"election": 4, "budget": 2}},
		{ID: "times/economy", Counts: map[string]int64{"budget": 5, "tariff": 3}},
		{ID: "herald/politics", Counts: map[string]int64{"election": 1, "strike": 6}},
		{ID: "herald/economy", Counts: map[string]int64{"tariff": 2, "strike": 1}},
	}
}

func TestBuildBasic(t *testing.T) {
	m, err := Build(sampleUnits())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if m.NumUnits() != 4 {
		t.Errorf("NumUnits = %d, want 4", m.NumUnits())
	}
	if m.NumTerms() != 4 {
		t.Errorf("NumTerms = %d, want 4", m.NumTerms())
	}
	if got := m.Count("times/politics", "election"); got != 4 {
		t.Errorf("Count(times/politics, election) = %d, want 4", got)
	}
	if got := m.Count("times/politics", "strike"); got != 0 {
		t.Errorf("Count(times/politics, strike) = %d, want 0", got)
	}
	if got := m.Count("unknown", "election"); got != 0 {
		t.Errorf("Count on unknown unit = %d, want 0", got)
	}
}

func TestBuildDeterministicIndices(t *testing.T) {
	// Terms within a unit are interned in lexicographic order, so repeated
	// builds from the same input assign identical indices.
	for trial := 0; trial < 10; trial++ {
		m, err := Build(sampleUnits())
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"budget", "election", "tariff", "strike"}
		for i, term := range want {
			if got, _ := m.Space().Term(i); got != term {
				t.Fatalf("trial %d: index %d = %q, want %q", trial, i, got, term)
			}
		}
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	if _, err := Build(nil); !errors.Is(err, internalerr.ErrEmptyCorpus) {
		t.Errorf("Build(nil) error = %v, want ErrEmptyCorpus", err)
	}
}

func TestBuildSumsDuplicateIDs(t *testing.T) {
	m, err := Build([]UnitCounts{
		{ID: "times", Counts: map[string]int64{"budget": 2}},
		{ID: "times", Counts: map[string]int64{"budget": 3, "strike": 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.NumUnits() != 1 {
		t.Fatalf("NumUnits = %d, want 1", m.NumUnits())
	}
	if got := m.Count("times", "budget"); got != 5 {
		t.Errorf("Count(times, budget) = %d, want 5", got)
	}
}

func TestTotals(t *testing.T) {
	m, err := Build(sampleUnits())
	if err != nil {
		t.Fatal(err)
	}
	if got := m.RowTotal("times/economy"); got != 8 {
		t.Errorf("RowTotal(times/economy) = %d, want 8", got)
	}
	if got := m.ColumnTotal("strike"); got != 7 {
		t.Errorf("ColumnTotal(strike) = %d, want 7", got)
	}
	if got := m.ColumnTotal("unseen"); got != 0 {
		t.Errorf("ColumnTotal(unseen) = %d, want 0", got)
	}
}

func TestRowDenseCopy(t *testing.T) {
	m, err := Build(sampleUnits())
	if err != nil {
		t.Fatal(err)
	}
	row := m.Row(0)
	if len(row) != m.NumTerms() {
		t.Fatalf("Row length = %d, want %d", len(row), m.NumTerms())
	}
	row[0] = 99
	if got := m.Row(0)[0]; got == 99 {
		t.Error("Row must return a copy, matrix was mutated")
	}
}

func TestGroupBy(t *testing.T) {
	m, err := Build(sampleUnits())
	if err != nil {
		t.Fatal(err)
	}

	grouped, err := m.GroupBy(func(id string) string {
		return strings.SplitN(id, "/", 2)[0]
	})
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}

	ids := grouped.UnitIDs()
	if len(ids) != 2 || ids[0] != "herald" || ids[1] != "times" {
		t.Fatalf("group IDs = %v, want [herald times]", ids)
	}
	if got := grouped.Count("times", "budget"); got != 7 {
		t.Errorf("grouped Count(times, budget) = %d, want 7", got)
	}
	if got := grouped.Count("herald", "strike"); got != 7 {
		t.Errorf("grouped Count(herald, strike) = %d, want 7", got)
	}

	// Original per-document DFM stays intact.
	if m.NumUnits() != 4 {
		t.Errorf("original DFM mutated, NumUnits = %d", m.NumUnits())
	}
}

func TestGroupBySkipsEmptyKeys(t *testing.T) {
	m, err := Build(sampleUnits())
	if err != nil {
		t.Fatal(err)
	}
	grouped, err := m.GroupBy(func(id string) string {
		if strings.HasPrefix(id, "herald") {
			return ""
		}
		return "times"
	})
	if err != nil {
		t.Fatal(err)
	}
	if grouped.NumUnits() != 1 {
		t.Errorf("NumUnits = %d, want 1", grouped.NumUnits())
	}
}

func TestGroupByNoPartitions(t *testing.T) {
	m, err := Build(sampleUnits())
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.GroupBy(func(string) string { return "" })
	if !errors.Is(err, internalerr.ErrInvalidGrouping) {
		t.Errorf("GroupBy error = %v, want ErrInvalidGrouping", err)
	}
}

func TestTrimByTermFreq(t *testing.T) {
	m, err := Build(sampleUnits())
	if err != nil {
		t.Fatal(err)
	}

	// Corpus totals: budget=7, election=5, tariff=5, strike=7.
	trimmed, err := m.Trim(6, 0)
	if err != nil {
		t.Fatal(err)
	}
	if trimmed.NumTerms() != 2 {
		t.Fatalf("NumTerms after trim = %d, want 2", trimmed.NumTerms())
	}
	if _, ok := trimmed.Space().Index("election"); ok {
		t.Error("election should be trimmed")
	}
	if got := trimmed.Count("times/politics", "budget"); got != 2 {
		t.Errorf("Count(times/politics, budget) = %d, want 2", got)
	}

	// Trimming never drops units, and the source is untouched.
	if trimmed.NumUnits() != 4 {
		t.Errorf("NumUnits after trim = %d, want 4", trimmed.NumUnits())
	}
	if m.NumTerms() != 4 {
		t.Errorf("source DFM mutated, NumTerms = %d", m.NumTerms())
	}
}

func TestTrimByDocFreq(t *testing.T) {
	m, err := Build([]UnitCounts{
		{ID: "a", Counts: map[string]int64{"common": 1, "rare": 10}},
		{ID: "b", Counts: map[string]int64{"common": 1}},
		{ID: "c", Counts: map[string]int64{"common": 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	trimmed, err := m.Trim(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if trimmed.NumTerms() != 1 {
		t.Fatalf("NumTerms = %d, want 1", trimmed.NumTerms())
	}
	if _, ok := trimmed.Space().Index("rare"); ok {
		t.Error("rare (df=1) should be trimmed despite high count")
	}
}

func TestTrimLeavesZeroRows(t *testing.T) {
	m, err := Build([]UnitCounts{
		{ID: "a", Counts: map[string]int64{"shared": 3}},
		{ID: "b", Counts: map[string]int64{"solo": 2}},
	})
	if err != nil {
		t.Fatal(err)
	}

	trimmed, err := m.Trim(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if trimmed.NumUnits() != 2 {
		t.Fatalf("NumUnits = %d, want 2", trimmed.NumUnits())
	}
	if got := trimmed.RowTotal("b"); got != 0 {
		t.Errorf("RowTotal(b) = %d, want 0 (all-zero row is legal)", got)
	}
}
