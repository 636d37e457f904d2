package dfm

import (
	"fmt"
	"sort"

	"github.com/cognicore/lexsim/pkg/lexsim/featurespace"
	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
)

// UnitCounts is the raw input for one matrix row: a unit identifier and a
// sparse term → count mapping produced by an external preprocessing stage.
// The engine is agnostic to the tokenization policy behind the counts.
type UnitCounts struct {
	ID     string
	Counts map[string]int64
}

// DFM is a document-feature matrix: a set of units sharing one feature
// space, each unit a sparse row of non-negative term counts. Row order is
// stable and addressable by unit ID. A DFM is never mutated after Build;
// GroupBy and Trim return new matrices.
type DFM struct {
	space    *featurespace.FeatureSpace
	ids      []string
	rows     []map[int]int64 // term index → count, zero counts omitted
	rowIndex map[string]int
}

// Build materializes a DFM from per-unit counts. All terms are interned
// first: units in input order, terms within a unit in lexicographic order so
// index assignment is deterministic regardless of map iteration. Units with
// duplicate IDs have their counts summed.
func Build(units []UnitCounts) (*DFM, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("build: %w", internalerr.ErrEmptyCorpus)
	}

	space := featurespace.New()
	for _, u := range units {
		for _, term := range sortedTerms(u.Counts) {
			if _, err := space.Intern(term); err != nil {
				return nil, fmt.Errorf("build unit %q: %w", u.ID, err)
			}
		}
	}

	m := &DFM{
		space:    space,
		rowIndex: make(map[string]int),
	}
	for _, u := range units {
		row, ok := m.rowIndex[u.ID]
		if !ok {
			row = len(m.ids)
			m.rowIndex[u.ID] = row
			m.ids = append(m.ids, u.ID)
			m.rows = append(m.rows, make(map[int]int64, len(u.Counts)))
		}
		for term, count := range u.Counts {
			if count <= 0 {
				continue
			}
			idx, _ := space.Index(term)
			m.rows[row][idx] += count
		}
	}

	return m, nil
}

// NumUnits returns the number of rows.
func (m *DFM) NumUnits() int {
	return len(m.ids)
}

// NumTerms returns the number of columns.
func (m *DFM) NumTerms() int {
	return m.space.Size()
}

// UnitIDs returns the unit identifiers in row order.
func (m *DFM) UnitIDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// Space returns the shared feature space.
func (m *DFM) Space() *featurespace.FeatureSpace {
	return m.space
}

// Count returns the count of term in the unit's row, or 0 when either is
// unknown.
func (m *DFM) Count(unitID, term string) int64 {
	row, ok := m.rowIndex[unitID]
	if !ok {
		return 0
	}
	idx, ok := m.space.Index(term)
	if !ok {
		return 0
	}
	return m.rows[row][idx]
}

// CountAt returns the count at (row, col), or 0 when out of range.
func (m *DFM) CountAt(row, col int) int64 {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.space.Size() {
		return 0
	}
	return m.rows[row][col]
}

// Row returns a dense copy of the unit's count vector at the given row
// index, padded with zeros across the full feature space.
func (m *DFM) Row(row int) []float64 {
	out := make([]float64, m.space.Size())
	if row < 0 || row >= len(m.rows) {
		return out
	}
	for idx, count := range m.rows[row] {
		out[idx] = float64(count)
	}
	return out
}

// RowTotal returns the total token count of a unit (its document length), a
// diagnostic for length-sensitive metrics.
func (m *DFM) RowTotal(unitID string) int64 {
	row, ok := m.rowIndex[unitID]
	if !ok {
		return 0
	}
	var total int64
	for _, count := range m.rows[row] {
		total += count
	}
	return total
}

// ColumnTotal returns the corpus-wide count of a term across all units.
func (m *DFM) ColumnTotal(term string) int64 {
	idx, ok := m.space.Index(term)
	if !ok {
		return 0
	}
	var total int64
	for _, row := range m.rows {
		total += row[idx]
	}
	return total
}

func sortedTerms(counts map[string]int64) []string {
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
