package dfm

import (
	"github.com/cognicore/lexsim/pkg/lexsim/featurespace"
)

// Trim returns a new DFM without the terms whose corpus-wide count is below
// minTermFreq or whose document frequency (units with a non-zero count) is
// below minDocFreq. The surviving terms get a fresh feature space in their
// original relative order. Units are never dropped: a row left all-zero by
// trimming stays in the matrix, and downstream metrics must handle it.
func (m *DFM) Trim(minTermFreq, minDocFreq int64) (*DFM, error) {
	numTerms := m.space.Size()
	termFreq := make([]int64, numTerms)
	docFreq := make([]int64, numTerms)
	for _, row := range m.rows {
		for idx, count := range row {
			termFreq[idx] += count
			docFreq[idx]++
		}
	}

	space := featurespace.New()
	remap := make(map[int]int, numTerms)
	for idx := 0; idx < numTerms; idx++ {
		if termFreq[idx] < minTermFreq || docFreq[idx] < minDocFreq {
			continue
		}
		term, _ := m.space.Term(idx)
		newIdx, err := space.Intern(term)
		if err != nil {
			return nil, err
		}
		remap[idx] = newIdx
	}

	out := &DFM{
		space:    space,
		ids:      make([]string, len(m.ids)),
		rows:     make([]map[int]int64, len(m.rows)),
		rowIndex: make(map[string]int, len(m.ids)),
	}
	copy(out.ids, m.ids)
	for row := range m.rows {
		kept := make(map[int]int64)
		for idx, count := range m.rows[row] {
			if newIdx, ok := remap[idx]; ok {
				kept[newIdx] = count
			}
		}
		out.rows[row] = kept
		out.rowIndex[m.ids[row]] = row
	}

	return out, nil
}
