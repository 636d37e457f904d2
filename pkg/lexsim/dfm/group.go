package dfm

import (
	"fmt"
	"sort"

	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
)

// GroupBy partitions units by the caller's key function and sums the count
// vectors of each partition. The returned DFM shares the receiver's feature
// space; its unit IDs are the group keys in lexicographic order, so
// downstream matrix row order is reproducible. Units mapped to an empty key
// are excluded; if every key is empty the grouping is invalid.
//
// The receiver is not modified. Keep a reference to it if the per-document
// rows are still needed.
func (m *DFM) GroupBy(key func(unitID string) string) (*DFM, error) {
	groups := make(map[string]map[int]int64)
	for row, id := range m.ids {
		k := key(id)
		if k == "" {
			continue
		}
		merged, ok := groups[k]
		if !ok {
			merged = make(map[int]int64)
			groups[k] = merged
		}
		for idx, count := range m.rows[row] {
			merged[idx] += count
		}
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("group: %w: key function produced no partitions", internalerr.ErrInvalidGrouping)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &DFM{
		space:    m.space,
		ids:      keys,
		rows:     make([]map[int]int64, len(keys)),
		rowIndex: make(map[string]int, len(keys)),
	}
	for row, k := range keys {
		out.rows[row] = groups[k]
		out.rowIndex[k] = row
	}

	return out, nil
}
