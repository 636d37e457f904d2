package cluster

import (
	"fmt"

	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
	"github.com/cognicore/lexsim/pkg/lexsim/pairwise"
)

// Agglomerate builds a dendrogram from a symmetric dissimilarity matrix
// (lower values = more similar) by repeatedly merging the closest pair of
// clusters until one remains. Inter-cluster distances after a merge follow
// the given linkage rule.
//
// A merged cluster occupies the slot of its lower-indexed child, so a slot
// index is always the lowest original row index among the cluster's leaves.
// The minimum scan walks slots in ascending order with a strict comparison,
// which breaks distance ties on the lexicographically lowest original index
// pair: merge order is deterministic on identical input.
//
// The repeated full scan is O(N³), fine for the intended scale of a few
// hundred units.
func Agglomerate(m *pairwise.Matrix, link Linkage) (*Dendrogram, error) {
	n := m.Size()
	if n < 2 {
		return nil, fmt.Errorf("agglomerate: %w: need at least 2 units, have %d", internalerr.ErrInsufficientUnits, n)
	}

	labels := m.Labels()

	// Working copy of the distance matrix; d[i][j] is the current
	// inter-cluster distance between the clusters in slots i and j.
	d := make([][]float64, n)
	nodes := make([]*Node, n)
	alive := make([]bool, n)
	for i := 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			d[i][j] = m.At(i, j)
		}
		nodes[i] = &Node{Leaf: labels[i], Size: 1}
		alive[i] = true
	}

	merges := make([]Merge, 0, n-1)
	for step := 0; step < n-1; step++ {
		bestI, bestJ := -1, -1
		var best float64
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !alive[j] {
					continue
				}
				if bestI < 0 || d[i][j] < best {
					best = d[i][j]
					bestI, bestJ = i, j
				}
			}
		}

		left, right := nodes[bestI], nodes[bestJ]
		merged := &Node{
			Height: best, // recorded raw, no monotonicity correction
			Left:   left,
			Right:  right,
			Size:   left.Size + right.Size,
		}

		for k := 0; k < n; k++ {
			if !alive[k] || k == bestI || k == bestJ {
				continue
			}
			nd := link.update(d[bestI][k], d[bestJ][k], left.Size, right.Size)
			d[bestI][k] = nd
			d[k][bestI] = nd
		}

		nodes[bestI] = merged
		alive[bestJ] = false
		merges = append(merges, Merge{Height: best, Node: merged})
	}

	return &Dendrogram{
		root:   nodes[indexOfAlive(alive)],
		labels: labels,
		merges: merges,
	}, nil
}

func indexOfAlive(alive []bool) int {
	for i, ok := range alive {
		if ok {
			return i
		}
	}
	return 0
}
