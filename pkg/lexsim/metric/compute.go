package metric

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/lexsim/pkg/lexsim/dfm"
	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
	"github.com/cognicore/lexsim/pkg/lexsim/pairwise"
)

// Compute builds the full pairwise matrix for every row of the DFM under the
// given metric. Each unordered pair is computed exactly once and mirrored
// into both triangle positions.
//
// Pair computations are independent, so rows of the upper triangle are
// fanned out across workers; every cell is written by exactly one goroutine
// and the result is deterministic regardless of scheduling.
func Compute(m *dfm.DFM, metric Metric) (*pairwise.Matrix, error) {
	n := m.NumUnits()
	if n == 0 {
		return nil, fmt.Errorf("compute %s: %w", metric.Name(), internalerr.ErrEmptyCorpus)
	}
	if m.NumTerms() == 0 {
		return nil, fmt.Errorf("compute %s: %w", metric.Name(), internalerr.ErrEmptyFeatureSpace)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = m.Row(i)
	}

	out := pairwise.New(m.UnitIDs())

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			out.Set(i, i, metric.Self(rows[i]))
			for j := i + 1; j < n; j++ {
				out.Set(i, j, metric.Pair(rows[i], rows[j]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
