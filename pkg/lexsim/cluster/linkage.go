package cluster

import (
	"fmt"

	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
)

// Linkage is the policy for the distance between two clusters of units.
type Linkage int

const (
	// Complete linkage takes the maximum distance over constituent pairs.
	// It is the default: it favors tight, compact clusters.
	Complete Linkage = iota
	// Single linkage takes the minimum distance over constituent pairs.
	Single
	// Average linkage takes the size-weighted mean distance.
	Average
)

// String returns the linkage's config name.
func (l Linkage) String() string {
	switch l {
	case Complete:
		return "complete"
	case Single:
		return "single"
	case Average:
		return "average"
	default:
		return fmt.Sprintf("linkage(%d)", int(l))
	}
}

// ParseLinkage maps a config name to a Linkage.
func ParseLinkage(name string) (Linkage, error) {
	switch name {
	case "", "complete":
		return Complete, nil
	case "single":
		return Single, nil
	case "average":
		return Average, nil
	default:
		return 0, fmt.Errorf("%w: unknown linkage %q", internalerr.ErrInvalidConfig, name)
	}
}

// update computes the distance from a freshly merged cluster (children i and
// j, with sizes ni and nj and distances dik/djk to cluster k) to cluster k.
func (l Linkage) update(dik, djk float64, ni, nj int) float64 {
	switch l {
	case Single:
		if dik < djk {
			return dik
		}
		return djk
	case Average:
		return (float64(ni)*dik + float64(nj)*djk) / float64(ni+nj)
	default: // Complete
		if dik > djk {
			return dik
		}
		return djk
	}
}
