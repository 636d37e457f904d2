package store

import (
	"context"
	"time"

	"github.com/cognicore/lexsim/pkg/lexsim/dfm"
	"github.com/cognicore/lexsim/pkg/lexsim/pairs"
)

// Store persists corpora (per-unit term counts) and completed analysis runs.
type Store interface {
	Close() error

	// Corpora
	UpsertUnit(ctx context.Context, corpus string, u dfm.UnitCounts) error
	GetCorpus(ctx context.Context, corpus string) ([]dfm.UnitCounts, error)
	ListCorpora(ctx context.Context) ([]string, error)

	// Runs
	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, corpus string) ([]Run, error)
}

// Run is one completed pairwise analysis: its configuration fingerprint and
// the extracted pair records. IDs are ULIDs, so lexical order is creation
// order.
type Run struct {
	ID        string
	Corpus    string
	Metric    string
	Linkage   string
	CreatedAt time.Time
	Pairs     []pairs.Record
}
