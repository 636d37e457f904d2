package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/lexsim/pkg/lexsim/dfm"
	"github.com/cognicore/lexsim/pkg/lexsim/store"
)

// memStore is an in-memory Store for tests and short-lived runs. It applies
// the same semantics as the SQLite store: upserts replace a unit's counts,
// corpora and runs come back in deterministic order.
type memStore struct {
	mu      sync.RWMutex
	corpora map[string]map[string]map[string]int64 // corpus → unit → term → count
	runs    map[string]store.Run
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{
		corpora: make(map[string]map[string]map[string]int64),
		runs:    make(map[string]store.Run),
	}
}

func (s *memStore) Close() error {
	return nil
}

func (s *memStore) UpsertUnit(_ context.Context, corpus string, u dfm.UnitCounts) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	units, ok := s.corpora[corpus]
	if !ok {
		units = make(map[string]map[string]int64)
		s.corpora[corpus] = units
	}

	counts := make(map[string]int64, len(u.Counts))
	for term, count := range u.Counts {
		if term == "" || count <= 0 {
			continue
		}
		counts[term] = count
	}
	units[u.ID] = counts
	return nil
}

func (s *memStore) GetCorpus(_ context.Context, corpus string) ([]dfm.UnitCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	units := s.corpora[corpus]
	ids := make([]string, 0, len(units))
	for id := range units {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]dfm.UnitCounts, 0, len(ids))
	for _, id := range ids {
		counts := make(map[string]int64, len(units[id]))
		for term, count := range units[id] {
			counts[term] = count
		}
		out = append(out, dfm.UnitCounts{ID: id, Counts: counts})
	}
	return out, nil
}

func (s *memStore) ListCorpora(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.corpora))
	for name := range s.corpora {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *memStore) SaveRun(_ context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = r
	return nil
}

func (s *memStore) GetRun(_ context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]
	return r, ok, nil
}

func (s *memStore) ListRuns(_ context.Context, corpus string) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var runs []store.Run
	for _, r := range s.runs {
		if r.Corpus == corpus {
			runs = append(runs, r)
		}
	}
	// ULIDs sort by creation time; newest first to match the SQLite store.
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID > runs[j].ID })
	for i := range runs {
		runs[i].Pairs = nil
	}
	return runs, nil
}
