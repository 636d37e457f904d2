package lexsim

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexsim/pkg/lexsim/cluster"
	"github.com/cognicore/lexsim/pkg/lexsim/config"
	"github.com/cognicore/lexsim/pkg/lexsim/dfm"
	"github.com/cognicore/lexsim/pkg/lexsim/ingest"
	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
	"github.com/cognicore/lexsim/pkg/lexsim/metric"
	"github.com/cognicore/lexsim/pkg/lexsim/pairs"
	"github.com/cognicore/lexsim/pkg/lexsim/pairwise"
	"github.com/cognicore/lexsim/pkg/lexsim/store"
)

// Engine is the main similarity engine facade: tokenize → build → group →
// trim → pairwise metric → cluster → extract, with optional run persistence.
type Engine struct {
	store   store.Store
	tok     *ingest.Tokenizer
	cfg     config.Analysis
	entropy *ulid.MonotonicEntropy
}

// Options configures an Engine instance
type Options struct {
	Store     store.Store // optional; runs are persisted when set
	Tokenizer *ingest.Tokenizer
	Config    config.Analysis
}

// New creates an Engine with the given dependencies. A nil tokenizer gets a
// default one built from the config's stopword list.
func New(opts Options) *Engine {
	tok := opts.Tokenizer
	if tok == nil {
		tok = ingest.NewTokenizer(opts.Config.Stopwords)
	}
	return &Engine{
		store:   opts.Store,
		tok:     tok,
		cfg:     opts.Config,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Close cleanly shuts down the engine
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Result holds everything one analysis run produces. All parts are
// immutable value objects; a failed run returns none of them.
type Result struct {
	RunID         string
	DFM           *dfm.DFM
	Matrix        *pairwise.Matrix // the configured metric's values
	Dissimilarity *pairwise.Matrix // what the clusterer consumed
	Dendrogram    *cluster.Dendrogram
	Pairs         []pairs.Record
}

// Analyze runs the full pipeline over the given documents and, when a store
// is configured, records the run under the corpus name.
func (e *Engine) Analyze(ctx context.Context, corpus string, docs []ingest.Doc) (Result, error) {
	if len(docs) == 0 {
		return Result{}, fmt.Errorf("analyze: %w", internalerr.ErrEmptyCorpus)
	}

	units := make([]dfm.UnitCounts, 0, len(docs))
	meta := make(map[string]ingest.Doc, len(docs))
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return Result{}, fmt.Errorf("analyze doc %q: %w", doc.ID, err)
		}
		units = append(units, dfm.UnitCounts{ID: doc.ID, Counts: e.tok.Counts(doc.Body)})
		meta[doc.ID] = doc
	}

	m, err := dfm.Build(units)
	if err != nil {
		return Result{}, err
	}

	if key := groupKey(e.cfg.GroupBy, meta); key != nil {
		if m, err = m.GroupBy(key); err != nil {
			return Result{}, err
		}
	}

	if e.cfg.MinTermFreq > 0 || e.cfg.MinDocFreq > 0 {
		if m, err = m.Trim(e.cfg.MinTermFreq, e.cfg.MinDocFreq); err != nil {
			return Result{}, err
		}
	}

	var primary, dissim *pairwise.Matrix
	switch e.cfg.Metric {
	case "euclidean":
		if primary, err = metric.Compute(m, metric.Euclidean{}); err != nil {
			return Result{}, err
		}
		dissim = primary
	case "", "cosine":
		if primary, err = metric.Compute(m, metric.Cosine{}); err != nil {
			return Result{}, err
		}
		dissim = primary.Map(func(v float64) float64 { return 1 - v })
	default:
		return Result{}, fmt.Errorf("analyze: %w: unknown metric %q", internalerr.ErrInvalidConfig, e.cfg.Metric)
	}

	link, err := cluster.ParseLinkage(e.cfg.Linkage)
	if err != nil {
		return Result{}, err
	}
	dendro, err := cluster.Agglomerate(dissim, link)
	if err != nil {
		return Result{}, err
	}

	records := pairs.Extract(primary)

	result := Result{
		RunID:         ulid.MustNew(ulid.Now(), e.entropy).String(),
		DFM:           m,
		Matrix:        primary,
		Dissimilarity: dissim,
		Dendrogram:    dendro,
		Pairs:         records,
	}

	if e.store != nil {
		run := store.Run{
			ID:        result.RunID,
			Corpus:    corpus,
			Metric:    metricName(e.cfg.Metric),
			Linkage:   link.String(),
			CreatedAt: time.Now().UTC(),
			Pairs:     records,
		}
		if err := e.store.SaveRun(ctx, run); err != nil {
			return Result{}, fmt.Errorf("save run: %w", err)
		}
	}

	return result, nil
}

// groupKey maps the config's group_by name to a key function over unit IDs,
// or nil when no grouping is requested.
func groupKey(groupBy string, meta map[string]ingest.Doc) func(string) string {
	switch groupBy {
	case "outlet":
		return func(id string) string {
			return meta[id].Outlet
		}
	case "outlet-topic":
		return func(id string) string {
			doc, ok := meta[id]
			if !ok || doc.Outlet == "" {
				return ""
			}
			return doc.Outlet + "/" + doc.Topic
		}
	default:
		return nil
	}
}

func metricName(name string) string {
	if name == "" {
		return "cosine"
	}
	return name
}
