package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
)

// Analysis configures one similarity run: the metric, the linkage policy
// for clustering, optional grouping and vocabulary trimming, and the
// stopword list handed to the tokenizer.
type Analysis struct {
	Metric      string   `yaml:"metric"`        // "cosine" (default) or "euclidean"
	Linkage     string   `yaml:"linkage"`       // "complete" (default), "single" or "average"
	GroupBy     string   `yaml:"group_by"`      // "", "outlet" or "outlet-topic"
	MinTermFreq int64    `yaml:"min_term_freq"` // corpus-wide count floor, 0 disables
	MinDocFreq  int64    `yaml:"min_doc_freq"`  // document frequency floor, 0 disables
	Stopwords   []string `yaml:"stopwords"`
}

// Default returns the configuration used when no file is given: cosine
// similarity, complete linkage, no grouping, no trimming.
func Default() Analysis {
	return Analysis{
		Metric:  "cosine",
		Linkage: "complete",
	}
}

// LoadAnalysis loads an analysis configuration from a YAML file. Omitted
// metric/linkage fields fall back to the defaults; the result is validated.
func LoadAnalysis(path string) (Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Analysis{}, fmt.Errorf("load analysis config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Analysis{}, fmt.Errorf("parse analysis config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Analysis{}, err
	}
	return cfg, nil
}

// Validate rejects unknown metric, linkage or grouping names and negative
// trim thresholds.
func (a Analysis) Validate() error {
	switch a.Metric {
	case "", "cosine", "euclidean":
	default:
		return fmt.Errorf("%w: unknown metric %q", internalerr.ErrInvalidConfig, a.Metric)
	}

	switch a.Linkage {
	case "", "complete", "single", "average":
	default:
		return fmt.Errorf("%w: unknown linkage %q", internalerr.ErrInvalidConfig, a.Linkage)
	}

	switch a.GroupBy {
	case "", "outlet", "outlet-topic":
	default:
		return fmt.Errorf("%w: unknown group_by %q", internalerr.ErrInvalidConfig, a.GroupBy)
	}

	if a.MinTermFreq < 0 || a.MinDocFreq < 0 {
		return fmt.Errorf("%w: trim thresholds must be non-negative", internalerr.ErrInvalidConfig)
	}

	return nil
}
