package featurespace

import (
	"fmt"
	"strings"

	"github.com/cognicore/lexsim/pkg/lexsim/internalerr"
)

// FeatureSpace owns the term → column-index mapping shared by every row of a
// document-feature matrix. Indices are assigned in first-seen order and are
// never reused or reassigned once given; the space only grows.
//
// A FeatureSpace is an explicit owned object passed into builds, never
// ambient state. Interning is order-dependent and therefore not safe for
// concurrent use.
type FeatureSpace struct {
	index map[string]int
	terms []string
}

// New creates an empty feature space.
func New() *FeatureSpace {
	return &FeatureSpace{
		index: make(map[string]int),
		terms: []string{},
	}
}

// Intern returns the stable index for term, assigning the next free index if
// the term has not been seen before. Empty or blank terms are rejected.
func (fs *FeatureSpace) Intern(term string) (int, error) {
	if strings.TrimSpace(term) == "" {
		return 0, fmt.Errorf("intern: %w: empty term", internalerr.ErrInvalidTerm)
	}
	if idx, ok := fs.index[term]; ok {
		return idx, nil
	}
	idx := len(fs.terms)
	fs.index[term] = idx
	fs.terms = append(fs.terms, term)
	return idx, nil
}

// Index returns the index of term and whether it has been interned.
func (fs *FeatureSpace) Index(term string) (int, bool) {
	idx, ok := fs.index[term]
	return idx, ok
}

// Term returns the term at the given index and whether it exists.
func (fs *FeatureSpace) Term(idx int) (string, bool) {
	if idx < 0 || idx >= len(fs.terms) {
		return "", false
	}
	return fs.terms[idx], true
}

// Size returns the number of distinct terms ever interned.
func (fs *FeatureSpace) Size() int {
	return len(fs.terms)
}

// Terms returns a copy of all terms in index order.
func (fs *FeatureSpace) Terms() []string {
	out := make([]string, len(fs.terms))
	copy(out, fs.terms)
	return out
}
