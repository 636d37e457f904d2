package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidTerm       = errors.New("invalid term")
	ErrEmptyCorpus       = errors.New("empty corpus")
	ErrEmptyFeatureSpace = errors.New("empty feature space")
	ErrInsufficientUnits = errors.New("insufficient units")
	ErrInvalidGrouping   = errors.New("invalid grouping")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrNotFound          = errors.New("not found")
)
