package ingest

import (
	"errors"
	"strings"
)

// Doc represents a normalized document before tokenization. Outlet and
// Topic are the grouping dimensions a caller's key function can combine.
type Doc struct {
	ID     string
	Title  string
	Outlet string
	Topic  string
	Body   string
}

// Validate checks if the document has required fields
func (d *Doc) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("doc ID is required")
	}

	if strings.TrimSpace(d.Body) == "" {
		return errors.New("doc body text is required")
	}

	return nil
}
