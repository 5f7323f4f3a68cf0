package state

import (
	"strings"

	"github.com/gameshelf/gameshelf/internal/models"
)

// Query is the immutable set of parameters that determines which page is
// requested. It is replaced wholesale on each change, never mutated by a
// frontend.
type Query struct {
	// SearchTerm is trimmed; empty means no filter.
	SearchTerm string

	// SortBy is one of models.SortFields.
	SortBy string

	// SortDescending flips the sort direction.
	SortDescending bool

	// PageIndex is 1-based.
	PageIndex int

	// PageSize is one of models.PageSizes.
	PageSize int
}

// DefaultQuery returns the query applied when a browse session starts.
func DefaultQuery() Query {
	return Query{
		SortBy:    models.DefaultSortField,
		PageIndex: 1,
		PageSize:  models.DefaultPageSize,
	}
}

// normalized returns a copy with every field pulled back into its legal
// domain: trimmed search, known sort field, page index >= 1, allowed page
// size. The page index upper bound is deliberately not enforced here; the
// server's response is authoritative for out-of-range pages.
func (q Query) normalized() Query {
	q.SearchTerm = strings.TrimSpace(q.SearchTerm)
	if !models.IsSortField(q.SortBy) {
		q.SortBy = models.DefaultSortField
	}
	if q.PageIndex < 1 {
		q.PageIndex = 1
	}
	if !models.IsPageSize(q.PageSize) {
		q.PageSize = models.DefaultPageSize
	}
	return q
}
