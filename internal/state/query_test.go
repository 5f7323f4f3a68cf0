package state

import (
	"testing"

	"github.com/gameshelf/gameshelf/internal/models"
)

func TestDefaultQuery(t *testing.T) {
	q := DefaultQuery()
	if q.SearchTerm != "" {
		t.Errorf("SearchTerm = %q, want empty", q.SearchTerm)
	}
	if q.SortBy != models.DefaultSortField {
		t.Errorf("SortBy = %q, want %q", q.SortBy, models.DefaultSortField)
	}
	if q.SortDescending {
		t.Error("SortDescending should default to false")
	}
	if q.PageIndex != 1 {
		t.Errorf("PageIndex = %d, want 1", q.PageIndex)
	}
	if q.PageSize != models.DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", q.PageSize, models.DefaultPageSize)
	}
}

func TestQueryNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Query
		want Query
	}{
		{
			"trims search term",
			Query{SearchTerm: "  zelda  ", SortBy: "title", PageIndex: 2, PageSize: 20},
			Query{SearchTerm: "zelda", SortBy: "title", PageIndex: 2, PageSize: 20},
		},
		{
			"unknown sort field falls back",
			Query{SortBy: "color", PageIndex: 1, PageSize: 10},
			Query{SortBy: models.DefaultSortField, PageIndex: 1, PageSize: 10},
		},
		{
			"page index floor",
			Query{SortBy: "price", PageIndex: 0, PageSize: 5},
			Query{SortBy: "price", PageIndex: 1, PageSize: 5},
		},
		{
			"negative page index floor",
			Query{SortBy: "rating", PageIndex: -3, PageSize: 50},
			Query{SortBy: "rating", PageIndex: 1, PageSize: 50},
		},
		{
			"disallowed page size falls back",
			Query{SortBy: "title", PageIndex: 1, PageSize: 7},
			Query{SortBy: "title", PageIndex: 1, PageSize: models.DefaultPageSize},
		},
		{
			"high page index kept",
			Query{SortBy: "title", PageIndex: 9999, PageSize: 10},
			Query{SortBy: "title", PageIndex: 9999, PageSize: 10},
		},
	}

	for _, tt := range tests {
		if got := tt.in.normalized(); got != tt.want {
			t.Errorf("%s: normalized() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
