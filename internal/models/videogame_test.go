package models

import "testing"

func TestPageDerivedFlags(t *testing.T) {
	tests := []struct {
		name      string
		pageIndex int
		total     int
		wantPrev  bool
		wantNext  bool
	}{
		{"first of three", 1, 3, false, true},
		{"middle", 2, 3, true, true},
		{"last", 3, 3, true, false},
		{"single page", 1, 1, false, false},
		{"empty result set", 1, 0, false, false},
		{"past the end", 4, 3, true, false},
	}

	for _, tt := range tests {
		p := Page{PageIndex: tt.pageIndex, TotalPages: tt.total}
		if got := p.HasPreviousPage(); got != tt.wantPrev {
			t.Errorf("%s: HasPreviousPage() = %v, want %v", tt.name, got, tt.wantPrev)
		}
		if got := p.HasNextPage(); got != tt.wantNext {
			t.Errorf("%s: HasNextPage() = %v, want %v", tt.name, got, tt.wantNext)
		}
	}
}

func TestSortFieldSet(t *testing.T) {
	for _, f := range SortFields {
		if !IsSortField(f) {
			t.Errorf("IsSortField(%q) = false, want true", f)
		}
	}
	if IsSortField("isActive") {
		t.Error("IsSortField(isActive) = true, want false")
	}
	if IsSortField("") {
		t.Error("IsSortField(\"\") = true, want false")
	}
	if !IsSortField(DefaultSortField) {
		t.Error("DefaultSortField is not in SortFields")
	}
}

func TestPageSizeSet(t *testing.T) {
	for _, s := range PageSizes {
		if !IsPageSize(s) {
			t.Errorf("IsPageSize(%d) = false, want true", s)
		}
	}
	if IsPageSize(0) || IsPageSize(7) || IsPageSize(1000) {
		t.Error("IsPageSize accepted a size outside the allowed set")
	}
	if !IsPageSize(DefaultPageSize) {
		t.Error("DefaultPageSize is not in PageSizes")
	}
}

func TestUpdateFrom(t *testing.T) {
	rating := 9.5
	g := VideoGame{ID: 42, Title: "Hollow Knight", Publisher: "Team Cherry", Rating: &rating, IsActive: true}

	u := UpdateFrom(g)
	if u.ID != 42 || u.Title != "Hollow Knight" || u.Publisher != "Team Cherry" {
		t.Errorf("UpdateFrom copied fields incorrectly: %+v", u)
	}
	if u.Rating == nil || *u.Rating != 9.5 {
		t.Error("UpdateFrom should carry the rating pointer value")
	}
}
