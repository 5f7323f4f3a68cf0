package validation

import (
	"strings"
	"testing"

	"github.com/gameshelf/gameshelf/internal/models"
)

func fptr(v float64) *float64 { return &v }

func validDraft() models.VideoGameUpdate {
	return models.VideoGameUpdate{
		ID:        1,
		Title:     "Outer Wilds",
		Publisher: "Annapurna Interactive",
		Rating:    fptr(9.0),
		Price:     fptr(24.99),
	}
}

func TestValidateUpdateValidDraft(t *testing.T) {
	if errs := ValidateUpdate(validDraft()); errs != nil {
		t.Errorf("valid draft produced errors: %v", errs)
	}
}

func TestValidateUpdateRules(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.VideoGameUpdate)
		wantField  string
		wantReason string
	}{
		{
			"missing title",
			func(u *models.VideoGameUpdate) { u.Title = "" },
			"title", "This field is required",
		},
		{
			"whitespace title",
			func(u *models.VideoGameUpdate) { u.Title = "   " },
			"title", "This field is required",
		},
		{
			"title too long",
			func(u *models.VideoGameUpdate) { u.Title = strings.Repeat("x", 201) },
			"title", "Maximum length is 200 characters",
		},
		{
			"publisher too long",
			func(u *models.VideoGameUpdate) { u.Publisher = strings.Repeat("x", 101) },
			"publisher", "Maximum length is 100 characters",
		},
		{
			"rating below range",
			func(u *models.VideoGameUpdate) { u.Rating = fptr(-0.5) },
			"rating", "Value must be greater than or equal to 0",
		},
		{
			"rating above range",
			func(u *models.VideoGameUpdate) { u.Rating = fptr(10.5) },
			"rating", "Value must be less than or equal to 10",
		},
		{
			"description too long",
			func(u *models.VideoGameUpdate) { u.Description = strings.Repeat("x", 1001) },
			"description", "Maximum length is 1000 characters",
		},
		{
			"negative price",
			func(u *models.VideoGameUpdate) { u.Price = fptr(-1) },
			"price", "Value must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		draft := validDraft()
		tt.mutate(&draft)

		errs := ValidateUpdate(draft)
		if len(errs) != 1 {
			t.Errorf("%s: got %d errors (%v), want 1", tt.name, len(errs), errs)
			continue
		}
		if got := errs[tt.wantField]; got != tt.wantReason {
			t.Errorf("%s: errs[%q] = %q, want %q", tt.name, tt.wantField, got, tt.wantReason)
		}
	}
}

func TestValidateUpdateBoundaryValues(t *testing.T) {
	draft := validDraft()
	draft.Title = strings.Repeat("x", 200)
	draft.Publisher = strings.Repeat("x", 100)
	draft.Description = strings.Repeat("x", 1000)
	draft.Rating = fptr(10)
	draft.Price = fptr(0)

	if errs := ValidateUpdate(draft); errs != nil {
		t.Errorf("boundary values should be valid, got %v", errs)
	}

	draft.Rating = fptr(0)
	if errs := ValidateUpdate(draft); errs != nil {
		t.Errorf("rating 0 should be valid, got %v", errs)
	}
}

func TestValidateUpdateOptionalFieldsNil(t *testing.T) {
	draft := models.VideoGameUpdate{ID: 1, Title: "Minimal"}
	if errs := ValidateUpdate(draft); errs != nil {
		t.Errorf("draft with only a title should be valid, got %v", errs)
	}
}

func TestValidateUpdateCollectsAllViolations(t *testing.T) {
	draft := models.VideoGameUpdate{
		Title:  "",
		Rating: fptr(11),
		Price:  fptr(-3),
	}

	errs := ValidateUpdate(draft)
	for _, field := range []string{"title", "rating", "price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected a violation for %q, got %v", field, errs)
		}
	}
}
