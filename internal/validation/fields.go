// Package validation provides field-level validation for edit drafts.
// The rules are pure predicates resolved entirely locally; a draft that
// fails here never reaches the network.
package validation

import (
	"fmt"
	"strings"

	"github.com/gameshelf/gameshelf/internal/models"
)

// FieldErrors maps a field name to the reason its rule was violated.
// An empty map means the draft is valid.
type FieldErrors map[string]string

// Field length and range limits enforced by the catalog service; kept in
// sync with the server so rejections happen before the round trip.
const (
	TitleMaxLength       = 200
	PublisherMaxLength   = 100
	DescriptionMaxLength = 1000
	RatingMin            = 0
	RatingMax            = 10
)

// Violation messages shown next to the offending field.
const (
	msgRequired = "This field is required"
	msgMinZero  = "Value must be greater than or equal to 0"
	msgMaxTen   = "Value must be less than or equal to 10"
)

// required returns a violation reason if value is empty after trimming.
func required(value string) string {
	if strings.TrimSpace(value) == "" {
		return msgRequired
	}
	return ""
}

// maxLen returns a violation reason if value exceeds limit characters.
func maxLen(value string, limit int) string {
	if len([]rune(value)) > limit {
		return fmt.Sprintf("Maximum length is %d characters", limit)
	}
	return ""
}

// minFloat returns a violation reason if value is below min. A nil value
// is valid; optional fields have no lower bound until set.
func minFloat(value *float64, min float64) string {
	if value != nil && *value < min {
		return msgMinZero
	}
	return ""
}

// maxFloat returns a violation reason if value is above max.
func maxFloat(value *float64, max float64) string {
	if value != nil && *value > max {
		return msgMaxTen
	}
	return ""
}

// ValidateUpdate checks every field rule of an edit draft and returns the
// full set of violations keyed by field name.
func ValidateUpdate(u models.VideoGameUpdate) FieldErrors {
	errs := make(FieldErrors)

	if reason := required(u.Title); reason != "" {
		errs["title"] = reason
	} else if reason := maxLen(u.Title, TitleMaxLength); reason != "" {
		errs["title"] = reason
	}

	if reason := maxLen(u.Publisher, PublisherMaxLength); reason != "" {
		errs["publisher"] = reason
	}

	if reason := minFloat(u.Rating, RatingMin); reason != "" {
		errs["rating"] = reason
	} else if reason := maxFloat(u.Rating, RatingMax); reason != "" {
		errs["rating"] = reason
	}

	if reason := maxLen(u.Description, DescriptionMaxLength); reason != "" {
		errs["description"] = reason
	}

	if reason := minFloat(u.Price, 0); reason != "" {
		errs["price"] = reason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
