// Package api provides error types for catalog service responses.
package api

import (
	"errors"
	"strings"
)

// ErrNotFound indicates the requested record does not exist on the service.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError checks if an error indicates a missing record.
//
// This function detects "not found" errors from multiple sources:
//  1. Wrapped ErrNotFound error
//  2. HTTP 404 status text embedded in the message
//  3. Error messages containing common "not found" patterns
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrNotFound) {
		return true
	}

	errStr := strings.ToLower(err.Error())

	notFoundIndicators := []string{
		"not found",
		"status 404",
		"no such record",
		"does not exist",
	}

	for _, indicator := range notFoundIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}
