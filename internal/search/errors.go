package search

import (
	"errors"
	"net/http"

	"docuvault/pkg/pagination"
)

// ErrNoMatchingTags indicates that none of the requested tag names exist.
var ErrNoMatchingTags = errors.New("no matching tags found")

// MapHTTPStatus maps search errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoMatchingTags) {
		return http.StatusNotFound
	}
	if errors.Is(err, pagination.ErrInvalidLimit) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
