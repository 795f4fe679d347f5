package tags

import (
	"errors"
	"net/http"
)

// Domain errors for tag operations.
var (
	ErrNotFound   = errors.New("tag not found")
	ErrDuplicate  = errors.New("tag already exists")
	ErrInvalidTag = errors.New("invalid tag")
)

// MapHTTPStatus maps tag domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidTag) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
