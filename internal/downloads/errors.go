package downloads

import (
	"errors"
	"net/http"

	"docuvault/internal/documents"
)

// ErrInvalidToken indicates a download token that failed signature, expiry,
// or document binding checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// MapHTTPStatus maps download errors to appropriate HTTP status codes.
// Document lookup failures carry document domain errors and map through
// documents.MapHTTPStatus.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidToken) {
		return http.StatusForbidden
	}
	return documents.MapHTTPStatus(err)
}
