package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicate       = errors.New("document already exists")
	ErrInvalidDocument = errors.New("invalid document")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrUpdateForbidden = errors.New("only the owner can update this document")
	ErrDeleteForbidden = errors.New("only the owner can delete this document")
)

// MapHTTPStatus maps document domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidDocument) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrUpdateForbidden) || errors.Is(err, ErrDeleteForbidden) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
