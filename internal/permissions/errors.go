package permissions

import (
	"errors"
	"net/http"
)

// Domain errors for permission operations.
var (
	ErrNotFound          = errors.New("permission not found")
	ErrDuplicate         = errors.New("permission already exists")
	ErrInvalidPermission = errors.New("invalid permission")
	ErrGrantForbidden    = errors.New("insufficient permissions to grant access")
	ErrRevokeForbidden   = errors.New("insufficient permissions to revoke access")
)

// MapHTTPStatus maps permission domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidPermission) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrGrantForbidden) || errors.Is(err, ErrRevokeForbidden) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
