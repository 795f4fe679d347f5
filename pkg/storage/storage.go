// Package storage provides file storage operations behind a driver-selected
// backend: a local-disk upload root or an Azure Blob Storage container.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"docuvault/pkg/lifecycle"
)

// System manages file storage operations and lifecycle coordination.
type System interface {
	// Start registers a startup hook that initializes the storage backend.
	Start(lc *lifecycle.Coordinator) error
	// Upload streams data to the file at the given key with the specified
	// content type.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns a stream for the file at the given key. The caller must
	// close the reader. Returns ErrNotFound if the file does not exist.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Move relocates the file at oldKey to newKey. Returns ErrNotFound if no
	// file exists at oldKey.
	Move(ctx context.Context, oldKey, newKey string) error
	// Delete removes the file at the given key. Returns ErrNotFound if the
	// file does not exist.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a file exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New creates a storage system for the configured driver.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Driver {
	case DriverLocal:
		return newLocal(cfg, logger)
	case DriverAzure:
		return newAzure(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
