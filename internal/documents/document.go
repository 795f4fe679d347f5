// Package documents implements the document domain for docuvault.
// It provides types, data access, and business logic for document upload,
// metadata management, tag linkage, and file storage integration.
package documents

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docuvault/internal/tags"
)

// Document represents an uploaded document with its metadata and stored
// file reference. Filepath is the storage key of the file bytes.
type Document struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	Filepath      string    `json:"filepath"`
	OwnerID       uuid.UUID `json:"user_id"`
	PageCount     *int      `json:"page_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DocumentWithTags bundles a document with its resolved tags.
type DocumentWithTags struct {
	Document
	Tags []tags.Tag `json:"tags"`
}

// CreateCommand carries the data needed to upload and register a new
// document. Data holds the raw file bytes. PageCount is optional and may be
// extracted by the caller via pdfcpu; nil values are stored as NULL.
// TagNames lists labels to resolve, creating any that do not exist.
type CreateCommand struct {
	Data          []byte
	FileName      string
	FileExtension string
	ContentType   string
	OwnerID       uuid.UUID
	PageCount     *int
	TagNames      []string
}

// Validate checks the command fields against document constraints.
func (c CreateCommand) Validate() error {
	if strings.TrimSpace(c.FileName) == "" {
		return fmt.Errorf("%w: file name required", ErrInvalidDocument)
	}
	if strings.TrimSpace(c.FileExtension) == "" {
		return fmt.Errorf("%w: file extension required", ErrInvalidDocument)
	}
	if c.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: owner required", ErrInvalidDocument)
	}
	return nil
}

// UpdateCommand carries a partial metadata update. Nil fields are unchanged.
// Renames move the stored file before the metadata is persisted.
type UpdateCommand struct {
	FileName      *string `json:"file_name,omitempty"`
	FileExtension *string `json:"file_extension,omitempty"`
}

// Validate checks the provided fields against document constraints.
func (c UpdateCommand) Validate() error {
	if c.FileName != nil && strings.TrimSpace(*c.FileName) == "" {
		return fmt.Errorf("%w: file name required", ErrInvalidDocument)
	}
	if c.FileExtension != nil && strings.TrimSpace(*c.FileExtension) == "" {
		return fmt.Errorf("%w: file extension required", ErrInvalidDocument)
	}
	return nil
}

// buildStorageKey derives the storage key for a document file.
func buildStorageKey(fileName, fileExtension string) string {
	return fileName + "." + fileExtension
}

// SplitFileName separates an uploaded filename into its base name and
// extension (without the dot). Files without an extension yield an empty
// extension.
func SplitFileName(name string) (base, extension string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
