package documents

import (
	"net/url"

	"docuvault/pkg/query"
	"docuvault/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("file_name", "FileName").
	Project("file_extension", "FileExtension").
	Project("filepath", "Filepath").
	Project("user_id", "OwnerID").
	Project("page_count", "PageCount").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document list queries.
// Nil fields are ignored. FileExtension and OwnerID use exact matching.
// FileName uses case-insensitive contains matching.
type Filters struct {
	FileName      *string `json:"file_name,omitempty"`
	FileExtension *string `json:"file_extension,omitempty"`
	OwnerID       *string `json:"user_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("FileName", f.FileName).
		WhereEquals("FileExtension", f.FileExtension)

	if f.OwnerID != nil {
		b.WhereEquals("OwnerID", *f.OwnerID)
	}
	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if fn := values.Get("file_name"); fn != "" {
		f.FileName = &fn
	}

	if ext := values.Get("file_extension"); ext != "" {
		f.FileExtension = &ext
	}

	if owner := values.Get("user_id"); owner != "" {
		f.OwnerID = &owner
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.FileName,
		&d.FileExtension,
		&d.Filepath,
		&d.OwnerID,
		&d.PageCount,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}
