// Package search implements cross-domain document search for docuvault.
// It filters documents by name, extension, creation date range, and tag
// names resolved through the tag store.
package search

import (
	"net/url"
	"strings"
	"time"

	"docuvault/pkg/query"
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
	Project("updated_at", "UpdatedAt").
	Join("public", "document_tags", "dt", "LEFT JOIN", "d.id = dt.document_id").
	Map("tag_id", "TagID")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains the search criteria for document queries. Nil fields are
// ignored. FileName uses case-insensitive contains matching; FileExtension
// is exact; Start and End bound created_at inclusively; TagNames must
// resolve to at least one known tag when present.
type Filters struct {
	FileName      *string    `json:"file_name,omitempty"`
	FileExtension *string    `json:"file_extension,omitempty"`
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
	TagNames      []string   `json:"tags,omitempty"`
}

// Apply adds the metadata filter conditions to a query builder. Tag
// constraints are added separately once names are resolved to ids.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("FileName", f.FileName).
		WhereEquals("FileExtension", f.FileExtension).
		WhereBetween("CreatedAt", f.Start, f.End)
}

// FiltersFromQuery extracts search criteria from URL query parameters.
// Dates accept RFC 3339 timestamps or plain dates (2006-01-02); the end
// date of a plain-date range extends to the end of that day.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if fn := values.Get("filename"); fn != "" {
		f.FileName = &fn
	}

	if ext := values.Get("extension"); ext != "" {
		f.FileExtension = &ext
	}

	if start, ok := parseTime(values.Get("start"), false); ok {
		f.Start = &start
	}

	if end, ok := parseTime(values.Get("end"), true); ok {
		f.End = &end
	}

	if tags := values.Get("tags"); tags != "" {
		f.TagNames = splitTagNames(tags)
	}

	return f
}

func parseTime(s string, endOfDay bool) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}

func splitTagNames(field string) []string {
	parts := strings.Split(field, ",")
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}

	return names
}
