package search_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"docuvault/internal/search"
	"docuvault/internal/tags"
	"docuvault/pkg/pagination"
)

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("filename", "report")
	values.Set("extension", "pdf")
	values.Set("start", "2026-01-01")
	values.Set("end", "2026-01-31")
	values.Set("tags", "invoices, reports,,archived ")

	f := search.FiltersFromQuery(values)

	if f.FileName == nil || *f.FileName != "report" {
		t.Errorf("FileName = %v, want report", f.FileName)
	}
	if f.FileExtension == nil || *f.FileExtension != "pdf" {
		t.Errorf("FileExtension = %v, want pdf", f.FileExtension)
	}
	if f.Start == nil || !f.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start = %v, want 2026-01-01T00:00:00Z", f.Start)
	}
	if f.End == nil || f.End.Before(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("End = %v, want end of 2026-01-31", f.End)
	}
	if len(f.TagNames) != 3 || f.TagNames[0] != "invoices" || f.TagNames[2] != "archived" {
		t.Errorf("TagNames = %v, want [invoices reports archived]", f.TagNames)
	}
}

func TestFiltersFromQueryRFC3339(t *testing.T) {
	values := url.Values{}
	values.Set("start", "2026-03-15T08:30:00Z")

	f := search.FiltersFromQuery(values)

	if f.Start == nil || !f.Start.Equal(time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)) {
		t.Errorf("Start = %v, want 2026-03-15T08:30:00Z", f.Start)
	}
}

func TestFiltersFromQueryIgnoresInvalidDates(t *testing.T) {
	values := url.Values{}
	values.Set("start", "yesterday")
	values.Set("end", "31/01/2026")

	f := search.FiltersFromQuery(values)

	if f.Start != nil || f.End != nil {
		t.Errorf("invalid dates parsed: Start = %v, End = %v", f.Start, f.End)
	}
}

type fakeTagFinder struct {
	matched []tags.Tag
	err     error
}

func (f fakeTagFinder) FindByNames(context.Context, []string) ([]tags.Tag, error) {
	return f.matched, f.err
}

func newTestSystem(finder search.TagFinder) search.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}
	return search.New(nil, finder, logger, cfg)
}

func TestDocumentsRejectsUnknownTags(t *testing.T) {
	sys := newTestSystem(fakeTagFinder{})

	filters := search.Filters{TagNames: []string{"no-such-tag"}}
	_, err := sys.Documents(context.Background(), filters, pagination.PageRequest{})

	if !errors.Is(err, search.ErrNoMatchingTags) {
		t.Errorf("error = %v, want ErrNoMatchingTags", err)
	}
}

func TestDocumentsPropagatesTagLookupError(t *testing.T) {
	failed := errors.New("lookup failed")
	sys := newTestSystem(fakeTagFinder{err: failed})

	filters := search.Filters{TagNames: []string{"invoices"}}
	_, err := sys.Documents(context.Background(), filters, pagination.PageRequest{})

	if !errors.Is(err, failed) {
		t.Errorf("error = %v, want %v", err, failed)
	}
}
