package documents_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"docuvault/internal/documents"
)

func TestSplitFileName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		base      string
		extension string
	}{
		{"simple", "report.pdf", "report", "pdf"},
		{"multiple dots", "backup.2026.tar", "backup.2026", "tar"},
		{"no extension", "README", "README", ""},
		{"leading dot", ".env", ".env", ""},
		{"trailing dot", "notes.", "notes.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, extension := documents.SplitFileName(tt.input)
			if base != tt.base || extension != tt.extension {
				t.Errorf(
					"SplitFileName(%q) = (%q, %q), want (%q, %q)",
					tt.input, base, extension, tt.base, tt.extension,
				)
			}
		})
	}
}

func TestCreateCommandValidate(t *testing.T) {
	valid := documents.CreateCommand{
		Data:          []byte("content"),
		FileName:      "report",
		FileExtension: "pdf",
		OwnerID:       uuid.New(),
	}

	tests := []struct {
		name    string
		mutate  func(*documents.CreateCommand)
		wantErr bool
	}{
		{"valid", func(c *documents.CreateCommand) {}, false},
		{"blank file name", func(c *documents.CreateCommand) { c.FileName = "  " }, true},
		{"blank extension", func(c *documents.CreateCommand) { c.FileExtension = "" }, true},
		{"missing owner", func(c *documents.CreateCommand) { c.OwnerID = uuid.Nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)

			err := cmd.Validate()
			if tt.wantErr && !errors.Is(err, documents.ErrInvalidDocument) {
				t.Errorf("error = %v, want ErrInvalidDocument", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateCommandValidate(t *testing.T) {
	blank := "  "
	renamed := "renamed"

	if err := (documents.UpdateCommand{}).Validate(); err != nil {
		t.Errorf("empty update: unexpected error: %v", err)
	}
	if err := (documents.UpdateCommand{FileName: &renamed}).Validate(); err != nil {
		t.Errorf("valid rename: unexpected error: %v", err)
	}
	if err := (documents.UpdateCommand{FileName: &blank}).Validate(); !errors.Is(err, documents.ErrInvalidDocument) {
		t.Errorf("blank file name: error = %v, want ErrInvalidDocument", err)
	}
	if err := (documents.UpdateCommand{FileExtension: &blank}).Validate(); !errors.Is(err, documents.ErrInvalidDocument) {
		t.Errorf("blank extension: error = %v, want ErrInvalidDocument", err)
	}
}
