package tags_test

import (
	"errors"
	"strings"
	"testing"

	"docuvault/internal/tags"
)

func TestCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		command tags.Command
		wantErr bool
	}{
		{"valid", tags.Command{Name: "invoices"}, false},
		{"at max length", tags.Command{Name: strings.Repeat("a", tags.MaxNameLength)}, false},
		{"surrounding whitespace", tags.Command{Name: "  reports  "}, false},
		{"empty", tags.Command{}, true},
		{"whitespace only", tags.Command{Name: "   "}, true},
		{"over max length", tags.Command{Name: strings.Repeat("a", tags.MaxNameLength+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.command.Validate()
			if tt.wantErr && !errors.Is(err, tags.ErrInvalidTag) {
				t.Errorf("error = %v, want ErrInvalidTag", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
