// Package tags implements the tag domain for docuvault.
// Tags label documents for filtering and search; missing tags are created
// on demand during document upload.
package tags

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxNameLength is the maximum accepted tag name length.
const MaxNameLength = 50

// Tag represents a document label.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Command carries the data needed to create or rename a tag.
type Command struct {
	Name string `json:"name"`
}

// Validate checks the tag name against naming constraints.
func (c Command) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidTag)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf(
			"%w: name exceeds %d characters",
			ErrInvalidTag, MaxNameLength,
		)
	}
	return nil
}
