package permissions

import (
	"docuvault/pkg/query"
	"docuvault/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "permissions", "p").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("user_id", "UserID").
	Project("permission_type", "Type").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanPermission(s repository.Scanner) (Permission, error) {
	var p Permission
	err := s.Scan(
		&p.ID,
		&p.DocumentID,
		&p.UserID,
		&p.Type,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
