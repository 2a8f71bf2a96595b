package vault

import (
	"time"
)

// File is a vault entry owned by exactly one folder. FolderID is never
// empty: a file with no folder would be unreachable from the UI tree,
// so the registry refuses to create one.
type File struct {
	ID           string    `json:"id" db:"id"`
	ProjectID    string    `json:"project_id" db:"project_id"`
	FolderID     string    `json:"folder_id" db:"folder_id"`
	Name         string    `json:"name" db:"name"`
	UploadedByID string    `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
