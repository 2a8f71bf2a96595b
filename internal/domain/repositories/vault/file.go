package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// FileRepository defines data access operations for files
type FileRepository interface {
	// Create creates a new file record
	Create(ctx context.Context, file *vault.File) error

	// GetByID retrieves a file by ID
	GetByID(ctx context.Context, id string) (*vault.File, error)

	// ListByFolder lists the files owned directly by a folder. The match
	// is exact: descendant folders' files are never included.
	ListByFolder(ctx context.Context, folderID, projectID string) ([]vault.File, error)

	// SetFolder moves a file to another folder in the same project
	SetFolder(ctx context.Context, id, projectID, folderID string) error
}
