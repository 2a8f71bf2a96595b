package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create creates a new folder
	Create(ctx context.Context, folder *vault.Folder) error

	// GetByID retrieves a folder by ID within a project
	GetByID(ctx context.Context, id, projectID string) (*vault.Folder, error)

	// SetParent updates a folder's parent pointer
	SetParent(ctx context.Context, id, projectID string, parentID *string) error

	// ListChildren lists immediate child folders (nil parentID = roots)
	ListChildren(ctx context.Context, parentID *string, projectID string) ([]vault.Folder, error)

	// GetAllByProject retrieves all folders in a project (flat list)
	GetAllByProject(ctx context.Context, projectID string) ([]vault.Folder, error)
}
