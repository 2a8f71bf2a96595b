package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// FolderService handles folder-tree business logic
type FolderService interface {
	// CreateFolder creates a new folder, optionally under a parent
	CreateFolder(ctx context.Context, actor vault.Principal, req *CreateFolderRequest) (*vault.Folder, error)

	// Reparent moves a folder under a new parent (nil = project root).
	// Fails with domain.ErrCycle if the new parent is the folder itself
	// or one of its descendants.
	Reparent(ctx context.Context, actor vault.Principal, req *ReparentRequest) (*vault.Folder, error)

	// ListChildren lists the immediate children of a folder (nil = roots)
	ListChildren(ctx context.Context, actor vault.Principal, projectID string, parentID *string) ([]vault.Folder, error)

	// ResolvePath walks parent links and returns the root-to-leaf chain
	ResolvePath(ctx context.Context, actor vault.Principal, projectID, folderID string) ([]vault.Folder, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	ProjectID string  `json:"project_id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parent_id,omitempty"` // null for root
}

// ReparentRequest represents a folder move request
type ReparentRequest struct {
	ProjectID   string  `json:"project_id"`
	FolderID    string  `json:"folder_id"`
	NewParentID *string `json:"new_parent_id,omitempty"` // null moves to root
}
