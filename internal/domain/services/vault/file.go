package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// FileService handles the file registry: every file belongs to exactly one
// folder in exactly one project, verified on every write.
type FileService interface {
	// CreateFile registers a file in a folder
	CreateFile(ctx context.Context, actor vault.Principal, req *CreateFileRequest) (*vault.File, error)

	// ListFiles lists the files owned directly by a folder. The folder id
	// is mandatory: a project-wide listing is rejected rather than
	// silently widened.
	ListFiles(ctx context.Context, actor vault.Principal, projectID, folderID string) ([]vault.File, error)

	// GetFile retrieves a file by ID
	GetFile(ctx context.Context, actor vault.Principal, fileID string) (*vault.File, error)

	// MoveFile moves a file to another folder in the same project
	MoveFile(ctx context.Context, actor vault.Principal, req *MoveFileRequest) (*vault.File, error)
}

// CreateFileRequest represents a file registration request
type CreateFileRequest struct {
	ProjectID string `json:"project_id"`
	FolderID  string `json:"folder_id"`
	Name      string `json:"name"`
}

// MoveFileRequest represents a file move request
type MoveFileRequest struct {
	ProjectID string `json:"project_id"`
	FileID    string `json:"file_id"`
	FolderID  string `json:"folder_id"` // destination
}
