package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// VersionService handles the append-only version chain of a file
type VersionService interface {
	// AddVersion appends a new version with the next contiguous number.
	// Concurrent uploads for the same file race on the number; the loser
	// receives domain.ErrVersionConflict and may retry.
	AddVersion(ctx context.Context, actor vault.Principal, req *AddVersionRequest) (*vault.PDFVersion, error)

	// ListVersions lists a file's versions ordered ascending
	ListVersions(ctx context.Context, actor vault.Principal, fileID string) ([]vault.PDFVersion, error)

	// GetVersion retrieves a version by ID
	GetVersion(ctx context.Context, actor vault.Principal, versionID string) (*vault.PDFVersion, error)
}

// AddVersionRequest represents a version upload request
type AddVersionRequest struct {
	FileID      string `json:"file_id"`
	ContentRef  string `json:"content_ref"`
	Description string `json:"description"`
}
