package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// VersionRepository defines data access operations for the per-file version
// chain. Versions are append-only; there is no update or delete.
type VersionRepository interface {
	// Create inserts a version with its number already assigned. A
	// duplicate (file_id, version_number) pair surfaces as
	// domain.ErrVersionConflict.
	Create(ctx context.Context, version *vault.PDFVersion) error

	// NextVersionNumber computes max(version_number)+1 for a file, or 1
	// if the file has no versions. Callers must invoke it inside the
	// same transaction as Create.
	NextVersionNumber(ctx context.Context, fileID string) (int, error)

	// GetByID retrieves a version by ID
	GetByID(ctx context.Context, id string) (*vault.PDFVersion, error)

	// ListByFile lists a file's versions ordered by version number ascending
	ListByFile(ctx context.Context, fileID string) ([]vault.PDFVersion, error)
}
