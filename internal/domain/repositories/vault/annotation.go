package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// AnnotationRepository defines data access operations for annotations
type AnnotationRepository interface {
	// Create creates a new annotation
	Create(ctx context.Context, annotation *vault.Annotation) error

	// GetByID retrieves an annotation by ID
	GetByID(ctx context.Context, id string) (*vault.Annotation, error)

	// SetStatus updates an annotation's review status
	SetStatus(ctx context.Context, id string, status vault.AnnotationStatus) error

	// ListByVersion lists a version's annotations ordered by creation time
	ListByVersion(ctx context.Context, versionID string) ([]vault.Annotation, error)
}
