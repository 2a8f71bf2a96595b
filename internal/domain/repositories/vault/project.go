package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// ProjectRepository defines data access operations for projects.
// Projects are never deleted through the vault.
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *vault.Project) error

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id string) (*vault.Project, error)

	// ListByMember retrieves the projects a user holds a membership in
	ListByMember(ctx context.Context, userID string) ([]vault.Project, error)
}
