package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// MembershipRepository defines data access operations for project
// memberships. It is the read-only oracle the access guard consults;
// writes happen only through membership administration.
type MembershipRepository interface {
	// Create adds a membership row
	Create(ctx context.Context, m *vault.ProjectMembership) error

	// Get retrieves the membership for (userID, projectID), or
	// domain.ErrNotFound if the user holds none.
	Get(ctx context.Context, userID, projectID string) (*vault.ProjectMembership, error)

	// Delete removes a membership row
	Delete(ctx context.Context, userID, projectID string) error

	// ListByProject lists all memberships of a project
	ListByProject(ctx context.Context, projectID string) ([]vault.ProjectMembership, error)
}
