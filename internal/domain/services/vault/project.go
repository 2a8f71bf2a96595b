package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// ProjectService handles project and membership administration
type ProjectService interface {
	// CreateProject creates a project owned by the actor, who receives a
	// project_leader membership in the same transaction
	CreateProject(ctx context.Context, actor vault.Principal, req *CreateProjectRequest) (*vault.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, actor vault.Principal, projectID string) (*vault.Project, error)

	// ListProjects lists the actor's projects
	ListProjects(ctx context.Context, actor vault.Principal) ([]vault.Project, error)

	// AddMember grants a user a role in a project. Only project leaders
	// and elevated roles may administer memberships.
	AddMember(ctx context.Context, actor vault.Principal, req *AddMemberRequest) (*vault.ProjectMembership, error)

	// RemoveMember revokes a user's membership
	RemoveMember(ctx context.Context, actor vault.Principal, projectID, userID string) error

	// ListMembers lists a project's memberships
	ListMembers(ctx context.Context, actor vault.Principal, projectID string) ([]vault.ProjectMembership, error)
}

// CreateProjectRequest represents a project creation request
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest represents a membership grant request
type AddMemberRequest struct {
	ProjectID string     `json:"project_id"`
	UserID    string     `json:"user_id"`
	Role      vault.Role `json:"role"`
}
