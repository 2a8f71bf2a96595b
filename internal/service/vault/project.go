package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"vault/internal/config"
	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
	"vault/internal/domain/repositories"
	vaultRepo "vault/internal/domain/repositories/vault"
	vaultSvc "vault/internal/domain/services/vault"
)

type projectService struct {
	projectRepo    vaultRepo.ProjectRepository
	membershipRepo vaultRepo.MembershipRepository
	txManager      repositories.TransactionManager
	guard          vaultSvc.AccessGuard
	elevated       config.ElevatedRoles
	logger         *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo vaultRepo.ProjectRepository,
	membershipRepo vaultRepo.MembershipRepository,
	txManager repositories.TransactionManager,
	guard vaultSvc.AccessGuard,
	elevated config.ElevatedRoles,
	logger *slog.Logger,
) vaultSvc.ProjectService {
	return &projectService{
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		txManager:      txManager,
		guard:          guard,
		elevated:       elevated,
		logger:         logger,
	}
}

// CreateProject creates a project and grants the creator a project_leader
// membership in the same transaction.
func (s *projectService) CreateProject(ctx context.Context, actor models.Principal, req *vaultSvc.CreateProjectRequest) (*models.Project, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
		),
	); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	now := time.Now()
	project := &models.Project{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		OwnerID:   actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.projectRepo.Create(txCtx, project); err != nil {
			return err
		}
		return s.membershipRepo.Create(txCtx, &models.ProjectMembership{
			UserID:    actor.UserID,
			ProjectID: project.ID,
			Role:      models.RoleProjectLeader,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"owner_id", project.OwnerID,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, actor models.Principal, projectID string) (*models.Project, error) {
	if err := requireID("project id", projectID); err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, projectID); err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(ctx, projectID)
}

// ListProjects lists the projects the actor holds a membership in
func (s *projectService) ListProjects(ctx context.Context, actor models.Principal) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByMember(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// AddMember grants a user a role in a project
func (s *projectService) AddMember(ctx context.Context, actor models.Principal, req *vaultSvc.AddMemberRequest) (*models.ProjectMembership, error) {
	if err := requireID("project id", req.ProjectID); err != nil {
		return nil, err
	}
	if err := requireID("user id", req.UserID); err != nil {
		return nil, err
	}
	if !req.Role.Valid() {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown role %q", req.Role)}
	}

	if err := s.authorizeAdmin(ctx, actor, req.ProjectID); err != nil {
		return nil, err
	}

	membership := &models.ProjectMembership{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Role:      req.Role,
		CreatedAt: time.Now(),
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	s.logger.Info("member added",
		"project_id", membership.ProjectID,
		"user_id", membership.UserID,
		"role", membership.Role,
		"actor", actor.UserID,
	)

	return membership, nil
}

// RemoveMember revokes a user's membership
func (s *projectService) RemoveMember(ctx context.Context, actor models.Principal, projectID, userID string) error {
	if err := requireID("project id", projectID); err != nil {
		return err
	}
	if err := requireID("user id", userID); err != nil {
		return err
	}

	if err := s.authorizeAdmin(ctx, actor, projectID); err != nil {
		return err
	}

	if err := s.membershipRepo.Delete(ctx, userID, projectID); err != nil {
		return err
	}

	s.logger.Info("member removed",
		"project_id", projectID,
		"user_id", userID,
		"actor", actor.UserID,
	)

	return nil
}

// ListMembers lists a project's memberships
func (s *projectService) ListMembers(ctx context.Context, actor models.Principal, projectID string) ([]models.ProjectMembership, error) {
	if err := requireID("project id", projectID); err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, projectID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if memberships == nil {
		memberships = []models.ProjectMembership{}
	}
	return memberships, nil
}

// authorizeAdmin allows elevated roles and project leaders; plain members
// cannot administer memberships.
func (s *projectService) authorizeAdmin(ctx context.Context, actor models.Principal, projectID string) error {
	if s.elevated[string(actor.Role)] {
		return nil
	}

	membership, err := s.membershipRepo.Get(ctx, actor.UserID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ForbiddenError{Message: "not a project member"}
		}
		return fmt.Errorf("membership lookup: %w", err)
	}
	if membership.Role != models.RoleProjectLeader {
		return &domain.ForbiddenError{Message: "membership administration requires project_leader"}
	}

	return nil
}
