package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
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

var folderNamePattern = regexp.MustCompile(`^[^/]+$`)

type folderService struct {
	folderRepo vaultRepo.FolderRepository
	txManager  repositories.TransactionManager
	guard      vaultSvc.AccessGuard
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo vaultRepo.FolderRepository,
	txManager repositories.TransactionManager,
	guard vaultSvc.AccessGuard,
	logger *slog.Logger,
) vaultSvc.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		txManager:  txManager,
		guard:      guard,
		logger:     logger,
	}
}

// CreateFolder creates a new folder, optionally under a parent in the same
// project
func (s *folderService) CreateFolder(ctx context.Context, actor models.Principal, req *vaultSvc.CreateFolderRequest) (*models.Folder, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.guard.Authorize(ctx, actor, req.ProjectID); err != nil {
		return nil, err
	}

	// A supplied parent must resolve within the target project; a parent
	// from another project is invalid input, not a missing resource.
	if req.ParentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentID, req.ProjectID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ValidationError{
					Message: fmt.Sprintf("parent folder %s does not belong to project %s", *req.ParentID, req.ProjectID),
				}
			}
			return nil, err
		}
	}

	now := time.Now()
	folder := &models.Folder{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		ParentID:  req.ParentID,
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"project_id", folder.ProjectID,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// Reparent moves a folder under a new parent. The cycle check walks the
// parent chain from the proposed parent up to the root and rejects the move
// if the folder being moved appears in that walk. Both the check and the
// update run inside one transaction so two concurrent reparents cannot each
// pass the pre-check and together close a loop.
func (s *folderService) Reparent(ctx context.Context, actor models.Principal, req *vaultSvc.ReparentRequest) (*models.Folder, error) {
	if err := requireID("project id", req.ProjectID); err != nil {
		return nil, err
	}
	if err := requireID("folder id", req.FolderID); err != nil {
		return nil, err
	}
	if req.NewParentID != nil {
		if err := requireID("new parent id", *req.NewParentID); err != nil {
			return nil, err
		}
	}

	if err := s.guard.Authorize(ctx, actor, req.ProjectID); err != nil {
		return nil, err
	}

	var moved *models.Folder
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folder, err := s.folderRepo.GetByID(txCtx, req.FolderID, req.ProjectID)
		if err != nil {
			return err
		}

		if req.NewParentID != nil {
			if *req.NewParentID == folder.ID {
				return &domain.CycleError{FolderID: folder.ID}
			}

			chain, err := s.walkToRoot(txCtx, req.ProjectID, *req.NewParentID)
			if err != nil {
				return err
			}
			for i := range chain {
				if chain[i].ID == folder.ID {
					return &domain.CycleError{FolderID: folder.ID}
				}
			}
		}

		if err := s.folderRepo.SetParent(txCtx, folder.ID, req.ProjectID, req.NewParentID); err != nil {
			return err
		}

		folder.ParentID = req.NewParentID
		moved = folder
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder reparented",
		"id", moved.ID,
		"project_id", moved.ProjectID,
		"new_parent_id", moved.ParentID,
	)

	return moved, nil
}

// ListChildren lists the immediate children of a folder (nil = roots)
func (s *folderService) ListChildren(ctx context.Context, actor models.Principal, projectID string, parentID *string) ([]models.Folder, error) {
	if err := requireID("project id", projectID); err != nil {
		return nil, err
	}
	if parentID != nil {
		if err := requireID("parent id", *parentID); err != nil {
			return nil, err
		}
	}

	if err := s.guard.Authorize(ctx, actor, projectID); err != nil {
		return nil, err
	}

	if parentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *parentID, projectID); err != nil {
			return nil, err
		}
	}

	return s.folderRepo.ListChildren(ctx, parentID, projectID)
}

// ResolvePath walks parent links from the folder to the root and returns
// the chain in root-to-leaf order, with display paths filled in.
func (s *folderService) ResolvePath(ctx context.Context, actor models.Principal, projectID, folderID string) ([]models.Folder, error) {
	if err := requireID("project id", projectID); err != nil {
		return nil, err
	}
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, projectID); err != nil {
		return nil, err
	}

	chain, err := s.walkToRoot(ctx, projectID, folderID)
	if err != nil {
		return nil, err
	}

	// walkToRoot returns leaf-first; reverse into root-to-leaf order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	var prefix string
	for i := range chain {
		if prefix == "" {
			chain[i].Path = chain[i].Name
		} else {
			chain[i].Path = prefix + "/" + chain[i].Name
		}
		prefix = chain[i].Path
	}

	return chain, nil
}

// walkToRoot follows parent links from startID upward, returning the chain
// leaf-first. A dangling parent reference or a walk longer than
// MaxFolderDepth is a CorruptHierarchyError: data integrity is broken and
// the error is logged loudly rather than recovered.
func (s *folderService) walkToRoot(ctx context.Context, projectID, startID string) ([]models.Folder, error) {
	var chain []models.Folder

	current, err := s.folderRepo.GetByID(ctx, startID, projectID)
	if err != nil {
		return nil, err
	}
	chain = append(chain, *current)

	for current.ParentID != nil {
		if len(chain) >= config.MaxFolderDepth {
			corrupt := &domain.CorruptHierarchyError{FolderID: current.ID, ParentID: *current.ParentID}
			s.logger.Error("folder hierarchy exceeds depth cap, assuming cycle",
				"project_id", projectID,
				"folder_id", current.ID,
				"depth", len(chain),
			)
			return nil, corrupt
		}

		parent, err := s.folderRepo.GetByID(ctx, *current.ParentID, projectID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				corrupt := &domain.CorruptHierarchyError{FolderID: current.ID, ParentID: *current.ParentID}
				s.logger.Error("broken folder parent chain",
					"project_id", projectID,
					"folder_id", current.ID,
					"missing_parent_id", *current.ParentID,
				)
				return nil, corrupt
			}
			return nil, err
		}

		chain = append(chain, *parent)
		current = parent
	}

	return chain, nil
}

// validateCreateRequest validates a folder creation request
func (s *folderService) validateCreateRequest(req *vaultSvc.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ProjectID, validation.Required, validation.By(validUUID)),
		validation.Field(&req.ParentID, validation.By(validOptionalUUID)),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
			validation.Match(folderNamePattern).Error("folder name cannot contain slashes"),
		),
	)
}

// validOptionalUUID validates a nullable id field.
func validOptionalUUID(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	return validUUID(*s)
}
