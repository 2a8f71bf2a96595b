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
	vaultRepo "vault/internal/domain/repositories/vault"
	vaultSvc "vault/internal/domain/services/vault"
)

type fileService struct {
	fileRepo   vaultRepo.FileRepository
	folderRepo vaultRepo.FolderRepository
	guard      vaultSvc.AccessGuard
	logger     *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(
	fileRepo vaultRepo.FileRepository,
	folderRepo vaultRepo.FolderRepository,
	guard vaultSvc.AccessGuard,
	logger *slog.Logger,
) vaultSvc.FileService {
	return &fileService{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		guard:      guard,
		logger:     logger,
	}
}

// CreateFile registers a file in a folder. The folder is resolved before
// the insert: a file is never created against an unverified folder, which
// is what keeps orphaned files unreachable-by-no-UI-path impossible.
func (s *fileService) CreateFile(ctx context.Context, actor models.Principal, req *vaultSvc.CreateFileRequest) (*models.File, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	if err := s.guard.Authorize(ctx, actor, req.ProjectID); err != nil {
		return nil, err
	}

	folder, err := s.folderRepo.GetByID(ctx, req.FolderID, req.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{
				Message: fmt.Sprintf("folder %s not found in project %s", req.FolderID, req.ProjectID),
			}
		}
		return nil, err
	}

	now := time.Now()
	file := &models.File{
		ID:           uuid.NewString(),
		ProjectID:    folder.ProjectID,
		FolderID:     folder.ID,
		Name:         strings.TrimSpace(req.Name),
		UploadedByID: actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("file created",
		"id", file.ID,
		"name", file.Name,
		"project_id", file.ProjectID,
		"folder_id", file.FolderID,
		"uploaded_by", file.UploadedByID,
	)

	return file, nil
}

// ListFiles lists the files owned directly by a folder. Validation runs in
// a fixed order: project id well-formed, folder id present, then access,
// then folder existence. A request with no folder id is rejected outright;
// "all files in the project" is not a query this registry answers, and an
// empty slice is reserved for a validated folder with zero files.
func (s *fileService) ListFiles(ctx context.Context, actor models.Principal, projectID, folderID string) ([]models.File, error) {
	if err := requireID("project id", projectID); err != nil {
		return nil, err
	}
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, projectID); err != nil {
		return nil, err
	}

	if _, err := s.folderRepo.GetByID(ctx, folderID, projectID); err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ListByFolder(ctx, folderID, projectID)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []models.File{}
	}
	return files, nil
}

// GetFile retrieves a file by ID. The project is only known after the
// lookup, so the guard runs on the file's own project before anything is
// returned.
func (s *fileService) GetFile(ctx context.Context, actor models.Principal, fileID string) (*models.File, error) {
	if err := requireID("file id", fileID); err != nil {
		return nil, err
	}

	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, file.ProjectID); err != nil {
		return nil, err
	}

	return file, nil
}

// MoveFile moves a file to another folder in the same project
func (s *fileService) MoveFile(ctx context.Context, actor models.Principal, req *vaultSvc.MoveFileRequest) (*models.File, error) {
	if err := requireID("project id", req.ProjectID); err != nil {
		return nil, err
	}
	if err := requireID("file id", req.FileID); err != nil {
		return nil, err
	}
	if err := requireID("folder id", req.FolderID); err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, req.ProjectID); err != nil {
		return nil, err
	}

	file, err := s.fileRepo.GetByID(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if file.ProjectID != req.ProjectID {
		return nil, fmt.Errorf("file %s: %w", req.FileID, domain.ErrNotFound)
	}

	// Destination must pass the same folder-in-project verification as a
	// create; a cross-project move is not expressible.
	if _, err := s.folderRepo.GetByID(ctx, req.FolderID, req.ProjectID); err != nil {
		return nil, err
	}

	if err := s.fileRepo.SetFolder(ctx, req.FileID, req.ProjectID, req.FolderID); err != nil {
		return nil, err
	}

	file.FolderID = req.FolderID

	s.logger.Info("file moved",
		"id", file.ID,
		"project_id", file.ProjectID,
		"folder_id", file.FolderID,
	)

	return file, nil
}

func (s *fileService) validateCreateRequest(req *vaultSvc.CreateFileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ProjectID, validation.Required, validation.By(validUUID)),
		validation.Field(&req.FolderID, validation.Required, validation.By(validUUID)),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFileNameLength),
		),
	)
}
