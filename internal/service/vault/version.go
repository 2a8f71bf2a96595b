package vault

import (
	"context"
	"log/slog"
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

type versionService struct {
	versionRepo vaultRepo.VersionRepository
	fileRepo    vaultRepo.FileRepository
	txManager   repositories.TransactionManager
	guard       vaultSvc.AccessGuard
	logger      *slog.Logger
}

// NewVersionService creates a new version service
func NewVersionService(
	versionRepo vaultRepo.VersionRepository,
	fileRepo vaultRepo.FileRepository,
	txManager repositories.TransactionManager,
	guard vaultSvc.AccessGuard,
	logger *slog.Logger,
) vaultSvc.VersionService {
	return &versionService{
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
		txManager:   txManager,
		guard:       guard,
		logger:      logger,
	}
}

// AddVersion appends a new version to the file's chain. Number assignment
// and insert share one transaction; if a concurrent upload claims the same
// number first, the unique constraint turns this call into a
// VersionConflictError the caller may retry. Nothing is ever overwritten.
func (s *versionService) AddVersion(ctx context.Context, actor models.Principal, req *vaultSvc.AddVersionRequest) (*models.PDFVersion, error) {
	if err := s.validateAddRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	file, err := s.fileRepo.GetByID(ctx, req.FileID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, file.ProjectID); err != nil {
		return nil, err
	}

	var version *models.PDFVersion
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		next, err := s.versionRepo.NextVersionNumber(txCtx, file.ID)
		if err != nil {
			return err
		}

		version = &models.PDFVersion{
			ID:            uuid.NewString(),
			FileID:        file.ID,
			VersionNumber: next,
			ContentRef:    req.ContentRef,
			Description:   req.Description,
			UploadedAt:    time.Now(),
			UploadedByID:  actor.UserID,
		}

		return s.versionRepo.Create(txCtx, version)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("version added",
		"id", version.ID,
		"file_id", version.FileID,
		"version_number", version.VersionNumber,
		"uploaded_by", version.UploadedByID,
	)

	return version, nil
}

// ListVersions lists a file's versions ordered ascending
func (s *versionService) ListVersions(ctx context.Context, actor models.Principal, fileID string) ([]models.PDFVersion, error) {
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

	versions, err := s.versionRepo.ListByFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if versions == nil {
		versions = []models.PDFVersion{}
	}
	return versions, nil
}

// GetVersion retrieves a version by ID
func (s *versionService) GetVersion(ctx context.Context, actor models.Principal, versionID string) (*models.PDFVersion, error) {
	if err := requireID("version id", versionID); err != nil {
		return nil, err
	}

	version, err := s.versionRepo.GetByID(ctx, versionID)
	if err != nil {
		return nil, err
	}

	file, err := s.fileRepo.GetByID(ctx, version.FileID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(ctx, actor, file.ProjectID); err != nil {
		return nil, err
	}

	return version, nil
}

func (s *versionService) validateAddRequest(req *vaultSvc.AddVersionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FileID, validation.Required, validation.By(validUUID)),
		validation.Field(&req.ContentRef, validation.Required),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
	)
}
