package vault

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vault/internal/config"
	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
	vaultSvc "vault/internal/domain/services/vault"
)

type annotationService struct {
	annotationRepo vaultRepo.AnnotationRepository
	versionRepo    vaultRepo.VersionRepository
	fileRepo       vaultRepo.FileRepository
	guard          vaultSvc.AccessGuard
	logger         *slog.Logger
}

// NewAnnotationService creates a new annotation service
func NewAnnotationService(
	annotationRepo vaultRepo.AnnotationRepository,
	versionRepo vaultRepo.VersionRepository,
	fileRepo vaultRepo.FileRepository,
	guard vaultSvc.AccessGuard,
	logger *slog.Logger,
) vaultSvc.AnnotationService {
	return &annotationService{
		annotationRepo: annotationRepo,
		versionRepo:    versionRepo,
		fileRepo:       fileRepo,
		guard:          guard,
		logger:         logger,
	}
}

// AddAnnotation attaches an annotation to a version. New annotations start
// in new_comment.
func (s *annotationService) AddAnnotation(ctx context.Context, actor models.Principal, req *vaultSvc.AddAnnotationRequest) (*models.Annotation, error) {
	if err := requireID("version id", req.VersionID); err != nil {
		return nil, err
	}
	if err := validateRect(req.Rect); err != nil {
		return nil, err
	}
	if req.Comment != nil && len(*req.Comment) > config.MaxCommentLength {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("comment exceeds %d characters", config.MaxCommentLength),
		}
	}

	if err := s.authorizeVersion(ctx, actor, req.VersionID); err != nil {
		return nil, err
	}

	annotation := &models.Annotation{
		ID:          uuid.NewString(),
		VersionID:   req.VersionID,
		Rect:        req.Rect,
		Color:       req.Color,
		Comment:     req.Comment,
		Status:      models.StatusNewComment,
		CreatedAt:   time.Now(),
		CreatedByID: actor.UserID,
	}

	if err := s.annotationRepo.Create(ctx, annotation); err != nil {
		return nil, err
	}

	s.logger.Info("annotation added",
		"id", annotation.ID,
		"version_id", annotation.VersionID,
		"page", annotation.Rect.PageNumber,
		"created_by", annotation.CreatedByID,
	)

	return annotation, nil
}

// SetStatus assigns a new review status by direct assignment. The status
// vocabulary is fixed but deliberately carries no transition graph: any
// recognized status may follow any other.
func (s *annotationService) SetStatus(ctx context.Context, actor models.Principal, annotationID string, status models.AnnotationStatus) (*models.Annotation, error) {
	if err := requireID("annotation id", annotationID); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("unknown annotation status %q", status),
		}
	}

	annotation, err := s.annotationRepo.GetByID(ctx, annotationID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeVersion(ctx, actor, annotation.VersionID); err != nil {
		return nil, err
	}

	if err := s.annotationRepo.SetStatus(ctx, annotationID, status); err != nil {
		return nil, err
	}

	previous := annotation.Status
	annotation.Status = status

	s.logger.Info("annotation status changed",
		"id", annotation.ID,
		"from", previous,
		"to", status,
		"actor", actor.UserID,
	)

	return annotation, nil
}

// ListAnnotations lists a version's annotations
func (s *annotationService) ListAnnotations(ctx context.Context, actor models.Principal, versionID string) ([]models.Annotation, error) {
	if err := requireID("version id", versionID); err != nil {
		return nil, err
	}

	if err := s.authorizeVersion(ctx, actor, versionID); err != nil {
		return nil, err
	}

	annotations, err := s.annotationRepo.ListByVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}
	if annotations == nil {
		annotations = []models.Annotation{}
	}
	return annotations, nil
}

// authorizeVersion resolves a version to its owning file's project and
// runs the guard on it.
func (s *annotationService) authorizeVersion(ctx context.Context, actor models.Principal, versionID string) error {
	version, err := s.versionRepo.GetByID(ctx, versionID)
	if err != nil {
		return err
	}

	file, err := s.fileRepo.GetByID(ctx, version.FileID)
	if err != nil {
		return err
	}

	return s.guard.Authorize(ctx, actor, file.ProjectID)
}

// validateRect rejects degenerate regions: a zero or negative extent, a
// negative origin, or a page below 1.
func validateRect(rect models.Rect) error {
	if rect.Width <= 0 || rect.Height <= 0 {
		return &domain.ValidationError{Message: "annotation rect must have positive width and height"}
	}
	if rect.X < 0 || rect.Y < 0 {
		return &domain.ValidationError{Message: "annotation rect origin cannot be negative"}
	}
	if rect.PageNumber < 1 {
		return &domain.ValidationError{Message: "annotation page number must be at least 1"}
	}
	return nil
}
