package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// AnnotationService handles spatial annotations on PDF versions
type AnnotationService interface {
	// AddAnnotation attaches an annotation to a version
	AddAnnotation(ctx context.Context, actor vault.Principal, req *AddAnnotationRequest) (*vault.Annotation, error)

	// SetStatus assigns a new review status. Any recognized status may
	// be assigned from any other; there is no transition graph.
	SetStatus(ctx context.Context, actor vault.Principal, annotationID string, status vault.AnnotationStatus) (*vault.Annotation, error)

	// ListAnnotations lists a version's annotations
	ListAnnotations(ctx context.Context, actor vault.Principal, versionID string) ([]vault.Annotation, error)
}

// AddAnnotationRequest represents an annotation creation request
type AddAnnotationRequest struct {
	VersionID string     `json:"pdf_version_id"`
	Rect      vault.Rect `json:"rect"`
	Color     string     `json:"color"`
	Comment   *string    `json:"comment,omitempty"`
}
