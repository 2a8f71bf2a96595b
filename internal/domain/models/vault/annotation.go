package vault

import (
	"time"
)

// AnnotationStatus is the review state of an annotation. The six values
// form a flat vocabulary: any status may be assigned from any other, there
// is no enforced transition graph.
type AnnotationStatus string

const (
	StatusNewComment     AnnotationStatus = "new_comment"
	StatusActionRequired AnnotationStatus = "action_required"
	StatusRejected       AnnotationStatus = "rejected"
	StatusNewReview      AnnotationStatus = "new_review"
	StatusOtherForum     AnnotationStatus = "other_forum"
	StatusResolved       AnnotationStatus = "resolved"
)

// Valid reports whether s is one of the six recognized status literals.
func (s AnnotationStatus) Valid() bool {
	switch s {
	case StatusNewComment, StatusActionRequired, StatusRejected,
		StatusNewReview, StatusOtherForum, StatusResolved:
		return true
	}
	return false
}

// Rect is the page-anchored region an annotation covers. Coordinates are
// in PDF page units; PageNumber is 1-based.
type Rect struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PageNumber int     `json:"page_number"`
}

// Annotation is a spatial comment attached to one immutable PDF version.
// Versions never change, so annotations are the only mutable layer of the
// version chain, and only their status mutates after creation.
type Annotation struct {
	ID          string           `json:"id" db:"id"`
	VersionID   string           `json:"pdf_version_id" db:"pdf_version_id"`
	Rect        Rect             `json:"rect" db:"rect"`
	Color       string           `json:"color" db:"color"`
	Comment     *string          `json:"comment,omitempty" db:"comment"`
	Status      AnnotationStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	CreatedByID string           `json:"created_by" db:"created_by"`
}
