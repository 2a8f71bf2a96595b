package vault

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
	vaultSvc "vault/internal/domain/services/vault"
)

func (e *testEnv) seedVersion(t *testing.T, owner models.Principal, fileID string) *models.PDFVersion {
	t.Helper()

	version, err := e.versions.AddVersion(context.Background(), owner, &vaultSvc.AddVersionRequest{
		FileID:     fileID,
		ContentRef: uuid.NewString(),
	})
	require.NoError(t, err)
	return version
}

func validRect() models.Rect {
	return models.Rect{X: 10, Y: 20, Width: 100, Height: 50, PageNumber: 1}
}

func TestAddAnnotation(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	file := env.seedFile(t, owner, project.ID, folder.ID, "plan.pdf")
	version := env.seedVersion(t, owner, file.ID)

	comment := "check this dimension"
	annotation, err := env.annotations.AddAnnotation(context.Background(), owner, &vaultSvc.AddAnnotationRequest{
		VersionID: version.ID,
		Rect:      validRect(),
		Color:     "#ff0000",
		Comment:   &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNewComment, annotation.Status)
	assert.Equal(t, owner.UserID, annotation.CreatedByID)
}

func TestAddAnnotation_RejectsDegenerateRects(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	file := env.seedFile(t, owner, project.ID, folder.ID, "plan.pdf")
	version := env.seedVersion(t, owner, file.ID)

	cases := map[string]models.Rect{
		"zero width":      {X: 10, Y: 10, Width: 0, Height: 50, PageNumber: 1},
		"negative height": {X: 10, Y: 10, Width: 100, Height: -1, PageNumber: 1},
		"negative origin": {X: -5, Y: 10, Width: 100, Height: 50, PageNumber: 1},
		"page zero":       {X: 10, Y: 10, Width: 100, Height: 50, PageNumber: 0},
	}

	for name, rect := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.annotations.AddAnnotation(context.Background(), owner, &vaultSvc.AddAnnotationRequest{
				VersionID: version.ID,
				Rect:      rect,
			})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// Statuses form a flat vocabulary: any recognized status may follow any
// other, including leaving resolved.
func TestSetStatus_AnyToAny(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	file := env.seedFile(t, owner, project.ID, folder.ID, "plan.pdf")
	version := env.seedVersion(t, owner, file.ID)

	annotation, err := env.annotations.AddAnnotation(context.Background(), owner, &vaultSvc.AddAnnotationRequest{
		VersionID: version.ID,
		Rect:      validRect(),
	})
	require.NoError(t, err)

	sequence := []models.AnnotationStatus{
		models.StatusActionRequired,
		models.StatusResolved,
		models.StatusRejected,
		models.StatusOtherForum,
		models.StatusNewReview,
		models.StatusNewComment,
	}
	for _, status := range sequence {
		updated, err := env.annotations.SetStatus(context.Background(), owner, annotation.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestSetStatus_UnknownStatusRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	file := env.seedFile(t, owner, project.ID, folder.ID, "plan.pdf")
	version := env.seedVersion(t, owner, file.ID)

	annotation, err := env.annotations.AddAnnotation(context.Background(), owner, &vaultSvc.AddAnnotationRequest{
		VersionID: version.ID,
		Rect:      validRect(),
	})
	require.NoError(t, err)

	_, err = env.annotations.SetStatus(context.Background(), owner, annotation.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Status unchanged after the rejected assignment
	listed, err := env.annotations.ListAnnotations(context.Background(), owner, version.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.StatusNewComment, listed[0].Status)
}

func TestListAnnotations_DeniedForNonMember(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	file := env.seedFile(t, owner, project.ID, folder.ID, "plan.pdf")
	version := env.seedVersion(t, owner, file.ID)

	outsider := newMember()
	_, err := env.annotations.ListAnnotations(context.Background(), outsider, version.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
