package vault

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/domain"
	vaultSvc "vault/internal/domain/services/vault"
)

func TestCreateFile(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)

	file := env.seedFile(t, owner, project.ID, folder.ID, "plan.pdf")
	assert.Equal(t, folder.ID, file.FolderID)
	assert.Equal(t, project.ID, file.ProjectID)
	assert.Equal(t, owner.UserID, file.UploadedByID)
}

func TestCreateFile_MissingFolder(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	_, err := env.files.CreateFile(context.Background(), owner, &vaultSvc.CreateFileRequest{
		ProjectID: project.ID,
		FolderID:  uuid.NewString(),
		Name:      "plan.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateFile_FolderRequired(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	_, err := env.files.CreateFile(context.Background(), owner, &vaultSvc.CreateFileRequest{
		ProjectID: project.ID,
		Name:      "plan.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// A listing without a folder id is invalid input, not an empty result. An
// empty slice is reserved for a real folder that has no files.
func TestListFiles_FolderIDMandatory(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	_, err := env.files.ListFiles(context.Background(), owner, project.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	folder := env.seedFolder(t, owner, project.ID, "Empty", nil)
	files, err := env.files.ListFiles(context.Background(), owner, project.ID, folder.ID)
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestListFiles(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	other := env.seedFolder(t, owner, project.ID, "Other", nil)
	env.seedFile(t, owner, project.ID, folder.ID, "a.pdf")
	env.seedFile(t, owner, project.ID, folder.ID, "b.pdf")
	env.seedFile(t, owner, project.ID, other.ID, "c.pdf")

	files, err := env.files.ListFiles(context.Background(), owner, project.ID, folder.ID)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestGetFile_DeniedForNonMember(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	folder := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	file := env.seedFile(t, owner, project.ID, folder.ID, "plan.pdf")

	outsider := newMember()
	_, err := env.files.GetFile(context.Background(), outsider, file.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMoveFile(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	src := env.seedFolder(t, owner, project.ID, "Src", nil)
	dst := env.seedFolder(t, owner, project.ID, "Dst", nil)
	file := env.seedFile(t, owner, project.ID, src.ID, "plan.pdf")

	moved, err := env.files.MoveFile(context.Background(), owner, &vaultSvc.MoveFileRequest{
		ProjectID: project.ID,
		FileID:    file.ID,
		FolderID:  dst.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, dst.ID, moved.FolderID)
}

func TestMoveFile_CrossProjectDestinationRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	projectA := env.seedProject(t, owner)
	projectB := env.seedProject(t, owner)
	src := env.seedFolder(t, owner, projectA.ID, "Src", nil)
	foreign := env.seedFolder(t, owner, projectB.ID, "Foreign", nil)
	file := env.seedFile(t, owner, projectA.ID, src.ID, "plan.pdf")

	_, err := env.files.MoveFile(context.Background(), owner, &vaultSvc.MoveFileRequest{
		ProjectID: projectA.ID,
		FileID:    file.ID,
		FolderID:  foreign.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
