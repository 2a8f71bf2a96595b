package vault

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"vault/internal/config"
	models "vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
	vaultSvc "vault/internal/domain/services/vault"
	"vault/internal/repository/memory"
)

// testEnv wires every service against a shared in-memory store, the same
// way main wires them against postgres.
type testEnv struct {
	guard       vaultSvc.AccessGuard
	projects    vaultSvc.ProjectService
	folders     vaultSvc.FolderService
	files       vaultSvc.FileService
	versions    vaultSvc.VersionService
	annotations vaultSvc.AnnotationService
	maintenance vaultSvc.MaintenanceService

	// Direct repository access for corrupting state in integrity tests
	folderRepo  vaultRepo.FolderRepository
	versionRepo vaultRepo.VersionRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	txManager := store.TransactionManager()

	projectRepo := memory.NewProjectRepository(store)
	folderRepo := memory.NewFolderRepository(store)
	fileRepo := memory.NewFileRepository(store)
	versionRepo := memory.NewVersionRepository(store)
	annotationRepo := memory.NewAnnotationRepository(store)
	membershipRepo := memory.NewMembershipRepository(store)

	elevated := config.DefaultElevatedRoles()
	guard := NewAccessGuard(membershipRepo, elevated, logger)

	return &testEnv{
		guard:       guard,
		projects:    NewProjectService(projectRepo, membershipRepo, txManager, guard, elevated, logger),
		folders:     NewFolderService(folderRepo, txManager, guard, logger),
		files:       NewFileService(fileRepo, folderRepo, guard, logger),
		versions:    NewVersionService(versionRepo, fileRepo, txManager, guard, logger),
		annotations: NewAnnotationService(annotationRepo, versionRepo, fileRepo, guard, logger),
		maintenance: NewMaintenanceService(folderRepo, txManager, guard, logger),
		folderRepo:  folderRepo,
		versionRepo: versionRepo,
	}
}

func newMember() models.Principal {
	return models.Principal{UserID: uuid.NewString(), Role: models.RoleUser}
}

// seedProject creates a project owned by the given principal, which also
// grants them a project_leader membership.
func (e *testEnv) seedProject(t *testing.T, owner models.Principal) *models.Project {
	t.Helper()

	project, err := e.projects.CreateProject(context.Background(), owner, &vaultSvc.CreateProjectRequest{Name: "test project"})
	require.NoError(t, err)
	return project
}

func (e *testEnv) seedFolder(t *testing.T, owner models.Principal, projectID, name string, parentID *string) *models.Folder {
	t.Helper()

	folder, err := e.folders.CreateFolder(context.Background(), owner, &vaultSvc.CreateFolderRequest{
		ProjectID: projectID,
		Name:      name,
		ParentID:  parentID,
	})
	require.NoError(t, err)
	return folder
}

func (e *testEnv) seedFile(t *testing.T, owner models.Principal, projectID, folderID, name string) *models.File {
	t.Helper()

	file, err := e.files.CreateFile(context.Background(), owner, &vaultSvc.CreateFileRequest{
		ProjectID: projectID,
		FolderID:  folderID,
		Name:      name,
	})
	require.NoError(t, err)
	return file
}
