package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/domain"
	vaultSvc "vault/internal/domain/services/vault"
)

func TestCreateFolder(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	root := env.seedFolder(t, owner, project.ID, "Drawings", nil)
	assert.True(t, root.IsRoot())
	assert.Equal(t, project.ID, root.ProjectID)

	child := env.seedFolder(t, owner, project.ID, "Structural", &root.ID)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.ID, *child.ParentID)
}

func TestCreateFolder_RejectsSlashInName(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	_, err := env.folders.CreateFolder(context.Background(), owner, &vaultSvc.CreateFolderRequest{
		ProjectID: project.ID,
		Name:      "a/b",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateFolder_ParentFromOtherProjectRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	projectA := env.seedProject(t, owner)
	projectB := env.seedProject(t, owner)
	foreign := env.seedFolder(t, owner, projectB.ID, "Elsewhere", nil)

	_, err := env.folders.CreateFolder(context.Background(), owner, &vaultSvc.CreateFolderRequest{
		ProjectID: projectA.ID,
		Name:      "Orphan",
		ParentID:  &foreign.ID,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReparent_MoveToRootAndBack(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	a := env.seedFolder(t, owner, project.ID, "A", nil)
	b := env.seedFolder(t, owner, project.ID, "B", &a.ID)

	moved, err := env.folders.Reparent(context.Background(), owner, &vaultSvc.ReparentRequest{
		ProjectID:   project.ID,
		FolderID:    b.ID,
		NewParentID: nil,
	})
	require.NoError(t, err)
	assert.Nil(t, moved.ParentID)

	moved, err = env.folders.Reparent(context.Background(), owner, &vaultSvc.ReparentRequest{
		ProjectID:   project.ID,
		FolderID:    b.ID,
		NewParentID: &a.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, a.ID, *moved.ParentID)
}

// Moving a folder under its own descendant must fail and leave every
// parent link untouched.
func TestReparent_RejectsCycle(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	a := env.seedFolder(t, owner, project.ID, "A", nil)
	b := env.seedFolder(t, owner, project.ID, "B", &a.ID)
	c := env.seedFolder(t, owner, project.ID, "C", &b.ID)

	_, err := env.folders.Reparent(context.Background(), owner, &vaultSvc.ReparentRequest{
		ProjectID:   project.ID,
		FolderID:    a.ID,
		NewParentID: &c.ID,
	})
	assert.ErrorIs(t, err, domain.ErrCycle)

	// Hierarchy unchanged: path of C is still A/B/C
	chain, err := env.folders.ResolvePath(context.Background(), owner, project.ID, c.ID)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, "A/B/C", chain[2].Path)
}

func TestReparent_SelfParentRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	a := env.seedFolder(t, owner, project.ID, "A", nil)

	_, err := env.folders.Reparent(context.Background(), owner, &vaultSvc.ReparentRequest{
		ProjectID:   project.ID,
		FolderID:    a.ID,
		NewParentID: &a.ID,
	})
	assert.ErrorIs(t, err, domain.ErrCycle)
}

func TestListChildren(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	a := env.seedFolder(t, owner, project.ID, "A", nil)
	env.seedFolder(t, owner, project.ID, "B", &a.ID)
	env.seedFolder(t, owner, project.ID, "C", &a.ID)

	roots, err := env.folders.ListChildren(context.Background(), owner, project.ID, nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].Name)

	children, err := env.folders.ListChildren(context.Background(), owner, project.ID, &a.ID)
	require.NoError(t, err)
	assert.Len(t, children, 2)
}

func TestResolvePath(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	a := env.seedFolder(t, owner, project.ID, "A", nil)
	b := env.seedFolder(t, owner, project.ID, "B", &a.ID)
	c := env.seedFolder(t, owner, project.ID, "C", &b.ID)

	chain, err := env.folders.ResolvePath(context.Background(), owner, project.ID, c.ID)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, []string{"A", "A/B", "A/B/C"}, []string{chain[0].Path, chain[1].Path, chain[2].Path})
	assert.Equal(t, a.ID, chain[0].ID)
	assert.Equal(t, c.ID, chain[2].ID)
}

// A parent link pointing at a folder that no longer resolves is a data
// integrity fault, surfaced as a distinct error rather than a not-found.
func TestResolvePath_DanglingParentIsCorruptHierarchy(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	a := env.seedFolder(t, owner, project.ID, "A", nil)

	missing := "0191d7e0-0000-7000-8000-000000000000"
	require.NoError(t, env.folderRepo.SetParent(context.Background(), a.ID, project.ID, &missing))

	_, err := env.folders.ResolvePath(context.Background(), owner, project.ID, a.ID)
	assert.ErrorIs(t, err, domain.ErrCorruptHierarchy)
}

// A cycle already present in stored data trips the depth cap instead of
// hanging the walk.
func TestResolvePath_StoredCycleDetected(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)
	a := env.seedFolder(t, owner, project.ID, "A", nil)
	b := env.seedFolder(t, owner, project.ID, "B", &a.ID)

	// Close a two-folder loop behind the service's back
	require.NoError(t, env.folderRepo.SetParent(context.Background(), a.ID, project.ID, &b.ID))

	_, err := env.folders.ResolvePath(context.Background(), owner, project.ID, a.ID)
	assert.ErrorIs(t, err, domain.ErrCorruptHierarchy)
}
