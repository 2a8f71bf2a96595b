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

func addObserver(t *testing.T, env *testEnv, leader models.Principal, projectID, userID string) {
	t.Helper()

	_, err := env.projects.AddMember(context.Background(), leader, &vaultSvc.AddMemberRequest{
		ProjectID: projectID,
		UserID:    userID,
		Role:      models.RoleObserver,
	})
	require.NoError(t, err)
}

func TestCreateProject_GrantsLeaderMembership(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	assert.Equal(t, owner.UserID, project.OwnerID)

	members, err := env.projects.ListMembers(context.Background(), owner, project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, models.RoleProjectLeader, members[0].Role)

	projects, err := env.projects.ListProjects(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)
}

func TestAddMember_RequiresLeaderOrElevated(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	member := newMember()
	addObserver(t, env, owner, project.ID, member.UserID)

	// A plain member cannot administer memberships
	_, err := env.projects.AddMember(context.Background(), member, &vaultSvc.AddMemberRequest{
		ProjectID: project.ID,
		UserID:    uuid.NewString(),
		Role:      models.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// An elevated principal can, without holding any membership
	admin := models.Principal{UserID: uuid.NewString(), Role: models.RoleAdmin}
	_, err = env.projects.AddMember(context.Background(), admin, &vaultSvc.AddMemberRequest{
		ProjectID: project.ID,
		UserID:    uuid.NewString(),
		Role:      models.RoleUser,
	})
	assert.NoError(t, err)
}

func TestAddMember_UnknownRoleRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	_, err := env.projects.AddMember(context.Background(), owner, &vaultSvc.AddMemberRequest{
		ProjectID: project.ID,
		UserID:    uuid.NewString(),
		Role:      "wizard",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemoveMember(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	member := newMember()
	addObserver(t, env, owner, project.ID, member.UserID)
	require.NoError(t, env.guard.Authorize(context.Background(), member, project.ID))

	require.NoError(t, env.projects.RemoveMember(context.Background(), owner, project.ID, member.UserID))

	err := env.guard.Authorize(context.Background(), member, project.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetProject_DeniedBeforeExistenceCheck(t *testing.T) {
	env := newTestEnv(t)
	outsider := newMember()

	// A non-member asking about a project that does not exist gets the
	// same denial as one asking about a real project.
	_, err := env.projects.GetProject(context.Background(), outsider, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
