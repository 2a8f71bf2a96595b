package vault

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
)

func TestAuthorize_MemberAllowed(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	assert.NoError(t, env.guard.Authorize(context.Background(), owner, project.ID))
}

func TestAuthorize_NonMemberDenied(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	outsider := newMember()
	err := env.guard.Authorize(context.Background(), outsider, project.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// The denial carries no detail about the project's contents
	assert.NotContains(t, err.Error(), project.ID)
}

// Elevated roles bypass the membership lookup entirely, including for
// projects that do not exist.
func TestAuthorize_ElevatedBypass(t *testing.T) {
	env := newTestEnv(t)

	admin := models.Principal{UserID: uuid.NewString(), Role: models.RoleAdmin}
	superuser := models.Principal{UserID: uuid.NewString(), Role: models.RoleSuperuser}

	assert.NoError(t, env.guard.Authorize(context.Background(), admin, uuid.NewString()))
	assert.NoError(t, env.guard.Authorize(context.Background(), superuser, uuid.NewString()))
}

func TestAuthorize_ObserverIsStillMember(t *testing.T) {
	env := newTestEnv(t)
	owner := newMember()
	project := env.seedProject(t, owner)

	observer := models.Principal{UserID: uuid.NewString(), Role: models.RoleObserver}
	addObserver(t, env, owner, project.ID, observer.UserID)

	assert.NoError(t, env.guard.Authorize(context.Background(), observer, project.ID))
}
