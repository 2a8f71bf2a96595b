package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultElevatedRoles(t *testing.T) {
	roles := DefaultElevatedRoles()
	assert.True(t, roles["admin"])
	assert.True(t, roles["superuser"])
	assert.False(t, roles["user"])
	assert.False(t, roles["project_leader"])
}

func TestLoadElevatedRoles_EmptyPathUsesDefaults(t *testing.T) {
	roles, err := LoadElevatedRoles("")
	require.NoError(t, err)
	assert.Equal(t, DefaultElevatedRoles(), roles)
}

func TestLoadElevatedRoles_FileReplacesSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	content := "elevated_roles:\n  - superuser\n  - auditor\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	roles, err := LoadElevatedRoles(path)
	require.NoError(t, err)
	assert.True(t, roles["superuser"])
	assert.True(t, roles["auditor"])

	// Replacement, not extension: admin lost its bypass
	assert.False(t, roles["admin"])
}

func TestLoadElevatedRoles_EmptySetRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elevated_roles: []\n"), 0o600))

	_, err := LoadElevatedRoles(path)
	assert.Error(t, err)
}

func TestLoadElevatedRoles_MissingFile(t *testing.T) {
	_, err := LoadElevatedRoles(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
