package vault

import (
	"time"
)

// Role is a user's role, either globally (on the authenticated principal)
// or within a single project (on a membership row).
type Role string

const (
	RoleProjectLeader Role = "project_leader"
	RoleUser          Role = "user"
	RoleObserver      Role = "observer"
	RoleAdmin         Role = "admin"
	RoleSuperuser     Role = "superuser"
)

// Valid reports whether r is a recognized role literal.
func (r Role) Valid() bool {
	switch r {
	case RoleProjectLeader, RoleUser, RoleObserver, RoleAdmin, RoleSuperuser:
		return true
	}
	return false
}

// ProjectMembership grants a user a role within one project. Users whose
// global role is elevated (admin/superuser) do not need a row here.
type ProjectMembership struct {
	UserID    string    `json:"user_id" db:"user_id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Principal is the authenticated caller as supplied by the identity layer:
// a user id plus a global role. The vault treats it as a read-only fact.
type Principal struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
