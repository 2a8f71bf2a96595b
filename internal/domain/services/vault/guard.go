package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// AccessGuard resolves allow/deny for a principal acting on a project.
// Every vault operation calls Authorize before touching any folder or file,
// so a denied caller never learns whether the target exists.
type AccessGuard interface {
	// Authorize returns nil to allow, or domain.ErrForbidden to deny.
	// Principals with an elevated global role are allowed without a
	// membership lookup.
	Authorize(ctx context.Context, actor vault.Principal, projectID string) error
}
