package vault

import (
	"context"

	"vault/internal/domain/models/vault"
)

// MaintenanceService holds batch corrections operated outside the normal
// request flow. Each operation is a single transaction: it either applies
// completely or leaves the hierarchy untouched.
type MaintenanceService interface {
	// LinearizeChain re-parents the named folders into one chain in list
	// order: the first becomes a root, each subsequent folder becomes a
	// child of its predecessor. Fails with domain.MissingFoldersError
	// (listing the unresolved names) before touching anything.
	LinearizeChain(ctx context.Context, actor vault.Principal, projectID string, orderedNames []string) error
}
