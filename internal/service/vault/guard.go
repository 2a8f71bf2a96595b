package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"vault/internal/config"
	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
	vaultSvc "vault/internal/domain/services/vault"
)

type accessGuard struct {
	memberships vaultRepo.MembershipRepository
	elevated    config.ElevatedRoles
	logger      *slog.Logger
}

// NewAccessGuard creates the access guard. The elevated set is a capability
// table consulted before the membership lookup, so role bypass stays a
// single auditable branch rather than behavior spread across services.
func NewAccessGuard(
	memberships vaultRepo.MembershipRepository,
	elevated config.ElevatedRoles,
	logger *slog.Logger,
) vaultSvc.AccessGuard {
	return &accessGuard{
		memberships: memberships,
		elevated:    elevated,
		logger:      logger,
	}
}

// Authorize allows elevated roles unconditionally, otherwise requires an
// explicit membership row. The deny message carries no detail about the
// project's contents: callers that fail here never reached an existence
// check.
func (g *accessGuard) Authorize(ctx context.Context, actor models.Principal, projectID string) error {
	if g.elevated[string(actor.Role)] {
		return nil
	}

	_, err := g.memberships.Get(ctx, actor.UserID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			g.logger.Debug("access denied",
				"user_id", actor.UserID,
				"project_id", projectID,
			)
			return &domain.ForbiddenError{Message: "not a project member"}
		}
		return fmt.Errorf("membership lookup: %w", err)
	}

	return nil
}
