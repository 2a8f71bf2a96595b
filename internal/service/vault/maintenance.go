package vault

import (
	"context"
	"fmt"
	"log/slog"

	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
	"vault/internal/domain/repositories"
	vaultRepo "vault/internal/domain/repositories/vault"
	vaultSvc "vault/internal/domain/services/vault"
)

type maintenanceService struct {
	folderRepo vaultRepo.FolderRepository
	txManager  repositories.TransactionManager
	guard      vaultSvc.AccessGuard
	logger     *slog.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	folderRepo vaultRepo.FolderRepository,
	txManager repositories.TransactionManager,
	guard vaultSvc.AccessGuard,
	logger *slog.Logger,
) vaultSvc.MaintenanceService {
	return &maintenanceService{
		folderRepo: folderRepo,
		txManager:  txManager,
		guard:      guard,
		logger:     logger,
	}
}

// LinearizeChain re-parents the named folders into a single chain in list
// order. The whole operation is one transaction: name resolution happens
// inside it, every name must resolve before the first parent changes, and
// a failure rolls back any partial re-linking. Chain entries must resolve
// to distinct folders; with that enforced, the produced shape is a straight
// chain and cannot introduce a cycle.
func (s *maintenanceService) LinearizeChain(ctx context.Context, actor models.Principal, projectID string, orderedNames []string) error {
	if err := requireID("project id", projectID); err != nil {
		return err
	}
	if len(orderedNames) == 0 {
		return &domain.ValidationError{Message: "at least one folder name is required"}
	}

	if err := s.guard.Authorize(ctx, actor, projectID); err != nil {
		return err
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folders, err := s.folderRepo.GetAllByProject(txCtx, projectID)
		if err != nil {
			return err
		}

		byName := make(map[string]*models.Folder, len(folders))
		for i := range folders {
			// First occurrence wins on duplicate names; the chain
			// targets one specific folder per name.
			if _, ok := byName[folders[i].Name]; !ok {
				byName[folders[i].Name] = &folders[i]
			}
		}

		var missing []string
		seen := make(map[string]string, len(orderedNames))
		chain := make([]*models.Folder, 0, len(orderedNames))
		for _, name := range orderedNames {
			folder, ok := byName[name]
			if !ok {
				missing = append(missing, name)
				continue
			}
			// A folder appearing at two chain positions would be
			// re-linked under its own descendant, storing a cycle.
			if prior, dup := seen[folder.ID]; dup {
				return &domain.ValidationError{
					Message: fmt.Sprintf("folder name %q resolves to the same folder as %q; chain entries must be distinct", name, prior),
				}
			}
			seen[folder.ID] = name
			chain = append(chain, folder)
		}
		if len(missing) > 0 {
			return &domain.MissingFoldersError{ProjectID: projectID, Names: missing}
		}

		for i, folder := range chain {
			var parentID *string
			if i > 0 {
				parentID = &chain[i-1].ID
			}
			if err := s.folderRepo.SetParent(txCtx, folder.ID, projectID, parentID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("folder chain linearized",
		"project_id", projectID,
		"length", len(orderedNames),
		"actor", actor.UserID,
	)

	return nil
}
