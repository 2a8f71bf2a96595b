package memory

import (
	"context"
	"fmt"
	"sort"

	"vault/internal/domain"
	"vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
)

// FolderRepository is the in-memory FolderRepository
type FolderRepository struct {
	store *Store
}

// NewFolderRepository creates a folder repository on the store
func NewFolderRepository(store *Store) vaultRepo.FolderRepository {
	return &FolderRepository{store: store}
}

func (r *FolderRepository) Create(ctx context.Context, folder *vault.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.folders[folder.ID]; ok {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrConflict)
	}

	copied := *folder
	r.store.folders[folder.ID] = &copied
	return nil
}

func (r *FolderRepository) GetByID(ctx context.Context, id, projectID string) (*vault.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	folder, ok := r.store.folders[id]
	if !ok || folder.ProjectID != projectID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	copied := *folder
	return &copied, nil
}

func (r *FolderRepository) SetParent(ctx context.Context, id, projectID string, parentID *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	folder, ok := r.store.folders[id]
	if !ok || folder.ProjectID != projectID {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	if parentID == nil {
		folder.ParentID = nil
	} else {
		copied := *parentID
		folder.ParentID = &copied
	}
	return nil
}

func (r *FolderRepository) ListChildren(ctx context.Context, parentID *string, projectID string) ([]vault.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var folders []vault.Folder
	for _, folder := range r.store.folders {
		if folder.ProjectID != projectID {
			continue
		}
		if !sameParent(folder.ParentID, parentID) {
			continue
		}
		folders = append(folders, *folder)
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

func (r *FolderRepository) GetAllByProject(ctx context.Context, projectID string) ([]vault.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var folders []vault.Folder
	for _, folder := range r.store.folders {
		if folder.ProjectID == projectID {
			folders = append(folders, *folder)
		}
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].CreatedAt.Before(folders[j].CreatedAt)
	})
	return folders, nil
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
