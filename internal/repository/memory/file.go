package memory

import (
	"context"
	"fmt"
	"sort"

	"vault/internal/domain"
	"vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
)

// FileRepository is the in-memory FileRepository
type FileRepository struct {
	store *Store
}

// NewFileRepository creates a file repository on the store
func NewFileRepository(store *Store) vaultRepo.FileRepository {
	return &FileRepository{store: store}
}

func (r *FileRepository) Create(ctx context.Context, file *vault.File) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.files[file.ID]; ok {
		return fmt.Errorf("file %s: %w", file.ID, domain.ErrConflict)
	}
	if _, ok := r.store.folders[file.FolderID]; !ok {
		return fmt.Errorf("folder %s: %w", file.FolderID, domain.ErrNotFound)
	}

	copied := *file
	r.store.files[file.ID] = &copied
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*vault.File, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	file, ok := r.store.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	copied := *file
	return &copied, nil
}

func (r *FileRepository) ListByFolder(ctx context.Context, folderID, projectID string) ([]vault.File, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var files []vault.File
	for _, file := range r.store.files {
		if file.ProjectID == projectID && file.FolderID == folderID {
			files = append(files, *file)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func (r *FileRepository) SetFolder(ctx context.Context, id, projectID, folderID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	file, ok := r.store.files[id]
	if !ok || file.ProjectID != projectID {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	if _, ok := r.store.folders[folderID]; !ok {
		return fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}

	file.FolderID = folderID
	return nil
}
