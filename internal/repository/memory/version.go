package memory

import (
	"context"
	"fmt"
	"sort"

	"vault/internal/domain"
	"vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
)

// VersionRepository is the in-memory VersionRepository. Like the unique
// index in Postgres, Create rejects a duplicate (fileID, versionNumber)
// pair with ErrVersionConflict.
type VersionRepository struct {
	store *Store
}

// NewVersionRepository creates a version repository on the store
func NewVersionRepository(store *Store) vaultRepo.VersionRepository {
	return &VersionRepository{store: store}
}

func (r *VersionRepository) Create(ctx context.Context, version *vault.PDFVersion) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.files[version.FileID]; !ok {
		return fmt.Errorf("file %s: %w", version.FileID, domain.ErrNotFound)
	}
	for _, existing := range r.store.versions {
		if existing.FileID == version.FileID && existing.VersionNumber == version.VersionNumber {
			return &domain.VersionConflictError{FileID: version.FileID}
		}
	}

	copied := *version
	r.store.versions[version.ID] = &copied
	return nil
}

func (r *VersionRepository) NextVersionNumber(ctx context.Context, fileID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	max := 0
	for _, version := range r.store.versions {
		if version.FileID == fileID && version.VersionNumber > max {
			max = version.VersionNumber
		}
	}
	return max + 1, nil
}

func (r *VersionRepository) GetByID(ctx context.Context, id string) (*vault.PDFVersion, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	version, ok := r.store.versions[id]
	if !ok {
		return nil, fmt.Errorf("version %s: %w", id, domain.ErrNotFound)
	}

	copied := *version
	return &copied, nil
}

func (r *VersionRepository) ListByFile(ctx context.Context, fileID string) ([]vault.PDFVersion, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var versions []vault.PDFVersion
	for _, version := range r.store.versions {
		if version.FileID == fileID {
			versions = append(versions, *version)
		}
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].VersionNumber < versions[j].VersionNumber
	})
	return versions, nil
}
