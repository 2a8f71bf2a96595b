package memory

import (
	"context"
	"fmt"
	"sort"

	"vault/internal/domain"
	"vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
)

// AnnotationRepository is the in-memory AnnotationRepository
type AnnotationRepository struct {
	store *Store
}

// NewAnnotationRepository creates an annotation repository on the store
func NewAnnotationRepository(store *Store) vaultRepo.AnnotationRepository {
	return &AnnotationRepository{store: store}
}

func (r *AnnotationRepository) Create(ctx context.Context, annotation *vault.Annotation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.versions[annotation.VersionID]; !ok {
		return fmt.Errorf("version %s: %w", annotation.VersionID, domain.ErrNotFound)
	}

	copied := *annotation
	r.store.annotations[annotation.ID] = &copied
	return nil
}

func (r *AnnotationRepository) GetByID(ctx context.Context, id string) (*vault.Annotation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	annotation, ok := r.store.annotations[id]
	if !ok {
		return nil, fmt.Errorf("annotation %s: %w", id, domain.ErrNotFound)
	}

	copied := *annotation
	return &copied, nil
}

func (r *AnnotationRepository) SetStatus(ctx context.Context, id string, status vault.AnnotationStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	annotation, ok := r.store.annotations[id]
	if !ok {
		return fmt.Errorf("annotation %s: %w", id, domain.ErrNotFound)
	}

	annotation.Status = status
	return nil
}

func (r *AnnotationRepository) ListByVersion(ctx context.Context, versionID string) ([]vault.Annotation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var annotations []vault.Annotation
	for _, annotation := range r.store.annotations {
		if annotation.VersionID == versionID {
			annotations = append(annotations, *annotation)
		}
	}

	sort.Slice(annotations, func(i, j int) bool {
		return annotations[i].CreatedAt.Before(annotations[j].CreatedAt)
	})
	return annotations, nil
}
