package memory

import (
	"context"
	"fmt"
	"sort"

	"vault/internal/domain"
	"vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
)

// ProjectRepository is the in-memory ProjectRepository
type ProjectRepository struct {
	store *Store
}

// NewProjectRepository creates a project repository on the store
func NewProjectRepository(store *Store) vaultRepo.ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) Create(ctx context.Context, project *vault.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.projects[project.ID]; ok {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrConflict)
	}

	copied := *project
	r.store.projects[project.ID] = &copied
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*vault.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	project, ok := r.store.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	copied := *project
	return &copied, nil
}

func (r *ProjectRepository) ListByMember(ctx context.Context, userID string) ([]vault.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var projects []vault.Project
	for key, m := range r.store.memberships {
		if key.userID != userID {
			continue
		}
		if project, ok := r.store.projects[m.ProjectID]; ok {
			projects = append(projects, *project)
		}
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}
