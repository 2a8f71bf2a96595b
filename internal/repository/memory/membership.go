package memory

import (
	"context"
	"fmt"
	"sort"

	"vault/internal/domain"
	"vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
)

// MembershipRepository is the in-memory MembershipRepository
type MembershipRepository struct {
	store *Store
}

// NewMembershipRepository creates a membership repository on the store
func NewMembershipRepository(store *Store) vaultRepo.MembershipRepository {
	return &MembershipRepository{store: store}
}

func (r *MembershipRepository) Create(ctx context.Context, m *vault.ProjectMembership) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := membershipKey{userID: m.UserID, projectID: m.ProjectID}
	if _, ok := r.store.memberships[key]; ok {
		return fmt.Errorf("membership for user %s: %w", m.UserID, domain.ErrConflict)
	}

	copied := *m
	r.store.memberships[key] = &copied
	return nil
}

func (r *MembershipRepository) Get(ctx context.Context, userID, projectID string) (*vault.ProjectMembership, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.memberships[membershipKey{userID: userID, projectID: projectID}]
	if !ok {
		return nil, fmt.Errorf("membership for user %s in project %s: %w", userID, projectID, domain.ErrNotFound)
	}

	copied := *m
	return &copied, nil
}

func (r *MembershipRepository) Delete(ctx context.Context, userID, projectID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := membershipKey{userID: userID, projectID: projectID}
	if _, ok := r.store.memberships[key]; !ok {
		return fmt.Errorf("membership for user %s: %w", userID, domain.ErrNotFound)
	}

	delete(r.store.memberships, key)
	return nil
}

func (r *MembershipRepository) ListByProject(ctx context.Context, projectID string) ([]vault.ProjectMembership, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var memberships []vault.ProjectMembership
	for key, m := range r.store.memberships {
		if key.projectID == projectID {
			memberships = append(memberships, *m)
		}
	}

	sort.Slice(memberships, func(i, j int) bool {
		return memberships[i].CreatedAt.Before(memberships[j].CreatedAt)
	})
	return memberships, nil
}
