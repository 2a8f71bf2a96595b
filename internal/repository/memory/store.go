// Package memory provides in-memory implementations of the vault
// repositories. The postgres implementations back the server; these back
// the service tests, which exercise the same repository interfaces without
// a database.
package memory

import (
	"context"
	"sync"

	"vault/internal/domain/models/vault"
	"vault/internal/domain/repositories"
)

// Store is the shared state behind the per-entity memory repositories.
// One RWMutex covers everything, which also gives ExecTx serializability.
type Store struct {
	mu          sync.RWMutex
	projects    map[string]*vault.Project
	folders     map[string]*vault.Folder
	files       map[string]*vault.File
	versions    map[string]*vault.PDFVersion
	annotations map[string]*vault.Annotation
	memberships map[membershipKey]*vault.ProjectMembership
}

type membershipKey struct {
	userID    string
	projectID string
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		projects:    make(map[string]*vault.Project),
		folders:     make(map[string]*vault.Folder),
		files:       make(map[string]*vault.File),
		versions:    make(map[string]*vault.PDFVersion),
		annotations: make(map[string]*vault.Annotation),
		memberships: make(map[membershipKey]*vault.ProjectMembership),
	}
}

// TransactionManager returns a repositories.TransactionManager whose ExecTx
// serializes against all other writers on the store.
func (s *Store) TransactionManager() repositories.TransactionManager {
	return &txManager{store: s}
}

type txManager struct {
	store *Store
	txMu  sync.Mutex
}

// ExecTx runs fn while holding the transaction mutex, so two transactions
// never interleave. Individual repository calls still take the store lock.
func (tm *txManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tm.txMu.Lock()
	defer tm.txMu.Unlock()
	return fn(ctx)
}
