package vault

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
	"vault/internal/repository/postgres"
)

// PostgresMembershipRepository implements the MembershipRepository interface
type PostgresMembershipRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(config *postgres.RepositoryConfig) vaultRepo.MembershipRepository {
	return &PostgresMembershipRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create adds a membership row
func (r *PostgresMembershipRepository) Create(ctx context.Context, m *models.ProjectMembership) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, project_id, role, created_at)
		VALUES ($1, $2, $3, $4)
	`, r.tables.Memberships)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, m.UserID, m.ProjectID, m.Role, m.CreatedAt)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return fmt.Errorf("membership for user %s: %w", m.UserID, domain.ErrConflict)
		}
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", m.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create membership: %w", err)
	}

	return nil
}

// Get retrieves the membership for (userID, projectID)
func (r *PostgresMembershipRepository) Get(ctx context.Context, userID, projectID string) (*models.ProjectMembership, error) {
	query := fmt.Sprintf(`
		SELECT user_id, project_id, role, created_at
		FROM %s
		WHERE user_id = $1 AND project_id = $2
	`, r.tables.Memberships)

	executor := postgres.GetExecutor(ctx, r.pool)
	var m models.ProjectMembership
	err := executor.QueryRow(ctx, query, userID, projectID).Scan(
		&m.UserID,
		&m.ProjectID,
		&m.Role,
		&m.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("membership for user %s in project %s: %w", userID, projectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}

	return &m, nil
}

// Delete removes a membership row
func (r *PostgresMembershipRepository) Delete(ctx context.Context, userID, projectID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND project_id = $2
	`, r.tables.Memberships)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, userID, projectID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership for user %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// ListByProject lists all memberships of a project
func (r *PostgresMembershipRepository) ListByProject(ctx context.Context, projectID string) ([]models.ProjectMembership, error) {
	query := fmt.Sprintf(`
		SELECT user_id, project_id, role, created_at
		FROM %s
		WHERE project_id = $1
		ORDER BY created_at ASC
	`, r.tables.Memberships)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []models.ProjectMembership
	for rows.Next() {
		var m models.ProjectMembership
		if err := rows.Scan(&m.UserID, &m.ProjectID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}

	return memberships, nil
}
