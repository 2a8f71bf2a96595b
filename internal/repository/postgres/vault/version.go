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

// PostgresVersionRepository implements the VersionRepository interface
type PostgresVersionRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(config *postgres.RepositoryConfig) vaultRepo.VersionRepository {
	return &PostgresVersionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a version with its number already assigned. The unique
// index on (file_id, version_number) catches the race where two uploads
// computed the same next number; the loser surfaces ErrVersionConflict.
func (r *PostgresVersionRepository) Create(ctx context.Context, version *models.PDFVersion) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, file_id, version_number, content_ref, description, uploaded_at, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Versions)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		version.ID,
		version.FileID,
		version.VersionNumber,
		version.ContentRef,
		version.Description,
		version.UploadedAt,
		version.UploadedByID,
	)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return &domain.VersionConflictError{FileID: version.FileID}
		}
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("file %s: %w", version.FileID, domain.ErrNotFound)
		}
		return fmt.Errorf("create version: %w", err)
	}

	return nil
}

// NextVersionNumber computes max(version_number)+1 for a file, or 1 if the
// file has no versions yet
func (r *PostgresVersionRepository) NextVersionNumber(ctx context.Context, fileID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(version_number), 0) + 1
		FROM %s
		WHERE file_id = $1
	`, r.tables.Versions)

	executor := postgres.GetExecutor(ctx, r.pool)
	var next int
	if err := executor.QueryRow(ctx, query, fileID).Scan(&next); err != nil {
		return 0, fmt.Errorf("next version number: %w", err)
	}

	return next, nil
}

// GetByID retrieves a version by ID
func (r *PostgresVersionRepository) GetByID(ctx context.Context, id string) (*models.PDFVersion, error) {
	query := fmt.Sprintf(`
		SELECT id, file_id, version_number, content_ref, description, uploaded_at, uploaded_by
		FROM %s
		WHERE id = $1
	`, r.tables.Versions)

	executor := postgres.GetExecutor(ctx, r.pool)
	var version models.PDFVersion
	err := executor.QueryRow(ctx, query, id).Scan(
		&version.ID,
		&version.FileID,
		&version.VersionNumber,
		&version.ContentRef,
		&version.Description,
		&version.UploadedAt,
		&version.UploadedByID,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("version %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get version: %w", err)
	}

	return &version, nil
}

// ListByFile lists a file's versions ordered by version number ascending
func (r *PostgresVersionRepository) ListByFile(ctx context.Context, fileID string) ([]models.PDFVersion, error) {
	query := fmt.Sprintf(`
		SELECT id, file_id, version_number, content_ref, description, uploaded_at, uploaded_by
		FROM %s
		WHERE file_id = $1
		ORDER BY version_number ASC
	`, r.tables.Versions)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []models.PDFVersion
	for rows.Next() {
		var version models.PDFVersion
		err := rows.Scan(
			&version.ID,
			&version.FileID,
			&version.VersionNumber,
			&version.ContentRef,
			&version.Description,
			&version.UploadedAt,
			&version.UploadedByID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, version)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}

	return versions, nil
}
