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

// PostgresFileRepository implements the FileRepository interface
type PostgresFileRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *postgres.RepositoryConfig) vaultRepo.FileRepository {
	return &PostgresFileRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new file record
func (r *PostgresFileRepository) Create(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, folder_id, name, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		file.ID,
		file.ProjectID,
		file.FolderID,
		file.Name,
		file.UploadedByID,
		file.CreatedAt,
		file.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("folder %s: %w", file.FolderID, domain.ErrNotFound)
		}
		return fmt.Errorf("create file: %w", err)
	}

	return nil
}

// GetByID retrieves a file by ID
func (r *PostgresFileRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, folder_id, name, uploaded_by, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	var file models.File
	err := executor.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.ProjectID,
		&file.FolderID,
		&file.Name,
		&file.UploadedByID,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return &file, nil
}

// ListByFolder lists the files owned directly by a folder
func (r *PostgresFileRepository) ListByFolder(ctx context.Context, folderID, projectID string) ([]models.File, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, folder_id, name, uploaded_by, created_at, updated_at
		FROM %s
		WHERE project_id = $1 AND folder_id = $2
		ORDER BY name ASC
	`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID, folderID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.ProjectID,
			&file.FolderID,
			&file.Name,
			&file.UploadedByID,
			&file.CreatedAt,
			&file.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}

// SetFolder moves a file to another folder in the same project
func (r *PostgresFileRepository) SetFolder(ctx context.Context, id, projectID, folderID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1, updated_at = now()
		WHERE id = $2 AND project_id = $3
	`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, folderID, id, projectID)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
		}
		return fmt.Errorf("move file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
