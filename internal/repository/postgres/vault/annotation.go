package vault

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"vault/internal/domain"
	models "vault/internal/domain/models/vault"
	vaultRepo "vault/internal/domain/repositories/vault"
	"vault/internal/repository/postgres"
)

// PostgresAnnotationRepository implements the AnnotationRepository interface.
// Rects are stored as a JSONB column rather than five scalar columns; the
// rendering layer consumes them as a unit and never queries by coordinate.
type PostgresAnnotationRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewAnnotationRepository creates a new annotation repository
func NewAnnotationRepository(config *postgres.RepositoryConfig) vaultRepo.AnnotationRepository {
	return &PostgresAnnotationRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new annotation
func (r *PostgresAnnotationRepository) Create(ctx context.Context, annotation *models.Annotation) error {
	rectJSON, err := json.Marshal(annotation.Rect)
	if err != nil {
		return fmt.Errorf("encode rect: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, pdf_version_id, rect_json, color, comment, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Annotations)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err = executor.Exec(ctx, query,
		annotation.ID,
		annotation.VersionID,
		rectJSON,
		annotation.Color,
		annotation.Comment,
		annotation.Status,
		annotation.CreatedAt,
		annotation.CreatedByID,
	)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("version %s: %w", annotation.VersionID, domain.ErrNotFound)
		}
		return fmt.Errorf("create annotation: %w", err)
	}

	return nil
}

// GetByID retrieves an annotation by ID
func (r *PostgresAnnotationRepository) GetByID(ctx context.Context, id string) (*models.Annotation, error) {
	query := fmt.Sprintf(`
		SELECT id, pdf_version_id, rect_json, color, comment, status, created_at, created_by
		FROM %s
		WHERE id = $1
	`, r.tables.Annotations)

	executor := postgres.GetExecutor(ctx, r.pool)
	annotation, err := scanAnnotation(executor.QueryRow(ctx, query, id))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("annotation %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get annotation: %w", err)
	}

	return annotation, nil
}

// SetStatus updates an annotation's review status
func (r *PostgresAnnotationRepository) SetStatus(ctx context.Context, id string, status models.AnnotationStatus) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1
		WHERE id = $2
	`, r.tables.Annotations)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("set annotation status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("annotation %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByVersion lists a version's annotations ordered by creation time
func (r *PostgresAnnotationRepository) ListByVersion(ctx context.Context, versionID string) ([]models.Annotation, error) {
	query := fmt.Sprintf(`
		SELECT id, pdf_version_id, rect_json, color, comment, status, created_at, created_by
		FROM %s
		WHERE pdf_version_id = $1
		ORDER BY created_at ASC
	`, r.tables.Annotations)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, versionID)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	defer rows.Close()

	var annotations []models.Annotation
	for rows.Next() {
		annotation, err := scanAnnotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan annotation: %w", err)
		}
		annotations = append(annotations, *annotation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate annotations: %w", err)
	}

	return annotations, nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnnotation(row rowScanner) (*models.Annotation, error) {
	var annotation models.Annotation
	var rectJSON []byte

	err := row.Scan(
		&annotation.ID,
		&annotation.VersionID,
		&rectJSON,
		&annotation.Color,
		&annotation.Comment,
		&annotation.Status,
		&annotation.CreatedAt,
		&annotation.CreatedByID,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rectJSON, &annotation.Rect); err != nil {
		return nil, fmt.Errorf("decode rect: %w", err)
	}

	return &annotation, nil
}
