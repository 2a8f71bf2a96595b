package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the vault tables if they do not exist. The unique
// index on (file_id, version_number) is what turns a lost version-number
// race into a retryable conflict instead of a duplicate.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				owner_id UUID NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)`, tables.Projects),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				project_id UUID NOT NULL REFERENCES %s(id),
				parent_id UUID REFERENCES %s(id),
				name VARCHAR(255) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)`, tables.Folders, tables.Projects, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				project_id UUID NOT NULL REFERENCES %s(id),
				folder_id UUID NOT NULL REFERENCES %s(id),
				name VARCHAR(255) NOT NULL,
				uploaded_by UUID NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)`, tables.Files, tables.Projects, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				file_id UUID NOT NULL REFERENCES %s(id),
				version_number INTEGER NOT NULL CHECK (version_number >= 1),
				content_ref TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				uploaded_at TIMESTAMPTZ NOT NULL,
				uploaded_by UUID NOT NULL,
				UNIQUE (file_id, version_number)
			)`, tables.Versions, tables.Files),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				pdf_version_id UUID NOT NULL REFERENCES %s(id),
				rect_json JSONB NOT NULL,
				color VARCHAR(32) NOT NULL,
				comment TEXT,
				status VARCHAR(32) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				created_by UUID NOT NULL
			)`, tables.Annotations, tables.Versions),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				user_id UUID NOT NULL,
				project_id UUID NOT NULL REFERENCES %s(id),
				role VARCHAR(32) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				PRIMARY KEY (user_id, project_id)
			)`, tables.Memberships, tables.Projects),
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
