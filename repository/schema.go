package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema creates every table the repositories use. Statements are
// idempotent so it can be applied to an existing database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email VARCHAR(255) NOT NULL,
    password_hash TEXT NOT NULL,
    name VARCHAR(255) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email))`,

	`CREATE TABLE IF NOT EXISTS crimes (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    category VARCHAR(255) NOT NULL,
    name VARCHAR(255) NOT NULL,
    section VARCHAR(255) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    punishment TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	// Annex lookups ignore case, so names must be unique ignoring case
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_crimes_name_lower ON crimes (lower(name))`,
	`CREATE INDEX IF NOT EXISTS idx_crimes_category ON crimes (category)`,

	`CREATE TABLE IF NOT EXISTS preferences (
    owner_id VARCHAR(64) PRIMARY KEY,
    theme VARCHAR(16) NOT NULL DEFAULT 'light' CHECK (theme IN ('light', 'dark')),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,

	`CREATE TABLE IF NOT EXISTS documents (
    id UUID PRIMARY KEY,
    owner_id VARCHAR(64) NOT NULL,
    document_type VARCHAR(255) NOT NULL,
    filename VARCHAR(255) NOT NULL,
    mime_type VARCHAR(100) NOT NULL,
    size BIGINT NOT NULL,
    storage_path TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_owner_id ON documents (owner_id)`,
}

// ApplySchema creates any missing tables and indexes
func ApplySchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
