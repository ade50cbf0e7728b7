package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pgSchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT NOT NULL,
		title          TEXT NOT NULL,
		subtitle       TEXT NOT NULL,
		description    TEXT NOT NULL,
		tech_stack     TEXT[] NOT NULL DEFAULT '{}',
		category       TEXT NOT NULL,
		hero_image     TEXT NOT NULL,
		gallery_images TEXT[] NOT NULL DEFAULT '{}',
		video_url      TEXT,
		challenge      TEXT NOT NULL,
		solution       TEXT NOT NULL,
		process        TEXT NOT NULL,
		results        TEXT NOT NULL,
		live_url       TEXT,
		github_url     TEXT,
		featured       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS projects_id_key ON projects (id)`,
	`CREATE INDEX IF NOT EXISTS projects_created_at_idx ON projects (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id         TEXT NOT NULL,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		subject    TEXT NOT NULL,
		message    TEXT NOT NULL,
		phone      TEXT,
		status     TEXT NOT NULL DEFAULT 'unread',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS contacts_id_key ON contacts (id)`,
}

// PgSchema creates the projects and contacts tables.
type PgSchema struct {
	pool *pgxpool.Pool
}

// NewPgSchema creates a PgSchema backed by the given pool.
func NewPgSchema(pool *pgxpool.Pool) *PgSchema {
	return &PgSchema{pool: pool}
}

var _ Schema = (*PgSchema)(nil)

// Ensure is idempotent.
func (s *PgSchema) Ensure(ctx context.Context) error {
	for _, stmt := range pgSchemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Drop removes both tables and their data.
func (s *PgSchema) Drop(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DROP TABLE IF EXISTS projects, contacts`); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}
