package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id                         BIGINT PRIMARY KEY,
		office_name                TEXT NOT NULL,
		type_group                 TEXT NOT NULL,
		street                     TEXT NOT NULL DEFAULT '',
		house_number               TEXT NOT NULL DEFAULT '',
		postal_code                TEXT NOT NULL DEFAULT '',
		city                       TEXT NOT NULL DEFAULT '',
		state                      TEXT NOT NULL DEFAULT '',
		latitude                   DOUBLE PRECISION,
		longitude                  DOUBLE PRECISION,
		is_open_now                BOOLEAN,
		is_temporarily_closed      BOOLEAN,
		temporarily_closed_from    TIMESTAMPTZ,
		temporarily_closed_through TIMESTAMPTZ,
		facilities                 TEXT[] NOT NULL DEFAULT '{}',
		contact                    JSONB,
		opening_hours              JSONB,
		consultation_hours         JSONB,
		public_transport           JSONB,
		images                     JSONB,
		attributes                 JSONB
	)`,
	`CREATE INDEX IF NOT EXISTS idx_locations_lat_lon ON locations (latitude, longitude)`,
	`CREATE TABLE IF NOT EXISTS facilities (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS object_types (
		id         INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		group_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS region_config (
		blz                    TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		supported_object_types TEXT[] NOT NULL DEFAULT '{}'
	)`,
}

// Migrate creates the provider tables if they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	db.logger.Info("Database schema up to date", zap.Int("statements", len(schema)))
	return nil
}
