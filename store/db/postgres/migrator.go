package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS tip (
	id SERIAL PRIMARY KEY,
	content TEXT NOT NULL,
	lang TEXT NOT NULL DEFAULT 'en',
	source TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS wisdom (
	id SERIAL PRIMARY KEY,
	season TEXT NOT NULL,
	content TEXT NOT NULL,
	lang TEXT NOT NULL DEFAULT 'en'
);

CREATE TABLE IF NOT EXISTS remedy (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	dosha TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL,
	lang TEXT NOT NULL DEFAULT 'en'
);
`

// Migrate creates the knowledge-base schema. Postgres deployments are
// expected to load their own datasets, so no seed content is inserted.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
