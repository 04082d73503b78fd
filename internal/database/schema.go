package database

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
)

// Schema is the tickets DDL. The same statements ship as init.sql at the
// repository root, which compose mounts into Postgres' init directory; the
// embedded copy lets the app bootstrap a database that was started without
// the mount. All statements use IF NOT EXISTS, so applying the schema to an
// already-initialized database is a no-op.
//
//go:embed schema.sql
var Schema string

// ApplySchema runs the embedded DDL against the given database.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}
