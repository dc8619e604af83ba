package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the bootstrap DDL. Every statement is idempotent.
func Schema() string {
	return schemaSQL
}

// EnsureSchema creates the tables and unique indexes if they are missing.
func EnsureSchema(ctx context.Context, db *DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
