// Package migrations applies the embedded database schema with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

var upContext = goose.UpContext

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := upContext(ctx, db, dir); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}
