// Package store is the system of record behind the cache layer: bun models
// for the dashboard's domain, view loaders that feed the read-through
// accessors, and mutation paths that pair each write with its cache
// invalidation.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects the backing database.
type Config struct {
	// Driver is "sqlite" or "postgres". Empty defaults to sqlite.
	Driver string
	// DSN is the driver connection string. Empty sqlite DSN defaults to a
	// shared in-memory database.
	DSN string
}

// Open connects to the configured database and wraps it in bun.
func Open(cfg Config) (*bun.DB, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	case DriverPostgres:
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// ResetSchema drops and recreates every table. Intended for tests and the
// example program, not production migrations.
func ResetSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*Project)(nil),
		(*Team)(nil),
		(*Column)(nil),
		(*Task)(nil),
		(*Category)(nil),
		(*CategoryOption)(nil),
		(*Membership)(nil),
		(*Shift)(nil),
	}
	for _, model := range models {
		if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
		if _, err := db.NewCreateTable().Model(model).Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
