package platform

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// OpenSQLite opens a SQLite database and wraps it for the bun storage
// provider. Local development and single-node deployments use this path;
// pass the handle through di.WithDB with Storage.Provider set to "bun".
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// NewPostgresDB wraps an established PostgreSQL connection for the bun
// storage provider. The caller owns the *sql.DB lifecycle and is expected
// to have applied the migrations from GetMigrationsFS.
func NewPostgresDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}
