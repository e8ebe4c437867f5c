package app

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/dkorsakov/clinickeeper/internal/config"
	"github.com/dkorsakov/clinickeeper/internal/repositories/users"
)

// openDatabase picks the storage backend from the configuration: a
// postgres:// DSN selects the shared clinic database, anything else means
// the local SQLite file under the storage directory.
func openDatabase(cfg *config.Config) (*sql.DB, users.Repository, error) {
	if isPostgresDSN(cfg.DatabaseDSN) {
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return db, users.NewPostgresRepository(db), nil
	}

	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.SQLitePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, users.NewSQLiteRepository(db), nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
