package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dkorsakov/clinickeeper/internal/common"
	"github.com/dkorsakov/clinickeeper/internal/dbx"
	"github.com/dkorsakov/clinickeeper/internal/migrations"
	"github.com/dkorsakov/clinickeeper/internal/models"
)

// SQLiteRepository stores accounts in a local SQLite file. This is the
// reference desktop deployment: one process, one database file under the
// storage directory.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// EnsureSchema applies pending migrations. Already-applied migrations are
// skipped, existing rows are never touched.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, r.db, "sqlite"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// EnsureDemoUsers seeds the fixed demo accounts inside one transaction,
// skipping every username that already has a row.
func (r *SQLiteRepository) EnsureDemoUsers(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, acc := range demoAccounts {
			_, err := r.findByUsername(ctx, tx, acc.username)
			if err == nil {
				continue
			}
			if !errors.Is(err, common.ErrorNotFound) {
				return err
			}
			user, err := models.NewUserWithPassword(acc.username, acc.role, acc.password)
			if err != nil {
				return err
			}
			if err := r.save(ctx, tx, user); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (*models.AppUser, error) {
	return r.findByUsername(ctx, r.db, username)
}

func (r *SQLiteRepository) findByUsername(ctx context.Context, q dbx.DBTX, username string) (*models.AppUser, error) {
	row := q.QueryRowContext(ctx,
		`SELECT id, username, role, password_hash, salt FROM app_user WHERE username = ?`, username)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to find user %q: %w", username, err)
	}
	return user, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]*models.AppUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, role, password_hash, salt FROM app_user`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var result []*models.AppUser
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result = append(result, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return result, nil
}

// Save upserts by username in a single statement, so two concurrent saves
// of the same new username cannot both land as inserts. The id column is
// deliberately absent from the update clause: it is set once at insert and
// stays frozen afterwards.
func (r *SQLiteRepository) Save(ctx context.Context, user *models.AppUser) error {
	return r.save(ctx, r.db, user)
}

func (r *SQLiteRepository) save(ctx context.Context, q dbx.DBTX, user *models.AppUser) error {
	query := `
		INSERT INTO app_user (id, username, role, password_hash, salt)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			role = excluded.role,
			password_hash = excluded.password_hash,
			salt = excluded.salt
	`
	_, err := q.ExecContext(ctx, query,
		user.ID(), user.Username(), user.Role(), user.PasswordHash(), user.Salt())
	if err != nil {
		return fmt.Errorf("failed to save user %q: %w", user.Username(), err)
	}
	return nil
}
