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

// PostgresRepository stores accounts in a shared Postgres database, for
// clinics running several registration desks against one server. Same
// contract as SQLiteRepository.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, r.db, "postgres"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (r *PostgresRepository) EnsureDemoUsers(ctx context.Context) error {
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

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.AppUser, error) {
	return r.findByUsername(ctx, r.db, username)
}

func (r *PostgresRepository) findByUsername(ctx context.Context, q dbx.DBTX, username string) (*models.AppUser, error) {
	row := q.QueryRowContext(ctx,
		`SELECT id, username, role, password_hash, salt FROM app_user WHERE username = $1`, username)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to find user %q: %w", username, err)
	}
	return user, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*models.AppUser, error) {
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

func (r *PostgresRepository) Save(ctx context.Context, user *models.AppUser) error {
	return r.save(ctx, r.db, user)
}

// save upserts by username; the id column never appears in the update
// clause, so an existing row keeps the id it was created with.
func (r *PostgresRepository) save(ctx context.Context, q dbx.DBTX, user *models.AppUser) error {
	query := `
		INSERT INTO app_user (id, username, role, password_hash, salt)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE SET
			role = EXCLUDED.role,
			password_hash = EXCLUDED.password_hash,
			salt = EXCLUDED.salt
	`
	_, err := q.ExecContext(ctx, query,
		user.ID(), user.Username(), user.Role(), user.PasswordHash(), user.Salt())
	if err != nil {
		return fmt.Errorf("failed to save user %q: %w", user.Username(), err)
	}
	return nil
}
