// Package users persists clinic accounts keyed by username. Two
// implementations share the contract: SQLite for the single-seat desktop
// deployment and Postgres for a shared clinic database.
package users

import (
	"context"

	"github.com/dkorsakov/clinickeeper/internal/models"
)

// Repository is a durable table of clinic accounts.
//
// Contract:
//   - EnsureSchema: idempotent schema setup, safe on every startup,
//     never destroys existing data.
//   - EnsureDemoUsers: idempotent first-run seeding of the demo accounts;
//     an existing row is never overwritten, so changed passwords survive.
//   - FindByUsername: exact-match lookup; absence is common.ErrorNotFound.
//   - FindAll: full scan, order unspecified.
//   - Save: single-statement upsert keyed by username. A new username is
//     inserted with the entity's id; an existing row gets role, hash and
//     salt updated while its stored id stays frozen.
//
// Storage failures are wrapped and propagated; the repository never retries.
type Repository interface {
	EnsureSchema(ctx context.Context) error
	EnsureDemoUsers(ctx context.Context) error
	FindByUsername(ctx context.Context, username string) (*models.AppUser, error)
	FindAll(ctx context.Context) ([]*models.AppUser, error)
	Save(ctx context.Context, user *models.AppUser) error
}

// demoAccounts are the well-known first-run credentials shown on the login
// screen. EnsureDemoUsers seeds exactly these usernames.
var demoAccounts = []struct {
	username string
	role     string
	password string
}{
	{"ADMIN", "Administrator", "Admin1234"},
	{"DOCTOR", "Doctor", "Doctor1234"},
	{"NURSE", "Nurse", "Nurse1234"},
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.AppUser, error) {
	var id, username, role, hash string
	var salt []byte
	if err := row.Scan(&id, &username, &role, &hash, &salt); err != nil {
		return nil, err
	}
	return models.UserFromStorage(id, username, role, hash, salt), nil
}
