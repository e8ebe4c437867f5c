package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dkorsakov/clinickeeper/internal/common"
	"github.com/dkorsakov/clinickeeper/internal/models"
	"github.com/dkorsakov/clinickeeper/internal/repositories/users"
)

func setupAuth(t *testing.T) (*AuthService, users.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	repo := users.NewSQLiteRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return NewAuthService(repo), repo
}

func seedUser(t *testing.T, repo users.Repository, username, role, password string) *models.AppUser {
	t.Helper()
	u, err := models.NewUserWithPassword(username, role, password)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), u))
	return u
}

func TestAuthenticate_Success(t *testing.T) {
	auth, repo := setupAuth(t)
	seeded := seedUser(t, repo, "ADMIN", "Administrator", "Admin1234")

	got, err := auth.Authenticate(context.Background(), "ADMIN", "Admin1234")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID(), got.ID())
	assert.Equal(t, "Administrator", got.Role())
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	auth, repo := setupAuth(t)
	seedUser(t, repo, "ADMIN", "Administrator", "Admin1234")

	_, err := auth.Authenticate(context.Background(), "ADMIN", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	auth, _ := setupAuth(t)

	_, err := auth.Authenticate(context.Background(), "NOBODY", "whatever")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

// Unknown username and wrong password must be indistinguishable to callers.
func TestAuthenticate_AntiEnumeration(t *testing.T) {
	auth, repo := setupAuth(t)
	seedUser(t, repo, "ADMIN", "Administrator", "Admin1234")

	_, errUnknown := auth.Authenticate(context.Background(), "GHOST", "Admin1234")
	_, errWrongPw := auth.Authenticate(context.Background(), "ADMIN", "nope")

	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, common.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthenticate_StorageErrorPropagates(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	repo := users.NewSQLiteRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, db.Close())

	auth := NewAuthService(repo)
	_, err = auth.Authenticate(context.Background(), "ADMIN", "Admin1234")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

// The full credential lifecycle: seed, login, reject, rotate, login again.
func TestAuthenticate_PasswordRotationScenario(t *testing.T) {
	auth, repo := setupAuth(t)
	ctx := context.Background()

	seedUser(t, repo, "ADMIN", "Administrator", "Admin1234")

	admin, err := auth.Authenticate(ctx, "ADMIN", "Admin1234")
	require.NoError(t, err)

	_, err = auth.Authenticate(ctx, "ADMIN", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	rotated, err := admin.WithNewPassword("NewPass1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, rotated))

	_, err = auth.Authenticate(ctx, "ADMIN", "Admin1234")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	got, err := auth.Authenticate(ctx, "ADMIN", "NewPass1")
	require.NoError(t, err)
	assert.Equal(t, admin.ID(), got.ID())
}
