package cli

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dkorsakov/clinickeeper/internal/common"
	"github.com/dkorsakov/clinickeeper/internal/logging"
	"github.com/dkorsakov/clinickeeper/internal/repositories/users"
	"github.com/dkorsakov/clinickeeper/internal/services"
	"github.com/dkorsakov/clinickeeper/internal/settings"
)

// stubPasswords queues the values the next getPassword calls will return.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	queue := pws
	readPassword = func() ([]byte, error) {
		if len(queue) == 0 {
			return nil, io.EOF
		}
		next := queue[0]
		queue = queue[1:]
		return []byte(next), nil
	}
}

func newTestConsole(t *testing.T, script string) (*Console, *bytes.Buffer, users.Repository) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	repo := users.NewSQLiteRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	var out bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))

	console := NewConsole(
		services.NewAuthService(repo),
		repo,
		store,
		t.TempDir(),
		logger,
		strings.NewReader(script),
		&out,
	)
	return console, &out, repo
}

func TestTryLogin_StoreHit(t *testing.T) {
	console, _, repo := newTestConsole(t, "")
	require.NoError(t, repo.EnsureDemoUsers(context.Background()))

	user, err := console.tryLogin(context.Background(), "ADMIN", "Admin1234")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", user.Username())
	assert.Equal(t, "Administrator", user.Role())
}

func TestTryLogin_UppercasesInput(t *testing.T) {
	console, _, repo := newTestConsole(t, "")
	require.NoError(t, repo.EnsureDemoUsers(context.Background()))

	user, err := console.tryLogin(context.Background(), "admin", "Admin1234")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", user.Username())
}

func TestTryLogin_FallbackBeforeBootstrap(t *testing.T) {
	// empty store: the demo pair still gets in, as a transient Demo account
	console, _, repo := newTestConsole(t, "")

	user, err := console.tryLogin(context.Background(), "doctor", "Doctor1234")
	require.NoError(t, err)
	assert.Equal(t, "DOCTOR", user.Username())
	assert.Equal(t, "Demo", user.Role())

	// nothing was persisted
	_, err = repo.FindByUsername(context.Background(), "DOCTOR")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTryLogin_FallbackRejectsWrongPassword(t *testing.T) {
	console, _, _ := newTestConsole(t, "")

	_, err := console.tryLogin(context.Background(), "ADMIN", "nope")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestTryLogin_WrongPasswordForStoredUser(t *testing.T) {
	console, _, repo := newTestConsole(t, "")
	require.NoError(t, repo.EnsureDemoUsers(context.Background()))

	_, err := console.tryLogin(context.Background(), "ADMIN", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRun_LoginListExit(t *testing.T) {
	script := strings.Join([]string{
		"ADMIN", // login prompt
		"users",
		"patients",
		"exit",
	}, "\n") + "\n"

	console, out, repo := newTestConsole(t, script)
	require.NoError(t, repo.EnsureDemoUsers(context.Background()))
	stubPasswords(t, "Admin1234")

	require.NoError(t, console.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Signed in as ADMIN (Administrator).")
	assert.Contains(t, output, "DOCTOR")
	assert.Contains(t, output, "NURSE")
	assert.Contains(t, output, "3 staff on duty")
	assert.Contains(t, output, "Mara Vega")
	assert.Contains(t, output, "Bye!")
}

func TestRun_InvalidCredentialsMessageIsGeneric(t *testing.T) {
	script := "GHOST\nexit\n"

	console, out, _ := newTestConsole(t, script)
	stubPasswords(t, "whatever")

	require.NoError(t, console.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Invalid credentials.")
	assert.NotContains(t, output, "GHOST", "output must not echo the probed username")
}

func TestRun_PasswdRotatesOwnCredential(t *testing.T) {
	script := strings.Join([]string{
		"ADMIN",
		"passwd",
		"exit",
	}, "\n") + "\n"

	console, out, repo := newTestConsole(t, script)
	require.NoError(t, repo.EnsureDemoUsers(context.Background()))
	stubPasswords(t, "Admin1234", "NewPass1")

	require.NoError(t, console.Run(context.Background()))
	assert.Contains(t, out.String(), "Password updated for ADMIN.")

	got, err := repo.FindByUsername(context.Background(), "ADMIN")
	require.NoError(t, err)
	assert.True(t, got.Matches("NewPass1"))
	assert.False(t, got.Matches("Admin1234"))
}

func TestRun_AddUserPersistsAccount(t *testing.T) {
	script := strings.Join([]string{
		"ADMIN",
		"adduser",
		"carter", // username, will be upper-cased
		"Doctor",
		"exit",
	}, "\n") + "\n"

	console, out, repo := newTestConsole(t, script)
	require.NoError(t, repo.EnsureDemoUsers(context.Background()))
	stubPasswords(t, "Admin1234", "Secret123")

	require.NoError(t, console.Run(context.Background()))
	assert.Contains(t, out.String(), "User CARTER joined the roster.")

	got, err := repo.FindByUsername(context.Background(), "CARTER")
	require.NoError(t, err)
	assert.Equal(t, "Doctor", got.Role())
	assert.True(t, got.Matches("Secret123"))
}

func TestRun_RemembersLastLogin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	console, _, repo := newTestConsole(t, "ADMIN\nexit\n")
	console.settings = settings.NewStore(path)
	require.NoError(t, repo.EnsureDemoUsers(context.Background()))
	stubPasswords(t, "Admin1234")

	require.NoError(t, console.Run(context.Background()))

	saved := settings.NewStore(path).Load()
	assert.Equal(t, "ADMIN", saved.LastUsername)
	assert.Equal(t, "Administrator", saved.LastRole)
	assert.NotEmpty(t, saved.LastLogin)
}
