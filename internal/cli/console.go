// Package cli implements the interactive console of the clinic manager:
// login, account administration, ward listings and CSV exports.
package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dkorsakov/clinickeeper/internal/logging"
	"github.com/dkorsakov/clinickeeper/internal/models"
	"github.com/dkorsakov/clinickeeper/internal/repositories/users"
	"github.com/dkorsakov/clinickeeper/internal/services"
	"github.com/dkorsakov/clinickeeper/internal/settings"
)

// Console is the line-oriented UI. It keeps the currently signed-in account
// and dispatches commands until the user exits.
type Console struct {
	auth      *services.AuthService
	repo      users.Repository
	settings  *settings.Store
	exportDir string
	logger    logging.Logger

	reader *bufio.Reader
	out    io.Writer

	current *models.AppUser
}

func NewConsole(
	auth *services.AuthService,
	repo users.Repository,
	store *settings.Store,
	exportDir string,
	logger logging.Logger,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		auth:      auth,
		repo:      repo,
		settings:  store,
		exportDir: exportDir,
		logger:    logger,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

func (c *Console) isLoggedIn() bool {
	return c.current != nil
}

// Run greets the user, asks for a login and then serves commands until the
// input ends or the context is cancelled.
func (c *Console) Run(ctx context.Context) error {
	return c.root(ctx)
}
