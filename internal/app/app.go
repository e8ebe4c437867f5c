// Package app assembles the clinic manager: configuration, logging, the
// account store with its schema and demo bootstrap, and the interactive
// console. It also handles shutdown on OS signals.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkorsakov/clinickeeper/internal/cli"
	"github.com/dkorsakov/clinickeeper/internal/config"
	"github.com/dkorsakov/clinickeeper/internal/logging"
	"github.com/dkorsakov/clinickeeper/internal/services"
	"github.com/dkorsakov/clinickeeper/internal/settings"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	console *cli.Console
}

// NewApp opens the account store, applies the schema, seeds the demo
// accounts and wires the console. Any failure here is a startup failure:
// the application cannot run without working credential storage.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, repo, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema init error: %w", err)
	}
	if err := repo.EnsureDemoUsers(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("demo bootstrap error: %w", err)
	}

	console := cli.NewConsole(
		services.NewAuthService(repo),
		repo,
		settings.NewStore(cfg.SettingsFile),
		cfg.ExportDir,
		logger,
		os.Stdin,
		os.Stdout,
	)

	return &App{config: cfg, logger: logger, db: db, console: console}, nil
}

func (a *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.initSignalHandler(cancel)
	a.logger.Info(ctx, "starting clinic manager")

	if err := a.console.Run(ctx); err != nil && ctx.Err() == nil {
		a.logger.Error(ctx, "console stopped", "error", err)
	}

	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "failed to close database", "error", err)
	}
}
