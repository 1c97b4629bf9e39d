package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rpggio/clock/internal/config"
	"github.com/rpggio/clock/internal/domain/session"
	"github.com/rpggio/clock/internal/logging"
	"github.com/rpggio/clock/internal/sqlite"
	"github.com/rpggio/clock/migrations"
)

// app holds what a command needs for one invocation.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *sqlite.DB
	sessions  *session.Service
	logCloser io.Closer
}

func openApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.dbPath != "" {
		path, err := config.ExpandHome(opts.dbPath)
		if err != nil {
			return nil, err
		}
		cfg.DB.Path = path
	}

	logger, logCloser, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	logger.Debug("using database", "path", cfg.DB.Path)
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	if err := db.Migrate(ctx, migrations.FS); err != nil {
		db.Close()
		logCloser.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := sqlite.NewSessionRepository(db)
	return &app{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		sessions:  session.NewService(repo, time.Now, logger),
		logCloser: logCloser,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
	a.logCloser.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
