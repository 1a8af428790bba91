package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"navio/internal/crypto"
	"navio/internal/repository"
	"navio/internal/server"
	"navio/internal/telegram_bot"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the embedded schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return repository.MigrateUp(db, cfg.Database.Driver, logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations (drops every table)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return repository.MigrateDown(db, cfg.Database.Driver, logger)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample partner, tip, campaign and session",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return repository.Seed(cmd.Context(), db, logger)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply migrations on startup")
}

func openDB() (*sqlx.DB, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url (or DATABASE_URL) is not set")
	}
	return repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if !skipMigrate {
		if err := repository.MigrateUp(db, cfg.Database.Driver, logger); err != nil {
			return err
		}
	}

	var opts server.Options
	sealer, err := newSealer()
	if err != nil {
		return fmt.Errorf("failed to initialize field sealing: %w", err)
	}
	if sealer != nil {
		opts.Sealer = sealer
		logger.Info("Panic info field sealing enabled")
	} else {
		logger.Warn("No master key configured; panic info is stored unsealed")
	}

	bot, err := telegram_bot.NewBot(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram bot, continuing without it", zap.Error(err))
		bot = nil
	}
	if bot != nil {
		opts.Notifier = bot
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if bot != nil {
		go func() {
			if err := bot.Start(ctx); err != nil {
				logger.Error("Telegram bot failed", zap.Error(err))
			}
		}()
	}

	srv := server.NewServer(db, cfg, logger, opts)
	if err := srv.Run(ctx); err != nil {
		return err
	}
	logger.Info("Application stopped.")
	return nil
}

// newSealer returns nil when neither a key nor a passphrase is configured.
func newSealer() (*crypto.Sealer, error) {
	switch {
	case cfg.Security.MasterKey != "":
		return crypto.NewSealer(cfg.Security.MasterKey)
	case cfg.Security.MasterPassphrase != "":
		return crypto.NewSealerFromPassphrase(cfg.Security.MasterPassphrase)
	default:
		return nil, nil
	}
}
