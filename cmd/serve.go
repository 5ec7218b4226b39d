package cmd

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/liangshaojie/portfolio/config"
	"github.com/liangshaojie/portfolio/mail"
	"github.com/liangshaojie/portfolio/server"
	"github.com/liangshaojie/portfolio/storage"
)

// Preferences untouched for this long are pruned.
const preferenceRetention = 365 * 24 * time.Hour

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serve the portfolio page, its static assets and the theme, language and
contact form endpoints.

Example:
  portfolio serve
  PORT=3000 PREFS_BACKEND=sqlite portfolio serve --env prod.env`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) (err error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.PrefsBackend == config.BackendSQLite {
		db, err = storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		logger.Info("storing preferences in sqlite", "path", cfg.DBPath)
		go pruneLoop(ctx, db, logger)
	}

	srv, err := server.New(server.Options{
		DB:             db,
		Sender:         newSender(cfg, logger),
		Logger:         logger,
		DetectLanguage: cfg.DetectLanguage,
	})
	if err != nil {
		return errors.Wrap(err, "building server")
	}
	return srv.Run(ctx, ":"+cfg.Port)
}

func newSender(cfg config.Config, logger *slog.Logger) mail.Sender {
	if cfg.MailProvider == config.ProviderSMTP {
		logger.Info("delivering contact messages over smtp", "host", cfg.SMTP.Host, "to", cfg.SMTP.To)
		return mail.NewSMTP(cfg.SMTP)
	}
	logger.Info("contact messages are simulated and not delivered")
	return mail.NewSimulated()
}

// pruneLoop drops stale preference rows at startup and then daily.
func pruneLoop(ctx context.Context, db *sql.DB, logger *slog.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		n, err := storage.Prune(ctx, db, preferenceRetention)
		if err != nil {
			logger.Error("pruning preferences", "error", err)
		} else if n > 0 {
			logger.Info("pruned stale preferences", "rows", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
