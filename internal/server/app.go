// Package server initializes and runs the application: it opens the
// database, applies migrations, wires the services, and serves the HTTP API
// until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/resumecore/api/internal/logging"
	"github.com/resumecore/api/internal/server/config"
	"github.com/resumecore/api/internal/server/gateway"
	"github.com/resumecore/api/internal/server/httpapi"
	"github.com/resumecore/api/internal/server/notify"
	"github.com/resumecore/api/internal/server/repositories/repomanager"
	"github.com/resumecore/api/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()

	sender, err := notify.NewSender(notify.Config{
		Provider:      cfg.EmailProvider,
		SMTPHost:      cfg.SMTPHost,
		SMTPPort:      cfg.SMTPPort,
		Username:      cfg.SMTPUsername,
		Password:      cfg.SMTPPassword,
		MailgunDomain: cfg.MailgunDomain,
		MailgunAPIKey: cfg.MailgunAPIKey,
		From:          cfg.EmailFrom,
	})
	if err != nil {
		return nil, fmt.Errorf("email sender init error: %w", err)
	}

	gw := gateway.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	userService := services.NewUserService(db, m, sender, logger, cfg)
	paymentService := services.NewPaymentService(db, m, gw, logger, cfg)

	server := httpapi.NewServer(cfg, userService, paymentService, logger)

	app := &App{config: cfg, logger: logger, db: db, server: server}

	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "http shutdown error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}

	app.logger.Info(shutdownCtx, "app stopped")
}
