package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	httpapi "github.com/critiqhq/critiq/internal/catalog/http"
	"github.com/critiqhq/critiq/internal/catalog/mail"
	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/internal/catalog/store/drivers/sqlite"
	"github.com/critiqhq/critiq/pkg/confirmcode"
	"github.com/critiqhq/critiq/pkg/idx"
	"github.com/critiqhq/critiq/pkg/jwtx"
	"github.com/critiqhq/critiq/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the catalog service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	codes  *confirmcode.Generator
	tokens *jwtx.Codec
	sender mail.Sender

	authService    *service.AuthService
	userService    *service.UserService
	catalogService *service.CatalogService
	reviewService  *service.ReviewService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "critiq",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("CRITIQ_SECRET_KEY is required")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initCrypto(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMail()
	app.initServices()

	if err := app.bootstrapSuperuser(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("catalog service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down catalog service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("catalog service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initCrypto() error {
	codes, err := confirmcode.New(confirmcode.Config{
		Secret:     []byte(app.cfg.SecretKey),
		Window:     app.cfg.CodeWindow,
		MaxWindows: app.cfg.CodeMaxAge,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize code generator: %w", err)
	}
	app.codes = codes

	tokens, err := jwtx.NewCodec([]byte(app.cfg.SecretKey), app.cfg.Issuer, app.cfg.AccessTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.tokens = tokens
	return nil
}

func (app *Application) initMail() {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("no SMTP host configured, confirmation codes will be logged instead")
		app.sender = &mail.LogSender{Logger: app.logger}
		return
	}

	sender, err := mail.NewSMTPSender(mail.SMTPConfig{
		Host: app.cfg.SMTPHost,
		Port: strconv.Itoa(app.cfg.SMTPPort),
		User: app.cfg.SMTPUser,
		Pass: app.cfg.SMTPPass,
		From: app.cfg.MailFrom,
	})
	if err != nil {
		app.logger.Error("invalid SMTP configuration, falling back to log delivery", "error", err)
		app.sender = &mail.LogSender{Logger: app.logger}
		return
	}
	app.sender = sender
}

func (app *Application) initServices() {
	app.authService = service.NewAuthService(app.db, app.codes, app.tokens, app.sender, app.logger)
	app.userService = service.NewUserService(app.db)
	app.catalogService = service.NewCatalogService(app.db)
	app.reviewService = service.NewReviewService(app.db)
}

// bootstrapSuperuser creates the configured superuser on first start so a
// fresh deployment has an account that can manage users and the catalog.
func (app *Application) bootstrapSuperuser(ctx context.Context) error {
	if app.cfg.SuperuserName == "" || app.cfg.SuperuserEmail == "" {
		return nil
	}

	_, err := app.db.Users().GetByUsername(ctx, app.cfg.SuperuserName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("superuser lookup failed: %w", err)
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:        idx.New(),
		Username:  app.cfg.SuperuserName,
		Email:     app.cfg.SuperuserEmail,
		Role:      domain.RoleAdmin,
		Superuser: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := app.db.Users().Create(ctx, u); err != nil {
		return fmt.Errorf("superuser bootstrap failed: %w", err)
	}

	app.logger.Info("superuser bootstrapped", "username", u.Username)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.tokens, BuildVersion, app.db, app.logger)
	router.AuthService = app.authService
	router.UserService = app.userService
	router.CatalogService = app.catalogService
	router.ReviewService = app.reviewService
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
