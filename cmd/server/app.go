package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/mesto-api/internal/api"
	"github.com/phrazzld/mesto-api/internal/config"
	"github.com/phrazzld/mesto-api/internal/platform/postgres"
	"github.com/phrazzld/mesto-api/internal/service"
	"github.com/phrazzld/mesto-api/internal/service/auth"
	"github.com/phrazzld/mesto-api/internal/store"
)

// application holds the shared dependencies so they can be released together
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	cardStore store.CardStore

	jwtService  auth.JWTService
	credentials *auth.CredentialVerifier
	userService service.UserService
	cardService service.CardService
}

// newApplication migrates the schema and builds every store and service on top of db.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if err := postgres.Migrate(ctx, db, logger); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return buildApplication(cfg, logger, db)
}

func buildApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		userStore: postgres.NewPostgresUserStore(db, logger),
		cardStore: postgres.NewPostgresCardStore(db, logger),
	}

	var err error
	if app.jwtService, err = auth.NewJWTService(cfg.Auth); err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_hours", auth.TokenLifetime.Hours())

	app.credentials, err = auth.NewCredentialVerifier(
		app.userStore,
		auth.NewBcryptHasher(auth.PasswordCost),
		app.jwtService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential verifier: %w", err)
	}

	if app.userService, err = service.NewUserService(app.userStore, logger); err != nil {
		return nil, fmt.Errorf("failed to initialize user service: %w", err)
	}
	if app.cardService, err = service.NewCardService(app.cardStore, logger); err != nil {
		return nil, fmt.Errorf("failed to initialize card service: %w", err)
	}

	return app, nil
}

// router builds the public API handler.
func (app *application) router() http.Handler {
	return api.NewRouter(api.Dependencies{
		Credentials: app.credentials,
		Users:       app.userService,
		Cards:       app.cardService,
		JWT:         app.jwtService,
		AccessLog:   app.config.Server.LogLevel == "debug",
	})
}

func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
			return
		}
		app.logger.Info("database connection closed")
	}
}
