package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/platform/postgres"
	"github.com/phrazzld/flashdeck/internal/service"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/store"
)

// application holds the shared dependencies of the HTTP server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService       auth.JWTService
	userService      service.UserService
	deckService      service.DeckService
	flashcardService service.FlashcardService
}

// newApplication wires stores, the generation pipeline and services around
// an open database.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	gen, err := newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}
	pipeline, err := newPipeline(cfg, gen, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation pipeline: %w", err)
	}

	txr := store.NewDBTransactor(db)
	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)
	deckStore := postgres.NewPostgresDeckStore(db, logger)
	flashcardStore := postgres.NewPostgresFlashcardStore(db, logger)

	return assembleApplication(cfg, logger, db, jwtService, services{
		users:      userStore,
		decks:      deckStore,
		flashcards: flashcardStore,
		txr:        txr,
		generator:  pipeline,
	})
}

// services groups the store-level dependencies assembleApplication builds
// the service layer from.
type services struct {
	users      store.UserStore
	decks      store.DeckStore
	flashcards store.FlashcardStore
	txr        store.Transactor
	generator  service.PairGenerator
}

func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	jwtService auth.JWTService,
	deps services,
) (*application, error) {
	userService, err := service.NewUserService(deps.users, deps.txr, auth.NewBcryptVerifier(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	deckService, err := service.NewDeckService(deps.decks, deps.flashcards, deps.txr, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}
	flashcardService, err := service.NewFlashcardService(deps.decks, deps.flashcards, deps.txr, deps.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		jwtService:       jwtService,
		userService:      userService,
		deckService:      deckService,
		flashcardService: flashcardService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		return
	}
	app.logger.Info("database connection closed")
}
