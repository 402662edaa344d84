package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const (
	testToken = "valid-access-token"
	testNotes = "Paris is the capital of France. The Eiffel Tower is in Paris."
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:                   "thisisasecretkeythatis32charslong!!",
			BCryptCost:                  4,
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 1440,
		},
		LLM: config.LLMConfig{
			Provider:              config.ProviderNone,
			HuggingFaceBaseURL:    "https://api-inference.huggingface.co",
			MaxNewTokens:          1000,
			Temperature:           0.7,
			RequestTimeoutSeconds: 5,
		},
		Generation: config.GenerationConfig{
			CardCount:             10,
			FallbackMinUnitLength: 20,
			FallbackMaxCards:      10,
			ExcerptLength:         80,
		},
	}
}

// testApp is an application wired to in-memory mocks, with one deck owned
// by userID.
type testApp struct {
	*application
	userID     uuid.UUID
	deck       *domain.Deck
	flashcards *mocks.MockFlashcardStore
	txr        *mocks.MockTransactor
}

func newTestApp(t *testing.T, gen generation.Generator) *testApp {
	t.Helper()

	cfg := testConfig()
	logger := discardLogger()
	userID := uuid.New()

	deck, err := domain.NewDeck(userID, "Geography", nil)
	require.NoError(t, err)

	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			if token != testToken {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: userID, TokenType: auth.TokenTypeAccess}, nil
		},
	}

	pipeline, err := newPipeline(cfg, gen, logger)
	require.NoError(t, err)

	flashcards := &mocks.MockFlashcardStore{}
	txr := &mocks.MockTransactor{}
	app, err := assembleApplication(cfg, logger, nil, jwtService, services{
		users:      mocks.NewMockUserStore(),
		decks:      mocks.NewMockDeckStoreWithDeck(deck),
		flashcards: flashcards,
		txr:        txr,
		generator:  pipeline,
	})
	require.NoError(t, err)

	return &testApp{application: app, userID: userID, deck: deck, flashcards: flashcards, txr: txr}
}
