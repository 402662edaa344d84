package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
)

// DeckWithFlashcards is a deck together with its cards in creation order.
type DeckWithFlashcards struct {
	Deck       *domain.Deck
	Flashcards []*domain.Flashcard
}

// DeckService manages a user's decks. Every operation is scoped to the
// caller; decks owned by someone else behave as missing.
type DeckService interface {
	ListDecks(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)

	CreateDeck(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Deck, error)

	// GetDeck returns the deck and its flashcards.
	GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*DeckWithFlashcards, error)

	UpdateDeck(
		ctx context.Context,
		userID, deckID uuid.UUID,
		title string,
		description *string,
	) (*domain.Deck, error)

	// DeleteDeck removes the deck and, by cascade, its flashcards.
	DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error
}

type deckService struct {
	deckStore      store.DeckStore
	flashcardStore store.FlashcardStore
	txr            store.Transactor
	logger         *slog.Logger
}

// NewDeckService creates a new DeckService.
func NewDeckService(
	deckStore store.DeckStore,
	flashcardStore store.FlashcardStore,
	txr store.Transactor,
	logger *slog.Logger,
) (DeckService, error) {
	if deckStore == nil {
		return nil, domain.NewValidationError("deckStore", "cannot be nil", domain.ErrValidation)
	}
	if flashcardStore == nil {
		return nil, domain.NewValidationError("flashcardStore", "cannot be nil", domain.ErrValidation)
	}
	if txr == nil {
		return nil, domain.NewValidationError("txr", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &deckService{
		deckStore:      deckStore,
		flashcardStore: flashcardStore,
		txr:            txr,
		logger:         logger.With(slog.String("component", "deck_service")),
	}, nil
}

func (s *deckService) ListDecks(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	decks, err := s.deckStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("deck", "list", err)
	}
	return decks, nil
}

func (s *deckService) CreateDeck(
	ctx context.Context,
	userID uuid.UUID,
	title string,
	description *string,
) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := domain.NewDeck(userID, title, description)
	if err != nil {
		return nil, invalidField("title", err)
	}

	if err := s.deckStore.Create(ctx, deck); err != nil {
		log.Error("failed to create deck", slog.String("error", err.Error()))
		return nil, NewServiceError("deck", "create", err)
	}

	log.Info("deck created", slog.String("deck_id", deck.ID.String()))
	return deck, nil
}

func (s *deckService) GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*DeckWithFlashcards, error) {
	var result DeckWithFlashcards
	err := s.txr.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		deck, err := s.deckStore.WithTx(tx).GetByID(ctx, userID, deckID)
		if err != nil {
			return err
		}
		cards, err := s.flashcardStore.WithTx(tx).ListByDeck(ctx, deckID)
		if err != nil {
			return err
		}
		deck.FlashcardCount = len(cards)
		result = DeckWithFlashcards{Deck: deck, Flashcards: cards}
		return nil
	})
	if err != nil {
		return nil, wrapUnexpected("deck", "get", err)
	}
	return &result, nil
}

func (s *deckService) UpdateDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
	title string,
	description *string,
) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Deck
	err := s.txr.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		decks := s.deckStore.WithTx(tx)
		deck, err := decks.GetByID(ctx, userID, deckID)
		if err != nil {
			return err
		}
		if err := deck.Update(title, description); err != nil {
			return invalidField("title", err)
		}
		if err := decks.Update(ctx, deck); err != nil {
			return err
		}
		updated = deck
		return nil
	})
	if err != nil {
		return nil, wrapUnexpected("deck", "update", err)
	}

	log.Info("deck updated", slog.String("deck_id", deckID.String()))
	return updated, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.deckStore.Delete(ctx, userID, deckID); err != nil {
		return wrapUnexpected("deck", "delete", err)
	}

	log.Info("deck deleted", slog.String("deck_id", deckID.String()))
	return nil
}

// wrapUnexpected passes not-found and validation errors through unchanged
// and wraps anything else in a ServiceError.
func wrapUnexpected(service, operation string, err error) error {
	if store.IsNotFoundError(err) || isValidationError(err) {
		return err
	}
	return NewServiceError(service, operation, err)
}
