package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/redact"
	"github.com/phrazzld/flashdeck/internal/store"
)

// PairGenerator turns notes into pairs. *generation.Pipeline implements it.
type PairGenerator interface {
	Run(ctx context.Context, notes string) generation.Result
}

// GeneratedFlashcards is the outcome of a successful generation request.
type GeneratedFlashcards struct {
	Flashcards []*domain.Flashcard
	Source     generation.Source
}

// FlashcardService manages the flashcards in a user's decks.
type FlashcardService interface {
	// GenerateFlashcards derives pairs from notes and stores them in the
	// deck in one transaction. It returns ErrNoFlashcardsGenerated, with
	// nothing stored, when no pair could be produced.
	GenerateFlashcards(ctx context.Context, userID, deckID uuid.UUID, notes string) (*GeneratedFlashcards, error)

	AddFlashcard(ctx context.Context, userID, deckID uuid.UUID, front, back string) (*domain.Flashcard, error)

	UpdateFlashcard(ctx context.Context, userID, flashcardID uuid.UUID, front, back string) (*domain.Flashcard, error)

	DeleteFlashcard(ctx context.Context, userID, flashcardID uuid.UUID) error
}

type flashcardService struct {
	deckStore      store.DeckStore
	flashcardStore store.FlashcardStore
	txr            store.Transactor
	generator      PairGenerator
	logger         *slog.Logger
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(
	deckStore store.DeckStore,
	flashcardStore store.FlashcardStore,
	txr store.Transactor,
	generator PairGenerator,
	logger *slog.Logger,
) (FlashcardService, error) {
	if deckStore == nil {
		return nil, domain.NewValidationError("deckStore", "cannot be nil", domain.ErrValidation)
	}
	if flashcardStore == nil {
		return nil, domain.NewValidationError("flashcardStore", "cannot be nil", domain.ErrValidation)
	}
	if txr == nil {
		return nil, domain.NewValidationError("txr", "cannot be nil", domain.ErrValidation)
	}
	if generator == nil {
		return nil, domain.NewValidationError("generator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &flashcardService{
		deckStore:      deckStore,
		flashcardStore: flashcardStore,
		txr:            txr,
		generator:      generator,
		logger:         logger.With(slog.String("component", "flashcard_service")),
	}, nil
}

// GenerateFlashcards implements FlashcardService.GenerateFlashcards.
func (s *flashcardService) GenerateFlashcards(
	ctx context.Context,
	userID, deckID uuid.UUID,
	notes string,
) (*GeneratedFlashcards, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("deck_id", deckID.String()),
	)

	if strings.TrimSpace(notes) == "" {
		return nil, invalidField("notes", domain.ErrEmptyContent)
	}

	var (
		pairs  []domain.Pair
		source generation.Source
	)
	switch r := s.generator.Run(ctx, notes).(type) {
	case generation.GeneratedResult:
		pairs, source = r.Pairs, generation.SourceModel
	case generation.FallbackResult:
		pairs, source = r.Pairs, generation.SourceFallback
	case generation.FailedResult:
		log.Warn("no flashcards generated", slog.String("reason", redact.Error(r.Reason)))
		return nil, fmt.Errorf("%w: %w", ErrNoFlashcardsGenerated, r.Reason)
	default:
		return nil, fmt.Errorf("%w: unexpected result %T", ErrNoFlashcardsGenerated, r)
	}

	cards, err := s.persist(ctx, userID, deckID, pairs)
	if err != nil {
		log.Error("failed to save generated flashcards",
			slog.String("error", redact.Error(err)),
			slog.Int("count", len(pairs)))
		return nil, wrapUnexpected("flashcard", "generate", err)
	}

	log.Info("saved generated flashcards",
		slog.Int("count", len(cards)),
		slog.String("source", string(source)))
	return &GeneratedFlashcards{Flashcards: cards, Source: source}, nil
}

// AddFlashcard implements FlashcardService.AddFlashcard.
func (s *flashcardService) AddFlashcard(
	ctx context.Context,
	userID, deckID uuid.UUID,
	front, back string,
) (*domain.Flashcard, error) {
	pair, err := domain.NewPair(front, back)
	if err != nil {
		return nil, invalidField("flashcard", err)
	}

	cards, err := s.persist(ctx, userID, deckID, []domain.Pair{pair})
	if err != nil {
		return nil, wrapUnexpected("flashcard", "add", err)
	}
	return cards[0], nil
}

// UpdateFlashcard implements FlashcardService.UpdateFlashcard.
func (s *flashcardService) UpdateFlashcard(
	ctx context.Context,
	userID, flashcardID uuid.UUID,
	front, back string,
) (*domain.Flashcard, error) {
	pair, err := domain.NewPair(front, back)
	if err != nil {
		return nil, invalidField("flashcard", err)
	}

	var updated *domain.Flashcard
	err = s.txr.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		cards := s.flashcardStore.WithTx(tx)
		card, err := cards.GetByID(ctx, userID, flashcardID)
		if err != nil {
			return err
		}
		card.Front, card.Back = pair.Front, pair.Back
		if err := cards.Update(ctx, userID, card); err != nil {
			return err
		}
		updated = card
		return nil
	})
	if err != nil {
		return nil, wrapUnexpected("flashcard", "update", err)
	}
	return updated, nil
}

// DeleteFlashcard implements FlashcardService.DeleteFlashcard.
func (s *flashcardService) DeleteFlashcard(ctx context.Context, userID, flashcardID uuid.UUID) error {
	if err := s.flashcardStore.Delete(ctx, userID, flashcardID); err != nil {
		return wrapUnexpected("flashcard", "delete", err)
	}
	return nil
}

// persist checks that the caller owns the deck and inserts pairs in the
// same transaction.
func (s *flashcardService) persist(
	ctx context.Context,
	userID, deckID uuid.UUID,
	pairs []domain.Pair,
) ([]*domain.Flashcard, error) {
	var cards []*domain.Flashcard
	err := s.txr.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.deckStore.WithTx(tx).GetByID(ctx, userID, deckID); err != nil {
			return err
		}
		created, err := s.flashcardStore.WithTx(tx).CreateMultiple(ctx, deckID, pairs)
		if err != nil {
			return err
		}
		cards = created
		return nil
	})
	return cards, err
}
