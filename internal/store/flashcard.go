package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
)

// FlashcardStore defines the interface for flashcard persistence.
type FlashcardStore interface {
	// CreateMultiple inserts one flashcard per pair into deckID with a single
	// statement and returns the stored rows, which carry store-assigned IDs
	// and creation timestamps, in insertion order.
	//
	// Callers that also verify deck ownership should run it inside
	// RunInTransaction so that a failure leaves no rows behind.
	CreateMultiple(ctx context.Context, deckID uuid.UUID, pairs []domain.Pair) ([]*domain.Flashcard, error)

	// ListByDeck returns the flashcards of deckID ordered by creation time.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Flashcard, error)

	// GetByID retrieves a flashcard whose deck is owned by userID.
	// Returns ErrFlashcardNotFound otherwise.
	GetByID(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.Flashcard, error)

	// Update saves new front and back values.
	// Returns ErrFlashcardNotFound if the flashcard does not exist or is not
	// owned by userID.
	Update(ctx context.Context, userID uuid.UUID, card *domain.Flashcard) error

	// Delete removes a flashcard whose deck is owned by userID.
	// Returns ErrFlashcardNotFound otherwise.
	Delete(ctx context.Context, userID, flashcardID uuid.UUID) error

	// WithTx returns a FlashcardStore that runs its queries in tx.
	WithTx(tx *sql.Tx) FlashcardStore
}
